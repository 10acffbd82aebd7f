package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-stream/internal/api/middleware"
	"github.com/d60-Lab/social-stream/pkg/response"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register 注册新用户
// @Summary 注册
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.userService.Register(c.Request.Context(), req.Username, req.Email, req.Password, false)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Created(c, user)
}

// Login 登录换取会话令牌
// @Summary 登录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录凭证"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token, "user": user})
}

// Logout 注销当前令牌
// @Summary 注销
// @Tags 用户
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/v1/users/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	token := c.GetString(middleware.CtxTokenKey)
	if err := h.userService.Logout(c.Request.Context(), token); err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, nil)
}

// Me 当前登录用户信息
// @Summary 当前用户
// @Tags 用户
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/users/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, user)
}
