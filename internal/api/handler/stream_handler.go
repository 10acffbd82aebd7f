package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-stream/internal/api/middleware"
	"github.com/d60-Lab/social-stream/pkg/response"
)

type createPostRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreatePost 发布新帖
// @Summary 发帖
// @Tags 信息流
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	actorID := c.GetString(middleware.CtxUserIDKey)
	post, err := h.streamService.CreatePost(c.Request.Context(), actorID, req.Content)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Created(c, post)
}

// GetPost 查看单帖
// @Summary 单帖详情
// @Tags 信息流
// @Produce json
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.streamService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, post)
}

// GlobalStream 全站信息流（默认落地页）
// @Summary 全站信息流
// @Tags 信息流
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/stream [get]
func (h *Handler) GlobalStream(c *gin.Context) {
	posts, err := h.streamService.GlobalStream(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, gin.H{"count": len(posts), "list": posts})
}

// HomeStream 自己的主信息流（自己 + 关注者）
// @Summary 主信息流
// @Tags 信息流
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/stream/home [get]
func (h *Handler) HomeStream(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserIDKey)
	posts, err := h.streamService.OwnStream(c.Request.Context(), actorID)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, gin.H{"count": len(posts), "list": posts})
}

// UserStream 某用户的公开主页信息流
// @Summary 用户信息流
// @Tags 信息流
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/stream/{username} [get]
func (h *Handler) UserStream(c *gin.Context) {
	posts, err := h.streamService.UserStream(c.Request.Context(), c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, gin.H{"count": len(posts), "list": posts})
}
