package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-stream/internal/api/middleware"
	"github.com/d60-Lab/social-stream/pkg/response"
)

// Follow 关注目标用户（用户名大小写不敏感，重复关注幂等）
// @Summary 关注用户
// @Tags 关系链
// @Security BearerAuth
// @Produce json
// @Param username path string true "目标用户名"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/relations/follow/{username} [post]
func (h *Handler) Follow(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserIDKey)
	target, err := h.relService.Follow(c.Request.Context(), actorID, c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, gin.H{"following": target.Username})
}

// Unfollow 取消关注（边不存在时幂等成功）
// @Summary 取消关注
// @Tags 关系链
// @Security BearerAuth
// @Produce json
// @Param username path string true "目标用户名"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/relations/unfollow/{username} [post]
func (h *Handler) Unfollow(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserIDKey)
	target, err := h.relService.Unfollow(c.Request.Context(), actorID, c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, gin.H{"unfollowed": target.Username})
}

// ListFollowing 查询某用户关注的人
// @Summary 查询关注列表
// @Tags 关系链
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/relations/{username}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	list, err := h.relService.Following(c.Request.Context(), c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, gin.H{"count": len(list), "list": list})
}

// ListFollowers 查询某用户的粉丝
// @Summary 查询粉丝列表
// @Tags 关系链
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/relations/{username}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	list, err := h.relService.Followers(c.Request.Context(), c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, gin.H{"count": len(list), "list": list})
}
