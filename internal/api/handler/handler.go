package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-stream/internal/service"
	"github.com/d60-Lab/social-stream/pkg/errs"
	"github.com/d60-Lab/social-stream/pkg/response"
)

// Handler 聚合各领域服务供路由注册
type Handler struct {
	userService   service.UserService
	relService    service.RelationshipService
	streamService service.StreamService
}

func New(userService service.UserService, relService service.RelationshipService, streamService service.StreamService) *Handler {
	return &Handler{userService: userService, relService: relService, streamService: streamService}
}

// renderError 领域错误到 HTTP 状态码的统一映射
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, errs.ErrAlreadyExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrFollowSelf), errors.Is(err, service.ErrEmptyContent):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidToken):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
