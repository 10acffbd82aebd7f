package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-stream/internal/service"
	"github.com/d60-Lab/social-stream/pkg/response"
)

// 认证上下文键；handler 从上下文取出操作者ID后显式传给 service
const (
	CtxUserIDKey = "auth_user_id"
	CtxTokenKey  = "auth_token"
)

// Auth 校验 Bearer 令牌（含吊销检查），通过后注入操作者ID
func Auth(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c, "missing bearer token")
			return
		}
		userID, err := tokens.Validate(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}
