package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/social-stream/pkg/logger"
	"github.com/d60-Lab/social-stream/pkg/response"
)

// Recovery panic 兜底：上报 sentry（已初始化时）并返回 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		hub := sentry.CurrentHub().Clone()
		hub.Recover(err)
		logger.Error("panic recovered",
			zap.Any("error", err),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Code: http.StatusInternalServerError,
			Msg:  fmt.Sprintf("internal error: %v", err),
		})
	})
}
