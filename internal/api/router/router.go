package router

import (
	"regexp"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	_ "github.com/d60-Lab/social-stream/docs"
	"github.com/d60-Lab/social-stream/internal/api/handler"
	"github.com/d60-Lab/social-stream/internal/api/middleware"
	"github.com/d60-Lab/social-stream/internal/service"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{1,64}$`)

// New 组装 gin 引擎与全部路由
func New(h *handler.Handler, tokens *service.TokenManager, mode string) *gin.Engine {
	gin.SetMode(mode)
	registerValidators()

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.AccessLog(),
		otelgin.Middleware("social-stream"),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.RateLimit(rate.Limit(50), 100),
	)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.Auth(tokens)
	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", h.Register)
			users.POST("/login", h.Login)
			users.POST("/logout", auth, h.Logout)
			users.GET("/me", auth, h.Me)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", auth, h.CreatePost)
			posts.GET("/:id", h.GetPost)
		}

		stream := v1.Group("/stream")
		{
			stream.GET("", h.GlobalStream)
			stream.GET("/home", auth, h.HomeStream)
			stream.GET("/:username", h.UserStream)
		}

		relations := v1.Group("/relations")
		{
			relations.POST("/follow/:username", auth, h.Follow)
			relations.POST("/unfollow/:username", auth, h.Unfollow)
			relations.GET("/:username/following", h.ListFollowing)
			relations.GET("/:username/followers", h.ListFollowers)
		}
	}
	return r
}

// registerValidators 注册 username 格式校验（字母/数字/下划线）
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
	}
}
