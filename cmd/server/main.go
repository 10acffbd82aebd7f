package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/social-stream/internal/api/handler"
	"github.com/d60-Lab/social-stream/internal/api/router"
	"github.com/d60-Lab/social-stream/internal/config"
	"github.com/d60-Lab/social-stream/internal/repository"
	"github.com/d60-Lab/social-stream/internal/service"
	"github.com/d60-Lab/social-stream/pkg/errs"
	"github.com/d60-Lab/social-stream/pkg/logger"
	"github.com/d60-Lab/social-stream/pkg/tracing"
)

// @title social-stream API
// @version 1.0
// @description 注册、发帖、关注与个性化信息流
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Server.Mode); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()
	shutdownTracing, err := tracing.Init(ctx, "social-stream", cfg.Trace.Endpoint)
	if err != nil {
		logger.Fatal("init tracing", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(ctx) }()

	db, err := repository.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer func() { _ = repository.Close(db) }()
	if err := repository.AutoMigrate(db); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	userRepo := repository.NewUserRepository(db)
	relRepo := repository.NewRelationshipRepository(db)
	postRepo := repository.NewPostRepository(db)

	tokens := service.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireHours)*time.Hour, rdb)
	userService := service.NewUserService(userRepo, tokens)
	relService := service.NewRelationshipService(relRepo, userRepo)
	streamService := service.NewStreamService(postRepo, userRepo, cfg.Stream.Limit)

	seedAdmin(ctx, cfg, userService)

	h := handler.New(userService, relService, streamService)
	engine := router.New(h, tokens, cfg.Server.Mode)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}

// seedAdmin 预置管理员账号；已存在时静默跳过
func seedAdmin(ctx context.Context, cfg *config.Config, users service.UserService) {
	if cfg.Seed.AdminUsername == "" || cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		return
	}
	_, err := users.Register(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, true)
	if err != nil && !errors.Is(err, errs.ErrAlreadyExists) {
		logger.Warn("seed admin", zap.Error(err))
		return
	}
	if err == nil {
		logger.Info("seeded admin user", zap.String("username", cfg.Seed.AdminUsername))
	}
}
