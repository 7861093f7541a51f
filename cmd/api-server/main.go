package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloghub/database"
	"bloghub/internal/config"
	"bloghub/internal/logger"
	"bloghub/internal/metrics"
	"bloghub/internal/microservices/http-api/graph"
	"bloghub/internal/microservices/http-api/handler"
	"bloghub/internal/microservices/http-api/middleware"
	"bloghub/internal/microservices/http-api/repository"
	"bloghub/internal/microservices/http-api/service"
	"bloghub/internal/middleware/auth"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("api-server: %v", err)
	}
}

func run() error {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	defer zl.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the database
	db, err := database.Connect(cfg, zl)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Redis is optional; without it signOut only clears the cookie
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = repository.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword)
		if err != nil {
			return err
		}
		defer rdb.Close()
		zl.Info("connected to redis", zap.String("addr", cfg.RedisAddr()))
	} else {
		zl.Warn("REDIS_URL not set, signed-out tokens stay valid until they expire")
	}

	var m *metrics.Metrics
	if cfg.PrometheusEnabled {
		m = metrics.New()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	revokedRepo := repository.NewRevokedTokenRepository(rdb)

	// Services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, revokedRepo, tokens, zl)
	categoryService := service.NewCategoryService(categoryRepo, zl)

	resolver := graph.NewResolver(graph.Services{
		Auth:       authService,
		Users:      service.NewUserService(userRepo),
		Categories: categoryService,
		Posts:      service.NewPostService(postRepo, categoryRepo, categoryService, zl),
		Comments:   service.NewCommentService(commentRepo, postRepo),
		Likes:      service.NewLikeService(likeRepo),
	}, m, zl)

	router := handler.NewRouter(handler.RouterConfig{
		Schema: graph.NewSchema(resolver),
		Auth:   authService,
		Health: handler.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}, zl),
		Limiter:       middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Metrics:       m,
		CORSOrigins:   cfg.CORSOrigins,
		SecureCookies: cfg.IsProduction(),
		Logger:        zl,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		zl.Info("server listening",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.GoEnv),
			zap.Bool("metrics", m != nil),
		)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		zl.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		zl.Info("server stopped")
	}
	return nil
}
