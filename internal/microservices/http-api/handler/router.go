package handler

import (
	"bloghub/internal/metrics"
	"bloghub/internal/microservices/http-api/middleware"
	"bloghub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Schema        Executor
	Auth          service.AuthService
	Health        *HealthHandler
	Limiter       *middleware.IPRateLimiter
	Metrics       *metrics.Metrics // nil disables /metrics
	CORSOrigins   []string
	SecureCookies bool
	Logger        *zap.Logger
}

// NewRouter mounts POST /graphql, GET /health and, with metrics, GET /metrics.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Logger, cfg.Metrics))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", cfg.Health.Check)
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	gql := NewGraphQLHandler(cfg.Schema)
	api := r.Group("/graphql",
		middleware.RateLimit(cfg.Limiter, cfg.Metrics),
		middleware.Authenticate(cfg.Auth, cfg.SecureCookies, cfg.Logger),
	)
	api.POST("", gql.Serve)

	return r
}
