package graph

import (
	"context"
	"fmt"

	"bloghub/internal/logger"
	"bloghub/internal/metrics"
	"bloghub/internal/microservices/http-api/service"

	"go.uber.org/zap"
)

// Services bundles what the resolvers delegate to.
type Services struct {
	Auth       service.AuthService
	Users      service.UserService
	Categories service.CategoryService
	Posts      service.PostService
	Comments   service.CommentService
	Likes      service.LikeService
}

// Resolver is the root resolver. Query and mutation fields are methods on it,
// split across the per-entity files of this package.
type Resolver struct {
	svc     Services
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewResolver wires the root resolver. m may be nil.
func NewResolver(svc Services, m *metrics.Metrics, log *zap.Logger) *Resolver {
	return &Resolver{
		svc:     svc,
		metrics: m,
		logger:  logger.OrNop(log),
	}
}

// panicLogger reports resolver panics, which the engine turns into errors.
type panicLogger struct {
	logger *zap.Logger
}

func (l *panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.Error("graphql resolver panic", zap.String("panic", fmt.Sprint(value)), zap.Stack("stack"))
}
