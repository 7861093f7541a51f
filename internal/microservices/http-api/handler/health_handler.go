package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PingFunc checks a dependency.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	ping   PingFunc
	logger *zap.Logger
}

func NewHealthHandler(ping PingFunc, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, logger: logger}
}

// Check reports whether the API can reach its database.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unavailable",
			"database": "unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "connected",
	})
}
