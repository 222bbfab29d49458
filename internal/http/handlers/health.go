package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kjanat/poo-tracker/internal/clients/redis"
	"github.com/kjanat/poo-tracker/internal/platform/logger"
)

const serviceVersion = "1.0.0"

type HealthHandler struct {
	log   *logger.Logger
	cache redis.ReportCache
}

func NewHealthHandler(log *logger.Logger, cache redis.ReportCache) *HealthHandler {
	return &HealthHandler{
		log:   log.With("handler", "HealthHandler"),
		cache: cache,
	}
}

// Health reports service status including cache connectivity. The service is
// "degraded" rather than unhealthy when Redis is unreachable, since analysis
// still works without caching.
func (h *HealthHandler) Health(c *gin.Context) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	redisConnected := true
	if err := h.cache.Ping(ctx); err != nil {
		redisConnected = false
		h.log.Warn("redis health check failed", "error", err)
	}

	status := "healthy"
	if !redisConnected {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           status,
		"redis_connected":  redisConnected,
		"cache_stats":      h.cache.Stats(),
		"response_time_ms": float64(time.Since(start).Microseconds()) / 1000,
		"version":          serviceVersion,
	})
}

// HealthCheck is the bare liveness probe.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Root serves basic service discovery info.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":  "poo-tracker-analysis",
		"version":  serviceVersion,
		"status":   "running",
		"health":   "/health",
		"analysis": "/analyze",
	})
}
