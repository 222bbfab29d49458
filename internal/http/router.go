package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kjanat/poo-tracker/internal/http/handlers"
	"github.com/kjanat/poo-tracker/internal/http/middleware"
	"github.com/kjanat/poo-tracker/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Analyze *handlers.AnalyzeHandler
	Health  *handlers.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(cfg.Log))

	r.GET("/", cfg.Health.Root)
	r.GET("/health", cfg.Health.Health)
	r.GET("/healthcheck", cfg.Health.HealthCheck)
	r.POST("/analyze", cfg.Analyze.Analyze)

	return r
}
