package app

import (
	"fmt"
	"os"

	"github.com/kjanat/poo-tracker/internal/analysis"
	"github.com/kjanat/poo-tracker/internal/clients/redis"
	apphttp "github.com/kjanat/poo-tracker/internal/http"
	"github.com/kjanat/poo-tracker/internal/http/handlers"
	"github.com/kjanat/poo-tracker/internal/platform/logger"
)

type App struct {
	Log    *logger.Logger
	Server *apphttp.Server
	Cfg    Config
	Cache  redis.ReportCache
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	analysisCfg := analysis.DefaultConfig()
	if cfg.AnalysisConfigPath != "" {
		analysisCfg, err = analysis.LoadConfig(cfg.AnalysisConfigPath)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("load analysis config: %w", err)
		}
	}

	cache, err := redis.NewReportCache(log)
	if err != nil {
		log.Warn("Redis unavailable, running without cache", "error", err)
		cache = redis.NewNoopCache()
	}

	svc := analysis.NewService(log, analysisCfg, analysis.NewUUIDGenerator())

	analyzeHandler := handlers.NewAnalyzeHandler(log, svc, cache, cfg.CacheTTL, cfg.CacheKeyPrefix, cfg.MaxEntries)
	healthHandler := handlers.NewHealthHandler(log, cache)

	server := apphttp.NewServer(apphttp.RouterConfig{
		Log:     log,
		Analyze: analyzeHandler,
		Health:  healthHandler,
	})

	return &App{
		Log:    log,
		Server: server,
		Cfg:    cfg,
		Cache:  cache,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
