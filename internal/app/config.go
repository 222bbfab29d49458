package app

import (
	"time"

	"github.com/kjanat/poo-tracker/internal/platform/logger"
	"github.com/kjanat/poo-tracker/internal/utils"
)

type Config struct {
	Port               string
	CacheTTL           time.Duration
	CacheKeyPrefix     string
	MaxEntries         int
	AnalysisConfigPath string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:               utils.GetEnv("PORT", "8000", log),
		CacheTTL:           utils.GetEnvAsSeconds("CACHE_TTL", time.Hour, log),
		CacheKeyPrefix:     utils.GetEnv("CACHE_PREFIX", "poo_tracker", log),
		MaxEntries:         utils.GetEnvAsInt("MAX_ENTRIES", 1000, log),
		AnalysisConfigPath: utils.GetEnv("ANALYSIS_CONFIG_PATH", "", log),
	}
}
