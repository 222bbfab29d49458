package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kjanat/poo-tracker/internal/pkg/errors"
	"github.com/kjanat/poo-tracker/internal/platform/logger"
	"github.com/kjanat/poo-tracker/internal/types"
)

// ReportCache stores finished analysis reports keyed by input fingerprint.
type ReportCache interface {
	Get(ctx context.Context, key string) (*types.AnalysisReport, error)
	Set(ctx context.Context, key string, report *types.AnalysisReport, ttl time.Duration) error
	Ping(ctx context.Context) error
	Stats() CacheStats
	Close() error
}

// CacheStats is the hit/miss snapshot exposed on the health endpoint.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

type reportCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	hits   atomic.Int64
	misses atomic.Int64
}

// NewReportCache connects to the Redis instance named by REDIS_ADDR and
// verifies the connection with a ping before returning.
func NewReportCache(log *logger.Logger) (ReportCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &reportCache{
		log: log.With("service", "RedisReportCache"),
		rdb: rdb,
	}, nil
}

func (c *reportCache) Get(ctx context.Context, key string) (*types.AnalysisReport, error) {
	if c == nil || c.rdb == nil {
		return nil, errors.ErrCacheUnavailable
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		c.misses.Add(1)
		return nil, nil
	}
	if err != nil {
		c.misses.Add(1)
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var report types.AnalysisReport
	if err := json.Unmarshal(raw, &report); err != nil {
		c.misses.Add(1)
		c.log.Warn("bad cached report payload", "key", key, "error", err)
		return nil, nil
	}
	c.hits.Add(1)
	return &report, nil
}

func (c *reportCache) Set(ctx context.Context, key string, report *types.AnalysisReport, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return errors.ErrCacheUnavailable
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

func (c *reportCache) Ping(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return errors.ErrCacheUnavailable
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *reportCache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

func (c *reportCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// noopCache keeps the service running when Redis is unreachable; every Get
// is a miss and every Set is dropped.
type noopCache struct{}

// NewNoopCache returns the fallback cache used when Redis is unavailable.
func NewNoopCache() ReportCache { return noopCache{} }

func (noopCache) Get(context.Context, string) (*types.AnalysisReport, error) { return nil, nil }

func (noopCache) Set(context.Context, string, *types.AnalysisReport, time.Duration) error {
	return nil
}

func (noopCache) Ping(context.Context) error { return errors.ErrCacheUnavailable }

func (noopCache) Stats() CacheStats { return CacheStats{} }

func (noopCache) Close() error { return nil }

// BuildAnalysisKey derives a deterministic, date-bucketed cache key from the
// request payload. The date segment keeps "today"-relative results from
// outliving the day they were computed on.
func BuildAnalysisKey(prefix string, now time.Time, payload interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal cache payload: %w", err)
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%s:analysis:%s:%s", prefix, now.Format("2006-01-02"), hex.EncodeToString(sum[:])), nil
}
