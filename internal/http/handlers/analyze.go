package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"github.com/kjanat/poo-tracker/internal/analysis"
	"github.com/kjanat/poo-tracker/internal/clients/redis"
	"github.com/kjanat/poo-tracker/internal/http/response"
	apperrors "github.com/kjanat/poo-tracker/internal/pkg/errors"
	"github.com/kjanat/poo-tracker/internal/platform/logger"
	"github.com/kjanat/poo-tracker/internal/types"
)

// AnalyzeRequest is the top-level analysis payload.
type AnalyzeRequest struct {
	Entries                []types.HealthRecord  `json:"entries"`
	Meals                  []types.MealRecord    `json:"meals"`
	Symptoms               []types.SymptomRecord `json:"symptoms"`
	IncludePredictions     bool                  `json:"include_predictions"`
	IncludeRecommendations bool                  `json:"include_recommendations"`
}

type AnalyzeHandler struct {
	log        *logger.Logger
	svc        *analysis.Service
	cache      redis.ReportCache
	sf         singleflight.Group
	cacheTTL   time.Duration
	keyPrefix  string
	maxEntries int
}

func NewAnalyzeHandler(log *logger.Logger, svc *analysis.Service, cache redis.ReportCache, cacheTTL time.Duration, keyPrefix string, maxEntries int) *AnalyzeHandler {
	return &AnalyzeHandler{
		log:        log.With("handler", "AnalyzeHandler"),
		svc:        svc,
		cache:      cache,
		cacheTTL:   cacheTTL,
		keyPrefix:  keyPrefix,
		maxEntries: maxEntries,
	}
}

// Analyze runs the full pattern analysis for one request. Identical payloads
// arriving on the same day share a cache entry, and concurrent identical
// requests collapse onto a single computation.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	if err := h.validate(req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	key, err := redis.BuildAnalysisKey(h.keyPrefix, time.Now(), req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "ANALYSIS_FAILED", err)
		return
	}

	if cached, err := h.cache.Get(c.Request.Context(), key); err != nil {
		h.log.Warn("cache lookup failed", "error", err)
	} else if cached != nil {
		h.log.Info("returning cached analysis", "analysis_id", cached.Metadata.AnalysisID)
		cached.Metadata.CacheHit = true
		response.RespondOK(c, cached)
		return
	}

	result, err, _ := h.sf.Do(key, func() (interface{}, error) {
		report, err := h.svc.Analyze(c.Request.Context(), analysis.AnalyzeInput{
			UserID:   userIDOf(req.Entries),
			Records:  req.Entries,
			Meals:    req.Meals,
			Symptoms: req.Symptoms,
		}, analysis.Options{
			IncludeHealthScore:     req.IncludePredictions,
			IncludeRecommendations: req.IncludeRecommendations,
		})
		if err != nil {
			return nil, err
		}
		if err := h.cache.Set(c.Request.Context(), key, report, h.cacheTTL); err != nil && !errors.Is(err, apperrors.ErrCacheUnavailable) {
			h.log.Warn("cache store failed", "error", err)
		}
		return report, nil
	})
	if err != nil {
		var invalid *analysis.InvalidRecordError
		switch {
		case errors.Is(err, apperrors.ErrEmptyInput), errors.As(err, &invalid):
			response.RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		default:
			h.log.Error("analysis failed", "error", err)
			response.RespondError(c, http.StatusInternalServerError, "ANALYSIS_FAILED", err)
		}
		return
	}

	response.RespondOK(c, result.(*types.AnalysisReport))
}

func (h *AnalyzeHandler) validate(req AnalyzeRequest) error {
	if len(req.Entries) == 0 {
		return fmt.Errorf("no bowel movement entries provided")
	}
	if len(req.Entries) > h.maxEntries {
		return fmt.Errorf("too many entries: %d, maximum: %d", len(req.Entries), h.maxEntries)
	}
	now := time.Now()
	future := 0
	for _, e := range req.Entries {
		if e.CreatedAt.After(now) {
			future++
		}
	}
	if future > 0 {
		return fmt.Errorf("found %d entries with future timestamps", future)
	}
	return nil
}

func userIDOf(entries []types.HealthRecord) string {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].UserID
}
