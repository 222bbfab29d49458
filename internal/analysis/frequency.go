package analysis

import (
	"math"

	"github.com/kjanat/poo-tracker/internal/types"
)

// AnalyzeFrequency groups records by calendar date and summarises the
// per-day counts, including a consistency score derived from their
// coefficient of variation.
func AnalyzeFrequency(records []Record, cfg Config) types.FrequencyStats {
	counts := dailyCounts(records)

	maxDaily, minDaily := 0, 0
	if len(counts) > 0 {
		maxDaily = int(counts[0])
		minDaily = int(counts[0])
		for _, c := range counts[1:] {
			if int(c) > maxDaily {
				maxDaily = int(c)
			}
			if int(c) < minDaily {
				minDaily = int(c)
			}
		}
	}

	return types.FrequencyStats{
		AvgDaily:         mean(counts),
		MaxDaily:         maxDaily,
		MinDaily:         minDaily,
		TotalDays:        len(counts),
		TotalEntries:     len(records),
		ConsistencyScore: consistencyScore(counts, cfg),
	}
}

// consistencyScore converts the coefficient of variation of daily counts
// into a [0,1] score; fewer than the minimum number of distinct days yields
// the neutral 0.5.
func consistencyScore(counts []float64, cfg Config) float64 {
	if len(counts) < cfg.MinDaysForConsistency {
		return 0.5
	}
	m := mean(counts)
	if m == 0 {
		return 0
	}
	cv := sampleStdDev(counts) / m
	return math.Max(0, 1-math.Min(cv, 1))
}
