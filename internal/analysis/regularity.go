package analysis

import (
	"math"

	"github.com/kjanat/poo-tracker/internal/types"
)

// RegularityIndex combines time regularity, Bristol consistency and
// frequency stability into one weighted digestive regularity assessment.
func RegularityIndex(records []Record, cfg Config) types.RegularityIndex {
	timeRegularity := timeRegularityScore(records)
	bristolConsistency := bristolConsistencyScore(records)
	frequencyStability := frequencyStabilityScore(records, cfg)

	index := timeRegularity*0.4 + bristolConsistency*0.3 + frequencyStability*0.3

	return types.RegularityIndex{
		RegularityIndex: round2(index),
		Components: types.RegularityComponents{
			TimeRegularity:     round2(timeRegularity),
			BristolConsistency: round2(bristolConsistency),
			FrequencyStability: round2(frequencyStability),
		},
		Interpretation: interpretRegularity(index),
	}
}

func timeRegularityScore(records []Record) float64 {
	if len(records) < 3 {
		return 0.5
	}
	hours := make([]float64, len(records))
	for i, r := range records {
		hours[i] = float64(r.Hour)
	}
	return math.Max(0, 1-stdDev(hours)/12)
}

// bristolConsistencyScore treats a spread of 3 Bristol types as the widest
// plausible standard deviation.
func bristolConsistencyScore(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = float64(r.BristolType)
	}
	return math.Max(0, 1-stdDev(values)/3)
}

func frequencyStabilityScore(records []Record, cfg Config) float64 {
	if len(records) < cfg.MinRecordsForRegularity {
		return 0.5
	}
	counts := dailyCounts(records)
	if len(counts) < 2 {
		return 0.5
	}
	m := mean(counts)
	if m == 0 {
		return 0
	}
	cv := stdDev(counts) / m
	return math.Max(0, 1-math.Min(cv, 1))
}

func interpretRegularity(index float64) string {
	switch {
	case index >= 0.8:
		return "Excellent digestive regularity"
	case index >= 0.6:
		return "Good digestive regularity"
	case index >= 0.4:
		return "Moderate digestive regularity"
	case index >= 0.2:
		return "Poor digestive regularity"
	default:
		return "Very irregular digestive patterns"
	}
}
