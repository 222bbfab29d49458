package analysis

import (
	"math"

	"github.com/kjanat/poo-tracker/internal/types"
)

// CalculateHealthScore combines the four weighted component scores into one
// composite 0-100 score. Callers may override any subset of the default
// weights; a nil override keeps the configured defaults.
//
// With no records at all the result is the documented floor object: overall
// 0, bristol 0, frequency 0, pain 100, satisfaction 50, trend stable. The
// asymmetry (computed zeros beside neutral floors) is contractual.
func CalculateHealthScore(records []Record, cfg Config, override *ScoreWeights) types.HealthScore {
	if len(records) == 0 {
		return types.HealthScore{
			OverallScore:      0,
			BristolScore:      0,
			FrequencyScore:    0,
			PainScore:         100,
			SatisfactionScore: 50,
			Trend:             trendStable,
		}
	}

	weights := cfg.ScoreWeights
	if override != nil {
		weights = *override
	}

	bristolScore := bristolHealthScore(records, cfg)
	frequencyScore := frequencyHealthScore(dailyCounts(records), cfg)
	painScore := painHealthScore(painValues(records))
	satisfactionScore := satisfactionHealthScore(satisfactionValues(records))

	overall := bristolScore*weights.Bristol +
		frequencyScore*weights.Frequency +
		painScore*weights.Pain +
		satisfactionScore*weights.Satisfaction

	return types.HealthScore{
		OverallScore:      round2(overall),
		BristolScore:      bristolScore,
		FrequencyScore:    frequencyScore,
		PainScore:         painScore,
		SatisfactionScore: satisfactionScore,
		Trend:             CompositeTrend(records, cfg),
	}
}

// bristolHealthScore is the mean per-type health weight over all records,
// scaled to 0-100.
func bristolHealthScore(records []Record, cfg Config) float64 {
	weighted := make([]float64, len(records))
	for i, r := range records {
		weighted[i] = cfg.BristolHealthWeights[r.BristolType]
	}
	return round2(mean(weighted) * 100)
}

// frequencyHealthScore scores the average daily frequency against the ideal
// band, then applies a consistency penalty from the coefficient of
// variation of the daily series.
func frequencyHealthScore(dailyFrequencies []float64, cfg Config) float64 {
	if len(dailyFrequencies) == 0 {
		return 0
	}
	avg := mean(dailyFrequencies)

	var base float64
	switch {
	case avg >= cfg.IdealFrequencyMin && avg <= cfg.IdealFrequencyMax:
		base = 100
	case avg < cfg.IdealFrequencyMin:
		base = math.Max(0, 100*(avg/cfg.IdealFrequencyMin))
	default:
		excess := (avg - cfg.IdealFrequencyMax) / cfg.IdealFrequencyMax
		base = math.Max(0, 100*(1-excess))
	}

	if len(dailyFrequencies) > 1 {
		base *= 1 - consistencyPenalty(dailyFrequencies)
	}
	return round2(base)
}

// consistencyPenalty converts the coefficient of variation into a penalty
// capped at 30%.
func consistencyPenalty(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	if m == 0 {
		return 0.3
	}
	cv := stdDev(values) / m
	return math.Min(0.3, cv*0.5)
}

// painHealthScore inverts average pain into a health score (higher = less
// pain = better). No pain data at all scores a full 100.
func painHealthScore(pains []float64) float64 {
	if len(pains) == 0 {
		return 100
	}
	avg := mean(pains)
	score := math.Max(0, 100*(10-avg)/9)

	if len(pains) > 1 {
		variancePenalty := math.Min(0.3, stdDev(pains)/10)
		score *= 1 - variancePenalty
	}
	return round2(score)
}

// satisfactionHealthScore rescales 1-10 satisfaction linearly onto 0-100,
// defaulting to the neutral 50 when no data exists.
func satisfactionHealthScore(satisfactions []float64) float64 {
	if len(satisfactions) == 0 {
		return 50
	}
	avg := mean(satisfactions)
	score := (avg - 1) * 100 / 9
	return round2(math.Max(0, math.Min(100, score)))
}

func satisfactionValues(records []Record) []float64 {
	var out []float64
	for _, r := range records {
		if r.Satisfaction != nil {
			out = append(out, float64(*r.Satisfaction))
		}
	}
	return out
}
