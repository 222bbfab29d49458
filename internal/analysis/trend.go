package analysis

const (
	trendImproving = "improving"
	trendDeclining = "declining"
	trendStable    = "stable"

	// trendThreshold is the minimum change in distance-from-ideal before a
	// Bristol trend counts as movement.
	trendThreshold = 0.3

	// painTrendThreshold is the minimum change in average pain before the
	// pain trend counts as movement.
	painTrendThreshold = 1.0
)

// CompositeTrend classifies the overall health direction by splitting the
// chronologically sorted records into historical and recent halves and
// combining a Bristol sub-trend with a pain sub-trend. Below the minimum
// record count the trend is "stable" by definition, not an error.
func CompositeTrend(records []Record, cfg Config) string {
	if len(records) < cfg.MinRecordsForCompositeTrend {
		return trendStable
	}

	midpoint := len(records) / 2
	historical := records[:midpoint]
	recent := records[midpoint:]

	bristolTrend := assessBristolTrend(meanBristol(historical), meanBristol(recent))
	painTrend := assessPainTrend(painValues(historical), painValues(recent))

	// Bristol carries more weight: improvement only counts when pain is not
	// getting worse, while decline in either dimension is a decline.
	switch {
	case bristolTrend == trendImproving && painTrend != trendDeclining:
		return trendImproving
	case bristolTrend == trendDeclining || painTrend == trendDeclining:
		return trendDeclining
	default:
		return trendStable
	}
}

func assessBristolTrend(historicalAvg, recentAvg float64) string {
	historicalDist := distanceFromIdeal(historicalAvg)
	recentDist := distanceFromIdeal(recentAvg)

	switch {
	case recentDist < historicalDist-trendThreshold:
		return trendImproving
	case recentDist > historicalDist+trendThreshold:
		return trendDeclining
	default:
		return trendStable
	}
}

// assessPainTrend compares average pain between the halves; lower is
// better. Skipped (stable) when either half lacks pain data.
func assessPainTrend(historical, recent []float64) string {
	if len(historical) == 0 || len(recent) == 0 {
		return trendStable
	}
	historicalAvg := mean(historical)
	recentAvg := mean(recent)

	switch {
	case recentAvg < historicalAvg-painTrendThreshold:
		return trendImproving
	case recentAvg > historicalAvg+painTrendThreshold:
		return trendDeclining
	default:
		return trendStable
	}
}

func painValues(records []Record) []float64 {
	var out []float64
	for _, r := range records {
		if r.Pain != nil {
			out = append(out, float64(*r.Pain))
		}
	}
	return out
}
