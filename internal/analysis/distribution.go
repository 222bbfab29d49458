package analysis

import (
	"math"

	"github.com/kjanat/poo-tracker/internal/types"
)

var bristolDescriptions = map[int]string{
	1: "Severe constipation (hard lumps)",
	2: "Mild constipation (lumpy sausage)",
	3: "Normal (cracked sausage)",
	4: "Ideal (smooth sausage)",
	5: "Lacking fiber (soft blobs)",
	6: "Mild diarrhea (fluffy pieces)",
	7: "Severe diarrhea (watery)",
}

// AnalyzeDistribution computes the Bristol type histogram, percentage
// distribution, most common type and the overall health indicator. With ten
// or more records it also classifies a first-third vs last-third trend.
func AnalyzeDistribution(records []Record, cfg Config) types.BristolAnalysis {
	distribution := make(map[int]int)
	for _, r := range records {
		distribution[r.BristolType]++
	}

	total := float64(len(records))
	percentages := make(map[int]float64, len(distribution))
	for bt, count := range distribution {
		percentages[bt] = round2(float64(count) / total * 100)
	}

	// Arg-max by count; ties go to the smallest Bristol type.
	mostCommon := 0
	for bt := 1; bt <= 7; bt++ {
		count, ok := distribution[bt]
		if !ok {
			continue
		}
		if mostCommon == 0 || count > distribution[mostCommon] {
			mostCommon = bt
		}
	}

	result := types.BristolAnalysis{
		Distribution: distribution,
		Percentages:  percentages,
		MostCommon: types.MostCommonType{
			Type:        mostCommon,
			Description: bristolDescriptions[mostCommon],
			Percentage:  percentages[mostCommon],
		},
		HealthIndicator: assessBristolHealth(percentages),
	}

	// Below the minimum record count the trend is stable by definition,
	// never omitted.
	if len(records) >= cfg.MinRecordsForTrend {
		result.Trend = distributionTrend(records)
	} else {
		result.Trend = trendStable
	}

	return result
}

func assessBristolHealth(percentages map[int]float64) string {
	healthyMass := percentages[3] + percentages[4]
	switch {
	case healthyMass > 70:
		return "Excellent - Your bowel movements are consistently healthy"
	case healthyMass > 50:
		return "Good - Mostly healthy with some room for improvement"
	case healthyMass > 30:
		return "Fair - Consider dietary adjustments for better digestive health"
	default:
		return "Poor - Significant digestive issues detected, consider medical consultation"
	}
}

// distributionTrend compares the first and last thirds of the (already
// chronologically sorted) record set by distance of the mean Bristol type
// from the ideal 3-4 band.
func distributionTrend(records []Record) string {
	third := len(records) / 3
	early := records[:third]
	recent := records[len(records)-third:]

	earlyDist := distanceFromIdeal(meanBristol(early))
	recentDist := distanceFromIdeal(meanBristol(recent))

	switch {
	case recentDist < earlyDist-trendThreshold:
		return trendImproving
	case recentDist > earlyDist+trendThreshold:
		return trendDeclining
	default:
		return trendStable
	}
}

func meanBristol(records []Record) float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = float64(r.BristolType)
	}
	return mean(values)
}

// distanceFromIdeal measures how far a mean Bristol value sits from the
// 3-4 ideal band.
func distanceFromIdeal(v float64) float64 {
	return math.Min(math.Abs(v-3), math.Abs(v-4))
}

// AnalyzeConsistencyTrends builds the histogram of the optional consistency
// field, or a message when no record carries one.
func AnalyzeConsistencyTrends(records []Record) types.ConsistencyTrends {
	distribution := make(map[string]int)
	for _, r := range records {
		if r.Consistency != nil && *r.Consistency != "" {
			distribution[*r.Consistency]++
		}
	}
	if len(distribution) == 0 {
		return types.ConsistencyTrends{Message: "No consistency data available"}
	}

	mostCommon := ""
	for value, count := range distribution {
		if mostCommon == "" || count > distribution[mostCommon] || (count == distribution[mostCommon] && value < mostCommon) {
			mostCommon = value
		}
	}
	return types.ConsistencyTrends{
		Distribution: distribution,
		MostCommon:   mostCommon,
	}
}
