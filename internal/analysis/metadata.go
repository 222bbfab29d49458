package analysis

import (
	"math"
	"time"

	"github.com/kjanat/poo-tracker/internal/types"
)

const analysisType = "comprehensive_pattern_analysis"

// BuildMetadata assembles the bookkeeping block for one analysis run.
// CacheHit is always false here; the caching layer flips it when it serves
// a stored report.
func BuildMetadata(ids IDGenerator, userID string, n *Normalized, elapsed time.Duration) types.AnalysisMetadata {
	start, end := span(n.Records)
	return types.AnalysisMetadata{
		AnalysisID:            ids.NewID(),
		UserID:                userID,
		AnalysisType:          analysisType,
		DataPeriodStart:       start,
		DataPeriodEnd:         end,
		TotalEntries:          len(n.Records),
		TotalMeals:            len(n.Meals),
		TotalSymptoms:         len(n.Symptoms),
		ProcessingTimeSeconds: elapsed.Seconds(),
		CacheHit:              false,
		ConfidenceScore:       0.8,
		DataQualityScore:      dataQualityScore(n.Records),
	}
}

// dataQualityScore measures field completeness across the five optional-ish
// record fields, plus a bonus for longer observation spans (capped at 30
// days worth, 0.2). BristolType is mandatory so it always counts.
func dataQualityScore(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}

	filled := 0
	for _, r := range records {
		filled++ // BristolType
		if r.Pain != nil {
			filled++
		}
		if r.Strain != nil {
			filled++
		}
		if r.Satisfaction != nil {
			filled++
		}
		if r.Volume != nil {
			filled++
		}
	}
	completeness := float64(filled) / float64(len(records)*5)

	start, end := span(records)
	days := end.Sub(start).Hours() / 24
	spanBonus := math.Min(0.2, days/30*0.2)

	return round2(math.Min(1.0, completeness+spanBonus))
}
