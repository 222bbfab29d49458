package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kjanat/poo-tracker/internal/types"
)

// PainSummary carries the aggregate pain figures the rule engines consume,
// computed once per analysis so the rules never rescan raw records.
type PainSummary struct {
	// Avg is the mean pain over pain-scored records; zero when Samples is 0.
	Avg float64
	// Samples is the number of records carrying a pain value.
	Samples int
	// HighRatio is the fraction of pain-scored records with pain above 7.
	HighRatio float64
}

// SummarizePain derives the pain aggregates from the normalized records.
func SummarizePain(records []Record) PainSummary {
	pains := painValues(records)
	if len(pains) == 0 {
		return PainSummary{}
	}
	high := 0
	for _, p := range pains {
		if p > 7 {
			high++
		}
	}
	return PainSummary{
		Avg:       mean(pains),
		Samples:   len(pains),
		HighRatio: float64(high) / float64(len(pains)),
	}
}

// RuleInputs bundles the analyzer outputs the recommendation and risk rule
// tables evaluate against.
type RuleInputs struct {
	Bristol   types.BristolAnalysis
	Frequency types.FrequencyStats
	Timing    types.TimingPattern
	Meals     *types.MealCorrelations
	Pain      PainSummary
}

func (in RuleInputs) constipationRatio() float64 {
	return (in.Bristol.Percentages[1] + in.Bristol.Percentages[2]) / 100
}

func (in RuleInputs) diarrheaRatio() float64 {
	return (in.Bristol.Percentages[6] + in.Bristol.Percentages[7]) / 100
}

func (in RuleInputs) extremeRatio() float64 {
	return in.constipationRatio() + in.diarrheaRatio()
}

// Recommend evaluates the fixed rule table and returns the ranked, bounded
// recommendation list.
func Recommend(in RuleInputs, ids IDGenerator, cfg Config) []types.Recommendation {
	recs := []types.Recommendation{}

	if ratio := in.constipationRatio(); ratio > 0.3 {
		priority := "medium"
		if ratio > 0.6 {
			priority = "high"
		}
		recs = append(recs, types.Recommendation{
			ID:          ids.NewID(),
			Category:    "diet",
			Title:       "Increase Fiber Intake",
			Description: "Add more fruits, vegetables, and whole grains to help with constipation",
			Priority:    priority,
			Confidence:  0.9,
			Evidence:    []string{fmt.Sprintf("%.1f%% of movements indicate constipation", ratio*100)},
		})
	}

	if ratio := in.diarrheaRatio(); ratio > 0.2 {
		priority := "medium"
		if ratio > 0.5 {
			priority = "high"
		}
		recs = append(recs, types.Recommendation{
			ID:          ids.NewID(),
			Category:    "diet",
			Title:       "Follow BRAT Diet",
			Description: "Eat bananas, rice, applesauce, and toast to firm up stools",
			Priority:    priority,
			Confidence:  0.8,
			Evidence:    []string{fmt.Sprintf("%.1f%% of movements indicate loose stools", ratio*100)},
		})
	}

	if in.Frequency.AvgDaily < 0.5 {
		recs = append(recs, types.Recommendation{
			ID:          ids.NewID(),
			Category:    "lifestyle",
			Title:       "Establish Regular Bathroom Routine",
			Description: "Try to use the bathroom at the same time each day, especially after meals",
			Priority:    "medium",
			Confidence:  0.7,
			Evidence:    []string{fmt.Sprintf("Average frequency: %.1f times per day", in.Frequency.AvgDaily)},
		})
	} else if in.Frequency.AvgDaily > 3 {
		recs = append(recs, types.Recommendation{
			ID:          ids.NewID(),
			Category:    "medical",
			Title:       "Monitor Frequent Bowel Movements",
			Description: "Consider tracking triggers and consulting healthcare provider if persistent",
			Priority:    "medium",
			Confidence:  0.6,
			Evidence:    []string{fmt.Sprintf("High frequency: %.1f times per day", in.Frequency.AvgDaily)},
		})
	}

	if in.Pain.Samples > 0 && in.Pain.Avg > 5 {
		priority := "medium"
		if in.Pain.Avg > 7 {
			priority = "high"
		}
		recs = append(recs, types.Recommendation{
			ID:          ids.NewID(),
			Category:    "medical",
			Title:       "Address Bowel Movement Pain",
			Description: "Consider consulting healthcare provider about persistent pain during bowel movements",
			Priority:    priority,
			Confidence:  0.8,
			Evidence:    []string{fmt.Sprintf("Average pain level: %.1f/10", in.Pain.Avg)},
		})
	}

	if in.Pain.Samples > 0 && in.Pain.HighRatio > 0.3 {
		recs = append(recs, types.Recommendation{
			ID:          ids.NewID(),
			Category:    "lifestyle",
			Title:       "Stress Reduction Techniques",
			Description: "Practice relaxation techniques as stress can contribute to digestive discomfort",
			Priority:    "medium",
			Confidence:  0.6,
			Evidence:    []string{fmt.Sprintf("%.1f%% of movements involve high pain", in.Pain.HighRatio*100)},
		})
	}

	if in.Meals != nil {
		for _, trigger := range in.Meals.TriggerFoods {
			if trigger.Severity != "high" {
				continue
			}
			recs = append(recs, types.Recommendation{
				ID:          ids.NewID(),
				Category:    "diet",
				Title:       fmt.Sprintf("Limit %s Foods", titleCase(trigger.Type)),
				Description: fmt.Sprintf("Consider reducing %s foods as they may trigger digestive issues", trigger.Type),
				Priority:    "medium",
				Confidence:  0.7,
				Evidence:    []string{fmt.Sprintf("Associated with Bristol type %.1f", trigger.AvgBristol)},
			})
		}
		for _, beneficial := range in.Meals.BeneficialFoods {
			recs = append(recs, types.Recommendation{
				ID:          ids.NewID(),
				Category:    "diet",
				Title:       fmt.Sprintf("Include More %s Foods", titleCase(beneficial.Type)),
				Description: fmt.Sprintf("Consider adding more %s foods to your diet", beneficial.Type),
				Priority:    "low",
				Confidence:  0.6,
				Evidence:    []string{"Associated with healthy Bristol types"},
			})
		}
	}

	if in.Timing.RegularityScore < 0.3 {
		recs = append(recs, types.Recommendation{
			ID:          ids.NewID(),
			Category:    "lifestyle",
			Title:       "Improve Schedule Regularity",
			Description: "Try to maintain consistent meal times and sleep schedule to improve digestive regularity",
			Priority:    "medium",
			Confidence:  0.6,
			Evidence:    []string{fmt.Sprintf("Regularity score: %.1f", in.Timing.RegularityScore)},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityWeight(recs[i].Priority) > priorityWeight(recs[j].Priority)
	})
	if len(recs) > cfg.MaxRecommendations {
		recs = recs[:cfg.MaxRecommendations]
	}
	return recs
}

func priorityWeight(priority string) int {
	switch priority {
	case "urgent":
		return 4
	case "high":
		return 3
	case "medium":
		return 2
	default:
		return 1
	}
}

// titleCase uppercases the first letter of each underscore- or
// space-separated word ("fiber_rich" -> "Fiber Rich").
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
