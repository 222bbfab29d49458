package analysis

import (
	"fmt"

	"github.com/kjanat/poo-tracker/internal/types"
)

// IdentifyRisks evaluates the risk-factor rule table against the analyzer
// outputs. Risk factors are never truncated.
func IdentifyRisks(in RuleInputs) []types.RiskFactor {
	risks := []types.RiskFactor{}

	if ratio := in.constipationRatio(); ratio > 0.5 {
		severity := "medium"
		if ratio > 0.7 {
			severity = "high"
		}
		risks = append(risks, types.RiskFactor{
			Factor:         "chronic_constipation",
			Severity:       severity,
			Description:    fmt.Sprintf("Chronic constipation pattern detected (%.1f%% of movements)", ratio*100),
			Prevalence:     ratio,
			Recommendation: "Increase fiber, water intake, and consider medical consultation",
		})
	}

	if ratio := in.diarrheaRatio(); ratio > 0.3 {
		severity := "medium"
		if ratio > 0.5 {
			severity = "high"
		}
		risks = append(risks, types.RiskFactor{
			Factor:         "chronic_diarrhea",
			Severity:       severity,
			Description:    fmt.Sprintf("Chronic loose stool pattern detected (%.1f%% of movements)", ratio*100),
			Prevalence:     ratio,
			Recommendation: "Monitor hydration and consider medical evaluation",
		})
	}

	if ratio := in.extremeRatio(); ratio > 0.3 {
		severity := "medium"
		if ratio > 0.5 {
			severity = "high"
		}
		risks = append(risks, types.RiskFactor{
			Factor:         "extreme_bristol_types",
			Severity:       severity,
			Description:    fmt.Sprintf("%.1f%% of movements are extreme types (constipation or diarrhea)", ratio*100),
			Prevalence:     ratio,
			Recommendation: "Review diet balance and track triggers for extreme movements",
		})
	}

	if in.Frequency.AvgDaily < 0.3 {
		risks = append(risks, types.RiskFactor{
			Factor:         "severe_constipation",
			Severity:       "high",
			Description:    fmt.Sprintf("Very infrequent bowel movements (%.1f per day)", in.Frequency.AvgDaily),
			Prevalence:     1.0,
			Recommendation: "Immediate dietary and lifestyle changes, consider medical consultation",
		})
	} else if in.Frequency.AvgDaily > 5 {
		risks = append(risks, types.RiskFactor{
			Factor:         "excessive_frequency",
			Severity:       "medium",
			Description:    fmt.Sprintf("Very frequent bowel movements (%.1f per day)", in.Frequency.AvgDaily),
			Prevalence:     1.0,
			Recommendation: "Monitor for dehydration and consider medical evaluation",
		})
	}

	if in.Pain.Samples > 0 && in.Pain.HighRatio > 0.2 {
		severity := "medium"
		if in.Pain.HighRatio > 0.4 {
			severity = "high"
		}
		risks = append(risks, types.RiskFactor{
			Factor:         "frequent_high_pain",
			Severity:       severity,
			Description:    fmt.Sprintf("%.1f%% of movements involve high pain (>7/10)", in.Pain.HighRatio*100),
			Prevalence:     in.Pain.HighRatio,
			Recommendation: "Medical consultation recommended to rule out underlying conditions",
		})
	}

	if in.Timing.RegularityScore < 0.2 {
		risks = append(risks, types.RiskFactor{
			Factor:         "highly_irregular_pattern",
			Severity:       "medium",
			Description:    "Highly irregular bowel movement patterns detected",
			Prevalence:     1.0,
			Recommendation: "Focus on establishing regular routine and reducing stress",
		})
	}

	return risks
}
