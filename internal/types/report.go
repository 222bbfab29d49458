package types

import (
	"time"
)

// BristolAnalysis describes the Bristol type distribution of a record set.
type BristolAnalysis struct {
	Distribution    map[int]int     `json:"distribution"`
	Percentages     map[int]float64 `json:"percentages"`
	MostCommon      MostCommonType  `json:"most_common"`
	HealthIndicator string          `json:"health_indicator"`
	Trend           string          `json:"trend"`
}

type MostCommonType struct {
	Type        int     `json:"type"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
}

// FrequencyStats summarises per-day counts.
type FrequencyStats struct {
	AvgDaily         float64 `json:"avg_daily"`
	MaxDaily         int     `json:"max_daily"`
	MinDaily         int     `json:"min_daily"`
	TotalDays        int     `json:"total_days"`
	TotalEntries     int     `json:"total_entries"`
	ConsistencyScore float64 `json:"consistency_score"`
}

// TimingPattern summarises hour-of-day and day-of-week distributions.
type TimingPattern struct {
	HourlyDistribution map[int]int    `json:"hourly_distribution"`
	DailyDistribution  map[string]int `json:"daily_distribution"`
	PeakHour           int            `json:"peak_hour"`
	MostActiveDay      string         `json:"most_active_day"`
	RegularityScore    float64        `json:"regularity_score"`
}

// ConsistencyTrends is the histogram of the optional consistency field.
type ConsistencyTrends struct {
	Distribution map[string]int `json:"distribution,omitempty"`
	MostCommon   string         `json:"most_common,omitempty"`
	Message      string         `json:"message,omitempty"`
}

// Patterns groups the pattern sections of a report.
type Patterns struct {
	Timing            TimingPattern     `json:"timing"`
	Frequency         FrequencyStats    `json:"frequency"`
	ConsistencyTrends ConsistencyTrends `json:"consistency_trends"`
}

// CategoryCorrelation aggregates downstream record metrics for one meal
// category or food-characteristic bucket.
type CategoryCorrelation struct {
	AvgBristol      *float64 `json:"avg_bristol_scores,omitempty"`
	AvgPain         *float64 `json:"avg_pain_scores,omitempty"`
	AvgSatisfaction *float64 `json:"avg_satisfaction_scores,omitempty"`
	SampleCount     int      `json:"sample_count"`
}

// FoodBucket is a classified food-characteristic group (trigger or beneficial).
type FoodBucket struct {
	Type         string   `json:"type"`
	AvgBristol   float64  `json:"avg_bristol"`
	AvgPain      *float64 `json:"avg_pain,omitempty"`
	Severity     string   `json:"severity,omitempty"`
	BenefitLevel string   `json:"benefit_level,omitempty"`
}

// TimingCorrelation reports meal-to-record gap statistics in hours.
type TimingCorrelation struct {
	AvgMealToRecordHours    float64 `json:"avg_meal_to_bm_hours"`
	MedianMealToRecordHours float64 `json:"median_meal_to_bm_hours"`
}

// MealCorrelations is the full meal correlation section.
type MealCorrelations struct {
	CategoryCorrelations map[string]CategoryCorrelation `json:"category_correlations"`
	TriggerFoods         []FoodBucket                   `json:"trigger_foods"`
	BeneficialFoods      []FoodBucket                   `json:"beneficial_foods"`
	TimingCorrelations   *TimingCorrelation             `json:"timing_correlations,omitempty"`
}

// SymptomCorrelation aggregates health records near occurrences of one
// symptom type.
type SymptomCorrelation struct {
	AvgSeverity            float64  `json:"avg_severity"`
	AvgBristolWithSymptoms *float64 `json:"avg_bristol_with_symptoms,omitempty"`
	AvgPainWithSymptoms    *float64 `json:"avg_pain_with_symptoms,omitempty"`
	Occurrences            int      `json:"occurrences"`
}

// Correlations groups the correlation sections of a report.
type Correlations struct {
	Meals    *MealCorrelations             `json:"meals,omitempty"`
	Symptoms map[string]SymptomCorrelation `json:"symptoms,omitempty"`
}

// HealthScore is the weighted composite score with component breakdown.
type HealthScore struct {
	OverallScore      float64 `json:"overall_score"`
	BristolScore      float64 `json:"bristol_score"`
	FrequencyScore    float64 `json:"frequency_score"`
	PainScore         float64 `json:"pain_score"`
	SatisfactionScore float64 `json:"satisfaction_score"`
	Trend             string  `json:"trend"`
}

// RegularityIndex is the composite digestive regularity assessment.
type RegularityIndex struct {
	RegularityIndex float64              `json:"regularity_index"`
	Components      RegularityComponents `json:"components"`
	Interpretation  string               `json:"interpretation"`
}

type RegularityComponents struct {
	TimeRegularity     float64 `json:"time_regularity"`
	BristolConsistency float64 `json:"bristol_consistency"`
	FrequencyStability float64 `json:"frequency_stability"`
}

// Recommendation is one rule-derived piece of advice.
type Recommendation struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Confidence  float64  `json:"confidence"`
	Evidence    []string `json:"evidence"`
}

// RiskFactor is one rule-derived health risk.
type RiskFactor struct {
	Factor         string  `json:"factor"`
	Severity       string  `json:"severity"`
	Description    string  `json:"description"`
	Prevalence     float64 `json:"prevalence"`
	Recommendation string  `json:"recommendation"`
}

// AnalysisMetadata is the bookkeeping record for one analysis run.
type AnalysisMetadata struct {
	AnalysisID            string    `json:"analysis_id"`
	UserID                string    `json:"user_id"`
	AnalysisType          string    `json:"analysis_type"`
	DataPeriodStart       time.Time `json:"data_period_start"`
	DataPeriodEnd         time.Time `json:"data_period_end"`
	TotalEntries          int       `json:"total_entries"`
	TotalMeals            int       `json:"total_meals"`
	TotalSymptoms         int       `json:"total_symptoms"`
	ProcessingTimeSeconds float64   `json:"processing_time_seconds"`
	CacheHit              bool      `json:"cache_hit"`
	ConfidenceScore       float64   `json:"confidence_score"`
	DataQualityScore      float64   `json:"data_quality_score"`
}

// AnalysisReport is the full result of one analysis invocation. It is
// assembled fresh per call and owned by the caller afterwards.
type AnalysisReport struct {
	Patterns        Patterns         `json:"patterns"`
	BristolAnalysis BristolAnalysis  `json:"bristol_trends"`
	Correlations    Correlations     `json:"correlations"`
	HealthScore     *HealthScore     `json:"health_score,omitempty"`
	Regularity      *RegularityIndex `json:"regularity,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	RiskFactors     []RiskFactor     `json:"risk_factors"`
	Metadata        AnalysisMetadata `json:"analysis_metadata"`
}
