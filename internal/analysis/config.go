package analysis

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries every threshold, window and weight the analysis uses.
// It is passed explicitly into the Service; nothing in this package reads
// ambient process state.
type Config struct {
	// Digestion window: health records inside [meal+Min, meal+Max] are
	// considered downstream of that meal. Both ends inclusive.
	DigestionWindowMin time.Duration `yaml:"digestion_window_min"`
	DigestionWindowMax time.Duration `yaml:"digestion_window_max"`

	// SymptomWindow is the half-width of the closed window around a symptom
	// occurrence when correlating nearby health records.
	SymptomWindow time.Duration `yaml:"symptom_window"`

	// MealGapMax caps the meal-to-next-record gap considered in timing
	// correlation.
	MealGapMax time.Duration `yaml:"meal_gap_max"`

	// SpicyLevelThreshold: meals with a spicy level strictly above this
	// value fall into the spicy bucket.
	SpicyLevelThreshold int `yaml:"spicy_level_threshold"`

	// MinBucketSamples is the minimum number of windowed samples a food
	// bucket needs before it is classified as trigger or beneficial.
	MinBucketSamples int `yaml:"min_bucket_samples"`

	// MinSymptomOccurrences gates symptom-type correlation.
	MinSymptomOccurrences int `yaml:"min_symptom_occurrences"`

	// Minimum record counts before trends are computed; below them the
	// trend is "stable" by definition.
	MinRecordsForTrend          int `yaml:"min_records_for_trend"`
	MinRecordsForCompositeTrend int `yaml:"min_records_for_composite_trend"`

	// MinRecordsForRegularity gates the timing regularity score; below it a
	// neutral 0.5 is reported.
	MinRecordsForRegularity int `yaml:"min_records_for_regularity"`

	// MinDaysForConsistency gates the daily-frequency consistency score.
	MinDaysForConsistency int `yaml:"min_days_for_consistency"`

	// Ideal daily frequency band for the frequency component score.
	IdealFrequencyMin float64 `yaml:"ideal_frequency_min"`
	IdealFrequencyMax float64 `yaml:"ideal_frequency_max"`

	// BristolHealthWeights maps each Bristol type to its health weight used
	// by the category component score.
	BristolHealthWeights map[int]float64 `yaml:"bristol_health_weights"`

	// ScoreWeights are the default composite-score weights. Callers may
	// override any subset per request.
	ScoreWeights ScoreWeights `yaml:"score_weights"`

	// MaxRecommendations bounds the ranked recommendation list.
	MaxRecommendations int `yaml:"max_recommendations"`
}

// ScoreWeights holds the composite health-score weighting.
type ScoreWeights struct {
	Bristol      float64 `yaml:"bristol" json:"bristol"`
	Frequency    float64 `yaml:"frequency" json:"frequency"`
	Pain         float64 `yaml:"pain" json:"pain"`
	Satisfaction float64 `yaml:"satisfaction" json:"satisfaction"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		DigestionWindowMin:          6 * time.Hour,
		DigestionWindowMax:          48 * time.Hour,
		SymptomWindow:               12 * time.Hour,
		MealGapMax:                  72 * time.Hour,
		SpicyLevelThreshold:         6,
		MinBucketSamples:            3,
		MinSymptomOccurrences:       3,
		MinRecordsForTrend:          10,
		MinRecordsForCompositeTrend: 14,
		MinRecordsForRegularity:     7,
		MinDaysForConsistency:       3,
		IdealFrequencyMin:           0.5,
		IdealFrequencyMax:           3.0,
		BristolHealthWeights: map[int]float64{
			1: 0.1,
			2: 0.3,
			3: 0.9,
			4: 1.0,
			5: 0.7,
			6: 0.3,
			7: 0.1,
		},
		ScoreWeights: ScoreWeights{
			Bristol:      0.4,
			Frequency:    0.3,
			Pain:         0.2,
			Satisfaction: 0.1,
		},
		MaxRecommendations: 10,
	}
}

// LoadConfig overlays a YAML file on top of the defaults. A missing path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read analysis config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse analysis config: %w", err)
	}
	return cfg, nil
}
