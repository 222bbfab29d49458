package analysis

import (
	"github.com/kjanat/poo-tracker/internal/types"
)

// CorrelateMeals runs the digestion-window correlation over every meal
// category and food-characteristic bucket, plus the meal-to-record timing
// correlation. A nil result means no meals were supplied, which is not an
// error.
//
// A health record falling inside several overlapping windows of the same
// category is counted once per qualifying meal. Overlapping meals reinforce
// the same signal, so no dedup is applied.
func CorrelateMeals(records []Record, meals []Meal, cfg Config) *types.MealCorrelations {
	if len(meals) == 0 {
		return nil
	}

	result := &types.MealCorrelations{
		CategoryCorrelations: make(map[string]types.CategoryCorrelation),
		TriggerFoods:         []types.FoodBucket{},
		BeneficialFoods:      []types.FoodBucket{},
	}

	for category, categoryMeals := range mealsByCategory(meals) {
		if agg, ok := windowedCorrelation(records, categoryMeals, cfg); ok {
			result.CategoryCorrelations[category] = agg.corr
		}
	}

	for _, bucket := range foodBuckets(meals, cfg) {
		agg, ok := windowedCorrelation(records, bucket.meals, cfg)
		if !ok || agg.underSampled(cfg.MinBucketSamples) {
			// Too little evidence to classify; distinct from an absent
			// correlation.
			continue
		}
		trigger, beneficial := classifyBucket(bucket.name, agg.corr)
		if trigger != nil {
			result.TriggerFoods = append(result.TriggerFoods, *trigger)
		}
		if beneficial != nil {
			result.BeneficialFoods = append(result.BeneficialFoods, *beneficial)
		}
	}

	result.TimingCorrelations = mealTimingCorrelation(records, meals, cfg)

	return result
}

func mealsByCategory(meals []Meal) map[string][]Meal {
	byCategory := make(map[string][]Meal)
	for _, m := range meals {
		if m.Category == nil || *m.Category == "" {
			continue
		}
		byCategory[*m.Category] = append(byCategory[*m.Category], m)
	}
	return byCategory
}

type namedBucket struct {
	name  string
	meals []Meal
}

// foodBuckets partitions meals by characteristic. A meal can land in
// several buckets (a spicy dairy dish counts for both).
func foodBuckets(meals []Meal, cfg Config) []namedBucket {
	buckets := []namedBucket{
		{name: "spicy"},
		{name: "dairy"},
		{name: "gluten"},
		{name: "fiber_rich"},
	}
	for _, m := range meals {
		if m.SpicyLevel != nil && *m.SpicyLevel > cfg.SpicyLevelThreshold {
			buckets[0].meals = append(buckets[0].meals, m)
		}
		if m.Dairy {
			buckets[1].meals = append(buckets[1].meals, m)
		}
		if m.Gluten {
			buckets[2].meals = append(buckets[2].meals, m)
		}
		if m.FiberRich {
			buckets[3].meals = append(buckets[3].meals, m)
		}
	}
	out := buckets[:0]
	for _, b := range buckets {
		if len(b.meals) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// windowAggregate pairs a correlation with the per-metric sample counts the
// bucket classification gate needs.
type windowAggregate struct {
	corr                types.CategoryCorrelation
	painSamples         int
	satisfactionSamples int
}

// underSampled reports whether any metric the windows yielded carries fewer
// than min samples. A metric with no samples at all is merely absent, which
// is a different condition and does not disqualify the bucket.
func (a windowAggregate) underSampled(min int) bool {
	if a.corr.SampleCount < min {
		return true
	}
	if a.painSamples > 0 && a.painSamples < min {
		return true
	}
	return a.satisfactionSamples > 0 && a.satisfactionSamples < min
}

// windowedCorrelation aggregates health-record metrics across each meal's
// digestion window. Each qualifying meal contributes one sample per metric
// (the average over the records inside its window); the correlation is the
// mean of those samples. Meals with an empty window contribute nothing.
func windowedCorrelation(records []Record, meals []Meal, cfg Config) (windowAggregate, bool) {
	var bristolSamples, painSamples, satisfactionSamples []float64

	for _, meal := range meals {
		windowStart := meal.MealTime.Add(cfg.DigestionWindowMin)
		windowEnd := meal.MealTime.Add(cfg.DigestionWindowMax)

		var bristol, pain, satisfaction []float64
		for _, r := range records {
			// Closed interval: records exactly on either boundary count.
			if r.CreatedAt.Before(windowStart) || r.CreatedAt.After(windowEnd) {
				continue
			}
			bristol = append(bristol, float64(r.BristolType))
			if r.Pain != nil {
				pain = append(pain, float64(*r.Pain))
			}
			if r.Satisfaction != nil {
				satisfaction = append(satisfaction, float64(*r.Satisfaction))
			}
		}
		if len(bristol) == 0 {
			continue
		}
		bristolSamples = append(bristolSamples, mean(bristol))
		if len(pain) > 0 {
			painSamples = append(painSamples, mean(pain))
		}
		if len(satisfaction) > 0 {
			satisfactionSamples = append(satisfactionSamples, mean(satisfaction))
		}
	}

	if len(bristolSamples) == 0 {
		return windowAggregate{}, false
	}

	corr := types.CategoryCorrelation{
		SampleCount: len(bristolSamples),
	}
	avgBristol := mean(bristolSamples)
	corr.AvgBristol = &avgBristol
	if len(painSamples) > 0 {
		avgPain := mean(painSamples)
		corr.AvgPain = &avgPain
	}
	if len(satisfactionSamples) > 0 {
		avgSatisfaction := mean(satisfactionSamples)
		corr.AvgSatisfaction = &avgSatisfaction
	}
	return windowAggregate{
		corr:                corr,
		painSamples:         len(painSamples),
		satisfactionSamples: len(satisfactionSamples),
	}, true
}

// classifyBucket decides whether a food bucket's downstream metrics mark it
// as a trigger, beneficial, or neither.
func classifyBucket(name string, corr types.CategoryCorrelation) (trigger, beneficial *types.FoodBucket) {
	avgBristol := *corr.AvgBristol
	avgPain := corr.AvgPain

	if avgBristol <= 2 || avgBristol >= 6 || (avgPain != nil && *avgPain > 6) {
		severity := "medium"
		if avgPain != nil && *avgPain > 7 {
			severity = "high"
		}
		return &types.FoodBucket{
			Type:       name,
			AvgBristol: avgBristol,
			AvgPain:    avgPain,
			Severity:   severity,
		}, nil
	}

	if avgBristol >= 3 && avgBristol <= 4 && (avgPain == nil || *avgPain <= 3) {
		benefit := "medium"
		if avgBristol >= 3.5 {
			benefit = "high"
		}
		return nil, &types.FoodBucket{
			Type:         name,
			AvgBristol:   avgBristol,
			AvgPain:      avgPain,
			BenefitLevel: benefit,
		}
	}

	return nil, nil
}

// mealTimingCorrelation finds, per meal, the nearest following health
// record and reports the mean and median gap in hours across meals whose
// gap stays within the configured cap.
func mealTimingCorrelation(records []Record, meals []Meal, cfg Config) *types.TimingCorrelation {
	var gaps []float64
	for _, meal := range meals {
		// Records are sorted, so the first one after the meal is nearest.
		for _, r := range records {
			if !r.CreatedAt.After(meal.MealTime) {
				continue
			}
			gap := r.CreatedAt.Sub(meal.MealTime)
			if gap <= cfg.MealGapMax {
				gaps = append(gaps, gap.Hours())
			}
			break
		}
	}
	if len(gaps) == 0 {
		return nil
	}
	return &types.TimingCorrelation{
		AvgMealToRecordHours:    mean(gaps),
		MedianMealToRecordHours: upperMedian(gaps),
	}
}

// CorrelateSymptoms aggregates health records within the symptom window of
// each symptom type that has enough occurrences. Nearby records are
// collected once per occurrence, without dedup across overlapping windows.
func CorrelateSymptoms(records []Record, symptoms []Symptom, cfg Config) map[string]types.SymptomCorrelation {
	if len(symptoms) == 0 {
		return nil
	}

	byType := make(map[string][]Symptom)
	for _, s := range symptoms {
		byType[s.Type] = append(byType[s.Type], s)
	}

	out := make(map[string]types.SymptomCorrelation)
	for symptomType, occurrences := range byType {
		if len(occurrences) < cfg.MinSymptomOccurrences {
			continue
		}

		severities := make([]float64, len(occurrences))
		var bristol, pain []float64
		for i, s := range occurrences {
			severities[i] = float64(s.Severity)
			windowStart := s.CreatedAt.Add(-cfg.SymptomWindow)
			windowEnd := s.CreatedAt.Add(cfg.SymptomWindow)
			for _, r := range records {
				if r.CreatedAt.Before(windowStart) || r.CreatedAt.After(windowEnd) {
					continue
				}
				bristol = append(bristol, float64(r.BristolType))
				if r.Pain != nil {
					pain = append(pain, float64(*r.Pain))
				}
			}
		}

		corr := types.SymptomCorrelation{
			AvgSeverity: mean(severities),
			Occurrences: len(occurrences),
		}
		if len(bristol) > 0 {
			avgBristol := mean(bristol)
			corr.AvgBristolWithSymptoms = &avgBristol
		}
		if len(pain) > 0 {
			avgPain := mean(pain)
			corr.AvgPainWithSymptoms = &avgPain
		}
		out[symptomType] = corr
	}

	if len(out) == 0 {
		return map[string]types.SymptomCorrelation{}
	}
	return out
}
