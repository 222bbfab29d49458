package analysis

import (
	"testing"
	"time"

	"github.com/kjanat/poo-tracker/internal/pkg/pointers"
	"github.com/kjanat/poo-tracker/internal/types"
)

func TestCorrelateMeals_NoMealsReturnsNil(t *testing.T) {
	out := CorrelateMeals(dailyRecords(5, 4), nil, DefaultConfig())
	if out != nil {
		t.Fatalf("expected nil correlations without meals, got %+v", out)
	}
}

func TestWindowedCorrelation_DigestionWindowBoundariesInclusive(t *testing.T) {
	mealTime := testBase
	meal := testMeal("m1", mealTime, func(m *types.MealRecord) {
		m.Category = pointers.String("pasta")
	})
	records := []Record{
		testRecord("before", 7, mealTime.Add(6*time.Hour-time.Minute)),
		testRecord("lower", 4, mealTime.Add(6*time.Hour)),
		testRecord("upper", 2, mealTime.Add(48*time.Hour)),
		testRecord("after", 7, mealTime.Add(48*time.Hour+time.Minute)),
	}

	out := CorrelateMeals(records, []Meal{meal}, DefaultConfig())
	corr, ok := out.CategoryCorrelations["pasta"]
	if !ok {
		t.Fatalf("expected pasta correlation")
	}
	if corr.SampleCount != 1 {
		t.Fatalf("expected 1 meal sample, got %d", corr.SampleCount)
	}
	// Only the two boundary records fall inside the closed window.
	if corr.AvgBristol == nil || !almostEqual(*corr.AvgBristol, 3) {
		t.Fatalf("expected avg bristol 3.0, got %v", corr.AvgBristol)
	}
}

func TestCorrelateMeals_FiberBucketClassifiedBeneficial(t *testing.T) {
	var meals []Meal
	var records []Record
	for i := 0; i < 3; i++ {
		at := testBase.Add(time.Duration(i) * 72 * time.Hour)
		meals = append(meals, testMeal("m", at, func(m *types.MealRecord) {
			m.FiberRich = true
		}))
		r := testRecord("r", 4, at.Add(12*time.Hour))
		r.Pain = pointers.Int(1)
		records = append(records, r)
	}

	out := CorrelateMeals(records, meals, DefaultConfig())
	if len(out.BeneficialFoods) != 1 {
		t.Fatalf("expected one beneficial bucket, got %+v", out.BeneficialFoods)
	}
	b := out.BeneficialFoods[0]
	if b.Type != "fiber_rich" || b.BenefitLevel != "high" {
		t.Fatalf("unexpected bucket: %+v", b)
	}
	if len(out.TriggerFoods) != 0 {
		t.Fatalf("expected no triggers, got %+v", out.TriggerFoods)
	}
}

func TestWindowedCorrelation_OverlappingWindowsCountTwice(t *testing.T) {
	// Two same-category meals whose digestion windows both contain the one
	// record: the record reinforces the signal once per qualifying meal.
	meals := []Meal{
		testMeal("m1", testBase, func(m *types.MealRecord) { m.Category = pointers.String("curry") }),
		testMeal("m2", testBase.Add(2*time.Hour), func(m *types.MealRecord) { m.Category = pointers.String("curry") }),
	}
	records := []Record{testRecord("r1", 5, testBase.Add(10*time.Hour))}

	out := CorrelateMeals(records, meals, DefaultConfig())
	corr := out.CategoryCorrelations["curry"]
	if corr.SampleCount != 2 {
		t.Fatalf("expected both overlapping windows to count, got %d", corr.SampleCount)
	}
}

func TestCorrelateMeals_BucketBelowMinSamplesSkipped(t *testing.T) {
	var meals []Meal
	var records []Record
	for i := 0; i < 2; i++ {
		at := testBase.Add(time.Duration(i) * 72 * time.Hour)
		meals = append(meals, testMeal("m", at, func(m *types.MealRecord) {
			m.Dairy = true
		}))
		records = append(records, testRecord("r", 7, at.Add(12*time.Hour)))
	}

	out := CorrelateMeals(records, meals, DefaultConfig())
	if len(out.TriggerFoods) != 0 || len(out.BeneficialFoods) != 0 {
		t.Fatalf("expected no classified buckets with 2 samples, got %+v", out)
	}
}

func TestCorrelateMeals_BucketWithThinPainEvidenceSkipped(t *testing.T) {
	// Three bristol samples but a single pain sample: one painful record
	// must not be enough to brand the whole bucket a trigger.
	var meals []Meal
	var records []Record
	for i := 0; i < 3; i++ {
		at := testBase.Add(time.Duration(i) * 72 * time.Hour)
		meals = append(meals, testMeal("m", at, func(m *types.MealRecord) {
			m.Gluten = true
		}))
		if i == 0 {
			records = append(records, testRecordWithPain("r", 4, 9, at.Add(12*time.Hour)))
		} else {
			records = append(records, testRecord("r", 4, at.Add(12*time.Hour)))
		}
	}

	out := CorrelateMeals(records, meals, DefaultConfig())
	if len(out.TriggerFoods) != 0 || len(out.BeneficialFoods) != 0 {
		t.Fatalf("expected bucket excluded on a single pain sample, got %+v", out)
	}
}

func TestFoodBuckets_SpicyRequiresLevelAboveThreshold(t *testing.T) {
	meals := []Meal{
		testMeal("mild", testBase, func(m *types.MealRecord) { m.SpicyLevel = pointers.Int(6) }),
		testMeal("hot", testBase, func(m *types.MealRecord) { m.SpicyLevel = pointers.Int(7) }),
	}
	buckets := foodBuckets(meals, DefaultConfig())
	if len(buckets) != 1 || buckets[0].name != "spicy" {
		t.Fatalf("expected only the spicy bucket, got %+v", buckets)
	}
	if len(buckets[0].meals) != 1 || buckets[0].meals[0].ID != "hot" {
		t.Fatalf("expected only level-7 meal in bucket, got %+v", buckets[0].meals)
	}
}

func TestClassifyBucket_TriggerAndBeneficial(t *testing.T) {
	trigger, beneficial := classifyBucket("spicy", types.CategoryCorrelation{
		AvgBristol: pointers.Float64(6.5),
		AvgPain:    pointers.Float64(8),
	})
	if trigger == nil || beneficial != nil {
		t.Fatalf("expected trigger only, got trigger=%v beneficial=%v", trigger, beneficial)
	}
	if trigger.Severity != "high" {
		t.Fatalf("expected high severity for pain > 7, got %q", trigger.Severity)
	}

	trigger, beneficial = classifyBucket("fiber_rich", types.CategoryCorrelation{
		AvgBristol: pointers.Float64(3.8),
	})
	if trigger != nil || beneficial == nil {
		t.Fatalf("expected beneficial only, got trigger=%v beneficial=%v", trigger, beneficial)
	}
	if beneficial.BenefitLevel != "high" {
		t.Fatalf("expected high benefit for avg >= 3.5, got %q", beneficial.BenefitLevel)
	}

	trigger, beneficial = classifyBucket("gluten", types.CategoryCorrelation{
		AvgBristol: pointers.Float64(5),
		AvgPain:    pointers.Float64(4),
	})
	if trigger != nil || beneficial != nil {
		t.Fatalf("expected no classification, got trigger=%v beneficial=%v", trigger, beneficial)
	}
}

func TestMealTimingCorrelation_MeanAndUpperMedian(t *testing.T) {
	meals := []Meal{
		testMeal("m1", testBase, nil),
		testMeal("m2", testBase.Add(100*time.Hour), nil),
	}
	records := []Record{
		testRecord("r1", 4, testBase.Add(8*time.Hour)),
		testRecord("r2", 4, testBase.Add(124*time.Hour)),
	}

	out := CorrelateMeals(records, meals, DefaultConfig())
	tc := out.TimingCorrelations
	if tc == nil {
		t.Fatalf("expected timing correlations")
	}
	if !almostEqual(tc.AvgMealToRecordHours, 16) {
		t.Fatalf("expected mean gap 16h, got %f", tc.AvgMealToRecordHours)
	}
	if !almostEqual(tc.MedianMealToRecordHours, 24) {
		t.Fatalf("expected upper median 24h, got %f", tc.MedianMealToRecordHours)
	}
}

func TestMealTimingCorrelation_GapCapExcludesDistantRecords(t *testing.T) {
	meals := []Meal{testMeal("m1", testBase, nil)}
	records := []Record{testRecord("r1", 4, testBase.Add(73*time.Hour))}

	out := CorrelateMeals(records, meals, DefaultConfig())
	if out.TimingCorrelations != nil {
		t.Fatalf("expected no timing correlation beyond 72h cap, got %+v", out.TimingCorrelations)
	}
}

func TestCorrelateSymptoms_NilWithoutSymptoms(t *testing.T) {
	out := CorrelateSymptoms(dailyRecords(3, 4), nil, DefaultConfig())
	if out != nil {
		t.Fatalf("expected nil, got %+v", out)
	}
}

func TestCorrelateSymptoms_RequiresMinimumOccurrences(t *testing.T) {
	symptoms := []Symptom{
		testSymptom("s1", "nausea", 5, testBase),
		testSymptom("s2", "nausea", 5, testBase.Add(24*time.Hour)),
	}
	out := CorrelateSymptoms(dailyRecords(3, 4), symptoms, DefaultConfig())
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty map for under-threshold symptom type, got %+v", out)
	}
}

func TestCorrelateSymptoms_WindowedAverages(t *testing.T) {
	var symptoms []Symptom
	var records []Record
	severities := []int{4, 6, 8}
	for i := 0; i < 3; i++ {
		day := testBase.Add(time.Duration(i) * 48 * time.Hour)
		symptoms = append(symptoms, testSymptom("s", "bloating", severities[i], day))
		records = append(records, testRecordWithPain("r", 6, 5, day.Add(6*time.Hour)))
	}

	out := CorrelateSymptoms(records, symptoms, DefaultConfig())
	corr, ok := out["bloating"]
	if !ok {
		t.Fatalf("expected bloating correlation, got %+v", out)
	}
	if corr.Occurrences != 3 || !almostEqual(corr.AvgSeverity, 6) {
		t.Fatalf("unexpected correlation: %+v", corr)
	}
	if corr.AvgBristolWithSymptoms == nil || !almostEqual(*corr.AvgBristolWithSymptoms, 6) {
		t.Fatalf("expected avg bristol 6, got %v", corr.AvgBristolWithSymptoms)
	}
	if corr.AvgPainWithSymptoms == nil || !almostEqual(*corr.AvgPainWithSymptoms, 5) {
		t.Fatalf("expected avg pain 5, got %v", corr.AvgPainWithSymptoms)
	}
}
