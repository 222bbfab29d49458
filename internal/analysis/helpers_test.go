package analysis

import (
	"fmt"
	"time"

	"github.com/kjanat/poo-tracker/internal/pkg/pointers"
	"github.com/kjanat/poo-tracker/internal/types"
)

var testBase = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC) // a Monday

func testRecord(id string, bristol int, at time.Time) Record {
	return derive(types.HealthRecord{
		ID:          id,
		UserID:      "user-1",
		BristolType: bristol,
		CreatedAt:   at,
	})
}

func testRecordWithPain(id string, bristol, pain int, at time.Time) Record {
	r := testRecord(id, bristol, at)
	r.Pain = pointers.Int(pain)
	return r
}

// dailyRecords produces one record per day starting at testBase, all at the
// same hour.
func dailyRecords(n, bristol int) []Record {
	out := make([]Record, n)
	for i := 0; i < n; i++ {
		out[i] = testRecord(fmt.Sprintf("r%d", i), bristol, testBase.Add(time.Duration(i)*24*time.Hour))
	}
	return out
}

func testMeal(id string, at time.Time, mutate func(*types.MealRecord)) Meal {
	m := types.MealRecord{
		ID:       id,
		UserID:   "user-1",
		MealTime: at,
	}
	if mutate != nil {
		mutate(&m)
	}
	return Meal{MealRecord: m}
}

func testSymptom(id, symptomType string, severity int, at time.Time) Symptom {
	return Symptom{SymptomRecord: types.SymptomRecord{
		ID:        id,
		UserID:    "user-1",
		Type:      symptomType,
		Severity:  severity,
		CreatedAt: at,
	}}
}

// seqIDs hands out deterministic identifiers for recommendation tests.
type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
