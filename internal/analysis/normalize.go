package analysis

import (
	"sort"
	"time"

	"github.com/kjanat/poo-tracker/internal/pkg/errors"
	"github.com/kjanat/poo-tracker/internal/types"
)

// Record is a health record with derived calendar fields attached. The
// derived fields back the timing and frequency analyzers so timestamps are
// decomposed exactly once.
type Record struct {
	types.HealthRecord

	Hour      int
	DayOfWeek string
	Date      string
}

// Meal and Symptom mirror their raw counterparts; normalization keeps all
// three kinds in one place so the analyzers share a single validated view.
type Meal struct {
	types.MealRecord
}

type Symptom struct {
	types.SymptomRecord
}

// Normalized is the uniform, time-sorted view of one analysis input.
type Normalized struct {
	Records  []Record
	Meals    []Meal
	Symptoms []Symptom
}

const dateLayout = "2006-01-02"

// Normalize validates the raw record lists and produces the derived view.
// Health records are required; meals and symptoms are optional. Records are
// sorted chronologically regardless of caller order, since the trend and
// window computations depend on it.
func Normalize(records []types.HealthRecord, meals []types.MealRecord, symptoms []types.SymptomRecord) (*Normalized, error) {
	if len(records) == 0 {
		return nil, errors.ErrEmptyInput
	}

	out := &Normalized{
		Records:  make([]Record, 0, len(records)),
		Meals:    make([]Meal, 0, len(meals)),
		Symptoms: make([]Symptom, 0, len(symptoms)),
	}

	for _, r := range records {
		if r.BristolType < 1 || r.BristolType > 7 {
			return nil, &InvalidRecordError{RecordID: r.ID, Field: "bristolType", Value: r.BristolType, Min: 1, Max: 7}
		}
		if err := checkScale(r.ID, "pain", r.Pain); err != nil {
			return nil, err
		}
		if err := checkScale(r.ID, "strain", r.Strain); err != nil {
			return nil, err
		}
		if err := checkScale(r.ID, "satisfaction", r.Satisfaction); err != nil {
			return nil, err
		}
		out.Records = append(out.Records, derive(r))
	}

	for _, m := range meals {
		if err := checkScale(m.ID, "spicyLevel", m.SpicyLevel); err != nil {
			return nil, err
		}
		out.Meals = append(out.Meals, Meal{MealRecord: m})
	}

	for _, s := range symptoms {
		if s.Severity < 1 || s.Severity > 10 {
			return nil, &InvalidRecordError{RecordID: s.ID, Field: "severity", Value: s.Severity, Min: 1, Max: 10}
		}
		out.Symptoms = append(out.Symptoms, Symptom{SymptomRecord: s})
	}

	sort.SliceStable(out.Records, func(i, j int) bool {
		return out.Records[i].CreatedAt.Before(out.Records[j].CreatedAt)
	})
	sort.SliceStable(out.Meals, func(i, j int) bool {
		return out.Meals[i].MealTime.Before(out.Meals[j].MealTime)
	})
	sort.SliceStable(out.Symptoms, func(i, j int) bool {
		return out.Symptoms[i].CreatedAt.Before(out.Symptoms[j].CreatedAt)
	})

	return out, nil
}

func derive(r types.HealthRecord) Record {
	return Record{
		HealthRecord: r,
		Hour:         r.CreatedAt.Hour(),
		DayOfWeek:    r.CreatedAt.Weekday().String(),
		Date:         r.CreatedAt.Format(dateLayout),
	}
}

func checkScale(recordID, field string, v *int) error {
	if v == nil {
		return nil
	}
	if *v < 1 || *v > 10 {
		return &InvalidRecordError{RecordID: recordID, Field: field, Value: *v, Min: 1, Max: 10}
	}
	return nil
}

// dailyCounts groups records by calendar date and returns per-day counts in
// date order.
func dailyCounts(records []Record) []float64 {
	byDate := make(map[string]int)
	for _, r := range records {
		byDate[r.Date]++
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	counts := make([]float64, 0, len(dates))
	for _, d := range dates {
		counts = append(counts, float64(byDate[d]))
	}
	return counts
}

// span returns the first and last record timestamps of a sorted record set.
func span(records []Record) (time.Time, time.Time) {
	if len(records) == 0 {
		now := time.Now()
		return now, now
	}
	return records[0].CreatedAt, records[len(records)-1].CreatedAt
}
