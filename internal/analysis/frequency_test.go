package analysis

import (
	"testing"
	"time"
)

func TestAnalyzeFrequency_DailyCounts(t *testing.T) {
	records := []Record{
		testRecord("r1", 4, testBase),
		testRecord("r2", 4, testBase.Add(2*time.Hour)),
		testRecord("r3", 4, testBase.Add(24*time.Hour)),
	}
	out := AnalyzeFrequency(records, DefaultConfig())

	if out.TotalEntries != 3 || out.TotalDays != 2 {
		t.Fatalf("unexpected totals: %+v", out)
	}
	if out.MaxDaily != 2 || out.MinDaily != 1 {
		t.Fatalf("unexpected max/min: %+v", out)
	}
	if !almostEqual(out.AvgDaily, 1.5) {
		t.Fatalf("expected avg 1.5, got %f", out.AvgDaily)
	}
}

func TestAnalyzeFrequency_ConsistencyNeutralUnderThreeDays(t *testing.T) {
	out := AnalyzeFrequency(dailyRecords(2, 4), DefaultConfig())
	if !almostEqual(out.ConsistencyScore, 0.5) {
		t.Fatalf("expected neutral 0.5 under 3 days, got %f", out.ConsistencyScore)
	}
}

func TestAnalyzeFrequency_ConsistencyUsesSampleStdDev(t *testing.T) {
	// Daily counts 1, 2, 3: sample stddev 1, mean 2, so the coefficient of
	// variation is exactly 0.5.
	var records []Record
	for day := 0; day < 3; day++ {
		for i := 0; i <= day; i++ {
			at := testBase.Add(time.Duration(day)*24*time.Hour + time.Duration(i)*time.Hour)
			records = append(records, testRecord("r", 4, at))
		}
	}
	out := AnalyzeFrequency(records, DefaultConfig())
	if !almostEqual(out.ConsistencyScore, 0.5) {
		t.Fatalf("expected consistency 0.5 from sample stddev, got %f", out.ConsistencyScore)
	}
}

func TestAnalyzeFrequency_UniformDaysArePerfectlyConsistent(t *testing.T) {
	out := AnalyzeFrequency(dailyRecords(5, 4), DefaultConfig())
	if !almostEqual(out.ConsistencyScore, 1.0) {
		t.Fatalf("expected 1.0 for uniform daily counts, got %f", out.ConsistencyScore)
	}
}
