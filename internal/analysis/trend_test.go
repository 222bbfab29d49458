package analysis

import (
	"testing"
	"time"
)

func TestCompositeTrend_StableUnderFourteenRecords(t *testing.T) {
	if got := CompositeTrend(dailyRecords(13, 7), DefaultConfig()); got != trendStable {
		t.Fatalf("expected stable under 14 records, got %q", got)
	}
}

func TestCompositeTrend_BristolMovingTowardIdealImproves(t *testing.T) {
	var records []Record
	for i := 0; i < 7; i++ {
		records = append(records, testRecord("old", 7, testBase.Add(time.Duration(i)*24*time.Hour)))
	}
	for i := 7; i < 14; i++ {
		records = append(records, testRecord("new", 4, testBase.Add(time.Duration(i)*24*time.Hour)))
	}
	if got := CompositeTrend(records, DefaultConfig()); got != trendImproving {
		t.Fatalf("expected improving, got %q", got)
	}
}

func TestCompositeTrend_RisingPainOverridesBristolImprovement(t *testing.T) {
	var records []Record
	for i := 0; i < 7; i++ {
		records = append(records, testRecordWithPain("old", 7, 2, testBase.Add(time.Duration(i)*24*time.Hour)))
	}
	for i := 7; i < 14; i++ {
		records = append(records, testRecordWithPain("new", 4, 6, testBase.Add(time.Duration(i)*24*time.Hour)))
	}
	if got := CompositeTrend(records, DefaultConfig()); got != trendDeclining {
		t.Fatalf("expected declining when pain worsens, got %q", got)
	}
}

func TestAssessPainTrend_StableWhenEitherHalfEmpty(t *testing.T) {
	if got := assessPainTrend(nil, []float64{5}); got != trendStable {
		t.Fatalf("expected stable without historical pain, got %q", got)
	}
	if got := assessPainTrend([]float64{5}, nil); got != trendStable {
		t.Fatalf("expected stable without recent pain, got %q", got)
	}
}
