package analysis

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/kjanat/poo-tracker/internal/pkg/pointers"
)

func TestAnalyzeDistribution_PercentagesSumToHundred(t *testing.T) {
	records := []Record{
		testRecord("r1", 1, testBase),
		testRecord("r2", 2, testBase.Add(time.Hour)),
		testRecord("r3", 3, testBase.Add(2*time.Hour)),
	}
	out := AnalyzeDistribution(records, DefaultConfig())

	sum := 0.0
	for _, p := range out.Percentages {
		sum += p
	}
	if math.Abs(sum-100) > 0.02 {
		t.Fatalf("expected percentages to sum to 100 within 0.02, got %f", sum)
	}
}

func TestAnalyzeDistribution_TieBreaksToSmallestType(t *testing.T) {
	records := []Record{
		testRecord("r1", 5, testBase),
		testRecord("r2", 2, testBase.Add(time.Hour)),
	}
	out := AnalyzeDistribution(records, DefaultConfig())
	if out.MostCommon.Type != 2 {
		t.Fatalf("expected tie to resolve to type 2, got %d", out.MostCommon.Type)
	}
	if !almostEqual(out.MostCommon.Percentage, 50) {
		t.Fatalf("expected 50%%, got %f", out.MostCommon.Percentage)
	}
}

func TestAnalyzeDistribution_AllTypeOneIsPoor(t *testing.T) {
	out := AnalyzeDistribution(dailyRecords(5, 1), DefaultConfig())
	if !strings.HasPrefix(out.HealthIndicator, "Poor") {
		t.Fatalf("expected Poor indicator, got %q", out.HealthIndicator)
	}
}

func TestAnalyzeDistribution_HealthIndicatorThresholds(t *testing.T) {
	cases := []struct {
		healthyCount int
		total        int
		wantPrefix   string
	}{
		{8, 10, "Excellent"}, // 80% in 3-4
		{6, 10, "Good"},      // 60%
		{4, 10, "Fair"},      // 40%
		{3, 10, "Poor"},      // exactly 30% is not above the Fair cutoff
	}
	for _, tc := range cases {
		var records []Record
		for i := 0; i < tc.healthyCount; i++ {
			records = append(records, testRecord("h", 4, testBase.Add(time.Duration(i)*time.Hour)))
		}
		for i := tc.healthyCount; i < tc.total; i++ {
			records = append(records, testRecord("u", 1, testBase.Add(time.Duration(i)*time.Hour)))
		}
		out := AnalyzeDistribution(records, DefaultConfig())
		if !strings.HasPrefix(out.HealthIndicator, tc.wantPrefix) {
			t.Fatalf("healthy=%d/%d: expected %q indicator, got %q", tc.healthyCount, tc.total, tc.wantPrefix, out.HealthIndicator)
		}
	}
}

func TestAnalyzeDistribution_TrendStableBelowTenRecords(t *testing.T) {
	// Data that would classify as improving if the gate did not apply.
	var records []Record
	for i := 0; i < 3; i++ {
		records = append(records, testRecord("early", 7, testBase.Add(time.Duration(i)*24*time.Hour)))
	}
	for i := 3; i < 9; i++ {
		records = append(records, testRecord("recent", 4, testBase.Add(time.Duration(i)*24*time.Hour)))
	}

	out := AnalyzeDistribution(records, DefaultConfig())
	if out.Trend != trendStable {
		t.Fatalf("expected stable trend below 10 records, got %q", out.Trend)
	}
}

func TestAnalyzeDistribution_TrendImprovesTowardIdeal(t *testing.T) {
	var records []Record
	for i := 0; i < 4; i++ {
		records = append(records, testRecord("early", 7, testBase.Add(time.Duration(i)*24*time.Hour)))
	}
	for i := 4; i < 8; i++ {
		records = append(records, testRecord("mid", 5, testBase.Add(time.Duration(i)*24*time.Hour)))
	}
	for i := 8; i < 12; i++ {
		records = append(records, testRecord("recent", 4, testBase.Add(time.Duration(i)*24*time.Hour)))
	}
	out := AnalyzeDistribution(records, DefaultConfig())
	if out.Trend != trendImproving {
		t.Fatalf("expected improving trend, got %q", out.Trend)
	}
}

func TestAnalyzeConsistencyTrends_NoDataMessage(t *testing.T) {
	out := AnalyzeConsistencyTrends(dailyRecords(3, 4))
	if out.Message != "No consistency data available" {
		t.Fatalf("expected no-data message, got %q", out.Message)
	}
	if out.Distribution != nil {
		t.Fatalf("expected nil distribution, got %v", out.Distribution)
	}
}

func TestAnalyzeConsistencyTrends_Histogram(t *testing.T) {
	records := dailyRecords(3, 4)
	records[0].Consistency = pointers.String("soft")
	records[1].Consistency = pointers.String("soft")
	records[2].Consistency = pointers.String("hard")

	out := AnalyzeConsistencyTrends(records)
	if out.MostCommon != "soft" {
		t.Fatalf("expected soft most common, got %q", out.MostCommon)
	}
	if out.Distribution["soft"] != 2 || out.Distribution["hard"] != 1 {
		t.Fatalf("unexpected distribution: %v", out.Distribution)
	}
}
