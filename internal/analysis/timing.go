package analysis

import (
	"math"

	"github.com/kjanat/poo-tracker/internal/types"
)

// AnalyzeTiming computes hour-of-day and day-of-week histograms, the peak
// hour, the most active day and a timing regularity score.
func AnalyzeTiming(records []Record, cfg Config) types.TimingPattern {
	hourly := make(map[int]int)
	daily := make(map[string]int)
	for _, r := range records {
		hourly[r.Hour]++
		daily[r.DayOfWeek]++
	}

	peakHour := 0
	for hour := 0; hour < 24; hour++ {
		count, ok := hourly[hour]
		if !ok {
			continue
		}
		if best, seen := hourly[peakHour]; !seen || count > best {
			peakHour = hour
		}
	}

	mostActiveDay := ""
	for day, count := range daily {
		if mostActiveDay == "" || count > daily[mostActiveDay] || (count == daily[mostActiveDay] && day < mostActiveDay) {
			mostActiveDay = day
		}
	}

	return types.TimingPattern{
		HourlyDistribution: hourly,
		DailyDistribution:  daily,
		PeakHour:           peakHour,
		MostActiveDay:      mostActiveDay,
		RegularityScore:    regularityScore(records, cfg),
	}
}

// regularityScore averages an hour-spread sub-score with a daily-frequency
// sub-score. Under the minimum record count the data cannot support a
// judgement and a neutral 0.5 is returned.
func regularityScore(records []Record, cfg Config) float64 {
	if len(records) < cfg.MinRecordsForRegularity {
		return 0.5
	}

	hours := make([]float64, len(records))
	for i, r := range records {
		hours[i] = float64(r.Hour)
	}
	// 12 is the widest possible hour standard deviation.
	hourScore := math.Max(0, 1-sampleStdDev(hours)/12)

	counts := dailyCounts(records)
	m := mean(counts)
	frequencyScore := 0.0
	if m > 0 {
		frequencyScore = math.Max(0, 1-sampleStdDev(counts)/m)
	}

	return (hourScore + frequencyScore) / 2
}
