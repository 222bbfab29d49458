package analysis

import (
	"math"
	"sort"
)

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation (divisor n), used by the
// health-metric paths. The timing and frequency paths use sampleStdDev.
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return math.Sqrt(sumSquaredDeviations(values) / float64(len(values)))
}

// sampleStdDev divides by n-1.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return math.Sqrt(sumSquaredDeviations(values) / float64(len(values)-1))
}

func sumSquaredDeviations(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum
}

// upperMedian returns sorted[len/2]; even-length inputs take the upper of
// the two middle values, no interpolation.
func upperMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
