// Package stats provides statistical utility functions for analyzers.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Percentile calculates the p-th percentile of a sorted slice.
// The slice must already be sorted in ascending order.
// Returns 0 if the slice is empty.
func Percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (p * len(sorted)) / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// MinMaxScale rescales values to [0, 1] and returns a new slice. A column
// with zero range carries no signal, so every value scales to 0 rather
// than dividing by zero.
func MinMaxScale(values []float64) []float64 {
	scaled := make([]float64, len(values))
	if len(values) == 0 {
		return scaled
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if hi == lo {
		return scaled
	}
	for i, v := range values {
		scaled[i] = (v - lo) / (hi - lo)
	}
	return scaled
}

// Mean returns the arithmetic mean of values, 0 when empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
