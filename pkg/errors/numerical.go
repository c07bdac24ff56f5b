package errors

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// HasNaN reports whether values contains a NaN and returns the first offending index.
func HasNaN(values []float64) (int, bool) {
	for i, v := range values {
		if math.IsNaN(v) {
			return i, true
		}
	}
	return -1, false
}

// LogSumExp computes log(sum(exp(values))) in a numerically stable way.
// An empty slice or a slice of -Inf yields -Inf. A +Inf entry yields +Inf.
func LogSumExp(values []float64) float64 {
	if len(values) == 0 {
		return math.Inf(-1)
	}
	return floats.LogSumExp(values)
}
