package analytics

import "math"

// mean of a non-empty sample.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// popStdDev is the population standard deviation (divide by N, not N-1).
// The ledger snapshot is the whole population under analysis, not a sample
// drawn from a larger one.
func popStdDev(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - avg
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
