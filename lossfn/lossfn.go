// Package lossfn collects ready-made LossFunc implementations for use
// with fastdtw.Solver. They are ordinary standalone callables, not tied
// to the solver's internals — any func(a, b T) float64 works equally
// well, these just cover the common cases.
package lossfn

import "math"

// AbsDiff is the absolute-difference loss for scalar float64 samples,
// the default choice for one-dimensional signals.
func AbsDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

// SquaredDiff is the squared-difference loss for scalar float64 samples.
// It penalizes large deviations more aggressively than AbsDiff, at the
// cost of being less robust to outliers.
func SquaredDiff(a, b float64) float64 {
	d := a - b
	return d * d
}

// Euclidean is the Euclidean-distance loss for fixed-width vector
// samples — e.g. an RGB pixel or a short feature vector. a and b must
// be the same length.
func Euclidean(a, b []float64) float64 {
	var sumSq float64
	for i := range a {
		d := a[i] - b[i]
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}
