// Package downsamplefn collects ready-made DownsampleFunc implementations
// for use with fastdtw.Solver, grounded on the pairwise-averaging
// coarsening the reference implementation uses to build its ladder.
package downsamplefn

// Mean averages two adjacent scalar float64 samples.
func Mean(a, b float64) float64 {
	return (a + b) / 2
}

// MeanVector averages two adjacent fixed-width vector samples
// element-wise — the vector analogue of Mean, for signals of short
// feature vectors (e.g. an RGB pixel). a and b must be the same length;
// the returned slice is freshly allocated.
func MeanVector(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = (a[i] + b[i]) / 2
	}
	return out
}

// Max takes the larger of two adjacent scalar float64 samples, useful
// when coarsening should preserve peaks rather than smooth them out
// (e.g. downsampling a disparity or edge-strength signal).
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
