// Package fastdtw computes an approximate optimal alignment (a warping
// path) between two equal-length discrete signals under Dynamic Time
// Warping, using the FastDTW multi-resolution refinement strategy.
//
// 🚀 What is FastDTW?
//
//	Classic DTW finds the minimal cumulative cost to align two sequences
//	by solving an O(N²) dynamic program over the full N×N grid. FastDTW
//	instead:
//	  - downsamples both signals into a ladder of halved resolutions,
//	  - solves exactly at the coarsest level (a small grid),
//	  - projects that path onto the next finer level and only evaluates
//	    cells in a narrow band around the projection,
//	  - repeats up to the original resolution.
//
//	This trades a small, bounded loss of optimality for near-linear
//	instead of quadratic cost, and is built for per-row use inside image
//	pipelines (thousands of alignments per second on fixed-size rows):
//	stereo disparity estimation and image warping.
//
// ✨ Key properties:
//   - generic over the sample type via two plug-in callables:
//     DownsampleFunc (pairwise mean) and LossFunc (pairwise distance)
//   - fixed-size scratch grids, allocated once at construction and
//     reused across an entire solve and across downsample levels; each
//     Solve still allocates its downsample ladders and per-level paths
//   - deterministic: identical inputs produce identical paths
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fastdtw"
//	import "github.com/katalvlaran/fastdtw/lossfn"
//	import "github.com/katalvlaran/fastdtw/downsamplefn"
//
//	solver, err := fastdtw.New(len(y), downsamplefn.Mean, lossfn.AbsDiff, fastdtw.DefaultOptions())
//	path, err := solver.Solve(y, x)
//
//	warped := make([]float64, len(y))
//	fastdtw.Warp(path, y, warped)
//
// Performance:
//
//   - Time:   near-linear in N for a full solve (all levels together);
//     O(N²) only at the coarsest level, which is small by construction.
//   - Memory: O(N²) scratch (loss grid + path-cost grid), allocated once
//     at construction and reused for every Solve call and every level.
//
// See doc comments on Solver, BuildLossGrid* and BuildPathGrid* for the
// grid invariants, and example_test.go for runnable scenarios.
package fastdtw
