package fastdtw

import "fmt"

// Options configures a Solver.
//
//	DownsampleLimit - caps the number of ladder levels built per Solve
//	                  call; -1 means unlimited (halve naturally until
//	                  length < 4 or odd). 0 disables the approximation
//	                  entirely and forces an exact DTW solve.
//	MaxDownsamples  - the hard ceiling on ladder levels regardless of
//	                  DownsampleLimit, fixing the ladder's scratch
//	                  capacity. Zero means DefaultMaxDownsamples.
type Options struct {
	DownsampleLimit int
	MaxDownsamples  int
}

// DefaultOptions returns safe defaults: unlimited natural downsampling
// bounded by DefaultMaxDownsamples levels.
func DefaultOptions() Options {
	return Options{DownsampleLimit: -1, MaxDownsamples: DefaultMaxDownsamples}
}

// Validate reports ErrBadOptions for an invalid field combination.
func (o *Options) Validate() error {
	if o.DownsampleLimit < -1 {
		return fmt.Errorf("%w: DownsampleLimit must be -1 or >= 0, got %d", ErrBadOptions, o.DownsampleLimit)
	}
	if o.MaxDownsamples < 0 {
		return fmt.Errorf("%w: MaxDownsamples must be >= 0, got %d", ErrBadOptions, o.MaxDownsamples)
	}
	return nil
}

// Solver drives the multi-resolution FastDTW loop for signals of a fixed
// length N. A Solver owns the loss grid and the path-cost grid, allocated
// once in New and reused across every level of every call to Solve, so
// repeated per-row use (the engine's target workload: stereo disparity,
// image warping) never reallocates the O(N²) grids. Each Solve call does
// allocate its two downsample ladders and the Path extracted at each
// level.
//
// A Solver is not safe for concurrent use; callers that want to
// parallelize across rows must construct one Solver per worker.
type Solver[T any] struct {
	n              int
	downsampleFn   DownsampleFunc[T]
	lossFn         LossFunc[T]
	loss           *lossGrid
	path           *pathGrid
	maxDownsamples int
	downsampleLim  int
	pathCap        int
}

// New constructs a Solver for signals of length n, with the given
// plug-in downsample and loss callables. Returns ErrInvalidLength for
// n <= 0, or ErrBadOptions for an invalid Options combination.
func New[T any](n int, downsampleFn DownsampleFunc[T], lossFn LossFunc[T], opts Options) (*Solver[T], error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	maxDownsamples := opts.MaxDownsamples
	if maxDownsamples == 0 {
		maxDownsamples = DefaultMaxDownsamples
	}

	return &Solver[T]{
		n:              n,
		downsampleFn:   downsampleFn,
		lossFn:         lossFn,
		loss:           newGrid[float64](n),
		path:           newGrid[PathPoint](n),
		maxDownsamples: maxDownsamples,
		downsampleLim:  opts.DownsampleLimit,
		pathCap:        2*n + 1,
	}, nil
}

// Solve computes the approximate optimal warping path between y and x,
// both of length N (the Solver's construction-time length). It:
//
//  1. builds a downsample ladder for each signal;
//  2. solves an exact DTW at the coarsest ladder level (full loss/path
//     grids, no guide);
//  3. ascends the ladder one level at a time, projecting the previous
//     level's path as a guide and solving only the band around it;
//  4. finally solves at the full resolution N using the finest ladder
//     guide (or, if the ladder is empty — e.g. N < 4 or
//     DownsampleLimit == 0 — an exact full-grid solve).
//
// The returned Path starts at (0,0) and ends at a Stop cell at
// (N-1, N-1). It is a newly allocated Vector holding copies of the
// path-grid entries, so later calls to Solve on this Solver leave it
// unchanged.
func (s *Solver[T]) Solve(y, x []T) (*Path, error) {
	if len(y) != s.n || len(x) != s.n {
		return nil, ErrLengthMismatch
	}

	yLadder := BuildLadder(y, s.n, s.downsampleFn, s.downsampleLim, s.maxDownsamples)
	xLadder := BuildLadder(x, s.n, s.downsampleFn, s.downsampleLim, s.maxDownsamples)
	// yLadder and xLadder always have equal length: the halting
	// condition (current length < 4 or odd) depends only on the running
	// length, which both ladders share at every step since both inputs
	// start at the same N.

	var guide *Path
	for i := yLadder.Len() - 1; i >= 0; i-- {
		yLevel, _ := yLadder.At(i) // i < yLadder.Len(), At cannot fail here
		xLevel, _ := xLadder.At(i)

		next, err := s.solveLevel(yLevel.Signal, xLevel.Signal, yLevel.Len, guide)
		if err != nil {
			return nil, fmt.Errorf("fastdtw: solving ladder level %d: %w", i, err)
		}
		guide = next
	}

	path, err := s.solveLevel(y, x, s.n, guide)
	if err != nil {
		return nil, fmt.Errorf("fastdtw: solving base resolution: %w", err)
	}
	return path, nil
}

// solveLevel builds the loss and path-cost grids for one resolution
// level (valid length l, full mode if guide is nil, banded mode
// otherwise) and extracts the resulting path.
func (s *Solver[T]) solveLevel(ySig, xSig []T, l int, guide *Path) (*Path, error) {
	if guide == nil {
		BuildLossGridFull(s.loss, ySig, xSig, s.lossFn, l)
		BuildPathGridFull(s.loss, s.path, l)
	} else {
		BuildLossGridBanded(s.loss, ySig, xSig, s.lossFn, l, guide)
		BuildPathGridBanded(s.loss, s.path, l, guide)
	}
	return ExtractPath(s.path, s.pathCap)
}
