package fastdtw

import "math"

// LossFunc returns the non-negative pairwise distance between two
// samples. It must return 0 for equal inputs under any sensible metric
// and must never return the reserved +Inf sentinel.
type LossFunc[T any] func(a, b T) float64

// lossGrid is the N×N cumulative-loss tableau: entry (y,x) holds the
// least cumulative loss over monotone paths from (0,0) to (y,x), or the
// +Inf sentinel for a cell outside the computed region.
type lossGrid = grid[float64]

// calcLossCell fills loss[y][x] per the grid invariant:
//
//	loss_here = lossFn(ySig[y], xSig[x])
//	m = min(left, down, down_left), out-of-bounds predecessors = +Inf
//	loss[y][x] = loss_here + (m == +Inf ? 0 : m)
//
// The "+Inf -> 0" substitution is not an error case: at the origin there
// is no predecessor, and at a band's leading edge there is no legitimate
// predecessor on the uphill side, so 0 is what makes the cell the start
// of a local partial sum rather than overflowing loss_here + Inf.
func calcLossCell[T any](g *lossGrid, ySig, xSig []T, lossFn LossFunc[T], y, x int) {
	loss := lossFn(ySig[y], xSig[x])

	left, down, downLeft := infinity, infinity, infinity
	if x > 0 {
		left = g.at(y, x-1)
	}
	if y > 0 {
		down = g.at(y-1, x)
	}
	if y > 0 && x > 0 {
		downLeft = g.at(y-1, x-1)
	}

	m := math.Min(left, math.Min(down, downLeft))
	if math.IsInf(m, 1) {
		m = 0
	}
	g.set(y, x, loss+m)
}

// seedCoarseMargin stamps the +Inf margin around position l when the
// level being solved is narrower than the grid's own stride n: cells
// just past the valid [0,l) region would otherwise still carry whatever
// a previous, wider level left behind.
func seedCoarseMargin(g *lossGrid, l, n int) {
	if l >= n {
		return
	}
	g.set(l, l-2, infinity)
	g.set(l, l-1, infinity)
	g.set(l, l, infinity)
	g.set(l-1, l, infinity)
	g.set(l-2, l, infinity)
}

// setLossFringe stamps the five-cell +Inf fringe immediately above and
// to the right of (y,x), skipping any cell that falls outside the grid.
func setLossFringe(g *lossGrid, y, x int) {
	if y < g.n-1 {
		g.setIfInBounds(y+1, x-1, infinity)
		g.setIfInBounds(y+1, x, infinity)
	}
	if y < g.n-1 && x < g.n-1 {
		g.setIfInBounds(y+1, x+1, infinity)
	}
	if x < g.n-1 {
		g.setIfInBounds(y, x+1, infinity)
		g.setIfInBounds(y-1, x+1, infinity)
	}
}

// BuildLossGridFull fills loss[0:l][0:l] completely, with no guide path.
// Used only at the coarsest resolved level (spec: "used only at coarsest
// level"). Visitation is row-major ascending so every cell's predecessors
// are already written when it is read.
func BuildLossGridFull[T any](g *lossGrid, ySig, xSig []T, lossFn LossFunc[T], l int) {
	seedCoarseMargin(g, l, g.n)
	for y := 0; y < l; y++ {
		for x := 0; x < l; x++ {
			calcLossCell(g, ySig, xSig, lossFn, y, x)
		}
	}
}

// BuildLossGridBanded fills only the band of cells adjacent to guide
// (a path computed at the next coarser level) plus its surrounding
// +Inf fringe, leaving everything else in the grid untouched. guide must
// not be nil; the walk stops at its first Stop move, which in an
// extracted path is the trailing terminal marker.
func BuildLossGridBanded[T any](g *lossGrid, ySig, xSig []T, lossFn LossFunc[T], l int, guide *Path) {
	seedCoarseMargin(g, l, g.n)

	calcLossCell(g, ySig, xSig, lossFn, 0, 0)
	calcLossCell(g, ySig, xSig, lossFn, 0, 1)
	calcLossCell(g, ySig, xSig, lossFn, 1, 0)
	calcLossCell(g, ySig, xSig, lossFn, 1, 1)
	setLossFringe(g, 1, 1)

	y, x := 1, 1
	lastMove := Stop // sentinel meaning "no previous move yet"
	hadLastMove := false

	for _, pt := range guide.All() {
		// The guide's final recorded point is its own terminal Stop
		// marker (spec §4.5): it names no grid step, so the band walk
		// ends here rather than treating it as a move.
		if pt.Move == Stop {
			break
		}
		switch pt.Move {
		case Up:
			y += 2
			if x > 1 {
				g.set(y, x-2, infinity)
				g.set(y-1, x-2, infinity)
				if !(hadLastMove && lastMove == Right) {
					g.set(y-2, x-2, infinity)
				}
			}
			calcLossCell(g, ySig, xSig, lossFn, y-1, x-1)
			calcLossCell(g, ySig, xSig, lossFn, y-1, x)
			calcLossCell(g, ySig, xSig, lossFn, y, x-1)
			calcLossCell(g, ySig, xSig, lossFn, y, x)
		case Right:
			x += 2
			if y > 1 {
				g.set(y-2, x, infinity)
				g.set(y-2, x-1, infinity)
				if !(hadLastMove && lastMove == Up) {
					g.set(y-2, x-2, infinity)
				}
			}
			calcLossCell(g, ySig, xSig, lossFn, y-1, x-1)
			calcLossCell(g, ySig, xSig, lossFn, y-1, x)
			calcLossCell(g, ySig, xSig, lossFn, y, x-1)
			calcLossCell(g, ySig, xSig, lossFn, y, x)
		case Diagonal:
			y += 2
			x += 2
			g.set(y, x-2, infinity)
			g.set(y-1, x-3, infinity)
			g.set(y-2, x, infinity)
			g.set(y-3, x-1, infinity)
			calcLossCell(g, ySig, xSig, lossFn, y-2, x-1)
			calcLossCell(g, ySig, xSig, lossFn, y-1, x-2)
			calcLossCell(g, ySig, xSig, lossFn, y-1, x-1)
			calcLossCell(g, ySig, xSig, lossFn, y-1, x)
			calcLossCell(g, ySig, xSig, lossFn, y, x-1)
			calcLossCell(g, ySig, xSig, lossFn, y, x)
		}
		setLossFringe(g, y, x)
		lastMove, hadLastMove = pt.Move, true
	}
}
