package fastdtw

import "math"

// PathPoint is one entry of a path-cost grid or of an extracted Path:
// Cost is the least cumulative loss from its cell to the terminus, Move
// is the outbound direction achieving it.
type PathPoint struct {
	Cost float64
	Move Move
}

// pathGrid is the N×N dual tableau: entry (y,x) holds the PathPoint
// describing the best route from (y,x) to the terminus (l-1,l-1).
type pathGrid = grid[PathPoint]

// calcPathCell fills path[y][x] per the grid invariant (spec §4.4). loss
// must already hold valid entries for (y,x) and every cell calcPathCell
// may read from (y+1,x), (y,x+1), (y+1,x+1) — visitation order is the
// caller's responsibility.
func calcPathCell(loss *lossGrid, path *pathGrid, l, y, x int) {
	if y == l-1 && x == l-1 {
		path.set(y, x, PathPoint{Cost: loss.at(y, x), Move: Stop})
		return
	}
	if y == l-1 {
		path.set(y, x, PathPoint{Cost: loss.at(y, x) + path.at(y, x+1).Cost, Move: Right})
		return
	}
	if x == l-1 {
		path.set(y, x, PathPoint{Cost: loss.at(y, x) + path.at(y+1, x).Cost, Move: Up})
		return
	}

	up := infinity
	if !math.IsInf(loss.at(y+1, x), 1) {
		up = path.at(y+1, x).Cost
	}
	right := infinity
	if !math.IsInf(loss.at(y, x+1), 1) {
		right = path.at(y, x+1).Cost
	}
	diag := infinity
	if !math.IsInf(loss.at(y+1, x+1), 1) {
		diag = path.at(y+1, x+1).Cost
	}

	m := math.Min(diag, math.Min(up, right))

	// Tie-break order Diagonal > Up > Right (spec §4.4): the first
	// branch in that order whose cost equals the minimum wins. Diagonal
	// is preferred because it shortens the path.
	switch {
	case diag == m:
		path.set(y, x, PathPoint{Cost: loss.at(y, x) + diag, Move: Diagonal})
	case up == m:
		path.set(y, x, PathPoint{Cost: loss.at(y, x) + up, Move: Up})
	default:
		path.set(y, x, PathPoint{Cost: loss.at(y, x) + right, Move: Right})
	}
}

// BuildPathGridFull fills path[0:l][0:l] completely, with no guide path.
// Visitation is reverse row-major so every cell's successors (y+1,x),
// (y,x+1), (y+1,x+1) are already written when it is read.
func BuildPathGridFull(loss *lossGrid, path *pathGrid, l int) {
	for y := l - 1; y >= 0; y-- {
		for x := l - 1; x >= 0; x-- {
			calcPathCell(loss, path, l, y, x)
		}
	}
}

// BuildPathGridBanded fills only the band of cells adjacent to guide
// plus its four corner cells, walking the guide in reverse so each
// cell's successors are written before it is read.
func BuildPathGridBanded(loss *lossGrid, path *pathGrid, l int, guide *Path) {
	y, x := l-1, l-1
	calcPathCell(loss, path, l, y, x)
	calcPathCell(loss, path, l, y, x-1)
	calcPathCell(loss, path, l, y-1, x)
	calcPathCell(loss, path, l, y-1, x-1)

	for _, pt := range guide.Backward() {
		// guide's first entry in reverse order is its own terminal Stop
		// marker (spec §4.5) — it names no grid step, so the walk skips
		// it and continues with the real moves that precede it.
		if pt.Move == Stop {
			continue
		}
		switch pt.Move {
		case Up:
			y -= 2
			calcPathCell(loss, path, l, y, x)
			calcPathCell(loss, path, l, y, x-1)
			calcPathCell(loss, path, l, y-1, x)
			calcPathCell(loss, path, l, y-1, x-1)
		case Right:
			x -= 2
			calcPathCell(loss, path, l, y, x)
			calcPathCell(loss, path, l, y, x-1)
			calcPathCell(loss, path, l, y-1, x)
			calcPathCell(loss, path, l, y-1, x-1)
		case Diagonal:
			y -= 2
			x -= 2
			calcPathCell(loss, path, l, y+1, x)
			calcPathCell(loss, path, l, y, x+1)
			calcPathCell(loss, path, l, y, x)
			calcPathCell(loss, path, l, y, x-1)
			calcPathCell(loss, path, l, y-1, x)
			calcPathCell(loss, path, l, y-1, x-1)
		}
	}
}
