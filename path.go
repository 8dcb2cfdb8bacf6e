package fastdtw

import "fmt"

// Path is a bounded sequence of PathPoints recording the walk of an
// alignment from (0,0) to its terminal Stop cell: the outbound move
// recorded at each visited cell implies the next cell, so the sequence
// alone reconstructs the full coordinate trail.
type Path = Vector[PathPoint]

// ExtractPath walks path forward from (0,0), following each cell's
// recorded outbound move, until it reads a cell whose move is Stop —
// that cell is pushed and the walk terminates. capacity bounds the
// output Path; per spec it must be at least 2*l-1 ordinary cells plus
// one Stop (solver.go sizes it at 2*n+1 for the solver's full N).
func ExtractPath(path *pathGrid, capacity int) (*Path, error) {
	out := NewVector[PathPoint](capacity)
	y, x := 0, 0

	for {
		pt := path.at(y, x)
		if err := out.Push(pt); err != nil {
			return nil, fmt.Errorf("fastdtw: extracting path at (%d,%d): %w", y, x, err)
		}

		switch pt.Move {
		case Up:
			y++
		case Right:
			x++
		case Diagonal:
			y++
			x++
		case Stop:
			return out, nil
		}
	}
}
