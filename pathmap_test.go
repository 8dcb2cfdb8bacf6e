package fastdtw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcPathCell_TerminalCellIsStop(t *testing.T) {
	loss := newGrid[float64](3)
	loss.set(2, 2, 5.0)
	path := newGrid[PathPoint](3)

	calcPathCell(loss, path, 3, 2, 2)
	assert.Equal(t, PathPoint{Cost: 5.0, Move: Stop}, path.at(2, 2))
}

func TestCalcPathCell_LastRowForcesRight(t *testing.T) {
	loss := newGrid[float64](3)
	loss.set(2, 2, 1.0)
	loss.set(2, 1, 2.0)
	path := newGrid[PathPoint](3)
	calcPathCell(loss, path, 3, 2, 2)
	calcPathCell(loss, path, 3, 2, 1)

	assert.Equal(t, Right, path.at(2, 1).Move)
	assert.Equal(t, 3.0, path.at(2, 1).Cost)
}

// TestCalcPathCell_TieBreakPrefersDiagonal constructs three successors with
// equal cost and checks Diagonal wins over Up and Right.
func TestCalcPathCell_TieBreakPrefersDiagonal(t *testing.T) {
	loss := newGrid[float64](3)
	loss.set(1, 1, 1.0) // finite: all three successors are reachable
	loss.set(0, 0, 1.0)
	path := newGrid[PathPoint](3)
	path.set(1, 0, PathPoint{Cost: 5.0, Move: Stop})
	path.set(0, 1, PathPoint{Cost: 5.0, Move: Stop})
	path.set(1, 1, PathPoint{Cost: 5.0, Move: Stop})

	calcPathCell(loss, path, 3, 0, 0)
	assert.Equal(t, Diagonal, path.at(0, 0).Move)
	assert.Equal(t, 6.0, path.at(0, 0).Cost)
}

func TestCalcPathCell_UnreachableSuccessorTreatedAsInf(t *testing.T) {
	loss := newGrid[float64](3)
	loss.set(0, 0, 1.0)
	loss.set(1, 0, infinity) // Up successor unreachable
	loss.set(0, 1, 3.0)
	loss.set(1, 1, 2.0)
	path := newGrid[PathPoint](3)
	path.set(1, 0, PathPoint{Cost: 0.0, Move: Stop}) // would win if not masked by +Inf loss
	path.set(0, 1, PathPoint{Cost: 10.0, Move: Stop})
	path.set(1, 1, PathPoint{Cost: 1.0, Move: Stop})

	calcPathCell(loss, path, 3, 0, 0)
	assert.Equal(t, Diagonal, path.at(0, 0).Move, "the Up successor's +Inf loss must exclude it from the min")
}

// TestBuildPathGridFull_MatchesHandComputedPath continues the worked
// example from lossmap_test.go: Y=[1,3,1,5], X=[1,1,5,1], absolute-difference
// loss. The backward recurrence folds each cumulative loss cell into its
// best successor's cost, so path[0][0].Cost is not the DTW distance — it is
// the deterministic value the recurrence produces, checked here by hand.
func TestBuildPathGridFull_MatchesHandComputedPath(t *testing.T) {
	y := []float64{1, 3, 1, 5}
	x := []float64{1, 1, 5, 1}
	loss := newGrid[float64](4)
	BuildLossGridFull(loss, y, x, absDiff, 4)

	path := newGrid[PathPoint](4)
	BuildPathGridFull(loss, path, 4)

	assert.Equal(t, PathPoint{Cost: 6.0, Move: Stop}, path.at(3, 3))
	assert.Equal(t, Up, path.at(2, 3).Move, "last column always forces Up")
	assert.Equal(t, Right, path.at(3, 2).Move, "last row always forces Right")
	assert.Equal(t, 10.0, path.at(0, 0).Cost)
	assert.Equal(t, Right, path.at(0, 0).Move)
}
