package fastdtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fastdtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absLoss(a, b float64) float64 { return math.Abs(a - b) }

func movesOf(t *testing.T, p *fastdtw.Path) []fastdtw.Move {
	t.Helper()
	out := make([]fastdtw.Move, 0, p.Len())
	for _, pt := range p.All() {
		out = append(out, pt.Move)
	}
	return out
}

func TestNew_InvalidLength(t *testing.T) {
	_, err := fastdtw.New(0, mean, absLoss, fastdtw.DefaultOptions())
	require.ErrorIs(t, err, fastdtw.ErrInvalidLength)
}

func TestNew_BadOptions(t *testing.T) {
	opts := fastdtw.DefaultOptions()
	opts.DownsampleLimit = -2
	_, err := fastdtw.New(4, mean, absLoss, opts)
	require.ErrorIs(t, err, fastdtw.ErrBadOptions)
}

func TestSolve_LengthMismatch(t *testing.T) {
	s, err := fastdtw.New(4, mean, absLoss, fastdtw.DefaultOptions())
	require.NoError(t, err)

	_, err = s.Solve([]float64{1, 2, 3}, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, fastdtw.ErrLengthMismatch)
}

// TestSolve_IdenticalSignalsDiagonalOnly checks that aligning a signal with
// itself always yields the zero-cost diagonal, regardless of approximation:
// every pointwise loss is zero, so Diagonal's tie-break priority keeps the
// walk on the diagonal at every resolution level.
func TestSolve_IdenticalSignalsDiagonalOnly(t *testing.T) {
	sig := []float64{5, 5, 5, 5, 5, 5, 5, 5}
	s, err := fastdtw.New(len(sig), mean, absLoss, fastdtw.DefaultOptions())
	require.NoError(t, err)

	path, err := s.Solve(sig, sig)
	require.NoError(t, err)

	want := []fastdtw.Move{
		fastdtw.Diagonal, fastdtw.Diagonal, fastdtw.Diagonal, fastdtw.Diagonal,
		fastdtw.Diagonal, fastdtw.Diagonal, fastdtw.Diagonal, fastdtw.Stop,
	}
	assert.Equal(t, want, movesOf(t, path))
}

// TestSolve_ExactAtDownsampleLimitZero pins DownsampleLimit=0, which empties
// both ladders and forces a single full-resolution pass — exact DTW, with
// no banding approximation. The expected move sequence is the same one
// worked out by hand in pathmap_test.go and path_test.go for this signal
// pair under absolute-difference loss.
func TestSolve_ExactAtDownsampleLimitZero(t *testing.T) {
	y := []float64{1, 3, 1, 5}
	x := []float64{1, 1, 5, 1}
	opts := fastdtw.DefaultOptions()
	opts.DownsampleLimit = 0

	s, err := fastdtw.New(4, mean, absLoss, opts)
	require.NoError(t, err)

	path, err := s.Solve(y, x)
	require.NoError(t, err)
	assert.Equal(t, []fastdtw.Move{fastdtw.Right, fastdtw.Diagonal, fastdtw.Diagonal, fastdtw.Up, fastdtw.Stop}, movesOf(t, path))
}

// TestSolve_PathAlwaysEndsAtStop checks the structural invariant that holds
// for any resolution strategy: a Solve result always terminates with Stop
// and never exceeds its capacity.
func TestSolve_PathAlwaysEndsAtStop(t *testing.T) {
	n := 32
	y := make([]float64, n)
	x := make([]float64, n)
	for i := range y {
		y[i] = math.Sin(float64(i))
		x[i] = math.Sin(float64(i)) + 0.1
	}

	s, err := fastdtw.New(n, mean, absLoss, fastdtw.DefaultOptions())
	require.NoError(t, err)

	path, err := s.Solve(y, x)
	require.NoError(t, err)
	require.Greater(t, path.Len(), 0)
	require.LessOrEqual(t, path.Len(), 2*n+1)

	last, err := path.At(path.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, fastdtw.Stop, last.Move)
}

// TestSolve_ReusesGridsAcrossCalls exercises a Solver across two different
// input pairs, confirming the reused loss/path grids are fully overwritten
// by every call rather than leaking state between them.
func TestSolve_ReusesGridsAcrossCalls(t *testing.T) {
	s, err := fastdtw.New(4, mean, absLoss, fastdtw.DefaultOptions())
	require.NoError(t, err)

	first, err := s.Solve([]float64{1, 1, 1, 1}, []float64{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []fastdtw.Move{fastdtw.Diagonal, fastdtw.Diagonal, fastdtw.Diagonal, fastdtw.Stop}, movesOf(t, first))

	second, err := s.Solve([]float64{1, 3, 1, 5}, []float64{1, 1, 5, 1})
	require.NoError(t, err)
	moves := movesOf(t, second)
	require.NotEmpty(t, moves)
	assert.Equal(t, fastdtw.Stop, moves[len(moves)-1], "reused grids must not leave a stale path short of its terminus")
}
