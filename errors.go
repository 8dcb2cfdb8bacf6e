package fastdtw

import "errors"

// Sentinel errors returned by fastdtw's public entry points.
var (
	// ErrInvalidLength indicates a non-positive signal length N.
	ErrInvalidLength = errors.New("fastdtw: signal length must be > 0")

	// ErrLengthMismatch indicates a signal passed to Solve does not have
	// the length the Solver was constructed with.
	ErrLengthMismatch = errors.New("fastdtw: signal length does not match solver length")

	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("fastdtw: invalid options combination")

	// ErrCapacityExceeded indicates a push into a fixed-capacity Vector
	// beyond its construction-time capacity.
	ErrCapacityExceeded = errors.New("fastdtw: vector capacity exceeded")

	// ErrOutOfRange indicates an index access beyond a Vector's valid
	// length.
	ErrOutOfRange = errors.New("fastdtw: index out of range")

	// ErrEmptyPath indicates a path consumer (Warp, Disparity) was given
	// a path with zero recorded points.
	ErrEmptyPath = errors.New("fastdtw: path is empty")
)
