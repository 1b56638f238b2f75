package diffpat

import "errors"

var(
	// ErrBadParameter means an argument was out of range before any
	// computation started: mod < 1, a non-finite center, etc.
	ErrBadParameter = errors.New("bad parameter")

	// ErrShapeMismatch means two grids that must share dimensions do not.
	ErrShapeMismatch = errors.New("grid shapes differ")
)
