package lmfit

import "errors"

var (
	// ErrNoData indicates an empty x or y slice.
	ErrNoData = errors.New("lmfit: data must be non-empty")
	// ErrDimensionMismatch indicates len(x) != len(y).
	ErrDimensionMismatch = errors.New("lmfit: x and y must have the same length")
	// ErrBadBounds indicates malformed bounds: empty or unequal-length
	// vectors, a lower bound above its upper bound, or a NaN entry.
	ErrBadBounds = errors.New("lmfit: malformed bounds")
	// ErrBadConfig indicates a non-positive cap or tolerance, or a negative
	// step cap.
	ErrBadConfig = errors.New("lmfit: invalid solver configuration")
)
