package rubik

import "errors"

// Sentinel errors for the rubik package.
var (
	// Construction errors
	ErrInvalidSize     = errors.New("rubik: cube size must be at least 2")
	ErrUnsupportedSize = errors.New("rubik: solver requires a 3x3 cube")

	// Parsing errors
	ErrUnknownMove = errors.New("rubik: unknown move token")

	// State errors
	ErrStateInconsistent = errors.New("rubik: piece state inconsistent")
	ErrNotConverged      = errors.New("rubik: solver phase did not converge")
)
