package grid

import "errors"

// Sentinel errors for grid parsing.
var (
	// ErrEmptyGrid indicates a width or height that is not positive.
	ErrEmptyGrid = errors.New("grid: width and height must both be positive")
	// ErrNonRectangular indicates the input stream held the wrong number of codes.
	ErrNonRectangular = errors.New("grid: expected exactly width*height cell codes")
	// ErrBadCellCode indicates a code outside {0,1,2,3}.
	ErrBadCellCode = errors.New("grid: cell code must be 0 (open), 1 (blocked), 2 (start), or 3 (end)")
	// ErrEndpointCount indicates a grid with a start/end count other than exactly one each.
	ErrEndpointCount = errors.New("grid: grid must have exactly one start cell and one end cell")
)
