package core

import "errors"

// Configuration errors. Constructors wrap these with context, so callers
// should match them with errors.Is.
var (
	ErrInvalidSize       = errors.New("grid size must be positive")
	ErrInvalidZoomBounds = errors.New("zoom bounds must satisfy 0 < min <= max")
	ErrInvalidSpeed      = errors.New("speed must be positive")
	ErrInvalidDensity    = errors.New("density must be within [0, 1]")
)
