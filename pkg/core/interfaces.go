package core

import "errors"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

var (
	// ErrZeroVector is returned when normalizing a vector of length zero
	ErrZeroVector = errors.New("cannot normalize zero-length vector")
	// ErrComponentIndex is returned for a component index outside 0..2
	ErrComponentIndex = errors.New("vector component index out of range")
	// ErrDegenerate marks a primitive that cannot be intersected (zero radius, collinear vertices)
	ErrDegenerate = errors.New("degenerate primitive")
	// ErrInvalidMaterial marks out-of-range material parameters
	ErrInvalidMaterial = errors.New("invalid material")
)
