package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Epsilon is the tolerance used against self-intersection and boundary noise
const Epsilon = 1e-5

// Primitive interface for shapes that can be hit by rays.
// Implementations are read-only after construction and safe to share between goroutines.
type Primitive interface {
	// Intersect returns the hit for ray, or false when the ray misses
	Intersect(ray core.Ray) (Hit, bool)
	Material() material.Material
}
