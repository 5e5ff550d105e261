package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	center core.Vec3
	radius float64
	mat    material.Material
}

// NewSphere creates a new sphere. The radius must be positive.
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: sphere radius %g", core.ErrDegenerate, radius)
	}
	return &Sphere{
		center: center,
		radius: radius,
		mat:    mat,
	}, nil
}

func (s *Sphere) Center() core.Vec3 { return s.center }
func (s *Sphere) Radius() float64   { return s.radius }

// Material returns the sphere's surface material
func (s *Sphere) Material() material.Material { return s.mat }

// Intersect tests if a ray intersects with the sphere.
//
// Only the nearer root is considered. When it lies closer than Epsilon the ray
// misses, even if the farther root is in front of the origin; a ray starting
// inside the sphere therefore never hits it. The normal always points away
// from the center.
func (s *Sphere) Intersect(ray core.Ray) (Hit, bool) {
	oc := ray.Origin.Subtract(s.center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return Hit{}, false
	}
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b + sqrtD) / (2 * a)
	t2 := (-b - sqrtD) / (2 * a)

	root := t2
	if t1 < t2 {
		root = t1
	}
	if root < Epsilon {
		return Hit{}, false
	}

	point := ray.At(root)
	normal := point.Subtract(s.center).Normalize()

	return NewHit(s, normal, root, point), true
}
