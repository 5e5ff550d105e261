package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	a, b, c    core.Vec3 // The three vertices
	ab, bc, ca core.Vec3 // Cached edge vectors
	normal     core.Vec3 // Cached unit normal, cross(ab, c-a)
	mat        material.Material
}

// NewTriangle creates a new triangle from three vertices.
// Collinear (or coincident) vertices are rejected with core.ErrDegenerate.
func NewTriangle(a, b, c core.Vec3, mat material.Material) (*Triangle, error) {
	ab := b.Subtract(a)
	ac := c.Subtract(a)

	cross := r3.Cross(ab.R3(), ac.R3())
	if r3.Norm(cross) == 0 {
		return nil, fmt.Errorf("%w: collinear triangle vertices %v %v %v", core.ErrDegenerate, a, b, c)
	}

	return &Triangle{
		a:      a,
		b:      b,
		c:      c,
		ab:     ab,
		bc:     c.Subtract(b),
		ca:     a.Subtract(c),
		normal: core.FromR3(cross).Normalize(),
		mat:    mat,
	}, nil
}

// Vertices returns a, b, c
func (t *Triangle) Vertices() [3]core.Vec3 { return [3]core.Vec3{t.a, t.b, t.c} }

// Edges returns b-a, c-b, a-c
func (t *Triangle) Edges() [3]core.Vec3 { return [3]core.Vec3{t.ab, t.bc, t.ca} }

// Normal returns the face normal implied by the vertex winding
func (t *Triangle) Normal() core.Vec3 { return t.normal }

// Material returns the triangle's surface material
func (t *Triangle) Material() material.Material { return t.mat }

// Intersect tests the ray against the triangle's plane, then checks the plane
// point with three scalar triple products.
//
// The triangle is two-sided: the point counts as inside when all three triple
// products agree in sign (all > -Epsilon or all < -Epsilon), so either winding
// hits. The reported normal is flipped when needed so it faces the incoming ray.
func (t *Triangle) Intersect(ray core.Ray) (Hit, bool) {
	denom := t.normal.Dot(ray.Direction)
	if denom == 0 {
		return Hit{}, false
	}

	tHit := t.normal.Dot(t.a.Subtract(ray.Origin)) / denom
	if tHit < 0 {
		return Hit{}, false
	}

	p := ray.At(tHit)

	tripleA := p.Subtract(t.a).Cross(t.ab).Dot(t.normal)
	tripleB := p.Subtract(t.b).Cross(t.bc).Dot(t.normal)
	tripleC := p.Subtract(t.c).Cross(t.ca).Dot(t.normal)

	allAbove := tripleA > -Epsilon && tripleB > -Epsilon && tripleC > -Epsilon
	allBelow := tripleA < -Epsilon && tripleB < -Epsilon && tripleC < -Epsilon
	if !allAbove && !allBelow {
		return Hit{}, false
	}

	normal := t.normal
	if denom > 0 {
		normal = normal.Negate()
	}

	return NewHit(t, normal, tHit, p), true
}
