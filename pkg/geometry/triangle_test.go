package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

func newTestTriangle(t *testing.T, a, b, c core.Vec3) *Triangle {
	t.Helper()
	triangle, err := NewTriangle(a, b, c, material.Matte(core.NewVec3(0.5, 0.5, 0.5)))
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	return triangle
}

func TestNewTriangle_CachedGeometry(t *testing.T) {
	a := core.NewVec3(0, 0, 0)
	b := core.NewVec3(1, 0, 0)
	c := core.NewVec3(0, 1, 0)
	triangle := newTestTriangle(t, a, b, c)

	if triangle.Vertices() != [3]core.Vec3{a, b, c} {
		t.Errorf("Unexpected vertices %v", triangle.Vertices())
	}

	expectedEdges := [3]core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(-1, 1, 0),
		core.NewVec3(0, -1, 0),
	}
	if triangle.Edges() != expectedEdges {
		t.Errorf("Expected edges %v, got %v", expectedEdges, triangle.Edges())
	}

	if triangle.Normal() != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normal (0, 0, 1), got %v", triangle.Normal())
	}
}

func TestNewTriangle_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c core.Vec3
	}{
		{"collinear", core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2)},
		{"coincident", core.NewVec3(1, 2, 3), core.NewVec3(1, 2, 3), core.NewVec3(1, 2, 3)},
		{"repeated vertex", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triangle, err := NewTriangle(tt.a, tt.b, tt.c, material.Material{})
			if !errors.Is(err, core.ErrDegenerate) {
				t.Errorf("Expected ErrDegenerate, got %v", err)
			}
			if triangle != nil {
				t.Error("Expected nil triangle")
			}
		})
	}
}

func TestTriangle_Intersect(t *testing.T) {
	// Counter-clockwise seen from +Z, face normal (0, 0, 1)
	ccw := newTestTriangle(t, core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	// Same footprint, opposite winding, face normal (0, 0, -1)
	cw := newTestTriangle(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))

	tests := []struct {
		name           string
		triangle       *Triangle
		ray            core.Ray
		shouldHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit against face normal",
			triangle:       ccw,
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			shouldHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "hit along face normal",
			triangle:       ccw,
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			shouldHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "opposite winding",
			triangle:       cw,
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			shouldHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			triangle:       ccw,
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 4)),
			shouldHit:      true,
			expectedT:      0.25,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:      "outside footprint on plane",
			triangle:  ccw,
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "parallel to plane",
			triangle:  ccw,
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 0), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "triangle behind origin",
			triangle:  ccw,
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			// Points on an edge have one zero triple product and fall outside
			name:      "on edge",
			triangle:  ccw,
			ray:       core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.triangle.Intersect(tt.ray)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !hit.Point.ApproxEqual(core.NewVec3(0.25, 0.25, 0), 1e-9) {
				t.Errorf("Expected point (0.25, 0.25, 0), got %v", hit.Point)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Expected normal %v to face the ray", hit.Normal)
			}
		})
	}
}

func TestTriangle_IntersectTilted(t *testing.T) {
	triangle := newTestTriangle(t,
		core.NewVec3(-1, 0, -1),
		core.NewVec3(1, 0, -1),
		core.NewVec3(0, 2, 1),
	)
	ray := core.NewRay(core.NewVec3(0, 0.5, 5), core.NewVec3(0, 0, -1))

	hit, isHit := triangle.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// Plane through the triangle contains the hit point
	if d := hit.Point.Subtract(core.NewVec3(-1, 0, -1)).Dot(triangle.Normal()); math.Abs(d) > 1e-9 {
		t.Errorf("Hit point %v is %g off the plane", hit.Point, d)
	}
	if !ray.At(hit.T).ApproxEqual(hit.Point, 1e-12) {
		t.Errorf("Hit point %v does not match ray.At(%f)", hit.Point, hit.T)
	}
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Expected normal %v to face the ray", hit.Normal)
	}
}
