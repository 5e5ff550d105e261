package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// sceneFlags holds the primitives, shared material and probe ray given on the command line
type sceneFlags struct {
	spheres   []string
	triangles []string

	diffuse      []float64
	ambient      []float64
	specular     []float64
	shininess    float64
	reflectivity float64

	origin    []float64
	direction []float64
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVar(&f.spheres, "sphere", nil, "Sphere as cx,cy,cz,radius (repeatable)")
	flags.StringArrayVar(&f.triangles, "triangle", nil, "Triangle as ax,ay,az,bx,by,bz,cx,cy,cz (repeatable)")

	flags.Float64SliceVar(&f.diffuse, "diffuse", []float64{0.8, 0.8, 0.8}, "Diffuse color r,g,b")
	flags.Float64SliceVar(&f.ambient, "ambient", []float64{0, 0, 0}, "Ambient color r,g,b")
	flags.Float64SliceVar(&f.specular, "specular", []float64{0, 0, 0}, "Specular color r,g,b")
	flags.Float64Var(&f.shininess, "shininess", 0, "Specular exponent")
	flags.Float64Var(&f.reflectivity, "reflectivity", 0, "Reflection coefficient in [0, 1]")

	flags.Float64SliceVar(&f.origin, "origin", []float64{0, 0, 0}, "Ray origin x,y,z")
	flags.Float64SliceVar(&f.direction, "dir", []float64{0, 0, 1}, "Ray direction x,y,z")
}

func (f *sceneFlags) ray() (core.Ray, error) {
	origin, err := toVec3("origin", f.origin)
	if err != nil {
		return core.Ray{}, err
	}
	direction, err := toVec3("dir", f.direction)
	if err != nil {
		return core.Ray{}, err
	}
	return core.NewRay(origin, direction), nil
}

func (f *sceneFlags) surface() (material.Material, error) {
	diffuse, err := toVec3("diffuse", f.diffuse)
	if err != nil {
		return material.Material{}, err
	}
	ambient, err := toVec3("ambient", f.ambient)
	if err != nil {
		return material.Material{}, err
	}
	specular, err := toVec3("specular", f.specular)
	if err != nil {
		return material.Material{}, err
	}
	return material.New(diffuse, ambient, specular, f.shininess, f.reflectivity)
}

// primitives builds spheres first, then triangles, in flag order
func (f *sceneFlags) primitives() ([]geometry.Primitive, error) {
	mat, err := f.surface()
	if err != nil {
		return nil, err
	}

	var prims []geometry.Primitive
	for _, s := range f.spheres {
		v, err := parseFloats(s, 4)
		if err != nil {
			return nil, fmt.Errorf("--sphere %q: %w", s, err)
		}
		sphere, err := geometry.NewSphere(core.NewVec3(v[0], v[1], v[2]), v[3], mat)
		if err != nil {
			return nil, fmt.Errorf("--sphere %q: %w", s, err)
		}
		prims = append(prims, sphere)
	}
	for _, s := range f.triangles {
		v, err := parseFloats(s, 9)
		if err != nil {
			return nil, fmt.Errorf("--triangle %q: %w", s, err)
		}
		triangle, err := geometry.NewTriangle(
			core.NewVec3(v[0], v[1], v[2]),
			core.NewVec3(v[3], v[4], v[5]),
			core.NewVec3(v[6], v[7], v[8]),
			mat,
		)
		if err != nil {
			return nil, fmt.Errorf("--triangle %q: %w", s, err)
		}
		prims = append(prims, triangle)
	}

	if len(prims) == 0 {
		return nil, fmt.Errorf("no primitives: pass at least one --sphere or --triangle")
	}
	return prims, nil
}

func toVec3(name string, v []float64) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, fmt.Errorf("--%s needs 3 components, got %d", name, len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// parseFloats parses exactly n comma-separated numbers
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d", n, len(parts))
	}
	values := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}
