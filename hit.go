package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/tracer"
)

func newHitCmd(logger func(*cobra.Command) core.Logger) *cobra.Command {
	var scene sceneFlags

	cmd := &cobra.Command{
		Use:   "hit",
		Short: "Report the nearest intersection of a ray",
		Example: `  rtcore hit --sphere 0,0,0,1 --origin 0,0,-5 --dir 0,0,1
  rtcore hit --triangle 0,0,0,1,0,0,0,1,0 --origin 0.25,0.25,-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, ray, err := scene.build(logger(cmd))
			if err != nil {
				return err
			}
			hit, ok := tr.Trace(ray)
			printHit(cmd.OutOrStdout(), tr, hit, ok)
			return nil
		},
	}
	scene.register(cmd)
	return cmd
}

// build creates a tracer over the flag primitives and the probe ray
func (f *sceneFlags) build(logger core.Logger) (*tracer.Tracer, core.Ray, error) {
	prims, err := f.primitives()
	if err != nil {
		return nil, core.Ray{}, err
	}
	ray, err := f.ray()
	if err != nil {
		return nil, core.Ray{}, err
	}

	logger.Printf("%d primitives, ray %v -> %v", len(prims), ray.Origin, ray.Direction)
	for i, p := range prims {
		if hit, ok := p.Intersect(ray); ok {
			logger.Printf("  %s: t=%g", describe(prims, i), hit.T)
		} else {
			logger.Printf("  %s: miss", describe(prims, i))
		}
	}

	return tracer.New(prims, tracer.Config{Workers: 1}, logger), ray, nil
}

// describe names prims[index] by kind and position among primitives of that kind
func describe(prims []geometry.Primitive, index int) string {
	if index < 0 {
		return "unknown primitive"
	}
	kind := func(p geometry.Primitive) string {
		switch p.(type) {
		case *geometry.Sphere:
			return "sphere"
		case *geometry.Triangle:
			return "triangle"
		}
		return "primitive"
	}

	name := kind(prims[index])
	n := 0
	for _, p := range prims[:index] {
		if kind(p) == name {
			n++
		}
	}
	return fmt.Sprintf("%s #%d", name, n)
}

func indexOf(prims []geometry.Primitive, p geometry.Primitive) int {
	for i, candidate := range prims {
		if candidate == p {
			return i
		}
	}
	return -1
}

func printHit(w io.Writer, tr *tracer.Tracer, hit geometry.Hit, ok bool) {
	if !ok {
		fmt.Fprintln(w, "No hit")
		return
	}
	prims := tr.Primitives()
	fmt.Fprintf(w, "Hit: %s\n", describe(prims, indexOf(prims, hit.Object)))
	fmt.Fprintf(w, "  t:      %g\n", hit.T)
	fmt.Fprintf(w, "  point:  %v\n", hit.Point)
	fmt.Fprintf(w, "  normal: %v\n", hit.Normal)
}
