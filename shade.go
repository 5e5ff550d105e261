package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/lights"
)

func newShadeCmd(logger func(*cobra.Command) core.Logger) *cobra.Command {
	var scene sceneFlags
	var lightPos, lightColor []float64

	cmd := &cobra.Command{
		Use:     "shade",
		Short:   "Shade the nearest intersection of a ray with one point light",
		Example: `  rtcore shade --sphere 0,0,0,1 --origin 0,0,-5 --light-pos 0,0,-10 --specular 1,1,1 --shininess 32`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := toVec3("light-pos", lightPos)
			if err != nil {
				return err
			}
			color, err := toVec3("light-color", lightColor)
			if err != nil {
				return err
			}

			tr, ray, err := scene.build(logger(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			hit, ok := tr.Trace(ray)
			printHit(out, tr, hit, ok)
			if !ok {
				return nil
			}

			light := lights.NewPointLight(position, color)
			diffuse := light.DiffuseLight(hit)
			specular := light.SpecularLight(hit, ray)
			total := lights.Shade(light, hit, ray)

			fmt.Fprintf(out, "  ambient:  %v\n", hit.AmbientColor())
			fmt.Fprintf(out, "  diffuse:  %v\n", diffuse)
			fmt.Fprintf(out, "  specular: %v\n", specular)
			fmt.Fprintf(out, "  color:    %v\n", total)

			rgb := total.Clamp(0, 1).Multiply(255)
			fmt.Fprintf(out, "  rgb8:     %d %d %d\n", int(rgb.X+0.5), int(rgb.Y+0.5), int(rgb.Z+0.5))
			return nil
		},
	}
	scene.register(cmd)
	cmd.Flags().Float64SliceVar(&lightPos, "light-pos", []float64{0, 10, 0}, "Light position x,y,z")
	cmd.Flags().Float64SliceVar(&lightColor, "light-color", []float64{1, 1, 1}, "Light color r,g,b")
	return cmd
}
