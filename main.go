package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/df07/go-raytracer-core/pkg/core"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "rtcore",
		Short: "Probe ray-sphere and ray-triangle intersections and point-light shading",
		Long: `rtcore fires a single ray into a handful of spheres and triangles given on the
command line, reports the nearest hit and, with "shade", the Phong color that a
point light produces there.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log intersection details to stderr")

	logger := func(cmd *cobra.Command) core.Logger {
		if !verbose {
			return log.New(io.Discard, "", 0)
		}
		return log.New(cmd.ErrOrStderr(), "rtcore: ", 0)
	}

	rootCmd.AddCommand(newHitCmd(logger))
	rootCmd.AddCommand(newShadeCmd(logger))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
