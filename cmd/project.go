package cmd

import (
	"fmt"

	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/philipparndt/go4d/pkg/projection"
	"github.com/philipparndt/go4d/pkg/rotor"
	"github.com/spf13/cobra"
)

var projectAngles []string

var projectCmd = &cobra.Command{
	Use:   "project <shape>",
	Short: "Print the screen coordinates of a shape",
	Long: `Rotate a shape by fixed angles, project it to 2D and print the resulting
screen points and line segments.

Example:
  go4d project hypercube --angle xw=0.5 --angle yz=0.3 --zoom 1`,
	Args:              cobra.ExactArgs(1),
	RunE:              runProject,
	ValidArgsFunction: completeShapes,
}

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().StringArrayVarP(&projectAngles, "angle", "a", nil, "Rotation angle in radians as plane=value (repeatable)")
}

func runProject(cmd *cobra.Command, args []string) error {
	shape, err := polytope.ParseShape(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	values, err := parsePlaneValues(projectAngles)
	if err != nil {
		return err
	}
	var angles rotor.Angles
	for plane, value := range values {
		angles[plane] = value
	}

	p := polytope.Generate(shape)
	vp := projection.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	points := vp.ToScreen(projection.New().Project(rotor.Rotate(p.Vertices, angles)), vp.Scale(cfg.Zoom))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d points, %d segments, %dx%d, zoom %.2f)\n",
		p.Name, len(points), len(p.Edges), cfg.Window.Width, cfg.Window.Height, cfg.Zoom)
	fmt.Fprintln(out, "====================")

	fmt.Fprintln(out, "Points:")
	for i, pt := range points {
		fmt.Fprintf(out, "  %-4d %12.3f %12.3f\n", i, pt.X, pt.Y)
	}

	fmt.Fprintln(out, "\nSegments:")
	for _, e := range p.Edges {
		from, to := points[e.I], points[e.J]
		fmt.Fprintf(out, "  %-8s (%.3f, %.3f) -> (%.3f, %.3f)\n",
			fmt.Sprintf("%d-%d", e.I, e.J), from.X, from.Y, to.X, to.Y)
	}
	return nil
}
