package cmd

import (
	"fmt"
	"io"

	"github.com/philipparndt/go4d/pkg/analysis"
	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/philipparndt/go4d/pkg/projection"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:               "info [shape]",
	Short:             "Display information about the catalog shapes",
	Long:              "Show vertex and edge counts, vertex degrees, edge lengths and 4D bounds for one shape or the whole catalog.",
	Args:              cobra.MaximumNArgs(1),
	RunE:              runInfo,
	ValidArgsFunction: completeShapes,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for i, result := range analysis.AnalyzeCatalog() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printInfo(out, result)
		}
		return nil
	}

	shape, err := polytope.ParseShape(args[0])
	if err != nil {
		return err
	}
	printInfo(out, analysis.AnalyzePolytope(polytope.Generate(shape)))
	return nil
}

func printInfo(out io.Writer, result *analysis.MeasurementResult) {
	fmt.Fprintln(out, result.Name)
	fmt.Fprintln(out, "====================")

	fmt.Fprintln(out, "Structure:")
	fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Degree: %d to %d\n\n", result.MinDegree, result.MaxDegree)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Diagonal: %s\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))
	fmt.Fprintf(out, "  Max radius: %s", analysis.FormatMeasurement(result.MaxRadius, ""))
	if result.ProjectionSafe(projection.Distance) {
		fmt.Fprintln(out, " (clear of the projection singularity)")
	} else {
		fmt.Fprintln(out, " (can reach the projection singularity)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
	fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
	fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))
}
