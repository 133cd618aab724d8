package cmd

import (
	"fmt"

	"github.com/philipparndt/go4d/pkg/analysis"
	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/spf13/cobra"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:               "edges <shape>",
	Short:             "List and measure the edges of a shape",
	Long:              "List edges as vertex index pairs with their 4D endpoints and lengths: longest, shortest, or within a length range.",
	Args:              cobra.ExactArgs(1),
	RunE:              runEdges,
	ValidArgsFunction: completeShapes,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVar(&edgesShortest, "shortest", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
}

func runEdges(cmd *cobra.Command, args []string) error {
	shape, err := polytope.ParseShape(args[0])
	if err != nil {
		return err
	}

	result := analysis.AnalyzePolytope(polytope.Generate(shape))

	var edges []analysis.EdgeInfo
	var title string

	if edgesLongest {
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	} else if edgesShortest {
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	} else if edgesMaxLength > 0 {
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	} else {
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", result.Name, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "Min edge length: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
	fmt.Fprintf(out, "Max edge length: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
	fmt.Fprintf(out, "Avg edge length: %s\n\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))

	if len(edges) > 0 {
		fmt.Fprintf(out, "%-8s %-45s %-45s %-10s\n", "Edge", "Start", "End", "Length")
		for _, e := range edges {
			fmt.Fprintf(out, "%-8s %-45s %-45s %.6f\n",
				fmt.Sprintf("%d-%d", e.Edge.I, e.Edge.J),
				analysis.FormatVector(e.Start),
				analysis.FormatVector(e.End),
				e.Length)
		}
	}
	return nil
}
