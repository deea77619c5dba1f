package main

import (
	"fmt"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesCount    int
	edgesLongest  bool
	edgesShortest bool
	edgesBelow    float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Measure triangle edges",
	Long: `List the longest or shortest triangle edges, or the edges below a length.
Edges shorter than the nozzle diameter describe detail the printer cannot reproduce.`,
	Args: cobra.ExactArgs(1),
	Run:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesBelow, "below", 0, "Show edges shorter than this length in mm")
}

func runEdges(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()
	model := loadModel(ctx, args[0])

	stats := analysis.MeasureEdges(model.Mesh)

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case edgesLongest:
		edges = stats.Longest(edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesShortest:
		edges = stats.Shortest(edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesBelow > 0:
		edges = stats.EdgesShorterThan(edgesBelow)
		title = fmt.Sprintf("Edges shorter than %s (found %d)", analysis.FormatMeasurement(edgesBelow, ""), len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	default:
		edges = stats.Edges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total edges in model: %d\n", len(stats.Edges))
	fmt.Printf("Min edge length: %s\n", analysis.FormatMeasurement(stats.Min, ""))
	fmt.Printf("Max edge length: %s\n", analysis.FormatMeasurement(stats.Max, ""))
	fmt.Printf("Avg edge length: %s\n\n", analysis.FormatMeasurement(stats.Avg, ""))

	if len(edges) == 0 {
		fmt.Println("No edges found matching the criteria.")
		return
	}

	fmt.Printf("%-6s %-9s %-35s %-35s %-15s\n", "Index", "Triangle", "Start", "End", "Length")
	fmt.Println("---------------------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Printf("%-6d %-9d %-35s %-35s %-15.3f\n",
			i+1,
			edge.TriangleID,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
}
