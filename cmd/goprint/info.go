package main

import (
	"fmt"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display geometry of a model",
	Long:  "Show dimensions, triangle count, volume, surface area and edge statistics of an STL or OpenSCAD model.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	ctx, cancel := commandContext()
	defer cancel()
	model := loadModel(ctx, filename)
	m := model.Mesh

	bbox := analysis.BoundingBox(m)
	edges := analysis.MeasureEdges(m)

	fmt.Println("Model Information")
	fmt.Println("=================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh:")
	fmt.Printf("  Vertices: %d\n", m.VertexCount())
	fmt.Printf("  Triangles: %d\n", m.TriangleCount())
	fmt.Printf("  Surface Area: %s²\n", analysis.FormatMeasurement(analysis.SurfaceArea(m), ""))
	fmt.Printf("  Volume: %s³\n\n", analysis.FormatMeasurement(analysis.Volume(m), ""))

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(bbox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(bbox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(bbox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %s\n", analysis.FormatMeasurement(bbox.Width(), ""))
	fmt.Printf("  Depth (Z): %s\n", analysis.FormatMeasurement(bbox.Depth(), ""))
	fmt.Printf("  Height (Y): %s\n", analysis.FormatMeasurement(bbox.Height(), ""))
	fmt.Printf("  Diagonal: %s\n\n", analysis.FormatMeasurement(bbox.Diagonal(), ""))

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(edges.Min, ""))
	fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(edges.Max, ""))
	fmt.Printf("  Average: %s\n", analysis.FormatMeasurement(edges.Avg, ""))
}
