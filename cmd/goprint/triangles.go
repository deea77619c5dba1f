package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	triCount    int
	triLargest  bool
	triSmallest bool
	triOverhang bool
)

type triangleInfo struct {
	Index     int
	Area      float64
	Perimeter float64
	Vertices  string
}

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Analyze triangles of a model",
	Long:  "Display triangle area, perimeter and vertex positions, optionally only the overhanging ones.",
	Args:  cobra.ExactArgs(1),
	Run:   runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")
	trianglesCmd.Flags().BoolVar(&triOverhang, "overhangs", false, "Only show triangles that need support")
}

func runTriangles(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()
	m := loadModel(ctx, args[0]).Mesh

	triangles := make([]triangleInfo, 0, m.TriangleCount())
	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0

	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		if triOverhang {
			if _, ok := analysis.IsOverhang(tri.Normal, cfg.Search.Threshold); !ok {
				continue
			}
		}
		area := tri.Area()

		triangles = append(triangles, triangleInfo{
			Index:     i,
			Area:      area,
			Perimeter: tri.Perimeter(),
			Vertices: fmt.Sprintf("%s, %s, %s",
				analysis.FormatVector(tri.V1),
				analysis.FormatVector(tri.V2),
				analysis.FormatVector(tri.V3)),
		})

		totalArea += area
		minArea = math.Min(minArea, area)
		maxArea = math.Max(maxArea, area)
	}

	if len(triangles) == 0 {
		fmt.Println("No triangles found matching the criteria.")
		return
	}

	if triLargest {
		sort.SliceStable(triangles, func(i, j int) bool {
			return triangles[i].Area > triangles[j].Area
		})
	} else if triSmallest {
		sort.SliceStable(triangles, func(i, j int) bool {
			return triangles[i].Area < triangles[j].Area
		})
	}

	count := min(triCount, len(triangles))

	var title string
	if triLargest {
		title = fmt.Sprintf("Top %d Largest Triangles", count)
	} else if triSmallest {
		title = fmt.Sprintf("Top %d Smallest Triangles", count)
	} else {
		title = fmt.Sprintf("First %d Triangles", count)
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total triangles: %d\n", len(triangles))
	fmt.Printf("Total surface area: %.3f mm²\n", totalArea)
	fmt.Printf("Min triangle area: %.3f mm²\n", minArea)
	fmt.Printf("Max triangle area: %.3f mm²\n", maxArea)
	fmt.Printf("Avg triangle area: %.3f mm²\n\n", totalArea/float64(len(triangles)))

	for _, tri := range triangles[:count] {
		fmt.Printf("Triangle #%d:\n", tri.Index)
		fmt.Printf("  Area: %.3f mm²\n", tri.Area)
		fmt.Printf("  Perimeter: %s\n", analysis.FormatMeasurement(tri.Perimeter, ""))
		fmt.Printf("  Vertices: %s\n\n", tri.Vertices)
	}
}
