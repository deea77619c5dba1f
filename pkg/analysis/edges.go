package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
)

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// EdgeStats summarizes triangle edge lengths. Very short edges hint at
// details finer than the nozzle can reproduce.
type EdgeStats struct {
	Edges []EdgeInfo
	Min   float64
	Max   float64
	Avg   float64
}

// MeasureEdges collects the three edges of every triangle.
func MeasureEdges(m mesh.Mesh) EdgeStats {
	stats := EdgeStats{Edges: make([]EdgeInfo, 0, m.TriangleCount()*3)}
	if m.TriangleCount() == 0 {
		return stats
	}

	stats.Min = math.MaxFloat64
	total := 0.0
	for t := 0; t < m.TriangleCount(); t++ {
		tri := triangleAt(m, t)
		for _, e := range [3][2]geometry.Vector3{{tri.V1, tri.V2}, {tri.V2, tri.V3}, {tri.V3, tri.V1}} {
			length := e[0].Distance(e[1])
			stats.Edges = append(stats.Edges, EdgeInfo{Start: e[0], End: e[1], Length: length, TriangleID: t})
			total += length
			stats.Min = math.Min(stats.Min, length)
			stats.Max = math.Max(stats.Max, length)
		}
	}
	stats.Avg = total / float64(len(stats.Edges))
	return stats
}

// EdgesShorterThan returns the edges below a length, in mesh order.
func (s EdgeStats) EdgesShorterThan(length float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, e := range s.Edges {
		if e.Length < length {
			edges = append(edges, e)
		}
	}
	return edges
}

// Longest returns the N longest edges.
func (s EdgeStats) Longest(count int) []EdgeInfo {
	return s.sorted(count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// Shortest returns the N shortest edges.
func (s EdgeStats) Shortest(count int) []EdgeInfo {
	return s.sorted(count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func (s EdgeStats) sorted(count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(s.Edges))
	copy(edges, s.Edges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "mm"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
