package analysis

import (
	"math"

	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
)

// Volume returns the enclosed volume in mm³ as the absolute sum of the
// signed tetrahedra spanned by each triangle and the origin. The mesh is
// assumed closed and orientable; inconsistent global winding only flips the
// sign. An empty mesh has volume 0.
func Volume(m mesh.Mesh) float64 {
	sum := 0.0
	for t := 0; t < m.TriangleCount(); t++ {
		sum += triangleAt(m, t).SignedVolume()
	}
	return math.Abs(sum)
}

// SurfaceArea returns the total triangle area in mm².
func SurfaceArea(m mesh.Mesh) float64 {
	area := 0.0
	for t := 0; t < m.TriangleCount(); t++ {
		area += triangleAt(m, t).Area()
	}
	return area
}

// BoundingBox scans every vertex once. An empty mesh yields the zero box.
func BoundingBox(m mesh.Mesh) geometry.BoundingBox {
	if m.VertexCount() == 0 {
		return geometry.BoundingBox{}
	}
	bbox := geometry.NewBoundingBox()
	for i := 0; i < m.VertexCount(); i++ {
		bbox.Extend(m.Vertex(i))
	}
	return bbox
}

// triangleAt returns the raw vertices of triangle t without computing its normal.
func triangleAt(m mesh.Mesh, t int) geometry.Triangle {
	return geometry.Triangle{
		V1: m.Vertex(int(m.Indices[3*t])),
		V2: m.Vertex(int(m.Indices[3*t+1])),
		V3: m.Vertex(int(m.Indices[3*t+2])),
	}
}
