package repair

import (
	"fmt"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
)

const (
	DefaultBaseThickness = 1.0
	DefaultBaseMargin    = 3.0
)

// AddBase appends a rectangular slab under the mesh. The slab covers the
// footprint plus margin on every side and its top face touches the lowest
// point of the mesh.
func AddBase(m mesh.Mesh, thickness, margin float64) mesh.Mesh {
	if thickness <= 0 {
		thickness = DefaultBaseThickness
	}
	if margin < 0 {
		margin = DefaultBaseMargin
	}
	bbox := analysis.BoundingBox(m)
	slab := mesh.Box(
		geometry.NewVector3(bbox.Min.X-margin, bbox.Min.Y-thickness, bbox.Min.Z-margin),
		geometry.NewVector3(bbox.Max.X+margin, bbox.Min.Y, bbox.Max.Z+margin),
	)
	return mesh.Merge(m, slab)
}

// AddBasePlate wraps AddBase as a fix.
func AddBasePlate(m mesh.Mesh, thickness, margin float64) FixResult {
	if thickness <= 0 {
		thickness = DefaultBaseThickness
	}
	return FixResult{
		Success:     true,
		Mesh:        AddBase(m, thickness, margin),
		Description: fmt.Sprintf("Added a %.1fmm base plate for bed adhesion", thickness),
	}
}
