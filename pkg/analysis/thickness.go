package analysis

import (
	"math"

	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
)

const (
	// defaultAverageThickness is used when the mesh has no surface area.
	defaultAverageThickness = 2.0
	minThicknessFloor       = 0.5
	maxThicknessCap         = 10.0
	// problemThickness marks the model bottom as a problem area.
	problemThickness = 1.2
)

// WallThickness is a closed-form estimate, not a measured thickness field.
type WallThickness struct {
	Min          float64            `json:"min"`
	Max          float64            `json:"max"`
	Average      float64            `json:"average"`
	ProblemAreas []geometry.Vector3 `json:"problemAreas"`
}

// EstimateWallThickness derives thickness bounds from volume, area and the
// bounding box proportions of the mesh.
func EstimateWallThickness(m mesh.Mesh) WallThickness {
	return estimateWallThickness(Volume(m), SurfaceArea(m), BoundingBox(m))
}

// average = 2V/A, exact for simple convex slabs. The min/max spread widens
// as the bounding box gets less cubic.
func estimateWallThickness(volume, area float64, bbox geometry.BoundingBox) WallThickness {
	average := defaultAverageThickness
	if area > 0 {
		average = 2 * volume / area
	}

	sizeRatio := 0.0
	if largest := bbox.LargestDimension(); largest > 0 {
		sizeRatio = bbox.SmallestDimension() / largest
	}

	wt := WallThickness{
		Min:          math.Max(minThicknessFloor, average*(0.5+sizeRatio*0.3)),
		Max:          math.Min(maxThicknessCap, average*(1.2+(1-sizeRatio)*0.5)),
		Average:      average,
		ProblemAreas: []geometry.Vector3{},
	}
	if wt.Min < problemThickness {
		wt.ProblemAreas = append(wt.ProblemAreas, bbox.BottomCenter())
	}
	return wt
}
