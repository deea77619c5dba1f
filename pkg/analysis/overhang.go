package analysis

import (
	"math"

	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
)

// DefaultOverhangThreshold is the tilt, in degrees from straight down, below
// which a downward-facing triangle needs support.
const DefaultOverhangThreshold = 45.0

// OverhangSample is one triangle that needs support.
type OverhangSample struct {
	Position geometry.Vector3 `json:"position"` // triangle centroid
	Angle    float64          `json:"angle"`    // degrees of tilt away from vertical support
	Normal   geometry.Vector3 `json:"normal"`   // unit face normal
}

// classifyOverhang returns the reported overhang angle in degrees and
// whether the face counts as an overhang.
//
// The raw angle uses |n·down|, so upward and downward faces at the same tilt
// get the same value; only the n.Y < 0 test separates real overhangs. Both
// halves must stay together.
func classifyOverhang(normal geometry.Vector3, thresholdRad float64) (float64, bool) {
	dot := math.Min(1, math.Abs(normal.Dot(geometry.Down)))
	angle := math.Acos(dot)
	if normal.Y < 0 && angle < thresholdRad {
		return 90 - geometry.Rad2Deg(angle), true
	}
	return 0, false
}

// DetectOverhangs returns one sample per overhanging triangle, in triangle
// order. thresholdDeg <= 0 selects DefaultOverhangThreshold.
func DetectOverhangs(m mesh.Mesh, thresholdDeg float64) []OverhangSample {
	thresholdRad := geometry.Deg2Rad(thresholdOrDefault(thresholdDeg))

	var samples []OverhangSample
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		if angle, ok := classifyOverhang(tri.Normal, thresholdRad); ok {
			samples = append(samples, OverhangSample{
				Position: tri.Center(),
				Angle:    angle,
				Normal:   tri.Normal,
			})
		}
	}
	return samples
}

// CountOverhangs returns the number of overhanging triangles and the largest
// reported angle without collecting samples.
func CountOverhangs(m mesh.Mesh, thresholdDeg float64) (int, float64) {
	thresholdRad := geometry.Deg2Rad(thresholdOrDefault(thresholdDeg))

	count := 0
	maxAngle := 0.0
	for t := 0; t < m.TriangleCount(); t++ {
		if angle, ok := classifyOverhang(m.Triangle(t).Normal, thresholdRad); ok {
			count++
			maxAngle = math.Max(maxAngle, angle)
		}
	}
	return count, maxAngle
}

// IsOverhang classifies a single unit face normal. It returns the reported
// angle in degrees.
func IsOverhang(normal geometry.Vector3, thresholdDeg float64) (float64, bool) {
	return classifyOverhang(normal, geometry.Deg2Rad(thresholdOrDefault(thresholdDeg)))
}

func thresholdOrDefault(deg float64) float64 {
	if deg <= 0 {
		return DefaultOverhangThreshold
	}
	return deg
}
