package repair

import (
	"fmt"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/transform"
)

const (
	// DefaultBuildVolume is the largest printable dimension in mm.
	DefaultBuildVolume = 256.0
	// buildVolumeFill leaves a margin inside the build volume.
	buildVolumeFill = 0.95

	// DefaultTargetWall is the minimum wall the thickening fix aims for.
	DefaultTargetWall = 1.5
	maxThickenFactor  = 2.0
)

// FixSizeForBuildVolume scales the mesh down uniformly so its largest
// dimension is 95% of maxSize, then centers it on the plate. maxSize <= 0
// selects DefaultBuildVolume.
func FixSizeForBuildVolume(m mesh.Mesh, maxSize float64) FixResult {
	if maxSize <= 0 {
		maxSize = DefaultBuildVolume
	}
	largest := analysis.BoundingBox(m).LargestDimension()
	if largest <= maxSize {
		return unchanged(m, fmt.Sprintf("Model already fits the %.0fmm build volume", maxSize))
	}

	target := maxSize * buildVolumeFill
	factor := target / largest
	scaled := transform.CenterOnBuildPlate(transform.Scale(m, factor))
	return improved(scaled,
		fmt.Sprintf("Scaled to %.0f%% (largest dimension %.1fmm -> %.1fmm)", factor*100, largest, target),
		(1-factor)*100)
}

// FixThinWalls scales the mesh up so the estimated minimum wall reaches
// target, by at most 2x. target <= 0 selects DefaultTargetWall.
func FixThinWalls(m mesh.Mesh, currentMin, target float64) FixResult {
	if target <= 0 {
		target = DefaultTargetWall
	}
	if currentMin >= target {
		return unchanged(m, fmt.Sprintf("Walls already meet %.1fmm", target))
	}

	factor := maxThickenFactor
	if currentMin > 0 {
		factor = min(maxThickenFactor, target/currentMin)
	}
	scaled := transform.CenterOnBuildPlate(transform.Scale(m, factor))
	return improved(scaled,
		fmt.Sprintf("Scaled up %.2fx to thicken walls from %.2fmm toward %.1fmm", factor, currentMin, target),
		(factor-1)*100)
}

// CenterOnPlate wraps transform.CenterOnBuildPlate as a fix.
func CenterOnPlate(m mesh.Mesh) FixResult {
	return FixResult{
		Success:     true,
		Mesh:        transform.CenterOnBuildPlate(m),
		Description: "Centered on the build plate with the lowest point at Y=0",
	}
}
