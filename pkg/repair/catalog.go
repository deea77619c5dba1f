package repair

import (
	"context"
	"fmt"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/optimize"
)

// Options configures the fixes offered by AvailableFixes.
type Options struct {
	BuildVolume    float64
	TargetWall     float64
	PillarRadius   float64
	PillarSegments int
	BaseThickness  float64
	BaseMargin     float64
	Search         optimize.Options
}

// DefaultOptions returns the stock printer and fix parameters.
func DefaultOptions() Options {
	return Options{
		BuildVolume:    DefaultBuildVolume,
		TargetWall:     DefaultTargetWall,
		PillarRadius:   DefaultPillarRadius,
		PillarSegments: DefaultPillarSegments,
		BaseThickness:  DefaultBaseThickness,
		BaseMargin:     DefaultBaseMargin,
		Search:         optimize.DefaultOptions(),
	}
}

// Fix identifiers.
const (
	FixRotate   = "rotate"
	FixSupports = "supports"
	FixScale    = "scale"
	FixThicken  = "thicken"
	FixCenter   = "center"
	FixBase     = "base"
)

// AvailableFixes inspects an analysis of m and returns the applicable fixes
// in order: orientation, supports, scale, thickening, then the always
// offered centering and base plate. The fixes capture m; applying one never
// changes m or the other fixes.
func AvailableFixes(m mesh.Mesh, a analysis.Analysis, opts Options) []Fix {
	if opts.BuildVolume <= 0 {
		opts.BuildVolume = DefaultBuildVolume
	}

	var fixes []Fix

	if maxAngle := a.Overhangs.MaxAngle; maxAngle > analysis.OverhangWarning {
		severity := SeverityWarning
		if maxAngle > analysis.OverhangCritical {
			severity = SeverityCritical
		}
		fixes = append(fixes, Fix{
			ID:          FixRotate,
			Name:        "Optimize orientation",
			Description: fmt.Sprintf("Search orientations to reduce %d overhanging faces", a.Overhangs.Count),
			Severity:    severity,
			apply: func(ctx context.Context) (FixResult, error) {
				return FixOverhangsWithRotation(ctx, m, opts.Search)
			},
		})
		fixes = append(fixes, Fix{
			ID:          FixSupports,
			Name:        "Add support pillars",
			Description: "Generate cylindrical supports under the highest overhangs",
			Severity:    severity,
			apply: func(context.Context) (FixResult, error) {
				return AddSupports(m, opts.PillarRadius, opts.PillarSegments), nil
			},
		})
	}

	if largest := a.Geometry.BoundingBox.LargestDimension(); largest > opts.BuildVolume {
		fixes = append(fixes, Fix{
			ID:          FixScale,
			Name:        "Scale to build volume",
			Description: fmt.Sprintf("Shrink the %.1fmm model to fit a %.0fmm build volume", largest, opts.BuildVolume),
			Severity:    SeverityCritical,
			apply: func(context.Context) (FixResult, error) {
				return FixSizeForBuildVolume(m, opts.BuildVolume), nil
			},
		})
	}

	if minWall := a.WallThickness.Min; minWall < analysis.ThinWallWarning {
		severity := SeverityWarning
		if minWall < analysis.ThinWallCritical {
			severity = SeverityCritical
		}
		fixes = append(fixes, Fix{
			ID:          FixThicken,
			Name:        "Thicken walls",
			Description: fmt.Sprintf("Scale up so the %.2fmm walls approach %.1fmm", minWall, targetOrDefault(opts.TargetWall)),
			Severity:    severity,
			apply: func(context.Context) (FixResult, error) {
				return FixThinWalls(m, minWall, opts.TargetWall), nil
			},
		})
	}

	fixes = append(fixes,
		Fix{
			ID:          FixCenter,
			Name:        "Center on plate",
			Description: "Center the model and drop it onto the build plate",
			Severity:    SeverityInfo,
			apply: func(context.Context) (FixResult, error) {
				return CenterOnPlate(m), nil
			},
		},
		Fix{
			ID:          FixBase,
			Name:        "Add base",
			Description: "Add a thin base plate under the model for bed adhesion",
			Severity:    SeverityInfo,
			apply: func(context.Context) (FixResult, error) {
				return AddBasePlate(m, opts.BaseThickness, opts.BaseMargin), nil
			},
		},
	)
	return fixes
}

// Find returns the fix with the given id.
func Find(fixes []Fix, id string) (Fix, bool) {
	for _, f := range fixes {
		if f.ID == id {
			return f, true
		}
	}
	return Fix{}, false
}

func targetOrDefault(target float64) float64 {
	if target <= 0 {
		return DefaultTargetWall
	}
	return target
}
