package repair

import (
	"context"
	"fmt"

	"github.com/philipparndt/goprint/internal/logging"
	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/optimize"
	"github.com/philipparndt/goprint/pkg/transform"
)

// FixOverhangsWithRotation applies the orientation found by the optimizer
// and centers the result. Finding no better orientation is not an error.
func FixOverhangsWithRotation(ctx context.Context, m mesh.Mesh, opts optimize.Options) (FixResult, error) {
	res, err := optimize.FindOptimalRotation(ctx, m, opts)
	if err != nil {
		return FixResult{}, err
	}
	if res.Reduction == 0 {
		return unchanged(m, "Current orientation already has the fewest overhangs"), nil
	}

	rotated := transform.CenterOnBuildPlate(transform.Rotate(m, res.RX, res.RY, res.RZ))
	logging.New("repair").Debug("applied rotation",
		"overhangs_before", res.OriginalCount,
		"overhangs_after", res.BestCount)
	return improved(rotated,
		fmt.Sprintf("Rotated %.0f° about X and %.0f° about Z, overhangs %d -> %d",
			geometry.Rad2Deg(res.RX), geometry.Rad2Deg(res.RZ), res.OriginalCount, res.BestCount),
		res.Reduction), nil
}
