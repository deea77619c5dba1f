package analysis

import (
	"fmt"

	"github.com/philipparndt/goprint/pkg/geometry"
)

// Scoring thresholds. The fix catalog offers repairs at the same limits.
const (
	ThinWallCritical = 0.8 // mm
	ThinWallWarning  = 1.2 // mm
	RobustWall       = 2.0 // mm

	OverhangCritical = 60.0 // degrees
	OverhangWarning  = 45.0 // degrees

	BuildVolumeCritical = 256.0 // mm
	BuildVolumeWarning  = 200.0 // mm

	goodScore = 80
)

// Printability is a 0-100 heuristic with the reasons behind each deduction.
type Printability struct {
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// ScorePrintability deducts from 100 for thin walls, steep overhangs and
// oversize dimensions.
func ScorePrintability(minWall, maxOverhang float64, bbox geometry.BoundingBox) Printability {
	p := Printability{Score: 100, Issues: []string{}, Suggestions: []string{}}

	switch {
	case minWall < ThinWallCritical:
		p.Score -= 30
		p.Issues = append(p.Issues, fmt.Sprintf("Walls are critically thin (%.2fmm, minimum %.1fmm)", minWall, ThinWallCritical))
		p.Suggestions = append(p.Suggestions, "Thicken walls or scale the model up")
	case minWall < ThinWallWarning:
		p.Score -= 15
		p.Issues = append(p.Issues, fmt.Sprintf("Walls are thin (%.2fmm, recommended %.1fmm)", minWall, ThinWallWarning))
		p.Suggestions = append(p.Suggestions, "Consider thickening walls for strength")
	}

	switch {
	case maxOverhang > OverhangCritical:
		p.Score -= 25
		p.Issues = append(p.Issues, fmt.Sprintf("Severe overhangs up to %.0f°", maxOverhang))
		p.Suggestions = append(p.Suggestions, "Reorient the model or add support structures")
	case maxOverhang > OverhangWarning:
		p.Score -= 10
		p.Issues = append(p.Issues, fmt.Sprintf("Moderate overhangs up to %.0f°", maxOverhang))
		p.Suggestions = append(p.Suggestions, "Supports may be needed for clean overhangs")
	}

	largest := bbox.LargestDimension()
	switch {
	case largest > BuildVolumeCritical:
		p.Score -= 20
		p.Issues = append(p.Issues, fmt.Sprintf("Model exceeds the build volume (%.1fmm > %.0fmm)", largest, BuildVolumeCritical))
		p.Suggestions = append(p.Suggestions, "Scale the model down or split it into parts")
	case largest > BuildVolumeWarning:
		p.Score -= 5
		p.Issues = append(p.Issues, fmt.Sprintf("Model is close to the build volume limit (%.1fmm)", largest))
		p.Suggestions = append(p.Suggestions, "Check that the model fits your printer")
	}

	p.Score = max(0, min(100, p.Score))

	if p.Score >= goodScore {
		p.Suggestions = append(p.Suggestions, "Model is well suited for printing")
	}
	if minWall >= RobustWall {
		p.Suggestions = append(p.Suggestions, "Wall thickness is robust")
	}
	return p
}
