// Package analysis computes printability metrics for a triangle mesh:
// geometry measures, overhangs, an estimated wall thickness, material and
// time estimates and a composite score.
package analysis

import (
	"context"
	"fmt"

	"github.com/philipparndt/goprint/internal/logging"
	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/material"
	"github.com/philipparndt/goprint/pkg/mesh"
)

// MaxOverhangSamples bounds the sample list carried in an Analysis.
const MaxOverhangSamples = 50

// Geometry holds the basic measures of a mesh.
type Geometry struct {
	Volume        float64              `json:"volume"`      // mm³
	SurfaceArea   float64              `json:"surfaceArea"` // mm²
	BoundingBox   geometry.BoundingBox `json:"boundingBox"`
	Width         float64              `json:"width"`  // X
	Depth         float64              `json:"depth"`  // Z
	Height        float64              `json:"height"` // Y
	TriangleCount int                  `json:"triangleCount"`
}

// Overhangs summarizes the overhang detector output.
type Overhangs struct {
	MaxAngle float64          `json:"maxAngle"`
	Count    int              `json:"count"`
	Samples  []OverhangSample `json:"samples"` // first MaxOverhangSamples in triangle order
}

// Analysis is the aggregate report for one mesh and material.
type Analysis struct {
	Material      string        `json:"material"`
	Geometry      Geometry      `json:"geometry"`
	WallThickness WallThickness `json:"wallThickness"`
	Overhangs     Overhangs     `json:"overhangs"`
	Estimate      PrintEstimate `json:"estimate"`
	Printability  Printability  `json:"printability"`
}

// Analyze validates the mesh and runs every estimator. It returns a
// *mesh.InvalidMeshError for malformed buffers.
func Analyze(ctx context.Context, m mesh.Mesh, profile material.Profile) (Analysis, error) {
	logger := logging.New("analysis")

	if err := m.Validate(); err != nil {
		return Analysis{}, err
	}

	bbox := BoundingBox(m)
	geo := Geometry{
		Volume:        Volume(m),
		SurfaceArea:   SurfaceArea(m),
		BoundingBox:   bbox,
		Width:         bbox.Width(),
		Depth:         bbox.Depth(),
		Height:        bbox.Height(),
		TriangleCount: m.TriangleCount(),
	}
	if err := ctx.Err(); err != nil {
		return Analysis{}, fmt.Errorf("analysis cancelled: %w", err)
	}

	samples := DetectOverhangs(m, DefaultOverhangThreshold)
	overhangs := Overhangs{Count: len(samples), Samples: samples}
	for _, s := range samples {
		overhangs.MaxAngle = max(overhangs.MaxAngle, s.Angle)
	}
	if len(overhangs.Samples) > MaxOverhangSamples {
		overhangs.Samples = overhangs.Samples[:MaxOverhangSamples]
	}
	if overhangs.Samples == nil {
		overhangs.Samples = []OverhangSample{}
	}
	if err := ctx.Err(); err != nil {
		return Analysis{}, fmt.Errorf("analysis cancelled: %w", err)
	}

	thickness := estimateWallThickness(geo.Volume, geo.SurfaceArea, bbox)

	a := Analysis{
		Material:      profile.Name,
		Geometry:      geo,
		WallThickness: thickness,
		Overhangs:     overhangs,
		Estimate:      EstimatePrint(geo.Volume, profile),
		Printability:  ScorePrintability(thickness.Min, overhangs.MaxAngle, bbox),
	}

	logger.Debug("analysis complete",
		"triangles", geo.TriangleCount,
		"volume", geo.Volume,
		"overhangs", overhangs.Count,
		"score", a.Printability.Score)
	return a, nil
}
