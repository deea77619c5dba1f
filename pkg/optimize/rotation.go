// Package optimize searches for a print orientation that minimizes overhangs.
package optimize

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/philipparndt/goprint/internal/logging"
	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/transform"
	"golang.org/x/sync/errgroup"
)

// Options tunes the grid search. Zero fields take the defaults.
type Options struct {
	// StepDegrees is the grid spacing on both axes (default 15).
	StepDegrees float64
	// XRange is the span searched about X starting at 0 (default 360).
	XRange float64
	// ZRange is the span searched about Z starting at 0 (default 180).
	ZRange float64
	// Threshold is the overhang threshold in degrees (default 45).
	Threshold float64
	// Workers bounds concurrent candidate evaluations (default GOMAXPROCS).
	Workers int
	// Progress, if set, is called after each evaluated candidate. It may be
	// called from several goroutines.
	Progress func(done, total int)
}

// DefaultOptions returns the 15° grid over X in [0,360) and Z in [0,180).
func DefaultOptions() Options {
	return Options{
		StepDegrees: 15,
		XRange:      360,
		ZRange:      180,
		Threshold:   analysis.DefaultOverhangThreshold,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.StepDegrees <= 0 {
		o.StepDegrees = d.StepDegrees
	}
	if o.XRange <= 0 {
		o.XRange = d.XRange
	}
	if o.ZRange <= 0 {
		o.ZRange = d.ZRange
	}
	if o.Threshold <= 0 {
		o.Threshold = d.Threshold
	}
	if o.Workers <= 0 {
		o.Workers = d.Workers
	}
	return o
}

// Result is the best orientation found. Angles are in radians; RY is
// always 0 because yaw does not change overhang exposure.
type Result struct {
	RX, RY, RZ    float64
	OriginalCount int
	BestCount     int
	MaxAngle      float64 // largest overhang angle in the best orientation
	// Reduction is the percentage drop in overhang count, never negative.
	Reduction float64
	Evaluated int
}

type candidate struct {
	rx, rz   float64
	count    int
	maxAngle float64
}

// better is the lexicographic order on (count, maxAngle).
func (c candidate) better(than candidate) bool {
	if c.count != than.count {
		return c.count < than.count
	}
	return c.maxAngle < than.maxAngle
}

// grid enumerates rx in the outer loop and rz in the inner loop. The angles
// are generated from integer steps so the count never drifts.
func grid(o Options) []candidate {
	nx := int(math.Ceil(o.XRange/o.StepDegrees - 1e-9))
	nz := int(math.Ceil(o.ZRange/o.StepDegrees - 1e-9))
	cands := make([]candidate, 0, nx*nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < nz; j++ {
			cands = append(cands, candidate{
				rx: geometry.Deg2Rad(float64(i) * o.StepDegrees),
				rz: geometry.Deg2Rad(float64(j) * o.StepDegrees),
			})
		}
	}
	return cands
}

// FindOptimalRotation runs an exhaustive grid search over orientations and
// returns the one with the fewest overhanging triangles, breaking ties by
// the smaller maximum overhang angle and then by grid order. The identity
// orientation is always a candidate, so the result never has more
// overhangs than the input. Cancelling ctx aborts the search with ctx.Err().
func FindOptimalRotation(ctx context.Context, m mesh.Mesh, opts Options) (Result, error) {
	o := opts.withDefaults()
	logger := logging.New("optimize")

	origCount, origMax := analysis.CountOverhangs(m, o.Threshold)
	cands := grid(o)
	logger.Debug("rotation search started",
		"triangles", m.TriangleCount(),
		"candidates", len(cands),
		"workers", o.Workers,
		"overhangs", origCount)

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range cands {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := &cands[i]
			rotated := transform.Rotate(m, c.rx, 0, c.rz)
			c.count, c.maxAngle = analysis.CountOverhangs(rotated, o.Threshold)
			if o.Progress != nil {
				o.Progress(int(done.Add(1)), len(cands))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("rotation search: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("rotation search: %w", err)
	}

	best := candidate{count: origCount, maxAngle: origMax}
	for _, c := range cands {
		if c.better(best) {
			best = c
		}
	}

	res := Result{
		RX:            best.rx,
		RZ:            best.rz,
		OriginalCount: origCount,
		BestCount:     best.count,
		MaxAngle:      best.maxAngle,
		Evaluated:     len(cands),
	}
	if origCount > 0 {
		res.Reduction = float64(origCount-best.count) / float64(origCount) * 100
	}

	logger.Info("rotation search finished",
		"rx_deg", geometry.Rad2Deg(res.RX),
		"rz_deg", geometry.Rad2Deg(res.RZ),
		"overhangs", res.BestCount,
		"reduction_pct", res.Reduction)
	return res, nil
}
