package optimize

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ceiling is a single triangle facing straight down.
var ceiling = mesh.Mesh{
	Vertices: []float32{0, 10, 0, 10, 10, 0, 0, 10, 10},
	Indices:  []uint32{0, 1, 2},
}

func TestDefaultGridSize(t *testing.T) {
	assert.Len(t, grid(DefaultOptions()), 288)
}

func TestCustomGridSize(t *testing.T) {
	assert.Len(t, grid(Options{StepDegrees: 90, XRange: 360, ZRange: 180}.withDefaults()), 8)
}

func TestFindOptimalRotationRemovesCeilingOverhang(t *testing.T) {
	count, _ := analysis.CountOverhangs(ceiling, 0)
	require.Equal(t, 1, count)

	res, err := FindOptimalRotation(context.Background(), ceiling, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.OriginalCount)
	assert.Equal(t, 0, res.BestCount)
	assert.InDelta(t, 100.0, res.Reduction, 1e-9)
	assert.Zero(t, res.RY)
	assert.Equal(t, 288, res.Evaluated)

	rotated := transform.Rotate(ceiling, res.RX, res.RY, res.RZ)
	after, _ := analysis.CountOverhangs(rotated, 0)
	assert.Zero(t, after)
}

func TestFindOptimalRotationNeverWorsens(t *testing.T) {
	shapes := map[string]mesh.Mesh{
		"cube": mesh.Cube(10),
		"tower": mesh.Merge(mesh.Cube(10), transform.Translate(mesh.Cube(30), 0, 10, 0)),
	}
	for name, m := range shapes {
		t.Run(name, func(t *testing.T) {
			res, err := FindOptimalRotation(context.Background(), m, Options{Workers: 2})
			require.NoError(t, err)

			assert.GreaterOrEqual(t, res.Reduction, 0.0)
			rotated := transform.Rotate(m, res.RX, res.RY, res.RZ)
			after, _ := analysis.CountOverhangs(rotated, 0)
			assert.LessOrEqual(t, after, res.OriginalCount)
		})
	}
}

func TestFindOptimalRotationWithoutOverhangs(t *testing.T) {
	floor := mesh.Mesh{
		Vertices: []float32{0, 0, 0, 0, 0, 10, 10, 0, 0},
		Indices:  []uint32{0, 1, 2},
	}
	res, err := FindOptimalRotation(context.Background(), floor, Options{})
	require.NoError(t, err)

	assert.Zero(t, res.Reduction)
	assert.Zero(t, res.RX)
	assert.Zero(t, res.RZ)
}

func TestFindOptimalRotationIsDeterministic(t *testing.T) {
	m := mesh.Merge(mesh.Cube(10), transform.Rotate(mesh.Cube(5), 0.3, 0.1, 0.7))
	first, err := FindOptimalRotation(context.Background(), m, Options{Workers: 1})
	require.NoError(t, err)
	second, err := FindOptimalRotation(context.Background(), m, Options{Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindOptimalRotationReportsProgress(t *testing.T) {
	var calls atomic.Int32
	var lastTotal atomic.Int32
	_, err := FindOptimalRotation(context.Background(), ceiling, Options{
		StepDegrees: 30,
		Progress: func(done, total int) {
			calls.Add(1)
			lastTotal.Store(int32(total))
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(12*6), calls.Load())
	assert.Equal(t, int32(12*6), lastTotal.Load())
}

func TestFindOptimalRotationCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindOptimalRotation(ctx, mesh.Cube(10), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
