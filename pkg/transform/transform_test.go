package transform

import (
	"math"
	"testing"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rotateExplicit applies the X, Y, Z rotation matrices one after another.
func rotateExplicit(v geometry.Vector3, rx, ry, rz float64) geometry.Vector3 {
	c, s := math.Cos(rx), math.Sin(rx)
	v = geometry.NewVector3(v.X, v.Y*c-v.Z*s, v.Y*s+v.Z*c)
	c, s = math.Cos(ry), math.Sin(ry)
	v = geometry.NewVector3(v.X*c+v.Z*s, v.Y, -v.X*s+v.Z*c)
	c, s = math.Cos(rz), math.Sin(rz)
	return geometry.NewVector3(v.X*c-v.Y*s, v.X*s+v.Y*c, v.Z)
}

func TestEulerXYZMatchesRotationMatrices(t *testing.T) {
	p := geometry.NewVector3(1, 2, 3)
	for _, angles := range [][3]float64{
		{0, 0, 0},
		{math.Pi / 2, 0, 0},
		{0.3, -1.2, 2.5},
		{math.Pi, math.Pi / 4, -math.Pi / 3},
	} {
		want := rotateExplicit(p, angles[0], angles[1], angles[2])
		got := geometry.FromR3(EulerXYZ(angles[0], angles[1], angles[2]).Rotate(p.R3()))
		assert.InDelta(t, 0, got.Distance(want), 1e-12, "angles %v", angles)
	}
}

func TestRotateQuarterTurnAboutX(t *testing.T) {
	m := mesh.Mesh{Vertices: []float32{0, 1, 0}, Normals: []float32{0, 1, 0}}
	r := Rotate(m, math.Pi/2, 0, 0)

	assert.InDelta(t, 0, r.Vertices[1], 1e-6)
	assert.InDelta(t, 1, r.Vertices[2], 1e-6)
	assert.InDelta(t, 1, r.Normals[2], 1e-6)
}

func TestRotatePreservesVolumeAndArea(t *testing.T) {
	cube := mesh.Box(geometry.NewVector3(-3, 1, 2), geometry.NewVector3(7, 6, 20))
	volume := analysis.Volume(cube)
	area := analysis.SurfaceArea(cube)

	for _, angles := range [][3]float64{{0.1, 0.2, 0.3}, {math.Pi / 3, 0, 1}, {2, -1, 4}} {
		r := Rotate(cube, angles[0], angles[1], angles[2])
		assert.InDelta(t, volume, analysis.Volume(r), volume*1e-5, "angles %v", angles)
		assert.InDelta(t, area, analysis.SurfaceArea(r), area*1e-5, "angles %v", angles)
	}
}

func TestRotateDoesNotMutateInput(t *testing.T) {
	cube := mesh.Cube(10)
	before := cube.Clone()
	_ = Rotate(cube, 1, 2, 3)
	_ = Scale(cube, 3)
	_ = CenterOnBuildPlate(cube)
	assert.Equal(t, before, cube)
}

func TestScaleRoundTrip(t *testing.T) {
	cube := mesh.Box(geometry.NewVector3(-3, 1, 2), geometry.NewVector3(7, 6, 20))
	for _, k := range []float64{0.01, 0.5, 3, 127} {
		back := Scale(Scale(cube, k), 1/k)
		require.Len(t, back.Vertices, len(cube.Vertices))
		for i := range cube.Vertices {
			assert.InDelta(t, cube.Vertices[i], back.Vertices[i], 1e-4, "k=%v component %d", k, i)
		}
		assert.Equal(t, cube.Normals, back.Normals)
	}
}

func TestCenterOnBuildPlate(t *testing.T) {
	m := mesh.Box(geometry.NewVector3(13, -7, 40), geometry.NewVector3(21, 5, 46))
	centered := CenterOnBuildPlate(Rotate(m, 0.4, 0.2, 0.9))
	bbox := analysis.BoundingBox(centered)

	assert.Equal(t, 0.0, bbox.Min.Y)
	assert.InDelta(t, 0, (bbox.Min.X+bbox.Max.X)/2, 1e-5)
	assert.InDelta(t, 0, (bbox.Min.Z+bbox.Max.Z)/2, 1e-5)
}

func TestTranslate(t *testing.T) {
	m := Translate(mesh.Cube(2), 1, 2, 3)
	bbox := analysis.BoundingBox(m)
	assert.Equal(t, geometry.NewVector3(0, 2, 2), bbox.Min)
	assert.Equal(t, geometry.NewVector3(2, 4, 4), bbox.Max)
}
