// Package transform provides pure rigid and uniform transforms over mesh
// buffers. Every function returns a new Mesh and leaves its input untouched.
package transform

import (
	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/mesh"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
	axisZ = r3.Vec{Z: 1}
)

// EulerXYZ returns the rotation that applies rx about X, then ry about Y,
// then rz about Z (radians, right-handed).
func EulerXYZ(rx, ry, rz float64) r3.Rotation {
	qx := quat.Number(r3.NewRotation(rx, axisX))
	qy := quat.Number(r3.NewRotation(ry, axisY))
	qz := quat.Number(r3.NewRotation(rz, axisZ))
	return r3.Rotation(quat.Mul(qz, quat.Mul(qy, qx)))
}

// Rotate applies the Euler rotation to every vertex and normal. Normals are
// rotated but not renormalized.
func Rotate(m mesh.Mesh, rx, ry, rz float64) mesh.Mesh {
	rot := EulerXYZ(rx, ry, rz)
	return mesh.Mesh{
		Vertices: mapTriples(m.Vertices, rot.Rotate),
		Indices:  append([]uint32(nil), m.Indices...),
		Normals:  mapTriples(m.Normals, rot.Rotate),
	}
}

// Scale multiplies every vertex coordinate by factor. Normals are copied
// unchanged since a uniform scale keeps their direction.
func Scale(m mesh.Mesh, factor float64) mesh.Mesh {
	return mesh.Mesh{
		Vertices: mapTriples(m.Vertices, func(v r3.Vec) r3.Vec { return r3.Scale(factor, v) }),
		Indices:  append([]uint32(nil), m.Indices...),
		Normals:  append([]float32(nil), m.Normals...),
	}
}

// Translate offsets every vertex.
func Translate(m mesh.Mesh, dx, dy, dz float64) mesh.Mesh {
	offset := r3.Vec{X: dx, Y: dy, Z: dz}
	return mesh.Mesh{
		Vertices: mapTriples(m.Vertices, func(v r3.Vec) r3.Vec { return r3.Add(v, offset) }),
		Indices:  append([]uint32(nil), m.Indices...),
		Normals:  append([]float32(nil), m.Normals...),
	}
}

// CenterOnBuildPlate moves the mesh so its footprint is centered on the
// origin in X and Z and its lowest point sits at Y = 0.
func CenterOnBuildPlate(m mesh.Mesh) mesh.Mesh {
	bbox := analysis.BoundingBox(m)
	center := bbox.Center()
	return Translate(m, -center.X, -bbox.Min.Y, -center.Z)
}

func mapTriples(buf []float32, f func(r3.Vec) r3.Vec) []float32 {
	if buf == nil {
		return nil
	}
	out := make([]float32, len(buf))
	for i := 0; i+2 < len(buf); i += 3 {
		v := f(r3.Vec{X: float64(buf[i]), Y: float64(buf[i+1]), Z: float64(buf[i+2])})
		out[i], out[i+1], out[i+2] = float32(v.X), float32(v.Y), float32(v.Z)
	}
	return out
}
