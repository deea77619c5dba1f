package mesh

import "github.com/philipparndt/goprint/pkg/geometry"

// boxFaces lists, per face, the outward normal and the four corners in
// counter-clockwise order seen from outside. Corner components select
// min (0) or max (1) per axis.
var boxFaces = [6]struct {
	normal  [3]float32
	corners [4][3]int
}{
	{[3]float32{1, 0, 0}, [4][3]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{[3]float32{-1, 0, 0}, [4][3]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	{[3]float32{0, 1, 0}, [4][3]int{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{[3]float32{0, -1, 0}, [4][3]int{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{[3]float32{0, 0, 1}, [4][3]int{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{[3]float32{0, 0, -1}, [4][3]int{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// Box builds an axis-aligned box spanning min..max with outward winding and
// flat per-face normals (24 vertices, 12 triangles).
func Box(min, max geometry.Vector3) Mesh {
	lo := [3]float32{float32(min.X), float32(min.Y), float32(min.Z)}
	hi := [3]float32{float32(max.X), float32(max.Y), float32(max.Z)}

	m := Mesh{
		Vertices: make([]float32, 0, 24*3),
		Normals:  make([]float32, 0, 24*3),
		Indices:  make([]uint32, 0, 12*3),
	}
	for _, face := range boxFaces {
		base := uint32(m.VertexCount())
		for _, c := range face.corners {
			for axis := 0; axis < 3; axis++ {
				if c[axis] == 0 {
					m.Vertices = append(m.Vertices, lo[axis])
				} else {
					m.Vertices = append(m.Vertices, hi[axis])
				}
			}
			m.Normals = append(m.Normals, face.normal[:]...)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Cube builds a box of the given edge length resting on the XZ plane and
// centered on the Y axis.
func Cube(size float64) Mesh {
	h := size / 2
	return Box(geometry.NewVector3(-h, 0, -h), geometry.NewVector3(h, size, h))
}
