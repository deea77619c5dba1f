// Package mesh defines the indexed triangle mesh consumed by the analysis
// and repair packages. A Mesh is treated as an immutable value: every
// operation that changes geometry returns a new Mesh with its own buffers.
package mesh

import (
	"github.com/philipparndt/goprint/pkg/geometry"
)

// Mesh is an indexed triangle mesh.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex (or is empty), indices has 3 per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...], empty when not computed
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no triangles.
func (m Mesh) IsEmpty() bool {
	return len(m.Indices) == 0 || len(m.Vertices) == 0
}

// HasNormals reports whether per-vertex normals are present.
func (m Mesh) HasNormals() bool {
	return len(m.Normals) > 0
}

// Vertex returns vertex i.
func (m Mesh) Vertex(i int) geometry.Vector3 {
	return geometry.FromFloat32(m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2])
}

// Normal returns the normal of vertex i, or the zero vector if the mesh
// carries no normals.
func (m Mesh) Normal(i int) geometry.Vector3 {
	if !m.HasNormals() {
		return geometry.Vector3{}
	}
	return geometry.FromFloat32(m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2])
}

// Triangle returns triangle t with its face normal computed from the winding.
func (m Mesh) Triangle(t int) geometry.Triangle {
	tri := geometry.Triangle{
		V1: m.Vertex(int(m.Indices[3*t])),
		V2: m.Vertex(int(m.Indices[3*t+1])),
		V3: m.Vertex(int(m.Indices[3*t+2])),
	}
	tri.Normal = tri.CalculateNormal()
	return tri
}

// Clone returns a deep copy.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Vertices: append([]float32(nil), m.Vertices...),
		Indices:  append([]uint32(nil), m.Indices...),
		Normals:  append([]float32(nil), m.Normals...),
	}
}

// Merge concatenates the buffers of b onto a copy of a, offsetting b's
// indices by a's vertex count. If only one side carries normals the other
// side is padded with zero normals so the result stays consistent.
func Merge(a, b Mesh) Mesh {
	out := Mesh{
		Vertices: make([]float32, 0, len(a.Vertices)+len(b.Vertices)),
		Indices:  make([]uint32, 0, len(a.Indices)+len(b.Indices)),
	}
	out.Vertices = append(out.Vertices, a.Vertices...)
	out.Vertices = append(out.Vertices, b.Vertices...)

	offset := uint32(a.VertexCount())
	out.Indices = append(out.Indices, a.Indices...)
	for _, idx := range b.Indices {
		out.Indices = append(out.Indices, idx+offset)
	}

	if a.HasNormals() || b.HasNormals() {
		out.Normals = make([]float32, 0, len(out.Vertices))
		out.Normals = append(out.Normals, normalsOrZero(a)...)
		out.Normals = append(out.Normals, normalsOrZero(b)...)
	}
	return out
}

func normalsOrZero(m Mesh) []float32 {
	if m.HasNormals() {
		return m.Normals
	}
	return make([]float32, len(m.Vertices))
}
