package mesh

import (
	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/stl"
)

// FromModel converts an STL triangle soup into an indexed mesh. Every facet
// gets its own three vertices carrying the facet normal; when the file
// stores a zero normal it is recomputed from the winding.
func FromModel(model *stl.Model) Mesh {
	numTri := len(model.Triangles)
	m := Mesh{
		Vertices: make([]float32, 0, numTri*9),
		Normals:  make([]float32, 0, numTri*9),
		Indices:  make([]uint32, 0, numTri*3),
	}

	for i, tri := range model.Triangles {
		n := tri.Normal
		if n.Length() == 0 {
			n = tri.CalculateNormal()
		}
		for j, v := range [3]geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m
}

// ToModel expands the mesh into an STL triangle soup with computed face normals.
func ToModel(m Mesh, name string) *stl.Model {
	model := stl.NewModel(name)
	for t := 0; t < m.TriangleCount(); t++ {
		model.AddTriangle(m.Triangle(t))
	}
	return model
}
