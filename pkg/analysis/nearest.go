package analysis

import (
	"math"

	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// VertexIndex answers nearest-vertex queries against a mesh.
type VertexIndex struct {
	tree *kdtree.Tree
}

// NewVertexIndex builds a k-d tree over the vertices of m.
func NewVertexIndex(m mesh.Mesh) VertexIndex {
	if m.VertexCount() == 0 {
		return VertexIndex{}
	}
	pts := make(kdtree.Points, m.VertexCount())
	for i := range pts {
		v := m.Vertex(i)
		pts[i] = kdtree.Point{v.X, v.Y, v.Z}
	}
	return VertexIndex{tree: kdtree.New(pts, false)}
}

// Nearest returns the vertex closest to p and its distance. ok is false for
// an empty mesh.
func (idx VertexIndex) Nearest(p geometry.Vector3) (vertex geometry.Vector3, distance float64, ok bool) {
	if idx.tree == nil {
		return geometry.Vector3{}, 0, false
	}
	got, d2 := idx.tree.Nearest(kdtree.Point{p.X, p.Y, p.Z})
	q := got.(kdtree.Point)
	return geometry.NewVector3(q[0], q[1], q[2]), math.Sqrt(d2), true
}
