package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/goprint/pkg/geometry"
)

func TestMeshCounts(t *testing.T) {
	tests := []struct {
		name      string
		mesh      Mesh
		vertices  int
		triangles int
		empty     bool
	}{
		{"empty", Mesh{}, 0, 0, true},
		{"vertices only", Mesh{Vertices: []float32{1, 2, 3}}, 1, 0, true},
		{"one triangle", Mesh{Vertices: make([]float32, 9), Indices: []uint32{0, 1, 2}}, 3, 1, false},
		{"cube", Cube(10), 24, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.VertexCount(); got != tt.vertices {
				t.Errorf("VertexCount() = %d, want %d", got, tt.vertices)
			}
			if got := tt.mesh.TriangleCount(); got != tt.triangles {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.triangles)
			}
			if got := tt.mesh.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestBoxWindingMatchesNormals(t *testing.T) {
	box := Box(geometry.NewVector3(-1, 0, -2), geometry.NewVector3(3, 5, 2))
	for tri := 0; tri < box.TriangleCount(); tri++ {
		computed := box.Triangle(tri).Normal
		stored := box.Normal(int(box.Indices[3*tri]))
		if computed.Distance(stored) > 1e-6 {
			t.Errorf("triangle %d: winding normal %v does not match stored normal %v", tri, computed, stored)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh Mesh
		ok   bool
	}{
		{"cube", Cube(10), true},
		{"empty", Mesh{}, true},
		{"partial vertex", Mesh{Vertices: []float32{1, 2}}, false},
		{"partial index", Mesh{Vertices: make([]float32, 9), Indices: []uint32{0, 1}}, false},
		{"index out of range", Mesh{Vertices: make([]float32, 9), Indices: []uint32{0, 1, 3}}, false},
		{"normal mismatch", Mesh{Vertices: make([]float32, 9), Indices: []uint32{0, 1, 2}, Normals: []float32{0, 1, 0}}, false},
		{"nan vertex", Mesh{Vertices: []float32{0, 0, 0, 1, 0, 0, float32(math.NaN()), 0, 0}, Indices: []uint32{0, 1, 2}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if tt.ok {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var invalidErr *InvalidMeshError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("Validate() = %v, want *InvalidMeshError", err)
			}
		})
	}
}

func TestMergeOffsetsIndices(t *testing.T) {
	a := Cube(10)
	b := Cube(2)
	merged := Merge(a, b)

	if merged.VertexCount() != a.VertexCount()+b.VertexCount() {
		t.Fatalf("merged vertex count = %d, want %d", merged.VertexCount(), a.VertexCount()+b.VertexCount())
	}
	if merged.TriangleCount() != a.TriangleCount()+b.TriangleCount() {
		t.Fatalf("merged triangle count = %d, want %d", merged.TriangleCount(), a.TriangleCount()+b.TriangleCount())
	}
	if got := merged.Indices[len(a.Indices)]; got != b.Indices[0]+uint32(a.VertexCount()) {
		t.Errorf("first appended index = %d, want %d", got, b.Indices[0]+uint32(a.VertexCount()))
	}
	if err := merged.Validate(); err != nil {
		t.Errorf("merged mesh invalid: %v", err)
	}
}

func TestMergePadsMissingNormals(t *testing.T) {
	a := Cube(1)
	b := Cube(1)
	b.Normals = nil

	merged := Merge(a, b)
	if len(merged.Normals) != len(merged.Vertices) {
		t.Fatalf("normals length %d != vertices length %d", len(merged.Normals), len(merged.Vertices))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := Cube(1)
	c := a.Clone()
	c.Vertices[0] = 42
	if a.Vertices[0] == 42 {
		t.Error("Clone shares the vertex buffer with the original")
	}
}
