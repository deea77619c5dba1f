package mesh

import (
	"fmt"
	"math"
)

// InvalidMeshError describes the first structural defect found in a mesh.
type InvalidMeshError struct {
	Reason string
}

func (e *InvalidMeshError) Error() string {
	return "invalid mesh: " + e.Reason
}

func invalid(format string, args ...any) error {
	return &InvalidMeshError{Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the buffer invariants: whole triples, in-range indices,
// matching normal count and finite coordinates.
func (m Mesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return invalid("vertex buffer length %d is not a multiple of 3", len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return invalid("index buffer length %d is not a multiple of 3", len(m.Indices))
	}
	if m.HasNormals() && len(m.Normals) != len(m.Vertices) {
		return invalid("normal buffer length %d does not match vertex buffer length %d", len(m.Normals), len(m.Vertices))
	}

	vertexCount := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= vertexCount {
			return invalid("triangle %d references vertex %d, mesh has %d vertices", i/3, idx, vertexCount)
		}
	}

	for i, c := range m.Vertices {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return invalid("vertex %d has non-finite coordinate %v", i/3, c)
		}
	}
	return nil
}
