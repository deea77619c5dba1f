package stl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiTriangle = `solid wedge
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 10 0 0
      vertex 0 0 10
    endloop
  endfacet
endsolid wedge
`

func TestReadASCII(t *testing.T) {
	model, err := Read(strings.NewReader(asciiTriangle))
	require.NoError(t, err)

	assert.Equal(t, "wedge", model.Name)
	require.Equal(t, 1, model.TriangleCount())
	assert.Equal(t, geometry.NewVector3(0, -1, 0), model.Triangles[0].Normal)
	assert.Equal(t, geometry.NewVector3(10, 0, 0), model.Triangles[0].V2)
}

func TestReadASCIIBadVertex(t *testing.T) {
	_, err := Read(strings.NewReader("solid x\nfacet normal 0 0 1\nvertex 1 two 3\nendfacet\n"))
	assert.Error(t, err)
}

func TestWriteThenReadBinary(t *testing.T) {
	model := NewModel("solid-looking header")
	model.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, model))
	assert.Equal(t, 84+binaryTriangleSize, buf.Len())

	parsed, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, parsed.TriangleCount())

	tri := parsed.Triangles[0]
	assert.Equal(t, geometry.NewVector3(1, 0, 0), tri.V2)
	// zero normal is recomputed from the winding on write
	assert.InDelta(t, 1.0, tri.Normal.Z, 1e-6)
}
