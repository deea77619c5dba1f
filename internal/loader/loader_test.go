package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.stl")
	require.NoError(t, stl.WriteFile(path, mesh.ToModel(mesh.Cube(10), "")))

	m, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "cube", m.Name)
	assert.Equal(t, 12, m.Mesh.TriangleCount())
	assert.Equal(t, []string{path}, m.Sources)
	assert.False(t, m.Rendered)
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))

	_, err := Load(context.Background(), path)
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.stl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
