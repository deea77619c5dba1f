package openscad

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDependencies(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "main.scad"), `
use <lib/shapes.scad>
// include <ignored.scad>
include <./params.scad>
cube(10);
`)
	write(t, filepath.Join(dir, "lib", "shapes.scad"), "include <../params.scad>\nmodule peg() {}\n")
	write(t, filepath.Join(dir, "params.scad"), "size = 10;\n")

	deps, err := NewRenderer(dir).Dependencies("main.scad")
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "main.scad"),
		filepath.Join(dir, "lib", "shapes.scad"),
		filepath.Join(dir, "params.scad"),
	}
	if diff := cmp.Diff(want, deps); diff != "" {
		t.Errorf("Dependencies mismatch (-want +got):\n%s", diff)
	}
}

func TestDependenciesCycle(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.scad"), "use <b.scad>\n")
	write(t, filepath.Join(dir, "b.scad"), "use <a.scad>\n")

	deps, err := NewRenderer(dir).Dependencies(filepath.Join(dir, "a.scad"))
	require.NoError(t, err)
	assert.Len(t, deps, 2)
}

func TestDependenciesMissingFile(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "main.scad"), "use <missing.scad>\n")

	_, err := NewRenderer(dir).Dependencies("main.scad")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderWithoutBinary(t *testing.T) {
	r := NewRenderer(t.TempDir())
	r.Binary = "goprint-no-such-openscad"

	err := r.Render(context.Background(), "main.scad", "out.stl")
	assert.ErrorIs(t, err, ErrNotInstalled)
}
