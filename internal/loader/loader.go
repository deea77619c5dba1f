// Package loader reads a model file from disk into a mesh. STL files are
// parsed directly; OpenSCAD sources are rendered to a temporary STL first.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goprint/internal/logging"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/openscad"
	"github.com/philipparndt/goprint/pkg/stl"
)

// Model is a loaded mesh together with the files it was built from.
type Model struct {
	Name string
	Mesh mesh.Mesh
	// Sources lists the files whose change invalidates Mesh: the STL itself,
	// or an OpenSCAD source and everything it includes.
	Sources []string
	// Rendered is set for OpenSCAD input.
	Rendered bool
}

// Load reads path. ctx bounds the OpenSCAD render.
func Load(ctx context.Context, path string) (Model, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		return loadSTL(path)
	case ".scad":
		return loadSCAD(ctx, path)
	default:
		return Model{}, fmt.Errorf("unsupported file type %q (expected .stl or .scad)", ext)
	}
}

func loadSTL(path string) (Model, error) {
	model, err := stl.Parse(path)
	if err != nil {
		return Model{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return Model{
		Name:    nameOf(model, path),
		Mesh:    mesh.FromModel(model),
		Sources: []string{path},
	}, nil
}

func loadSCAD(ctx context.Context, path string) (Model, error) {
	log := logging.New("loader")
	renderer := openscad.NewRenderer(filepath.Dir(path))

	deps, err := renderer.Dependencies(path)
	if err != nil {
		return Model{}, fmt.Errorf("resolve dependencies: %w", err)
	}

	tmp, err := os.CreateTemp("", "goprint-*.stl")
	if err != nil {
		return Model{}, fmt.Errorf("create temp file: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := renderer.Render(ctx, path, tmp.Name()); err != nil {
		return Model{}, err
	}

	model, err := stl.Parse(tmp.Name())
	if err != nil {
		return Model{}, fmt.Errorf("parse rendered %s: %w", path, err)
	}
	log.Debug("loaded openscad model", "file", path, "triangles", model.TriangleCount(), "sources", len(deps))

	return Model{
		Name:     nameOf(model, path),
		Mesh:     mesh.FromModel(model),
		Sources:  deps,
		Rendered: true,
	}, nil
}

func nameOf(model *stl.Model, path string) string {
	if model.Name != "" {
		return model.Name
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
