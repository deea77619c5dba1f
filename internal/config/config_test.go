package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/philipparndt/goprint/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 256.0, cfg.Printer.BuildVolume)
	assert.Equal(t, "PLA", cfg.Material)
	assert.Equal(t, 15.0, cfg.Search.StepDegrees)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
printer:
  build_volume: 220
material: petg
search:
  step_degrees: 30
  timeout: 10s
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Printer.BuildVolume = 220
	want.Material = "petg"
	want.Search.StepDegrees = 30
	want.Search.Timeout = 10 * time.Second
	want.Log.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "printer: [unclosed"},
		{"zero build volume", "printer:\n  build_volume: 0\n"},
		{"negative workers", "search:\n  workers: -1\n"},
		{"few segments", "supports:\n  segments: 2\n"},
		{"unknown material", "material: unobtainium\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadUnknownMaterialIsSentinel(t *testing.T) {
	_, err := Load(writeFile(t, "material: unobtainium\n"))
	assert.ErrorIs(t, err, material.ErrUnknownMaterial)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{Material: "ABS", Workers: 3})

	assert.Equal(t, "ABS", cfg.Material)
	assert.Equal(t, 3, cfg.Search.Workers)
	assert.Equal(t, "info", cfg.Log.Level, "empty flags keep config values")

	p, err := cfg.Profile()
	require.NoError(t, err)
	assert.Equal(t, "ABS", p.Name)
}

func TestRepairOptions(t *testing.T) {
	cfg := Default()
	cfg.Printer.BuildVolume = 180
	cfg.Search.StepDegrees = 45

	opts := cfg.RepairOptions()
	assert.Equal(t, 180.0, opts.BuildVolume)
	assert.Equal(t, 45.0, opts.Search.StepDegrees)
	assert.Equal(t, cfg.Supports.Segments, opts.PillarSegments)
}
