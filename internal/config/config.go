// Package config holds printer and search settings loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/goprint/pkg/material"
	"github.com/philipparndt/goprint/pkg/optimize"
	"github.com/philipparndt/goprint/pkg/repair"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = "goprint.yaml"

// Config holds all settings a run needs.
type Config struct {
	Printer  Printer  `yaml:"printer"`
	Material string   `yaml:"material"`
	Search   Search   `yaml:"search"`
	Supports Supports `yaml:"supports"`
	Base     Base     `yaml:"base"`
	Log      Log      `yaml:"log"`
}

type Printer struct {
	// BuildVolume is the largest printable dimension in mm.
	BuildVolume float64 `yaml:"build_volume"`
	TargetWall  float64 `yaml:"target_wall"`
}

type Search struct {
	StepDegrees float64       `yaml:"step_degrees"`
	XRange      float64       `yaml:"x_range"`
	ZRange      float64       `yaml:"z_range"`
	Threshold   float64       `yaml:"threshold"`
	Workers     int           `yaml:"workers"`
	Timeout     time.Duration `yaml:"timeout"`
}

type Supports struct {
	Radius   float64 `yaml:"radius"`
	Segments int     `yaml:"segments"`
}

type Base struct {
	Thickness float64 `yaml:"thickness"`
	Margin    float64 `yaml:"margin"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Flags carries command line overrides. Zero values leave the config alone.
type Flags struct {
	Material  string
	LogLevel  string
	LogFormat string
	Workers   int
	Step      float64
}

// Default returns the stock configuration.
func Default() Config {
	search := optimize.DefaultOptions()
	return Config{
		Printer: Printer{
			BuildVolume: repair.DefaultBuildVolume,
			TargetWall:  repair.DefaultTargetWall,
		},
		Material: material.DefaultName,
		Search: Search{
			StepDegrees: search.StepDegrees,
			XRange:      search.XRange,
			ZRange:      search.ZRange,
			Threshold:   search.Threshold,
			Workers:     search.Workers,
			Timeout:     2 * time.Minute,
		},
		Supports: Supports{
			Radius:   repair.DefaultPillarRadius,
			Segments: repair.DefaultPillarSegments,
		},
		Base: Base{
			Thickness: repair.DefaultBaseThickness,
			Margin:    repair.DefaultBaseMargin,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file on top of Default. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is set. An empty path falls back to
// DefaultPath if that file exists, otherwise to Default.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: stat %s: %w", DefaultPath, err)
	}
	return Default(), nil
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	if c.Printer.BuildVolume <= 0 {
		return fmt.Errorf("printer.build_volume must be positive, got %v", c.Printer.BuildVolume)
	}
	if c.Search.StepDegrees <= 0 {
		return fmt.Errorf("search.step_degrees must be positive, got %v", c.Search.StepDegrees)
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("search.workers must not be negative, got %d", c.Search.Workers)
	}
	if c.Supports.Segments != 0 && c.Supports.Segments < 3 {
		return fmt.Errorf("supports.segments must be at least 3, got %d", c.Supports.Segments)
	}
	if c.Material != "" {
		if _, err := material.Lookup(c.Material); err != nil {
			return err
		}
	}
	return nil
}

// Resolve applies command line overrides.
func (c *Config) Resolve(flags Flags) {
	if flags.Material != "" {
		c.Material = flags.Material
	}
	if flags.LogLevel != "" {
		c.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		c.Log.Format = flags.LogFormat
	}
	if flags.Workers > 0 {
		c.Search.Workers = flags.Workers
	}
	if flags.Step > 0 {
		c.Search.StepDegrees = flags.Step
	}
}

// Profile resolves the configured material.
func (c Config) Profile() (material.Profile, error) {
	if c.Material == "" {
		return material.Default(), nil
	}
	return material.Lookup(c.Material)
}

// SearchOptions converts the search section for the optimizer.
func (c Config) SearchOptions() optimize.Options {
	return optimize.Options{
		StepDegrees: c.Search.StepDegrees,
		XRange:      c.Search.XRange,
		ZRange:      c.Search.ZRange,
		Threshold:   c.Search.Threshold,
		Workers:     c.Search.Workers,
	}
}

// RepairOptions converts the printer, supports and base sections for the
// fix catalog.
func (c Config) RepairOptions() repair.Options {
	return repair.Options{
		BuildVolume:    c.Printer.BuildVolume,
		TargetWall:     c.Printer.TargetWall,
		PillarRadius:   c.Supports.Radius,
		PillarSegments: c.Supports.Segments,
		BaseThickness:  c.Base.Thickness,
		BaseMargin:     c.Base.Margin,
		Search:         c.SearchOptions(),
	}
}
