package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/philipparndt/goprint/internal/config"
	"github.com/philipparndt/goprint/internal/loader"
	"github.com/philipparndt/goprint/internal/logging"
	"github.com/philipparndt/goprint/pkg/material"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/stl"
	"github.com/philipparndt/goprint/version"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	logLevel     string
	logFormat    string
	materialName string
	workers      int

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "goprint",
	Short: "Check 3D models for printability and repair them",
	Long: `goprint analyzes STL and OpenSCAD models for fused-deposition printing.
It estimates wall thickness, overhangs, print time and material cost, scores
printability, and applies repairs such as reorientation, scaling, base plates
and support pillars.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default ./"+config.DefaultPath+" if present)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: text or json")
	flags.StringVarP(&materialName, "material", "m", "", "Filament preset ("+strings.Join(material.Names(), ", ")+")")
	flags.IntVar(&workers, "workers", 0, "Parallel orientation candidates (default GOMAXPROCS)")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	loaded.Resolve(config.Flags{
		Material:  materialName,
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Workers:   workers,
	})

	level, err := logging.ParseLevel(loaded.Log.Level)
	if err != nil {
		return err
	}
	logging.Init(level, loaded.Log.Format)

	cfg = loaded
	return nil
}

// commandContext is cancelled on interrupt and after the configured
// search timeout.
func commandContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	if cfg.Search.Timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Search.Timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func loadModel(ctx context.Context, filename string) loader.Model {
	model, err := loadModelErr(ctx, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return model
}

func loadModelErr(ctx context.Context, filename string) (loader.Model, error) {
	model, err := loader.Load(ctx, filename)
	if err != nil {
		return loader.Model{}, fmt.Errorf("load %s: %w", filename, err)
	}
	return model, nil
}

func profile() material.Profile {
	p, err := cfg.Profile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return p
}

func writeMesh(path, name string, m mesh.Mesh) {
	if err := stl.WriteFile(path, mesh.ToModel(m, name)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d triangles to %s\n", m.TriangleCount(), path)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
