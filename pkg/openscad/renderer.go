// Package openscad turns .scad sources into STL by shelling out to the
// openscad binary.
package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/philipparndt/goprint/internal/logging"
)

// ErrNotInstalled is returned when the openscad binary is not on PATH.
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// matches `use <file.scad>` and `include <file.scad>`
var importRe = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Renderer renders OpenSCAD sources relative to a working directory.
type Renderer struct {
	workDir string
	// Binary is the executable to run, "openscad" by default.
	Binary string
}

// NewRenderer creates a renderer resolving relative paths against workDir.
func NewRenderer(workDir string) *Renderer {
	return &Renderer{workDir: workDir, Binary: "openscad"}
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}

// Render writes the STL export of scadFile to outputFile. The process is
// killed when ctx is done.
func (r *Renderer) Render(ctx context.Context, scadFile, outputFile string) error {
	bin, err := exec.LookPath(r.Binary)
	if err != nil {
		return ErrNotInstalled
	}

	log := logging.New("openscad")
	log.Info("rendering", "file", scadFile, "output", outputFile)

	cmd := exec.CommandContext(ctx, bin, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("render %s: %w", scadFile, ctxErr)
		}
		var msg strings.Builder
		fmt.Fprintf(&msg, "render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			msg.WriteString("\nstderr: ")
			msg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			msg.WriteString("\nstdout: ")
			msg.WriteString(stdout.String())
		}
		return errors.New(msg.String())
	}

	log.Debug("rendered", "file", scadFile, "stderr_bytes", stderr.Len())
	return nil
}

// Dependencies returns scadFile and every file it pulls in through use or
// include statements, transitively, as absolute paths. Each file appears
// once, in discovery order.
func (r *Renderer) Dependencies(scadFile string) ([]string, error) {
	seen := make(map[string]bool)
	var deps []string

	var walk func(file string) error
	walk = func(file string) error {
		if seen[file] {
			return nil
		}
		seen[file] = true
		deps = append(deps, file)

		imports, err := r.imports(file)
		if err != nil {
			return err
		}
		for _, dep := range imports {
			if err := walk(dep); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(r.abs(scadFile)); err != nil {
		return nil, err
	}
	return deps, nil
}

// imports lists the files one source references directly.
func (r *Renderer) imports(scadFile string) ([]string, error) {
	f, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", scadFile, err)
	}
	defer f.Close()

	dir := filepath.Dir(scadFile)
	var deps []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if m := importRe.FindStringSubmatch(line); m != nil {
			deps = append(deps, r.resolve(m[1], dir))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", scadFile, err)
	}
	return deps, nil
}

// resolve looks a referenced path up next to the referencing file first,
// then in the working directory. Explicit ./ and ../ paths are always
// relative to the referencing file.
func (r *Renderer) resolve(ref, dir string) string {
	local := filepath.Clean(filepath.Join(dir, ref))
	if strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "../") {
		return local
	}
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return filepath.Clean(filepath.Join(r.workDir, ref))
}
