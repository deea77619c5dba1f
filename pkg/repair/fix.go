// Package repair synthesizes geometry fixes for printability problems:
// reorientation, build-volume scaling, wall thickening, support pillars and
// base plates. Fixes never modify their input mesh.
package repair

import (
	"context"

	"github.com/philipparndt/goprint/pkg/mesh"
)

// FixResult is the outcome of one fix. Success is false when the fix found
// nothing to improve; Mesh is then the unchanged input.
type FixResult struct {
	Success     bool      `json:"success"`
	Mesh        mesh.Mesh `json:"-"`
	Description string    `json:"description"`
	// Improvement is a percentage where the fix can quantify one.
	Improvement *float64 `json:"improvement,omitempty"`
}

func unchanged(m mesh.Mesh, description string) FixResult {
	return FixResult{Success: false, Mesh: m, Description: description}
}

func improved(m mesh.Mesh, description string, pct float64) FixResult {
	return FixResult{Success: true, Mesh: m, Description: description, Improvement: &pct}
}

// Severity ranks a fix by the problem it addresses.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Fix is a deferred repair proposed by AvailableFixes.
type Fix struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`

	apply func(ctx context.Context) (FixResult, error)
}

// Apply runs the fix. Only the orientation fix observes ctx; the others are
// linear passes over the mesh.
func (f Fix) Apply(ctx context.Context) (FixResult, error) {
	return f.apply(ctx)
}
