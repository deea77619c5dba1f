package repair

import (
	"fmt"
	"math"

	"github.com/philipparndt/goprint/internal/logging"
	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/mesh"
	"gonum.org/v1/gonum/spatial/kdtree"
)

const (
	DefaultPillarRadius   = 3.0
	DefaultPillarSegments = 8

	// maxPillars caps how many supports one call generates.
	maxPillars = 20
	// minPillarHeight skips overhangs that sit almost on the plate.
	minPillarHeight = 5.0
)

// SupportSites picks pillar locations from the overhang samples of m.
// Samples are visited in triangle order and a sample is dropped when an
// already accepted site lies closer than 3*radius in the XZ plane, so the
// first sample in a cluster wins. Sites lower than 5mm above the model
// floor are then discarded and at most 20 are returned.
func SupportSites(m mesh.Mesh, radius float64) []geometry.Vector3 {
	if radius <= 0 {
		radius = DefaultPillarRadius
	}
	minSpacing := 3 * radius
	minSpacing2 := minSpacing * minSpacing
	floor := analysis.BoundingBox(m).Min.Y

	var accepted kdtree.Tree
	var sites []geometry.Vector3
	for _, s := range analysis.DetectOverhangs(m, analysis.DefaultOverhangThreshold) {
		p := kdtree.Point{s.Position.X, s.Position.Z}
		if accepted.Root != nil {
			if _, d2 := accepted.Nearest(p); d2 < minSpacing2 {
				continue
			}
		}
		accepted.Insert(p, false)
		sites = append(sites, s.Position)
	}

	kept := make([]geometry.Vector3, 0, min(len(sites), maxPillars))
	for _, site := range sites {
		if site.Y-floor < minPillarHeight {
			continue
		}
		kept = append(kept, site)
		if len(kept) == maxPillars {
			break
		}
	}
	return kept
}

// GenerateSupportPillars builds one capped cylinder per support site,
// standing on the model floor and reaching up to the overhang. The pillars
// are returned as one merged mesh; false means no site qualified.
func GenerateSupportPillars(m mesh.Mesh, radius float64, segments int) (mesh.Mesh, bool) {
	if radius <= 0 {
		radius = DefaultPillarRadius
	}
	if segments < 3 {
		segments = DefaultPillarSegments
	}

	sites := SupportSites(m, radius)
	if len(sites) == 0 {
		return mesh.Mesh{}, false
	}

	floor := analysis.BoundingBox(m).Min.Y
	var pillars mesh.Mesh
	for _, site := range sites {
		pillars = mesh.Merge(pillars, Cylinder(site.X, site.Z, floor, site.Y, radius, segments))
	}

	logging.New("repair").Debug("generated support pillars", "count", len(sites), "radius", radius)
	return pillars, true
}

// AddSupports merges generated pillars into the model.
func AddSupports(m mesh.Mesh, radius float64, segments int) FixResult {
	pillars, ok := GenerateSupportPillars(m, radius, segments)
	if !ok {
		return unchanged(m, "No overhang is high enough to need a support pillar")
	}
	count := len(SupportSites(m, radius))
	return FixResult{
		Success:     true,
		Mesh:        mesh.Merge(m, pillars),
		Description: fmt.Sprintf("Added %d support pillars", count),
	}
}

// Cylinder builds a closed Y-aligned cylinder centered at (cx, cz) spanning
// y0..y1. Side vertices carry radial normals, cap vertices carry ±Y normals.
func Cylinder(cx, cz, y0, y1, radius float64, segments int) mesh.Mesh {
	n := segments
	m := mesh.Mesh{
		Vertices: make([]float32, 0, (4*n+2)*3),
		Normals:  make([]float32, 0, (4*n+2)*3),
		Indices:  make([]uint32, 0, 4*n*3),
	}
	add := func(x, y, z, nx, ny, nz float64) uint32 {
		idx := uint32(m.VertexCount())
		m.Vertices = append(m.Vertices, float32(x), float32(y), float32(z))
		m.Normals = append(m.Normals, float32(nx), float32(ny), float32(nz))
		return idx
	}

	cosSin := make([][2]float64, n)
	for i := range cosSin {
		theta := 2 * math.Pi * float64(i) / float64(n)
		cosSin[i] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}

	// side: bottom ring then top ring
	sideBottom := uint32(m.VertexCount())
	for _, cs := range cosSin {
		add(cx+radius*cs[0], y0, cz+radius*cs[1], cs[0], 0, cs[1])
	}
	sideTop := uint32(m.VertexCount())
	for _, cs := range cosSin {
		add(cx+radius*cs[0], y1, cz+radius*cs[1], cs[0], 0, cs[1])
	}
	for i := 0; i < n; i++ {
		j := uint32((i + 1) % n)
		b0, b1 := sideBottom+uint32(i), sideBottom+j
		t0, t1 := sideTop+uint32(i), sideTop+j
		m.Indices = append(m.Indices, b0, t0, b1, b1, t0, t1)
	}

	// caps
	bottomCenter := add(cx, y0, cz, 0, -1, 0)
	bottomRing := uint32(m.VertexCount())
	for _, cs := range cosSin {
		add(cx+radius*cs[0], y0, cz+radius*cs[1], 0, -1, 0)
	}
	topCenter := add(cx, y1, cz, 0, 1, 0)
	topRing := uint32(m.VertexCount())
	for _, cs := range cosSin {
		add(cx+radius*cs[0], y1, cz+radius*cs[1], 0, 1, 0)
	}
	for i := 0; i < n; i++ {
		j := uint32((i + 1) % n)
		m.Indices = append(m.Indices, bottomCenter, bottomRing+uint32(i), bottomRing+j)
		m.Indices = append(m.Indices, topCenter, topRing+j, topRing+uint32(i))
	}
	return m
}
