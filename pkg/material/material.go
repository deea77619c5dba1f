// Package material holds filament profiles used for weight, time and cost
// estimates. A small preset catalog is embedded in the binary.
package material

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownMaterial is returned by Lookup for names not in the catalog.
var ErrUnknownMaterial = errors.New("unknown material")

// DefaultName is the preset used when none is requested.
const DefaultName = "PLA"

// Thermal is display-only metadata.
type Thermal struct {
	NozzleTemp float64 `yaml:"nozzle_temp" json:"nozzleTemp"`
	BedTemp    float64 `yaml:"bed_temp" json:"bedTemp"`
}

// Profile describes a printable material.
type Profile struct {
	Name        string   `yaml:"name" json:"name"`
	Density     float64  `yaml:"density" json:"density"`         // g/cm³
	CostPerGram float64  `yaml:"cost_per_gram" json:"costPerGram"` // currency units
	PrintSpeed  float64  `yaml:"print_speed" json:"printSpeed"`   // mm/s
	Thermal     *Thermal `yaml:"thermal,omitempty" json:"thermal,omitempty"`
}

//go:embed materials.yaml
var catalogYAML []byte

var catalog = mustParse(catalogYAML)

func mustParse(data []byte) []Profile {
	profiles, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("material: embedded catalog: %v", err))
	}
	return profiles
}

// Parse decodes a YAML list of profiles and rejects non-positive density or
// speed.
func Parse(data []byte) ([]Profile, error) {
	var profiles []Profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse material catalog: %w", err)
	}
	for _, p := range profiles {
		if p.Name == "" {
			return nil, errors.New("material without name")
		}
		if p.Density <= 0 || p.PrintSpeed <= 0 {
			return nil, fmt.Errorf("material %q: density and print speed must be positive", p.Name)
		}
	}
	return profiles, nil
}

// Lookup returns the preset with the given name, case-insensitively.
func Lookup(name string) (Profile, error) {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownMaterial, name, strings.Join(Names(), ", "))
}

// Default returns the PLA preset.
func Default() Profile {
	p, err := Lookup(DefaultName)
	if err != nil {
		panic(err)
	}
	return p
}

// Names returns the names of all presets, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of every preset in catalog order.
func All() []Profile {
	return append([]Profile(nil), catalog...)
}
