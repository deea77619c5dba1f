package material

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNames(t *testing.T) {
	want := []string{"ABS", "ASA", "Nylon", "PETG", "PLA", "TPU"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	p, err := Lookup("petg")
	if err != nil {
		t.Fatalf("Lookup(petg) error: %v", err)
	}
	want := Profile{
		Name:        "PETG",
		Density:     1.27,
		CostPerGram: 0.03,
		PrintSpeed:  50,
		Thermal:     &Thermal{NozzleTemp: 240, BedTemp: 80},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Lookup(petg) mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("unobtainium")
	if !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("Lookup(unobtainium) error = %v, want ErrUnknownMaterial", err)
	}
}

func TestDefault(t *testing.T) {
	if got := Default().Name; got != DefaultName {
		t.Errorf("Default().Name = %q, want %q", got, DefaultName)
	}
}

func TestParseRejectsBadProfiles(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "- density: 1.2\n  print_speed: 50\n"},
		{"zero density", "- name: X\n  density: 0\n  print_speed: 50\n"},
		{"zero speed", "- name: X\n  density: 1\n"},
		{"not a list", "name: X\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse() error = nil, want error")
			}
		})
	}
}
