package catalog

import (
	"strings"
	"testing"
)

func TestSystems_NonEmpty(t *testing.T) {
	if len(Systems) < 10 {
		t.Errorf("Expected at least 10 exoplanet systems, got %d", len(Systems))
	}
	if PlanetCount() < 50 {
		t.Errorf("Expected at least 50 exoplanets, got %d", PlanetCount())
	}
}

func TestSystems_KnownSystems(t *testing.T) {
	known := map[string]struct {
		planets    int
		distanceLY float64
	}{
		"TRAPPIST-1":       {7, 40.7},
		"Kepler-90":        {8, 2840},
		"Kepler-11":        {6, 2150},
		"TOI-700":          {4, 101.4},
		"Proxima Centauri": {3, 4.25},
		"55 Cancri":        {5, 41},
		"GJ 667C":          {3, 23.6},
		"K2-138":           {6, 660},
		"Kepler-186":       {5, 580},
		"HR 8799":          {4, 133},
		"HD 40307":         {6, 42},
		"GJ 876":           {4, 15.2},
	}

	if len(known) != len(Systems) {
		t.Errorf("Known system list covers %d systems, catalog has %d", len(known), len(Systems))
	}

	for name, want := range known {
		sys, ok := LookupSystem(name)
		if !ok {
			t.Errorf("Expected system %s not in catalog", name)
			continue
		}
		if len(sys.Planets) != want.planets {
			t.Errorf("%s has %d planets, want %d", name, len(sys.Planets), want.planets)
		}
		if sys.DistanceLY != want.distanceLY {
			t.Errorf("%s DistanceLY = %v, want %v", name, sys.DistanceLY, want.distanceLY)
		}
	}
}

func TestSystems_ValidRows(t *testing.T) {
	for _, sys := range Systems {
		if sys.Name == "" || sys.Star == "" {
			t.Errorf("System %+v has empty name or star", sys.Name)
		}
		if sys.StarRadiusSuns <= 0 {
			t.Errorf("System %s has non-positive star radius", sys.Name)
		}
		if len(sys.StarColor) != 7 || sys.StarColor[0] != '#' {
			t.Errorf("System %s has malformed star color %q", sys.Name, sys.StarColor)
		}
		if sys.HabInnerAU <= 0 || sys.HabOuterAU <= sys.HabInnerAU {
			t.Errorf("System %s has invalid habitable zone %v-%v", sys.Name, sys.HabInnerAU, sys.HabOuterAU)
		}
		if len(sys.Planets) == 0 {
			t.Errorf("System %s has no planets", sys.Name)
		}

		for _, p := range sys.Planets {
			if !strings.HasPrefix(p.Name, sys.Name) {
				t.Errorf("Planet %s does not carry system prefix %s", p.Name, sys.Name)
			}
			if p.RadiusEarths <= 0 || p.SemiMajorAU <= 0 || p.PeriodDays <= 0 {
				t.Errorf("Planet %s has non-positive physicals: %+v", p.Name, p)
			}
			if p.EquilibriumK < 0 {
				t.Errorf("Planet %s has negative equilibrium temperature", p.Name)
			}
			if len(p.Color) != 7 || p.Color[0] != '#' {
				t.Errorf("Planet %s has malformed color %q", p.Name, p.Color)
			}
			switch p.Method {
			case MethodTransit, MethodRV, MethodImaging:
			default:
				t.Errorf("Planet %s has unknown detection method %q", p.Name, p.Method)
			}
		}
	}
}

func TestSystems_PlanetsOrdered(t *testing.T) {
	for _, sys := range Systems {
		for i := 1; i < len(sys.Planets); i++ {
			if sys.Planets[i].SemiMajorAU < sys.Planets[i-1].SemiMajorAU {
				t.Errorf("%s planets out of order: %s before %s",
					sys.Name, sys.Planets[i-1].Name, sys.Planets[i].Name)
			}
		}
	}
}

func TestSystems_NoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, sys := range Systems {
		if seen[sys.Name] {
			t.Errorf("Duplicate system name: %s", sys.Name)
		}
		seen[sys.Name] = true

		planets := make(map[string]bool)
		for _, p := range sys.Planets {
			if planets[p.Name] {
				t.Errorf("Duplicate planet name in %s: %s", sys.Name, p.Name)
			}
			planets[p.Name] = true
		}
	}
}

func TestLookupSystem(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"TRAPPIST-1", true},
		{"trappist-1", true},
		{"Kepler-90", true},
		{"Vulcan-1", false},
		{"", false},
	}

	for _, tt := range tests {
		_, ok := LookupSystem(tt.in)
		if ok != tt.wantOK {
			t.Errorf("LookupSystem(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
		}
	}
}
