package shell

import (
	"sort"
	"testing"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/catalog"
)

func TestShellTablesBuild(t *testing.T) {
	for _, code := range Bodies() {
		body, ok := catalog.Lookup(code)
		if !ok {
			t.Errorf("shell table %q has no catalog entry", code)
			continue
		}
		ctx := BodyContext{Body: body, Heliocentric: astro.Vec3{X: 2.5, Y: 1.2}}
		traces, err := BuildAll(code, ctx)
		if err != nil {
			t.Errorf("BuildAll(%q) error: %v", code, err)
			continue
		}
		if len(traces) != len(Shells(code)) {
			t.Errorf("BuildAll(%q) = %d traces, want %d", code, len(traces), len(Shells(code)))
		}
		for _, tr := range traces {
			if tr.Cloud.Len() == 0 {
				t.Errorf("%s %s built an empty cloud", code, tr.Name)
			}
		}
	}
}

func TestShellTablesKnownLayers(t *testing.T) {
	tests := []struct {
		code   string
		layers int
		want   []string
	}{
		{"SUN", 6, []string{"Photosphere", "Corona"}},
		{"EARTH", 7, []string{"Magnetosphere", "Hill sphere"}},
		{"JUPITER", 7, []string{"Main ring", "Io plasma torus"}},
		{"SATURN", 9, []string{"C ring", "B ring", "A ring", "F ring"}},
		{"URANUS", 6, []string{"Epsilon ring"}},
		{"NEPTUNE", 9, []string{"Adams ring: Fraternité", "Adams ring: Égalité", "Adams ring: Liberté"}},
		{"BELT", 1, []string{"Asteroid belt"}},
		{"KUIPER", 1, []string{"Kuiper belt"}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			specs := Shells(tt.code)
			if len(specs) != tt.layers {
				t.Fatalf("Shells(%q) = %d layers, want %d", tt.code, len(specs), tt.layers)
			}
			have := make(map[string]bool, len(specs))
			for _, s := range specs {
				have[s.Layer] = true
			}
			for _, name := range tt.want {
				if !have[name] {
					t.Errorf("Shells(%q) missing layer %q", tt.code, name)
				}
			}
		})
	}
}

func TestCometTails(t *testing.T) {
	layerByName := func(specs []Spec, name string) (Spec, bool) {
		for _, s := range specs {
			if s.Layer == name {
				return s, true
			}
		}
		return Spec{}, false
	}

	for _, code := range []string{"1P", "2P", "67P", "HALE-BOPP"} {
		specs := Shells(code)
		if specs == nil {
			t.Fatalf("Shells(%q) = nil", code)
		}

		sodium := code == "1P" || code == "HALE-BOPP"
		want := 4
		if sodium {
			want = 5
		}
		if len(specs) != want {
			t.Errorf("Shells(%q) = %d layers, want %d", code, len(specs), want)
		}
		if _, ok := layerByName(specs, "Sodium tail"); ok != sodium {
			t.Errorf("Shells(%q) sodium tail presence = %v, want %v", code, ok, sodium)
		}

		ion, ok := layerByName(specs, "Ion tail")
		if !ok {
			t.Fatalf("Shells(%q) has no ion tail", code)
		}
		if ion.Tail.Curved {
			t.Errorf("%s ion tail is curved, plasma tails stream straight", code)
		}
		dust, ok := layerByName(specs, "Dust tail")
		if !ok {
			t.Fatalf("Shells(%q) has no dust tail", code)
		}
		if !dust.Tail.Curved || dust.Tail.CurveFactor <= 0 {
			t.Errorf("%s dust tail Curved=%v CurveFactor=%v, want a curved tail",
				code, dust.Tail.Curved, dust.Tail.CurveFactor)
		}
		if dust.Tail.LengthAU >= ion.Tail.LengthAU {
			t.Errorf("%s dust tail (%v AU) should be shorter than the ion tail (%v AU)",
				code, dust.Tail.LengthAU, ion.Tail.LengthAU)
		}
	}
}

func TestSaturnRingGeometry(t *testing.T) {
	specs := Shells("SATURN")

	var fRing *Spec
	for i := range specs {
		s := &specs[i]
		if s.Kind == KindRing && !s.Tilted {
			t.Errorf("Saturn %s is not tilted to the ring plane", s.Layer)
		}
		if s.Layer == "F ring" {
			fRing = s
		}
	}
	if fRing == nil {
		t.Fatal("Saturn has no F ring layer")
	}
	if fRing.SpanDeg != 320 || fRing.StartDeg != 20 {
		t.Errorf("F ring arc = start %v span %v, want start 20 span 320",
			fRing.StartDeg, fRing.SpanDeg)
	}
}

func TestShellsCaseInsensitive(t *testing.T) {
	upper := Shells("SATURN")
	lower := Shells("saturn")
	if len(lower) != len(upper) || len(upper) == 0 {
		t.Errorf("Shells(\"saturn\") = %d layers, want %d", len(lower), len(upper))
	}
	if Shells("PHOBOS") != nil {
		t.Error("Shells(\"PHOBOS\") should be nil, small moons render as bare markers")
	}
}

func TestBodiesSorted(t *testing.T) {
	codes := Bodies()
	if len(codes) == 0 {
		t.Fatal("Bodies() returned nothing")
	}
	if !sort.StringsAreSorted(codes) {
		t.Errorf("Bodies() = %v, want sorted", codes)
	}
}

func TestSystemShells(t *testing.T) {
	for _, sys := range catalog.Systems {
		specs := SystemShells(sys)
		if len(specs) != 2 {
			t.Fatalf("SystemShells(%s) = %d layers, want star and habitable zone", sys.Name, len(specs))
		}

		star, hab := specs[0], specs[1]
		if star.Layer != sys.Star {
			t.Errorf("%s star layer = %q, want %q", sys.Name, star.Layer, sys.Star)
		}
		if star.RadiusAU <= 0 {
			t.Errorf("%s star radius = %v AU, want positive", sys.Name, star.RadiusAU)
		}
		if hab.Kind != KindBelt || hab.InnerAU != sys.HabInnerAU || hab.OuterAU != sys.HabOuterAU {
			t.Errorf("%s habitable zone = [%v, %v] AU, want [%v, %v]",
				sys.Name, hab.InnerAU, hab.OuterAU, sys.HabInnerAU, sys.HabOuterAU)
		}

		for _, s := range specs {
			if _, err := Build(s, BodyContext{}); err != nil {
				t.Errorf("Build(%s %s) error: %v", sys.Name, s.Layer, err)
			}
		}
	}
}
