package shell

import (
	"sort"
	"strings"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/catalog"
)

// Shells returns the shell table for a body code, or nil when the body
// has none (small moons, asteroids render as bare markers).
func Shells(code string) []Spec {
	return tables[strings.ToUpper(code)]
}

// Bodies returns the codes that have shell tables, sorted.
func Bodies() []string {
	codes := make([]string, 0, len(tables))
	for c := range tables {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// tables maps catalog codes to their layer stacks. Radii are fractions
// of the body radius unless a field says AU; magnetosphere standoffs
// and ring edges follow published mean values.
var tables = map[string][]Spec{
	"SUN": {
		{Layer: "Core", Kind: KindSphereMesh, RadiusFrac: 0.25, Count: 10,
			Color: "#fff6e0", Opacity: 0.9, Hover: "Fusion core at 15.7 million K"},
		{Layer: "Radiative zone", Kind: KindSphereMesh, RadiusFrac: 0.7, Count: 12,
			Color: "#ffe9a8", Opacity: 0.5, Hover: "Photons random-walk outward for ~170,000 years"},
		{Layer: "Convective zone", Kind: KindSphereMesh, RadiusFrac: 0.98, Count: 12,
			Color: "#ffd27d", Opacity: 0.4, Hover: "Granulation cells churn the outer 30%"},
		{Layer: "Photosphere", Kind: KindSurface, RadiusFrac: 1.0, Count: 500,
			Color: "#fdb813", Opacity: 0.95, Glyph: '●', Legend: true,
			Hover: "Visible surface, 5772 K"},
		{Layer: "Chromosphere", Kind: KindSurface, RadiusFrac: 1.02, Count: 300,
			Color: "#ff9e3d", Opacity: 0.25, Hover: "Thin pink layer seen at eclipse"},
		{Layer: "Corona", Kind: KindSurface, RadiusFrac: 2.5, Count: 400,
			Color: "#fff4d6", Opacity: 0.08, Hover: "Million-degree outer atmosphere"},
	},

	"MERCURY": {
		{Layer: "Iron core", Kind: KindSphereMesh, RadiusFrac: 0.8, Count: 10,
			Color: "#b0a79b", Opacity: 0.85, Hover: "Outsized core, 80% of the radius"},
		{Layer: "Mantle", Kind: KindSphereMesh, RadiusFrac: 0.97, Count: 10,
			Color: "#9a938a", Opacity: 0.5, Hover: "Thin silicate shell"},
		{Layer: "Surface", Kind: KindSurface, RadiusFrac: 1.0, Count: 400,
			Color: "#8c8680", Opacity: 0.95, Glyph: '●', Legend: true},
		{Layer: "Sodium exosphere", Kind: KindSurface, RadiusFrac: 1.4, Count: 150,
			Color: "#f4e3a1", Opacity: 0.06, Hover: "Sputtered sodium atoms, barely bound"},
		{Layer: "Magnetosphere", Kind: KindLobe, Count: 14,
			Lobe: LobeParams{StandoffFrac: 1.45, EquatorFrac: 1.8, PolarFrac: 1.6, TailLenFrac: 6, TailBaseFrac: 2.0, TailEndFrac: 3.2},
			Color: "#9fc4d8", Opacity: 0.12, Hover: "Weak field, nose at just 1.45 radii"},
	},

	"VENUS": {
		{Layer: "Core", Kind: KindSphereMesh, RadiusFrac: 0.51, Count: 10,
			Color: "#c4b49a", Opacity: 0.8, Hover: "Iron core, likely still partially molten"},
		{Layer: "Mantle", Kind: KindSphereMesh, RadiusFrac: 0.98, Count: 10,
			Color: "#baa98f", Opacity: 0.5, Hover: "Rocky mantle resurfaced ~500 Myr ago"},
		{Layer: "Surface", Kind: KindSurface, RadiusFrac: 1.0, Count: 400,
			Color: "#d8b98a", Opacity: 0.95, Glyph: '●', Legend: true},
		{Layer: "Cloud deck", Kind: KindSurface, RadiusFrac: 1.01, Count: 350,
			Color: "#e6c89c", Opacity: 0.5, Hover: "Sulfuric-acid clouds, 50-70 km up"},
		{Layer: "Upper haze", Kind: KindSurface, RadiusFrac: 1.015, Count: 200,
			Color: "#f0dcb4", Opacity: 0.15, Hover: "UV-absorbing haze above the clouds"},
	},

	"EARTH": {
		{Layer: "Inner core", Kind: KindSphereMesh, RadiusFrac: 0.19, Count: 8,
			Color: "#f5e4c3", Opacity: 0.9, Hover: "Solid iron-nickel, 1220 km radius"},
		{Layer: "Outer core", Kind: KindSphereMesh, RadiusFrac: 0.55, Count: 10,
			Color: "#e8c89a", Opacity: 0.6, Hover: "Liquid iron; the geodynamo lives here"},
		{Layer: "Mantle", Kind: KindSphereMesh, RadiusFrac: 0.99, Count: 12,
			Color: "#c87f4a", Opacity: 0.4, Hover: "Slowly convecting silicate rock"},
		{Layer: "Surface", Kind: KindSurface, RadiusFrac: 1.0, Count: 500,
			Color: "#2a66de", Opacity: 0.95, Glyph: '●', Legend: true},
		{Layer: "Atmosphere", Kind: KindSurface, RadiusFrac: 1.016, Count: 250,
			Color: "#9cc6ff", Opacity: 0.18, Hover: "Breathable out to the Kármán line"},
		{Layer: "Magnetosphere", Kind: KindLobe, Count: 16, Tilted: true,
			Lobe: LobeParams{StandoffFrac: 10, EquatorFrac: 12, PolarFrac: 11, TailLenFrac: 60, TailBaseFrac: 15, TailEndFrac: 25},
			Color: "#7fd1f5", Opacity: 0.1, Hover: "Nose at ~10 Earth radii, tail past the Moon"},
		{Layer: "Hill sphere", Kind: KindSurface, RadiusAU: 0.01, Count: 250,
			Color: "#6fae8f", Opacity: 0.05, Hover: "Gravitational dominance out to 0.01 AU"},
	},

	"MOON": {
		{Layer: "Core", Kind: KindSphereMesh, RadiusFrac: 0.19, Count: 8,
			Color: "#d8cdbd", Opacity: 0.8, Hover: "Small iron core, ~330 km"},
		{Layer: "Mantle", Kind: KindSphereMesh, RadiusFrac: 0.97, Count: 10,
			Color: "#b3aca1", Opacity: 0.45, Hover: "Source of the mare basalts"},
		{Layer: "Surface", Kind: KindSurface, RadiusFrac: 1.0, Count: 400,
			Color: "#c8c8c8", Opacity: 0.95, Glyph: '●', Legend: true},
	},

	"MARS": {
		{Layer: "Core", Kind: KindSphereMesh, RadiusFrac: 0.54, Count: 10,
			Color: "#c09a78", Opacity: 0.8, Hover: "Liquid iron-sulfur core, InSight-measured"},
		{Layer: "Mantle", Kind: KindSphereMesh, RadiusFrac: 0.98, Count: 10,
			Color: "#b07a52", Opacity: 0.5, Hover: "One-plate planet mantle"},
		{Layer: "Surface", Kind: KindSurface, RadiusFrac: 1.0, Count: 400,
			Color: "#c1440e", Opacity: 0.95, Glyph: '●', Legend: true},
		{Layer: "Atmosphere", Kind: KindSurface, RadiusFrac: 1.03, Count: 150,
			Color: "#d9a273", Opacity: 0.08, Hover: "1% of Earth's pressure, mostly CO₂"},
	},

	"JUPITER": {
		{Layer: "Core", Kind: KindSphereMesh, RadiusFrac: 0.1, Count: 8,
			Color: "#d8c4a0", Opacity: 0.8, Hover: "Diffuse rock-ice core, partly dissolved"},
		{Layer: "Metallic hydrogen", Kind: KindSphereMesh, RadiusFrac: 0.8, Count: 12,
			Color: "#c9b896", Opacity: 0.45, Hover: "Conducting hydrogen drives the huge field"},
		{Layer: "Molecular envelope", Kind: KindSphereMesh, RadiusFrac: 0.99, Count: 12,
			Color: "#d3c4a2", Opacity: 0.3, Hover: "Ordinary H₂ down to a megabar"},
		{Layer: "Cloud tops", Kind: KindSurface, RadiusFrac: 1.0, Count: 550,
			Color: "#d8ca9d", Opacity: 0.95, Glyph: '●', Legend: true},
		{Layer: "Main ring", Kind: KindRing, InnerFrac: 1.75, OuterFrac: 1.85, Count: 700,
			ThicknessFrac: 0.01, Tilted: true,
			Color: "#b8a988", Opacity: 0.12, Glyph: '∘', Hover: "Faint dust ring fed by Metis and Adrastea"},
		{Layer: "Io plasma torus", Kind: KindRing, InnerFrac: 5.7, OuterFrac: 6.3, Count: 900,
			ThicknessFrac: 0.5, Tilted: true,
			Color: "#9ef576", Color2: "#4a8f52", Opacity: 0.15, Glyph: '∘',
			Hover: "Sulfur ions from Io's volcanoes, trapped at 5.9 radii"},
		{Layer: "Magnetosphere", Kind: KindLobe, Count: 18,
			Lobe: LobeParams{StandoffFrac: 70, EquatorFrac: 90, PolarFrac: 80, TailLenFrac: 400, TailBaseFrac: 110, TailEndFrac: 180},
			Color: "#c8a2e8", Opacity: 0.08, Hover: "Largest structure in the solar system"},
	},

	"SATURN": {
		{Layer: "Core", Kind: KindSphereMesh, RadiusFrac: 0.2, Count: 8,
			Color: "#d4c2a2", Opacity: 0.8, Hover: "Fuzzy core revealed by ring seismology"},
		{Layer: "Metallic hydrogen", Kind: KindSphereMesh, RadiusFrac: 0.6, Count: 10,
			Color: "#cbb894", Opacity: 0.45, Hover: "Smaller metallic region than Jupiter's"},
		{Layer: "Molecular envelope", Kind: KindSphereMesh, RadiusFrac: 0.99, Count: 12,
			Color: "#e0cfae", Opacity: 0.3, Hover: "Helium rain falls through this layer"},
		{Layer: "Cloud tops", Kind: KindSurface, RadiusFrac: 1.0, Count: 550,
			Color: "#ead6b8", Opacity: 0.95, Glyph: '●', Legend: true},
		{Layer: "C ring", Kind: KindRing, InnerFrac: 1.28, OuterFrac: 1.58, Count: 900,
			RadialSteps: 8, Tilted: true,
			Color: "#8a7f6d", Opacity: 0.25, Glyph: '∘', Hover: "Dusky inner ring"},
		{Layer: "B ring", Kind: KindRing, InnerFrac: 1.58, OuterFrac: 2.02, Count: 1400,
			Tilted: true,
			Color: "#cbb794", Color2: "#a8946e", Opacity: 0.6, Glyph: '∘', Legend: true,
			Hover: "Brightest, most massive ring"},
		{Layer: "A ring", Kind: KindRing, InnerFrac: 2.10, OuterFrac: 2.35, Count: 1100,
			Tilted: true,
			Color: "#bda883", Opacity: 0.5, Glyph: '∘',
			Hover: "Outer main ring beyond the Cassini division"},
		{Layer: "F ring", Kind: KindRing, InnerFrac: 2.40, OuterFrac: 2.42, Count: 350,
			StartDeg: 20, SpanDeg: 320, Tilted: true,
			Color: "#d8c7a5", Opacity: 0.3, Glyph: '∘',
			Hover: "Kinked strand shepherded by Prometheus and Pandora"},
		{Layer: "Magnetosphere", Kind: KindLobe, Count: 16,
			Lobe: LobeParams{StandoffFrac: 19, EquatorFrac: 24, PolarFrac: 21, TailLenFrac: 90, TailBaseFrac: 28, TailEndFrac: 45},
			Color: "#a8c8e8", Opacity: 0.08, Hover: "Field axis aligned with the spin axis"},
	},

	"URANUS": {
		{Layer: "Core", Kind: KindSphereMesh, RadiusFrac: 0.2, Count: 8,
			Color: "#b8c4c8", Opacity: 0.8, Hover: "Small rocky center"},
		{Layer: "Icy mantle", Kind: KindSphereMesh, RadiusFrac: 0.8, Count: 12,
			Color: "#8fb8cc", Opacity: 0.45, Hover: "Superionic water-ammonia ocean"},
		{Layer: "Envelope", Kind: KindSphereMesh, RadiusFrac: 0.99, Count: 10,
			Color: "#a5cfe4", Opacity: 0.3, Hover: "Hydrogen-helium over methane haze"},
		{Layer: "Cloud tops", Kind: KindSurface, RadiusFrac: 1.0, Count: 450,
			Color: "#afdbf5", Opacity: 0.95, Glyph: '●', Legend: true},
		{Layer: "Epsilon ring", Kind: KindRing, InnerFrac: 2.00, OuterFrac: 2.03, Count: 500,
			Tilted: true,
			Color: "#9db4c4", Opacity: 0.35, Glyph: '∘',
			Hover: "Brightest ring, riding the 97.8° tilt"},
		{Layer: "Magnetosphere", Kind: KindLobe, Count: 14, Tilted: true,
			Lobe: LobeParams{StandoffFrac: 18, EquatorFrac: 22, PolarFrac: 20, TailLenFrac: 70, TailBaseFrac: 25, TailEndFrac: 40},
			Color: "#b4d4e8", Opacity: 0.08, Hover: "Dipole offset 60° from the spin axis"},
	},

	"NEPTUNE": {
		{Layer: "Core", Kind: KindSphereMesh, RadiusFrac: 0.25, Count: 8,
			Color: "#b0bcc8", Opacity: 0.8, Hover: "Earth-mass rock-ice center"},
		{Layer: "Icy mantle", Kind: KindSphereMesh, RadiusFrac: 0.82, Count: 12,
			Color: "#6f94b8", Opacity: 0.45, Hover: "Hot dense fluid, possibly diamond rain"},
		{Layer: "Envelope", Kind: KindSphereMesh, RadiusFrac: 0.99, Count: 10,
			Color: "#5c84a8", Opacity: 0.3, Hover: "Methane gives the deep blue"},
		{Layer: "Cloud tops", Kind: KindSurface, RadiusFrac: 1.0, Count: 450,
			Color: "#366896", Opacity: 0.95, Glyph: '●', Legend: true},
		{Layer: "Le Verrier ring", Kind: KindRing, InnerFrac: 2.15, OuterFrac: 2.17, Count: 300,
			Tilted: true,
			Color: "#8da2b5", Opacity: 0.15, Glyph: '∘', Hover: "Narrow inner dust ring"},
		{Layer: "Adams ring: Fraternité", Kind: KindRing, InnerFrac: 2.55, OuterFrac: 2.57, Count: 220,
			StartDeg: 247, SpanDeg: 10, Tilted: true,
			Color: "#aebfd0", Opacity: 0.4, Glyph: '∘', Hover: "Longest of the Adams arcs"},
		{Layer: "Adams ring: Égalité", Kind: KindRing, InnerFrac: 2.55, OuterFrac: 2.57, Count: 120,
			StartDeg: 261, SpanDeg: 4, Tilted: true,
			Color: "#aebfd0", Opacity: 0.4, Glyph: '∘', Hover: "Twin clumps confined by Galatea"},
		{Layer: "Adams ring: Liberté", Kind: KindRing, InnerFrac: 2.55, OuterFrac: 2.57, Count: 120,
			StartDeg: 276, SpanDeg: 4, Tilted: true,
			Color: "#aebfd0", Opacity: 0.4, Glyph: '∘', Hover: "Leading arc, fading since Voyager"},
		{Layer: "Magnetosphere", Kind: KindLobe, Count: 14, Tilted: true,
			Lobe: LobeParams{StandoffFrac: 24, EquatorFrac: 28, PolarFrac: 26, TailLenFrac: 100, TailBaseFrac: 30, TailEndFrac: 50},
			Color: "#9cc0dc", Opacity: 0.08, Hover: "Wildly tilted field like Uranus's"},
	},

	"PLUTO": {
		{Layer: "Core", Kind: KindSphereMesh, RadiusFrac: 0.45, Count: 8,
			Color: "#c4ab8f", Opacity: 0.8, Hover: "Rocky core under the ice"},
		{Layer: "Ice mantle", Kind: KindSphereMesh, RadiusFrac: 0.98, Count: 10,
			Color: "#ddd3c4", Opacity: 0.45, Hover: "Water-ice shell over a possible ocean"},
		{Layer: "Surface", Kind: KindSurface, RadiusFrac: 1.0, Count: 350,
			Color: "#c9b29a", Opacity: 0.95, Glyph: '●', Legend: true},
		{Layer: "Haze", Kind: KindSurface, RadiusFrac: 1.1, Count: 150,
			Color: "#8fb8d8", Opacity: 0.08, Hover: "Blue photochemical haze in 20 layers"},
	},

	"BELT": {
		{Layer: "Asteroid belt", Kind: KindBelt, InnerAU: 2.1, OuterAU: 3.3, Count: 1600,
			ThicknessAU: 0.3,
			Color: "#7a715f", Opacity: 0.3, Glyph: '·', Legend: true,
			Hover: "Most of the mass sits in Ceres, Vesta, Pallas and Hygiea"},
	},

	"KUIPER": {
		{Layer: "Kuiper belt", Kind: KindBelt, InnerAU: 30, OuterAU: 50, Count: 1800,
			ThicknessAU: 3.5,
			Color: "#5d6b7a", Opacity: 0.25, Glyph: '·', Legend: true,
			Hover: "Classical belt between the 2:3 and 1:2 resonances"},
	},

	"1P":        cometShells(1.0, true),
	"2P":        cometShells(0.45, false),
	"67P":       cometShells(0.35, false),
	"HALE-BOPP": cometShells(1.6, true),
}

// cometShells builds the standard comet layer stack. scale stretches
// the coma and tails (Hale-Bopp class > 1, Encke class < 1); sodium
// adds the neutral-sodium tail observed on bright comets.
func cometShells(scale float64, sodium bool) []Spec {
	specs := []Spec{
		{Layer: "Nucleus", Kind: KindSurface, RadiusFrac: 1.0, Count: 150,
			Color: "#8a9aa5", Opacity: 0.95, Glyph: '●', Legend: true,
			Hover: "Dirty snowball of ice and dust"},
		{Layer: "Coma", Kind: KindSurface, RadiusAU: 0.0007 * scale, Count: 350,
			Color: "#cfe8f2", Opacity: 0.15,
			Hover: "Sublimating gas cloud around the nucleus"},
		{Layer: "Ion tail", Kind: KindTail, Count: 700,
			Tail: TailParams{LengthAU: 0.6 * scale, HalfAngleDeg: 1.5},
			Color: "#7fc4f5", Color2: "#2b4a66", Opacity: 0.5, Glyph: '·',
			Hover: "Plasma rides the solar wind, dead straight"},
		{Layer: "Dust tail", Kind: KindTail, Count: 900,
			Tail: TailParams{LengthAU: 0.35 * scale, HalfAngleDeg: 7, Curved: true, CurveFactor: 0.8},
			Color: "#e8d9b0", Color2: "#6b6453", Opacity: 0.45, Glyph: '·',
			Hover: "Heavier grains lag the orbit and curve"},
	}
	if sodium {
		specs = append(specs, Spec{Layer: "Sodium tail", Kind: KindTail, Count: 300,
			Tail: TailParams{LengthAU: 0.8 * scale, HalfAngleDeg: 0.8},
			Color: "#ffe97f", Color2: "#8f7a2b", Opacity: 0.25, Glyph: '·',
			Hover: "Neutral sodium streak, first mapped on Hale-Bopp"})
	}
	return specs
}

const sunRadiusKm = 695700

// SystemShells builds the display layers for an exoplanet system: the
// host star's surface and the habitable-zone annulus. Planets render as
// plain markers placed by the scene.
func SystemShells(sys catalog.System) []Spec {
	return []Spec{
		{Layer: sys.Star, Kind: KindSurface, Count: 400,
			RadiusAU: astro.KmToAU(sys.StarRadiusSuns * sunRadiusKm),
			Color: sys.StarColor, Opacity: 0.95, Glyph: '●', Legend: true,
			Hover: sys.Star},
		{Layer: "Habitable zone", Kind: KindBelt, Count: 800,
			InnerAU: sys.HabInnerAU, OuterAU: sys.HabOuterAU,
			Color: "#e0b25c", Color2: "#5c9ed8", Opacity: 0.15, Glyph: '∘',
			Hover: "Where liquid surface water could persist"},
	}
}
