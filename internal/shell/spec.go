package shell

import (
	"errors"
	"fmt"

	"github.com/litescript/ls-orrery/internal/catalog"
)

// Kind selects which sampler realizes a shell layer.
type Kind int

const (
	KindSphereMesh Kind = iota // lat/long sphere mesh, Count² points
	KindSurface                // Fibonacci-distributed sphere surface
	KindRing                   // annulus or partial arc in the ring plane
	KindLobe                   // compressed hemisphere plus magnetotail
	KindTail                   // particle cone streaming anti-solar
	KindBelt                   // ring with absolute AU radii (asteroid, Kuiper)
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSphereMesh:
		return "sphere"
	case KindSurface:
		return "surface"
	case KindRing:
		return "ring"
	case KindLobe:
		return "lobe"
	case KindTail:
		return "tail"
	case KindBelt:
		return "belt"
	default:
		return "unknown"
	}
}

// LobeParams sizes a magnetosphere lobe in units of the body radius.
type LobeParams struct {
	StandoffFrac float64 // sunward nose distance
	EquatorFrac  float64 // transverse radius in the ring plane
	PolarFrac    float64 // transverse radius pole to pole
	TailLenFrac  float64 // magnetotail length
	TailBaseFrac float64 // tail cross-section at the body
	TailEndFrac  float64 // tail cross-section at the far end
}

// TailParams sizes a particle tail.
type TailParams struct {
	LengthAU     float64
	HalfAngleDeg float64
	Bias         float64 // radial density exponent; 0 uses the sampler default
	Curved       bool    // bend against the orbital motion (dust tails)
	CurveFactor  float64
}

// Spec declares one shell layer of a body. The per-body tables in this
// package are lists of these; Build turns one into a renderable Trace.
type Spec struct {
	Layer string // display name, e.g. "B ring", "Magnetosphere"
	Kind  Kind

	// Sphere radii: a fraction of the body radius, or an absolute AU
	// override when RadiusAU > 0 (Hill spheres, comet comae).
	RadiusFrac float64
	RadiusAU   float64

	// Ring radii: fractions of the body radius for planetary rings,
	// absolute AU (InnerAU/OuterAU) for belts and habitable zones.
	InnerFrac     float64
	OuterFrac     float64
	InnerAU       float64
	OuterAU       float64
	ThicknessFrac float64
	ThicknessAU   float64
	StartDeg      float64 // arc start; with SpanDeg 0 the full circle is sampled
	SpanDeg       float64
	RadialSteps   int

	Lobe LobeParams // used when Kind == KindLobe
	Tail TailParams // used when Kind == KindTail

	// Count is the per-axis mesh resolution for KindSphereMesh and
	// KindLobe (total points scale with its square) and the total
	// sample count for the other kinds. 0 uses a per-kind default.
	Count int

	// Tilted applies the body's axial tilt about X and ascending node
	// about Z, so ring systems ride the body's equatorial plane.
	Tilted bool

	Color   string // "#rrggbb"
	Color2  string // ramp end: tails fade along their length, rings inner to outer
	Opacity float64
	Glyph   rune   // marker for the terminal renderer; 0 uses a default
	Hover   string // defaults to the body's catalog blurb
	Legend  bool
}

func (s Spec) validate() error {
	if s.Layer == "" {
		return errors.New("shell: layer name required")
	}
	if !isHexColor(s.Color) {
		return fmt.Errorf("shell: layer %s: bad color %q", s.Layer, s.Color)
	}
	if s.Color2 != "" && !isHexColor(s.Color2) {
		return fmt.Errorf("shell: layer %s: bad ramp color %q", s.Layer, s.Color2)
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return fmt.Errorf("shell: layer %s: opacity %v outside [0, 1]", s.Layer, s.Opacity)
	}
	switch s.Kind {
	case KindSphereMesh, KindSurface, KindRing, KindLobe, KindTail, KindBelt:
		return nil
	default:
		return fmt.Errorf("shell: layer %s: unrecognized shell kind %d", s.Layer, s.Kind)
	}
}

// sphereRadius resolves the sphere radius in AU, preferring the
// absolute override.
func (s Spec) sphereRadius(body catalog.Object) float64 {
	if s.RadiusAU > 0 {
		return s.RadiusAU
	}
	return s.RadiusFrac * body.RadiusAU()
}

// ringRadii resolves the annulus bounds in AU, preferring absolute
// overrides.
func (s Spec) ringRadii(body catalog.Object) (inner, outer float64) {
	if s.InnerAU > 0 || s.OuterAU > 0 {
		return s.InnerAU, s.OuterAU
	}
	r := body.RadiusAU()
	return s.InnerFrac * r, s.OuterFrac * r
}

func (s Spec) thickness(body catalog.Object) float64 {
	if s.ThicknessAU > 0 {
		return s.ThicknessAU
	}
	return s.ThicknessFrac * body.RadiusAU()
}
