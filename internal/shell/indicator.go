package shell

import (
	"fmt"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/geom"
)

// Indicator scaling. The shell radius is the preferred scale context;
// the axis range and the center distance are fallbacks for callers that
// do not know the outermost shell.
const (
	shellRadiusMultiple    = 1.15
	axisRangeFraction      = 0.25
	centerDistanceFraction = 0.3

	defaultIndicatorLength = 0.35 // AU, when no scale context exists
	defaultIndicatorMin    = 0.05 // AU
	defaultIndicatorPoints = 32
)

// IndicatorOptions configures the sun-direction annotation for one body.
// Callers must supply scale context explicitly; there is no ambient
// guessing.
type IndicatorOptions struct {
	BodyCode   string // the body being annotated
	CenterCode string // the current view-center body
	LightCode  string // the light source; empty means "SUN"

	// BodyPos is the body's position relative to the scene origin, AU.
	// The indicator is anchored here and points back toward the origin.
	BodyPos astro.Vec3

	// ShellRadius, when > 0, scales the indicator to the body's
	// outermost shell. AxisRange is the fallback: the plotted axis
	// bounds, low then high.
	ShellRadius float64
	AxisRange   [2]float64

	// MinLength keeps the indicator visible at small scales; 0 uses
	// the default.
	MinLength float64

	// Points along the segment; 0 uses the default.
	Points int
}

// SunDirectionIndicator builds a short line trace from the body toward
// the Sun. It returns (nil, nil) when the annotation is suppressed:
// for the light source itself, and for any body that is not the
// current view center.
func SunDirectionIndicator(opts IndicatorOptions) (*Trace, error) {
	light := opts.LightCode
	if light == "" {
		light = "SUN"
	}
	if opts.BodyCode == light {
		return nil, nil
	}
	if opts.BodyCode != opts.CenterCode {
		return nil, nil
	}
	if opts.MinLength < 0 {
		return nil, fmt.Errorf("shell: indicator minimum length %v is negative", opts.MinLength)
	}

	length := indicatorLength(opts)
	min := opts.MinLength
	if min == 0 {
		min = defaultIndicatorMin
	}
	if length < min {
		length = min
	}

	dir := astro.Sunward(opts.BodyPos)
	if dir.Norm() == 0 {
		// Body at the scene origin: fall back to the vernal equinox
		// direction, +X in the ecliptic frame.
		dir = astro.Vec3{X: 1}
	}

	n := opts.Points
	if n < 2 {
		n = defaultIndicatorPoints
	}
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		t := length * float64(i) / float64(n-1)
		x[i] = opts.BodyPos.X + dir.X*t
		y[i] = opts.BodyPos.Y + dir.Y*t
		z[i] = opts.BodyPos.Z + dir.Z*t
	}
	cloud, err := geom.NewPointCloud(x, y, z)
	if err != nil {
		return nil, err
	}

	t := Trace{
		Name:    "Sun direction",
		Color:   "#f2c14e",
		Opacity: 0.9,
		Glyph:   '+',
		Cloud:   cloud,
		Hover:   fmt.Sprintf("Toward the Sun from %s", opts.BodyCode),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// indicatorLength resolves the raw segment length from the best
// available scale context.
func indicatorLength(opts IndicatorOptions) float64 {
	if opts.ShellRadius > 0 {
		return opts.ShellRadius * shellRadiusMultiple
	}
	if width := opts.AxisRange[1] - opts.AxisRange[0]; width > 0 {
		return width * axisRangeFraction
	}
	if d := opts.BodyPos.Norm(); d > 0 {
		return d * centerDistanceFraction
	}
	return defaultIndicatorLength
}
