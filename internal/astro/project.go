package astro

import "math"

// ProjectedPoint is a 2D projected position with metadata for HUD display.
type ProjectedPoint struct {
	X float64 // screen X (normalized), positive right
	Y float64 // screen Y (normalized), positive up
	R float64 // true 3D distance from the view center, in input units
	Z float64 // original offset above the ecliptic plane
}

// ScaleMode defines how radial distances map to screen space.
type ScaleMode int

const (
	// ScaleLogR uses logarithmic scaling: r_display = log10(r + 1).
	// Good for system-wide views spanning Mercury to Neptune.
	ScaleLogR ScaleMode = iota

	// ScaleLinear preserves true proportions. Good for body-centered
	// views where rings and shells span a narrow radial range.
	ScaleLinear
)

// ProjectionConfig configures the top-down ecliptic projection.
type ProjectionConfig struct {
	Scale float64   // base scale factor applied after mode scaling
	Mode  ScaleMode // radial scaling mode
}

// ProjectTopDown projects a 3D ecliptic vector to 2D screen coordinates,
// looking down from ecliptic north. X points right (toward the vernal
// equinox), Y points up. The input is relative to the view center.
func ProjectTopDown(v Vec3, cfg ProjectionConfig) ProjectedPoint {
	rPlane := math.Sqrt(v.X*v.X + v.Y*v.Y)
	rDisplay := scaleRadius(rPlane, cfg.Mode)
	angle := math.Atan2(v.Y, v.X)

	return ProjectedPoint{
		X: rDisplay * math.Cos(angle) * cfg.Scale,
		Y: rDisplay * math.Sin(angle) * cfg.Scale,
		R: v.Norm(),
		Z: v.Z,
	}
}

// scaleRadius applies the configured scaling mode to a radial distance.
func scaleRadius(r float64, mode ScaleMode) float64 {
	switch mode {
	case ScaleLinear:
		return r
	case ScaleLogR:
		return math.Log10(r + 1)
	default:
		return math.Log10(r + 1)
	}
}
