package geom

import (
	"fmt"
	"math"

	"github.com/litescript/ls-orrery/internal/astro"
)

// RotatePoints applies the standard 3x3 rotation matrix for the given
// principal axis to every point, in place. The coordinate slices must
// have equal lengths. Rotations compose: apply twice with different
// axes/angles to build tilted-and-precessed orientations.
func RotatePoints(x, y, z []float64, angle float64, axis astro.Axis) error {
	if len(x) != len(y) || len(x) != len(z) {
		return fmt.Errorf("geom: coordinate arrays must have equal lengths (x=%d y=%d z=%d)",
			len(x), len(y), len(z))
	}

	s, c := math.Sincos(angle)

	switch axis {
	case astro.AxisX:
		for i := range x {
			y[i], z[i] = y[i]*c-z[i]*s, y[i]*s+z[i]*c
		}
	case astro.AxisY:
		for i := range x {
			x[i], z[i] = x[i]*c+z[i]*s, -x[i]*s+z[i]*c
		}
	case astro.AxisZ:
		for i := range x {
			x[i], y[i] = x[i]*c-y[i]*s, x[i]*s+y[i]*c
		}
	default:
		return fmt.Errorf("geom: unrecognized rotation axis %d", int(axis))
	}
	return nil
}
