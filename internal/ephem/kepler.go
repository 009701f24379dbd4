package ephem

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/catalog"
)

// KeplerProvider computes positions offline from the catalog's J2000
// mean elements. Accuracy is display-grade: no perturbations, no
// secular rates, moons on circular parent-relative orbits. Good to a
// fraction of a degree for the planets over decades around J2000,
// which is far below one terminal cell.
type KeplerProvider struct{}

// NewKeplerProvider creates the offline Kepler provider.
func NewKeplerProvider() KeplerProvider {
	return KeplerProvider{}
}

// Name implements PositionProvider.
func (KeplerProvider) Name() string {
	return "kepler"
}

// HeliocentricPosition implements PositionProvider for bodies the
// catalog knows by NAIF id.
func (KeplerProvider) HeliocentricPosition(horizonsID int, t time.Time) (astro.Vec3, error) {
	o, ok := catalog.ByHorizonsID[horizonsID]
	if !ok {
		return astro.Vec3{}, fmt.Errorf("ephem: no catalog object with horizons id %d", horizonsID)
	}
	return KeplerPosition(o, t)
}

// KeplerPosition returns the heliocentric ecliptic position of any
// catalog object at time t, in AU. Comets and other Kepler-only rows
// (HorizonsID 0) are addressed directly through here. The Sun and the
// static belt markers sit at the origin; their geometry is Sun-centered.
func KeplerPosition(o catalog.Object, t time.Time) (astro.Vec3, error) {
	switch {
	case o.Kind == catalog.KindStar:
		return astro.Vec3{}, nil
	case o.Kind == catalog.KindMoon:
		return moonPosition(o, t)
	case o.PeriodDays == 0:
		return astro.Vec3{}, nil
	case o.SemiMajorAU <= 0:
		return astro.Vec3{}, fmt.Errorf("ephem: %s has no orbital elements", o.Code)
	}
	return heliocentricKepler(o, t), nil
}

// heliocentricKepler evaluates the classical two-body position from
// J2000 mean elements: mean longitude advanced by the mean motion,
// Kepler's equation for the eccentric anomaly, true anomaly and radius,
// then the perihelion/inclination/node rotations into the ecliptic.
func heliocentricKepler(o catalog.Object, t time.Time) astro.Vec3 {
	d := astro.DaysSinceJ2000(t)
	n := 360.0 / o.PeriodDays // mean motion, deg/day

	L := astro.NormalizeDeg(o.MeanLongitudeDeg + n*d)
	M := degToRad(astro.NormalizeDeg(L - o.PerihelionDeg))
	w := degToRad(astro.NormalizeDeg(o.PerihelionDeg - o.NodeDeg))
	i := degToRad(o.InclinationDeg)
	node := degToRad(o.NodeDeg)
	e := o.Eccentricity

	E := solveKepler(M, e)
	v := 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
	r := o.SemiMajorAU * (1 - e*math.Cos(E))

	sv, cv := math.Sincos(v)
	plane := astro.Vec3{X: r * cv, Y: r * sv}
	return plane.RotatedZ(w).RotatedX(i).RotatedZ(node)
}

// moonPosition places a moon on a circular orbit around its parent,
// tilted into the parent's equatorial plane so moons line up with ring
// shells. Negative periods run the orbit retrograde.
func moonPosition(o catalog.Object, t time.Time) (astro.Vec3, error) {
	parent, ok := catalog.ByCode[o.Parent]
	if !ok {
		return astro.Vec3{}, fmt.Errorf("ephem: moon %s has unknown parent %q", o.Code, o.Parent)
	}
	center, err := KeplerPosition(parent, t)
	if err != nil {
		return astro.Vec3{}, err
	}
	if o.OrbitKm <= 0 || o.PeriodDays == 0 {
		return astro.Vec3{}, fmt.Errorf("ephem: moon %s has no orbit", o.Code)
	}

	phase := astro.NormalizeRad(2 * math.Pi * astro.DaysSinceJ2000(t) / o.PeriodDays)
	r := astro.KmToAU(o.OrbitKm)
	s, c := math.Sincos(phase)

	offset := astro.Vec3{X: r * c, Y: r * s}
	offset = offset.RotatedX(degToRad(parent.AxialTiltDeg)).RotatedZ(degToRad(parent.NodeDeg))
	return center.Add(offset), nil
}

// solveKepler solves E − e·sin(E) = M for the eccentric anomaly with a
// Danby starter and Newton-Raphson refinement. Comets with e near 1
// need the high-eccentricity starter to converge.
func solveKepler(M, e float64) float64 {
	var E float64
	if e < 0.8 {
		E = M + e*math.Sin(M)*(1+e*math.Cos(M))
	} else {
		E = M + e*math.Sin(M)/(1-math.Sin(M+e)+math.Sin(M))
	}

	for iter := 0; iter < 15; iter++ {
		f := E - e*math.Sin(E) - M
		if math.Abs(f) < 1e-12 {
			break
		}
		E -= f / (1 - e*math.Cos(E))
	}
	return E
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
