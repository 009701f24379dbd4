package geom

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/litescript/ls-orrery/internal/astro"
)

// TailSpec configures the tail/cone particle sampler used for comet
// ion tails, dust tails, sodium tails, and jets.
type TailSpec struct {
	// Origin is where the tail is anchored, usually the zero vector
	// when building in the body's local frame.
	Origin astro.Vec3

	// Direction the tail streams toward. When zero, the sampler uses
	// the anti-solar direction derived from BodyPos.
	Direction astro.Vec3

	// BodyPos is the body's position relative to the Sun, used only to
	// derive the default anti-solar direction. Leaving both Direction
	// and BodyPos zero is an error.
	BodyPos astro.Vec3

	Length    float64 // maximum tail length, AU
	HalfAngle float64 // cone opening half-angle, radians, in [0, π/2)
	Count     int     // number of particles

	// Bias is the radial density exponent: in-disk radius is
	// rMax · U^Bias, so values below 1 concentrate particles toward
	// the axis. 0 uses the default of 0.7.
	Bias float64

	// Curve bends the tail: the effective direction at normalized
	// distance f along the axis is  normalize(Direction + Curve·CurveFactor·f).
	// Dust tails curve against the orbital motion; ion tails leave
	// Curve zero and stay straight.
	Curve       astro.Vec3
	CurveFactor float64

	// Seed for the random sampler; 0 uses a fixed default.
	Seed int64
}

// TailCone samples particles in a cone from Origin along the tail
// direction. At axial distance d the in-disk radius is bounded by
// d·tan(HalfAngle); a HalfAngle of 0 degenerates to a line.
func TailCone(spec TailSpec) (PointCloud, error) {
	if spec.Length <= 0 {
		return PointCloud{}, fmt.Errorf("geom: tail length must be positive, got %v", spec.Length)
	}
	if spec.Count < 1 {
		return PointCloud{}, fmt.Errorf("geom: particle count must be at least 1, got %d", spec.Count)
	}
	if spec.HalfAngle < 0 || spec.HalfAngle >= math.Pi/2 {
		return PointCloud{}, fmt.Errorf("geom: tail half-angle must be in [0, π/2), got %v", spec.HalfAngle)
	}

	dir := spec.Direction
	if (dir == astro.Vec3{}) {
		dir = astro.AntiSolar(spec.BodyPos)
		if (dir == astro.Vec3{}) {
			return PointCloud{}, fmt.Errorf("geom: tail direction undefined: zero direction and zero body position")
		}
	}
	dir = dir.Normalized()

	bias := spec.Bias
	if bias <= 0 {
		bias = 0.7
	}

	seed := spec.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	tanHalf := math.Tan(spec.HalfAngle)
	curved := spec.CurveFactor != 0 && spec.Curve != (astro.Vec3{})

	x := make([]float64, spec.Count)
	y := make([]float64, spec.Count)
	z := make([]float64, spec.Count)

	for i := 0; i < spec.Count; i++ {
		d := rng.Float64() * spec.Length

		eff := dir
		if curved {
			f := d / spec.Length
			eff = dir.Add(spec.Curve.Scale(spec.CurveFactor * f)).Normalized()
		}

		rMax := d * tanHalf
		r := rMax * math.Pow(rng.Float64(), bias)
		sinPsi, cosPsi := math.Sincos(rng.Float64() * 2 * math.Pi)

		u, w := perpendicularBasis(eff)
		p := spec.Origin.
			Add(eff.Scale(d)).
			Add(u.Scale(r * cosPsi)).
			Add(w.Scale(r * sinPsi))

		x[i] = p.X
		y[i] = p.Y
		z[i] = p.Z
	}

	return PointCloud{X: x, Y: y, Z: z}, nil
}

// perpendicularBasis returns two unit vectors orthogonal to v and to
// each other, spanning the disk plane perpendicular to v.
func perpendicularBasis(v astro.Vec3) (astro.Vec3, astro.Vec3) {
	ref := astro.Vec3{Z: 1}
	if math.Abs(v.Z) > 0.9 {
		ref = astro.Vec3{X: 1}
	}
	u := v.Cross(ref).Normalized()
	w := v.Cross(u)
	return u, w
}
