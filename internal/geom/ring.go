package geom

import (
	"fmt"
	"math"
	"math/rand"
)

// RingSpec configures the ring/annulus sampler.
type RingSpec struct {
	Inner float64 // inner radius, AU
	Outer float64 // outer radius, AU
	Count int     // number of points

	// Thickness is the full vertical extent of the ring. When > 0,
	// each point gets a uniform z offset in [−Thickness/2, +Thickness/2];
	// when 0 the ring is flat in the xy-plane.
	Thickness float64

	// StartAngle and Span select a partial arc in radians. A zero Span
	// means the full circle. Ring arcs (Neptune's Adams arcs, Saturn's
	// F-ring clumps) set both.
	StartAngle float64
	Span       float64

	// RadialSteps > 0 samples radii on that many discrete circles
	// between Inner and Outer instead of uniformly filling the annulus.
	RadialSteps int

	// Seed for the random sampler; 0 uses a fixed default so repeated
	// builds are identical.
	Seed int64
}

// Ring samples an annulus (or partial arc) in the xy-plane.
func Ring(spec RingSpec) (PointCloud, error) {
	if spec.Inner <= 0 {
		return PointCloud{}, fmt.Errorf("geom: ring inner radius must be positive, got %v", spec.Inner)
	}
	if spec.Inner >= spec.Outer {
		return PointCloud{}, fmt.Errorf("geom: ring inner radius %v must be less than outer radius %v",
			spec.Inner, spec.Outer)
	}
	if spec.Count < 1 {
		return PointCloud{}, fmt.Errorf("geom: point count must be at least 1, got %d", spec.Count)
	}
	if spec.Thickness < 0 {
		return PointCloud{}, fmt.Errorf("geom: ring thickness must be non-negative, got %v", spec.Thickness)
	}
	if spec.Span < 0 {
		return PointCloud{}, fmt.Errorf("geom: ring span must be non-negative, got %v", spec.Span)
	}

	span := spec.Span
	if span == 0 {
		span = 2 * math.Pi
	}

	seed := spec.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	x := make([]float64, spec.Count)
	y := make([]float64, spec.Count)
	z := make([]float64, spec.Count)

	width := spec.Outer - spec.Inner
	for i := 0; i < spec.Count; i++ {
		theta := spec.StartAngle + rng.Float64()*span

		var r float64
		if spec.RadialSteps > 1 {
			step := rng.Intn(spec.RadialSteps)
			r = spec.Inner + width*float64(step)/float64(spec.RadialSteps-1)
		} else if spec.RadialSteps == 1 {
			r = spec.Inner + width/2
		} else {
			r = spec.Inner + rng.Float64()*width
		}

		sinT, cosT := math.Sincos(theta)
		x[i] = r * cosT
		y[i] = r * sinT
		if spec.Thickness > 0 {
			z[i] = (rng.Float64() - 0.5) * spec.Thickness
		}
	}

	return PointCloud{X: x, Y: y, Z: z}, nil
}
