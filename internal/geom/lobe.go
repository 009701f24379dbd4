package geom

import (
	"fmt"
	"math"
)

// LobeSpec configures the magnetosphere-lobe generator. All distances
// are AU. The lobe is generated in a canonical frame with the
// compressed nose pointing down −X (sunward) and the magnetotail
// extending along +X; callers rotate the cloud to the body's actual
// sun line and magnetic axis afterward.
type LobeSpec struct {
	SunwardDistance  float64 // standoff distance of the nose
	EquatorialRadius float64 // transverse radius in the ecliptic (y)
	PolarRadius      float64 // transverse radius pole-to-pole (z)
	TailLength       float64 // magnetotail length; 0 for no tail
	TailBaseRadius   float64 // tail cross-section radius at the body
	TailEndRadius    float64 // tail cross-section radius at the far end

	// Resolution is the mesh density per parameter axis; the hemisphere
	// gets Resolution² points and the tail the same again. 0 uses the
	// default of 16.
	Resolution int
}

// MagnetosphereLobe generates a compressed sunward hemisphere plus an
// anti-sunward tail whose cross-section interpolates base→end radius
// over the tail length. The two regions are built independently and
// concatenated; there is no smoothing at the seam.
func MagnetosphereLobe(spec LobeSpec) (PointCloud, error) {
	if spec.SunwardDistance <= 0 {
		return PointCloud{}, fmt.Errorf("geom: lobe sunward distance must be positive, got %v", spec.SunwardDistance)
	}
	if spec.EquatorialRadius <= 0 || spec.PolarRadius <= 0 {
		return PointCloud{}, fmt.Errorf("geom: lobe transverse radii must be positive, got eq=%v pol=%v",
			spec.EquatorialRadius, spec.PolarRadius)
	}
	if spec.TailLength < 0 {
		return PointCloud{}, fmt.Errorf("geom: lobe tail length must be non-negative, got %v", spec.TailLength)
	}
	if spec.TailBaseRadius < 0 || spec.TailEndRadius < 0 {
		return PointCloud{}, fmt.Errorf("geom: lobe tail radii must be non-negative, got base=%v end=%v",
			spec.TailBaseRadius, spec.TailEndRadius)
	}

	n := spec.Resolution
	if n == 0 {
		n = 16
	}
	if n < 2 {
		return PointCloud{}, fmt.Errorf("geom: lobe resolution must be at least 2, got %d", n)
	}

	total := n * n
	if spec.TailLength > 0 {
		total *= 2
	}
	x := make([]float64, 0, total)
	y := make([]float64, 0, total)
	z := make([]float64, 0, total)

	// Sunward hemisphere: an ellipsoid half with the nose compressed to
	// the standoff distance. φ runs nose→terminator, ψ around the axis.
	for i := 0; i < n; i++ {
		phi := math.Pi / 2 * float64(i) / float64(n-1)
		sinPhi, cosPhi := math.Sincos(phi)
		for j := 0; j < n; j++ {
			psi := 2 * math.Pi * float64(j) / float64(n)
			sinPsi, cosPsi := math.Sincos(psi)
			x = append(x, -spec.SunwardDistance*cosPhi)
			y = append(y, spec.EquatorialRadius*sinPhi*cosPsi)
			z = append(z, spec.PolarRadius*sinPhi*sinPsi)
		}
	}

	// Magnetotail: rings of points at stations along +X, cross-section
	// radius lerping base→end.
	if spec.TailLength > 0 {
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			ringR := spec.TailBaseRadius + (spec.TailEndRadius-spec.TailBaseRadius)*t
			for j := 0; j < n; j++ {
				psi := 2 * math.Pi * float64(j) / float64(n)
				sinPsi, cosPsi := math.Sincos(psi)
				x = append(x, t*spec.TailLength)
				y = append(y, ringR*cosPsi)
				z = append(z, ringR*sinPsi)
			}
		}
	}

	return PointCloud{X: x, Y: y, Z: z}, nil
}
