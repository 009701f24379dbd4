package geom

import (
	"fmt"
	"math"
)

// Sphere samples a sphere surface of the given radius with a UV
// latitude/longitude mesh. Longitude spans [0, 2π) in n steps and
// latitude spans [−π/2, π/2] inclusive in n steps, for n² points
// total. Points at the poles repeat; that is fine for point-cloud
// rendering.
func Sphere(radius float64, n int) (PointCloud, error) {
	if radius <= 0 {
		return PointCloud{}, fmt.Errorf("geom: sphere radius must be positive, got %v", radius)
	}
	if n < 2 {
		return PointCloud{}, fmt.Errorf("geom: sphere resolution must be at least 2, got %d", n)
	}

	total := n * n
	x := make([]float64, 0, total)
	y := make([]float64, 0, total)
	z := make([]float64, 0, total)

	for i := 0; i < n; i++ {
		theta := -math.Pi/2 + math.Pi*float64(i)/float64(n-1)
		sinT, cosT := math.Sincos(theta)
		for j := 0; j < n; j++ {
			phi := 2 * math.Pi * float64(j) / float64(n)
			sinP, cosP := math.Sincos(phi)
			x = append(x, radius*cosT*cosP)
			y = append(y, radius*cosT*sinP)
			z = append(z, radius*sinT)
		}
	}

	return PointCloud{X: x, Y: y, Z: z}, nil
}

// FibonacciSphere samples count points evenly over a sphere surface
// using the golden-angle spiral. Unlike the UV mesh it does not
// cluster at the poles, which makes it the better choice for dense
// surface shells that serve as hover targets.
func FibonacciSphere(radius float64, count int) (PointCloud, error) {
	if radius <= 0 {
		return PointCloud{}, fmt.Errorf("geom: sphere radius must be positive, got %v", radius)
	}
	if count < 1 {
		return PointCloud{}, fmt.Errorf("geom: point count must be at least 1, got %d", count)
	}

	golden := math.Pi * (3 - math.Sqrt(5))

	x := make([]float64, count)
	y := make([]float64, count)
	z := make([]float64, count)

	for i := 0; i < count; i++ {
		// Midpoint spacing keeps every sample strictly between the poles.
		h := 1 - (2*float64(i)+1)/float64(count)
		ring := math.Sqrt(1 - h*h)
		sinT, cosT := math.Sincos(golden * float64(i))
		x[i] = radius * ring * cosT
		y[i] = radius * ring * sinT
		z[i] = radius * h
	}

	return PointCloud{X: x, Y: y, Z: z}, nil
}
