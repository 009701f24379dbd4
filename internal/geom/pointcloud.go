// Package geom generates the point-cloud geometry for orrery shells:
// parametric spheres, ring annuli and arcs, magnetosphere lobes, and
// particle tails, plus point-set rotation about the principal axes.
//
// All coordinates are in AU. Samplers return clouds centered at the
// origin (or at an explicit origin for tails); callers translate them
// to scene positions afterward.
package geom

import (
	"fmt"
	"math"

	"github.com/litescript/ls-orrery/internal/astro"
)

// defaultSeed seeds samplers that draw random numbers when the caller
// does not supply a seed, so repeated builds produce identical clouds.
const defaultSeed = 42

// PointCloud is a columnar set of 3D points. The three coordinate
// slices always have equal length; construct through NewPointCloud to
// have that enforced.
type PointCloud struct {
	X, Y, Z []float64
}

// NewPointCloud wraps three coordinate slices as a PointCloud.
// Mismatched lengths are a contract violation and return an error.
func NewPointCloud(x, y, z []float64) (PointCloud, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return PointCloud{}, fmt.Errorf("geom: coordinate arrays must have equal lengths (x=%d y=%d z=%d)",
			len(x), len(y), len(z))
	}
	return PointCloud{X: x, Y: y, Z: z}, nil
}

// Len returns the number of points in the cloud.
func (p PointCloud) Len() int {
	return len(p.X)
}

// Translate shifts every point by the given offset, in place.
func (p *PointCloud) Translate(offset astro.Vec3) {
	for i := range p.X {
		p.X[i] += offset.X
		p.Y[i] += offset.Y
		p.Z[i] += offset.Z
	}
}

// Rotate rotates every point about a principal axis by angle radians,
// in place.
func (p *PointCloud) Rotate(angle float64, axis astro.Axis) error {
	return RotatePoints(p.X, p.Y, p.Z, angle, axis)
}

// Append adds all points of q to the cloud.
func (p *PointCloud) Append(q PointCloud) {
	p.X = append(p.X, q.X...)
	p.Y = append(p.Y, q.Y...)
	p.Z = append(p.Z, q.Z...)
}

// Merge concatenates any number of clouds into a new one.
func Merge(clouds ...PointCloud) PointCloud {
	var total int
	for _, c := range clouds {
		total += c.Len()
	}
	out := PointCloud{
		X: make([]float64, 0, total),
		Y: make([]float64, 0, total),
		Z: make([]float64, 0, total),
	}
	for _, c := range clouds {
		out.Append(c)
	}
	return out
}

// MaxRadius returns the largest distance of any point from the origin.
// An empty cloud has MaxRadius 0.
func (p PointCloud) MaxRadius() float64 {
	var max float64
	for i := range p.X {
		r := math.Sqrt(p.X[i]*p.X[i] + p.Y[i]*p.Y[i] + p.Z[i]*p.Z[i])
		if r > max {
			max = r
		}
	}
	return max
}
