package geom

import (
	"math"
	"testing"
)

func TestRingRadialBounds(t *testing.T) {
	tests := []struct {
		name string
		spec RingSpec
	}{
		{"unit annulus", RingSpec{Inner: 1, Outer: 2, Count: 500}},
		{"narrow ring", RingSpec{Inner: 0.00074, Outer: 0.00091, Count: 300}},
		{"thick belt", RingSpec{Inner: 2.1, Outer: 3.3, Count: 400, Thickness: 0.2}},
		{"stepped", RingSpec{Inner: 1, Outer: 2, Count: 200, RadialSteps: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cloud, err := Ring(tt.spec)
			if err != nil {
				t.Fatalf("Ring() error = %v", err)
			}
			if cloud.Len() != tt.spec.Count {
				t.Errorf("Len() = %d, want %d", cloud.Len(), tt.spec.Count)
			}
			for i := 0; i < cloud.Len(); i++ {
				r := math.Sqrt(cloud.X[i]*cloud.X[i] + cloud.Y[i]*cloud.Y[i])
				if r < tt.spec.Inner-1e-12 || r > tt.spec.Outer+1e-12 {
					t.Fatalf("point %d at planar radius %v, want within [%v, %v]",
						i, r, tt.spec.Inner, tt.spec.Outer)
				}
				if math.Abs(cloud.Z[i]) > tt.spec.Thickness/2+1e-12 {
					t.Fatalf("point %d at |z| = %v, want ≤ %v", i, math.Abs(cloud.Z[i]), tt.spec.Thickness/2)
				}
			}
		})
	}
}

func TestRingFlatWhenNoThickness(t *testing.T) {
	cloud, err := Ring(RingSpec{Inner: 1.0, Outer: 2.0, Count: 500})
	if err != nil {
		t.Fatalf("Ring() error = %v", err)
	}

	minR, maxR := math.Inf(1), 0.0
	for i := 0; i < cloud.Len(); i++ {
		if cloud.Z[i] != 0 {
			t.Fatalf("point %d has z = %v, want exactly 0", i, cloud.Z[i])
		}
		r := math.Sqrt(cloud.X[i]*cloud.X[i] + cloud.Y[i]*cloud.Y[i])
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
	}

	// 500 uniform samples should come close to both edges.
	if minR > 1.05 {
		t.Errorf("min planar radius %v, want near inner edge 1.0", minR)
	}
	if maxR < 1.95 {
		t.Errorf("max planar radius %v, want near outer edge 2.0", maxR)
	}
}

func TestRingArc(t *testing.T) {
	start := math.Pi / 4
	span := math.Pi / 2
	cloud, err := Ring(RingSpec{Inner: 1, Outer: 1.2, Count: 300, StartAngle: start, Span: span})
	if err != nil {
		t.Fatalf("Ring() error = %v", err)
	}

	for i := 0; i < cloud.Len(); i++ {
		theta := math.Atan2(cloud.Y[i], cloud.X[i])
		if theta < start-1e-9 || theta > start+span+1e-9 {
			t.Fatalf("point %d at angle %v, want within [%v, %v]", i, theta, start, start+span)
		}
	}
}

func TestRingDiscreteSteps(t *testing.T) {
	steps := 4
	cloud, err := Ring(RingSpec{Inner: 1, Outer: 2, Count: 400, RadialSteps: steps})
	if err != nil {
		t.Fatalf("Ring() error = %v", err)
	}

	seen := map[float64]bool{}
	for i := 0; i < cloud.Len(); i++ {
		r := math.Sqrt(cloud.X[i]*cloud.X[i] + cloud.Y[i]*cloud.Y[i])
		// Snap to 1e-9 to absorb float noise from sin/cos roundtrips.
		seen[math.Round(r*1e9)/1e9] = true
	}
	if len(seen) != steps {
		t.Errorf("distinct radii = %d, want %d", len(seen), steps)
	}
}

func TestRingDeterministic(t *testing.T) {
	spec := RingSpec{Inner: 1, Outer: 2, Count: 100, Thickness: 0.1, Seed: 7}

	a, err := Ring(spec)
	if err != nil {
		t.Fatalf("Ring() error = %v", err)
	}
	b, err := Ring(spec)
	if err != nil {
		t.Fatalf("Ring() error = %v", err)
	}

	for i := 0; i < a.Len(); i++ {
		if a.X[i] != b.X[i] || a.Y[i] != b.Y[i] || a.Z[i] != b.Z[i] {
			t.Fatalf("point %d differs between identical builds", i)
		}
	}

	spec.Seed = 8
	c, err := Ring(spec)
	if err != nil {
		t.Fatalf("Ring() error = %v", err)
	}
	same := true
	for i := 0; i < a.Len(); i++ {
		if a.X[i] != c.X[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical clouds")
	}
}

func TestRingErrors(t *testing.T) {
	tests := []struct {
		name string
		spec RingSpec
	}{
		{"zero inner", RingSpec{Inner: 0, Outer: 1, Count: 10}},
		{"negative inner", RingSpec{Inner: -1, Outer: 1, Count: 10}},
		{"inner equals outer", RingSpec{Inner: 2, Outer: 2, Count: 10}},
		{"inner beyond outer", RingSpec{Inner: 3, Outer: 2, Count: 10}},
		{"zero count", RingSpec{Inner: 1, Outer: 2, Count: 0}},
		{"negative thickness", RingSpec{Inner: 1, Outer: 2, Count: 10, Thickness: -0.1}},
		{"negative span", RingSpec{Inner: 1, Outer: 2, Count: 10, Span: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Ring(tt.spec); err == nil {
				t.Errorf("Ring(%+v) should fail", tt.spec)
			}
		})
	}
}
