package astro

import (
	"math"
	"testing"
)

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero", Vec3{0, 0, 0}, 0},
		{"unit x", Vec3{1, 0, 0}, 1},
		{"unit y", Vec3{0, 1, 0}, 1},
		{"unit z", Vec3{0, 0, 1}, 1},
		{"3-4-5", Vec3{3, 4, 0}, 5},
		{"negative", Vec3{-3, -4, 0}, 5},
		{"3D", Vec3{1, 2, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Norm()
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Normalized(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Vec3
	}{
		{"unit x", Vec3{5, 0, 0}, Vec3{1, 0, 0}},
		{"unit y", Vec3{0, 3, 0}, Vec3{0, 1, 0}},
		{"diagonal", Vec3{1, 1, 0}, Vec3{1 / math.Sqrt(2), 1 / math.Sqrt(2), 0}},
		{"zero", Vec3{0, 0, 0}, Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalized()
			if math.Abs(got.X-tt.want.X) > 1e-10 ||
				math.Abs(got.Y-tt.want.Y) > 1e-10 ||
				math.Abs(got.Z-tt.want.Z) > 1e-10 {
				t.Errorf("Normalized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3DotCross(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	if got := a.Dot(b); math.Abs(got) > 1e-10 {
		t.Errorf("Dot of orthogonal vectors = %v, want 0", got)
	}
	if got := a.Dot(a); math.Abs(got-1) > 1e-10 {
		t.Errorf("Dot of unit vector with itself = %v, want 1", got)
	}

	c := a.Cross(b)
	want := Vec3{0, 0, 1}
	if math.Abs(c.X-want.X) > 1e-10 ||
		math.Abs(c.Y-want.Y) > 1e-10 ||
		math.Abs(c.Z-want.Z) > 1e-10 {
		t.Errorf("x cross y = %v, want %v", c, want)
	}

	d := b.Cross(a)
	if math.Abs(d.Z+1) > 1e-10 {
		t.Errorf("y cross x should flip sign, got %v", d)
	}
}

func TestRotateCardinal(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		angle float64
		axis  Axis
		want  Vec3
	}{
		{"x about z 90", Vec3{1, 0, 0}, math.Pi / 2, AxisZ, Vec3{0, 1, 0}},
		{"y about z 90", Vec3{0, 1, 0}, math.Pi / 2, AxisZ, Vec3{-1, 0, 0}},
		{"x about z 180", Vec3{1, 0, 0}, math.Pi, AxisZ, Vec3{-1, 0, 0}},
		{"y about x 90", Vec3{0, 1, 0}, math.Pi / 2, AxisX, Vec3{0, 0, 1}},
		{"z about x 90", Vec3{0, 0, 1}, math.Pi / 2, AxisX, Vec3{0, -1, 0}},
		{"z about y 90", Vec3{0, 0, 1}, math.Pi / 2, AxisY, Vec3{1, 0, 0}},
		{"x about y 90", Vec3{1, 0, 0}, math.Pi / 2, AxisY, Vec3{0, 0, -1}},
		{"axis vector unchanged", Vec3{0, 0, 5}, math.Pi / 3, AxisZ, Vec3{0, 0, 5}},
		{"zero angle", Vec3{1, 2, 3}, 0, AxisX, Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rotate(tt.v, tt.angle, tt.axis)
			if err != nil {
				t.Fatalf("Rotate() error = %v", err)
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 ||
				math.Abs(got.Y-tt.want.Y) > 1e-9 ||
				math.Abs(got.Z-tt.want.Z) > 1e-9 {
				t.Errorf("Rotate(%v, %v, %v) = %v, want %v", tt.v, tt.angle, tt.axis, got, tt.want)
			}
		})
	}
}

func TestRotatePreservesNorm(t *testing.T) {
	vectors := []Vec3{
		{1, 0, 0},
		{1, 2, 3},
		{-4, 0.5, 2.7},
		{0, 0, 9},
	}
	angles := []float64{0.1, math.Pi / 3, 1.7, -2.4, 6.0}

	for _, v := range vectors {
		for _, angle := range angles {
			for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
				got, err := Rotate(v, angle, axis)
				if err != nil {
					t.Fatalf("Rotate() error = %v", err)
				}
				if math.Abs(got.Norm()-v.Norm()) > 1e-9 {
					t.Errorf("rotation of %v by %v about %v changed norm: %v -> %v",
						v, angle, axis, v.Norm(), got.Norm())
				}
			}
		}
	}
}

func TestRotateComposes(t *testing.T) {
	v := Vec3{2, -1, 0.5}
	theta := 0.37

	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		once, _ := Rotate(v, theta, axis)
		twice, _ := Rotate(once, theta, axis)
		direct, _ := Rotate(v, 2*theta, axis)

		if math.Abs(twice.X-direct.X) > 1e-9 ||
			math.Abs(twice.Y-direct.Y) > 1e-9 ||
			math.Abs(twice.Z-direct.Z) > 1e-9 {
			t.Errorf("axis %v: two rotations by %v = %v, one by %v = %v",
				axis, theta, twice, 2*theta, direct)
		}
	}
}

func TestRotateInvalidAxis(t *testing.T) {
	_, err := Rotate(Vec3{1, 0, 0}, 1.0, Axis(7))
	if err == nil {
		t.Error("Rotate() with invalid axis should return an error")
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"x", AxisX, false},
		{"X", AxisX, false},
		{"y", AxisY, false},
		{"z", AxisZ, false},
		{"Z", AxisZ, false},
		{"w", 0, true},
		{"", 0, true},
		{"xy", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAxis(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAxis(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAxis(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAntiSolar(t *testing.T) {
	tests := []struct {
		name string
		pos  Vec3
		want Vec3
	}{
		{"along +x", Vec3{3, 0, 0}, Vec3{1, 0, 0}},
		{"along -y", Vec3{0, -2, 0}, Vec3{0, -1, 0}},
		{"origin", Vec3{0, 0, 0}, Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AntiSolar(tt.pos)
			if math.Abs(got.X-tt.want.X) > 1e-10 ||
				math.Abs(got.Y-tt.want.Y) > 1e-10 ||
				math.Abs(got.Z-tt.want.Z) > 1e-10 {
				t.Errorf("AntiSolar(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestSunwardOppositeAntiSolar(t *testing.T) {
	pos := Vec3{1.5, -0.3, 0.02}
	anti := AntiSolar(pos)
	sun := Sunward(pos)

	if math.Abs(anti.X+sun.X) > 1e-10 ||
		math.Abs(anti.Y+sun.Y) > 1e-10 ||
		math.Abs(anti.Z+sun.Z) > 1e-10 {
		t.Errorf("Sunward(%v) = %v, want opposite of AntiSolar %v", pos, sun, anti)
	}
}

func TestKmToAU(t *testing.T) {
	tests := []struct {
		km     float64
		wantAU float64
		tolPct float64
	}{
		{AU, 1.0, 0.001},
		{AU * 5.2, 5.2, 0.001},          // Jupiter distance
		{AU * 30.07, 30.07, 0.001},      // Neptune distance
		{696000, 696000 / AU, 0.001},    // solar radius
	}

	for _, tt := range tests {
		got := KmToAU(tt.km)
		diff := math.Abs(got-tt.wantAU) / tt.wantAU
		if diff > tt.tolPct/100 {
			t.Errorf("KmToAU(%.0f) = %.6f, want %.6f", tt.km, got, tt.wantAU)
		}
	}
}

func TestEclipticLatitude(t *testing.T) {
	tests := []struct {
		v       Vec3
		wantDeg float64
		tol     float64
	}{
		{Vec3{1, 0, 0}, 0, 0.01},
		{Vec3{0, 1, 0}, 0, 0.01},
		{Vec3{0, 0, 1}, 90, 0.01},
		{Vec3{0, 0, -1}, -90, 0.01},
		{Vec3{1, 0, 1}, 45, 0.01},
		{Vec3{1, 1, 0}, 0, 0.01},
	}

	for _, tt := range tests {
		got := EclipticLatitude(tt.v)
		if math.Abs(got-tt.wantDeg) > tt.tol {
			t.Errorf("EclipticLatitude(%v) = %.2f°, want %.2f°", tt.v, got, tt.wantDeg)
		}
	}
}

func TestEclipticLongitude(t *testing.T) {
	tests := []struct {
		v       Vec3
		wantDeg float64
		tol     float64
	}{
		{Vec3{1, 0, 0}, 0, 0.01},
		{Vec3{0, 1, 0}, 90, 0.01},
		{Vec3{-1, 0, 0}, 180, 0.01},
		{Vec3{0, -1, 0}, 270, 0.01},
		{Vec3{1, 1, 0}, 45, 0.01},
	}

	for _, tt := range tests {
		got := EclipticLongitude(tt.v)
		if math.Abs(got-tt.wantDeg) > tt.tol {
			t.Errorf("EclipticLongitude(%v) = %.2f°, want %.2f°", tt.v, got, tt.wantDeg)
		}
	}
}

func TestLightTimeFromAU(t *testing.T) {
	tests := []struct {
		au       float64
		wantSecs float64
		tolSecs  float64
	}{
		{1, 499.005, 0.1},
		{0, 0, 0.1},
		{5.2, 5.2 * 499.005, 1}, // Jupiter
	}

	for _, tt := range tests {
		got := LightTimeFromAU(tt.au)
		if math.Abs(got-tt.wantSecs) > tt.tolSecs {
			t.Errorf("LightTimeFromAU(%.1f) = %.1f, want %.1f", tt.au, got, tt.wantSecs)
		}
	}
}

func TestFormatLightTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{30, "30.0s"},
		{90, "1m30s"},
		{3660, "1h1m"},
		{7200, "2h0m"},
	}

	for _, tt := range tests {
		got := FormatLightTime(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatLightTime(%.0f) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
