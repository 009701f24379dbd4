package astro

import (
	"math"
	"testing"
)

func TestProjectTopDown(t *testing.T) {
	cfg := ProjectionConfig{Scale: 1.0, Mode: ScaleLogR}

	tests := []struct {
		name      string
		v         Vec3
		wantAngle float64 // expected angle in degrees
		wantR     float64 // expected true distance
	}{
		{
			name:      "1 AU along +X",
			v:         Vec3{1, 0, 0},
			wantAngle: 0,
			wantR:     1,
		},
		{
			name:      "1 AU along +Y",
			v:         Vec3{0, 1, 0},
			wantAngle: 90,
			wantR:     1,
		},
		{
			name:      "1 AU along -X",
			v:         Vec3{-1, 0, 0},
			wantAngle: 180,
			wantR:     1,
		},
		{
			name:      "5 AU at 45 degrees",
			v:         Vec3{5 / math.Sqrt(2), 5 / math.Sqrt(2), 0},
			wantAngle: 45,
			wantR:     5,
		},
		{
			name:      "10 AU with Z offset",
			v:         Vec3{10, 0, 2},
			wantAngle: 0,
			wantR:     math.Sqrt(104),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectTopDown(tt.v, cfg)

			gotAngle := math.Atan2(got.Y, got.X) * 180 / math.Pi
			angleDiff := math.Abs(gotAngle - tt.wantAngle)
			if angleDiff > 180 {
				angleDiff = 360 - angleDiff
			}
			if angleDiff > 0.1 {
				t.Errorf("angle = %.2f°, want %.2f°", gotAngle, tt.wantAngle)
			}

			if math.Abs(got.R-tt.wantR) > 0.01 {
				t.Errorf("R = %.4f, want %.4f", got.R, tt.wantR)
			}
		})
	}
}

func TestScaleModes(t *testing.T) {
	tests := []struct {
		name string
		mode ScaleMode
		r    float64
		want float64
	}{
		{"linear preserves r", ScaleLinear, 2.5, 2.5},
		{"linear small r", ScaleLinear, 0.001, 0.001},
		{"log at origin", ScaleLogR, 0, 0},
		{"log 9", ScaleLogR, 9, 1},
		{"log 99", ScaleLogR, 99, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ProjectionConfig{Scale: 1.0, Mode: tt.mode}
			got := ProjectTopDown(Vec3{tt.r, 0, 0}, cfg)

			if got.X < 0 {
				t.Errorf("X should be non-negative for +X input, got %v", got.X)
			}
			if math.Abs(got.Y) > 1e-10 {
				t.Errorf("Y should be ~0 for X-axis input, got %v", got.Y)
			}
			if math.Abs(got.X-tt.want) > 1e-9 {
				t.Errorf("scaled radius = %v, want %v", got.X, tt.want)
			}
		})
	}
}

func TestProjectionScaleFactor(t *testing.T) {
	cfg := ProjectionConfig{Scale: 3.0, Mode: ScaleLinear}
	got := ProjectTopDown(Vec3{2, 0, 0}, cfg)
	if math.Abs(got.X-6) > 1e-9 {
		t.Errorf("Scale factor not applied: X = %v, want 6", got.X)
	}
}
