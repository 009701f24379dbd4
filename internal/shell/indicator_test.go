package shell

import (
	"math"
	"strings"
	"testing"

	"github.com/litescript/ls-orrery/internal/astro"
)

// indicatorSpan measures the built segment from its anchor to its tip.
func indicatorSpan(t *testing.T, tr *Trace) float64 {
	t.Helper()
	if tr == nil {
		t.Fatal("indicator trace is nil")
	}
	n := tr.Cloud.Len()
	if n < 2 {
		t.Fatalf("indicator has %d points, want at least 2", n)
	}
	dx := tr.Cloud.X[n-1] - tr.Cloud.X[0]
	dy := tr.Cloud.Y[n-1] - tr.Cloud.Y[0]
	dz := tr.Cloud.Z[n-1] - tr.Cloud.Z[0]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func TestIndicatorSuppressed(t *testing.T) {
	tests := []struct {
		name string
		opts IndicatorOptions
	}{
		{"light source itself", IndicatorOptions{BodyCode: "SUN", CenterCode: "SUN"}},
		{"body not centered", IndicatorOptions{BodyCode: "EARTH", CenterCode: "SUN",
			BodyPos: astro.Vec3{X: 1}}},
		{"custom light source", IndicatorOptions{BodyCode: "KEPLER-90", CenterCode: "KEPLER-90",
			LightCode: "KEPLER-90"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := SunDirectionIndicator(tt.opts)
			if err != nil {
				t.Fatalf("SunDirectionIndicator() error: %v", err)
			}
			if tr != nil {
				t.Errorf("SunDirectionIndicator() = %+v, want suppressed", tr)
			}
		})
	}
}

func TestIndicatorLengthScales(t *testing.T) {
	base := IndicatorOptions{BodyCode: "MARS", CenterCode: "MARS",
		BodyPos: astro.Vec3{X: 1.5}}

	tests := []struct {
		name   string
		mutate func(*IndicatorOptions)
		want   float64
	}{
		{
			name:   "outermost shell radius wins",
			mutate: func(o *IndicatorOptions) { o.ShellRadius = 2 },
			want:   2 * 1.15,
		},
		{
			name:   "axis range fallback",
			mutate: func(o *IndicatorOptions) { o.AxisRange = [2]float64{-2, 2} },
			want:   4 * 0.25,
		},
		{
			name:   "center distance fallback",
			mutate: func(o *IndicatorOptions) { o.BodyPos = astro.Vec3{X: 3, Y: 4} },
			want:   5 * 0.3,
		},
		{
			name:   "fixed default at the origin",
			mutate: func(o *IndicatorOptions) { o.BodyPos = astro.Vec3{} },
			want:   0.35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.mutate(&opts)
			tr, err := SunDirectionIndicator(opts)
			if err != nil {
				t.Fatalf("SunDirectionIndicator() error: %v", err)
			}
			if got := indicatorSpan(t, tr); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("indicator length = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndicatorMinLength(t *testing.T) {
	opts := IndicatorOptions{BodyCode: "PLUTO", CenterCode: "PLUTO",
		BodyPos: astro.Vec3{X: 39}, ShellRadius: 0.01}

	tr, err := SunDirectionIndicator(opts)
	if err != nil {
		t.Fatalf("SunDirectionIndicator() error: %v", err)
	}
	if got := indicatorSpan(t, tr); math.Abs(got-0.05) > 1e-12 {
		t.Errorf("indicator length = %v, want default minimum 0.05", got)
	}

	opts.MinLength = 0.2
	tr, err = SunDirectionIndicator(opts)
	if err != nil {
		t.Fatalf("SunDirectionIndicator() error: %v", err)
	}
	if got := indicatorSpan(t, tr); math.Abs(got-0.2) > 1e-12 {
		t.Errorf("indicator length = %v, want custom minimum 0.2", got)
	}

	opts.MinLength = -1
	if _, err := SunDirectionIndicator(opts); err == nil {
		t.Error("SunDirectionIndicator() with negative minimum = nil error, want error")
	}
}

func TestIndicatorDirection(t *testing.T) {
	opts := IndicatorOptions{BodyCode: "EARTH", CenterCode: "EARTH",
		BodyPos: astro.Vec3{X: 1}, ShellRadius: 0.2}

	tr, err := SunDirectionIndicator(opts)
	if err != nil {
		t.Fatalf("SunDirectionIndicator() error: %v", err)
	}

	n := tr.Cloud.Len()
	if tr.Cloud.X[0] != 1 || tr.Cloud.Y[0] != 0 || tr.Cloud.Z[0] != 0 {
		t.Errorf("indicator anchor = (%v, %v, %v), want the body position",
			tr.Cloud.X[0], tr.Cloud.Y[0], tr.Cloud.Z[0])
	}
	wantX := 1 - 0.2*1.15
	if math.Abs(tr.Cloud.X[n-1]-wantX) > 1e-12 || tr.Cloud.Y[n-1] != 0 || tr.Cloud.Z[n-1] != 0 {
		t.Errorf("indicator tip = (%v, %v, %v), want (%v, 0, 0) toward the Sun",
			tr.Cloud.X[n-1], tr.Cloud.Y[n-1], tr.Cloud.Z[n-1], wantX)
	}

	// Monotonic march sunward, no backtracking.
	for i := 1; i < n; i++ {
		if tr.Cloud.X[i] >= tr.Cloud.X[i-1] {
			t.Fatalf("point %d does not advance toward the Sun", i)
		}
	}
}

func TestIndicatorOriginFallback(t *testing.T) {
	opts := IndicatorOptions{BodyCode: "SOL-B", CenterCode: "SOL-B"}

	tr, err := SunDirectionIndicator(opts)
	if err != nil {
		t.Fatalf("SunDirectionIndicator() error: %v", err)
	}

	// With no sun line defined the segment runs along +X.
	n := tr.Cloud.Len()
	if math.Abs(tr.Cloud.X[n-1]-0.35) > 1e-12 || tr.Cloud.Y[n-1] != 0 {
		t.Errorf("fallback tip = (%v, %v), want (0.35, 0)", tr.Cloud.X[n-1], tr.Cloud.Y[n-1])
	}
}

func TestIndicatorDeterministic(t *testing.T) {
	opts := IndicatorOptions{BodyCode: "VENUS", CenterCode: "VENUS",
		BodyPos: astro.Vec3{X: 0.7, Y: 0.1}, ShellRadius: 0.05, Points: 16}

	a, err := SunDirectionIndicator(opts)
	if err != nil {
		t.Fatalf("SunDirectionIndicator() error: %v", err)
	}
	b, err := SunDirectionIndicator(opts)
	if err != nil {
		t.Fatalf("SunDirectionIndicator() error: %v", err)
	}

	if a.Cloud.Len() != 16 || b.Cloud.Len() != 16 {
		t.Fatalf("point counts = %d, %d, want 16", a.Cloud.Len(), b.Cloud.Len())
	}
	for i := 0; i < 16; i++ {
		if a.Cloud.X[i] != b.Cloud.X[i] || a.Cloud.Y[i] != b.Cloud.Y[i] || a.Cloud.Z[i] != b.Cloud.Z[i] {
			t.Fatalf("point %d differs between identical builds", i)
		}
	}
}

func TestIndicatorTraceFields(t *testing.T) {
	opts := IndicatorOptions{BodyCode: "MARS", CenterCode: "MARS",
		BodyPos: astro.Vec3{X: 1.5}}

	tr, err := SunDirectionIndicator(opts)
	if err != nil {
		t.Fatalf("SunDirectionIndicator() error: %v", err)
	}
	if tr.Name != "Sun direction" {
		t.Errorf("Name = %q, want %q", tr.Name, "Sun direction")
	}
	if tr.Glyph != '+' {
		t.Errorf("Glyph = %q, want '+'", tr.Glyph)
	}
	if !strings.Contains(tr.Hover, "MARS") {
		t.Errorf("Hover = %q, want the body code mentioned", tr.Hover)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}
