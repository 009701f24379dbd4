package ephem

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"horizons", ModeHorizons},
		{"kepler", ModeKepler},
		{"offline", ModeKepler},
		{"auto", ModeAuto},
		{"", ModeAuto},        // default
		{"invalid", ModeAuto}, // default for unknown
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseMode(tc.input)
			if got != tc.expected {
				t.Errorf("ParseMode(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeAuto, "auto"},
		{ModeHorizons, "horizons"},
		{ModeKepler, "kepler"},
		{Mode(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			got := tc.mode.String()
			if got != tc.expected {
				t.Errorf("Mode(%d).String() = %q, want %q", tc.mode, got, tc.expected)
			}
		})
	}
}

// stubProvider returns a fixed position or error and counts calls.
type stubProvider struct {
	name  string
	pos   astro.Vec3
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) HeliocentricPosition(horizonsID int, t time.Time) (astro.Vec3, error) {
	s.calls++
	if s.err != nil {
		return astro.Vec3{}, s.err
	}
	return s.pos, nil
}

func TestFallback(t *testing.T) {
	now := time.Now()

	t.Run("primary wins", func(t *testing.T) {
		primary := &stubProvider{name: "a", pos: astro.Vec3{X: 1}}
		secondary := &stubProvider{name: "b", pos: astro.Vec3{X: 2}}
		f := Fallback{Primary: primary, Secondary: secondary}

		pos, err := f.HeliocentricPosition(399, now)
		if err != nil {
			t.Fatalf("HeliocentricPosition() error: %v", err)
		}
		if pos.X != 1 {
			t.Errorf("pos.X = %v, want the primary's answer", pos.X)
		}
		if secondary.calls != 0 {
			t.Errorf("secondary called %d times, want 0", secondary.calls)
		}
	})

	t.Run("secondary covers primary failure", func(t *testing.T) {
		primary := &stubProvider{name: "a", err: errors.New("network down")}
		secondary := &stubProvider{name: "b", pos: astro.Vec3{X: 2}}
		f := Fallback{Primary: primary, Secondary: secondary}

		pos, err := f.HeliocentricPosition(399, now)
		if err != nil {
			t.Fatalf("HeliocentricPosition() error: %v", err)
		}
		if pos.X != 2 {
			t.Errorf("pos.X = %v, want the secondary's answer", pos.X)
		}
	})

	t.Run("both fail", func(t *testing.T) {
		secondaryErr := errors.New("no elements")
		f := Fallback{
			Primary:   &stubProvider{name: "a", err: errors.New("network down")},
			Secondary: &stubProvider{name: "b", err: secondaryErr},
		}

		_, err := f.HeliocentricPosition(399, now)
		if err == nil {
			t.Fatal("HeliocentricPosition() = nil error, want both failures reported")
		}
		if !strings.Contains(err.Error(), "a:") || !strings.Contains(err.Error(), "b:") {
			t.Errorf("error %q does not name both providers", err)
		}
		if !errors.Is(err, secondaryErr) {
			t.Errorf("error does not wrap the secondary failure")
		}
	})
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		mode Mode
		name string
	}{
		{ModeHorizons, "horizons"},
		{ModeKepler, "kepler"},
		{ModeAuto, "horizons+kepler"},
	}

	for _, tc := range tests {
		if got := NewProvider(tc.mode).Name(); got != tc.name {
			t.Errorf("NewProvider(%v).Name() = %q, want %q", tc.mode, got, tc.name)
		}
	}
}
