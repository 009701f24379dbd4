// Package ephem resolves heliocentric positions for catalog bodies,
// either live from the JPL Horizons API or offline from the catalog's
// Kepler elements.
package ephem

import (
	"fmt"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
)

// PositionProvider supplies heliocentric ecliptic positions.
type PositionProvider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// HeliocentricPosition returns the position of a body relative to
	// the Sun at time t, in AU, J2000 ecliptic frame. The body is
	// addressed by its NAIF id.
	HeliocentricPosition(horizonsID int, t time.Time) (astro.Vec3, error)
}

// Mode represents which position source to use.
type Mode int

const (
	ModeAuto     Mode = iota // Try Horizons, fall back to Kepler
	ModeHorizons             // JPL Horizons only
	ModeKepler               // offline Kepler elements only
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeHorizons:
		return "horizons"
	case ModeKepler:
		return "kepler"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string.
func ParseMode(s string) Mode {
	switch s {
	case "horizons":
		return ModeHorizons
	case "kepler", "offline":
		return ModeKepler
	case "auto":
		return ModeAuto
	default:
		return ModeAuto
	}
}

// NewProvider returns the provider for a mode.
func NewProvider(mode Mode) PositionProvider {
	switch mode {
	case ModeHorizons:
		return NewHorizonsClient()
	case ModeKepler:
		return NewKeplerProvider()
	default:
		return Fallback{Primary: NewHorizonsClient(), Secondary: NewKeplerProvider()}
	}
}

// Fallback tries a primary provider and falls back to a secondary when
// the primary fails. ModeAuto layers Horizons over Kepler so the orrery
// keeps working offline or when the API is slow.
type Fallback struct {
	Primary   PositionProvider
	Secondary PositionProvider
}

// Name implements PositionProvider.
func (f Fallback) Name() string {
	return f.Primary.Name() + "+" + f.Secondary.Name()
}

// HeliocentricPosition implements PositionProvider.
func (f Fallback) HeliocentricPosition(horizonsID int, t time.Time) (astro.Vec3, error) {
	pos, err := f.Primary.HeliocentricPosition(horizonsID, t)
	if err == nil {
		return pos, nil
	}
	pos, ferr := f.Secondary.HeliocentricPosition(horizonsID, t)
	if ferr != nil {
		return astro.Vec3{}, fmt.Errorf("%s: %v; %s: %w",
			f.Primary.Name(), err, f.Secondary.Name(), ferr)
	}
	return pos, nil
}
