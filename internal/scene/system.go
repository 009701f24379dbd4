package scene

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/shell"
)

const sunRadiusKm = 695700

// BuildSystem assembles a display scene for an exoplanet system: the
// host star's shell layers anchored at the origin and one marker per
// planet, placed on a circular orbit phased by the epoch. Published
// elements rarely include a reference phase, so the epoch phasing is a
// display convention, not an ephemeris. Options.Center is ignored; the
// star is always the view center.
func BuildSystem(sys catalog.System, opts Options) (Scene, error) {
	epoch := opts.Epoch
	if epoch.IsZero() {
		epoch = time.Now().UTC()
	}

	// The host star as a synthetic catalog row, so the scene carries
	// the same Center shape as solar-system builds.
	star := catalog.Object{
		Name:     sys.Name,
		Code:     systemCode(sys.Name),
		Kind:     catalog.KindStar,
		RadiusKm: sys.StarRadiusSuns * sunRadiusKm,
		Color:    sys.StarColor,
		Blurb:    sys.Star,
	}

	s := Scene{
		Center:      star,
		Epoch:       epoch,
		GeneratedAt: time.Now().UTC(),
		Provider:    "catalog",
	}

	ctx := shell.BodyContext{
		Body:      star,
		Seed:      opts.Seed,
		MaxPoints: opts.MaxPoints,
	}
	for _, sp := range shell.SystemShells(sys) {
		tr, err := shell.Build(sp, ctx)
		if err != nil {
			return Scene{}, fmt.Errorf("scene: %s %s: %w", sys.Name, sp.Layer, err)
		}
		s.Traces = append(s.Traces, tr)
	}

	s.Markers = append(s.Markers, Marker{
		Name:  sys.Name,
		Code:  star.Code,
		Kind:  catalog.KindStar,
		Color: sys.StarColor,
	})
	d := astro.DaysSinceJ2000(epoch)
	for _, p := range sys.Planets {
		phase := astro.NormalizeRad(2 * math.Pi * d / p.PeriodDays)
		sp, cp := math.Sincos(phase)
		pos := astro.Vec3{X: p.SemiMajorAU * cp, Y: p.SemiMajorAU * sp}
		s.Markers = append(s.Markers, Marker{
			Name:  p.Name,
			Code:  systemCode(p.Name),
			Kind:  catalog.KindPlanet,
			Color: p.Color,
			Pos:   pos,
			Helio: pos,
		})
	}

	return s, nil
}

// systemCode derives a marker code from an exoplanet name, e.g.
// "TRAPPIST-1 e" -> "TRAPPIST-1E".
func systemCode(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, " ", ""))
}
