// Package scene assembles renderable orrery scenes: body positions
// from an ephemeris provider, shell traces from the per-body layer
// tables, and markers for the view center's neighborhood.
//
// Scene coordinates are heliocentric ecliptic AU translated so the
// view center sits at the origin.
package scene

import (
	"fmt"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/ephem"
	"github.com/litescript/ls-orrery/internal/shell"
)

// Options configures a scene build.
type Options struct {
	// Center is the catalog code or name of the view-center body;
	// empty centers on the Sun.
	Center string

	// Epoch is the instant positions are computed for; zero means now.
	Epoch time.Time

	// Seed feeds the jittered shell samplers; 0 keeps the library
	// default so rebuilds are identical.
	Seed int64

	// MaxPoints caps the sample count of each shell trace; 0 leaves
	// the table counts as declared.
	MaxPoints int
}

// Marker is one body's position in the scene, for point rendering and
// HUD stats.
type Marker struct {
	Name  string
	Code  string
	Kind  catalog.Kind
	Color string

	// Pos is the body's position in scene coordinates (relative to
	// the view center), AU.
	Pos astro.Vec3

	// Helio is the body's heliocentric ecliptic position, AU.
	Helio astro.Vec3
}

// RangeAU returns the distance from the view center in AU.
func (m Marker) RangeAU() float64 {
	return m.Pos.Norm()
}

// DistanceAU returns the heliocentric distance in AU.
func (m Marker) DistanceAU() float64 {
	return m.Helio.Norm()
}

// LightTimeSec returns the one-way light time from the Sun in seconds.
func (m Marker) LightTimeSec() float64 {
	return astro.LightTimeFromAU(m.DistanceAU())
}

// EclipticLonDeg returns the heliocentric ecliptic longitude in degrees.
func (m Marker) EclipticLonDeg() float64 {
	return astro.EclipticLongitude(m.Helio)
}

// EclipticLatDeg returns the heliocentric ecliptic latitude in degrees.
func (m Marker) EclipticLatDeg() float64 {
	return astro.EclipticLatitude(m.Helio)
}

// Scene is a fully assembled picture for one view center.
type Scene struct {
	Center      catalog.Object
	Epoch       time.Time
	GeneratedAt time.Time
	Provider    string // name of the position provider that filled it

	Traces  []shell.Trace
	Markers []Marker
}

// GetMarker returns the marker for a body code, or nil if absent.
func (s Scene) GetMarker(code string) *Marker {
	for i := range s.Markers {
		if s.Markers[i].Code == code {
			return &s.Markers[i]
		}
	}
	return nil
}

// TotalPoints returns the sample count summed over every trace.
func (s Scene) TotalPoints() int {
	var n int
	for _, t := range s.Traces {
		n += t.Cloud.Len()
	}
	return n
}

// Extent returns the largest distance of any trace point or marker
// from the scene origin, in AU. Viewports use it for initial scaling.
func (s Scene) Extent() float64 {
	var max float64
	for _, t := range s.Traces {
		if r := t.Cloud.MaxRadius(); r > max {
			max = r
		}
	}
	for _, m := range s.Markers {
		if r := m.Pos.Norm(); r > max {
			max = r
		}
	}
	return max
}

// Build assembles the scene for opts.Center at opts.Epoch: the center
// body's shell layers anchored at the origin, the asteroid and Kuiper
// belts when the Sun is the center, the sun-direction indicator, and
// markers for the Sun, the center, and the center's children. A nil
// provider computes every position from the catalog's orbital
// elements.
func Build(p ephem.PositionProvider, opts Options) (Scene, error) {
	if p == nil {
		p = ephem.NewKeplerProvider()
	}
	code := opts.Center
	if code == "" {
		code = "SUN"
	}
	center, ok := catalog.Lookup(code)
	if !ok {
		return Scene{}, fmt.Errorf("scene: unknown center body %q", opts.Center)
	}
	epoch := opts.Epoch
	if epoch.IsZero() {
		epoch = time.Now().UTC()
	}

	centerPos, err := bodyPosition(p, center, epoch)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %s position: %w", center.Code, err)
	}

	s := Scene{
		Center:      center,
		Epoch:       epoch,
		GeneratedAt: time.Now().UTC(),
		Provider:    p.Name(),
	}

	// The center body's shells live at the scene origin; its
	// heliocentric position orients tails and magnetosphere noses.
	ctx := shell.BodyContext{
		Body:         center,
		Heliocentric: centerPos,
		Seed:         opts.Seed,
		MaxPoints:    opts.MaxPoints,
	}
	specs := shell.Shells(center.Code)
	if specs == nil {
		specs = genericShells(center)
	}
	var shellRadius float64
	for _, sp := range specs {
		tr, err := shell.Build(sp, ctx)
		if err != nil {
			return Scene{}, fmt.Errorf("scene: %s %s: %w", center.Code, sp.Layer, err)
		}
		if r := tr.Cloud.MaxRadius(); r > shellRadius {
			shellRadius = r
		}
		s.Traces = append(s.Traces, tr)
	}

	// Sun-centered scenes also show the belts, which are heliocentric
	// structures with absolute radii.
	if center.Kind == catalog.KindStar {
		for _, beltCode := range []string{"BELT", "KUIPER"} {
			belt, ok := catalog.Lookup(beltCode)
			if !ok {
				continue
			}
			traces, err := shell.BuildAll(beltCode, shell.BodyContext{
				Body:      belt,
				Seed:      opts.Seed,
				MaxPoints: opts.MaxPoints,
			})
			if err != nil {
				return Scene{}, fmt.Errorf("scene: %s: %w", beltCode, err)
			}
			s.Traces = append(s.Traces, traces...)
		}
	}

	// The indicator is generated in heliocentric coordinates, anchored
	// at the center body, then translated into the scene frame like
	// every other cloud.
	ind, err := shell.SunDirectionIndicator(shell.IndicatorOptions{
		BodyCode:    center.Code,
		CenterCode:  center.Code,
		BodyPos:     centerPos,
		ShellRadius: shellRadius,
	})
	if err != nil {
		return Scene{}, err
	}
	if ind != nil {
		ind.Cloud.Translate(centerPos.Scale(-1))
		s.Traces = append(s.Traces, *ind)
	}

	s.Markers = buildMarkers(p, center, centerPos, epoch)
	return s, nil
}

// bodyPosition resolves one body's heliocentric position. The Sun pins
// the frame at the origin; Kepler-only bodies (no Horizons id) always
// use the catalog elements.
func bodyPosition(p ephem.PositionProvider, o catalog.Object, t time.Time) (astro.Vec3, error) {
	if o.Kind == catalog.KindStar {
		return astro.Vec3{}, nil
	}
	if o.HorizonsID == 0 {
		return ephem.KeplerPosition(o, t)
	}
	return p.HeliocentricPosition(o.HorizonsID, t)
}

// buildMarkers collects the Sun, the center body, and the center's
// children, in that order. A body whose position cannot be resolved is
// skipped so the scene stays useful with partial data.
func buildMarkers(p ephem.PositionProvider, center catalog.Object, centerPos astro.Vec3, epoch time.Time) []Marker {
	var bodies []catalog.Object
	if center.Code != "SUN" {
		if sun, ok := catalog.Lookup("SUN"); ok {
			bodies = append(bodies, sun)
		}
	}
	bodies = append(bodies, center)
	for _, child := range catalog.Children(center.Code) {
		if child.Kind == catalog.KindBelt {
			continue
		}
		bodies = append(bodies, child)
	}

	markers := make([]Marker, 0, len(bodies))
	for _, o := range bodies {
		pos := centerPos
		if o.Code != center.Code {
			var err error
			pos, err = bodyPosition(p, o, epoch)
			if err != nil {
				continue
			}
		}
		markers = append(markers, Marker{
			Name:  o.Name,
			Code:  o.Code,
			Kind:  o.Kind,
			Color: o.Color,
			Pos:   pos.Sub(centerPos),
			Helio: pos,
		})
	}
	return markers
}

// genericShells is the fallback for catalog bodies without a curated
// layer table: a single surface sampled at the body's radius.
func genericShells(o catalog.Object) []shell.Spec {
	return []shell.Spec{{
		Layer:      "Surface",
		Kind:       shell.KindSurface,
		RadiusFrac: 1,
		Color:      o.Color,
		Opacity:    0.9,
	}}
}
