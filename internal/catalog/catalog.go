// Package catalog holds the static tables of celestial objects the
// orrery renders: the solar-system catalog with orbital elements and
// ephemeris lookup keys, and a set of notable exoplanet systems.
package catalog

import (
	"sort"
	"strings"

	"github.com/litescript/ls-orrery/internal/astro"
)

// Kind classifies a catalog object.
type Kind int

const (
	KindStar Kind = iota
	KindPlanet
	KindDwarf
	KindMoon
	KindAsteroid
	KindComet
	KindBelt
)

// String returns the kind name for display.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	case KindDwarf:
		return "dwarf planet"
	case KindMoon:
		return "moon"
	case KindAsteroid:
		return "asteroid"
	case KindComet:
		return "comet"
	case KindBelt:
		return "belt"
	default:
		return "unknown"
	}
}

// Object is one row of the solar-system catalog. Heliocentric objects
// carry J2000 mean orbital elements (angles in degrees); moons carry a
// parent-relative circular orbit radius in km instead.
type Object struct {
	Name   string
	Code   string // short uppercase key, e.g. "EARTH", "1P"
	Kind   Kind
	Parent string // Code of the body this object orbits; "" for the Sun

	RadiusKm float64

	SemiMajorAU      float64 // heliocentric semi-major axis
	OrbitKm          float64 // parent-relative orbit radius for moons
	PeriodDays       float64
	Eccentricity     float64
	InclinationDeg   float64
	NodeDeg          float64 // longitude of the ascending node Ω
	PerihelionDeg    float64 // longitude of perihelion ϖ
	MeanLongitudeDeg float64 // mean longitude L at J2000

	AxialTiltDeg float64

	Color      string // hex, e.g. "#c1440e"
	HorizonsID int    // NAIF id for JPL Horizons vector lookups; 0 = none
	Blurb      string // one-line description used for hover text
}

// RadiusAU returns the body radius converted to AU.
func (o Object) RadiusAU() float64 {
	return astro.KmToAU(o.RadiusKm)
}

// OrbitAU returns the orbit scale in AU: the parent-relative radius
// for moons, the heliocentric semi-major axis for everything else.
func (o Object) OrbitAU() float64 {
	if o.OrbitKm > 0 {
		return astro.KmToAU(o.OrbitKm)
	}
	return o.SemiMajorAU
}

// ByCode maps object codes to catalog rows for quick lookup.
var ByCode = func() map[string]Object {
	m := make(map[string]Object, len(Objects))
	for _, o := range Objects {
		m[o.Code] = o
	}
	return m
}()

// ByName maps normalized object names to catalog rows.
var ByName = func() map[string]Object {
	m := make(map[string]Object, len(Objects)*2)
	for _, o := range Objects {
		m[normalizeName(o.Name)] = o
		m[normalizeName(o.Code)] = o
	}
	return m
}()

// ByHorizonsID maps NAIF ids to catalog rows. Kepler-only objects
// (HorizonsID 0) are absent.
var ByHorizonsID = func() map[int]Object {
	m := make(map[int]Object, len(Objects))
	for _, o := range Objects {
		if o.HorizonsID != 0 {
			m[o.HorizonsID] = o
		}
	}
	return m
}()

// Lookup finds an object by code or name, case-insensitive.
func Lookup(s string) (Object, bool) {
	if o, ok := ByCode[strings.ToUpper(s)]; ok {
		return o, true
	}
	o, ok := ByName[normalizeName(s)]
	return o, ok
}

// Children returns the objects orbiting the body with the given code,
// ordered by orbit radius.
func Children(code string) []Object {
	var out []Object
	for _, o := range Objects {
		if o.Parent == code {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrbitAU() < out[j].OrbitAU()
	})
	return out
}

// Planets returns the eight major planets in orbit order.
func Planets() []Object {
	var out []Object
	for _, o := range Objects {
		if o.Kind == KindPlanet {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SemiMajorAU < out[j].SemiMajorAU
	})
	return out
}

// normalizeName lowercases a name for matching.
func normalizeName(name string) string {
	result := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c = c + ('a' - 'A')
		}
		result = append(result, c)
	}
	return string(result)
}
