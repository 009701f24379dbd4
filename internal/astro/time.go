package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the standard epoch J2000.0
// (2000 January 1, 12:00 TT).
const J2000 = 2451545.0

// JulianDate converts a time to a Julian Date.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	year := t.Year()
	month := int(t.Month())
	day := t.Day()

	if month <= 2 {
		year--
		month += 12
	}

	a := year / 100
	b := 2 - a + a/4

	dayFrac := float64(t.Hour())/24.0 +
		float64(t.Minute())/1440.0 +
		float64(t.Second())/86400.0 +
		float64(t.Nanosecond())/86400e9

	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + dayFrac + float64(b) - 1524.5
}

// DaysSinceJ2000 returns the number of days elapsed since the J2000.0 epoch.
func DaysSinceJ2000(t time.Time) float64 {
	return JulianDate(t) - J2000
}

// NormalizeDeg wraps an angle in degrees into [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// NormalizeRad wraps an angle in radians into [0, 2π).
func NormalizeRad(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}
