// Package timeutil converts calendar timestamps to and from continuous
// Julian day-numbers, the time scale every ephemeris call uses.
package timeutil

import (
	"math"
	"time"
)

// J2000 is the Julian day-number of the standard epoch 2000-01-01 12:00 UTC.
const J2000 = 2451545.0

// JulianDay returns the Julian day-number for a given time.
func JulianDay(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January/February count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5

	return jd
}

// FromJulianDay converts a Julian day-number back to a UTC time.
// Inverse of JulianDay for dates in the Gregorian calendar.
func FromJulianDay(jd float64) time.Time {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e)

	var month float64
	if e < 14 {
		month = e - 1
	} else {
		month = e - 13
	}

	var year float64
	if month > 2 {
		year = c - 4716
	} else {
		year = c - 4715
	}

	// Split the day fraction into clock components.
	hours := f * 24
	h := math.Floor(hours)
	minutes := (hours - h) * 60
	min := math.Floor(minutes)
	seconds := (minutes - min) * 60
	sec := math.Floor(seconds)
	ns := math.Round((seconds - sec) * 1e9)

	return time.Date(int(year), time.Month(month), int(day),
		int(h), int(min), int(sec), int(ns), time.UTC)
}

// LocalToUT converts a local wall-clock timestamp plus a fixed UTC
// offset in hours to the equivalent instant in UTC. The offset is the
// only time-zone information this package understands; named zones are
// the caller's concern.
func LocalToUT(local time.Time, tzOffsetHours float64) time.Time {
	offset := time.Duration(tzOffsetHours * float64(time.Hour))
	y, mo, d := local.Date()
	h, mi, s := local.Clock()
	wall := time.Date(y, mo, d, h, mi, s, local.Nanosecond(), time.UTC)
	return wall.Add(-offset)
}

// WeekdayIndex returns the weekday for a Julian day-number, 0=Sunday
// through 6=Saturday. The demarcation is the civil (UT) calendar day,
// not sunrise; traditional almanacs switch Vara at sunrise, this tool
// deliberately keeps the calendar-day anchoring of its weekday math.
func WeekdayIndex(jd float64) int {
	return int(math.Floor(jd+1.5)) % 7
}
