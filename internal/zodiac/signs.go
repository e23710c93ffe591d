// Package zodiac assigns ecliptic longitudes to signs (Rasi) and signs
// to houses (Bhava) under the whole-sign system, and carries the static
// sign tables (names, lords, Tamil solar months).
package zodiac

import (
	"github.com/litescript/ls-panchang/internal/angle"
	"github.com/litescript/ls-panchang/internal/ephem"
)

// Sign is a zodiac sign index in [1,12], 1 = Mesha (Aries).
type Sign int

// SignSpan is the width of one sign in degrees.
const SignSpan = 30.0

// signInfo is one row of the static sign table.
type signInfo struct {
	name  string // Sanskrit/Tamil transliteration
	latin string // Western name
	lord  ephem.Body
	tamil string // Tamil solar month beginning when the Sun enters the sign
}

// signs is indexed by Sign-1. Lords follow the classical rulership
// table; each Tamil month is simply the sign the Sun transits.
var signs = [12]signInfo{
	{name: "Mesha", latin: "Aries", lord: ephem.Mars, tamil: "Chithirai"},
	{name: "Rishaba", latin: "Taurus", lord: ephem.Venus, tamil: "Vaikasi"},
	{name: "Mithuna", latin: "Gemini", lord: ephem.Mercury, tamil: "Aani"},
	{name: "Kataka", latin: "Cancer", lord: ephem.Moon, tamil: "Aadi"},
	{name: "Simha", latin: "Leo", lord: ephem.Sun, tamil: "Aavani"},
	{name: "Kanni", latin: "Virgo", lord: ephem.Mercury, tamil: "Purattasi"},
	{name: "Thula", latin: "Libra", lord: ephem.Venus, tamil: "Aippasi"},
	{name: "Vrichika", latin: "Scorpio", lord: ephem.Mars, tamil: "Karthigai"},
	{name: "Dhanus", latin: "Sagittarius", lord: ephem.Jupiter, tamil: "Margazhi"},
	{name: "Makara", latin: "Capricorn", lord: ephem.Saturn, tamil: "Thai"},
	{name: "Kumbha", latin: "Aquarius", lord: ephem.Saturn, tamil: "Maasi"},
	{name: "Meena", latin: "Pisces", lord: ephem.Jupiter, tamil: "Panguni"},
}

// AssignSign returns the sign containing a sidereal longitude. Total:
// the longitude is normalized first, so the result is always in [1,12].
func AssignSign(longitude float64) Sign {
	return Sign(angle.SegmentIndex(longitude, SignSpan) + 1)
}

// DegreeInSign returns the offset of a longitude within its sign, in
// [0, 30).
func DegreeInSign(longitude float64) float64 {
	return angle.InSegment(longitude, SignSpan)
}

// Valid reports whether s is a usable sign index.
func (s Sign) Valid() bool {
	return s >= 1 && s <= 12
}

// String returns the transliterated sign name.
func (s Sign) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return signs[s-1].name
}

// Latin returns the Western sign name.
func (s Sign) Latin() string {
	if !s.Valid() {
		return "unknown"
	}
	return signs[s-1].latin
}

// Lord returns the ruling planet of a sign.
func (s Sign) Lord() ephem.Body {
	if !s.Valid() {
		return -1
	}
	return signs[s-1].lord
}

// TamilMonthName returns the Tamil solar month that begins when the
// Sun enters this sign. Month index equals the sign index: Chithirai
// is month 1 and corresponds to Mesha.
func TamilMonthName(month int) string {
	if month < 1 || month > 12 {
		return "unknown"
	}
	return signs[month-1].tamil
}
