// Package ephem defines the ephemeris provider boundary: sidereal
// ecliptic positions, speeds and house cusps for the nine grahas.
// The derivation engine consumes this interface and never computes
// raw positions itself.
package ephem

import "errors"

// Body identifies a graha (planet or lunar node).
type Body int

const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu // mean ascending lunar node
	Ketu // descending node, derived as Rahu + 180°, never queried
)

// Flag selects optional quantities for a position query.
type Flag uint

const (
	// FlagSpeed requests longitude/latitude/distance rates. Providers
	// that sample remote data derive these by finite difference, so
	// queries without the flag can be cheaper.
	FlagSpeed Flag = 1 << iota
)

// EclipticPosition is a sidereal ecliptic state for one body at one
// instant. Longitudes are ayanamsa-corrected by the provider; the
// engine never applies the correction itself.
type EclipticPosition struct {
	Longitude float64 // sidereal ecliptic longitude, degrees [0,360)
	Latitude  float64 // ecliptic latitude, degrees
	Distance  float64 // geocentric distance, AU
	SpeedLong float64 // longitude rate, degrees/day (negative = retrograde)
	SpeedLat  float64 // latitude rate, degrees/day
	SpeedDist float64 // distance rate, AU/day
}

// WholeSign is the only house system code this engine supports. Other
// systems would be a provider-side swap, not an engine change.
const WholeSign byte = 'W'

// HouseSet holds the twelve house cusps plus the two chart angles,
// all as sidereal ecliptic longitudes in degrees. Cusps is 1-based;
// index 0 is unused.
type HouseSet struct {
	Cusps     [13]float64
	Ascendant float64
	Midheaven float64
}

// Provider supplies raw astronomical quantities for a Julian
// day-number. Implementations may be remote (JPL Horizons) or fixed
// test doubles; either way the engine treats a returned error as fatal
// for the current request and never retries.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// PositionOf returns the sidereal ecliptic position of a body.
	// Ketu is never queried here; callers derive it from Rahu.
	PositionOf(jd float64, body Body, fl Flag) (EclipticPosition, error)

	// Houses returns cusps, ascendant and midheaven for an observer.
	// system must be WholeSign.
	Houses(jd, latDeg, lonDeg float64, system byte) (HouseSet, error)

	// Ayanamsa returns the sidereal correction in degrees at jd. The
	// correction is already applied to every longitude the provider
	// hands out; this accessor exists for display only.
	Ayanamsa(jd float64) float64
}

// Provider boundary errors.
var (
	// ErrDerivedBody is returned when Ketu is queried directly.
	ErrDerivedBody = errors.New("ketu is derived from rahu, not queried")

	// ErrUnknownBody is returned for a body the provider has no data for.
	ErrUnknownBody = errors.New("unknown body")

	// ErrHouseSystem is returned for any house system other than WholeSign.
	ErrHouseSystem = errors.New("unsupported house system")
)

// Mode represents which ephemeris source to use.
type Mode int

const (
	ModeHorizons Mode = iota // query JPL Horizons (default)
	ModeFixed                // built-in fixed positions only
	ModeAuto                 // try Horizons, fall back to fixed
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeHorizons:
		return "horizons"
	case ModeFixed:
		return "fixed"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string.
func ParseMode(s string) Mode {
	switch s {
	case "horizons":
		return ModeHorizons
	case "fixed":
		return ModeFixed
	case "auto":
		return ModeAuto
	default:
		return ModeAuto
	}
}
