// Package horoscope composes ephemeris queries, zodiac assignment,
// panchangam limbs and Vimshottari periods into a single birth-chart
// record. It adds no algorithms of its own.
package horoscope

import (
	"errors"
	"fmt"
	"time"

	"github.com/litescript/ls-panchang/internal/dasa"
	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/panchang"
	"github.com/litescript/ls-panchang/internal/timeutil"
	"github.com/litescript/ls-panchang/internal/zodiac"
)

// ErrBirthDetails marks invalid caller-supplied birth data.
var ErrBirthDetails = errors.New("invalid birth details")

// BirthDetails is the caller-supplied anchor for a chart: a local
// wall-clock instant with a fixed UTC offset, plus the birthplace.
type BirthDetails struct {
	Name          string
	Local         time.Time
	TZOffsetHours float64
	LatDeg        float64
	LonDeg        float64
}

// Validate checks coordinate and offset ranges.
func (b BirthDetails) Validate() error {
	switch {
	case b.Local.IsZero():
		return fmt.Errorf("%w: zero birth time", ErrBirthDetails)
	case b.LatDeg < -90 || b.LatDeg > 90:
		return fmt.Errorf("%w: latitude %v outside [-90,90]", ErrBirthDetails, b.LatDeg)
	case b.LonDeg < -180 || b.LonDeg > 180:
		return fmt.Errorf("%w: longitude %v outside [-180,180]", ErrBirthDetails, b.LonDeg)
	case b.TZOffsetHours < -12 || b.TZOffsetHours > 14:
		return fmt.Errorf("%w: utc offset %v outside [-12,+14]", ErrBirthDetails, b.TZOffsetHours)
	}
	return nil
}

// JulianDay returns the birth instant as a Julian day-number in UT.
func (b BirthDetails) JulianDay() float64 {
	return timeutil.JulianDay(timeutil.LocalToUT(b.Local, b.TZOffsetHours))
}

// Placement is one graha's fully classified position.
type Placement struct {
	Body         ephem.Body
	Position     ephem.EclipticPosition
	Sign         zodiac.Sign
	DegreeInSign float64
	House        int
	Retrograde   bool
}

// HouseInfo is the per-house view: the sign it spans under whole-sign
// houses, that sign's lord, and the grahas sitting in it.
type HouseInfo struct {
	Index     int
	Sign      zodiac.Sign
	Lord      ephem.Body
	Occupants []ephem.Body
}

// Options tunes optional parts of the computation.
type Options struct {
	// DasaHorizonYears requests a Vimshottari timeline covering this
	// many years from birth. Zero skips the timeline entirely.
	DasaHorizonYears float64
}

// Horoscope is the assembled record. Immutable once returned.
type Horoscope struct {
	Details  BirthDetails
	JD       float64
	Provider string
	Ayanamsa float64

	Angles     ephem.HouseSet
	AscSign    zodiac.Sign
	AscDegree  float64
	Panchang   panchang.Result
	Placements []Placement
	Houses     [12]HouseInfo
	Dasas      []dasa.Dasa
}

// PlacementOf returns the placement for a body, if present.
func (h *Horoscope) PlacementOf(body ephem.Body) (Placement, bool) {
	for _, p := range h.Placements {
		if p.Body == body {
			return p, true
		}
	}
	return Placement{}, false
}
