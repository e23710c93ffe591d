// Package panchang derives the five daily almanac limbs (Vara, Tithi,
// Yoga, Karana, Nakshatra) plus the Tamil solar month from sidereal
// Sun/Moon longitudes and a Julian day-number.
package panchang

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-panchang/internal/angle"
	"github.com/litescript/ls-panchang/internal/timeutil"
	"github.com/litescript/ls-panchang/internal/zodiac"
)

// Cycle spans in degrees.
const (
	TithiSpan     = 12.0        // 30 tithis over 360° of elongation
	KaranaSpan    = 6.0         // half a tithi
	NakshatraSpan = 360.0 / 27  // 13°20'
	PadaSpan      = 360.0 / 108 // quarter nakshatra, 3°20'
)

// ErrClassification marks an index that fell outside its cycle bound.
// This is an internal defect (the derivations below are total over
// normalized input), never a recoverable condition.
var ErrClassification = errors.New("classification index out of range")

// Paksha is the lunar fortnight: waxing (Shukla) or waning (Krishna).
type Paksha int

const (
	PakshaWaxing Paksha = iota
	PakshaWaning
)

// String returns the traditional fortnight name.
func (p Paksha) String() string {
	if p == PakshaWaxing {
		return "Shukla"
	}
	return "Krishna"
}

// Result holds every derived almanac limb for one instant. All index
// fields resolve to a valid name-table entry by construction.
type Result struct {
	JD float64

	Vara       int    // weekday [0,6], 0 = Sunday
	Tithi      int    // lunar day [1,30]
	Paksha     Paksha
	Nakshatra  int    // lunar mansion [1,27]
	Pada       int    // quarter within the mansion [1,4]
	Yoga       int    // Sun+Moon sum classification [1,27]
	KaranaSlot int    // half-tithi slot [0,59]
	TamilMonth int    // solar month [1,12], the sign the Sun transits

	Elongation   float64 // Moon - Sun, degrees [0,360)
	Illumination float64 // Moon illuminated fraction [0,1]
}

// Derive computes the full panchangam for sidereal Sun/Moon longitudes
// at a Julian day-number. Longitudes are already ayanamsa-corrected by
// the ephemeris provider. The only error paths are defensive
// ErrClassification checks guarding against logic defects.
func Derive(sunLon, moonLon, jd float64) (Result, error) {
	elong := angle.Diff(moonLon, sunLon)

	r := Result{
		JD:         jd,
		Tithi:      int(elong/TithiSpan) + 1,
		Nakshatra:  angle.SegmentIndex(moonLon, NakshatraSpan) + 1,
		Yoga:       angle.SegmentIndex(sunLon+moonLon, NakshatraSpan) + 1,
		KaranaSlot: int(elong / KaranaSpan),
		Vara:       timeutil.WeekdayIndex(jd),
		TamilMonth: int(zodiac.AssignSign(sunLon)),
		Elongation: elong,
	}

	if r.Tithi > 30 {
		r.Tithi = 30
	}
	if r.KaranaSlot > 59 {
		r.KaranaSlot = 59
	}

	if r.Tithi <= 15 {
		r.Paksha = PakshaWaxing
	} else {
		r.Paksha = PakshaWaning
	}

	pada := int(angle.InSegment(moonLon, NakshatraSpan)/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	r.Pada = pada

	r.Illumination = illuminatedFraction(elong)

	if err := r.validate(); err != nil {
		return Result{}, err
	}
	return r, nil
}

// validate asserts every index resolves to a name-table entry.
func (r Result) validate() error {
	switch {
	case r.Tithi < 1 || r.Tithi > 30:
		return fmt.Errorf("%w: tithi %d", ErrClassification, r.Tithi)
	case r.Nakshatra < 1 || r.Nakshatra > 27:
		return fmt.Errorf("%w: nakshatra %d", ErrClassification, r.Nakshatra)
	case r.Pada < 1 || r.Pada > 4:
		return fmt.Errorf("%w: pada %d", ErrClassification, r.Pada)
	case r.Yoga < 1 || r.Yoga > 27:
		return fmt.Errorf("%w: yoga %d", ErrClassification, r.Yoga)
	case r.KaranaSlot < 0 || r.KaranaSlot > 59:
		return fmt.Errorf("%w: karana slot %d", ErrClassification, r.KaranaSlot)
	case r.Vara < 0 || r.Vara > 6:
		return fmt.Errorf("%w: vara %d", ErrClassification, r.Vara)
	case r.TamilMonth < 1 || r.TamilMonth > 12:
		return fmt.Errorf("%w: tamil month %d", ErrClassification, r.TamilMonth)
	}
	return nil
}

// Name accessors for display layers.

func (r Result) TithiName() string      { return TithiName(r.Tithi) }
func (r Result) NakshatraName() string  { return NakshatraName(r.Nakshatra) }
func (r Result) NakshatraTamil() string { return NakshatraTamil(r.Nakshatra) }
func (r Result) YogaName() string       { return YogaName(r.Yoga) }
func (r Result) KaranaName() string     { return KaranaName(r.KaranaSlot) }
func (r Result) VaraName() string       { return VaraName(r.Vara) }
func (r Result) VaraTamil() string      { return VaraTamil(r.Vara) }
func (r Result) TamilMonthName() string { return zodiac.TamilMonthName(r.TamilMonth) }

// Waxing reports whether the Moon is in its bright fortnight.
func (r Result) Waxing() bool { return r.Paksha == PakshaWaxing }

// PhaseName returns a qualitative Moon phase label from illumination
// and fortnight.
func (r Result) PhaseName() string {
	const eps = 0.01
	f := r.Illumination
	switch {
	case f < eps:
		return "New Moon"
	case f > 1-eps:
		return "Full Moon"
	case math.Abs(f-0.5) < 0.02:
		if r.Waxing() {
			return "First Quarter"
		}
		return "Last Quarter"
	case f < 0.5:
		if r.Waxing() {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if r.Waxing() {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}

// illuminatedFraction converts a Sun→Moon elongation to the lit
// fraction of the lunar disc: (1 - cos e)/2.
func illuminatedFraction(elongDeg float64) float64 {
	f := (1 - math.Cos(angle.DegToRad(elongDeg))) / 2
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
