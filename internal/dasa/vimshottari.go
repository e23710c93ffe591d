// Package dasa generates Vimshottari planetary periods: a fixed
// 120-year cycle of nine lords, anchored to the Moon's birth Nakshatra
// and subdivided proportionally into sub-periods.
package dasa

import (
	"errors"
	"fmt"

	"github.com/litescript/ls-panchang/internal/angle"
	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/panchang"
)

const (
	// CycleYears is the full Vimshottari cycle length.
	CycleYears = 120.0

	// DaysPerYear converts period years to Julian days. A fixed solar
	// year keeps every derived boundary reproducible.
	DaysPerYear = 365.25
)

// ErrFractionOutOfRange reports a birth-fraction outside [0,1), which
// can only come from bad upstream ephemeris data.
var ErrFractionOutOfRange = errors.New("nakshatra fraction outside [0,1)")

// Lords is the canonical nine-lord order. The sequence repeats three
// times across the 27 Nakshatras.
var Lords = [9]ephem.Body{
	ephem.Ketu, ephem.Venus, ephem.Sun, ephem.Moon, ephem.Mars,
	ephem.Rahu, ephem.Jupiter, ephem.Saturn, ephem.Mercury,
}

// LordYears holds each lord's period length, index-aligned with Lords.
// The entries sum to exactly 120.
var LordYears = [9]float64{7, 20, 6, 10, 7, 18, 16, 19, 17}

// LordOf returns the ruling lord for a Nakshatra index in [1,27].
func LordOf(nakshatra int) (ephem.Body, error) {
	if nakshatra < 1 || nakshatra > 27 {
		return 0, fmt.Errorf("nakshatra index %d outside [1,27]", nakshatra)
	}
	return Lords[(nakshatra-1)%9], nil
}

// YearsOf returns the full period length for a lord, or 0 for a body
// that is not one of the nine.
func YearsOf(lord ephem.Body) float64 {
	for i, l := range Lords {
		if l == lord {
			return LordYears[i]
		}
	}
	return 0
}

func lordIndex(lord ephem.Body) int {
	for i, l := range Lords {
		if l == lord {
			return i
		}
	}
	return -1
}

// Bhukti is one sub-period within a Dasa.
type Bhukti struct {
	Lord    ephem.Body
	StartJD float64
	EndJD   float64
	Days    float64
}

// Dasa is one major period with its nine sub-periods. Bhuktis start at
// the Dasa's own lord and partition the Dasa exactly.
type Dasa struct {
	Lord    ephem.Body
	StartJD float64
	EndJD   float64
	Years   float64
	Bhuktis []Bhukti
}

// Days returns the Dasa's duration in Julian days.
func (d Dasa) Days() float64 { return d.EndJD - d.StartJD }

// Generator emits Dasa periods lazily, in cyclic lord order, starting
// from the birth lord. The first period is truncated by the fraction
// of the Nakshatra the Moon had already crossed at birth; every later
// period carries its full length. Boundaries are produced by running a
// single cursor forward, so consecutive periods share an exact edge.
type Generator struct {
	birthJD  float64
	firstIdx int
	fraction float64

	cursor float64
	count  int
}

// NewGenerator anchors a generator from the Moon's sidereal longitude
// at birth.
func NewGenerator(birthJD, moonLon float64) (*Generator, error) {
	nak := angle.SegmentIndex(moonLon, panchang.NakshatraSpan) + 1
	frac := angle.InSegment(moonLon, panchang.NakshatraSpan) / panchang.NakshatraSpan
	return NewGeneratorAt(birthJD, nak, frac)
}

// NewGeneratorAt anchors a generator from an explicit birth Nakshatra
// and the fraction of it already elapsed.
func NewGeneratorAt(birthJD float64, nakshatra int, fraction float64) (*Generator, error) {
	if fraction < 0 || fraction >= 1 {
		return nil, fmt.Errorf("%w: %v", ErrFractionOutOfRange, fraction)
	}
	lord, err := LordOf(nakshatra)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		birthJD:  birthJD,
		firstIdx: lordIndex(lord),
		fraction: fraction,
	}
	g.Reset()
	return g, nil
}

// Reset rewinds the generator to the birth instant.
func (g *Generator) Reset() {
	g.cursor = g.birthJD
	g.count = 0
}

// Next returns the next Dasa in the cycle. The sequence is unbounded;
// callers stop when their horizon is covered.
func (g *Generator) Next() Dasa {
	idx := (g.firstIdx + g.count) % 9
	years := LordYears[idx]
	if g.count == 0 {
		years *= 1 - g.fraction
	}

	d := Dasa{
		Lord:    Lords[idx],
		StartJD: g.cursor,
		Years:   years,
	}
	d.EndJD = d.StartJD + years*DaysPerYear
	d.Bhuktis = subdivide(d)

	g.cursor = d.EndJD
	g.count++
	return d
}

// subdivide splits a Dasa into nine Bhuktis starting at its own lord,
// each proportional to that lord's share of the 120-year cycle. The
// last Bhukti is pinned to the Dasa's end so the partition is exact.
func subdivide(d Dasa) []Bhukti {
	first := lordIndex(d.Lord)
	total := d.Days()

	bhuktis := make([]Bhukti, 9)
	cursor := d.StartJD
	for i := 0; i < 9; i++ {
		idx := (first + i) % 9
		days := total * LordYears[idx] / CycleYears
		b := Bhukti{
			Lord:    Lords[idx],
			StartJD: cursor,
			EndJD:   cursor + days,
			Days:    days,
		}
		if i == 8 {
			b.EndJD = d.EndJD
			b.Days = b.EndJD - b.StartJD
		}
		bhuktis[i] = b
		cursor = b.EndJD
	}
	return bhuktis
}

// Timeline materializes Dasas from birth until horizonYears are
// covered. The final period may extend past the horizon; it is never
// clipped.
func Timeline(birthJD, moonLon, horizonYears float64) ([]Dasa, error) {
	g, err := NewGenerator(birthJD, moonLon)
	if err != nil {
		return nil, err
	}
	horizonJD := birthJD + horizonYears*DaysPerYear

	var out []Dasa
	for {
		d := g.Next()
		out = append(out, d)
		if d.EndJD >= horizonJD {
			return out, nil
		}
	}
}

// Current returns the Dasa and Bhukti active at a Julian day-number,
// generating forward from birth. jd before birth is an error.
func Current(birthJD, moonLon, jd float64) (Dasa, Bhukti, error) {
	if jd < birthJD {
		return Dasa{}, Bhukti{}, fmt.Errorf("jd %.6f precedes birth %.6f", jd, birthJD)
	}
	g, err := NewGenerator(birthJD, moonLon)
	if err != nil {
		return Dasa{}, Bhukti{}, err
	}
	for {
		d := g.Next()
		if jd >= d.EndJD {
			continue
		}
		for _, b := range d.Bhuktis {
			if jd < b.EndJD {
				return d, b, nil
			}
		}
		// jd sits on the closing edge by rounding; report the last Bhukti.
		return d, d.Bhuktis[8], nil
	}
}
