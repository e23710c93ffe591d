package horoscope

import (
	"fmt"

	"github.com/litescript/ls-panchang/internal/angle"
	"github.com/litescript/ls-panchang/internal/dasa"
	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/panchang"
	"github.com/litescript/ls-panchang/internal/zodiac"
)

// Compute assembles a full horoscope for the given birth details. Every
// raw quantity comes from the provider; a provider error aborts the
// whole computation since a chart with missing grahas is useless.
func Compute(p ephem.Provider, details BirthDetails, opts Options) (*Horoscope, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}
	jd := details.JulianDay()

	angles, err := p.Houses(jd, details.LatDeg, details.LonDeg, ephem.WholeSign)
	if err != nil {
		return nil, fmt.Errorf("house query: %w", err)
	}

	positions := make(map[ephem.Body]ephem.EclipticPosition, 9)
	for _, body := range ephem.Grahas() {
		pos, err := p.PositionOf(jd, body, ephem.FlagSpeed)
		if err != nil {
			return nil, fmt.Errorf("position query for %s: %w", body, err)
		}
		positions[body] = pos
	}
	positions[ephem.Ketu] = ketuFrom(positions[ephem.Rahu])

	h := &Horoscope{
		Details:   details,
		JD:        jd,
		Provider:  p.Name(),
		Ayanamsa:  p.Ayanamsa(jd),
		Angles:    angles,
		AscSign:   zodiac.AssignSign(angles.Ascendant),
		AscDegree: zodiac.DegreeInSign(angles.Ascendant),
	}

	// Placements in traditional recitation order.
	for _, info := range ephem.Bodies {
		pos := positions[info.Body]
		sign := zodiac.AssignSign(pos.Longitude)
		h.Placements = append(h.Placements, Placement{
			Body:         info.Body,
			Position:     pos,
			Sign:         sign,
			DegreeInSign: zodiac.DegreeInSign(pos.Longitude),
			House:        zodiac.AssignHouse(sign, h.AscSign),
			Retrograde:   zodiac.IsRetrograde(pos.SpeedLong),
		})
	}

	pr, err := panchang.Derive(positions[ephem.Sun].Longitude, positions[ephem.Moon].Longitude, jd)
	if err != nil {
		return nil, fmt.Errorf("panchangam: %w", err)
	}
	h.Panchang = pr

	h.Houses = groupHouses(h.AscSign, h.Placements)

	if opts.DasaHorizonYears > 0 {
		timeline, err := dasa.Timeline(jd, positions[ephem.Moon].Longitude, opts.DasaHorizonYears)
		if err != nil {
			return nil, fmt.Errorf("vimshottari timeline: %w", err)
		}
		h.Dasas = timeline
	}

	return h, nil
}

// ketuFrom derives the descending node from the ascending one: the
// same orbit point seen 180° away, moving at the same rate.
func ketuFrom(rahu ephem.EclipticPosition) ephem.EclipticPosition {
	ketu := rahu
	ketu.Longitude = angle.Normalize(rahu.Longitude + 180)
	ketu.Latitude = -rahu.Latitude
	return ketu
}

// groupHouses builds the twelve per-house views from the ascendant
// sign and the finished placements.
func groupHouses(asc zodiac.Sign, placements []Placement) [12]HouseInfo {
	var houses [12]HouseInfo
	for i := 0; i < 12; i++ {
		sign := zodiac.Sign((int(asc)-1+i)%12 + 1)
		houses[i] = HouseInfo{
			Index: i + 1,
			Sign:  sign,
			Lord:  sign.Lord(),
		}
	}
	for _, p := range placements {
		hi := &houses[p.House-1]
		hi.Occupants = append(hi.Occupants, p.Body)
	}
	return houses
}
