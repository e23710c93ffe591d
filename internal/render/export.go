// Package render turns assembled horoscopes and panchangam results
// into JSON documents, text tables and the South Indian chart grid.
package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/ls-panchang/internal/dasa"
	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/horoscope"
	"github.com/litescript/ls-panchang/internal/panchang"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

// ChartExport is the JSON-serializable representation of a horoscope.
type ChartExport struct {
	Name      string    `json:"name,omitempty"`
	BirthUTC  time.Time `json:"birth_utc"`
	JulianDay float64   `json:"julian_day"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Provider  string    `json:"provider"`
	Ayanamsa  float64   `json:"ayanamsa_deg"`

	Ascendant  AscendantExport   `json:"ascendant"`
	Panchang   PanchangExport    `json:"panchang"`
	Placements []PlacementExport `json:"placements"`
	Houses     []HouseExport     `json:"houses"`
	Dasas      []DasaExport      `json:"dasas,omitempty"`
}

// AscendantExport is a JSON-friendly lagna representation.
type AscendantExport struct {
	Longitude    float64 `json:"longitude"`
	Sign         int     `json:"sign"`
	SignName     string  `json:"sign_name"`
	DegreeInSign float64 `json:"degree_in_sign"`
}

// PanchangExport carries the five limbs with both indices and names.
type PanchangExport struct {
	Vara         string  `json:"vara"`
	VaraTamil    string  `json:"vara_tamil"`
	Tithi        int     `json:"tithi"`
	TithiName    string  `json:"tithi_name"`
	Paksha       string  `json:"paksha"`
	Nakshatra    int     `json:"nakshatra"`
	NakName      string  `json:"nakshatra_name"`
	NakTamil     string  `json:"nakshatra_tamil"`
	Pada         int     `json:"pada"`
	Yoga         int     `json:"yoga"`
	YogaName     string  `json:"yoga_name"`
	Karana       string  `json:"karana"`
	TamilMonth   string  `json:"tamil_month"`
	MoonPhase    string  `json:"moon_phase"`
	Illumination float64 `json:"illumination"`
}

// PlacementExport is a JSON-friendly graha placement.
type PlacementExport struct {
	Body         string  `json:"body"`
	Tamil        string  `json:"body_tamil"`
	Longitude    float64 `json:"longitude"`
	Sign         int     `json:"sign"`
	SignName     string  `json:"sign_name"`
	DegreeInSign float64 `json:"degree_in_sign"`
	House        int     `json:"house"`
	SpeedLong    float64 `json:"speed_long"`
	Retrograde   bool    `json:"retrograde"`
}

// HouseExport is a JSON-friendly whole-sign house view.
type HouseExport struct {
	House     int      `json:"house"`
	Sign      int      `json:"sign"`
	SignName  string   `json:"sign_name"`
	Lord      string   `json:"lord"`
	Occupants []string `json:"occupants,omitempty"`
}

// DasaExport is one major period with its sub-periods, boundaries
// rendered as calendar dates alongside the raw day-numbers.
type DasaExport struct {
	Lord    string         `json:"lord"`
	Start   time.Time      `json:"start"`
	End     time.Time      `json:"end"`
	StartJD float64        `json:"start_jd"`
	EndJD   float64        `json:"end_jd"`
	Years   float64        `json:"years"`
	Bhuktis []BhuktiExport `json:"bhuktis,omitempty"`
}

// BhuktiExport is one sub-period.
type BhuktiExport struct {
	Lord  string    `json:"lord"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  float64   `json:"days"`
}

// ExportChart converts an assembled horoscope to its exportable form.
func ExportChart(h *horoscope.Horoscope) *ChartExport {
	if h == nil {
		return &ChartExport{}
	}

	export := &ChartExport{
		Name:      h.Details.Name,
		BirthUTC:  timeutil.FromJulianDay(h.JD),
		JulianDay: h.JD,
		Latitude:  h.Details.LatDeg,
		Longitude: h.Details.LonDeg,
		Provider:  h.Provider,
		Ayanamsa:  h.Ayanamsa,
		Ascendant: AscendantExport{
			Longitude:    h.Angles.Ascendant,
			Sign:         int(h.AscSign),
			SignName:     h.AscSign.String(),
			DegreeInSign: h.AscDegree,
		},
		Panchang: ExportPanchang(h.Panchang),
	}

	for _, p := range h.Placements {
		info := ephem.BodiesByID[p.Body]
		export.Placements = append(export.Placements, PlacementExport{
			Body:         info.Name,
			Tamil:        info.Tamil,
			Longitude:    p.Position.Longitude,
			Sign:         int(p.Sign),
			SignName:     p.Sign.String(),
			DegreeInSign: p.DegreeInSign,
			House:        p.House,
			SpeedLong:    p.Position.SpeedLong,
			Retrograde:   p.Retrograde,
		})
	}

	for _, hi := range h.Houses {
		he := HouseExport{
			House:    hi.Index,
			Sign:     int(hi.Sign),
			SignName: hi.Sign.String(),
			Lord:     hi.Lord.String(),
		}
		for _, b := range hi.Occupants {
			he.Occupants = append(he.Occupants, b.String())
		}
		export.Houses = append(export.Houses, he)
	}

	export.Dasas = ExportDasas(h.Dasas)
	return export
}

// ExportDasas converts a period timeline to its exportable form.
func ExportDasas(periods []dasa.Dasa) []DasaExport {
	var out []DasaExport
	for _, d := range periods {
		de := DasaExport{
			Lord:    d.Lord.String(),
			Start:   timeutil.FromJulianDay(d.StartJD),
			End:     timeutil.FromJulianDay(d.EndJD),
			StartJD: d.StartJD,
			EndJD:   d.EndJD,
			Years:   d.Years,
		}
		for _, b := range d.Bhuktis {
			de.Bhuktis = append(de.Bhuktis, BhuktiExport{
				Lord:  b.Lord.String(),
				Start: timeutil.FromJulianDay(b.StartJD),
				End:   timeutil.FromJulianDay(b.EndJD),
				Days:  b.Days,
			})
		}
		out = append(out, de)
	}
	return out
}

// ExportPanchang converts a derived almanac to its exportable form.
func ExportPanchang(pr panchang.Result) PanchangExport {
	return PanchangExport{
		Vara:         pr.VaraName(),
		VaraTamil:    pr.VaraTamil(),
		Tithi:        pr.Tithi,
		TithiName:    pr.TithiName(),
		Paksha:       pr.Paksha.String(),
		Nakshatra:    pr.Nakshatra,
		NakName:      pr.NakshatraName(),
		NakTamil:     pr.NakshatraTamil(),
		Pada:         pr.Pada,
		Yoga:         pr.Yoga,
		YogaName:     pr.YogaName(),
		Karana:       pr.KaranaName(),
		TamilMonth:   pr.TamilMonthName(),
		MoonPhase:    pr.PhaseName(),
		Illumination: pr.Illumination,
	}
}

// WriteJSON writes the chart as indented JSON to the given writer.
func (c *ChartExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// WriteJSON writes the almanac as indented JSON to the given writer.
func (p PanchangExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
