package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-panchang/internal/dasa"
	"github.com/litescript/ls-panchang/internal/panchang"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

// WritePanchangSummary writes the five limbs as a labeled text block.
func WritePanchangSummary(w io.Writer, pr panchang.Result) {
	ts := timeutil.FromJulianDay(pr.JD)

	fmt.Fprintf(w, "Panchangam @ %s\n", ts.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 52))

	fmt.Fprintf(w, "%-14s %s (%s)\n", "Vara", pr.VaraName(), pr.VaraTamil())
	fmt.Fprintf(w, "%-14s %s %s (%d/30)\n", "Tithi", pr.Paksha, pr.TithiName(), pr.Tithi)
	fmt.Fprintf(w, "%-14s %s (%s), pada %d\n", "Nakshatra", pr.NakshatraName(), pr.NakshatraTamil(), pr.Pada)
	fmt.Fprintf(w, "%-14s %s (%d/27)\n", "Yoga", pr.YogaName(), pr.Yoga)
	fmt.Fprintf(w, "%-14s %s (slot %d)\n", "Karana", pr.KaranaName(), pr.KaranaSlot)
	fmt.Fprintf(w, "%-14s %s\n", "Tamil month", pr.TamilMonthName())
	fmt.Fprintf(w, "%-14s %s, %.0f%% illuminated\n", "Moon", pr.PhaseName(), pr.Illumination*100)
}

// WritePlacementTable writes graha placements as a text table.
func WritePlacementTable(w io.Writer, c *ChartExport) {
	fmt.Fprintf(w, "Grahas: lagna %s %.2f°, ayanamsa %.4f° (%s)\n",
		c.Ascendant.SignName, c.Ascendant.DegreeInSign, c.Ayanamsa, c.Provider)
	fmt.Fprintln(w, strings.Repeat("─", 64))

	fmt.Fprintf(w, "%-10s %-12s %9s %6s %10s %-4s\n",
		"Graha", "Rasi", "Degree", "House", "Speed", "")
	fmt.Fprintln(w, strings.Repeat("─", 64))

	for _, p := range c.Placements {
		motion := ""
		if p.Retrograde {
			motion = "(R)"
		}
		fmt.Fprintf(w, "%-10s %-12s %8.3f° %6d %10.4f %-4s\n",
			p.Body, p.SignName, p.DegreeInSign, p.House, p.SpeedLong, motion)
	}
}

// WriteDasaTable writes the period timeline. withBhuktis expands each
// major period into its nine sub-periods.
func WriteDasaTable(w io.Writer, periods []dasa.Dasa, withBhuktis bool) {
	fmt.Fprintln(w, "Vimshottari Dasa")
	fmt.Fprintln(w, strings.Repeat("─", 56))

	if len(periods) == 0 {
		fmt.Fprintln(w, "No periods in horizon")
		return
	}

	for _, d := range periods {
		fmt.Fprintf(w, "%-8s %s → %s  (%.2f y)\n",
			d.Lord,
			timeutil.FromJulianDay(d.StartJD).Format("2006-01-02"),
			timeutil.FromJulianDay(d.EndJD).Format("2006-01-02"),
			d.Years)
		if !withBhuktis {
			continue
		}
		for _, b := range d.Bhuktis {
			fmt.Fprintf(w, "  %-8s %s → %s  (%.0f d)\n",
				b.Lord,
				timeutil.FromJulianDay(b.StartJD).Format("2006-01-02"),
				timeutil.FromJulianDay(b.EndJD).Format("2006-01-02"),
				b.Days)
		}
	}
}
