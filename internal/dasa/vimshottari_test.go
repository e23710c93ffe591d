package dasa

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-panchang/internal/ephem"
)

const birthJD = 2451545.0 // J2000, arbitrary anchor

func TestLordOf(t *testing.T) {
	tests := []struct {
		nakshatra int
		expected  ephem.Body
	}{
		{1, ephem.Ketu},
		{2, ephem.Venus},
		{9, ephem.Mercury},
		{10, ephem.Ketu},
		{19, ephem.Ketu},
		{27, ephem.Mercury},
	}

	for _, tt := range tests {
		got, err := LordOf(tt.nakshatra)
		if err != nil {
			t.Fatalf("LordOf(%d): %v", tt.nakshatra, err)
		}
		if got != tt.expected {
			t.Errorf("LordOf(%d) = %v, want %v", tt.nakshatra, got, tt.expected)
		}
	}

	for _, bad := range []int{0, 28, -3} {
		if _, err := LordOf(bad); err == nil {
			t.Errorf("LordOf(%d) accepted an out-of-range index", bad)
		}
	}
}

func TestLordYearsSumTo120(t *testing.T) {
	var sum float64
	for _, y := range LordYears {
		sum += y
	}
	if sum != 120 {
		t.Fatalf("lord years sum to %v, want 120", sum)
	}
}

func TestGenerator_PartialFirstDasa(t *testing.T) {
	// Birth halfway through Ashwini: Ketu rules, half his 7 years remain.
	g, err := NewGeneratorAt(birthJD, 1, 0.5)
	if err != nil {
		t.Fatalf("NewGeneratorAt: %v", err)
	}

	first := g.Next()
	if first.Lord != ephem.Ketu {
		t.Errorf("first lord = %v, want Ketu", first.Lord)
	}
	if math.Abs(first.Years-3.5) > 1e-9 {
		t.Errorf("first duration = %v years, want 3.5", first.Years)
	}
	if first.StartJD != birthJD {
		t.Errorf("first start = %v, want birth %v", first.StartJD, birthJD)
	}
	if math.Abs(first.Days()-3.5*DaysPerYear) > 1e-6 {
		t.Errorf("first span = %v days, want %v", first.Days(), 3.5*DaysPerYear)
	}

	second := g.Next()
	if second.Lord != ephem.Venus {
		t.Errorf("second lord = %v, want Venus", second.Lord)
	}
	if math.Abs(second.Years-20) > 1e-9 {
		t.Errorf("second duration = %v years, want full 20", second.Years)
	}
}

func TestGenerator_FullCycleSums(t *testing.T) {
	// Zero elapsed fraction: nine periods make one exact 120-year cycle.
	g, err := NewGeneratorAt(birthJD, 1, 0)
	if err != nil {
		t.Fatalf("NewGeneratorAt: %v", err)
	}

	var sum float64
	var last Dasa
	for i := 0; i < 9; i++ {
		last = g.Next()
		sum += last.Years
	}
	if math.Abs(sum-120) > 1e-6 {
		t.Errorf("cycle sum = %v years, want 120", sum)
	}
	if math.Abs(last.EndJD-(birthJD+120*DaysPerYear)) > 1e-6 {
		t.Errorf("cycle end = %v, want %v", last.EndJD, birthJD+120*DaysPerYear)
	}
}

func TestGenerator_BhuktiSubdivision(t *testing.T) {
	g, err := NewGeneratorAt(birthJD, 2, 0.25) // Venus-ruled Bharani
	if err != nil {
		t.Fatalf("NewGeneratorAt: %v", err)
	}

	for i := 0; i < 3; i++ {
		d := g.Next()
		t.Run(d.Lord.String(), func(t *testing.T) {
			if len(d.Bhuktis) != 9 {
				t.Fatalf("%d bhuktis, want 9", len(d.Bhuktis))
			}
			if d.Bhuktis[0].Lord != d.Lord {
				t.Errorf("first bhukti lord = %v, want the dasa's own %v",
					d.Bhuktis[0].Lord, d.Lord)
			}

			var sum float64
			for _, b := range d.Bhuktis {
				sum += b.Days
			}
			if math.Abs(sum-d.Days()) > 1e-6 {
				t.Errorf("bhukti days sum %v, dasa spans %v", sum, d.Days())
			}

			if d.Bhuktis[0].StartJD != d.StartJD {
				t.Errorf("bhuktis start at %v, dasa at %v", d.Bhuktis[0].StartJD, d.StartJD)
			}
			if d.Bhuktis[8].EndJD != d.EndJD {
				t.Errorf("bhuktis end at %v, dasa at %v", d.Bhuktis[8].EndJD, d.EndJD)
			}
			for j := 1; j < 9; j++ {
				if d.Bhuktis[j].StartJD != d.Bhuktis[j-1].EndJD {
					t.Errorf("bhukti %d start %v != bhukti %d end %v",
						j, d.Bhuktis[j].StartJD, j-1, d.Bhuktis[j-1].EndJD)
				}
			}

			// Proportionality: each bhukti takes its lord's share of 120.
			want := d.Days() * YearsOf(d.Bhuktis[3].Lord) / CycleYears
			if math.Abs(d.Bhuktis[3].Days-want) > 1e-6 {
				t.Errorf("bhukti 3 = %v days, want %v", d.Bhuktis[3].Days, want)
			}
		})
	}
}

func TestTimeline_ContiguousAndIncreasing(t *testing.T) {
	// Moon mid-Rohini (Moon-ruled), horizon past one full cycle.
	moonLon := 3.5 * 360.0 / 27
	periods, err := Timeline(birthJD, moonLon, 130)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(periods) < 10 {
		t.Fatalf("only %d periods for a 130-year horizon", len(periods))
	}

	for i := 1; i < len(periods); i++ {
		prev, cur := periods[i-1], periods[i]
		if cur.StartJD != prev.EndJD {
			t.Errorf("period %d starts at %v, previous ends at %v", i, cur.StartJD, prev.EndJD)
		}
		if cur.StartJD <= prev.StartJD {
			t.Errorf("period %d start %v not after %v", i, cur.StartJD, prev.StartJD)
		}
	}

	last := periods[len(periods)-1]
	if last.EndJD < birthJD+130*DaysPerYear {
		t.Errorf("timeline ends at %v, horizon needs %v", last.EndJD, birthJD+130*DaysPerYear)
	}
}

func TestTimeline_LordOrderCycles(t *testing.T) {
	periods, err := Timeline(birthJD, 0, 125) // 0° Ashwini, Ketu first
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	for i, d := range periods {
		want := Lords[i%9]
		if d.Lord != want {
			t.Errorf("period %d lord = %v, want %v", i, d.Lord, want)
		}
	}
}

func TestGenerator_ResetRestarts(t *testing.T) {
	g, err := NewGeneratorAt(birthJD, 5, 0.75)
	if err != nil {
		t.Fatalf("NewGeneratorAt: %v", err)
	}

	a1, a2 := g.Next(), g.Next()
	g.Reset()
	b1, b2 := g.Next(), g.Next()

	if a1.Lord != b1.Lord || a1.StartJD != b1.StartJD || a1.EndJD != b1.EndJD {
		t.Errorf("first period differs after Reset: %+v vs %+v", a1, b1)
	}
	if a2.Lord != b2.Lord || a2.StartJD != b2.StartJD || a2.EndJD != b2.EndJD {
		t.Errorf("second period differs after Reset: %+v vs %+v", a2, b2)
	}
}

func TestNewGeneratorAt_RejectsBadFraction(t *testing.T) {
	for _, frac := range []float64{-0.1, 1.0, 2.5} {
		_, err := NewGeneratorAt(birthJD, 1, frac)
		if !errors.Is(err, ErrFractionOutOfRange) {
			t.Errorf("fraction %v: err = %v, want ErrFractionOutOfRange", frac, err)
		}
	}
}

func TestNewGenerator_FractionFromLongitude(t *testing.T) {
	// Moon at half of Ashwini's 13°20' span.
	g, err := NewGenerator(birthJD, 360.0/27/2)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	first := g.Next()
	if first.Lord != ephem.Ketu {
		t.Errorf("lord = %v, want Ketu", first.Lord)
	}
	if math.Abs(first.Years-3.5) > 1e-9 {
		t.Errorf("duration = %v years, want 3.5", first.Years)
	}
}

func TestCurrent(t *testing.T) {
	// Ketu first from 0° Ashwini: Ketu 7y, then Venus 20y.
	jd := birthJD + 10*DaysPerYear
	d, b, err := Current(birthJD, 0, jd)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if d.Lord != ephem.Venus {
		t.Errorf("dasa lord at year 10 = %v, want Venus", d.Lord)
	}
	if b.StartJD > jd || jd >= b.EndJD {
		t.Errorf("bhukti [%v,%v) does not contain %v", b.StartJD, b.EndJD, jd)
	}

	if _, _, err := Current(birthJD, 0, birthJD-1); err == nil {
		t.Error("Current accepted a jd before birth")
	}
}
