package horoscope

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/panchang"
)

// stubProvider serves hand-picked fixtures so every derived value in
// the assembled chart is known in advance.
type stubProvider struct {
	positions map[ephem.Body]ephem.EclipticPosition
	houses    ephem.HouseSet
	posErr    error
}

func (s *stubProvider) Name() string                { return "stub" }
func (s *stubProvider) Ayanamsa(jd float64) float64 { return 23.85 }

func (s *stubProvider) PositionOf(jd float64, body ephem.Body, fl ephem.Flag) (ephem.EclipticPosition, error) {
	if s.posErr != nil {
		return ephem.EclipticPosition{}, s.posErr
	}
	if body == ephem.Ketu {
		return ephem.EclipticPosition{}, ephem.ErrDerivedBody
	}
	pos, ok := s.positions[body]
	if !ok {
		return ephem.EclipticPosition{}, ephem.ErrUnknownBody
	}
	return pos, nil
}

func (s *stubProvider) Houses(jd, latDeg, lonDeg float64, system byte) (ephem.HouseSet, error) {
	if system != ephem.WholeSign {
		return ephem.HouseSet{}, ephem.ErrHouseSystem
	}
	return s.houses, nil
}

func newStub() *stubProvider {
	return &stubProvider{
		positions: map[ephem.Body]ephem.EclipticPosition{
			ephem.Sun:     {Longitude: 260, SpeedLong: 1.0},
			ephem.Moon:    {Longitude: 270, SpeedLong: 13.2},
			ephem.Mars:    {Longitude: 215, SpeedLong: 0.6},
			ephem.Mercury: {Longitude: 250, SpeedLong: 1.4},
			ephem.Jupiter: {Longitude: 10, SpeedLong: 0.08},
			ephem.Venus:   {Longitude: 300, SpeedLong: 1.2},
			ephem.Saturn:  {Longitude: 95, SpeedLong: -0.05},
			ephem.Rahu:    {Longitude: 101.19, SpeedLong: -0.0529},
		},
		houses: ephem.HouseSet{Ascendant: 125, Midheaven: 35}, // Simha rising
	}
}

func birth() BirthDetails {
	return BirthDetails{
		Name:          "test native",
		Local:         time.Date(1990, 5, 15, 6, 30, 0, 0, time.UTC),
		TZOffsetHours: 5.5,
		LatDeg:        13.0827, // Chennai
		LonDeg:        80.2707,
	}
}

func TestCompute_Placements(t *testing.T) {
	h, err := Compute(newStub(), birth(), Options{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(h.Placements) != 9 {
		t.Fatalf("%d placements, want 9", len(h.Placements))
	}
	if h.Placements[0].Body != ephem.Sun || h.Placements[8].Body != ephem.Ketu {
		t.Errorf("placement order %v..%v, want Sun..Ketu",
			h.Placements[0].Body, h.Placements[8].Body)
	}

	if h.AscSign != 5 {
		t.Errorf("ascendant sign = %d, want 5 (Simha)", h.AscSign)
	}
	if math.Abs(h.AscDegree-5) > 1e-9 {
		t.Errorf("ascendant degree = %v, want 5", h.AscDegree)
	}

	tests := []struct {
		body      ephem.Body
		wantSign  int
		wantHouse int
	}{
		{ephem.Sun, 9, 5},
		{ephem.Moon, 10, 6},
		{ephem.Mars, 8, 4}, // Vrischika planet, Simha lagna
		{ephem.Jupiter, 1, 9},
		{ephem.Saturn, 4, 12},
		{ephem.Rahu, 4, 12},
		{ephem.Ketu, 10, 6},
	}
	for _, tt := range tests {
		p, ok := h.PlacementOf(tt.body)
		if !ok {
			t.Fatalf("no placement for %v", tt.body)
		}
		if int(p.Sign) != tt.wantSign {
			t.Errorf("%v sign = %d, want %d", tt.body, p.Sign, tt.wantSign)
		}
		if p.House != tt.wantHouse {
			t.Errorf("%v house = %d, want %d", tt.body, p.House, tt.wantHouse)
		}
	}
}

func TestCompute_KetuOppositeRahu(t *testing.T) {
	h, err := Compute(newStub(), birth(), Options{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	rahu, _ := h.PlacementOf(ephem.Rahu)
	ketu, _ := h.PlacementOf(ephem.Ketu)

	diff := math.Mod(ketu.Position.Longitude-rahu.Position.Longitude+360, 360)
	if math.Abs(diff-180) > 1e-9 {
		t.Errorf("ketu - rahu = %v°, want 180", diff)
	}
	if ketu.Position.SpeedLong != rahu.Position.SpeedLong {
		t.Errorf("ketu speed %v != rahu speed %v",
			ketu.Position.SpeedLong, rahu.Position.SpeedLong)
	}
	if !ketu.Retrograde {
		t.Error("nodes move retrograde; ketu classified direct")
	}
}

func TestCompute_Retrograde(t *testing.T) {
	h, err := Compute(newStub(), birth(), Options{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	sat, _ := h.PlacementOf(ephem.Saturn)
	if !sat.Retrograde {
		t.Error("saturn with negative speed not flagged retrograde")
	}
	jup, _ := h.PlacementOf(ephem.Jupiter)
	if jup.Retrograde {
		t.Error("jupiter with positive speed flagged retrograde")
	}
}

func TestCompute_Panchang(t *testing.T) {
	h, err := Compute(newStub(), birth(), Options{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Sun 260, Moon 270: 10° elongation.
	if h.Panchang.Tithi != 1 {
		t.Errorf("tithi = %d, want 1", h.Panchang.Tithi)
	}
	if h.Panchang.Paksha != panchang.PakshaWaxing {
		t.Errorf("paksha = %v, want waxing", h.Panchang.Paksha)
	}
	if h.Panchang.TamilMonth != 9 {
		t.Errorf("tamil month = %d, want 9 (Margazhi)", h.Panchang.TamilMonth)
	}
}

func TestCompute_Houses(t *testing.T) {
	h, err := Compute(newStub(), birth(), Options{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if h.Houses[0].Sign != 5 || h.Houses[0].Lord != ephem.Sun {
		t.Errorf("house 1 = sign %d lord %v, want Simha ruled by Sun",
			h.Houses[0].Sign, h.Houses[0].Lord)
	}
	if h.Houses[11].Sign != 4 {
		t.Errorf("house 12 sign = %d, want 4 (Kataka)", h.Houses[11].Sign)
	}

	// Saturn and Rahu both sit in Kataka, the twelfth house.
	occ := h.Houses[11].Occupants
	if len(occ) != 2 || occ[0] != ephem.Saturn || occ[1] != ephem.Rahu {
		t.Errorf("house 12 occupants = %v, want [Saturn Rahu]", occ)
	}

	var total int
	for _, hi := range h.Houses {
		total += len(hi.Occupants)
	}
	if total != 9 {
		t.Errorf("%d occupants across houses, want 9", total)
	}
}

func TestCompute_DasaTimeline(t *testing.T) {
	h, err := Compute(newStub(), birth(), Options{DasaHorizonYears: 120})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(h.Dasas) == 0 {
		t.Fatal("no dasa timeline despite a 120-year horizon")
	}

	// Moon at 270° sits a quarter into Uttara Ashadha, Sun-ruled.
	first := h.Dasas[0]
	if first.Lord != ephem.Sun {
		t.Errorf("first dasa lord = %v, want Sun", first.Lord)
	}
	if math.Abs(first.Years-4.5) > 1e-9 {
		t.Errorf("first dasa = %v years, want 4.5 (three quarters of 6)", first.Years)
	}
	if first.StartJD != h.JD {
		t.Errorf("timeline starts at %v, birth is %v", first.StartJD, h.JD)
	}
}

func TestCompute_SkipsDasaByDefault(t *testing.T) {
	h, err := Compute(newStub(), birth(), Options{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if h.Dasas != nil {
		t.Errorf("got %d dasas with a zero horizon, want none", len(h.Dasas))
	}
}

func TestCompute_RejectsBadDetails(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BirthDetails)
	}{
		{"zero time", func(b *BirthDetails) { b.Local = time.Time{} }},
		{"latitude north of pole", func(b *BirthDetails) { b.LatDeg = 91 }},
		{"longitude out of range", func(b *BirthDetails) { b.LonDeg = -200 }},
		{"offset out of range", func(b *BirthDetails) { b.TZOffsetHours = 15 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := birth()
			tt.mutate(&b)
			if _, err := Compute(newStub(), b, Options{}); !errors.Is(err, ErrBirthDetails) {
				t.Errorf("err = %v, want ErrBirthDetails", err)
			}
		})
	}
}

func TestCompute_ProviderErrorAborts(t *testing.T) {
	s := newStub()
	s.posErr = errors.New("upstream unavailable")

	_, err := Compute(s, birth(), Options{})
	if err == nil {
		t.Fatal("Compute succeeded with a failing provider")
	}
	if !errors.Is(err, s.posErr) {
		t.Errorf("provider error not wrapped: %v", err)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a, err := Compute(newStub(), birth(), Options{DasaHorizonYears: 60})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	b, err := Compute(newStub(), birth(), Options{DasaHorizonYears: 60})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if a.JD != b.JD || a.Panchang != b.Panchang || len(a.Dasas) != len(b.Dasas) {
		t.Error("identical inputs produced different charts")
	}
	for i := range a.Placements {
		if a.Placements[i] != b.Placements[i] {
			t.Errorf("placement %d differs between runs", i)
		}
	}
}
