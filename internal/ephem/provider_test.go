package ephem

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-panchang/internal/timeutil"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in       string
		expected Mode
	}{
		{"horizons", ModeHorizons},
		{"fixed", ModeFixed},
		{"auto", ModeAuto},
		{"bogus", ModeAuto},
		{"", ModeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseMode(tt.in); got != tt.expected {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestFixedProvider_KetuRejected(t *testing.T) {
	p := NewFixedProvider()
	_, err := p.PositionOf(timeutil.J2000, Ketu, 0)
	if !errors.Is(err, ErrDerivedBody) {
		t.Errorf("PositionOf(Ketu) error = %v, want ErrDerivedBody", err)
	}
}

func TestFixedProvider_Deterministic(t *testing.T) {
	p := NewFixedProvider()
	jd := timeutil.J2000 + 1234.5

	a, err := p.PositionOf(jd, Moon, FlagSpeed)
	if err != nil {
		t.Fatalf("PositionOf: %v", err)
	}
	b, err := p.PositionOf(jd, Moon, FlagSpeed)
	if err != nil {
		t.Fatalf("PositionOf: %v", err)
	}
	if a != b {
		t.Errorf("identical queries differ: %+v vs %+v", a, b)
	}
	if a.Longitude < 0 || a.Longitude >= 360 {
		t.Errorf("longitude %v outside [0,360)", a.Longitude)
	}
}

func TestFixedProvider_SpeedFlag(t *testing.T) {
	p := NewFixedProvider()
	pos, err := p.PositionOf(timeutil.J2000, Saturn, 0)
	if err != nil {
		t.Fatalf("PositionOf: %v", err)
	}
	if pos.SpeedLong != 0 {
		t.Errorf("speed without FlagSpeed = %v, want 0", pos.SpeedLong)
	}

	pos, err = p.PositionOf(timeutil.J2000, Saturn, FlagSpeed)
	if err != nil {
		t.Fatalf("PositionOf: %v", err)
	}
	if pos.SpeedLong == 0 {
		t.Error("expected nonzero speed with FlagSpeed")
	}
}

func TestFixedProvider_HouseSystem(t *testing.T) {
	p := NewFixedProvider()

	if _, err := p.Houses(timeutil.J2000, 13.0827, 80.2707, 'P'); !errors.Is(err, ErrHouseSystem) {
		t.Errorf("Houses('P') error = %v, want ErrHouseSystem", err)
	}

	hs, err := p.Houses(timeutil.J2000, 13.0827, 80.2707, WholeSign)
	if err != nil {
		t.Fatalf("Houses: %v", err)
	}

	// Whole-sign cusps land exactly on sign boundaries and advance by 30°.
	if rem := math.Mod(hs.Cusps[1], 30); rem > 1e-9 {
		t.Errorf("first cusp %v not on a sign boundary", hs.Cusps[1])
	}
	for i := 2; i <= 12; i++ {
		d := math.Mod(hs.Cusps[i]-hs.Cusps[i-1]+360, 360)
		if math.Abs(d-30) > 1e-9 {
			t.Errorf("cusp %d - cusp %d = %v, want 30", i, i-1, d)
		}
	}

	// The ascendant must fall inside the first whole-sign house.
	off := math.Mod(hs.Ascendant-hs.Cusps[1]+360, 360)
	if off < 0 || off >= 30 {
		t.Errorf("ascendant %v not within first house starting %v", hs.Ascendant, hs.Cusps[1])
	}
}

func TestMeanNodeRegression(t *testing.T) {
	// The mean node always moves backwards through the zodiac.
	pos := meanNodePosition(timeutil.J2000, 0, FlagSpeed)
	if pos.SpeedLong >= 0 {
		t.Errorf("mean node speed = %v, want negative", pos.SpeedLong)
	}
	// Rate is about -0.0529 deg/day.
	if math.Abs(pos.SpeedLong+0.0529) > 0.001 {
		t.Errorf("mean node speed = %v, want about -0.0529", pos.SpeedLong)
	}
	// Tropical mean node at J2000 is about 125.04°.
	if math.Abs(pos.Longitude-125.0445479) > 0.01 {
		t.Errorf("mean node at J2000 = %v, want about 125.04", pos.Longitude)
	}
}

func TestLahiriAyanamsa(t *testing.T) {
	// About 23.85° at J2000, growing roughly 50.3"/year.
	at2000 := LahiriAyanamsa(timeutil.J2000)
	if math.Abs(at2000-23.8532) > 1e-9 {
		t.Errorf("ayanamsa at J2000 = %v, want 23.8532", at2000)
	}

	at2100 := LahiriAyanamsa(timeutil.J2000 + 100*365.25)
	growth := at2100 - at2000
	if math.Abs(growth-100*50.2719/3600) > 1e-9 {
		t.Errorf("century growth = %v, want %v", growth, 100*50.2719/3600)
	}
}

func TestParseEclipticLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantLon float64
		wantErr bool
	}{
		{
			name:    "plain row",
			line:    "2025-Dec-05 00:00     252.735481  -1.234567  0.98765432101234   0.0123456",
			wantLon: 252.735481,
		},
		{
			name:    "row with flag glyphs",
			line:    "2025-Dec-05 00:00 *m  252.735481  -1.234567  0.98765432101234   0.0123456",
			wantLon: 252.735481,
		},
		{
			name:    "short row",
			line:    "2025-Dec-05 00:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEclipticLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseEclipticLine: %v", err)
			}
			if math.Abs(got.lon-tt.wantLon) > 1e-9 {
				t.Errorf("lon = %v, want %v", got.lon, tt.wantLon)
			}
			if math.Abs(got.deldot-0.0123456) > 1e-9 {
				t.Errorf("deldot = %v, want 0.0123456", got.deldot)
			}
		})
	}
}

func TestParseEclipticResponse(t *testing.T) {
	body := []byte(`{"signature":{"version":"1.2","source":"NASA/JPL Horizons API"},` +
		`"result":"header text\n$$SOE\n` +
		`2025-Dec-05 00:00     252.735481  -1.234567  0.987654321  0.0123\n` +
		`2025-Dec-05 06:00     252.990000  -1.230000  0.987660000  0.0124\n` +
		`$$EOE\ntrailer"}`)

	samples, err := parseEclipticResponse(body)
	if err != nil {
		t.Fatalf("parseEclipticResponse: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if math.Abs(samples[1].lon-252.99) > 1e-9 {
		t.Errorf("second lon = %v, want 252.99", samples[1].lon)
	}
}

func TestParseEclipticResponse_MissingMarkers(t *testing.T) {
	if _, err := parseEclipticResponse([]byte(`{"result":"no data here"}`)); err == nil {
		t.Error("expected error for missing $$SOE/$$EOE markers")
	}
}

func TestGrahas_ExcludesKetu(t *testing.T) {
	for _, b := range Grahas() {
		if b == Ketu {
			t.Error("Grahas() must not include Ketu")
		}
	}
	if len(Grahas()) != 8 {
		t.Errorf("Grahas() length = %d, want 8", len(Grahas()))
	}
}
