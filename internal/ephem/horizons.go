package ephem

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/litescript/ls-panchang/internal/angle"
)

const (
	// HorizonsAPIURL is the JPL Horizons JSON API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// RequestTimeout is the HTTP request timeout.
	RequestTimeout = 30 * time.Second

	// speedSampleDays is the arc over which longitude rates are
	// derived by finite difference.
	speedSampleDays = 0.25

	// kmPerSecToAUPerDay converts Horizons range-rate (km/s) to AU/day.
	kmPerSecToAUPerDay = 86400.0 / 1.495978707e8
)

// HorizonsProvider queries JPL Horizons for geocentric observer
// ecliptic coordinates and converts them to sidereal longitudes.
type HorizonsProvider struct {
	client *http.Client

	mu       sync.RWMutex
	posCache map[posKey]EclipticPosition
}

// posKey identifies a cached position query. jd is quantized to
// microdays so repeated queries for the same instant hit the cache.
type posKey struct {
	body    Body
	jdMicro int64
	fl      Flag
}

// NewHorizonsProvider creates a new Horizons API client.
func NewHorizonsProvider() *HorizonsProvider {
	return &HorizonsProvider{
		client: &http.Client{
			Timeout: RequestTimeout,
		},
		posCache: make(map[posKey]EclipticPosition),
	}
}

// Name implements Provider.
func (p *HorizonsProvider) Name() string {
	return "Horizons"
}

// Ayanamsa implements Provider.
func (p *HorizonsProvider) Ayanamsa(jd float64) float64 {
	return LahiriAyanamsa(jd)
}

// PositionOf implements Provider. Positions for a given jd are
// deterministic, so cache entries never expire.
func (p *HorizonsProvider) PositionOf(jd float64, body Body, fl Flag) (EclipticPosition, error) {
	if body == Ketu {
		return EclipticPosition{}, ErrDerivedBody
	}

	info, ok := BodiesByID[body]
	if !ok {
		return EclipticPosition{}, fmt.Errorf("%w: %d", ErrUnknownBody, body)
	}

	// Rahu is computed locally; Horizons has no mean-node target.
	if body == Rahu {
		return meanNodePosition(jd, p.Ayanamsa(jd), fl), nil
	}

	key := posKey{body: body, jdMicro: int64(jd * 1e6), fl: fl}
	p.mu.RLock()
	cached, hit := p.posCache[key]
	p.mu.RUnlock()
	if hit {
		return cached, nil
	}

	samples, err := p.queryEcliptic(info.HorizCmd, jd)
	if err != nil {
		return EclipticPosition{}, err
	}
	if len(samples) < 2 {
		return EclipticPosition{}, fmt.Errorf("horizons returned %d samples for %s, want 2", len(samples), info.Name)
	}

	ayan := p.Ayanamsa(jd)
	pos := EclipticPosition{
		Longitude: angle.Normalize(samples[0].lon - ayan),
		Latitude:  samples[0].lat,
		Distance:  samples[0].delta,
	}
	if fl&FlagSpeed != 0 {
		pos.SpeedLong = signedDelta(samples[1].lon, samples[0].lon) / speedSampleDays
		pos.SpeedLat = (samples[1].lat - samples[0].lat) / speedSampleDays
		pos.SpeedDist = samples[0].deldot * kmPerSecToAUPerDay
	}

	p.mu.Lock()
	p.posCache[key] = pos
	p.mu.Unlock()

	return pos, nil
}

// Houses implements Provider.
func (p *HorizonsProvider) Houses(jd, latDeg, lonDeg float64, system byte) (HouseSet, error) {
	if system != WholeSign {
		return HouseSet{}, fmt.Errorf("%w: %q", ErrHouseSystem, system)
	}
	return computeHouses(jd, latDeg, lonDeg, p.Ayanamsa(jd)), nil
}

// eclipticSample is one parsed Horizons observer-table row.
type eclipticSample struct {
	lon    float64 // tropical ecliptic longitude, degrees
	lat    float64 // ecliptic latitude, degrees
	delta  float64 // geocentric distance, AU
	deldot float64 // range rate, km/s
}

// queryEcliptic requests two geocentric observer-ecliptic samples
// speedSampleDays apart, starting at jd.
func (p *HorizonsProvider) queryEcliptic(cmd string, jd float64) ([]eclipticSample, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%s'", cmd))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "OBSERVER")
	params.Set("CENTER", "'500@399'") // geocentric
	params.Set("QUANTITIES", "'31,20'")
	params.Set("START_TIME", fmt.Sprintf("'JD %.6f'", jd))
	params.Set("STOP_TIME", fmt.Sprintf("'JD %.6f'", jd+speedSampleDays))
	params.Set("STEP_SIZE", "'1'") // one interval = two rows

	reqURL := HorizonsAPIURL + "?" + params.Encode()

	resp, err := p.client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("horizons request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("horizons returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return parseEclipticResponse(body)
}

// horizonsResponse represents the JSON API envelope.
type horizonsResponse struct {
	Signature struct {
		Version string `json:"version"`
		Source  string `json:"source"`
	} `json:"signature"`
	Result string `json:"result"`
}

// parseEclipticResponse extracts samples from the Horizons JSON
// response. The actual ephemeris rows live in a text blob between
// $$SOE and $$EOE markers.
func parseEclipticResponse(body []byte) ([]eclipticSample, error) {
	var resp horizonsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	soeIdx := strings.Index(resp.Result, "$$SOE")
	eoeIdx := strings.Index(resp.Result, "$$EOE")
	if soeIdx == -1 || eoeIdx == -1 || soeIdx >= eoeIdx {
		return nil, fmt.Errorf("could not find ephemeris data markers")
	}

	var samples []eclipticSample
	for _, line := range strings.Split(resp.Result[soeIdx+5:eoeIdx], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s, err := parseEclipticLine(line)
		if err != nil {
			continue // skip unparseable rows (header echoes, blank flags)
		}
		samples = append(samples, s)
	}

	return samples, nil
}

// parseEclipticLine parses one observer-table row. Format for
// QUANTITIES='31,20':
//
//	2025-Dec-05 00:00 *   252.735481  -1.234567  0.98765432101234   0.0123456
//
// Fields: date, time, optional flag glyphs, ObsEcLon, ObsEcLat,
// delta, deldot. Flag columns are skipped by taking the last four
// parseable numbers.
func parseEclipticLine(line string) (eclipticSample, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return eclipticSample{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	var nums []float64
	for i := 2; i < len(fields); i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err == nil {
			nums = append(nums, v)
		}
	}
	if len(nums) < 4 {
		return eclipticSample{}, fmt.Errorf("could not find ecliptic values")
	}

	n := len(nums)
	return eclipticSample{
		lon:    nums[n-4],
		lat:    nums[n-3],
		delta:  nums[n-2],
		deldot: nums[n-1],
	}, nil
}
