package ephem

import (
	"fmt"
	"sync"

	"github.com/litescript/ls-panchang/internal/angle"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

// FixedProvider serves sidereal positions from an in-memory table,
// propagated linearly from a reference epoch. It is the deterministic
// double used by tests and by offline/demo mode: identical inputs
// always yield identical outputs, with no network involved.
type FixedProvider struct {
	mu        sync.RWMutex
	epochJD   float64
	positions map[Body]EclipticPosition
}

// NewFixedProvider creates a provider seeded with approximate sidereal
// positions for the J2000 epoch. Accuracy is demo-grade only; tests
// overwrite entries with exact fixtures via SetPosition.
func NewFixedProvider() *FixedProvider {
	return &FixedProvider{
		epochJD: timeutil.J2000,
		positions: map[Body]EclipticPosition{
			Sun:     {Longitude: 256.59, SpeedLong: 1.0190, Distance: 0.9833},
			Moon:    {Longitude: 187.26, Latitude: -4.50, SpeedLong: 13.1764, Distance: 0.00270},
			Mars:    {Longitude: 304.06, Latitude: -1.05, SpeedLong: 0.7770, Distance: 1.8486},
			Mercury: {Longitude: 248.06, Latitude: -1.40, SpeedLong: 1.5570, Distance: 1.4155},
			Jupiter: {Longitude: 1.39, Latitude: -1.23, SpeedLong: 0.0831, Distance: 4.6135},
			Venus:   {Longitude: 217.77, Latitude: 1.85, SpeedLong: 1.2520, Distance: 1.1363},
			Saturn:  {Longitude: 16.52, Latitude: -2.47, SpeedLong: 0.0334, Distance: 8.6419},
			Rahu:    {Longitude: 101.19, SpeedLong: -0.0529},
		},
	}
}

// SetEpoch changes the reference epoch the stored positions describe.
func (p *FixedProvider) SetEpoch(jd float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.epochJD = jd
}

// SetPosition overrides the stored position for a body. Used by tests
// to install exact fixtures.
func (p *FixedProvider) SetPosition(body Body, pos EclipticPosition) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.positions[body] = pos
}

// Name implements Provider.
func (p *FixedProvider) Name() string {
	return "Fixed"
}

// Ayanamsa implements Provider.
func (p *FixedProvider) Ayanamsa(jd float64) float64 {
	return LahiriAyanamsa(jd)
}

// PositionOf implements Provider. The stored longitude is propagated
// linearly by its own rate from the epoch, which keeps watch-mode
// output moving while staying a pure function of jd.
func (p *FixedProvider) PositionOf(jd float64, body Body, fl Flag) (EclipticPosition, error) {
	if body == Ketu {
		return EclipticPosition{}, ErrDerivedBody
	}

	p.mu.RLock()
	base, ok := p.positions[body]
	epoch := p.epochJD
	p.mu.RUnlock()

	if !ok {
		return EclipticPosition{}, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}

	days := jd - epoch
	pos := EclipticPosition{
		Longitude: angle.Normalize(base.Longitude + base.SpeedLong*days),
		Latitude:  base.Latitude,
		Distance:  base.Distance,
	}
	if fl&FlagSpeed != 0 {
		pos.SpeedLong = base.SpeedLong
		pos.SpeedLat = base.SpeedLat
		pos.SpeedDist = base.SpeedDist
	}
	return pos, nil
}

// Houses implements Provider.
func (p *FixedProvider) Houses(jd, latDeg, lonDeg float64, system byte) (HouseSet, error) {
	if system != WholeSign {
		return HouseSet{}, fmt.Errorf("%w: %q", ErrHouseSystem, system)
	}
	return computeHouses(jd, latDeg, lonDeg, p.Ayanamsa(jd)), nil
}
