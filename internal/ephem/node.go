package ephem

import (
	"github.com/litescript/ls-panchang/internal/angle"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

// meanNodeTropical returns the tropical longitude of the Moon's mean
// ascending node in degrees (Meeus ch. 47 polynomial). Horizons
// exposes no queryable target for the mean node, so every provider
// computes Rahu from this series.
func meanNodeTropical(jd float64) float64 {
	T := (jd - timeutil.J2000) / 36525.0

	omega := 125.0445479 -
		1934.1362891*T +
		0.0020754*T*T +
		T*T*T/467441.0 -
		T*T*T*T/60616000.0

	return angle.Normalize(omega)
}

// meanNodePosition builds Rahu's EclipticPosition at jd. The node has
// no latitude or meaningful distance; its longitude rate is derived by
// central difference and is always negative (the node regresses).
func meanNodePosition(jd, ayanamsa float64, fl Flag) EclipticPosition {
	pos := EclipticPosition{
		Longitude: angle.Normalize(meanNodeTropical(jd) - ayanamsa),
	}

	if fl&FlagSpeed != 0 {
		const h = 0.5 // days
		before := meanNodeTropical(jd - h)
		after := meanNodeTropical(jd + h)
		pos.SpeedLong = signedDelta(after, before) / (2 * h)
	}

	return pos
}

// signedDelta returns the shortest signed angular difference a-b in
// degrees, in the range (-180, 180].
func signedDelta(a, b float64) float64 {
	d := angle.Normalize(a - b)
	if d > 180 {
		d -= 360
	}
	return d
}
