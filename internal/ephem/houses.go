package ephem

import (
	"math"

	"github.com/litescript/ls-panchang/internal/angle"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

// greenwichMeanSiderealTime calculates GMST in degrees for a Julian
// day-number using the IAU 1982 formula.
func greenwichMeanSiderealTime(jd float64) float64 {
	T := (jd - timeutil.J2000) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-timeutil.J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return angle.Normalize(gmst)
}

// localSiderealTime calculates LST in degrees for a Julian day-number
// and an observer longitude (east positive).
func localSiderealTime(jd, lonDeg float64) float64 {
	return angle.Normalize(greenwichMeanSiderealTime(jd) + lonDeg)
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees.
func meanObliquity(jd float64) float64 {
	T := (jd - timeutil.J2000) / 36525.0
	return 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
}

// tropicalAscendant computes the tropical ecliptic longitude of the
// ascendant for an observer, from local sidereal time, obliquity and
// geographic latitude.
func tropicalAscendant(jd, latDeg, lonDeg float64) float64 {
	ramc := angle.DegToRad(localSiderealTime(jd, lonDeg))
	eps := angle.DegToRad(meanObliquity(jd))
	lat := angle.DegToRad(latDeg)

	asc := math.Atan2(
		math.Cos(ramc),
		-(math.Sin(ramc)*math.Cos(eps) + math.Tan(lat)*math.Sin(eps)),
	)
	return angle.Normalize(angle.RadToDeg(asc))
}

// tropicalMidheaven computes the tropical ecliptic longitude of the
// midheaven (MC) from local sidereal time and obliquity.
func tropicalMidheaven(jd, lonDeg float64) float64 {
	ramc := angle.DegToRad(localSiderealTime(jd, lonDeg))
	eps := angle.DegToRad(meanObliquity(jd))

	mc := math.Atan2(math.Sin(ramc), math.Cos(ramc)*math.Cos(eps))
	return angle.Normalize(angle.RadToDeg(mc))
}

// computeHouses builds a whole-sign HouseSet for an observer: the
// first cusp is the start of the ascendant's sign, and every further
// cusp lands on the next sign boundary. Shared by all providers since
// only the ayanamsa differs between them.
func computeHouses(jd, latDeg, lonDeg, ayanamsa float64) HouseSet {
	asc := angle.Normalize(tropicalAscendant(jd, latDeg, lonDeg) - ayanamsa)
	mc := angle.Normalize(tropicalMidheaven(jd, lonDeg) - ayanamsa)

	hs := HouseSet{
		Ascendant: asc,
		Midheaven: mc,
	}

	// Whole-sign cusps snap to sign boundaries, not to the ascendant
	// degree itself.
	first := math.Floor(asc/30) * 30
	for i := 1; i <= 12; i++ {
		hs.Cusps[i] = angle.Normalize(first + float64(i-1)*30)
	}
	return hs
}
