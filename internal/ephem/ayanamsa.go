package ephem

import "github.com/litescript/ls-panchang/internal/timeutil"

const (
	// lahiriAtJ2000 is the Lahiri (Chitrapaksha) ayanamsa at the J2000
	// epoch: 23°51'11.5".
	lahiriAtJ2000 = 23.8532

	// precessionDegPerYear is the general precession rate, 50.2719
	// arcseconds per Julian year.
	precessionDegPerYear = 50.2719 / 3600.0
)

// LahiriAyanamsa returns the Lahiri sidereal correction in degrees at
// a Julian day-number, using a linear approximation around J2000.
// Accuracy is a few arcseconds over ±1 century, well inside the
// ~13.3° Nakshatra span every classification here divides by.
func LahiriAyanamsa(jd float64) float64 {
	years := (jd - timeutil.J2000) / 365.25
	return lahiriAtJ2000 + years*precessionDegPerYear
}
