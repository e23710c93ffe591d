// Package angle provides normalization and segment arithmetic for
// ecliptic longitudes in degrees.
package angle

import "math"

// Normalize wraps an angle to the range [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Diff returns the angular difference a-b normalized to [0, 360).
func Diff(a, b float64) float64 {
	return Normalize(a - b)
}

// InSegment returns the offset of deg within its span-degree segment,
// in the range [0, span). The input is normalized first, so span must
// divide 360 for segment boundaries to line up with the full circle.
func InSegment(deg, span float64) float64 {
	return math.Mod(Normalize(deg), span)
}

// SegmentIndex returns the zero-based index of the span-degree segment
// containing deg. For span=30 this is the zodiac sign offset, for
// span=360/27 the Nakshatra offset.
func SegmentIndex(deg, span float64) int {
	idx := int(Normalize(deg) / span)
	// Guard against floating point rounding pushing 359.999.. into a
	// nonexistent final segment.
	max := int(360/span) - 1
	if idx > max {
		idx = max
	}
	return idx
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
