package zodiac

// IsRetrograde classifies a body by the sign of its longitude rate.
// A body stationary at exactly zero speed counts as direct; that is a
// policy choice, not a bug, and there is no hysteresis band.
func IsRetrograde(speedLong float64) bool {
	return speedLong < 0
}
