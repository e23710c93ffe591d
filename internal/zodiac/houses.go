package zodiac

// AssignHouse returns the whole-sign house index in [1,12] for a
// planet's sign relative to the ascendant's sign: the ascendant sign
// itself is house 1 and houses count forward through the zodiac.
// Fixing house boundaries at sign boundaries is a deliberate
// simplification; cusp-based systems are a provider-side concern.
func AssignHouse(planetSign, ascendantSign Sign) int {
	return (int(planetSign)-int(ascendantSign)+12)%12 + 1
}
