package ephem

// BodyInfo contains naming and query metadata for a graha.
type BodyInfo struct {
	Body     Body
	Name     string // English name
	Tamil    string // Tamil transliteration
	Abbr     string // two-letter chart abbreviation
	HorizCmd string // Horizons COMMAND string; empty for locally derived bodies
}

// Bodies is the canonical graha list in traditional recitation order.
var Bodies = []BodyInfo{
	{Body: Sun, Name: "Sun", Tamil: "Suriyan", Abbr: "Su", HorizCmd: "10"},
	{Body: Moon, Name: "Moon", Tamil: "Chandran", Abbr: "Mo", HorizCmd: "301"},
	{Body: Mars, Name: "Mars", Tamil: "Sevvai", Abbr: "Ma", HorizCmd: "499"},
	{Body: Mercury, Name: "Mercury", Tamil: "Budhan", Abbr: "Me", HorizCmd: "199"},
	{Body: Jupiter, Name: "Jupiter", Tamil: "Guru", Abbr: "Ju", HorizCmd: "599"},
	{Body: Venus, Name: "Venus", Tamil: "Sukran", Abbr: "Ve", HorizCmd: "299"},
	{Body: Saturn, Name: "Saturn", Tamil: "Sani", Abbr: "Sa", HorizCmd: "699"},
	{Body: Rahu, Name: "Rahu", Tamil: "Rahu", Abbr: "Ra"},
	{Body: Ketu, Name: "Ketu", Tamil: "Ketu", Abbr: "Ke"},
}

// BodiesByID maps Body constants to their info for quick lookup.
var BodiesByID = func() map[Body]BodyInfo {
	m := make(map[Body]BodyInfo, len(Bodies))
	for _, b := range Bodies {
		m[b.Body] = b
	}
	return m
}()

// Grahas returns the bodies a provider is actually queried for: all
// nine except Ketu, whose longitude is Rahu + 180°.
func Grahas() []Body {
	return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu}
}

// String returns the English body name.
func (b Body) String() string {
	if info, ok := BodiesByID[b]; ok {
		return info.Name
	}
	return "unknown"
}

// Abbr returns the two-letter chart abbreviation.
func (b Body) Abbr() string {
	if info, ok := BodiesByID[b]; ok {
		return info.Abbr
	}
	return "??"
}
