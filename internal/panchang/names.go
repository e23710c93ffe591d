package panchang

import "fmt"

// nameEntry pairs an English/Sanskrit name with its Tamil form.
type nameEntry struct {
	Name  string
	Tamil string
}

// The 27 lunar mansions in zodiac order, starting at 0° Mesha.
var nakshatraNames = [27]nameEntry{
	{"Ashwini", "Aswini"},
	{"Bharani", "Barani"},
	{"Krittika", "Karthigai"},
	{"Rohini", "Rohini"},
	{"Mrigashira", "Mirugasiridam"},
	{"Ardra", "Thiruvadhirai"},
	{"Punarvasu", "Punarpoosam"},
	{"Pushya", "Poosam"},
	{"Ashlesha", "Ayilyam"},
	{"Magha", "Magam"},
	{"Purva Phalguni", "Pooram"},
	{"Uttara Phalguni", "Uthiram"},
	{"Hasta", "Astham"},
	{"Chitra", "Chithirai"},
	{"Swati", "Swathi"},
	{"Vishakha", "Visakam"},
	{"Anuradha", "Anusham"},
	{"Jyeshtha", "Kettai"},
	{"Mula", "Moolam"},
	{"Purva Ashadha", "Pooradam"},
	{"Uttara Ashadha", "Uthiradam"},
	{"Shravana", "Thiruvonam"},
	{"Dhanishta", "Avittam"},
	{"Shatabhisha", "Sadhayam"},
	{"Purva Bhadrapada", "Poorattathi"},
	{"Uttara Bhadrapada", "Uthirattathi"},
	{"Revati", "Revathi"},
}

// The 15 tithi names shared by both pakshas; the 15th of the waxing
// half is Purnima, of the waning half Amavasya.
var tithiNames = [15]string{
	"Prathama", "Dvitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashti", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

// The 27 yogas in order of the Sun+Moon longitude sum.
var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarman", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// The seven movable karanas, repeating eight times through slots 1-56.
var movableKaranas = [7]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Garaja", "Vanija", "Vishti",
}

// The four fixed karanas: Kimstughna owns slot 0, the remaining three
// close the cycle at slots 57-59.
var fixedKaranas = [4]string{
	"Kimstughna", "Shakuni", "Chatushpada", "Naga",
}

// The seven weekdays, 0 = Sunday.
var varaNames = [7]nameEntry{
	{"Sunday", "Gnayiru"},
	{"Monday", "Thingal"},
	{"Tuesday", "Sevvai"},
	{"Wednesday", "Budhan"},
	{"Thursday", "Vyazhan"},
	{"Friday", "Velli"},
	{"Saturday", "Sani"},
}

// TithiName returns the name for a tithi index in [1,30].
func TithiName(tithi int) string {
	switch {
	case tithi == 30:
		return "Amavasya"
	case tithi >= 1 && tithi <= 15:
		return tithiNames[tithi-1]
	case tithi >= 16 && tithi <= 29:
		return tithiNames[tithi-16]
	default:
		return ""
	}
}

// NakshatraName returns the Sanskrit name for an index in [1,27].
func NakshatraName(nak int) string {
	if nak < 1 || nak > 27 {
		return ""
	}
	return nakshatraNames[nak-1].Name
}

// NakshatraTamil returns the Tamil name for an index in [1,27].
func NakshatraTamil(nak int) string {
	if nak < 1 || nak > 27 {
		return ""
	}
	return nakshatraNames[nak-1].Tamil
}

// YogaName returns the name for a yoga index in [1,27].
func YogaName(yoga int) string {
	if yoga < 1 || yoga > 27 {
		return ""
	}
	return yogaNames[yoga-1]
}

// KaranaName maps a half-tithi slot in [0,59] to its karana. The
// traditional cycle has 11 names over 60 slots: Kimstughna fills slot
// 0, the seven movable karanas repeat exactly eight times through
// slots 1-56, and the last three slots take the remaining fixed names
// in order. Shifting any boundary by one collapses the fixed karanas
// into the movable set.
func KaranaName(slot int) string {
	switch {
	case slot == 0:
		return fixedKaranas[0]
	case slot >= 1 && slot <= 56:
		return movableKaranas[(slot-1)%7]
	case slot >= 57 && slot <= 59:
		return fixedKaranas[slot-56]
	default:
		return ""
	}
}

// VaraName returns the English weekday name for an index in [0,6].
func VaraName(vara int) string {
	if vara < 0 || vara > 6 {
		return ""
	}
	return varaNames[vara].Name
}

// VaraTamil returns the Tamil weekday name for an index in [0,6].
func VaraTamil(vara int) string {
	if vara < 0 || vara > 6 {
		return ""
	}
	return varaNames[vara].Tamil
}

// The name tables are static process-lifetime data; verify their shape
// once at startup instead of sprinkling bounds checks through the
// derivations.
func init() {
	for i, e := range nakshatraNames {
		if e.Name == "" || e.Tamil == "" {
			panic(fmt.Sprintf("panchang: nakshatra table entry %d is blank", i))
		}
	}
	for i, n := range yogaNames {
		if n == "" {
			panic(fmt.Sprintf("panchang: yoga table entry %d is blank", i))
		}
	}
	for i, n := range tithiNames {
		if n == "" {
			panic(fmt.Sprintf("panchang: tithi table entry %d is blank", i))
		}
	}
}
