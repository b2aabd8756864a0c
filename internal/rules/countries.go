package rules

// Region groups destination countries for display purposes.
type Region string

// Regions covered by the rule table.
const (
	RegionMiddleEast Region = "Middle East"
	RegionAfrica     Region = "Africa"
)

// middleEast and africa are the two named country groups. The canonical
// country list is their deduplicated union, sorted lexicographically.
var middleEast = []string{
	"Bahrain", "Cyprus", "Iran", "Iraq", "Israel", "Jordan", "Kuwait", "Lebanon", "Oman",
	"Palestine", "Qatar", "Saudi Arabia", "Syria", "Turkey", "United Arab Emirates", "Yemen", "Egypt",
}

var africa = []string{
	"Algeria", "Angola", "Benin", "Botswana", "Burkina Faso", "Burundi", "Cabo Verde", "Cameroon",
	"Central African Republic", "Chad", "Comoros", "Congo (Republic)", "Congo (DRC)", "Djibouti",
	"Equatorial Guinea", "Eritrea", "Eswatini", "Ethiopia", "Gabon", "Gambia", "Ghana", "Guinea",
	"Guinea-Bissau", "Cote d'Ivoire", "Kenya", "Lesotho", "Liberia", "Libya", "Madagascar",
	"Malawi", "Mali", "Mauritania", "Mauritius", "Morocco", "Mozambique", "Namibia", "Niger",
	"Nigeria", "Rwanda", "Sao Tome and Principe", "Senegal", "Seychelles", "Sierra Leone", "Somalia",
	"South Africa", "South Sudan", "Sudan", "Tanzania", "Togo", "Tunisia", "Uganda", "Zambia", "Zimbabwe",
}

// legalizationLikely lists destinations where embassy/chamber legalization of
// shipping documents is commonly required. Drives the per-row legalization
// label; it is a country property, not a document property.
var legalizationLikely = map[string]struct{}{
	"Jordan":    {},
	"Lebanon":   {},
	"Iraq":      {},
	"Palestine": {},
	"Syria":     {},
	"Yemen":     {},
	"Libya":     {},
	"Tunisia":   {},
	"Algeria":   {},
	"Egypt":     {},
	"Morocco":   {},
}

// sanctionsScreen lists destinations where a sanctions/export-control screen
// should be flagged on every row.
var sanctionsScreen = map[string]struct{}{
	"Iran":        {},
	"Syria":       {},
	"Libya":       {},
	"Sudan":       {},
	"South Sudan": {},
}

// Country is one canonical destination with its derived attributes.
type Country struct {
	Name               string
	Region             Region
	LegalizationLikely bool
	SanctionsFlag      bool
}
