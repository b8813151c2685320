package trip_models

import "strings"

var countryAliases = map[string]string{
	"colombia":  "colombia",
	"kolumbien": "colombia",
	"colombie":  "colombia",
	"brazil":    "brazil",
	"brasil":    "brazil",
	"brasilien": "brazil",
	"brésil":    "brazil",
}

// CountryKey lower-cases a country name and maps known regional spellings to
// the canonical key used for lookups.
func CountryKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := countryAliases[key]; ok {
		return canonical
	}
	return key
}
