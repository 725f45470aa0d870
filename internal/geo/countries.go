package geo

// countryNames maps country codes to canonical display names. Codes without
// a mapping pass through unchanged.
var countryNames = map[string]string{
	"USA": "United States",
	"GBR": "United Kingdom",
	"CAN": "Canada",
	"AUS": "Australia",
	"IND": "India",
}

// UnknownCountry is used when a tracked claim carries no location
const UnknownCountry = "Unknown"

// CanonicalCountry resolves a country code to its canonical name, falling
// back to the raw input.
func CanonicalCountry(codeOrName string) string {
	if codeOrName == "" {
		return UnknownCountry
	}
	if name, ok := countryNames[codeOrName]; ok {
		return name
	}
	return codeOrName
}
