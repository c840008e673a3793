package catalog

// fallbackCountries is served when the remote country list is unavailable.
var fallbackCountries = []string{
	"Afghanistan", "Albania", "Algeria", "Argentina", "Armenia", "Australia",
	"Austria", "Azerbaijan", "Bangladesh", "Belarus", "Belgium", "Bolivia",
	"Bosnia and Herzegovina", "Brazil", "Bulgaria", "Cambodia", "Canada",
	"Chile", "China", "Colombia", "Croatia", "Czech Republic", "Denmark",
	"Ecuador", "Egypt", "Estonia", "Ethiopia", "Finland", "France",
	"Georgia", "Germany", "Ghana", "Greece", "Hungary", "Iceland",
	"India", "Indonesia", "Iran", "Iraq", "Ireland", "Israel",
	"Italy", "Japan", "Jordan", "Kazakhstan", "Kenya", "Kuwait",
	"Latvia", "Lebanon", "Lithuania", "Luxembourg", "Malaysia", "Mexico",
	"Morocco", "Myanmar", "Nepal", "Netherlands", "New Zealand", "Nigeria",
	"Norway", "Pakistan", "Peru", "Philippines", "Poland", "Portugal",
	"Romania", "Russia", "Saudi Arabia", "Singapore", "Slovakia", "Slovenia",
	"South Africa", "South Korea", "Spain", "Sri Lanka", "Sweden", "Switzerland",
	"Thailand", "Turkey", "Ukraine", "United Arab Emirates", "United Kingdom",
	"United States", "Uruguay", "Venezuela", "Vietnam",
}

// countryCodes maps display names to ISO-2 codes accepted by the World Bank
// API. Indicator data can only be fetched for names in this table.
var countryCodes = map[string]string{
	"United States": "US", "China": "CN", "Japan": "JP", "Germany": "DE",
	"India": "IN", "United Kingdom": "GB", "France": "FR", "Italy": "IT",
	"Brazil": "BR", "Canada": "CA", "Russia": "RU", "South Korea": "KR",
	"Australia": "AU", "Spain": "ES", "Mexico": "MX", "Indonesia": "ID",
	"Netherlands": "NL", "Saudi Arabia": "SA", "Turkey": "TR", "Taiwan": "TW",
	"Belgium": "BE", "Argentina": "AR", "Ireland": "IE", "Israel": "IL",
	"Austria": "AT", "Nigeria": "NG", "Norway": "NO", "Egypt": "EG",
	"South Africa": "ZA", "Poland": "PL", "Thailand": "TH", "Chile": "CL",
	"Finland": "FI", "Romania": "RO", "Czech Republic": "CZ", "New Zealand": "NZ",
	"Vietnam": "VN", "Peru": "PE", "Greece": "GR", "Portugal": "PT",
	"Denmark": "DK", "Singapore": "SG", "Malaysia": "MY", "Philippines": "PH",
	"Bangladesh": "BD", "Ukraine": "UA", "Morocco": "MA", "Kenya": "KE",
	"Ethiopia": "ET", "Ghana": "GH", "Angola": "AO", "Tanzania": "TZ",
}

// FallbackCountries returns the static country list.
func FallbackCountries() []string {
	return append([]string(nil), fallbackCountries...)
}

// CountryCode returns the upstream code for a country name.
func CountryCode(name string) (string, bool) {
	code, ok := countryCodes[name]

	return code, ok
}

// MappedCountries returns every country name with a known code.
func MappedCountries() []string {
	names := make([]string, 0, len(countryCodes))
	for name := range countryCodes {
		names = append(names, name)
	}

	return names
}
