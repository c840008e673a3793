package catalog

var regionCountries = []string{"United States", "India", "Australia", "Canada"}

var regions = map[string][]string{
	"United States": {
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
		"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
		"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
		"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
		"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
		"New Hampshire", "New Jersey", "New Mexico", "New York",
		"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
		"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
		"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
		"West Virginia", "Wisconsin", "Wyoming",
	},
	"India": {
		"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
		"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
		"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
		"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
		"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
		"West Bengal",
	},
	"Australia": {
		"New South Wales", "Victoria", "Queensland", "Western Australia",
		"South Australia", "Tasmania", "Northern Territory",
		"Australian Capital Territory",
	},
	"Canada": {
		"Alberta", "British Columbia", "Manitoba", "New Brunswick",
		"Newfoundland and Labrador", "Northwest Territories", "Nova Scotia",
		"Nunavut", "Ontario", "Prince Edward Island", "Quebec", "Saskatchewan",
		"Yukon",
	},
}

// RegionCountries returns the countries that have a region list.
func RegionCountries() []string {
	return append([]string(nil), regionCountries...)
}

// Regions returns the states or provinces of a country, or nil when the
// country has no region list.
func Regions(country string) []string {
	list, ok := regions[country]
	if !ok {
		return nil
	}

	return append([]string(nil), list...)
}
