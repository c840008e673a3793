package models

// ScopeKind distinguishes country-level from region-level comparisons.
type ScopeKind int

const (
	// ScopeCountries compares sovereign countries.
	ScopeCountries ScopeKind = iota
	// ScopeRegions compares states or provinces within one country.
	ScopeRegions
)

// Scope names the set of entities being compared. Parent is the country
// owning the regions and is empty for ScopeCountries.
type Scope struct {
	Parent string
	Kind   ScopeKind
}

// CountryScope returns the country-level scope.
func CountryScope() Scope {
	return Scope{Kind: ScopeCountries}
}

// RegionScope returns the region-level scope for a parent country.
func RegionScope(country string) Scope {
	return Scope{Kind: ScopeRegions, Parent: country}
}

// IsRegional reports whether the scope is sub-national.
func (s Scope) IsRegional() bool {
	return s.Kind == ScopeRegions
}

// Label is the analysis label shown to users and embedded in prompts.
func (s Scope) Label() string {
	if s.IsRegional() {
		return "State Level"
	}

	return "Country Level"
}

// Plural is the lower-case collective noun used in messages and file names.
func (s Scope) Plural() string {
	if s.IsRegional() {
		return "states"
	}

	return "countries"
}

// Column is the header of the entity column in tables and exports.
func (s Scope) Column() string {
	if s.IsRegional() {
		return "State"
	}

	return "Country"
}

// Entity is a country or a sub-national region.
type Entity struct {
	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
	Scope Scope  `json:"-"`
}
