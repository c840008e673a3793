package models

// Category selects the regional multiplier table for an indicator.
type Category string

// Estimation categories.
const (
	CategoryNone      Category = ""
	CategoryEconomic  Category = "economic"
	CategoryEducation Category = "education"
	CategoryHealth    Category = "health"
)

// Group is the section an indicator is listed under in pickers.
type Group string

// Indicator groups, in display order.
const (
	GroupEconomic     Group = "Economic Indicators"
	GroupDemographics Group = "Demographics"
	GroupEducation    Group = "Education & Innovation"
	GroupHealth       Group = "Health & Wellbeing"
	GroupGovernance   Group = "Governance & Infrastructure"
)

// Indicator is a named metric with its World Bank code.
type Indicator struct {
	Name        string
	Code        string
	Description string
	Group       Group
	Category    Category
}
