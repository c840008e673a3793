// Package regional synthesizes sub-national values from a national value and
// fixed multiplier tables. The results are modeled, not measured.
package regional

import (
	"indicomp/internal/catalog"
	"indicomp/internal/models"
)

// Disclaimer accompanies every region-level result.
const Disclaimer = "State-level figures are estimates derived from national data " +
	"using regional multipliers. They are modeled values, not official measurements."

// neutral is applied whenever no table covers the combination.
const neutral = 1.0

// table maps leading regions to their multiplier. Regions not listed get
// the laggard multiplier.
type table struct {
	leaders map[string]float64
	laggard float64
}

func (t table) multiplier(region string) float64 {
	if m, ok := t.leaders[region]; ok {
		return m
	}

	return t.laggard
}

// profiles is keyed by parent country, then estimation category.
var profiles = map[string]map[models.Category]table{
	"United States": {
		models.CategoryEconomic: {
			leaders: map[string]float64{"New York": 1.35, "California": 1.25, "Massachusetts": 1.30},
			laggard: 0.95,
		},
		models.CategoryEducation: {
			leaders: map[string]float64{"Massachusetts": 1.25, "Connecticut": 1.20, "New Jersey": 1.15},
			laggard: 0.95,
		},
		models.CategoryHealth: {
			leaders: map[string]float64{"Hawaii": 1.10, "Massachusetts": 1.08, "Connecticut": 1.06},
			laggard: 0.98,
		},
	},
	"India": {
		models.CategoryEconomic: {
			leaders: map[string]float64{"Maharashtra": 1.30, "Karnataka": 1.25, "Tamil Nadu": 1.20},
			laggard: 0.80,
		},
		models.CategoryEducation: {
			leaders: map[string]float64{"Kerala": 1.30, "Himachal Pradesh": 1.20, "Goa": 1.15},
			laggard: 0.85,
		},
	},
}

// Multiplier returns the factor applied to a national value of the given
// category for one region.
func Multiplier(country, region string, category models.Category) float64 {
	if category == models.CategoryNone {
		return neutral
	}

	byCategory, ok := profiles[country]
	if !ok {
		return neutral
	}

	t, ok := byCategory[category]
	if !ok {
		return neutral
	}

	return t.multiplier(region)
}

// Estimate derives a regional value from the national one. A missing input
// always stays missing.
func Estimate(countryValue models.Value, region, indicator, country string) models.Value {
	if !countryValue.Valid {
		return models.Missing()
	}

	category := models.CategoryNone
	if ind, ok := catalog.LookupIndicator(indicator); ok {
		category = ind.Category
	}

	return models.Of(countryValue.Number * Multiplier(country, region, category))
}

// EstimateAll applies Estimate to every entry of a national value map.
func EstimateAll(country, region string, values map[string]models.Value) map[string]models.Value {
	out := make(map[string]models.Value, len(values))
	for ind, v := range values {
		out[ind] = Estimate(v, region, ind, country)
	}

	return out
}
