package session

import "indicomp/internal/models"

// Quality ratings by completeness.
const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingPoor      = "Poor"
)

// EntityQuality describes how complete one entity's row is.
type EntityQuality struct {
	Entity       string
	Rating       string
	Valid        int
	Total        int
	Completeness float64
}

// Quality rates every row of the dataset by the share of indicators that
// resolved to a number.
func Quality(ds *models.Dataset) []EntityQuality {
	if ds.Len() == 0 {
		return nil
	}

	out := make([]EntityQuality, 0, ds.Len())
	total := len(ds.Indicators)

	for _, row := range ds.Rows {
		valid := row.ValidCount()

		completeness := 0.0
		if total > 0 {
			completeness = float64(valid) / float64(total) * 100
		}

		out = append(out, EntityQuality{
			Entity:       row.Entity.Name,
			Valid:        valid,
			Total:        total,
			Completeness: completeness,
			Rating:       rating(completeness),
		})
	}

	return out
}

func rating(completeness float64) string {
	switch {
	case completeness >= 80:
		return RatingExcellent
	case completeness >= 60:
		return RatingGood
	case completeness >= 40:
		return RatingFair
	default:
		return RatingPoor
	}
}
