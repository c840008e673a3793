package charts

import "indicomp/internal/models"

// Line draws a two-point segment from 0 to each entity's value. There is no
// time axis; the segment only compares magnitudes.
func Line(ds *models.Dataset, indicator string, palette Palette) Result {
	if r, bad := missingIndicator(KindLine, ds, indicator); bad {
		return r
	}

	var series []Series

	for i, row := range ds.Rows {
		v := row.Get(indicator)
		if !v.Valid {
			continue
		}

		series = append(series, Series{
			Name:  row.Entity.Name,
			Color: palette.Color(i),
			X:     []float64{0, 1},
			Y:     []float64{0, v.Number},
		})
	}

	if len(series) == 0 {
		return noData(KindLine, "No valid data for line chart")
	}

	return Result{
		Kind:   KindLine,
		Title:  indicator + " Trends",
		XLabel: "Comparison Scale",
		YLabel: indicator,
		Series: series,
	}
}
