package charts

import "indicomp/internal/models"

// DefaultRadarLimit caps how many indicators a radar chart compares.
const DefaultRadarLimit = 5

// Radar normalizes each indicator to 0-100 by its column maximum. A column
// whose maximum is not positive contributes 0 for everyone. Missing values
// also contribute 0, so an entity with gaps looks like a weak performer on
// those axes. Every series is closed by repeating its first point.
func Radar(ds *models.Dataset, indicators []string, limit int, palette Palette) Result {
	if limit <= 0 {
		limit = DefaultRadarLimit
	}

	var axes []string

	for _, ind := range indicators {
		if ds.HasIndicator(ind) {
			axes = append(axes, ind)
		}

		if len(axes) == limit {
			break
		}
	}

	if ds.Len() == 0 || len(axes) == 0 {
		return noData(KindRadar, "No valid metrics for radar chart")
	}

	maxima := make([]float64, len(axes))
	hasMax := make([]bool, len(axes))

	for i, ind := range axes {
		for _, v := range ds.Column(ind) {
			if v.Valid && (!hasMax[i] || v.Number > maxima[i]) {
				maxima[i] = v.Number
				hasMax[i] = true
			}
		}
	}

	labels := append(append([]string(nil), axes...), axes[0])
	series := make([]Series, len(ds.Rows))

	for r, row := range ds.Rows {
		values := make([]float64, 0, len(axes)+1)

		for i, ind := range axes {
			v := row.Get(ind)
			if !v.Valid || !hasMax[i] || maxima[i] <= 0 {
				values = append(values, 0)

				continue
			}

			values = append(values, v.Number/maxima[i]*100)
		}

		values = append(values, values[0])

		series[r] = Series{
			Name:   row.Entity.Name,
			Color:  palette.Color(r),
			Labels: labels,
			Y:      values,
		}
	}

	return Result{Kind: KindRadar, Title: "Multi-Metric Radar Comparison", Series: series}
}
