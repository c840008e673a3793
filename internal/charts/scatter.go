package charts

import (
	"fmt"

	"indicomp/internal/models"
)

// Bubble diameter bounds, in chart units.
const (
	MinDiameter = 4.0
	MaxDiameter = 40.0
)

// Scatter places every entity with a value at its index in the filtered
// order.
func Scatter(ds *models.Dataset, indicator string, palette Palette) Result {
	if r, bad := missingIndicator(KindScatter, ds, indicator); bad {
		return r
	}

	entries := validEntries(ds, indicator)
	if len(entries) == 0 {
		return noData(KindScatter, "No valid data for scatter plot")
	}

	points := make([]Point, len(entries))
	for i, e := range entries {
		points[i] = Point{Label: e.name, X: float64(i), Y: e.value, Color: palette.Color(i)}
	}

	return Result{
		Kind:   KindScatter,
		Title:  indicator + " Scatter Plot",
		XLabel: "Entity Index",
		YLabel: indicator,
		Points: points,
	}
}

// BubbleChart plots x against y with a third indicator as bubble size. An
// entity missing any of the three is left out entirely.
func BubbleChart(ds *models.Dataset, x, y, size string, palette Palette) Result {
	if ds.Len() == 0 || !ds.HasIndicator(x) || !ds.HasIndicator(y) || !ds.HasIndicator(size) {
		return noData(KindBubble, "Required metrics not available for bubble chart")
	}

	var bubbles []Bubble

	for _, row := range ds.Rows {
		xv, yv, sv := row.Get(x), row.Get(y), row.Get(size)
		if !xv.Valid || !yv.Valid || !sv.Valid {
			continue
		}

		bubbles = append(bubbles, Bubble{
			Label: row.Entity.Name,
			X:     xv.Number,
			Y:     yv.Number,
			Size:  sv.Number,
			Color: palette.Color(len(bubbles)),
		})
	}

	if len(bubbles) == 0 {
		return noData(KindBubble, "No complete data available for bubble chart")
	}

	maxSize := bubbles[0].Size
	for _, b := range bubbles[1:] {
		maxSize = max(maxSize, b.Size)
	}

	for i := range bubbles {
		bubbles[i].Diameter = diameter(bubbles[i].Size, maxSize)
	}

	return Result{
		Kind:    KindBubble,
		Title:   fmt.Sprintf("%s vs %s (Bubble size: %s)", x, y, size),
		XLabel:  x,
		YLabel:  y,
		Bubbles: bubbles,
	}
}

func diameter(size, maxSize float64) float64 {
	if maxSize <= 0 {
		return MinDiameter
	}

	return max(MinDiameter, MaxDiameter*size/maxSize)
}
