package charts

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"indicomp/internal/models"
)

// Distribution computes the five-number summary of one indicator. Only
// missing values are dropped; zeros and negatives belong to the distribution.
func Distribution(ds *models.Dataset, indicator string, palette Palette) Result {
	if r, bad := missingIndicator(KindBox, ds, indicator); bad {
		return r
	}

	entries := validEntries(ds, indicator)
	if len(entries) == 0 {
		return noData(KindBox, "No valid data for box plot")
	}

	values := make([]float64, len(entries))
	points := make([]Point, len(entries))

	for i, e := range entries {
		values[i] = e.value
		points[i] = Point{Label: e.name, X: 0, Y: e.value, Color: palette.Color(0)}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(values, nil)
	if len(values) < 2 || math.IsNaN(std) {
		std = 0
	}

	box := &BoxStats{
		Min:    floats.Min(sorted),
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    floats.Max(sorted),
		Mean:   mean,
		StdDev: std,
		Count:  len(values),
		Points: points,
	}

	return Result{
		Kind:   KindBox,
		Title:  fmt.Sprintf("%s Distribution Analysis", indicator),
		YLabel: indicator,
		Box:    box,
	}
}

// quantile interpolates linearly between closest ranks (R type 7). sorted
// must be ascending and non-empty.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))

	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
