package charts

import (
	"fmt"

	"indicomp/internal/models"
)

// Share builds a donut or treemap. Only positive values can be shown as a
// share, so zero, negative and missing values are dropped before the total is
// taken. Slices keep dataset order.
func Share(ds *models.Dataset, indicator string, kind Kind, palette Palette) Result {
	if kind != KindTreemap {
		kind = KindDonut
	}

	if r, bad := missingIndicator(kind, ds, indicator); bad {
		return r
	}

	var (
		kept  []entry
		total float64
	)

	for _, e := range validEntries(ds, indicator) {
		if e.value > 0 {
			kept = append(kept, e)
			total += e.value
		}
	}

	if len(kept) == 0 {
		return noData(kind, fmt.Sprintf("No positive values available for %s", indicator))
	}

	slices := make([]Slice, len(kept))
	for i, e := range kept {
		slices[i] = Slice{
			Label:   e.name,
			Value:   e.value,
			Percent: e.value / total * 100,
			Color:   palette.Color(i),
		}
	}

	title := indicator + " Distribution"
	if kind == KindTreemap {
		title = indicator + " Treemap View"
	}

	return Result{Kind: kind, Title: title, Slices: slices}
}
