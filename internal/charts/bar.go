package charts

import (
	"fmt"
	"sort"

	"indicomp/internal/models"
	"indicomp/pkg/utils"
)

type entry struct {
	name  string
	value float64
}

// validEntries returns the entities holding a number for the indicator, in
// dataset order.
func validEntries(ds *models.Dataset, indicator string) []entry {
	if ds == nil {
		return nil
	}

	out := make([]entry, 0, len(ds.Rows))

	for _, row := range ds.Rows {
		if v := row.Get(indicator); v.Valid {
			out = append(out, entry{name: row.Entity.Name, value: v.Number})
		}
	}

	return out
}

func missingIndicator(kind Kind, ds *models.Dataset, indicator string) (Result, bool) {
	if ds.Len() == 0 || !ds.HasIndicator(indicator) {
		return noData(kind, fmt.Sprintf("No data available for %s", indicator)), true
	}

	return Result{}, false
}

// RankedBar sorts entities ascending by value so the largest sits farthest
// along the axis. Entities with a missing value are left out.
func RankedBar(ds *models.Dataset, indicator string, palette Palette) Result {
	if r, bad := missingIndicator(KindBar, ds, indicator); bad {
		return r
	}

	entries := validEntries(ds, indicator)
	if len(entries) == 0 {
		return noData(KindBar, fmt.Sprintf("No valid values for %s", indicator))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value < entries[j].value
		}

		return entries[i].name < entries[j].name
	})

	bars := make([]BarItem, len(entries))
	for i, e := range entries {
		bars[i] = BarItem{
			Label: e.name,
			Value: e.value,
			Text:  utils.FormatNumber(e.value),
			Color: palette.Color(i),
		}
	}

	return Result{
		Kind:   KindBar,
		Title:  indicator + " Comparison",
		XLabel: indicator,
		YLabel: ds.Scope.Column(),
		Bars:   bars,
	}
}
