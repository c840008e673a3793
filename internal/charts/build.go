package charts

import (
	"fmt"

	"indicomp/internal/models"
	"indicomp/pkg/utils"
)

// Concentration threshold for share charts, in percent.
const highConcentration = 40.0

// Build dispatches to the adapter for spec.Kind.
func Build(ds *models.Dataset, spec ChartSpec, palette Palette) Result {
	if len(spec.Indicators) == 0 {
		return noData(spec.Kind, "No indicators selected")
	}

	first := spec.Indicators[0]

	switch spec.Kind {
	case KindBar:
		return RankedBar(ds, first, palette)
	case KindDonut, KindTreemap:
		return Share(ds, first, spec.Kind, palette)
	case KindBox:
		return Distribution(ds, first, palette)
	case KindScatter:
		return Scatter(ds, first, palette)
	case KindBubble:
		if len(spec.Indicators) < 3 {
			return noData(KindBubble, "Bubble chart needs three indicators")
		}

		return BubbleChart(ds, spec.Indicators[0], spec.Indicators[1], spec.Indicators[2], palette)
	case KindRadar:
		return Radar(ds, spec.Indicators, spec.RadarLimit, palette)
	case KindLine:
		return Line(ds, first, palette)
	default:
		return noData(spec.Kind, fmt.Sprintf("Unknown chart kind %q", spec.Kind))
	}
}

// Highlight names the best and worst performer for one indicator.
type Highlight struct {
	Top         string
	Bottom      string
	TopValue    float64
	BottomValue float64
	Gap         float64
}

// Summary renders the highlight as short bullet lines.
func (h Highlight) Summary() []string {
	return []string{
		fmt.Sprintf("Top Performer: %s leads with %s", h.Top, utils.FormatNumber(h.TopValue)),
		fmt.Sprintf("Lowest: %s with %s", h.Bottom, utils.FormatNumber(h.BottomValue)),
		fmt.Sprintf("Performance Gap: %s difference between highest and lowest", utils.FormatNumber(h.Gap)),
	}
}

// Highlights finds the top and bottom performer for an indicator. The second
// result is false when no entity has a value.
func Highlights(ds *models.Dataset, indicator string) (Highlight, bool) {
	entries := validEntries(ds, indicator)
	if len(entries) == 0 {
		return Highlight{}, false
	}

	top, bottom := entries[0], entries[0]
	for _, e := range entries[1:] {
		if e.value > top.value {
			top = e
		}

		if e.value < bottom.value {
			bottom = e
		}
	}

	return Highlight{
		Top:         top.name,
		Bottom:      bottom.name,
		TopValue:    top.value,
		BottomValue: bottom.value,
		Gap:         top.value - bottom.value,
	}, true
}

// ShareSummary describes the largest slice of a share chart.
type ShareSummary struct {
	Leader       string
	Percent      float64
	Concentrated bool
}

// Summary renders the share summary as short bullet lines.
func (s ShareSummary) Summary() []string {
	level := "Balanced distribution"
	if s.Concentrated {
		level = "High concentration"
	}

	return []string{
		fmt.Sprintf("Largest Share: %s with %s", s.Leader, utils.FormatPercentage(s.Percent, 1)),
		"Concentration Level: " + level + " in this indicator",
	}
}

// ShareHighlights summarizes a share result. The second result is false for
// a NoData result.
func ShareHighlights(r Result) (ShareSummary, bool) {
	if r.Empty() || len(r.Slices) == 0 {
		return ShareSummary{}, false
	}

	lead := r.Slices[0]
	for _, s := range r.Slices[1:] {
		if s.Percent > lead.Percent {
			lead = s
		}
	}

	return ShareSummary{
		Leader:       lead.Label,
		Percent:      lead.Percent,
		Concentrated: lead.Percent > highConcentration,
	}, true
}
