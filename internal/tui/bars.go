package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"indicomp/internal/charts"
	"indicomp/pkg/utils"
)

type barLine struct {
	Label string
	Text  string
	Color string
	Value float64
}

// renderHBars draws one horizontal bar per line, scaled to the largest
// magnitude. Negative values get a bar of their magnitude; the text keeps
// the sign.
func renderHBars(lines []barLine, maxBarW, labelW int) string {
	if len(lines) == 0 {
		return dimStyle.Render("  No data available")
	}

	if maxBarW < 4 {
		maxBarW = 4
	}

	maxVal := 0.0
	for _, l := range lines {
		maxVal = math.Max(maxVal, math.Abs(l.Value))
	}

	if maxVal == 0 {
		maxVal = 1
	}

	var sb strings.Builder

	for _, l := range lines {
		filled := int(math.Abs(l.Value) / maxVal * float64(maxBarW))
		if filled < 1 && l.Value != 0 {
			filled = 1
		}

		sb.WriteString(barRow(l, filled, maxBarW, labelW))
	}

	return sb.String()
}

func barRow(l barLine, filled, maxBarW, labelW int) string {
	label := utils.PadRight(utils.TruncateString(l.Label, labelW), labelW)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color)).Render(strings.Repeat("█", filled))
	track := trackStyle.Render(strings.Repeat("░", maxBarW-filled))

	return fmt.Sprintf("  %s %s%s %s\n", label, bar, track, l.Text)
}

func rankedBars(r charts.Result) []barLine {
	lines := make([]barLine, len(r.Bars))
	for i, b := range r.Bars {
		lines[i] = barLine{Label: b.Label, Text: b.Text, Color: b.Color, Value: b.Value}
	}

	return lines
}

func shareBars(r charts.Result) []barLine {
	lines := make([]barLine, len(r.Slices))
	for i, s := range r.Slices {
		lines[i] = barLine{
			Label: s.Label,
			Text:  utils.FormatPercentage(s.Percent, 1),
			Color: s.Color,
			Value: s.Percent,
		}
	}

	return lines
}

// radarBars lists each entity's normalized scores, dropping the closing
// point of the series.
func radarBars(r charts.Result, maxBarW, labelW int) string {
	var sb strings.Builder

	for _, s := range r.Series {
		sb.WriteString(headerStyle.Render(s.Name) + "\n")

		n := len(s.Y) - 1
		lines := make([]barLine, 0, n)

		for i := 0; i < n; i++ {
			lines = append(lines, barLine{
				Label: s.Labels[i],
				Text:  fmt.Sprintf("%.0f", s.Y[i]),
				Color: s.Color,
				Value: s.Y[i],
			})
		}

		sb.WriteString(renderGauges(lines, maxBarW, labelW))
	}

	return sb.String()
}

// renderGauges is renderHBars on a fixed 0-100 scale.
func renderGauges(lines []barLine, maxBarW, labelW int) string {
	var sb strings.Builder

	for _, l := range lines {
		pct := math.Min(math.Max(l.Value, 0), 100)

		filled := int(pct / 100 * float64(maxBarW))
		if filled < 1 && pct > 0 {
			filled = 1
		}

		sb.WriteString(barRow(l, filled, maxBarW, labelW))
	}

	return sb.String()
}

// renderBoxStrip draws min..max on one line with the interquartile range
// filled and the median marked.
func renderBoxStrip(b *charts.BoxStats, width int) string {
	if width < 10 {
		width = 10
	}

	span := b.Max - b.Min
	pos := func(v float64) int {
		if span == 0 {
			return width / 2
		}

		return int((v - b.Min) / span * float64(width-1))
	}

	strip := []rune(strings.Repeat("─", width))
	for i := pos(b.Q1); i <= pos(b.Q3) && i < width; i++ {
		strip[i] = '█'
	}

	strip[0] = '├'
	strip[width-1] = '┤'
	strip[pos(b.Median)] = '┃'

	return "  " + headerStyle.Render(string(strip))
}

func boxSummary(b *charts.BoxStats) []string {
	return []string{
		"Min:     " + utils.FormatNumber(b.Min),
		"Q1:      " + utils.FormatNumber(b.Q1),
		"Median:  " + utils.FormatNumber(b.Median),
		"Q3:      " + utils.FormatNumber(b.Q3),
		"Max:     " + utils.FormatNumber(b.Max),
		"Mean:    " + utils.FormatNumber(b.Mean),
		"Std Dev: " + utils.FormatNumber(b.StdDev),
		fmt.Sprintf("Count:   %d", b.Count),
	}
}
