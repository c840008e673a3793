package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"indicomp/internal/catalog"
	"indicomp/internal/charts"
	"indicomp/internal/export"
	"indicomp/internal/session"
	"indicomp/pkg/utils"
)

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Indicator Comparison Dashboard") + "\n\n")

	switch a.state {
	case viewScope:
		b.WriteString(a.viewScope())
	case viewEntities:
		b.WriteString(a.viewEntities())
	case viewIndicators:
		b.WriteString(a.viewIndicators())
	case viewLoading:
		b.WriteString(dimStyle.Render("Loading...") + "\n")
	case viewResults:
		b.WriteString(a.viewResults())
	}

	if a.status != "" {
		b.WriteString("\n" + warnStyle.Render(a.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(a.help()) + "\n")

	return b.String()
}

func (a *App) help() string {
	switch a.state {
	case viewScope:
		return "↑/↓ move • enter choose • q quit"
	case viewEntities:
		return "type to filter • ↑/↓ move • space toggle • enter continue • esc back"
	case viewIndicators:
		return "↑/↓ move • space toggle • 1-4 presets • enter compare • esc back • q quit"
	case viewResults:
		return "←/→ tabs • ↑/↓ indicator • r regenerate insights • esc edit • n new • q quit"
	default:
		return "ctrl+c quit"
	}
}

func pointer(active bool) string {
	if active {
		return cursorStyle.Render(">") + " "
	}

	return "  "
}

func checkbox(checked bool) string {
	if checked {
		return selectedStyle.Render("[x]")
	}

	return "[ ]"
}

func (a *App) viewScope() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("What do you want to compare?") + "\n")

	for i, opt := range a.scopes {
		b.WriteString(pointer(i == a.cursor) + opt.Label + "\n")
	}

	return b.String()
}

// window returns the bounds of a listWindow-sized slice around cursor.
func window(cursor, n int) (int, int) {
	start := 0
	if cursor >= listWindow {
		start = cursor - listWindow + 1
	}

	end := start + listWindow
	if end > n {
		end = n
	}

	return start, end
}

func (a *App) viewEntities() string {
	var b strings.Builder

	scope := a.sel.Scope()
	title := "Select " + scope.Plural()
	if scope.IsRegional() {
		title += " of " + scope.Parent
	}

	b.WriteString(headerStyle.Render(title) + "\n")

	if a.notice != "" {
		b.WriteString(warnStyle.Render(a.notice) + "\n")
	}

	fmt.Fprintf(&b, "Filter: %s\n", a.filter)
	fmt.Fprintf(&b, "%s\n\n", dimStyle.Render(fmt.Sprintf("%d selected: %s",
		len(a.sel.Entities()), strings.Join(a.sel.Entities(), ", "))))

	visible := a.visibleEntities()
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("  No matches") + "\n")

		return b.String()
	}

	start, end := window(a.cursor, len(visible))
	for i := start; i < end; i++ {
		name := visible[i]
		fmt.Fprintf(&b, "%s%s %s\n", pointer(i == a.cursor), checkbox(a.sel.HasEntity(name)), name)
	}

	if end < len(visible) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more", len(visible)-end)) + "\n")
	}

	return b.String()
}

func (a *App) viewIndicators() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Select indicators") + "\n")

	var presets []string
	for i, p := range catalog.Presets() {
		presets = append(presets, fmt.Sprintf("%d %s", i+1, p.Name))
	}

	b.WriteString(dimStyle.Render("Presets: "+strings.Join(presets, " • ")) + "\n")

	for i, row := range a.rows {
		if row.Name == "" {
			b.WriteString("\n" + headerStyle.Render(row.Header) + "\n")

			continue
		}

		fmt.Fprintf(&b, "%s%s %s\n", pointer(i == a.cursor), checkbox(a.sel.HasIndicator(row.Name)), row.Name)
	}

	return b.String()
}

func (a *App) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == a.tab {
			parts[i] = activeTab.Render(name)
		} else {
			parts[i] = inactiveTab.Render(name)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) viewResults() string {
	var b strings.Builder

	ds := a.res.Dataset

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("%s: %d %s across %d indicators",
		ds.Scope.Label(), ds.Len(), ds.Scope.Plural(), len(ds.Indicators))))

	for _, notice := range a.res.Notices {
		b.WriteString(warnStyle.Render(notice) + "\n")
	}

	for _, skip := range a.res.Skips {
		b.WriteString(dimStyle.Render("Skipped "+skip.String()) + "\n")
	}

	b.WriteString("\n" + a.renderTabs() + "\n\n")

	switch a.tab {
	case tabTable:
		b.WriteString(a.viewTable())
	case tabBar:
		b.WriteString(a.viewChart(charts.KindBar))
	case tabShare:
		b.WriteString(a.viewChart(charts.KindDonut))
	case tabBox:
		b.WriteString(a.viewChart(charts.KindBox))
	case tabRadar:
		b.WriteString(a.viewChart(charts.KindRadar))
	case tabInsights:
		b.WriteString(a.viewInsights())
	}

	return b.String()
}

func (a *App) viewTable() string {
	var b strings.Builder

	b.WriteString(export.Table(a.res.Dataset, labelWidth))
	b.WriteString("\n" + headerStyle.Render("Data quality") + "\n")

	for _, q := range session.Quality(a.res.Dataset) {
		fmt.Fprintf(&b, "  %s %s (%d/%d, %s)\n",
			utils.PadRight(utils.TruncateString(q.Entity, labelWidth), labelWidth),
			q.Rating, q.Valid, q.Total, utils.FormatPercentage(q.Completeness, 0))
	}

	return b.String()
}

func (a *App) barWidth() int {
	w := a.width - labelWidth - 24
	if w < 10 {
		w = 10
	}

	return w
}

func (a *App) currentIndicator() string {
	inds := a.res.Dataset.Indicators

	return inds[clamp(a.metric, len(inds))]
}

func (a *App) viewChart(kind charts.Kind) string {
	ds := a.res.Dataset

	indicators := []string{a.currentIndicator()}
	if kind == charts.KindRadar {
		indicators = ds.Indicators
	}

	r := charts.Build(ds, a.svc.ChartSpec(kind, indicators), a.svc.Palette)

	var b strings.Builder

	if r.Title != "" {
		b.WriteString(headerStyle.Render(r.Title) + "\n\n")
	}

	if r.Empty() {
		b.WriteString(panelStyle.Render(r.NoData.Reason) + "\n")

		return b.String()
	}

	var notes []string

	switch kind {
	case charts.KindBar:
		b.WriteString(renderHBars(rankedBars(r), a.barWidth(), labelWidth))

		if h, ok := charts.Highlights(ds, indicators[0]); ok {
			notes = h.Summary()
		}
	case charts.KindDonut:
		b.WriteString(renderHBars(shareBars(r), a.barWidth(), labelWidth))

		if s, ok := charts.ShareHighlights(r); ok {
			notes = s.Summary()
		}
	case charts.KindBox:
		b.WriteString(renderBoxStrip(r.Box, a.barWidth()+labelWidth) + "\n\n")
		notes = boxSummary(r.Box)
	case charts.KindRadar:
		b.WriteString(radarBars(r, a.barWidth(), labelWidth))
	}

	if len(notes) > 0 {
		b.WriteString("\n" + panelStyle.Render(strings.Join(notes, "\n")) + "\n")
	}

	return b.String()
}

func (a *App) viewInsights() string {
	n := a.svc.Narrator

	switch {
	case !n.IsAvailable():
		return panelStyle.Render(n.Status()) + "\n"
	case a.narrate == insightsLoading:
		return dimStyle.Render("Generating insights...") + "\n"
	case a.narrate == insightsFailed:
		return errorStyle.Render("Insights could not be generated. Press r to retry.") + "\n"
	case a.narrate == insightsDone:
		return dimStyle.Render(n.Status()) + "\n\n" + lipgloss.NewStyle().Width(max(a.width-4, 20)).Render(a.insights) + "\n"
	default:
		return dimStyle.Render("Open this tab to generate insights.") + "\n"
	}
}
