// Package tui is the interactive terminal dashboard: pick a scope, entities
// and indicators, then browse the comparison as a table, terminal charts and
// narrated insights.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"indicomp/internal/app"
	"indicomp/internal/catalog"
	"indicomp/internal/models"
	"indicomp/internal/session"
)

type appState string

const (
	viewScope      appState = "scope"
	viewEntities   appState = "entities"
	viewIndicators appState = "indicators"
	viewLoading    appState = "loading"
	viewResults    appState = "results"
)

type tab int

const (
	tabTable tab = iota
	tabBar
	tabShare
	tabBox
	tabRadar
	tabInsights
)

var tabNames = []string{"Table", "Bar", "Share", "Box", "Radar", "Insights"}

type insightsState string

const (
	insightsIdle    insightsState = ""
	insightsLoading insightsState = "loading"
	insightsDone    insightsState = "done"
	insightsFailed  insightsState = "failed"
)

const (
	defaultWidth = 100
	listWindow   = 15
	labelWidth   = 18
)

type scopeOption struct {
	Label string
	Scope models.Scope
}

// indicatorRow is a picker line: a group header when Name is empty.
type indicatorRow struct {
	Header string
	Name   string
}

// App is the dashboard model.
type App struct {
	ctx  context.Context
	svc  *app.App
	sel  models.Selection
	res  *session.Result
	rows []indicatorRow

	scopes   []scopeOption
	entities []string
	state    appState
	filter   string
	notice   string
	status   string
	insights string
	narrate  insightsState
	cursor   int
	tab      tab
	metric   int
	width    int
}

type entitiesMsg struct {
	listing catalog.Listing
	scope   models.Scope
}

type resultMsg struct {
	res *session.Result
	err error
}

type insightsMsg struct {
	text string
	ok   bool
}

type errMsg struct{ err error }

// New creates the dashboard on the scope screen.
func New(ctx context.Context, svc *app.App) *App {
	scopes := []scopeOption{{Label: "Countries", Scope: models.CountryScope()}}
	for _, country := range catalog.RegionCountries() {
		scopes = append(scopes, scopeOption{
			Label: "States / provinces of " + country,
			Scope: models.RegionScope(country),
		})
	}

	var rows []indicatorRow

	for _, group := range catalog.Groups() {
		rows = append(rows, indicatorRow{Header: string(group)})
		for _, ind := range catalog.IndicatorsIn(group) {
			rows = append(rows, indicatorRow{Name: ind.Name})
		}
	}

	return &App{
		ctx:    ctx,
		svc:    svc,
		sel:    models.NewSelection(models.CountryScope(), nil, nil),
		rows:   rows,
		scopes: scopes,
		state:  viewScope,
		width:  defaultWidth,
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, svc *app.App) error {
	p := tea.NewProgram(New(ctx, svc), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	return nil
}

// Selection returns the current selection.
func (a *App) Selection() models.Selection {
	return a.sel
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) loadEntities(scope models.Scope) tea.Cmd {
	return func() tea.Msg {
		listing, err := a.svc.Session.Entities(a.ctx, scope)
		if err != nil {
			return errMsg{err}
		}

		return entitiesMsg{scope: scope, listing: listing}
	}
}

func (a *App) runQuery(sel models.Selection) tea.Cmd {
	return func() tea.Msg {
		res, err := a.svc.Session.Run(a.ctx, sel)

		return resultMsg{res: res, err: err}
	}
}

func (a *App) generateInsights() tea.Cmd {
	ds := a.res.Dataset
	entities := ds.Names()
	indicators := ds.Indicators
	label := ds.Scope.Label()

	return func() tea.Msg {
		text, ok := a.svc.Narrator.GenerateInsights(a.ctx, ds, entities, indicators, label)

		return insightsMsg{text: text, ok: ok}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case entitiesMsg:
		if m.scope != a.sel.Scope() {
			return a, nil
		}

		a.entities = m.listing.Names
		a.notice = m.listing.Notice
		a.filter = ""
		a.cursor = 0
		a.state = viewEntities
	case resultMsg:
		return a.handleResult(m)
	case insightsMsg:
		if m.ok {
			a.insights = m.text
			a.narrate = insightsDone
		} else {
			a.narrate = insightsFailed
		}
	case errMsg:
		a.status = m.err.Error()
		if a.state == viewLoading {
			a.state = viewScope
			a.cursor = 0
		}
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.state {
		case viewScope:
			return a.handleScopeKey(m)
		case viewEntities:
			return a.handleEntityKey(m)
		case viewIndicators:
			return a.handleIndicatorKey(m)
		case viewResults:
			return a.handleResultsKey(m)
		case viewLoading:
			if m.String() == "q" {
				return a, tea.Quit
			}
		}
	}

	return a, nil
}

func (a *App) handleResult(m resultMsg) (tea.Model, tea.Cmd) {
	a.res = m.res
	a.status = ""

	if m.err != nil {
		a.status = session.Prompt(m.err, a.sel.Scope())
		if m.res == nil || m.res.Dataset.Len() == 0 {
			a.state = viewIndicators

			return a, nil
		}
	}

	a.state = viewResults
	a.tab = tabTable
	a.metric = 0
	a.insights = ""
	a.narrate = insightsIdle

	return a, nil
}

func (a *App) handleScopeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		a.cursor = clamp(a.cursor-1, len(a.scopes))
	case "down", "j":
		a.cursor = clamp(a.cursor+1, len(a.scopes))
	case "enter":
		scope := a.scopes[a.cursor].Scope
		a.sel = a.sel.WithScope(scope)
		a.status = ""
		a.state = viewLoading

		return a, a.loadEntities(scope)
	}

	return a, nil
}

// visibleEntities applies the case-insensitive filter.
func (a *App) visibleEntities() []string {
	if a.filter == "" {
		return a.entities
	}

	needle := strings.ToLower(a.filter)

	var out []string

	for _, name := range a.entities {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
		}
	}

	return out
}

func (a *App) handleEntityKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := a.visibleEntities()

	switch m.Type {
	case tea.KeyEsc:
		a.state = viewScope
		a.cursor = 0
	case tea.KeyUp:
		a.cursor = clamp(a.cursor-1, len(visible))
	case tea.KeyDown:
		a.cursor = clamp(a.cursor+1, len(visible))
	case tea.KeySpace:
		if len(visible) > 0 {
			a.sel = a.sel.ToggleEntity(visible[a.cursor])
		}
	case tea.KeyBackspace:
		if a.filter != "" {
			r := []rune(a.filter)
			a.filter = string(r[:len(r)-1])
			a.cursor = 0
		}
	case tea.KeyRunes:
		a.filter += string(m.Runes)
		a.cursor = 0
	case tea.KeyEnter:
		if len(a.sel.Entities()) == 0 {
			a.status = session.Prompt(session.ErrNoEntities, a.sel.Scope())

			return a, nil
		}

		a.status = ""
		a.state = viewIndicators
		a.cursor = a.nextIndicator(-1, 1)
	}

	return a, nil
}

// nextIndicator returns the row index of the next indicator from i in
// direction dir, staying put at the ends.
func (a *App) nextIndicator(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(a.rows); j += dir {
		if a.rows[j].Name != "" {
			return j
		}
	}

	if i < 0 {
		return 0
	}

	return i
}

func (a *App) handleIndicatorKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := m.String()

	switch key {
	case "q":
		return a, tea.Quit
	case "esc":
		a.state = viewEntities
		a.cursor = 0
	case "up", "k":
		a.cursor = a.nextIndicator(a.cursor, -1)
	case "down", "j":
		a.cursor = a.nextIndicator(a.cursor, 1)
	case " ":
		if name := a.rows[a.cursor].Name; name != "" {
			a.sel = a.sel.ToggleIndicator(name)
		}
	case "1", "2", "3", "4":
		presets := catalog.Presets()
		if i := int(key[0] - '1'); i < len(presets) {
			a.sel = a.sel.WithIndicators(presets[i].Indicators)
			a.status = "Preset applied: " + presets[i].Name
		}
	case "enter":
		if err := session.Validate(a.sel); err != nil {
			a.status = session.Prompt(err, a.sel.Scope())

			return a, nil
		}

		a.status = ""
		a.state = viewLoading

		return a, a.runQuery(a.sel)
	}

	return a, nil
}

func (a *App) handleResultsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "tab", "right", "l":
		return a.switchTab((a.tab + 1) % tab(len(tabNames)))
	case "shift+tab", "left", "h":
		return a.switchTab((a.tab + tab(len(tabNames)) - 1) % tab(len(tabNames)))
	case "up", "k":
		a.metric = clamp(a.metric-1, len(a.res.Dataset.Indicators))
	case "down", "j":
		a.metric = clamp(a.metric+1, len(a.res.Dataset.Indicators))
	case "r":
		if a.tab == tabInsights && a.narrate != insightsLoading {
			a.narrate = insightsIdle

			return a.switchTab(tabInsights)
		}
	case "esc":
		a.state = viewIndicators
		a.cursor = a.nextIndicator(-1, 1)
	case "n":
		a.sel = models.NewSelection(models.CountryScope(), nil, nil)
		a.res = nil
		a.status = ""
		a.state = viewScope
		a.cursor = 0
	}

	return a, nil
}

// switchTab changes tab and starts the narrator the first time the insights
// tab is opened.
func (a *App) switchTab(t tab) (tea.Model, tea.Cmd) {
	a.tab = t

	if t == tabInsights && a.narrate == insightsIdle && a.svc.Narrator.IsAvailable() {
		a.narrate = insightsLoading

		return a, a.generateInsights()
	}

	return a, nil
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}

	if i >= n {
		return n - 1
	}

	return i
}
