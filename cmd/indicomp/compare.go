package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"indicomp/internal/app"
	"indicomp/internal/catalog"
	"indicomp/internal/charts"
	"indicomp/internal/export"
	"indicomp/internal/models"
	"indicomp/internal/render"
	"indicomp/internal/session"
	"indicomp/pkg/utils"
)

const tableHeaderWidth = 24

// selectionFlags are shared by every command that runs a query. Names may
// contain commas, so list flags are repeated instead of comma separated.
type selectionFlags struct {
	entities   []string
	indicators []string
	regionOf   string
	preset     string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.entities, "entities", "e", nil, "Country or region to compare (repeatable)")
	cmd.Flags().StringArrayVarP(&f.indicators, "indicators", "i", nil, "Indicator name or World Bank code (repeatable)")
	cmd.Flags().StringVar(&f.regionOf, "region-of", "", "Compare the states or provinces of this country")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "Indicator preset, by number or name")
}

// selection builds the query selection. Unknown indicators, presets and
// parent countries are usage errors; entity names are resolved later so
// they can be reported as skips.
func (f *selectionFlags) selection() (models.Selection, error) {
	scope := models.CountryScope()

	if f.regionOf != "" {
		country, err := resolveRegionCountry(f.regionOf)
		if err != nil {
			return models.Selection{}, err
		}

		scope = models.RegionScope(country)
	}

	var names []string

	if f.preset != "" {
		p, err := resolvePreset(f.preset)
		if err != nil {
			return models.Selection{}, err
		}

		names = append(names, p.Indicators...)
	}

	for _, raw := range f.indicators {
		name, err := resolveIndicator(raw)
		if err != nil {
			return models.Selection{}, err
		}

		names = append(names, name)
	}

	sel := models.NewSelection(scope, nil, nil).WithIndicators(names)
	for _, e := range f.entities {
		if e = strings.TrimSpace(e); e != "" {
			sel = sel.WithEntity(e)
		}
	}

	return sel, nil
}

func resolvePreset(raw string) (catalog.Preset, error) {
	presets := catalog.Presets()

	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(presets) {
		return presets[n-1], nil
	}

	var names []string

	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(raw)) {
			return p, nil
		}

		names = append(names, p.Name)
	}

	return catalog.Preset{}, usagef("Unknown preset %q. Choose 1-%d or one of: %s.",
		raw, len(presets), strings.Join(names, ", "))
}

// resolveIndicator accepts a display name or an upstream code, both case
// insensitive.
func resolveIndicator(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if ind, ok := catalog.LookupIndicator(raw); ok {
		return ind.Name, nil
	}

	var names []string

	for _, ind := range catalog.Indicators() {
		if strings.EqualFold(ind.Name, raw) || strings.EqualFold(ind.Code, raw) {
			return ind.Name, nil
		}

		names = append(names, ind.Name)
	}

	msg := fmt.Sprintf("Unknown indicator %q.", raw)
	if near := catalog.Suggest(raw, names, 1); len(near) > 0 {
		msg += fmt.Sprintf(" Did you mean %q?", near[0])
	}

	return "", usagef("%s Run 'indicomp indicators' for the list.", msg)
}

func parseKind(raw string) (charts.Kind, error) {
	kind := charts.Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, k := range charts.Kinds() {
		if k == kind {
			return k, nil
		}
	}

	names := make([]string, 0, len(charts.Kinds()))
	for _, k := range charts.Kinds() {
		names = append(names, string(k))
	}

	return "", usagef("Unknown chart kind %q. Choose one of: %s.", raw, strings.Join(names, ", "))
}

// query runs the selection and reports skips and notices on stderr.
// Validation problems become usage errors carrying the corrective prompt.
func (c *cli) query(ctx context.Context, a *app.App, sel models.Selection) (*session.Result, error) {
	res, err := a.Session.Run(ctx, sel)

	if res != nil {
		for _, n := range res.Notices {
			fmt.Fprintln(c.stderr, "Note:", n)
		}

		for _, s := range res.Skips {
			fmt.Fprintln(c.stderr, "Skipped:", s)
		}
	}

	switch {
	case err == nil:
		return res, nil
	case session.IsValidation(err):
		return nil, usagef("%s", session.Prompt(err, sel.Scope()))
	case errors.Is(err, session.ErrNoData):
		return nil, errors.New(session.Prompt(err, sel.Scope()))
	default:
		return nil, fmt.Errorf("comparison failed: %w", err)
	}
}

func (c *cli) compareCmd() *cobra.Command {
	var (
		sf      selectionFlags
		kind    string
		pngPath string
		width   int
		height  int
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare entities and print the table and a chart summary",
		Example: `  indicomp compare -e Germany -e Japan -p 1
  indicomp compare --region-of India -e Kerala -e Punjab -i SP.DYN.LE00.IN --chart bar --png kerala.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chartKind, err := parseKind(kind)
			if err != nil {
				return err
			}

			sel, err := sf.selection()
			if err != nil {
				return err
			}

			if err := session.Validate(sel); err != nil {
				return usagef("%s", session.Prompt(err, sel.Scope()))
			}

			a, err := c.bootstrap(false)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := c.query(cmd.Context(), a, sel)
			if err != nil {
				return err
			}

			ds := res.Dataset
			fmt.Fprint(c.stdout, export.Table(ds, tableHeaderWidth))
			fmt.Fprintln(c.stdout)

			for _, q := range session.Quality(ds) {
				fmt.Fprintf(c.stdout, "%s: %s data quality (%d/%d indicators)\n", q.Entity, q.Rating, q.Valid, q.Total)
			}

			r := charts.Build(ds, a.ChartSpec(chartKind, ds.Indicators), a.Palette)
			fmt.Fprintln(c.stdout)
			c.printChartSummary(ds, r)

			if pngPath == "" {
				return nil
			}

			return c.writePNG(pngPath, r, render.Options{Width: width, Height: height})
		},
	}

	sf.register(cmd)
	cmd.Flags().StringVar(&kind, "chart", string(charts.KindBar), "Chart kind: bar, donut, treemap, box, scatter, bubble, radar, line")
	cmd.Flags().StringVar(&pngPath, "png", "", "Render the chart to this PNG file (bar, donut, line, scatter)")
	cmd.Flags().IntVar(&width, "width", render.DefaultWidth, "PNG width in pixels")
	cmd.Flags().IntVar(&height, "height", render.DefaultHeight, "PNG height in pixels")

	return cmd
}

func (c *cli) printChartSummary(ds *models.Dataset, r charts.Result) {
	if r.Empty() {
		fmt.Fprintf(c.stdout, "Chart: %s\n", r.NoData.Reason)

		return
	}

	fmt.Fprintln(c.stdout, r.Title)

	var lines []string

	switch r.Kind {
	case charts.KindBar:
		for _, b := range r.Bars {
			lines = append(lines, fmt.Sprintf("%s: %s", b.Label, b.Text))
		}

		if h, ok := charts.Highlights(ds, ds.Indicators[0]); ok {
			lines = append(lines, h.Summary()...)
		}
	case charts.KindDonut, charts.KindTreemap:
		for _, s := range r.Slices {
			lines = append(lines, fmt.Sprintf("%s: %s", s.Label, utils.FormatPercentage(s.Percent, 1)))
		}

		if s, ok := charts.ShareHighlights(r); ok {
			lines = append(lines, s.Summary()...)
		}
	case charts.KindBox:
		b := r.Box
		lines = append(lines,
			fmt.Sprintf("min %s, Q1 %s, median %s, Q3 %s, max %s",
				utils.FormatNumber(b.Min), utils.FormatNumber(b.Q1), utils.FormatNumber(b.Median),
				utils.FormatNumber(b.Q3), utils.FormatNumber(b.Max)),
			fmt.Sprintf("mean %s, std dev %s, n = %d", utils.FormatNumber(b.Mean), utils.FormatNumber(b.StdDev), b.Count),
		)
	case charts.KindScatter:
		for _, p := range r.Points {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, utils.FormatNumber(p.Y)))
		}
	case charts.KindBubble:
		for _, b := range r.Bubbles {
			lines = append(lines, fmt.Sprintf("%s: x %s, y %s, size %s",
				b.Label, utils.FormatNumber(b.X), utils.FormatNumber(b.Y), utils.FormatNumber(b.Size)))
		}
	case charts.KindRadar, charts.KindLine:
		for _, s := range r.Series {
			lines = append(lines, seriesLine(r.Kind, s))
		}
	}

	for _, l := range lines {
		fmt.Fprintf(c.stdout, "  %s\n", l)
	}
}

func seriesLine(kind charts.Kind, s charts.Series) string {
	if kind == charts.KindLine {
		return fmt.Sprintf("%s: %s", s.Name, utils.FormatNumber(s.Y[len(s.Y)-1]))
	}

	scores := make([]string, 0, len(s.Y))
	for i := 0; i < len(s.Y)-1; i++ {
		scores = append(scores, fmt.Sprintf("%s %.0f", s.Labels[i], s.Y[i]))
	}

	return fmt.Sprintf("%s: %s", s.Name, strings.Join(scores, ", "))
}

func (c *cli) writePNG(path string, r charts.Result, opts render.Options) error {
	var buf bytes.Buffer

	if err := render.PNG(&buf, r, opts); err != nil {
		if errors.Is(err, render.ErrUnsupportedKind) {
			return usagef("Chart kind %s cannot be rendered as PNG. Use bar, donut, line or scatter.", r.Kind)
		}

		return fmt.Errorf("failed to render chart: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	fmt.Fprintf(c.stderr, "Chart written to %s\n", path)

	return nil
}

func (c *cli) exportCmd() *cobra.Command {
	var (
		sf     selectionFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run a comparison and export the dataset as CSV, JSON or XLSX",
		Long: `Run a comparison and export the dataset. Without --output the file is
named after the scope and the current time, for example
countries_comparison_20250601_1430.csv. Use --output - for stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return usagef("Unknown format %q. Choose one of: %s.", format, strings.Join(export.Formats(), ", "))
			}

			sel, err := sf.selection()
			if err != nil {
				return err
			}

			if err := session.Validate(sel); err != nil {
				return usagef("%s", session.Prompt(err, sel.Scope()))
			}

			a, err := c.bootstrap(false)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := c.query(cmd.Context(), a, sel)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := writeExport(&buf, f, res.Dataset); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if output == "-" {
				_, err := c.stdout.Write(buf.Bytes())

				return err
			}

			if output == "" {
				output = export.FileName(res.Dataset.Scope, f, time.Now())
			}

			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}

			fmt.Fprintf(c.stderr, "Exported %d %s to %s\n", res.Dataset.Len(), res.Dataset.Scope.Plural(), output)

			return nil
		},
	}

	sf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatCSV, "Export format: csv, json, xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path, - for stdout")

	return cmd
}

func writeExport(w io.Writer, format string, ds *models.Dataset) error {
	switch format {
	case export.FormatCSV:
		return export.CSV(w, ds)
	case export.FormatJSON:
		return export.JSON(w, ds)
	case export.FormatXLSX:
		return export.XLSX(w, ds)
	default:
		return fmt.Errorf("%w: %q", export.ErrUnknownFormat, format)
	}
}

func (c *cli) insightsCmd() *cobra.Command {
	var (
		sf       selectionFlags
		findings bool
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Run a comparison and ask the language model to narrate it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := sf.selection()
			if err != nil {
				return err
			}

			if err := session.Validate(sel); err != nil {
				return usagef("%s", session.Prompt(err, sel.Scope()))
			}

			a, err := c.bootstrap(false)
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.Narrator.IsAvailable() {
				fmt.Fprintln(c.stderr, a.Narrator.Status())

				return nil
			}

			res, err := c.query(cmd.Context(), a, sel)
			if err != nil {
				return err
			}

			ds := res.Dataset
			label := ds.Scope.Label()

			text, ok := a.Narrator.GenerateInsights(cmd.Context(), ds, ds.Names(), ds.Indicators, label)
			if !ok {
				return errors.New("unable to generate insights at this time")
			}

			fmt.Fprintln(c.stdout, text)

			if !findings {
				return nil
			}

			fmt.Fprintln(c.stdout)
			fmt.Fprintln(c.stdout, "Key findings")

			for _, line := range a.Narrator.KeyFindings(cmd.Context(), ds, ds.Names(), ds.Indicators, label) {
				fmt.Fprintln(c.stdout, line)
			}

			return nil
		},
	}

	sf.register(cmd)
	cmd.Flags().BoolVar(&findings, "findings", false, "Also ask for five bullet-point key findings")

	return cmd
}
