// Package render draws chart adapter results as PNG images.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"indicomp/internal/charts"
	"indicomp/pkg/utils"
)

var (
	ErrNoData          = errors.New("no data to render")
	ErrUnsupportedKind = errors.New("chart kind cannot be rendered as an image")
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

// Options controls the canvas.
type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}

	if h <= 0 {
		h = DefaultHeight
	}

	return w, h
}

var padding = chart.Style{Padding: chart.Box{Top: 30, Left: 16, Right: 16, Bottom: 16}}

// PNG renders r to w. Bar, donut, line and scatter results are supported.
func PNG(w io.Writer, r charts.Result, opts Options) error {
	if r.Empty() {
		return fmt.Errorf("%w: %s", ErrNoData, r.NoData.Reason)
	}

	width, height := opts.size()

	var renderable interface {
		Render(rp chart.RendererProvider, w io.Writer) error
	}

	switch r.Kind {
	case charts.KindBar:
		renderable = barChart(r, width, height)
	case charts.KindDonut:
		renderable = donutChart(r, width, height)
	case charts.KindLine, charts.KindScatter:
		renderable = xyChart(r, width, height)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, r.Kind)
	}

	if err := renderable.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %s chart: %w", r.Kind, err)
	}

	return nil
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func barChart(r charts.Result, width, height int) chart.BarChart {
	bars := make([]chart.Value, len(r.Bars))
	lo, hi := 0.0, 0.0

	for i, b := range r.Bars {
		bars[i] = chart.Value{
			Label: utils.TruncateString(b.Label, 14),
			Value: b.Value,
			Style: chart.Style{FillColor: color(b.Color), StrokeColor: color(b.Color), StrokeWidth: 1},
		}

		lo, hi = min(lo, b.Value), max(hi, b.Value)
	}

	return chart.BarChart{
		Title:      r.Title,
		Background: padding,
		Width:      width,
		Height:     height,
		BarWidth:   40,
		YAxis: chart.YAxis{
			Name:           r.XLabel,
			Range:          valueRange(lo, hi),
			ValueFormatter: formatTick,
		},
		Bars: bars,
	}
}

func donutChart(r charts.Result, width, height int) chart.DonutChart {
	values := make([]chart.Value, len(r.Slices))
	for i, s := range r.Slices {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s %s", s.Label, utils.FormatPercentage(s.Percent, 1)),
			Value: s.Value,
			Style: chart.Style{FillColor: color(s.Color)},
		}
	}

	return chart.DonutChart{
		Title:      r.Title,
		Background: padding,
		Width:      width,
		Height:     height,
		Values:     values,
	}
}

func xyChart(r charts.Result, width, height int) *chart.Chart {
	var (
		series []chart.Series
		xs, ys []float64
	)

	if r.Kind == charts.KindScatter {
		for _, p := range r.Points {
			c := color(p.Color)
			series = append(series, chart.ContinuousSeries{
				Name:    p.Label,
				XValues: []float64{p.X},
				YValues: []float64{p.Y},
				Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 6, DotColor: c, StrokeColor: c},
			})

			xs, ys = append(xs, p.X), append(ys, p.Y)
		}
	} else {
		for _, s := range r.Series {
			c := color(s.Color)
			series = append(series, chart.ContinuousSeries{
				Name:    s.Name,
				XValues: s.X,
				YValues: s.Y,
				Style:   chart.Style{StrokeWidth: 3, StrokeColor: c, DotWidth: 4, DotColor: c},
			})

			xs, ys = append(xs, s.X...), append(ys, s.Y...)
		}
	}

	xlo, xhi := bounds(xs)
	ylo, yhi := bounds(ys)

	ch := &chart.Chart{
		Title:      r.Title,
		Background: padding,
		Width:      width,
		Height:     height,
		XAxis:      chart.XAxis{Name: r.XLabel, Range: valueRange(xlo, xhi)},
		YAxis:      chart.YAxis{Name: r.YLabel, Range: valueRange(ylo, yhi), ValueFormatter: formatTick},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}

	return ch
}

func bounds(vs []float64) (float64, float64) {
	if len(vs) == 0 {
		return 0, 0
	}

	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo, hi = min(lo, v), max(hi, v)
	}

	return lo, hi
}

// valueRange pads a degenerate range so the axis always has extent.
func valueRange(lo, hi float64) *chart.ContinuousRange {
	if hi-lo == 0 {
		lo, hi = lo-1, hi+1
	}

	pad := (hi - lo) * 0.05

	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func formatTick(v any) string {
	if f, ok := v.(float64); ok {
		return utils.FormatNumber(f)
	}

	return fmt.Sprint(v)
}
