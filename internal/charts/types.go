// Package charts turns a sparse Dataset into the structure each chart kind
// needs. Every adapter is a pure function: the same input always yields the
// same Result, and insufficient input yields a NoData result instead of an
// error.
package charts

// Kind identifies a chart type.
type Kind string

// Supported chart kinds.
const (
	KindBar     Kind = "bar"
	KindDonut   Kind = "donut"
	KindTreemap Kind = "treemap"
	KindBox     Kind = "box"
	KindScatter Kind = "scatter"
	KindBubble  Kind = "bubble"
	KindRadar   Kind = "radar"
	KindLine    Kind = "line"
)

// Kinds returns every supported chart kind in menu order.
func Kinds() []Kind {
	return []Kind{KindBar, KindDonut, KindTreemap, KindBox, KindScatter, KindBubble, KindRadar, KindLine}
}

// ChartSpec selects a chart kind and the indicators it plots. Bubble charts
// need three indicators (x, y, size); radar charts take up to RadarLimit;
// every other kind uses the first.
type ChartSpec struct {
	Kind       Kind
	Indicators []string
	RadarLimit int
}

// NoData explains why a chart cannot be drawn.
type NoData struct {
	Reason string
}

// BarItem is one bar of a ranked bar chart.
type BarItem struct {
	Label string
	Text  string
	Color string
	Value float64
}

// Slice is one part of a share chart.
type Slice struct {
	Label   string
	Color   string
	Value   float64
	Percent float64
}

// Point is a labeled position on a 2-D chart.
type Point struct {
	Label string
	Color string
	X     float64
	Y     float64
}

// BoxStats is the five-number summary of one indicator plus the points it
// was computed from.
type BoxStats struct {
	Points []Point
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
	StdDev float64
	Count  int
}

// Bubble is one entity on a bubble chart.
type Bubble struct {
	Label    string
	Color    string
	X        float64
	Y        float64
	Size     float64
	Diameter float64
}

// Series is a named polyline, used by radar and line charts.
type Series struct {
	Name   string
	Color  string
	Labels []string
	X      []float64
	Y      []float64
}

// Result is the chart-ready structure produced by an adapter. Only the
// fields relevant to Kind are populated.
type Result struct {
	NoData  *NoData
	Box     *BoxStats
	Kind    Kind
	Title   string
	XLabel  string
	YLabel  string
	Bars    []BarItem
	Slices  []Slice
	Points  []Point
	Bubbles []Bubble
	Series  []Series
}

// Empty reports whether the result carries the no-data sentinel.
func (r Result) Empty() bool {
	return r.NoData != nil
}

func noData(kind Kind, reason string) Result {
	return Result{Kind: kind, NoData: &NoData{Reason: reason}}
}
