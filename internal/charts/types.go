// Package charts renders the dashboard charts as inline SVG.
package charts

// BarOpts customises the horizontal bar renderer.
type BarOpts struct {
	Title       string
	Description string
	BarLabel    string
	MarkerLabel string
	BarColor    string
	MarkerColor string
	AxisColor   string
	GridColor   string
	Padding     float64
	LabelWidth  float64
	TickCount   int
}

// Defaults for the dashboard charts.
const (
	DefaultWidth      = 720
	DefaultHeight     = 240
	DefaultPadding    = 24.0
	DefaultLabelWidth = 200.0
	DefaultTicks      = 6
)
