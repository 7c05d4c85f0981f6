package timeline

import (
	"github.com/gogpu/gg"
	"github.com/samber/lo"
)

// defaultLineWidth is the thin stroke used for the data polyline.
const defaultLineWidth = 0.8

// Option configures a Chart during construction.
//
// Example:
//
//	chart, err := timeline.New(container, series, 300,
//	    timeline.WithLabels("Time", "Random numbers"),
//	    timeline.WithPlugins(axislabel.New()),
//	)
type Option func(*options)

// options holds optional configuration for Chart creation.
type options struct {
	xLabel     string
	yLabel     string
	lineWidth  float64
	plugins    []*Plugin
	foreground gg.RGBA
	background gg.RGBA
	pixelRatio float64
}

// defaultOptions returns the default chart options.
func defaultOptions() options {
	return options{
		lineWidth:  defaultLineWidth,
		foreground: gg.Black,
		background: gg.White,
		pixelRatio: 1,
	}
}

// WithLabels sets the axis label strings. The core never draws them;
// they are read by label plugins through XLabel and YLabel.
func WithLabels(xLabel, yLabel string) Option {
	return func(o *options) {
		o.xLabel = xLabel
		o.yLabel = yLabel
	}
}

// WithLineWidth sets the stroke width of the data line.
// Non-positive widths keep the default.
func WithLineWidth(width float64) Option {
	return func(o *options) {
		if width > 0 {
			o.lineWidth = width
		}
	}
}

// WithPlugins appends plugins in registration order.
// Nil entries are dropped, so optional plugins can be passed inline:
//
//	timeline.WithPlugins(axislabel.New(), maybeTooltip)
func WithPlugins(plugins ...*Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, lo.Compact(plugins)...)
	}
}

// WithColors sets the line and border color and the background fill.
func WithColors(foreground, background gg.RGBA) Option {
	return func(o *options) {
		o.foreground = foreground
		o.background = background
	}
}

// WithPixelRatio sets the device pixel ratio of the surface. Chart
// geometry is expressed in logical units: surface pixels divided by ratio.
func WithPixelRatio(ratio float64) Option {
	return func(o *options) {
		if ratio > 0 {
			o.pixelRatio = ratio
		}
	}
}
