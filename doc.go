// Package timeline renders a real-time, incrementally updated line chart.
//
// # Overview
//
// A Chart ingests an append-only Series of time-ordered (time, value)
// samples and renders a windowed, auto-scaled view onto a gg drawing
// context. The pipeline has two independent triggers:
//
//   - Recompute snapshots the live series and projects every snapshot
//     point into screen space.
//   - Draw paints the most recent completed projection.
//
// The host schedules both, typically Recompute after each batch of
// samples and Draw once per display refresh.
//
// # Quick Start
//
//	series := timeline.NewSeries()
//	container := timeline.NewImageContainer(800, 300)
//
//	chart, err := timeline.New(container, series, 300,
//	    timeline.WithLabels("Time", "Value"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	series.Push(timeline.SampleAt(time.Now(), 42))
//	_ = chart.Recompute()
//	_ = chart.Draw()
//
// # Scaling
//
// The horizontal scale assumes the window of maxPoints samples, spaced at
// the snapshot's average spacing, fills the drawable width. The newest
// sample is always flush with the right edge: the chart fills in from the
// right and older samples slide off the left. The vertical scale stretches
// the snapshot's value range over the drawable height.
//
// Samples must be pushed in non-decreasing time order. The chart does not
// sort or validate them.
//
// # Plugins
//
// A Plugin is a set of optional callbacks keyed by Hook. Callbacks run
// synchronously in registration order:
//
//	construct -> [compute:before, compute:after]* and [draw:before, draw:after]*
//	pause / resume on demand
//
// A plugin may reserve padding with AddPadding during construct, and keeps
// its own state in the value returned by its NewState function. A failing
// callback aborts the remaining callbacks of that hook and its error is
// returned from the operation that triggered it.
//
// # Coordinate System
//
// Uses the gg convention: origin at the top-left, Y increasing downward.
// Larger values are drawn higher on the surface.
package timeline

// Version is the current version of the library.
const Version = "0.3.0"
