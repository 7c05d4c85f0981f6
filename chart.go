package timeline

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// Chart renders a windowed, auto-scaled line chart of a live Series.
//
// The chart keeps three data tiers: the live Series (caller-owned), the
// snapshot taken by the last Recompute, and the projected points computed
// from that snapshot. Recompute and Draw are independent triggers: Draw
// always paints the last completed projection, which may be stale relative
// to the live Series.
//
// Chart is NOT safe for concurrent use, with two exceptions: the Series may
// be pushed to from another goroutine, and the projection is published
// atomically so Draw never observes a partial pass.
type Chart struct {
	container Container
	dc        *gg.Context
	data      *Series
	maxPoints int
	opts      options

	width         float64
	height        float64
	leftPadding   float64
	bottomPadding float64
	paused        bool

	saved      []Sample
	projection atomic.Pointer[Projection]
	hooks      dispatcher
}

// New creates a chart that paints data onto the container's surface.
//
// maxPoints is the window size: the number of average-spaced samples
// that fill the drawable width. The series is retained by reference.
//
// New returns ErrSurfaceUnavailable if the container yields no drawing
// context. Plugins are registered in order, one projection pass runs if
// the series already holds at least two samples, and the construct hook
// fires last. A failing hook aborts construction.
func New(container Container, data *Series, maxPoints int, opts ...Option) (*Chart, error) {
	if container == nil {
		return nil, ErrSurfaceUnavailable
	}
	dc := container.Context()
	if dc == nil {
		return nil, ErrSurfaceUnavailable
	}
	if data == nil {
		return nil, ErrNilSeries
	}
	if maxPoints < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxPoints, maxPoints)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chart{
		container: container,
		dc:        dc,
		data:      data,
		maxPoints: maxPoints,
		opts:      o,
	}
	c.projection.Store(&Projection{Scale: IdentityScale})

	for _, p := range o.plugins {
		c.hooks.register(p)
	}

	c.updateGeometry()

	if err := c.Recompute(); err != nil {
		return nil, err
	}
	if err := c.hooks.dispatch(HookConstruct, c); err != nil {
		return nil, err
	}

	Logger().Info("timeline: chart constructed",
		"width", c.width,
		"height", c.height,
		"max_points", maxPoints,
		"plugins", len(o.plugins))

	return c, nil
}

// updateGeometry re-reads the surface size and resets the context
// transform to the pixel ratio.
func (c *Chart) updateGeometry() {
	r := c.opts.pixelRatio
	c.dc.Identity()
	c.dc.Scale(r, r)
	c.width = float64(c.dc.Width()) / r
	c.height = float64(c.dc.Height()) / r
}

// NotifyResize re-derives geometry after the host resized the surface and
// re-projects the current snapshot. No new snapshot is taken. While paused
// only the geometry is updated; the frozen projection is kept until Resume.
//
// The host installs and tears down its own resize subscription and calls
// NotifyResize from it.
func (c *Chart) NotifyResize() error {
	dc := c.container.Context()
	if dc == nil {
		return ErrSurfaceUnavailable
	}
	c.dc = dc
	c.updateGeometry()

	Logger().Debug("timeline: resized", "width", c.width, "height", c.height)

	if c.paused || len(c.saved) < 2 {
		return nil
	}
	return c.compute()
}

// Pause freezes the projection. Recompute is a no-op until Resume.
func (c *Chart) Pause() error {
	c.paused = true
	Logger().Info("timeline: paused")
	return c.hooks.dispatch(HookPause, c)
}

// Resume clears the pause flag, recomputes once from the live series,
// then fires the resume hook.
func (c *Chart) Resume() error {
	c.paused = false
	Logger().Info("timeline: resumed", "samples", c.data.Len())
	if err := c.Recompute(); err != nil {
		return err
	}
	return c.hooks.dispatch(HookResume, c)
}

// Recompute snapshots the live series and projects it. It is a no-op while
// paused or while the series holds fewer than two samples.
//
// Call Recompute after pushing to the series; Draw does not do it for you.
func (c *Chart) Recompute() error {
	if c.paused {
		Logger().Debug("timeline: recompute skipped", "reason", "paused")
		return nil
	}
	if c.data.Len() < 2 {
		Logger().Debug("timeline: recompute skipped", "reason", "not enough samples", "samples", c.data.Len())
		return nil
	}

	c.saved = c.data.Samples()
	return c.compute()
}

// compute projects the saved snapshot between the compute hooks.
func (c *Chart) compute() error {
	if err := c.hooks.dispatch(HookComputeBefore, c); err != nil {
		return err
	}

	p := ProjectAll(c.saved, c.maxPoints, c.Geometry())
	c.projection.Store(&p)

	Logger().Debug("timeline: projected",
		"points", len(p.Points),
		"x_multiplier", p.Scale.XMultiplier,
		"y_multiplier", p.Scale.YMultiplier)

	return c.hooks.dispatch(HookComputeAfter, c)
}

// Data returns the live series.
func (c *Chart) Data() *Series {
	return c.data
}

// Snapshot returns the samples captured by the last Recompute.
// The slice must not be modified.
func (c *Chart) Snapshot() []Sample {
	return c.saved
}

// Projected returns the points of the last completed projection pass.
// The slice must not be modified.
func (c *Chart) Projected() []ProjectedPoint {
	return c.projection.Load().Points
}

// Scale returns the scale used by the last completed projection pass.
func (c *Chart) Scale() Scale {
	return c.projection.Load().Scale
}

// Paused reports whether the chart is paused.
func (c *Chart) Paused() bool {
	return c.paused
}

// MaxPoints returns the window size.
func (c *Chart) MaxPoints() int {
	return c.maxPoints
}

// XLabel returns the horizontal axis label.
func (c *Chart) XLabel() string {
	return c.opts.xLabel
}

// YLabel returns the vertical axis label.
func (c *Chart) YLabel() string {
	return c.opts.yLabel
}

// LineWidth returns the stroke width of the data line.
func (c *Chart) LineWidth() float64 {
	return c.opts.lineWidth
}

// Foreground returns the line and border color.
func (c *Chart) Foreground() gg.RGBA {
	return c.opts.foreground
}

// PixelRatio returns the device pixel ratio set with WithPixelRatio.
func (c *Chart) PixelRatio() float64 {
	return c.opts.pixelRatio
}

// Context returns the drawing context. Plugins draw on it from draw hooks.
func (c *Chart) Context() *gg.Context {
	return c.dc
}

// Geometry returns the current surface size and padding.
func (c *Chart) Geometry() Geometry {
	return Geometry{
		Width:         c.width,
		Height:        c.height,
		LeftPadding:   c.leftPadding,
		BottomPadding: c.bottomPadding,
	}
}

// Width returns the logical surface width.
func (c *Chart) Width() float64 { return c.width }

// Height returns the logical surface height.
func (c *Chart) Height() float64 { return c.height }

// DrawableWidth returns the width minus the left padding.
func (c *Chart) DrawableWidth() float64 { return c.width - c.leftPadding }

// DrawableHeight returns the height minus the bottom padding.
func (c *Chart) DrawableHeight() float64 { return c.height - c.bottomPadding }

// LeftPadding returns the space reserved on the left edge.
func (c *Chart) LeftPadding() float64 { return c.leftPadding }

// BottomPadding returns the space reserved on the bottom edge.
func (c *Chart) BottomPadding() float64 { return c.bottomPadding }

// AddPadding reserves additional space on the left and bottom edges.
// Plugins call it from their construct hook. The new padding applies
// from the next projection pass.
func (c *Chart) AddPadding(left, bottom float64) {
	c.leftPadding += left
	c.bottomPadding += bottom
}
