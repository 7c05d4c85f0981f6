// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chartcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/timeline"
)

// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
var ErrCanvasClosed = errors.New("chartcanvas: canvas is closed")

// Canvas binds a timeline chart to a GPU window canvas.
type Canvas struct {
	canvas *ggcanvas.Canvas
	chart  *timeline.Chart
	closed bool
}

// New creates a width x height canvas on the provider's device and a chart
// painting data onto it. opts are passed to timeline.New.
func New(provider gpucontext.DeviceProvider, width, height int, data *timeline.Series, maxPoints int, opts ...timeline.Option) (*Canvas, error) {
	canvas, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("chartcanvas: %w", err)
	}

	chart, err := timeline.New(canvas, data, maxPoints, opts...)
	if err != nil {
		_ = canvas.Close()
		return nil, err
	}

	return &Canvas{canvas: canvas, chart: chart}, nil
}

// Chart returns the hosted chart.
func (c *Canvas) Chart() *timeline.Chart {
	return c.chart
}

// Canvas returns the underlying GPU canvas.
func (c *Canvas) Canvas() *ggcanvas.Canvas {
	return c.canvas
}

// Resize resizes the canvas and notifies the chart, which re-projects the
// current snapshot to the new geometry.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := c.canvas.Resize(width, height); err != nil {
		return err
	}
	timeline.Logger().Debug("chartcanvas: resized", "width", width, "height", height)
	return c.chart.NotifyResize()
}

// Paint draws the chart's latest projection and marks the canvas for
// upload. It does not recompute.
func (c *Canvas) Paint() error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := c.chart.Draw(); err != nil {
		return err
	}
	c.canvas.MarkDirty()
	return nil
}

// RenderTo paints the chart and draws the canvas texture to dc.
// dc should come from gogpu.Context.AsTextureDrawer().
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	if err := c.Paint(); err != nil {
		return err
	}
	return c.canvas.RenderTo(dc)
}

// Close releases the GPU canvas. The chart must not be used afterwards.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.canvas.Close()
}
