// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package timeaxis provides a timeline plugin that labels the horizontal
// axis with evenly spaced time ticks derived from the current scale.
//
// Sample times are read as Unix milliseconds. Labels default to the local
// clock time; any formatter can be supplied:
//
//	timeaxis.New(timeaxis.WithFormatter(func(t time.Time) string {
//		return t.Format(time.Kitchen)
//	}))
package timeaxis

import (
	"fmt"
	"time"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/timeline"
	"github.com/gogpu/timeline/plugins"
	"golang.org/x/image/font/gofont/goregular"
)

// Name is the registry name of the plugin.
const Name = "time-axis"

const (
	defaultHeight = 14
	defaultTicks  = 3
	tickLength    = 4
	fontSize      = 9
)

func init() {
	plugins.Register(Name, func() *timeline.Plugin { return New() })
}

// Formatter renders a tick time as a label.
type Formatter func(time.Time) string

// ClockTime formats t as a local wall-clock time, e.g. "15:04:05".
func ClockTime(t time.Time) string {
	return t.Local().Format(time.TimeOnly)
}

// Option configures the time-axis plugin.
type Option func(*config)

type config struct {
	height float64
	ticks  int
	format Formatter
}

// WithHeight sets the bottom padding reserved for tick labels.
func WithHeight(height float64) Option {
	return func(c *config) {
		if height > 0 {
			c.height = height
		}
	}
}

// WithTicks sets the number of ticks, including the left and right ones.
// Values below 2 are ignored.
func WithTicks(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.ticks = n
		}
	}
}

// WithFormatter sets the label formatter. Nil restores ClockTime.
func WithFormatter(f Formatter) Option {
	return func(c *config) {
		if f == nil {
			f = ClockTime
		}
		c.format = f
	}
}

type state struct {
	cfg  config
	face text.Face
}

// New returns a time-axis plugin.
func New(opts ...Option) *timeline.Plugin {
	cfg := config{
		height: defaultHeight,
		ticks:  defaultTicks,
		format: ClockTime,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &timeline.Plugin{
		Name:     Name,
		NewState: func() any { return &state{cfg: cfg} },
		Hooks: map[timeline.Hook]timeline.HookFunc{
			timeline.HookConstruct: construct,
			timeline.HookDrawAfter: draw,
		},
	}
}

func construct(c *timeline.Chart, s any) error {
	st := s.(*state)
	c.AddPadding(0, st.cfg.height)

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("timeaxis: load font: %w", err)
	}
	st.face = source.Face(fontSize)
	return nil
}

// tickTimes returns the sample time at each tick, left to right, and the
// horizontal position of each tick in chart units. When every sample
// shares one time a single tick sits on the right edge.
func tickTimes(c *timeline.Chart, ticks int) (times, xs []float64) {
	g := c.Geometry()
	scale := c.Scale()
	right := g.LeftPadding + g.DrawableWidth()
	if scale.FlatX {
		return []float64{scale.UnprojectX(right, g)}, []float64{right}
	}

	step := g.DrawableWidth() / float64(ticks-1)
	for i := 0; i < ticks; i++ {
		x := g.LeftPadding + float64(i)*step
		times = append(times, scale.UnprojectX(x, g))
		xs = append(xs, x)
	}
	return times, xs
}

func draw(c *timeline.Chart, s any) error {
	st := s.(*state)
	if st.face == nil {
		return nil
	}

	dc := c.Context()
	bottom := c.DrawableHeight()

	dc.SetColor(c.Foreground().Color())
	dc.SetLineWidth(c.LineWidth())
	dc.SetFont(st.face)

	times, xs := tickTimes(c, st.cfg.ticks)
	for i, t := range times {
		dc.DrawLine(xs[i], bottom, xs[i], bottom+tickLength)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("timeaxis: stroke tick: %w", err)
		}

		// Keep the first and last labels inside the surface.
		ax := 0.5
		switch {
		case len(times) == 1 || i == len(times)-1:
			ax = 1
		case i == 0:
			ax = 0
		}
		label := st.cfg.format(timeline.Sample{Time: t}.Timestamp())
		dc.DrawStringAnchored(label, xs[i], bottom+tickLength, ax, 0)
	}
	return nil
}
