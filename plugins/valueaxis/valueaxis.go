// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package valueaxis provides a timeline plugin that labels the vertical
// axis with evenly spaced value ticks derived from the current scale.
//
// Tick labels are formatted for a language, so grouping and decimal
// separators follow the locale:
//
//	valueaxis.New(valueaxis.WithLanguage(language.German), valueaxis.WithPrecision(2))
package valueaxis

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/timeline"
	"github.com/gogpu/timeline/plugins"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Name is the registry name of the plugin.
const Name = "value-axis"

const (
	defaultWidth     = 40
	defaultTicks     = 3
	defaultPrecision = 1
	tickLength       = 4
	fontSize         = 9
)

func init() {
	plugins.Register(Name, func() *timeline.Plugin { return New() })
}

// Option configures the value-axis plugin.
type Option func(*config)

type config struct {
	width     float64
	ticks     int
	precision int
	lang      language.Tag
}

// WithWidth sets the left padding reserved for tick labels.
func WithWidth(width float64) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
	}
}

// WithTicks sets the number of ticks, including the top and bottom ones.
// Values below 2 are ignored.
func WithTicks(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.ticks = n
		}
	}
}

// WithPrecision sets the number of decimals in tick labels.
func WithPrecision(digits int) Option {
	return func(c *config) {
		if digits >= 0 {
			c.precision = digits
		}
	}
}

// WithLanguage sets the locale used to format tick labels.
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.lang = tag
	}
}

type state struct {
	cfg     config
	printer *message.Printer
	face    text.Face
}

// format renders a tick value with the configured locale and precision.
func (s *state) format(v float64) string {
	return s.printer.Sprintf(fmt.Sprintf("%%.%df", s.cfg.precision), v)
}

// New returns a value-axis plugin.
func New(opts ...Option) *timeline.Plugin {
	cfg := config{
		width:     defaultWidth,
		ticks:     defaultTicks,
		precision: defaultPrecision,
		lang:      language.English,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &timeline.Plugin{
		Name: Name,
		NewState: func() any {
			return &state{cfg: cfg, printer: message.NewPrinter(cfg.lang)}
		},
		Hooks: map[timeline.Hook]timeline.HookFunc{
			timeline.HookConstruct: construct,
			timeline.HookDrawAfter: draw,
		},
	}
}

func construct(c *timeline.Chart, s any) error {
	st := s.(*state)
	c.AddPadding(st.cfg.width, 0)

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("valueaxis: load font: %w", err)
	}
	st.face = source.Face(fontSize)
	return nil
}

// tickValues returns the value at each tick, top to bottom, and the
// vertical position of each tick in chart units. A flat series gets a
// single tick on its line.
func tickValues(c *timeline.Chart, ticks int) (values, ys []float64) {
	g := c.Geometry()
	scale := c.Scale()
	if scale.FlatY {
		y := g.DrawableHeight() / 2
		return []float64{scale.Unproject(y, g)}, []float64{y}
	}

	step := g.DrawableHeight() / float64(ticks-1)
	for i := 0; i < ticks; i++ {
		y := float64(i) * step
		values = append(values, scale.Unproject(y, g))
		ys = append(ys, y)
	}
	return values, ys
}

func draw(c *timeline.Chart, s any) error {
	st := s.(*state)
	if st.face == nil {
		return nil
	}

	dc := c.Context()
	left := c.LeftPadding()

	dc.SetColor(c.Foreground().Color())
	dc.SetLineWidth(c.LineWidth())
	dc.SetFont(st.face)

	values, ys := tickValues(c, st.cfg.ticks)
	for i, v := range values {
		dc.DrawLine(left-tickLength, ys[i], left, ys[i])
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("valueaxis: stroke tick: %w", err)
		}

		// Keep the first and last labels inside the surface.
		ay := 0.5
		if len(values) > 1 {
			switch i {
			case 0:
				ay = 0
			case len(values) - 1:
				ay = 1
			}
		}
		dc.DrawStringAnchored(st.format(v), left-tickLength-2, ys[i], 1, ay)
	}
	return nil
}
