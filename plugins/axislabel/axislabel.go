// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package axislabel provides a timeline plugin that draws the chart's
// X and Y label strings in reserved padding along the bottom and left edges.
package axislabel

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/timeline"
	"github.com/gogpu/timeline/plugins"
	"golang.org/x/image/font/gofont/goregular"
)

// Name is the registry name of the plugin.
const Name = "axis-labels"

const (
	leftPadding   = 15
	bottomPadding = 10
	fontSize      = 10
	margin        = 2
)

func init() {
	plugins.Register(Name, New)
}

type state struct {
	face text.Face
}

// New returns an axis-label plugin. It reserves 15 units of left padding
// and 10 of bottom padding at construction, and draws the labels after
// every repaint.
func New() *timeline.Plugin {
	return &timeline.Plugin{
		Name:     Name,
		NewState: func() any { return &state{} },
		Hooks: map[timeline.Hook]timeline.HookFunc{
			timeline.HookConstruct: construct,
			timeline.HookDrawAfter: draw,
		},
	}
}

func construct(c *timeline.Chart, s any) error {
	c.AddPadding(leftPadding, bottomPadding)

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("axislabel: load font: %w", err)
	}
	s.(*state).face = source.Face(fontSize)
	return nil
}

// draw renders labels in chart units. The anchor ay is 0 for the top of
// the text and 1 for its bottom.
func draw(c *timeline.Chart, s any) error {
	st := s.(*state)
	if st.face == nil {
		return nil
	}

	dc := c.Context()
	dc.SetFont(st.face)
	dc.SetColor(c.Foreground().Color())

	if label := c.XLabel(); label != "" {
		dc.DrawStringAnchored(label, c.Width()/2, c.Height()-margin, 0.5, 1)
	}

	// Y label runes are stacked top to bottom, centered on the drawable height.
	if label := []rune(c.YLabel()); len(label) > 0 {
		_, lineHeight := dc.MeasureString("M")
		x := float64(leftPadding) / 2
		y := c.DrawableHeight()/2 - lineHeight*float64(len(label))/2
		for _, ch := range label {
			dc.DrawStringAnchored(string(ch), x, y, 0.5, 0)
			y += lineHeight
		}
	}
	return nil
}
