package timeline

import "fmt"

// Draw repaints the surface from the last completed projection: background
// fill, a border around the drawable area, and a polyline through every
// projected point. It is a no-op while fewer than two points are projected.
//
// Draw never recomputes. Painting and data arrival are separate triggers so
// the host can throttle repaint independently of sample rate.
func (c *Chart) Draw() error {
	p := c.projection.Load()
	if len(p.Points) < 2 {
		return nil
	}

	if err := c.hooks.dispatch(HookDrawBefore, c); err != nil {
		return err
	}
	if err := c.paint(p.Points); err != nil {
		return err
	}
	return c.hooks.dispatch(HookDrawAfter, c)
}

func (c *Chart) paint(points []ProjectedPoint) error {
	dc := c.dc
	g := c.Geometry()

	dc.ClearPath()
	dc.ClearWithColor(c.opts.background)

	dc.SetColor(c.opts.foreground.Color())
	dc.SetLineWidth(c.opts.lineWidth)
	dc.ClearDash()

	// Border
	dc.DrawRectangle(g.LeftPadding, 0, g.DrawableWidth(), g.DrawableHeight())
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("timeline: stroke border: %w", err)
	}

	dc.MoveTo(points[0].RenderX, points[0].RenderY)
	for _, pt := range points[1:] {
		dc.LineTo(pt.RenderX, pt.RenderY)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("timeline: stroke line: %w", err)
	}
	return nil
}
