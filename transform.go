package timeline

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

// Geometry is the chart's logical surface size and the padding reserved
// on the left and bottom edges. The drawable area is what remains.
type Geometry struct {
	Width         float64
	Height        float64
	LeftPadding   float64
	BottomPadding float64
}

// DrawableWidth returns the surface width minus the left padding.
func (g Geometry) DrawableWidth() float64 {
	return g.Width - g.LeftPadding
}

// DrawableHeight returns the surface height minus the bottom padding.
func (g Geometry) DrawableHeight() float64 {
	return g.Height - g.BottomPadding
}

// Scale maps sample coordinates to screen coordinates:
//
//	renderX = LeftPadding + (Time + XOffset) * XMultiplier
//	renderY = DrawableHeight - (Value + YOffset) * YMultiplier
//
// FlatX and FlatY mark the degenerate cases: all samples share one time
// or one value, and the corresponding multiplier is 1.
type Scale struct {
	XOffset     float64
	XMultiplier float64
	YOffset     float64
	YMultiplier float64
	FlatX       bool
	FlatY       bool
}

// IdentityScale is used when there are too few points to derive a scale.
var IdentityScale = Scale{XMultiplier: 1, YMultiplier: 1}

// Projection is the result of one projection pass.
type Projection struct {
	Scale  Scale
	Points []ProjectedPoint
}

// ComputeScale derives offsets and multipliers for a time-ordered snapshot.
//
// The horizontal scale assumes maxPoints samples at the snapshot's average
// spacing exactly fill the drawable width, and anchors the newest sample to
// the right edge. The vertical scale stretches the value range over the
// drawable height with the minimum at the bottom.
//
// Fewer than two points yield IdentityScale. A flat value range places
// every point on a line centered vertically; zero average spacing places
// every point on the right edge.
func ComputeScale(snapshot []Sample, maxPoints int, g Geometry) Scale {
	if len(snapshot) < 2 {
		return IdentityScale
	}

	count := float64(len(snapshot))
	window := float64(maxPoints)

	var span float64
	for i := 1; i < len(snapshot); i++ {
		span += snapshot[i].Time - snapshot[i-1].Time
	}
	spacing := span / count

	var s Scale
	if spacing != 0 {
		s.XMultiplier = g.DrawableWidth() / (window * spacing)
		s.XOffset = (window-count)*spacing - snapshot[0].Time
	} else {
		s.XMultiplier = 1
		s.XOffset = g.DrawableWidth() - snapshot[0].Time
		s.FlatX = true
	}

	values := lo.Map(snapshot, func(p Sample, _ int) float64 { return p.Value })
	minValue, maxValue := floats.Min(values), floats.Max(values)
	if maxValue > minValue {
		s.YMultiplier = g.DrawableHeight() / (maxValue - minValue)
		s.YOffset = -minValue
	} else {
		s.YMultiplier = 1
		s.YOffset = g.DrawableHeight()/2 - minValue
		s.FlatY = true
	}

	return s
}

// Project maps a single sample to screen space.
func (s Scale) Project(p Sample, g Geometry) ProjectedPoint {
	return ProjectedPoint{
		Sample:  p,
		RenderX: g.LeftPadding + (p.Time+s.XOffset)*s.XMultiplier,
		RenderY: g.DrawableHeight() - (p.Value+s.YOffset)*s.YMultiplier,
	}
}

// Unproject maps a vertical screen position back to a value.
// It is the inverse of the vertical half of Project.
func (s Scale) Unproject(renderY float64, g Geometry) float64 {
	return (g.DrawableHeight()-renderY)/s.YMultiplier - s.YOffset
}

// UnprojectX maps a horizontal screen position back to a time.
// It is the inverse of the horizontal half of Project.
func (s Scale) UnprojectX(renderX float64, g Geometry) float64 {
	return (renderX-g.LeftPadding)/s.XMultiplier - s.XOffset
}

// ProjectAll computes the scale for snapshot and projects every point.
// The returned points are a fresh slice in snapshot order.
func ProjectAll(snapshot []Sample, maxPoints int, g Geometry) Projection {
	scale := ComputeScale(snapshot, maxPoints, g)
	points := make([]ProjectedPoint, len(snapshot))
	for i, p := range snapshot {
		points[i] = scale.Project(p, g)
	}
	return Projection{Scale: scale, Points: points}
}
