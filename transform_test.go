package timeline

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestGeometryDrawable(t *testing.T) {
	g := Geometry{Width: 200, Height: 100, LeftPadding: 15, BottomPadding: 10}
	if got := g.DrawableWidth(); got != 185 {
		t.Errorf("DrawableWidth() = %v, want 185", got)
	}
	if got := g.DrawableHeight(); got != 90 {
		t.Errorf("DrawableHeight() = %v, want 90", got)
	}
}

func TestComputeScaleTooFewPoints(t *testing.T) {
	g := Geometry{Width: 100, Height: 50}
	for _, snapshot := range [][]Sample{nil, {{Time: 5, Value: 3}}} {
		if got := ComputeScale(snapshot, 10, g); got != IdentityScale {
			t.Errorf("ComputeScale(%d points) = %+v, want IdentityScale", len(snapshot), got)
		}
	}
}

func TestComputeScaleTwoPoints(t *testing.T) {
	g := Geometry{Width: 100, Height: 50}
	snapshot := []Sample{{Time: 0, Value: 0}, {Time: 1000, Value: 10}}

	s := ComputeScale(snapshot, 2, g)
	if !approx(s.XMultiplier, 0.1) {
		t.Errorf("XMultiplier = %v, want 0.1", s.XMultiplier)
	}
	if !approx(s.YMultiplier, 5) {
		t.Errorf("YMultiplier = %v, want 5", s.YMultiplier)
	}
	if s.XOffset != 0 || s.YOffset != 0 {
		t.Errorf("offsets = (%v, %v), want (0, 0)", s.XOffset, s.YOffset)
	}

	p := ProjectAll(snapshot, 2, g)
	want := [][2]float64{{0, 50}, {100, 0}}
	for i, pt := range p.Points {
		if !approx(pt.RenderX, want[i][0]) || !approx(pt.RenderY, want[i][1]) {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, pt.RenderX, pt.RenderY, want[i][0], want[i][1])
		}
		if pt.Sample != snapshot[i] {
			t.Errorf("point %d sample = %+v, want %+v", i, pt.Sample, snapshot[i])
		}
	}
}

func TestComputeScaleUniformSpacing(t *testing.T) {
	g := Geometry{Width: 640, Height: 480, LeftPadding: 40}
	const (
		maxPoints = 8
		step      = 25.0
	)
	snapshot := make([]Sample, maxPoints)
	for i := range snapshot {
		snapshot[i] = Sample{Time: 1000 + float64(i)*step, Value: float64(i % 3)}
	}

	// Average spacing is the sum of gaps divided by the point count.
	spacing := float64(maxPoints-1) * step / maxPoints
	want := g.DrawableWidth() / (maxPoints * spacing)

	s := ComputeScale(snapshot, maxPoints, g)
	if !approx(s.XMultiplier, want) {
		t.Errorf("XMultiplier = %v, want %v", s.XMultiplier, want)
	}

	// Adding points at the same spacing keeps the multiplier stable.
	for i := 0; i < 4; i++ {
		snapshot = append(snapshot, Sample{Time: snapshot[len(snapshot)-1].Time + step})
	}
	grown := ComputeScale(snapshot, maxPoints, g)
	spacing = float64(len(snapshot)-1) * step / float64(len(snapshot))
	if want := g.DrawableWidth() / (maxPoints * spacing); !approx(grown.XMultiplier, want) {
		t.Errorf("grown XMultiplier = %v, want %v", grown.XMultiplier, want)
	}
}

func TestProjectAllRightAnchored(t *testing.T) {
	g := Geometry{Width: 300, Height: 120, LeftPadding: 15, BottomPadding: 10}
	times := []float64{0, 3, 10, 12, 31, 32, 50, 77, 78, 100}
	const maxPoints = 10

	for k := 2; k <= maxPoints; k++ {
		snapshot := make([]Sample, k)
		for i := range snapshot {
			snapshot[i] = Sample{Time: times[i], Value: float64(i * i)}
		}
		p := ProjectAll(snapshot, maxPoints, g)
		last := p.Points[len(p.Points)-1]
		if want := g.LeftPadding + g.DrawableWidth(); !approx(last.RenderX, want) {
			t.Errorf("k=%d: last RenderX = %v, want %v", k, last.RenderX, want)
		}
	}
}

func TestProjectAllVerticalBounds(t *testing.T) {
	g := Geometry{Width: 400, Height: 200, LeftPadding: 15, BottomPadding: 10}
	rng := rand.New(rand.NewPCG(1, 2))

	snapshot := make([]Sample, 500)
	var tm, v float64
	for i := range snapshot {
		tm += rng.Float64() * 50
		v += rng.NormFloat64()
		snapshot[i] = Sample{Time: tm, Value: v}
	}

	p := ProjectAll(snapshot, 300, g)
	if len(p.Points) != len(snapshot) {
		t.Fatalf("len(Points) = %d, want %d", len(p.Points), len(snapshot))
	}
	for i, pt := range p.Points {
		if pt.RenderY < -epsilon || pt.RenderY > g.DrawableHeight()+epsilon {
			t.Errorf("point %d RenderY = %v, outside [0, %v]", i, pt.RenderY, g.DrawableHeight())
		}
	}
}

func TestProjectAllSlidesOldestOffView(t *testing.T) {
	g := Geometry{Width: 100, Height: 50}
	snapshot := []Sample{{Time: 0, Value: 0}, {Time: 1000, Value: 10}, {Time: 1500, Value: 5}}

	p := ProjectAll(snapshot, 2, g)
	want := []float64{-50, 50, 100}
	for i, pt := range p.Points {
		if !approx(pt.RenderX, want[i]) {
			t.Errorf("point %d RenderX = %v, want %v", i, pt.RenderX, want[i])
		}
	}
	if p.Points[0].RenderX >= g.LeftPadding {
		t.Errorf("oldest point should be left of the drawable area, got x=%v", p.Points[0].RenderX)
	}
}

func TestProjectAllFlatValues(t *testing.T) {
	g := Geometry{Width: 100, Height: 60, BottomPadding: 10}
	snapshot := []Sample{{Time: 0, Value: 7}, {Time: 10, Value: 7}, {Time: 20, Value: 7}}

	p := ProjectAll(snapshot, 3, g)
	for i, pt := range p.Points {
		if math.IsNaN(pt.RenderY) || math.IsInf(pt.RenderY, 0) {
			t.Fatalf("point %d RenderY is not finite: %v", i, pt.RenderY)
		}
		if !approx(pt.RenderY, 25) {
			t.Errorf("point %d RenderY = %v, want 25", i, pt.RenderY)
		}
	}
	if !p.Scale.FlatY || p.Scale.FlatX {
		t.Errorf("FlatX, FlatY = %v, %v, want false, true", p.Scale.FlatX, p.Scale.FlatY)
	}
	if got := p.Scale.Unproject(25, g); !approx(got, 7) {
		t.Errorf("Unproject(25) = %v, want 7", got)
	}
}

func TestProjectAllZeroSpacing(t *testing.T) {
	g := Geometry{Width: 100, Height: 50, LeftPadding: 20}
	snapshot := []Sample{{Time: 42, Value: 1}, {Time: 42, Value: 2}}

	p := ProjectAll(snapshot, 5, g)
	for i, pt := range p.Points {
		if !approx(pt.RenderX, 100) {
			t.Errorf("point %d RenderX = %v, want 100", i, pt.RenderX)
		}
	}
	if !p.Scale.FlatX || p.Scale.FlatY {
		t.Errorf("FlatX, FlatY = %v, %v, want true, false", p.Scale.FlatX, p.Scale.FlatY)
	}
	if got := p.Scale.UnprojectX(100, g); !approx(got, 42) {
		t.Errorf("UnprojectX(100) = %v, want 42", got)
	}
}

func TestScaleUnproject(t *testing.T) {
	g := Geometry{Width: 100, Height: 80, BottomPadding: 10}
	snapshot := []Sample{{Time: 0, Value: -3}, {Time: 1, Value: 4}, {Time: 2, Value: 11}}
	s := ComputeScale(snapshot, 3, g)

	for _, p := range snapshot {
		y := s.Project(p, g).RenderY
		if got := s.Unproject(y, g); !approx(got, p.Value) {
			t.Errorf("Unproject(%v) = %v, want %v", y, got, p.Value)
		}
	}
}

func TestScaleUnprojectX(t *testing.T) {
	g := Geometry{Width: 240, Height: 60, LeftPadding: 40}
	snapshot := []Sample{{Time: 1000, Value: 0}, {Time: 1030, Value: 1}, {Time: 1050, Value: 5}}
	s := ComputeScale(snapshot, 4, g)

	for _, p := range snapshot {
		x := s.Project(p, g).RenderX
		if got := s.UnprojectX(x, g); !approx(got, p.Time) {
			t.Errorf("UnprojectX(%v) = %v, want %v", x, got, p.Time)
		}
	}
	if got := s.UnprojectX(g.Width, g); !approx(got, 1050) {
		t.Errorf("UnprojectX(right edge) = %v, want 1050", got)
	}
}
