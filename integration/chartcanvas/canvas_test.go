// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chartcanvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/timeline"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct{}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "mock", Type: gpucontext.AdapterTypeSoftware}
}

var _ gpucontext.DeviceProvider = (*mockProvider)(nil)

// mockTexture implements gpucontext.Texture and gpucontext.TextureUpdater.
type mockTexture struct {
	width, height int
	data          []byte
	updated       int
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }

func (m *mockTexture) UpdateData(data []byte) error {
	m.data = append(m.data[:0], data...)
	m.updated++
	return nil
}

func (m *mockTexture) Destroy() {}

// mockRenderer implements gpucontext.TextureCreator.
type mockRenderer struct {
	textures []*mockTexture
}

func (m *mockRenderer) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	tex := &mockTexture{width: width, height: height, data: append([]byte(nil), data...)}
	m.textures = append(m.textures, tex)
	return tex, nil
}

// mockDrawContext implements gpucontext.TextureDrawer and records draws.
type mockDrawContext struct {
	renderer  *mockRenderer
	drawCount int
}

func (m *mockDrawContext) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawCount++
	return nil
}

func (m *mockDrawContext) TextureCreator() gpucontext.TextureCreator {
	return m.renderer
}

var (
	_ gpucontext.TextureDrawer  = (*mockDrawContext)(nil)
	_ gpucontext.TextureCreator = (*mockRenderer)(nil)
	_ gpucontext.Texture        = (*mockTexture)(nil)
	_ gpucontext.TextureUpdater = (*mockTexture)(nil)
)

func newSeries() *timeline.Series {
	return timeline.NewSeries(
		timeline.Sample{Time: 0, Value: 0},
		timeline.Sample{Time: 1000, Value: 10},
	)
}

func TestNew(t *testing.T) {
	c, err := New(&mockProvider{}, 100, 50, newSeries(), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if c.Chart().Width() != 100 || c.Chart().Height() != 50 {
		t.Errorf("chart size = %vx%v, want 100x50", c.Chart().Width(), c.Chart().Height())
	}
	if len(c.Chart().Projected()) != 2 {
		t.Errorf("len(Projected()) = %d, want 2", len(c.Chart().Projected()))
	}
	if c.Canvas().Context() != c.Chart().Context() {
		t.Error("chart does not paint onto the canvas context")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, 100, 50, newSeries(), 2); !errors.Is(err, ggcanvas.ErrNilProvider) {
		t.Errorf("New(nil provider) error = %v, want ErrNilProvider", err)
	}
	if _, err := New(&mockProvider{}, 0, 50, newSeries(), 2); !errors.Is(err, ggcanvas.ErrInvalidDimensions) {
		t.Errorf("New(zero width) error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := New(&mockProvider{}, 100, 50, nil, 2); !errors.Is(err, timeline.ErrNilSeries) {
		t.Errorf("New(nil series) error = %v, want ErrNilSeries", err)
	}
}

func TestResize(t *testing.T) {
	c, err := New(&mockProvider{}, 100, 50, newSeries(), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if err := c.Resize(300, 60); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if c.Chart().Width() != 300 || c.Chart().Height() != 60 {
		t.Errorf("chart size = %vx%v, want 300x60", c.Chart().Width(), c.Chart().Height())
	}
	last := c.Chart().Projected()[1]
	if last.RenderX != 300 {
		t.Errorf("last RenderX = %v, want 300", last.RenderX)
	}
}

func TestPaintMarksDirty(t *testing.T) {
	c, err := New(&mockProvider{}, 100, 50, newSeries(), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if _, err := c.Canvas().Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if c.Canvas().IsDirty() {
		t.Fatal("canvas dirty after Flush")
	}

	if err := c.Paint(); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if !c.Canvas().IsDirty() {
		t.Error("IsDirty() = false after Paint")
	}
}

func TestRenderTo(t *testing.T) {
	c, err := New(&mockProvider{}, 100, 50, newSeries(), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	renderer := &mockRenderer{}
	dc := &mockDrawContext{renderer: renderer}
	if err := c.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if len(renderer.textures) != 1 {
		t.Errorf("textures created = %d, want 1", len(renderer.textures))
	}
	if dc.drawCount != 1 {
		t.Errorf("DrawTexture called %d times, want 1", dc.drawCount)
	}
}

func TestClose(t *testing.T) {
	c, err := New(&mockProvider{}, 100, 50, newSeries(), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := c.Paint(); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Paint() after Close error = %v, want ErrCanvasClosed", err)
	}
	if err := c.Resize(10, 10); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Resize() after Close error = %v, want ErrCanvasClosed", err)
	}
	if err := c.Chart().NotifyResize(); !errors.Is(err, timeline.ErrSurfaceUnavailable) {
		t.Errorf("NotifyResize() after Close error = %v, want ErrSurfaceUnavailable", err)
	}
}
