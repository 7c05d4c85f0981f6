package timeline

import (
	"github.com/gogpu/gg"
)

// Container hosts the drawing surface a Chart paints onto.
//
// Context returns nil when no drawable context can be acquired, for
// example after the host has closed its canvas. *ggcanvas.Canvas from
// github.com/gogpu/gg/integration/ggcanvas satisfies Container.
type Container interface {
	Context() *gg.Context
}

// ImageContainer is an in-memory Container backed by a software
// gg.Context. It is the headless host used by tests and command-line
// renderers.
type ImageContainer struct {
	dc     *gg.Context
	closed bool
}

// NewImageContainer creates a container with a width x height pixel surface.
func NewImageContainer(width, height int) *ImageContainer {
	return &ImageContainer{dc: gg.NewContext(width, height)}
}

// Context returns the drawing context, or nil once the container is closed.
func (c *ImageContainer) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.dc
}

// Resize changes the surface dimensions. The host should call
// Chart.NotifyResize afterwards.
func (c *ImageContainer) Resize(width, height int) error {
	if c.closed {
		return ErrSurfaceUnavailable
	}
	return c.dc.Resize(width, height)
}

// SavePNG writes the current surface contents to path.
func (c *ImageContainer) SavePNG(path string) error {
	if c.closed {
		return ErrSurfaceUnavailable
	}
	return c.dc.SavePNG(path)
}

// Close releases the drawing context. Close is idempotent.
func (c *ImageContainer) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dc.Close()
}
