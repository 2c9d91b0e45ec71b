// Package camera maps world coordinates onto the screen.
package camera

import (
	"chosenoffset.com/topdown/internal/core/geom"
	"chosenoffset.com/topdown/internal/render"
)

// Camera tracks the viewport position for scrolling large levels.
// Zoom is applied about the centre of the viewport, so the world point
// at Scroll + (Width/2, Height/2) is always drawn at the screen centre.
type Camera struct {
	ScrollX, ScrollY float64 // Top-left of the unzoomed view in world coords
	Zoom             float64
	Width, Height    float64 // Viewport size in pixels
}

// New creates a camera for a viewport of the given size.
func New(width, height int, zoom float64) *Camera {
	return &Camera{
		Zoom:   zoom,
		Width:  float64(width),
		Height: float64(height),
	}
}

func (c *Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// CenterOn scrolls so that p is at the centre of the viewport.
func (c *Camera) CenterOn(p geom.Vec) {
	c.ScrollX = p.X - c.Width/2
	c.ScrollY = p.Y - c.Height/2
}

// Midpoint returns the world point at the centre of the viewport.
func (c *Camera) Midpoint() geom.Vec {
	return geom.Vec{X: c.ScrollX + c.Width/2, Y: c.ScrollY + c.Height/2}
}

// WorldView returns the world rectangle currently visible.
func (c *Camera) WorldView() geom.Rect {
	z := c.zoom()
	mid := c.Midpoint()
	w := c.Width / z
	h := c.Height / z
	return geom.Rect{X: mid.X - w/2, Y: mid.Y - h/2, Width: w, Height: h}
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(p geom.Vec) geom.Vec {
	z := c.zoom()
	mid := c.Midpoint()
	return geom.Vec{
		X: (p.X-mid.X)*z + c.Width/2,
		Y: (p.Y-mid.Y)*z + c.Height/2,
	}
}

// Apply appends the world-to-screen transform to g. Callers position the
// image in world space first.
func (c *Camera) Apply(g render.GeoM) {
	mid := c.Midpoint()
	z := c.zoom()
	g.Translate(-mid.X, -mid.Y)
	g.Scale(z, z)
	g.Translate(c.Width/2, c.Height/2)
}
