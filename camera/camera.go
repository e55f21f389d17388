// Package camera provides a 2D camera mapping world units to screen pixels.
package camera

import "math"

// Camera controls the viewport into the world.
// World space is y-up in world units; screen space is y-down in pixels.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom level (1.0 = PixelsPerUnit pixels per world unit)
	Zoom float64

	// PixelsPerUnit is the base scale at zoom 1
	PixelsPerUnit float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Zoom constraints
	MinZoom, MaxZoom float64
}

// New creates a camera centered on the world origin with 1:1 zoom.
func New(viewportW, viewportH, pixelsPerUnit float64) *Camera {
	return &Camera{
		Zoom:          1.0,
		PixelsPerUnit: pixelsPerUnit,
		ViewportW:     viewportW,
		ViewportH:     viewportH,
		MinZoom:       0.25,
		MaxZoom:       8.0,
	}
}

// scale returns screen pixels per world unit at the current zoom.
func (c *Camera) scale() float64 {
	return c.PixelsPerUnit * c.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	s := c.scale()
	sx = c.ViewportW/2 + (wx-c.X)*s
	sy = c.ViewportH/2 - (wy-c.Y)*s
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	s := c.scale()
	wx = c.X + (sx-c.ViewportW/2)/s
	wy = c.Y - (sy-c.ViewportH/2)/s
	return wx, wy
}

// ScaleToScreen converts a world-space length to pixels.
func (c *Camera) ScaleToScreen(d float64) float64 {
	return d * c.scale()
}

// IsVisible returns true if a box centred at (wx, wy) with the given
// half-extents overlaps the viewport.
func (c *Camera) IsVisible(wx, wy, halfW, halfH float64) bool {
	s := c.scale()
	viewHalfW := c.ViewportW / (2 * s)
	viewHalfH := c.ViewportH / (2 * s)
	return math.Abs(wx-c.X) <= viewHalfW+halfW && math.Abs(wy-c.Y) <= viewHalfH+halfH
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
// Screen y grows downward, so a positive dy moves the view down the world.
func (c *Camera) Pan(dx, dy float64) {
	s := c.scale()
	c.X += dx / s
	c.Y -= dy / s
}

// Follow centres the camera on a world position.
func (c *Camera) Follow(wx, wy float64) {
	c.X = wx
	c.Y = wy
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the origin at 1:1 zoom.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	s := c.scale()
	halfW := c.ViewportW / (2 * s)
	halfH := c.ViewportH / (2 * s)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// RectToScreen converts a world box centred at (cx, cy) with the given
// half-extents to a screen rectangle given by its top-left corner and size.
func (c *Camera) RectToScreen(cx, cy, halfW, halfH float64) (x, y, w, h float64) {
	x, y = c.WorldToScreen(cx-halfW, cy+halfH)
	return x, y, c.ScaleToScreen(2 * halfW), c.ScaleToScreen(2 * halfH)
}
