// Package camera provides the follow camera and parallax layers.
package camera

import "math"

// Camera tracks a target with a logarithmic ease: far from the target it
// snaps quickly, close to it the motion fades out instead of oscillating.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Follow curve parameters: t = ln(gain*distance - offset), clamped to
	// [0, 1], is the lerp factor applied per tick.
	FollowGain   float32
	FollowOffset float32
}

// New creates a camera centered on the given point.
func New(viewportW, viewportH, x, y float32) *Camera {
	return &Camera{
		X:            x,
		Y:            y,
		Zoom:         1.0,
		ViewportW:    viewportW,
		ViewportH:    viewportH,
		FollowGain:   0.0004,
		FollowOffset: -1.0,
	}
}

// Follow eases the camera toward the target point. Called once per frame.
func (c *Camera) Follow(tx, ty float32) {
	dx := tx - c.X
	dy := ty - c.Y
	distance := float32(math.Sqrt(float64(dx*dx + dy*dy)))

	arg := c.FollowGain*distance - c.FollowOffset
	if arg <= 0 {
		return
	}
	t := float32(math.Log(float64(arg)))
	if t <= 0 {
		return
	}
	if t > 1 {
		t = 1
	}
	c.X += dx * t
	c.Y += dy * t
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a box centered at (wx, wy) with the given
// half-extents could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, halfW, halfH float32) bool {
	dx := wx - c.X
	dy := wy - c.Y
	limW := c.ViewportW/(2*c.Zoom) + halfW
	limH := c.ViewportH/(2*c.Zoom) + halfH
	return absf(dx) <= limW && absf(dy) <= limH
}

// Resize updates the viewport dimensions after a window resize.
func (c *Camera) Resize(w, h float32) {
	c.ViewportW = w
	c.ViewportH = h
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
