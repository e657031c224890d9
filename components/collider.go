package components

import "fmt"

// Collider is an axis-aligned bounding box local to its owning body.
// The world-space box is position + offset ± half extent.
type Collider struct {
	OffsetX, OffsetY float32
	HalfW, HalfH     float32
}

// NewCollider validates and builds a collider. Negative half-extents are
// rejected here so the sweep itself never has to check. A zero half-extent is
// allowed; such a box never overlaps anything.
func NewCollider(offsetX, offsetY, halfW, halfH float32) (Collider, error) {
	if halfW < 0 || halfH < 0 {
		return Collider{}, fmt.Errorf("collider half-extent must be non-negative, got (%g, %g)", halfW, halfH)
	}
	return Collider{OffsetX: offsetX, OffsetY: offsetY, HalfW: halfW, HalfH: halfH}, nil
}

// AABB is a world-space box.
type AABB struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// WorldBox returns the collider's box at the given body position.
func (c Collider) WorldBox(pos Position) AABB {
	cx := pos.X + c.OffsetX
	cy := pos.Y + c.OffsetY
	return AABB{
		MinX: cx - c.HalfW,
		MinY: cy - c.HalfH,
		MaxX: cx + c.HalfW,
		MaxY: cy + c.HalfH,
	}
}

// Overlaps reports whether two boxes overlap. Strict inequalities: boxes that
// merely touch are not colliding, which is what lets an actor rest flush
// against a solid. A degenerate box (zero extent on either axis) has no
// interior and never overlaps, even when it lies inside the other box.
func (a AABB) Overlaps(b AABB) bool {
	if a.MinX == a.MaxX || a.MinY == a.MaxY ||
		b.MinX == b.MaxX || b.MinY == b.MaxY {
		return false
	}
	return a.MinX < b.MaxX &&
		a.MaxX > b.MinX &&
		a.MinY < b.MaxY &&
		a.MaxY > b.MinY
}
