// Package renderer draws the world: parallax background bands and the debug
// collider outlines.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/camera"
	"github.com/pthm-cable/substep/components"
)

// DebugRenderer draws every body's collider outline: actors green, solids
// red, the same scheme the engine has always used for eyeballing contacts.
// Drawing happens after PostStep, so Position and Transform agree.
type DebugRenderer struct {
	bodies ecs.Filter3[
		components.Position,
		components.Collider,
		components.Body,
	]
}

// NewDebugRenderer creates the debug renderer.
func NewDebugRenderer(w *ecs.World) *DebugRenderer {
	return &DebugRenderer{
		bodies: *ecs.NewFilter3[
			components.Position,
			components.Collider,
			components.Body,
		](w),
	}
}

// Draw renders collider outlines through the camera.
func (r *DebugRenderer) Draw(w *ecs.World, cam *camera.Camera) {
	q := r.bodies.Query()
	for q.Next() {
		pos, col, body := q.Get()

		cx := pos.X + col.OffsetX
		cy := pos.Y + col.OffsetY
		if !cam.IsVisible(cx, cy, col.HalfW, col.HalfH) {
			continue
		}

		sx, sy := cam.WorldToScreen(cx, cy)
		sw := col.HalfW * 2 * cam.Zoom
		sh := col.HalfH * 2 * cam.Zoom

		color := rl.Red
		if body.Kind == components.KindActor {
			color = rl.Green
		}
		rl.DrawRectangleLines(
			int32(sx-sw/2), int32(sy-sh/2),
			int32(sw), int32(sh),
			color,
		)
	}
}
