package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/substep/camera"
	"github.com/pthm-cable/substep/level"
)

// Background draws the level's parallax bands behind the world. Each band is
// a full-width horizontal color strip whose vertical position trails the
// camera by its parallax factor.
type Background struct {
	parallax camera.Parallax
	bands    []band

	screenW, screenH float32
}

type band struct {
	height float32
	color  rl.Color
}

// NewBackground builds the background from the level's layer definitions.
// Layers are drawn in definition order, so far layers come first.
func NewBackground(layers []level.LayerDef, screenW, screenH float32) *Background {
	b := &Background{screenW: screenW, screenH: screenH}
	for _, l := range layers {
		b.parallax.AddLayer(0, l.Y, l.Factor)
		b.bands = append(b.bands, band{
			height: l.Height,
			color:  rl.Color{R: l.Color.R, G: l.Color.G, B: l.Color.B, A: 255},
		})
	}
	return b
}

// Draw renders the bands through the camera.
func (b *Background) Draw(cam *camera.Camera) {
	b.parallax.Update(cam.X, cam.Y)
	for i, layer := range b.parallax.Layers() {
		_, sy := cam.WorldToScreen(layer.X, layer.Y)
		rl.DrawRectangle(
			0, int32(sy),
			int32(b.screenW), int32(b.bands[i].height*cam.Zoom),
			b.bands[i].color,
		)
	}
}

// Resize updates the screen dimensions after a window resize.
func (b *Background) Resize(w, h float32) {
	b.screenW = w
	b.screenH = h
}
