package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BodyRow is one body's kinematic state for the inspector panel.
type BodyRow struct {
	Kind     string
	PosX     float32
	PosY     float32
	VelX     float32
	VelY     float32
	AccX     float32
	AccY     float32
	RemX     float32
	RemY     float32
	Grounded bool
}

// BodyPanel lists per-body kinematic state, the runtime equivalent of
// printf-debugging the sweep.
type BodyPanel struct {
	x, y    int32
	width   int32
	visible bool
}

// NewBodyPanel creates the panel at the given screen position.
func NewBodyPanel(x, y, width int32) *BodyPanel {
	return &BodyPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility and returns the new state.
func (p *BodyPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *BodyPanel) IsVisible() bool {
	return p.visible
}

// Draw renders the panel. Returns true if the pause button was clicked.
func (p *BodyPanel) Draw(rows []BodyRow, paused bool) bool {
	if !p.visible {
		return false
	}

	const rowHeight = 70
	height := int32(40) + int32(len(rows))*rowHeight + 40

	gui.Panel(rl.Rectangle{
		X: float32(p.x), Y: float32(p.y),
		Width: float32(p.width), Height: float32(height),
	}, "Bodies")

	y := p.y + 32
	for i, row := range rows {
		header := fmt.Sprintf("%d: %s", i, row.Kind)
		if row.Grounded {
			header += " (grounded)"
		}
		rl.DrawText(header, p.x+8, y, 14, rl.White)
		rl.DrawText(
			fmt.Sprintf("pos (%8.2f, %8.2f)  vel (%8.2f, %8.2f)", row.PosX, row.PosY, row.VelX, row.VelY),
			p.x+8, y+18, 12, rl.LightGray,
		)
		rl.DrawText(
			fmt.Sprintf("acc (%8.2f, %8.2f)  rem (%8.4f, %8.4f)", row.AccX, row.AccY, row.RemX, row.RemY),
			p.x+8, y+34, 12, rl.LightGray,
		)
		y += rowHeight
	}

	label := "Pause"
	if paused {
		label = "Resume"
	}
	return gui.Button(rl.Rectangle{
		X: float32(p.x + 8), Y: float32(y),
		Width: 100, Height: 26,
	}, label)
}
