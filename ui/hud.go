// Package ui renders the heads-up display and the body inspector panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	ActorCount   int
	SolidCount   int
	Tick         int32
	StepsPerTick int
	FPS          int32
	Grounded     bool
	Paused       bool
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Actors: %d | Solids: %d", data.ActorCount, data.SolidCount),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Steps: %dx | FPS: %d | Grounded: %v",
			data.Tick, data.StepsPerTick, data.FPS, data.Grounded),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText(
		"A/D move | Space jump | P pause | N step | F1 inspector | < > sim steps",
		10, screenHeight-25, 14, rl.Gray,
	)
}
