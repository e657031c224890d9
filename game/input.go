package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxStepsPerUpdate = 16

// handleInput polls the keyboard and updates game state and the shared
// InputState read by the control system.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.stepOnce = true
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	g.handleResize()

	g.input.Left = rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft)
	g.input.Right = rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight)
	g.input.Jump = rl.IsKeyDown(rl.KeySpace) || rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp)
}

func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())
	g.cam.Resize(g.screenWidth, g.screenHeight)
	g.background.Resize(g.screenWidth, g.screenHeight)
}
