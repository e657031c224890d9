package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/substep/ui"
)

// Draw renders one frame: parallax background, collision boxes, HUD, and the
// optional inspector panels.
func (g *Game) Draw() {
	tr := g.transformMap.Get(g.player)
	g.cam.Follow(tr.X, tr.Y)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 18, G: 18, B: 24, A: 255})

	g.background.Draw(g.cam)
	g.debug.Draw(g.world, g.cam)

	actors, solids := g.countBodies()
	g.hud.Draw(ui.HUDData{
		Title:        "substep",
		ActorCount:   actors,
		SolidCount:   solids,
		Tick:         g.tick,
		StepsPerTick: g.stepsPerUpdate,
		FPS:          rl.GetFPS(),
		Grounded:     g.jumpMap.Get(g.player).Grounded,
		Paused:       g.paused,
		ScreenHeight: int32(g.screenHeight),
	})
	g.hud.DrawControls(int32(g.screenHeight))

	if g.panel.IsVisible() {
		if g.panel.Draw(g.collectBodyRows(), g.paused) {
			g.paused = !g.paused
		}
		g.perfPanel.Draw(ui.PerfPanelData{
			SystemTimes: g.perf.AvgSystemDurations(),
			Total:       g.perf.AvgTickDuration(),
			Registry:    g.registry,
		})
	}

	rl.EndDrawing()
}

// collectBodyRows snapshots actor kinematics for the inspector panel.
func (g *Game) collectBodyRows() []ui.BodyRow {
	var rows []ui.BodyRow
	query := g.actorStateFilter.Query()
	for query.Next() {
		pos, vel, acc, rem, _, body, _ := query.Get()
		row := ui.BodyRow{
			Kind: body.Kind.String(),
			PosX: pos.X, PosY: pos.Y,
			VelX: vel.X, VelY: vel.Y,
			AccX: acc.X, AccY: acc.Y,
			RemX: rem.X, RemY: rem.Y,
		}
		if g.jumpMap.Has(query.Entity()) {
			row.Grounded = g.jumpMap.Get(query.Entity()).Grounded
		}
		rows = append(rows, row)
	}
	return rows
}
