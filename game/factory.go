package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/components"
	"github.com/pthm-cable/substep/config"
	"github.com/pthm-cable/substep/level"
)

// loadLevel populates the world from a parsed level document.
func (g *Game) loadLevel(lvl *level.Level) {
	for _, s := range lvl.Solids {
		g.SpawnSolid(s.X, s.Y, s.Collider())
	}
	g.player = g.SpawnPlayer(lvl.Player.X, lvl.Player.Y)
}

// SpawnSolid creates an immovable collision box at the given center.
func (g *Game) SpawnSolid(x, y float32, col components.Collider) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	body := components.Body{Kind: components.KindSolid}
	return g.solidMapper.NewEntity(&pos, &col, &body)
}

// SpawnActor creates a movable body with zeroed kinematics and an empty
// collision mailbox.
func (g *Game) SpawnActor(x, y float32, col components.Collider) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	acc := components.Acceleration{}
	rem := components.Remainder{}
	body := components.Body{Kind: components.KindActor}
	result := components.CollisionResult{}
	e := g.actorMapper.NewEntity(&pos, &vel, &acc, &rem, &col, &body, &result)

	tr := components.Transform{X: x, Y: y}
	g.transformMap.Add(e, &tr)
	return e
}

// SpawnPlayer creates the controllable actor using the configured tuning.
func (g *Game) SpawnPlayer(x, y float32) ecs.Entity {
	cfg := config.Cfg()

	col := components.Collider{
		HalfW: float32(cfg.Player.HalfW),
		HalfH: float32(cfg.Player.HalfH),
	}
	e := g.SpawnActor(x, y, col)

	limits := components.Limits{
		MaxSpeedX:    float32(cfg.Player.MaxWalkSpeed),
		MaxFallSpeed: float32(cfg.Physics.MaxFallSpeed),
	}
	control := components.PlayerControl{
		WalkAccel:   float32(cfg.Player.WalkAccel),
		JumpAccel:   float32(cfg.Player.JumpAccel),
		MaxJumpTime: float32(cfg.Player.MaxJumpTime),
	}
	jump := components.JumpState{}
	g.playerMapper.Add(e, &limits, &control, &jump)
	return e
}
