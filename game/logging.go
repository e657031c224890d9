package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/substep/components"
	"github.com/pthm-cable/substep/systems"
	"github.com/pthm-cable/substep/telemetry"
)

// flushTelemetry closes the stats window when due and writes the CSV rows.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	actors, solids := g.countBodies()
	ws := g.collector.Flush(g.tick, actors, solids, g.sampleActorSpeeds())

	if g.logStats {
		ws.Log()
	}
	if err := g.output.WriteStats(ws); err != nil {
		slog.Error("writing stats", "error", err)
	}
	pr := telemetry.NewPerfRecord(g.tick, g.perf, systems.IDSweep)
	if err := g.output.WritePerf(pr); err != nil {
		slog.Error("writing perf", "error", err)
	}
}

// countBodies returns the number of actors and solids in the world.
func (g *Game) countBodies() (actors, solids int) {
	query := g.bodyFilter.Query()
	for query.Next() {
		_, _, body := query.Get()
		if body.Kind == components.KindActor {
			actors++
		} else {
			solids++
		}
	}
	return actors, solids
}

// sampleActorSpeeds collects the scalar speed of every actor.
func (g *Game) sampleActorSpeeds() []float64 {
	var speeds []float64
	query := g.speedFilter.Query()
	for query.Next() {
		vel, body := query.Get()
		if body.Kind != components.KindActor {
			continue
		}
		speeds = append(speeds, math.Hypot(float64(vel.X), float64(vel.Y)))
	}
	return speeds
}
