// Package systems contains the ECS systems and the staged tick pipeline.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/telemetry"
)

// System is one unit of per-tick work.
type System interface {
	Update(w *ecs.World)
}

// Phase identifies one of the three barriers of a tick. Systems registered in
// the same phase must not depend on each other's writes; ordering across
// phases is guaranteed, ordering within a phase is registration order only.
type Phase uint8

const (
	// PhasePreStep is where input, AI and gravity systems write Acceleration.
	PhasePreStep Phase = iota
	// PhaseStep integrates Acceleration into Velocity and runs the sweep.
	PhaseStep
	// PhasePostStep syncs transforms and drains the collision mailboxes.
	PhasePostStep

	numPhases
)

type registration struct {
	id  string
	sys System
}

// Pipeline runs registered systems phase by phase, once per tick, timing each
// system through the perf collector.
type Pipeline struct {
	phases [numPhases][]registration
	perf   *telemetry.PerfCollector
}

// NewPipeline creates an empty pipeline. perf may be nil to disable timing.
func NewPipeline(perf *telemetry.PerfCollector) *Pipeline {
	return &Pipeline{perf: perf}
}

// Register adds a system to a phase. The id is used for perf tracking and the
// on-screen perf panel; use the identifiers from the system registry.
func (p *Pipeline) Register(phase Phase, id string, sys System) {
	p.phases[phase] = append(p.phases[phase], registration{id: id, sys: sys})
}

// Tick runs one full PreStep / Step / PostStep cycle.
func (p *Pipeline) Tick(w *ecs.World) {
	if p.perf != nil {
		p.perf.StartTick()
	}
	for phase := Phase(0); phase < numPhases; phase++ {
		for _, reg := range p.phases[phase] {
			if p.perf != nil {
				p.perf.StartSystem(reg.id)
			}
			reg.sys.Update(w)
		}
	}
	if p.perf != nil {
		p.perf.EndTick()
	}
}
