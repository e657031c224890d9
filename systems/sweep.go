package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/components"
	"github.com/pthm-cable/substep/telemetry"
)

// solidRef is one entry of the per-tick solid snapshot: the solid's position
// and collider, plus its precomputed world box.
type solidRef struct {
	pos components.Position
	col components.Collider
	box components.AABB
}

// SweepSystem moves every actor against a snapshot of all solid colliders,
// one whole unit at a time, and fills the per-actor collision mailbox.
//
// Stepping unit by unit instead of teleporting the full displacement means an
// actor can never tunnel through a solid at least one unit thick, at the cost
// of O(distance) overlap tests per tick. Per-tick displacements in a
// platformer are small, so that trade is fine.
type SweepSystem struct {
	actors ecs.Filter7[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Remainder,
		components.Collider,
		components.Body,
		components.CollisionResult,
	]
	solids ecs.Filter3[
		components.Position,
		components.Collider,
		components.Body,
	]

	snapshot  []solidRef
	dt        float32
	collector *telemetry.Collector
}

// NewSweepSystem creates the sweep system. collector may be nil.
func NewSweepSystem(w *ecs.World, dt float32, collector *telemetry.Collector) *SweepSystem {
	return &SweepSystem{
		actors: *ecs.NewFilter7[
			components.Position,
			components.Velocity,
			components.Acceleration,
			components.Remainder,
			components.Collider,
			components.Body,
			components.CollisionResult,
		](w),
		solids: *ecs.NewFilter3[
			components.Position,
			components.Collider,
			components.Body,
		](w),
		dt:        dt,
		collector: collector,
	}
}

// Update runs one sweep pass: snapshot all solids, then move every actor.
func (s *SweepSystem) Update(w *ecs.World) {
	// The snapshot is captured once and held immutable for the whole pass.
	// Bodies must not be reclassified while it is in use.
	s.snapshot = s.snapshot[:0]
	sq := s.solids.Query()
	for sq.Next() {
		pos, col, body := sq.Get()
		if body.Kind != components.KindSolid {
			continue
		}
		s.snapshot = append(s.snapshot, solidRef{
			pos: *pos,
			col: *col,
			box: col.WorldBox(*pos),
		})
	}

	blockedThisTick := false

	aq := s.actors.Query()
	for aq.Next() {
		pos, vel, acc, rem, col, body, result := aq.Get()
		if body.Kind != components.KindActor {
			continue
		}

		result.Clear()
		start := *pos

		// X is always resolved before Y. Diagonal contact against a corner
		// is therefore reported as an X collision before any Y motion is
		// attempted.
		result.X = s.moveOnAxis(vel.X*s.dt, pos, &rem.X, 1, 0, *col)
		result.Y = s.moveOnAxis(vel.Y*s.dt, pos, &rem.Y, 0, 1, *col)

		// Velocity now reflects achieved motion, not requested motion.
		vel.X = (pos.X - start.X) / s.dt
		vel.Y = (pos.Y - start.Y) / s.dt

		acc.X = 0
		acc.Y = 0

		if s.collector != nil {
			if result.X != nil {
				s.collector.RecordContactX()
				blockedThisTick = true
			}
			if result.Y != nil {
				s.collector.RecordContactY()
				blockedThisTick = true
			}
		}
	}

	if blockedThisTick {
		s.collector.RecordBlockedTick()
	}
}

// moveOnAxis consumes one axis worth of displacement. The displacement is
// folded into the remainder, the rounded whole-unit budget is debited up
// front, and the position is then stepped one unit at a time until the budget
// runs out or a solid blocks the next step. A blocked sweep forfeits its
// undelivered budget for this tick; the remainder is not restored.
//
// (ux, uy) is the unit vector of the axis. Returns contact info for the first
// blocking solid in snapshot order, or nil if the full budget was delivered.
func (s *SweepSystem) moveOnAxis(amount float32, pos *components.Position, rem *float32, ux, uy float32, col components.Collider) *components.ContactInfo {
	*rem += amount
	steps := int(math.Round(float64(*rem)))
	if steps == 0 {
		return nil
	}
	*rem -= float32(steps)

	sign := float32(1)
	dir := 1
	if steps < 0 {
		sign = -1
		dir = -1
	}

	for steps != 0 {
		next := components.Position{X: pos.X + ux*sign, Y: pos.Y + uy*sign}
		if hit := s.firstBlocking(col, next); hit != nil {
			return hit
		}
		*pos = next
		steps -= dir
	}
	return nil
}

// firstBlocking tests the collider at a candidate position against the solid
// snapshot. Ties among simultaneously reachable solids are resolved by
// snapshot order, not by distance.
func (s *SweepSystem) firstBlocking(col components.Collider, at components.Position) *components.ContactInfo {
	moved := col.WorldBox(at)
	for i := range s.snapshot {
		if moved.Overlaps(s.snapshot[i].box) {
			return &components.ContactInfo{
				OtherPosition: s.snapshot[i].pos,
				OtherCollider: s.snapshot[i].col,
			}
		}
	}
	return nil
}
