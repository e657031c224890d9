package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/components"
)

// GroundingSystem is the sole consumer of the collision mailbox. It runs in
// PostStep, folds this tick's Y contact into the jump state, and drains the
// mailbox so no stale contact survives into the next tick.
//
// A grounded actor resting on a floor only attempts a whole downward step on
// the ticks where its gravity remainder rounds to a unit, so the absence of a
// contact alone does not mean airborne. Grounding is instead cleared when the
// actor achieved real vertical motion: velocity here is post-sweep and
// reflects distance actually moved.
type GroundingSystem struct {
	players ecs.Filter4[
		components.Position,
		components.Velocity,
		components.CollisionResult,
		components.JumpState,
	]
}

// NewGroundingSystem creates the grounding system.
func NewGroundingSystem(w *ecs.World) *GroundingSystem {
	return &GroundingSystem{
		players: *ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.CollisionResult,
			components.JumpState,
		](w),
	}
}

// Update drains each actor's mailbox into its jump state.
func (s *GroundingSystem) Update(w *ecs.World) {
	q := s.players.Query()
	for q.Next() {
		pos, vel, result, js := q.Get()

		if hit := result.Y; hit != nil {
			solidY := hit.OtherPosition.Y + hit.OtherCollider.OffsetY
			if solidY > pos.Y {
				// Blocked by a solid below: standing on it.
				js.Grounded = true
				js.Jumping = false
			} else if js.Jumping {
				// Ceiling hit cancels the sustained jump.
				js.Jumping = false
			}
		} else if vel.Y != 0 {
			js.Grounded = false
		}

		result.Clear()
	}
}
