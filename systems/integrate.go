package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/components"
)

// IntegrateSystem converts accumulated acceleration into velocity at the
// start of the Step phase, before the sweep consumes the velocity.
//
// Horizontal acceleration opposing the current velocity replaces it instead
// of adding to it, which gives instant direction changes on the ground.
// Acceleration is left in place; the sweep zeroes it at the end of the pass.
type IntegrateSystem struct {
	bodies ecs.Filter3[
		components.Velocity,
		components.Acceleration,
		components.Limits,
	]
	dt float32
}

// NewIntegrateSystem creates the integration system.
func NewIntegrateSystem(w *ecs.World, dt float32) *IntegrateSystem {
	return &IntegrateSystem{
		bodies: *ecs.NewFilter3[
			components.Velocity,
			components.Acceleration,
			components.Limits,
		](w),
		dt: dt,
	}
}

// Update integrates and clamps velocities.
func (s *IntegrateSystem) Update(w *ecs.World) {
	q := s.bodies.Query()
	for q.Next() {
		vel, acc, lim := q.Get()

		added := acc.X * s.dt
		if added == 0 || (vel.X >= 0) == (added > 0) {
			vel.X += added
		} else {
			vel.X = added
		}
		vel.Y += acc.Y * s.dt

		if lim.MaxSpeedX > 0 {
			if vel.X > lim.MaxSpeedX {
				vel.X = lim.MaxSpeedX
			} else if vel.X < -lim.MaxSpeedX {
				vel.X = -lim.MaxSpeedX
			}
		}
		if lim.MaxFallSpeed > 0 && vel.Y > lim.MaxFallSpeed {
			vel.Y = lim.MaxFallSpeed
		}
	}
}
