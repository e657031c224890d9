package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/components"
)

// InputState is the engine-facing snapshot of player intent for one tick.
// The game fills it from the keyboard; headless runs and tests fill it
// directly.
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
}

// ControlSystem maps input to horizontal acceleration and drives the
// variable-height jump during PreStep.
type ControlSystem struct {
	players ecs.Filter4[
		components.Velocity,
		components.Acceleration,
		components.PlayerControl,
		components.JumpState,
	]
	input *InputState
	dt    float32
}

// NewControlSystem creates the control system. input is shared with whoever
// polls the real input device.
func NewControlSystem(w *ecs.World, input *InputState, dt float32) *ControlSystem {
	return &ControlSystem{
		players: *ecs.NewFilter4[
			components.Velocity,
			components.Acceleration,
			components.PlayerControl,
			components.JumpState,
		](w),
		input: input,
		dt:    dt,
	}
}

// Update applies the current input to every player-controlled actor.
func (s *ControlSystem) Update(w *ecs.World) {
	in := s.input
	q := s.players.Query()
	for q.Next() {
		vel, acc, pc, js := q.Get()

		// Neutral or conflicting direction input stops horizontal motion
		// outright rather than decaying it.
		switch {
		case in.Left == in.Right:
			vel.X = 0
		case in.Left:
			acc.X -= pc.WalkAccel
		case in.Right:
			acc.X += pc.WalkAccel
		}

		if in.Jump && js.Grounded && !js.Jumping {
			js.Jumping = true
			js.JumpTime = 0
		}
		switch {
		case in.Jump && js.Jumping && js.JumpTime < pc.MaxJumpTime:
			acc.Y -= pc.JumpAccel
			js.JumpTime += s.dt
		case !in.Jump:
			js.Jumping = false
		}
	}
}
