package components

// PlayerControl holds the tuning knobs for player-driven movement.
type PlayerControl struct {
	WalkAccel   float32 // horizontal acceleration while a direction is held
	JumpAccel   float32 // upward acceleration while the jump is sustained
	MaxJumpTime float32 // seconds the jump can be sustained for variable height
}

// JumpState tracks grounding and the variable-height jump. Grounded is
// re-derived every tick from the collision mailbox by the grounding system.
type JumpState struct {
	Grounded bool
	Jumping  bool
	JumpTime float32 // seconds the current jump has been sustained
}
