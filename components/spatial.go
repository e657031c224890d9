package components

// Position represents a body's authoritative world position.
// For Actors it is mutated only by the sweep; for Solids it is set at spawn
// and never touched again.
type Position struct {
	X, Y float32
}

// Velocity is the desired velocity for the current tick. After the sweep it
// holds the velocity actually achieved (distance moved / dt), so downstream
// systems can infer blocked motion from the discontinuity alone.
type Velocity struct {
	X, Y float32
}

// Acceleration is a force accumulator. Input and gravity systems add into it
// during PreStep; the Step phase consumes it and zeroes it every tick.
type Acceleration struct {
	X, Y float32
}

// Remainder carries the fractional part of sub-unit motion between ticks so
// slow velocities still accumulate into whole unit steps. Both fields stay in
// (-1, 1) after every completed sweep.
type Remainder struct {
	X, Y float32
}

// Transform is the renderable position, synced from Position in PostStep.
type Transform struct {
	X, Y float32
}
