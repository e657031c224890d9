// Package components defines ECS components for the physics engine.
package components

// Kind classifies a body. Exactly one kind per body; it must only be changed
// between ticks, never while a sweep is running.
type Kind uint8

const (
	// KindSolid bodies contribute colliders to the sweep snapshot but are
	// never displaced by the engine.
	KindSolid Kind = iota
	// KindActor bodies are moved and collision-checked by the sweep.
	KindActor
)

// String returns the kind name for logging and inspection.
func (k Kind) String() string {
	if k == KindActor {
		return "actor"
	}
	return "solid"
}

// Body holds a body's classification.
type Body struct {
	Kind Kind
}

// Limits caps integrated velocity. A zero field disables that cap.
type Limits struct {
	MaxSpeedX    float32 // horizontal speed cap (absolute)
	MaxFallSpeed float32 // downward (+Y) speed cap
}
