package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/components"
)

// GravitySystem adds the world's gravity into every actor's acceleration
// accumulator during PreStep. +Y is down.
type GravitySystem struct {
	bodies  ecs.Filter2[components.Acceleration, components.Body]
	gravity float32
}

// NewGravitySystem creates the gravity system.
func NewGravitySystem(w *ecs.World, gravity float32) *GravitySystem {
	return &GravitySystem{
		bodies:  *ecs.NewFilter2[components.Acceleration, components.Body](w),
		gravity: gravity,
	}
}

// Update accumulates gravity.
func (s *GravitySystem) Update(w *ecs.World) {
	q := s.bodies.Query()
	for q.Next() {
		acc, body := q.Get()
		if body.Kind != components.KindActor {
			continue
		}
		acc.Y += s.gravity
	}
}
