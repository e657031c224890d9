package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/components"
)

// TransformSystem copies authoritative positions into renderable transforms
// during PostStep, after the sweep has settled every actor.
type TransformSystem struct {
	bodies ecs.Filter2[components.Position, components.Transform]
}

// NewTransformSystem creates the transform sync system.
func NewTransformSystem(w *ecs.World) *TransformSystem {
	return &TransformSystem{
		bodies: *ecs.NewFilter2[components.Position, components.Transform](w),
	}
}

// Update syncs transforms.
func (s *TransformSystem) Update(w *ecs.World) {
	q := s.bodies.Query()
	for q.Next() {
		pos, tr := q.Get()
		tr.X = pos.X
		tr.Y = pos.Y
	}
}
