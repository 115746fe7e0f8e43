package system

import (
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/component"
)

// PhysicsSystem steps the attached Chipmunk space by one world step and
// copies body positions back into transforms.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || w.PhysicsWorld() == nil {
		return
	}
	pw := w.PhysicsWorld()
	pw.Step(w.Step().Seconds())

	ecs.ForEach(w, component.ProjectileComponent, func(e ecs.Entity, _ *component.Projectile) {
		pos, ok := pw.Position(e)
		if !ok {
			return
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			t.Position = pos
		}
	})
}
