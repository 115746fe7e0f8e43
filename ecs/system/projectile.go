package system

import (
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/component"
	"github.com/milk9111/shipwreck/ecs/entity"
)

// ProjectileSystem removes projectiles that have left the screen.
type ProjectileSystem struct {
	Screen entity.ScreenBounds
}

func NewProjectileSystem(screen entity.ScreenBounds) *ProjectileSystem {
	return &ProjectileSystem{Screen: screen}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.ProjectileComponent, func(e ecs.Entity, p *component.Projectile) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		if s.Screen.Outside(t.Position, p.Radius) {
			ecs.DestroyEntity(w, e)
		}
	})
}
