package system

import (
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/component"
)

// TTLSystem destroys entities whose TTL has expired on the world clock.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := w.Now()
	ecs.ForEach(w, component.TTLComponent, func(e ecs.Entity, ttl *component.TTL) {
		if now >= ttl.Expires {
			ecs.DestroyEntity(w, e)
		}
	})
}
