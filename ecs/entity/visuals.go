package entity

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shipwreck/component"
	"github.com/milk9111/shipwreck/ecs"
)

// PartVisual is the render state of one part.
type PartVisual struct {
	DamagedUntil time.Duration
	Damaged      bool
	Active       bool
}

// partVisuals records damage flashes and takes destroyed parts out of the
// physics space.
type partVisuals struct {
	physics *ecs.PhysicsWorld
	byName  map[string]*PartVisual
}

func newPartVisuals(physics *ecs.PhysicsWorld, parts []*component.Part) *partVisuals {
	v := &partVisuals{physics: physics, byName: make(map[string]*PartVisual, len(parts))}
	for _, p := range parts {
		v.byName[p.Name] = &PartVisual{Active: true}
	}
	return v
}

func (v *partVisuals) SetDamagedVisual(p *component.Part, until time.Duration) {
	if pv, ok := v.byName[p.Name]; ok {
		pv.DamagedUntil = until
		pv.Damaged = true
	}
}

func (v *partVisuals) DeactivateVisual(p *component.Part) {
	if pv, ok := v.byName[p.Name]; ok {
		pv.Active = false
	}
	if shape, ok := p.Handle.(*cp.Shape); ok {
		v.physics.DeactivateShape(shape)
	}
}

// expire clears damage flashes that ended before now.
func (v *partVisuals) expire(now time.Duration) {
	for _, pv := range v.byName {
		if pv.Damaged && now >= pv.DamagedUntil {
			pv.Damaged = false
		}
	}
}
