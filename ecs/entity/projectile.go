package entity

import (
	"fmt"

	"github.com/milk9111/shipwreck/common"
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/component"
	"github.com/milk9111/shipwreck/prefabs"
	"golang.org/x/image/colornames"
)

const defaultProjectileRadius = 0.25

// BuildProjectile fires one shot of def from pos toward dir.
func BuildProjectile(w *ecs.World, def prefabs.WeaponDefinition, friendly bool, pos, dir common.Vec2) (ecs.Entity, error) {
	if w == nil || w.PhysicsWorld() == nil {
		return 0, ErrNoPhysics
	}
	dir = dir.Normalized()
	if dir == (common.Vec2{}) {
		dir = common.Vec2{Y: 1}
	}

	radius := def.Radius
	if radius <= 0 {
		radius = defaultProjectileRadius
	}

	e := ecs.CreateEntity(w)
	shape := w.PhysicsWorld().NewProjectileBody(e, def.Type, friendly, pos, dir.Scale(def.Velocity), radius)
	fail := func(what string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile: add %s: %w", what, err)
	}

	if err := ecs.Add(w, e, component.ProjectileComponent, &component.Projectile{
		Type:     def.Type,
		Friendly: friendly,
		Radius:   radius,
		Color:    def.Color.ColorOr(colornames.White),
	}); err != nil {
		return fail("projectile", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: pos}); err != nil {
		return fail("transform", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: shape.Body(), Shape: shape, Radius: radius}); err != nil {
		return fail("body", err)
	}
	if def.Lifetime > 0 {
		if err := ecs.Add(w, e, component.TTLComponent, &component.TTL{Expires: w.Now() + def.Lifetime}); err != nil {
			return fail("ttl", err)
		}
	}
	return e, nil
}
