package entity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shipwreck/common"
	shipcomp "github.com/milk9111/shipwreck/component"
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/component"
	"github.com/milk9111/shipwreck/prefabs"
)

var ErrNoPhysics = errors.New("entity: world has no physics")

// BuildEnemyShip spawns spec at spawn: a kinematic body with one sensor box
// per model entry, each box bound as the hit handle of the part of the same
// name.
func BuildEnemyShip(w *ecs.World, spec *prefabs.ShipSpec, spawn common.Vec2, deps ShipDeps) (*Ship, error) {
	if w == nil || w.PhysicsWorld() == nil {
		return nil, ErrNoPhysics
	}
	if spec == nil {
		return nil, fmt.Errorf("entity: build ship: %w", shipcomp.ErrConfiguration)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("entity: build %s: %w", spec.Name, err)
	}
	pw := w.PhysicsWorld()

	e := ecs.CreateEntity(w)
	body := pw.NewShipBody(e, spawn)
	shapes := make(map[string]*cp.Shape, len(spec.Model))
	for _, m := range spec.Model {
		shapes[m.Name] = pw.AddPartShape(e, m.Rect())
	}
	bind := func(name string) (shipcomp.Handle, bool) {
		shape, ok := shapes[name]
		if !ok || shape == nil {
			return nil, false
		}
		return shape, true
	}

	fail := func(err error) (*Ship, error) {
		ecs.DestroyEntity(w, e)
		return nil, fmt.Errorf("entity: build %s: %w", spec.Name, err)
	}

	deps.World = w
	deps.Now = w.Now()
	ship, err := NewShip(spec, spawn, bind, deps)
	if err != nil {
		return fail(err)
	}
	ship.Entity = e

	if err := ecs.Add(w, e, ShipComponent, ship); err != nil {
		return fail(fmt.Errorf("add ship: %w", err))
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: spawn}); err != nil {
		return fail(fmt.Errorf("add transform: %w", err))
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body, Radius: spec.Radius}); err != nil {
		return fail(fmt.Errorf("add body: %w", err))
	}
	return ship, nil
}
