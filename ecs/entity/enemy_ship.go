package entity

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/shipwreck/common"
	shipcomp "github.com/milk9111/shipwreck/component"
	"github.com/milk9111/shipwreck/ecs"
	"github.com/milk9111/shipwreck/ecs/component"
	"github.com/milk9111/shipwreck/prefabs"
)

var ShipComponent = component.NewComponent[Ship]()

// ShipDeps are the collaborators a ship is wired to. World may be nil for a
// ship that lives outside the ECS.
type ShipDeps struct {
	World    *ecs.World
	Catalog  shipcomp.WeaponCatalog
	Notifier shipcomp.Notifier
	Emitter  *shipcomp.CombatEventEmitter
	Screen   ScreenBounds
	Rand     *rand.Rand
	Now      time.Duration
}

// Ship is a multi-part enemy: the part registry, damage resolver, and motion
// controller of one spawned ship plus its one-shot destruction.
type Ship struct {
	ID     uuid.UUID
	Entity ecs.Entity
	Name   string
	Score  int

	Registry *shipcomp.PartRegistry
	Damage   *shipcomp.DamageResolver
	Motion   *shipcomp.MotionController
	Bounds   *BoundsCheck
	Position common.Vec2
	Model    []prefabs.ShapeSpec

	world    *ecs.World
	catalog  shipcomp.WeaponCatalog
	notifier shipcomp.Notifier
	visuals  *partVisuals

	destroyed bool
}

// NewShip registers spec's parts through bind and starts the first motion leg
// at spawn. Configuration problems return shipcomp.ErrConfiguration.
func NewShip(spec *prefabs.ShipSpec, spawn common.Vec2, bind shipcomp.Binder, deps ShipDeps) (*Ship, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil ship spec", shipcomp.ErrConfiguration)
	}
	registry, err := shipcomp.NewPartRegistry(spec.PartSpecs(), bind)
	if err != nil {
		return nil, err
	}

	s := &Ship{
		ID:       uuid.New(),
		Name:     spec.Name,
		Score:    spec.Score,
		Registry: registry,
		Position: spawn,
		Model:    append([]prefabs.ShapeSpec(nil), spec.Model...),
		world:    deps.World,
		catalog:  deps.Catalog,
		notifier: deps.Notifier,
	}
	s.Bounds = &BoundsCheck{
		Screen:   deps.Screen,
		Radius:   spec.Radius,
		Position: func() common.Vec2 { return s.Position },
	}

	var physics *ecs.PhysicsWorld
	if deps.World != nil {
		physics = deps.World.PhysicsWorld()
	}
	s.visuals = newPartVisuals(physics, registry.Parts())

	s.Damage = shipcomp.NewDamageResolver(registry, s.Bounds, s.visuals)
	s.Damage.Emitter = deps.Emitter
	if spec.FeedbackDuration > 0 {
		s.Damage.FeedbackDuration = spec.FeedbackDuration
	}
	s.Damage.OnDestroyed = s.destroy

	s.Motion = shipcomp.NewMotionController(spawn, deps.Now, spec.MotionDuration, s.Bounds, deps.Rand)
	return s, nil
}

// OnHit resolves a physics contact against the ship and consumes the projectile.
func (s *Ship) OnHit(now time.Duration, c ecs.Contact) (shipcomp.HitResult, error) {
	if s.world != nil {
		ecs.DestroyEntity(s.world, c.Projectile)
	}
	var a, b shipcomp.Handle
	if c.ShapeA != nil {
		a = c.ShapeA
	}
	if c.ShapeB != nil {
		b = c.ShapeB
	}
	return s.Hit(now, a, b, c.ProjectileType)
}

// Hit applies one projectile of type kind that touched handles a and b.
func (s *Ship) Hit(now time.Duration, a, b shipcomp.Handle, kind shipcomp.ProjectileType) (shipcomp.HitResult, error) {
	var damage float64
	if s.catalog != nil {
		damage = s.catalog.DamageForProjectileType(kind)
	}
	res, err := s.Damage.ApplyHit(now, a, b, damage)
	if err != nil {
		return res, fmt.Errorf("ship %s: %w", s.ID, err)
	}
	return res, nil
}

// OnTick moves the ship to its position at now and syncs its body.
func (s *Ship) OnTick(now time.Duration) common.Vec2 {
	if s.destroyed {
		return s.Position
	}
	s.Position = s.Motion.Tick(now)
	s.visuals.expire(now)
	if s.world == nil {
		return s.Position
	}
	if t, ok := ecs.Get(s.world, s.Entity, component.TransformComponent); ok {
		t.Position = s.Position
	}
	if pw := s.world.PhysicsWorld(); pw != nil {
		pw.SetPosition(s.Entity, s.Position)
	}
	return s.Position
}

func (s *Ship) Destroyed() bool {
	return s.destroyed
}

func (s *Ship) ShowingDamage(now time.Duration) bool {
	return s.Damage.ShowingDamage(now)
}

// PartVisual returns the render state of the named part.
func (s *Ship) PartVisual(name string) (PartVisual, bool) {
	pv, ok := s.visuals.byName[name]
	if !ok {
		return PartVisual{}, false
	}
	return *pv, true
}

func (s *Ship) destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	log.Printf("ship: %s (%s) destroyed", s.Name, s.ID)
	if s.notifier != nil {
		s.notifier.EntityDestroyed(s.ID)
	}
	if s.world == nil {
		return
	}
	s.world.Events().Push(ecs.Event{Type: ecs.EventShipDestroyed, Data: ecs.ShipDestroyed{Entity: s.Entity, ID: s.ID, Name: s.Name}})
	ecs.DestroyEntity(s.world, s.Entity)
}
