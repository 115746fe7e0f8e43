package ecs

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shipwreck/common"
	shipcomp "github.com/milk9111/shipwreck/component"
)

const (
	collisionTypeShipPart cp.CollisionType = iota + 1
	collisionTypeFriendlyProjectile
	collisionTypeHostileProjectile
)

// projectileData rides on a projectile shape's UserData.
type projectileData struct {
	entity Entity
	kind   shipcomp.ProjectileType
}

type bodyRecord struct {
	body   *cp.Body
	shapes []*cp.Shape
}

// PhysicsWorld owns the Chipmunk space. Ship parts are sensor boxes on a
// kinematic body; projectiles are small dynamic sensor circles.
type PhysicsWorld struct {
	space  *cp.Space
	events *EventQueue

	shapeToEntity map[*cp.Shape]Entity
	bodies        map[Entity]*bodyRecord
}

// NewPhysicsWorld creates a zero-gravity space that reports part contacts into events.
func NewPhysicsWorld(events *EventQueue) *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		events:        events,
		shapeToEntity: make(map[*cp.Shape]Entity),
		bodies:        make(map[Entity]*bodyRecord),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// NewShipBody creates the kinematic body that carries e's part shapes.
func (pw *PhysicsWorld) NewShipBody(e Entity, pos common.Vec2) *cp.Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	if rec, ok := pw.bodies[e]; ok {
		return rec.body
	}
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	pw.space.AddBody(body)
	pw.bodies[e] = &bodyRecord{body: body}
	return body
}

// AddPartShape attaches a sensor box to e's ship body. rect is in body-local
// coordinates. The returned shape is the part's hit handle.
func (pw *PhysicsWorld) AddPartShape(e Entity, rect common.Rect) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	rec, ok := pw.bodies[e]
	if !ok {
		return nil
	}
	bb := cp.BB{L: rect.X, B: rect.Y, R: rect.X + rect.Width, T: rect.Y + rect.Height}
	shape := cp.NewBox2(rec.body, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeShipPart)
	pw.space.AddShape(shape)
	rec.shapes = append(rec.shapes, shape)
	pw.shapeToEntity[shape] = e
	return shape
}

// NewProjectileBody creates a dynamic sensor circle moving at vel.
func (pw *PhysicsWorld) NewProjectileBody(e Entity, kind shipcomp.ProjectileType, friendly bool, pos, vel common.Vec2, radius float64) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	if radius <= 0 {
		radius = 1
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	body.SetVelocity(vel.X, vel.Y)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetSensor(true)
	if friendly {
		shape.SetCollisionType(collisionTypeFriendlyProjectile)
	} else {
		shape.SetCollisionType(collisionTypeHostileProjectile)
	}
	shape.UserData = projectileData{entity: e, kind: kind}

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = &bodyRecord{body: body, shapes: []*cp.Shape{shape}}
	pw.shapeToEntity[shape] = e
	return shape
}

// SetPosition moves e's body. Kinematic ship bodies are driven this way every tick.
func (pw *PhysicsWorld) SetPosition(e Entity, pos common.Vec2) {
	if pw == nil {
		return
	}
	if rec, ok := pw.bodies[e]; ok {
		rec.body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	}
}

// Position returns e's body position.
func (pw *PhysicsWorld) Position(e Entity) (common.Vec2, bool) {
	if pw == nil {
		return common.Vec2{}, false
	}
	rec, ok := pw.bodies[e]
	if !ok {
		return common.Vec2{}, false
	}
	p := rec.body.Position()
	return common.Vec2{X: p.X, Y: p.Y}, true
}

// EntityForShape returns the entity that owns shape.
func (pw *PhysicsWorld) EntityForShape(shape *cp.Shape) (Entity, bool) {
	if pw == nil || shape == nil {
		return 0, false
	}
	e, ok := pw.shapeToEntity[shape]
	return e, ok
}

// DeactivateShape takes shape out of the space so it stops generating
// contacts. The shape stays mapped to its entity.
func (pw *PhysicsWorld) DeactivateShape(shape *cp.Shape) {
	if pw == nil || pw.space == nil || shape == nil {
		return
	}
	if pw.space.ContainsShape(shape) {
		pw.space.RemoveShape(shape)
	}
}

// ShapeActive reports whether shape is still in the space.
func (pw *PhysicsWorld) ShapeActive(shape *cp.Shape) bool {
	if pw == nil || pw.space == nil || shape == nil {
		return false
	}
	return pw.space.ContainsShape(shape)
}

// RemoveEntity frees every body and shape owned by e. Must not be called
// while the space is stepping.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	rec, ok := pw.bodies[e]
	if !ok {
		return
	}
	for _, shape := range rec.shapes {
		if pw.space.ContainsShape(shape) {
			pw.space.RemoveShape(shape)
		}
		delete(pw.shapeToEntity, shape)
	}
	if pw.space.ContainsBody(rec.body) {
		pw.space.RemoveBody(rec.body)
	}
	delete(pw.bodies, e)
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) setupHandlers() {
	friendly := pw.space.NewCollisionHandler(collisionTypeFriendlyProjectile, collisionTypeShipPart)
	friendly.UserData = pw
	friendly.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		world.pushContact(arb, ContactFriendlyProjectile)
		return false
	}

	hostile := pw.space.NewCollisionHandler(collisionTypeHostileProjectile, collisionTypeShipPart)
	hostile.UserData = pw
	hostile.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		world.pushContact(arb, ContactOther)
		return false
	}
}

func (pw *PhysicsWorld) pushContact(arb *cp.Arbiter, kind ContactKind) {
	shapeA, shapeB := arb.Shapes()
	data, ok := shapeA.UserData.(projectileData)
	if !ok {
		log.Printf("PhysicsWorld: contact without projectile data")
		return
	}
	target, ok := pw.shapeToEntity[shapeB]
	if !ok {
		return
	}
	pw.events.Push(Event{Type: EventContact, Data: Contact{
		ShapeA:         shapeA,
		ShapeB:         shapeB,
		Kind:           kind,
		Projectile:     data.entity,
		Target:         target,
		ProjectileType: data.kind,
	}})
}
