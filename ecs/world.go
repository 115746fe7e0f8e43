package ecs

import (
	"time"

	"github.com/milk9111/shipwreck/ecs/component"
)

// DefaultStep is the simulated time one Update advances the clock by.
const DefaultStep = time.Second / 60

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, components, events, the simulation clock, and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	systems  []System
	events   EventQueue

	pending   []Entity
	doomed    map[Entity]struct{}
	onDestroy []func(Entity)

	now  time.Duration
	step time.Duration

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world whose clock starts at zero.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]componentStore),
		doomed: make(map[Entity]struct{}),
		step:   DefaultStep,
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity schedules e for removal at the end of the current tick. The
// entity stops reporting alive immediately; its components stay readable
// until the flush. Returns false when e was already dead or scheduled.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !IsAlive(w, e) {
		return false
	}
	w.doomed[e] = struct{}{}
	w.pending = append(w.pending, e)
	return true
}

// IsAlive reports whether an entity handle is valid and not scheduled for removal.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	_, doomed := w.doomed[e]
	return !doomed
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.live)
	for i, gen := range w.entities.gen {
		e := makeEntity(entityID(i+1), gen)
		if IsAlive(w, e) {
			out = append(out, e)
		}
	}
	return out
}

// OnEntityDestroyed registers fn to run for each entity as it is flushed.
func (w *World) OnEntityDestroyed(fn func(Entity)) {
	if w == nil || fn == nil {
		return
	}
	w.onDestroy = append(w.onDestroy, fn)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update advances the clock by one step, runs all systems once, then
// removes entities destroyed during the tick and drops unconsumed events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.now += w.step
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.Flush()
	w.events.flush()
}

// Flush removes every entity scheduled by DestroyEntity.
func (w *World) Flush() {
	if w == nil {
		return
	}
	for len(w.pending) > 0 {
		batch := w.pending
		w.pending = nil
		for _, e := range batch {
			for _, fn := range w.onDestroy {
				fn(e)
			}
			for _, store := range w.stores {
				store.removeEntity(e)
			}
			delete(w.doomed, e)
			w.entities.destroy(e)
		}
	}
}

// Now returns the simulation clock.
func (w *World) Now() time.Duration {
	if w == nil {
		return 0
	}
	return w.now
}

// Step returns the simulated duration of one Update.
func (w *World) Step() time.Duration {
	if w == nil {
		return 0
	}
	return w.step
}

// SetStep changes the simulated duration of one Update. Non-positive steps are ignored.
func (w *World) SetStep(step time.Duration) {
	if w == nil || step <= 0 {
		return
	}
	w.step = step
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world. Bodies owned by
// an entity are released when the entity is flushed.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	if w.physicsWorld == nil && pw != nil {
		w.OnEntityDestroyed(func(e Entity) {
			if w.physicsWorld != nil {
				w.physicsWorld.RemoveEntity(e)
			}
		})
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
