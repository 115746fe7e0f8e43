package ecs

import (
	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	shipcomp "github.com/milk9111/shipwreck/component"
)

// EventType names an event payload kind.
type EventType string

const (
	EventContact       EventType = "contact"
	EventShipDestroyed EventType = "ship_destroyed"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// ContactKind classifies what touched a ship part.
type ContactKind int

const (
	ContactOther ContactKind = iota
	ContactFriendlyProjectile
)

func (k ContactKind) String() string {
	switch k {
	case ContactFriendlyProjectile:
		return "friendly_projectile"
	default:
		return "other"
	}
}

// Contact is pushed once per begin-contact between two physics shapes.
// ShapeA and ShapeB keep the order the collision handler was declared with,
// so for projectile contacts ShapeA is the projectile and ShapeB the part.
type Contact struct {
	ShapeA         *cp.Shape
	ShapeB         *cp.Shape
	Kind           ContactKind
	Projectile     Entity
	Target         Entity
	ProjectileType shipcomp.ProjectileType
}

// ShipDestroyed is pushed once when a ship's last part falls.
type ShipDestroyed struct {
	Entity Entity
	ID     uuid.UUID
	Name   string
}

// EventQueue is a simple FIFO queue that is cleared after every tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Take removes and returns the events of type t, keeping the rest in order.
func (q *EventQueue) Take(t EventType) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

// Len reports how many events are queued.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
