package component

import "time"

// ProjectileType names a weapon definition, e.g. "blaster".
type ProjectileType string

// HitOutcome is the result of resolving one projectile against a ship.
type HitOutcome int

const (
	HitBlocked HitOutcome = iota + 1
	HitDamaged
	HitDestroyed
	HitDiscardedOffscreen
)

func (o HitOutcome) String() string {
	switch o {
	case HitBlocked:
		return "blocked"
	case HitDamaged:
		return "damaged"
	case HitDestroyed:
		return "destroyed"
	case HitDiscardedOffscreen:
		return "discarded_offscreen"
	default:
		return "unknown"
	}
}

// HitResult describes what a hit did.
type HitResult struct {
	Outcome HitOutcome
	// Part is the struck part, empty for offscreen discards.
	Part string
	// Protector is the surviving part that blocked the hit.
	Protector string
	Damage    float64
	// ShipDestroyed is true only on the hit that destroyed the last part.
	ShipDestroyed bool
}

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit           CombatEventType = "hit"
	EventBlocked       CombatEventType = "blocked"
	EventOffscreen     CombatEventType = "offscreen"
	EventDamageApplied CombatEventType = "damage_applied"
	EventPartDestroyed CombatEventType = "part_destroyed"
	EventDeath         CombatEventType = "death"
)

// CombatEvent is emitted during hit resolution.
type CombatEvent struct {
	Type   CombatEventType
	Part   string
	Damage float64
	Health float64
	Time   time.Duration
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans events out to handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

// Subscribe appends a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}
