package component

import (
	"fmt"
	"time"
)

// DefaultFeedbackDuration is how long a struck part shows damage.
const DefaultFeedbackDuration = 100 * time.Millisecond

// DamageResolver applies hits to a ship's parts and detects when the whole
// ship has been destroyed.
type DamageResolver struct {
	Registry   *PartRegistry
	Protection ProtectionResolver
	Bounds     BoundaryCheck
	Visuals    VisualSink
	Emitter    *CombatEventEmitter

	FeedbackDuration time.Duration
	// OnDestroyed runs once, on the hit that destroys the last part.
	OnDestroyed func()

	feedbackUntil time.Duration
	destroyed     bool
}

// NewDamageResolver wires a resolver over registry.
func NewDamageResolver(registry *PartRegistry, bounds BoundaryCheck, visuals VisualSink) *DamageResolver {
	return &DamageResolver{
		Registry:         registry,
		Protection:       ProtectionResolver{Registry: registry},
		Bounds:           bounds,
		Visuals:          visuals,
		FeedbackDuration: DefaultFeedbackDuration,
	}
}

// ApplyHit resolves one projectile that struck the ship at now. The physics
// layer may report either collider first, so handleA is tried before
// handleB. An unresolvable hit returns ErrUnresolvedHitTarget and changes
// nothing.
func (r *DamageResolver) ApplyHit(now time.Duration, handleA, handleB Handle, damage float64) (HitResult, error) {
	if r == nil || r.Registry == nil {
		return HitResult{}, fmt.Errorf("%w: resolver has no parts", ErrUnresolvedHitTarget)
	}

	if r.Bounds != nil && !r.Bounds.IsOnScreen() {
		r.emit(CombatEvent{Type: EventOffscreen, Time: now})
		return HitResult{Outcome: HitDiscardedOffscreen}, nil
	}

	part, ok := r.Registry.ResolveByHandle(handleA)
	if !ok {
		part, ok = r.Registry.ResolveByHandle(handleB)
	}
	if !ok {
		return HitResult{}, fmt.Errorf("%w: handles %T and %T", ErrUnresolvedHitTarget, handleA, handleB)
	}

	r.emit(CombatEvent{Type: EventHit, Part: part.Name, Damage: damage, Health: part.Health, Time: now})

	if protector, blocked := r.Protection.Protector(part); blocked {
		r.emit(CombatEvent{Type: EventBlocked, Part: part.Name, Health: part.Health, Time: now})
		return HitResult{Outcome: HitBlocked, Part: part.Name, Protector: protector}, nil
	}

	// A part configured at zero health falls on its first hit. After that,
	// further hits on it are harmless.
	if part.Destroyed() {
		res := HitResult{Outcome: HitDestroyed, Part: part.Name}
		if part.deactivated {
			return res, nil
		}
		return r.fall(part, res, now), nil
	}

	if !(damage > 0) {
		damage = 0
	}
	crossed := part.applyDamage(damage)
	r.showDamage(part, now)
	r.emit(CombatEvent{Type: EventDamageApplied, Part: part.Name, Damage: damage, Health: part.Health, Time: now})

	res := HitResult{Outcome: HitDamaged, Part: part.Name, Damage: damage}
	if !crossed {
		return res, nil
	}
	res.Outcome = HitDestroyed
	return r.fall(part, res, now), nil
}

// fall takes a destroyed part out of play and destroys the ship once the
// last part is gone.
func (r *DamageResolver) fall(part *Part, res HitResult, now time.Duration) HitResult {
	part.deactivated = true
	if r.Visuals != nil {
		r.Visuals.DeactivateVisual(part)
	}
	r.emit(CombatEvent{Type: EventPartDestroyed, Part: part.Name, Health: part.Health, Time: now})

	if !r.destroyed && r.Registry.AllDestroyed() {
		r.destroyed = true
		res.ShipDestroyed = true
		r.emit(CombatEvent{Type: EventDeath, Time: now})
		if r.OnDestroyed != nil {
			r.OnDestroyed()
		}
	}
	return res
}

// Destroyed reports whether the ship has been fully destroyed.
func (r *DamageResolver) Destroyed() bool {
	return r != nil && r.destroyed
}

// ShowingDamage reports whether any damage feedback is still active.
func (r *DamageResolver) ShowingDamage(now time.Duration) bool {
	return r != nil && now < r.feedbackUntil
}

// FeedbackUntil returns when the latest damage feedback expires.
func (r *DamageResolver) FeedbackUntil() time.Duration {
	if r == nil {
		return 0
	}
	return r.feedbackUntil
}

func (r *DamageResolver) showDamage(p *Part, now time.Duration) {
	d := r.FeedbackDuration
	if d <= 0 {
		d = DefaultFeedbackDuration
	}
	r.feedbackUntil = now + d
	if r.Visuals != nil {
		r.Visuals.SetDamagedVisual(p, r.feedbackUntil)
	}
}

func (r *DamageResolver) emit(evt CombatEvent) {
	if r.Emitter != nil {
		r.Emitter.Emit(evt)
	}
}
