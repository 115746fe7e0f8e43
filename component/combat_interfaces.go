package component

//go:generate go tool mockgen -destination=./mocks/combat_mock.go -package=mocks . BoundaryCheck,Notifier,VisualSink

import (
	"time"

	"github.com/google/uuid"
)

// BoundaryCheck answers screen-bounds questions for one ship.
type BoundaryCheck interface {
	// IsOnScreen reports whether the ship is inside the visible area.
	IsOnScreen() bool
	// AllowedRange returns the half extents of the rectangle a waypoint may
	// be picked from, already shrunk by the ship radius.
	AllowedRange() (width, height float64)
}

// WeaponCatalog looks up projectile damage.
type WeaponCatalog interface {
	DamageForProjectileType(t ProjectileType) float64
}

// Notifier is told once when a ship has been fully destroyed.
type Notifier interface {
	EntityDestroyed(ref uuid.UUID)
}

// VisualSink receives localized damage feedback.
type VisualSink interface {
	SetDamagedVisual(p *Part, until time.Duration)
	DeactivateVisual(p *Part)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ref uuid.UUID)

func (f NotifierFunc) EntityDestroyed(ref uuid.UUID) {
	if f != nil {
		f(ref)
	}
}
