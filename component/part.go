package component

// PartSpec is the configured definition of a part.
type PartSpec struct {
	Name        string
	Health      float64
	ProtectedBy []string
}

// Part is a named sub-component of a ship with its own health.
type Part struct {
	Name        string
	Health      float64
	MaxHealth   float64
	ProtectedBy []string
	Handle      Handle

	deactivated bool
}

func newPart(spec PartSpec, handle Handle) *Part {
	protectors := append([]string(nil), spec.ProtectedBy...)
	return &Part{
		Name:        spec.Name,
		Health:      spec.Health,
		MaxHealth:   spec.Health,
		ProtectedBy: protectors,
		Handle:      handle,
	}
}

// Destroyed reports whether the part is gone. A nil part counts as destroyed.
func (p *Part) Destroyed() bool {
	return p == nil || p.Health <= 0
}

// applyDamage subtracts amount and reports whether this call crossed the
// destruction threshold. Health is not clamped and never increases.
func (p *Part) applyDamage(amount float64) bool {
	if p == nil {
		return false
	}
	if !(amount > 0) {
		amount = 0
	}
	wasAlive := p.Health > 0
	p.Health -= amount
	return wasAlive && p.Health <= 0
}

// Fraction returns remaining health in [0, 1] for display.
func (p *Part) Fraction() float64 {
	if p == nil || p.MaxHealth <= 0 || p.Health <= 0 {
		return 0
	}
	f := p.Health / p.MaxHealth
	if f > 1 {
		return 1
	}
	return f
}
