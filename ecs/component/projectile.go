package component

import (
	"image/color"

	shipcomp "github.com/milk9111/shipwreck/component"
)

// Projectile is a single-use shot. Friendly shots damage ship parts.
type Projectile struct {
	Type     shipcomp.ProjectileType
	Friendly bool
	Radius   float64
	Color    color.Color
}

var ProjectileComponent = NewComponent[Projectile]()
