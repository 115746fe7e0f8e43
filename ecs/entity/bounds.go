package entity

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/shipwreck/common"
)

// ScreenBounds is the visible area as half extents around the world origin.
type ScreenBounds struct {
	CamWidth  float64
	CamHeight float64
}

// Outside reports whether a circle at p with radius r is entirely off screen.
func (s ScreenBounds) Outside(p common.Vec2, r float64) bool {
	return math.Abs(p.X) > s.CamWidth+r || math.Abs(p.Y) > s.CamHeight+r
}

// BoundsCheck tests a ship of the given radius against the screen. A ship is
// on screen while its whole radius fits inside the visible area.
type BoundsCheck struct {
	Screen   ScreenBounds
	Radius   float64
	Position func() common.Vec2
}

func (b *BoundsCheck) IsOnScreen() bool {
	if b == nil || b.Position == nil {
		return false
	}
	p := b.Position()
	w, h := b.AllowedRange()
	return math.Abs(p.X) <= w && math.Abs(p.Y) <= h
}

// AllowedRange is the half extent a ship center may occupy while on screen.
func (b *BoundsCheck) AllowedRange() (float64, float64) {
	if b == nil {
		return 0, 0
	}
	return b.Screen.CamWidth - b.Radius, b.Screen.CamHeight - b.Radius
}

// SpawnPosition places a ship of radius r just above the top edge at a
// random x that keeps it horizontally on screen.
func SpawnPosition(rng *rand.Rand, screen ScreenBounds, r float64) common.Vec2 {
	w := math.Max(screen.CamWidth-r, 0)
	x := 0.0
	if rng != nil && w > 0 {
		x = (rng.Float64()*2 - 1) * w
	}
	return common.Vec2{X: x, Y: screen.CamHeight + r}
}
