package common

// View maps world units (origin at screen center, +Y up) to screen pixels.
type View struct {
	PixelsPerUnit float64
	Width         float64
	Height        float64
}

// ToScreen converts a world position to pixel coordinates.
func (v View) ToScreen(p Vec2) (float64, float64) {
	return v.Width/2 + p.X*v.PixelsPerUnit, v.Height/2 - p.Y*v.PixelsPerUnit
}

// ToWorld converts pixel coordinates to a world position.
func (v View) ToWorld(x, y float64) Vec2 {
	if v.PixelsPerUnit == 0 {
		return Vec2{}
	}
	return Vec2{X: (x - v.Width/2) / v.PixelsPerUnit, Y: (v.Height/2 - y) / v.PixelsPerUnit}
}

// HalfExtents returns the visible half width and half height in world units.
func (v View) HalfExtents() (float64, float64) {
	if v.PixelsPerUnit == 0 {
		return 0, 0
	}
	return v.Width / 2 / v.PixelsPerUnit, v.Height / 2 / v.PixelsPerUnit
}
