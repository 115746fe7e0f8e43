package common

type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains reports whether p lies inside r, edges included.
func (r *Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// CenteredRect builds the rectangle [-halfW, halfW] x [-halfH, halfH].
func CenteredRect(halfW, halfH float64) Rect {
	return Rect{X: -halfW, Y: -halfH, Width: 2 * halfW, Height: 2 * halfH}
}
