// Package geom holds the axis-aligned rectangle every entity occupies.
package geom

// Rect is a top-left anchored, axis-aligned box.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o touch or intersect. Strict separation on
// either axis is the only way to miss, so shared edges count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.X > o.X+o.W ||
		r.X+r.W < o.X ||
		r.Y > o.Y+o.H ||
		r.Y+r.H < o.Y)
}

// Overlaps is the free-function form of Rect.Overlaps.
func Overlaps(a, b Rect) bool {
	return a.Overlaps(b)
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// PointRect returns a degenerate box of the given size centred on (x, y).
// The pointer is tested against entities this way.
func PointRect(x, y, size float64) Rect {
	return Rect{X: x - size/2, Y: y - size/2, W: size, H: size}
}
