package gamemath

// Hitbox is an axis-aligned rectangle anchored at its bottom-left corner.
type Hitbox struct {
	X, Y, W, H float64
}

// NewHitbox creates a hitbox at (x, y) with the given size.
func NewHitbox(x, y, w, h float64) Hitbox {
	return Hitbox{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (h Hitbox) Right() float64 {
	return h.X + h.W
}

// Top returns the y-coordinate of the top edge.
func (h Hitbox) Top() float64 {
	return h.Y + h.H
}

// Move repositions the box to (x, y), keeping its size.
func (h *Hitbox) Move(x, y float64) {
	h.X = x
	h.Y = y
}

// Intersects reports whether the two boxes overlap on both axes.
// Boxes that only share an edge do not intersect.
func (h Hitbox) Intersects(other Hitbox) bool {
	if h.X >= other.Right() || other.X >= h.Right() {
		return false
	}
	if h.Y >= other.Top() || other.Y >= h.Top() {
		return false
	}
	return true
}
