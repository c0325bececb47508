package gamemath

import "math"

// Vector represents a 2D position or velocity.
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}
