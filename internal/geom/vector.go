// Package geom provides the 2D vector arithmetic used for movement.
package geom

import "math"

// Vector2 is an immutable 2D point or displacement.
// All operations return new values.
type Vector2 struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Vector2{}

// V is shorthand for Vector2{X: x, Y: y}.
func V(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by n.
func (v Vector2) Scale(n float64) Vector2 {
	return Vector2{X: v.X * n, Y: v.Y * n}
}

// Magnitude returns the euclidean length of v.
func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to length 1, or Zero if v has no length.
func (v Vector2) Normalize() Vector2 {
	m := v.Magnitude()
	if m == 0 {
		return Zero
	}
	return v.Scale(1 / m)
}

// DistanceTo returns the distance between v and o.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return o.Sub(v).Magnitude()
}
