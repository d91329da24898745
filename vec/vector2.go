// Package vec implements small mutable 2D and 3D vectors.
//
// Mutating methods work in place and return the receiver so calls can be
// chained:
//
//	v := vec.NewVector2(3, 4)
//	v.Normalize().Scale(10)
package vec

import "math"

// Vector2 is two numbers packed together.
type Vector2 struct {
	X float64
	Y float64
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Copy returns an independent copy of v.
func (v *Vector2) Copy() *Vector2 {
	return &Vector2{X: v.X, Y: v.Y}
}

// SetVector copies the values of o into v.
func (v *Vector2) SetVector(o Vector2) *Vector2 {
	v.X = o.X
	v.Y = o.Y
	return v
}

func (v *Vector2) Set(x, y float64) *Vector2 {
	v.X = x
	v.Y = y
	return v
}

// Zero resets v to the zero vector.
func (v *Vector2) Zero() *Vector2 {
	v.X = 0
	v.Y = 0
	return v
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v *Vector2) Add(o Vector2) *Vector2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v *Vector2) Subtract(o Vector2) *Vector2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Scale multiplies both components by n.
func (v *Vector2) Scale(n float64) *Vector2 {
	v.X *= n
	v.Y *= n
	return v
}

// Angle returns the angle in radians that v points towards. The zero vector
// has no direction and yields NaN.
func (v Vector2) Angle() float64 {
	if v.X >= 0 {
		return math.Atan(v.Y / v.X)
	}
	return math.Pi + math.Atan(v.Y/v.X)
}

// Perpendicular rotates v 90 degrees clockwise.
func (v *Vector2) Perpendicular() *Vector2 {
	x := v.X
	v.X = v.Y
	v.Y = -x
	return v
}

// PerpendicularCC rotates v 90 degrees counter-clockwise.
func (v *Vector2) PerpendicularCC() *Vector2 {
	x := v.X
	v.X = -v.Y
	v.Y = x
	return v
}

// Invert rotates v by 180 degrees.
func (v *Vector2) Invert() *Vector2 {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) SqMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Distance(o Vector2) float64 {
	return math.Sqrt(v.SqDistance(o))
}

func (v Vector2) SqDistance(o Vector2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Normalize scales v to length 1. The zero vector is left unchanged.
func (v *Vector2) Normalize() *Vector2 {
	m := v.Magnitude()
	if m != 0 {
		inv := 1 / m
		v.X *= inv
		v.Y *= inv
	}
	return v
}
