package vec

import "math"

// Vector3 is three numbers packed together.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v *Vector3) Copy() *Vector3 {
	return &Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v *Vector3) SetVector(o Vector3) *Vector3 {
	v.X = o.X
	v.Y = o.Y
	v.Z = o.Z
	return v
}

func (v *Vector3) Set(x, y, z float64) *Vector3 {
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

func (v *Vector3) Zero() *Vector3 {
	v.X = 0
	v.Y = 0
	v.Z = 0
	return v
}

// IsZero reports whether every component is 0.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v *Vector3) Add(o Vector3) *Vector3 {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

func (v *Vector3) Subtract(o Vector3) *Vector3 {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	return v
}

func (v *Vector3) Scale(n float64) *Vector3 {
	v.X *= n
	v.Y *= n
	v.Z *= n
	return v
}

func (v *Vector3) Invert() *Vector3 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.SqMagnitude())
}

func (v Vector3) SqMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Distance(o Vector3) float64 {
	return math.Sqrt(v.SqDistance(o))
}

func (v Vector3) SqDistance(o Vector3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return dx*dx + dy*dy + dz*dz
}

// Normalize scales v to length 1. The zero vector is left unchanged.
func (v *Vector3) Normalize() *Vector3 {
	m := v.Magnitude()
	if m != 0 {
		inv := 1 / m
		v.X *= inv
		v.Y *= inv
		v.Z *= inv
	}
	return v
}
