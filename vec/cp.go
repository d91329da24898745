package vec

import "github.com/jakecoffman/cp"

// CP converts v to a chipmunk vector.
func (v Vector2) CP() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// FromCP converts a chipmunk vector.
func FromCP(c cp.Vector) Vector2 {
	return Vector2{X: c.X, Y: c.Y}
}
