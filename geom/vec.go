package geom

import "math"

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Mul(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns the unit vector in v's direction. A vector shorter than
// Epsilon normalizes to the zero vector instead of blowing up into NaN; line
// normals built from degenerate directions then classify every point as
// SideOn, which downstream code handles, rather than poisoning every
// comparison with NaN.
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length < Epsilon {
		return Vec2{}
	}
	return Vec2{v.X / length, v.Y / length}
}

func (v Vec2) DistanceTo(other Vec2) float64 {
	return other.Sub(v).Length()
}

// Eq is tolerance-based, coordinate-wise equality.
func (v Vec2) Eq(other Vec2) bool {
	return Equal(v.X, other.X) && Equal(v.Y, other.Y)
}
