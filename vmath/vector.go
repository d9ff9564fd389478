package vmath

import "math"

// Vec2 is a 2D float32 vector. Value type, passed by copy on hot paths
type Vec2 struct {
	X, Y float32
}

// V2 constructs a Vec2
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns v·o
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 2D cross product v×o
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Magnitude returns the euclidean length
func (v Vec2) Magnitude() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// MagnitudeSq returns the squared length without the sqrt
func (v Vec2) MagnitudeSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Perpendicular returns v rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Rotate returns v rotated by angle radians counter-clockwise
func (v Vec2) Rotate(angle float32) Vec2 {
	sin, cos := math.Sincos(float64(angle))
	c, s := float32(cos), float32(sin)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Mirror returns v reflected about the line with unit normal n
// v' = v - 2 * dot(v, n) * n
func (v Vec2) Mirror(n Vec2) Vec2 {
	dot2 := 2 * v.Dot(n)
	return Vec2{v.X - dot2*n.X, v.Y - dot2*n.Y}
}
