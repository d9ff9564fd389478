package vmath

import "math"

// Geometry tolerances shared by the segment kernel
const (
	Eps = 1e-8
	Inf = 1e9
)

func samePoint(a, b Vec2) bool {
	return abs32(a.X-b.X) < Eps && abs32(a.Y-b.Y) < Eps
}

// pointOnLine reports whether p lies on the supporting line of (a, b)
func pointOnLine(p, a, b Vec2) bool {
	return abs32((b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X)) < Eps
}

// pointInRect reports whether p lies inside the bounding box of (a, b),
// inclusive with Eps slack
func pointInRect(p, a, b Vec2) bool {
	return min32(a.X, b.X)-Eps <= p.X && p.X <= max32(a.X, b.X)+Eps &&
		min32(a.Y, b.Y)-Eps <= p.Y && p.Y <= max32(a.Y, b.Y)+Eps
}

// SegmentsIntersect reports whether the closed segments (a1, a2) and (b1, b2)
// intersect. Degenerate (zero-length) segments are treated as points
func SegmentsIntersect(a1, a2, b1, b2 Vec2) bool {
	aDeg := samePoint(a1, a2)
	bDeg := samePoint(b1, b2)
	switch {
	case aDeg && bDeg:
		return samePoint(a1, b1)
	case aDeg:
		return pointOnLine(a1, b1, b2) && pointInRect(a1, b1, b2)
	case bDeg:
		return pointOnLine(b1, a1, a2) && pointInRect(b1, a1, a2)
	}

	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	cross := d1.Cross(d2)
	if abs32(cross) > Eps {
		t := b1.Sub(a1).Cross(d2) / cross
		p := a1.Add(d1.Scale(t))
		return pointInRect(p, a1, a2) && pointInRect(p, b1, b2)
	}

	// Parallel: intersect only if colinear and the projected intervals on the
	// dominant axis overlap
	if abs32(d1.Cross(b1.Sub(a1))) >= Eps {
		return false
	}
	if abs32(d1.X) >= abs32(d1.Y) {
		return min32(a1.X, a2.X) <= max32(b1.X, b2.X)+Eps &&
			min32(b1.X, b2.X) <= max32(a1.X, a2.X)+Eps
	}
	return min32(a1.Y, a2.Y) <= max32(b1.Y, b2.Y)+Eps &&
		min32(b1.Y, b2.Y) <= max32(a1.Y, a2.Y)+Eps
}

// angleBetween returns the unsigned angle between a and b, or Inf when either
// vector is zero
func angleBetween(a, b Vec2) float32 {
	u := a.Magnitude()
	v := b.Magnitude()
	if u == 0 || v == 0 {
		return Inf
	}
	cos := a.Dot(b) / (u * v)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return float32(math.Acos(float64(cos)))
}

// ReflectAcrossBorder returns the reflected velocity for an agent that moved
// lastPos -> newPos through the border segment (b1, b2). The border's
// perpendicular is oriented by the side lastPos is on, the signed angle
// between the motion vector and that perpendicular is measured, and -v is
// rotated by twice the angle. Magnitude is preserved
func ReflectAcrossBorder(lastPos, newPos, b1, b2, v Vec2) Vec2 {
	line := b1.Sub(b2)
	perp := line.Perpendicular()
	if perp.Dot(b1.Sub(lastPos)) < 0 {
		perp = perp.Neg()
	}

	motion := newPos.Sub(lastPos)
	angle := angleBetween(motion, perp)
	if motion.Cross(perp) < 0 {
		angle = -angle
	}

	return v.Neg().Rotate(2 * angle)
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
