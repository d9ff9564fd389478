package physics

import (
	"math"

	"github.com/lixenwraith/catradar/constant"
	"github.com/lixenwraith/catradar/vmath"
)

// Pattern selects the velocity updater dispatched once per tick
type Pattern int32

const (
	PatternFree Pattern = iota
	PatternCarousel
	PatternColliding
)

const twoPi = 2 * math.Pi

// Carousel advances each agent's heading by a fixed step and points the
// velocity along it, scaled by the agent's base speed. Operates on [lo, hi)
func Carousel(vel []vmath.Vec2, angles, speeds []float32, lo, hi int) {
	for i := lo; i < hi; i++ {
		a := angles[i] + constant.CarouselAngleStep
		if a >= twoPi {
			a -= twoPi
		}
		angles[i] = a
		sin, cos := math.Sincos(float64(a))
		vel[i] = vmath.Vec2{X: float32(cos) * speeds[i], Y: float32(sin) * speeds[i]}
	}
}

// Colliding applies linear damping above unit speed, then accumulates
// inverse-cube repulsion from every neighbor recorded in the agent's
// intersection row. The rows are the ones written by the classifier on the
// previous tick; the one-tick staleness is intentional (the velocity pass
// runs before the grid rebuild). Operates on [lo, hi)
func Colliding(pos, vel []vmath.Vec2, intersections []int32, lo, hi int) {
	const stride = constant.IntersectionCap + 1

	for i := lo; i < hi; i++ {
		self := pos[i]
		var force vmath.Vec2
		if vel[i].MagnitudeSq() > 1 {
			force = vel[i].Scale(-constant.CollidingDamping)
		}

		row := intersections[i*stride:]
		n := row[0]
		for k := int32(1); k <= n; k++ {
			other := pos[row[k]]
			d := self.Sub(other)
			dist := d.Magnitude()
			if dist < 1 {
				dist = 1
			}
			force = force.Add(d.Scale(constant.CollidingRepulsion / (dist * dist * dist)))
		}

		vel[i] = vel[i].Add(force)
	}
}

// CursorPush kicks every agent within the push radius away from the cursor
// with inverse-square falloff. Operates on [lo, hi)
func CursorPush(pos, vel []vmath.Vec2, cursor vmath.Vec2, lo, hi int) {
	for i := lo; i < hi; i++ {
		d := pos[i].Sub(cursor)
		dist := d.Magnitude()
		if dist > 0 && dist < constant.CursorPushRadius {
			vel[i] = vel[i].Add(d.Scale(constant.CursorPushStrength / (dist * dist)))
		}
	}
}
