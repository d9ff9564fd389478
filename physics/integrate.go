package physics

import (
	"github.com/lixenwraith/catradar/constant"
	"github.com/lixenwraith/catradar/vmath"
)

// IntegrateWalls snapshots each position, advances it by
// speedMult * v * dt * 60, then clamps to [0, fieldX] x [0, fieldY].
// Clamping is inclusive at both ends: a coordinate landing exactly on a wall
// counts as a hit and negates the matching velocity component.
// Operates on [lo, hi)
func IntegrateWalls(pos, vel, lastPos []vmath.Vec2, fieldX, fieldY, speedMult, dt float32, lo, hi int) {
	step := speedMult * dt * constant.TickRateNorm

	for i := lo; i < hi; i++ {
		lastPos[i] = pos[i]
		p := pos[i].Add(vel[i].Scale(step))

		if p.X <= 0 {
			p.X = 0
			vel[i].X = -vel[i].X
		} else if p.X >= fieldX {
			p.X = fieldX
			vel[i].X = -vel[i].X
		}
		if p.Y <= 0 {
			p.Y = 0
			vel[i].Y = -vel[i].Y
		} else if p.Y >= fieldY {
			p.Y = fieldY
			vel[i].Y = -vel[i].Y
		}

		pos[i] = p
	}
}

// ReflectBorders rewinds and reflects every agent whose step segment crossed
// a border. Borders are consecutive endpoint pairs; the first hit in index
// order wins and later borders are not tested, so each agent reflects at most
// once per tick. Returns the number of reflections applied to [lo, hi)
func ReflectBorders(pos, vel, lastPos []vmath.Vec2, borders []vmath.Vec2, lo, hi int) int {
	if len(borders) < 2 {
		return 0
	}

	reflected := 0
	for i := lo; i < hi; i++ {
		for b := 0; b+1 < len(borders); b += 2 {
			b1, b2 := borders[b], borders[b+1]
			if !vmath.SegmentsIntersect(lastPos[i], pos[i], b1, b2) {
				continue
			}
			vel[i] = vmath.ReflectAcrossBorder(lastPos[i], pos[i], b1, b2, vel[i])
			pos[i] = lastPos[i]
			reflected++
			break
		}
	}
	return reflected
}
