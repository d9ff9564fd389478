package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/catradar/constant"
	"github.com/lixenwraith/catradar/vmath"
)

func TestCarouselAdvancesHeading(t *testing.T) {
	vel := make([]vmath.Vec2, 2)
	angles := []float32{0, float32(2*math.Pi) - 0.01}
	speeds := []float32{3, 2}

	Carousel(vel, angles, speeds, 0, 2)

	if math.Abs(float64(angles[0])-0.05) > 1e-6 {
		t.Errorf("angles[0] = %v, want 0.05", angles[0])
	}
	// Heading wraps past a full turn
	if angles[1] >= float32(2*math.Pi) {
		t.Errorf("angles[1] = %v, want wrapped below 2pi", angles[1])
	}

	for i := range vel {
		if d := math.Abs(float64(vel[i].Magnitude() - speeds[i])); d > 1e-5 {
			t.Errorf("vel[%d] magnitude = %v, want %v", i, vel[i].Magnitude(), speeds[i])
		}
	}
}

func TestCollidingDampsFastAgents(t *testing.T) {
	const stride = constant.IntersectionCap + 1

	pos := make([]vmath.Vec2, 2)
	vel := []vmath.Vec2{{X: 2, Y: 0}, {X: 0.5, Y: 0}}
	rows := make([]int32, 2*stride) // no recorded neighbors

	Colliding(pos, vel, rows, 0, 2)

	if d := math.Abs(float64(vel[0].X) - 1.9); d > 1e-6 {
		t.Errorf("fast agent vel = %v, want damped to 1.9", vel[0].X)
	}
	if vel[1].X != 0.5 {
		t.Errorf("slow agent vel = %v, want untouched 0.5", vel[1].X)
	}
}

func TestCollidingRepulsion(t *testing.T) {
	const stride = constant.IntersectionCap + 1

	pos := []vmath.Vec2{{X: 2, Y: 0}, {X: 0, Y: 0}}
	vel := make([]vmath.Vec2, 2)
	rows := make([]int32, 2*stride)
	rows[0] = 1 // agent 0 recorded one intersecting neighbor: agent 1
	rows[1] = 1

	Colliding(pos, vel, rows, 0, 2)

	// force = (2,0) / 2^3 * 10 = (2.5, 0)
	if d := math.Abs(float64(vel[0].X) - 2.5); d > 1e-5 {
		t.Errorf("vel[0].X = %v, want 2.5", vel[0].X)
	}
	// Agent 1 recorded nothing and stays put
	if vel[1] != (vmath.Vec2{}) {
		t.Errorf("vel[1] = %v, want zero", vel[1])
	}
}

func TestCollidingClampsCloseDistance(t *testing.T) {
	const stride = constant.IntersectionCap + 1

	// Neighbors closer than 1 use distance 1, bounding the repulsion
	pos := []vmath.Vec2{{X: 0.1, Y: 0}, {X: 0, Y: 0}}
	vel := make([]vmath.Vec2, 2)
	rows := make([]int32, 2*stride)
	rows[0] = 1
	rows[1] = 1

	Colliding(pos, vel, rows, 0, 1)

	// force = (0.1, 0) / 1 * 10 = (1, 0)
	if d := math.Abs(float64(vel[0].X) - 1.0); d > 1e-5 {
		t.Errorf("vel[0].X = %v, want 1.0", vel[0].X)
	}
}

func TestCursorPush(t *testing.T) {
	pos := []vmath.Vec2{{X: 10, Y: 0}, {X: 500, Y: 0}}
	vel := make([]vmath.Vec2, 2)

	CursorPush(pos, vel, vmath.Vec2{}, 0, 2)

	// In range: (10,0)/100 * 100 = (10, 0)
	if d := math.Abs(float64(vel[0].X) - 10); d > 1e-5 {
		t.Errorf("vel[0].X = %v, want 10", vel[0].X)
	}
	// Out of range agents are untouched
	if vel[1] != (vmath.Vec2{}) {
		t.Errorf("vel[1] = %v, want zero", vel[1])
	}
}
