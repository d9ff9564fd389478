package engine

import (
	"fmt"

	"github.com/lixenwraith/catradar/constant"
	"github.com/lixenwraith/catradar/physics"
	"github.com/lixenwraith/catradar/vmath"
)

// InitPreset selects how positions and velocities are seeded at reset
type InitPreset int32

const (
	// InitUniform scatters agents uniformly across the field
	InitUniform InitPreset = iota
	// InitClustered packs agents into a small patch near (50, 50)
	InitClustered
)

// Config carries the reset-time parameters. A rejected Config leaves the
// engine's previous state untouched
type Config struct {
	X, Y       float32
	N          int
	R0, R1     float32
	InitPreset InitPreset
}

// Validate checks the reset invariants from the configuration interface:
// field in [FieldMin, FieldMax] on both axes, N in [AgentCountMin,
// AgentCountMax], and 0 < R0 <= R1 <= RadiusMax
func (c Config) Validate() error {
	if c.X < constant.FieldMin || c.X > constant.FieldMax {
		return fmt.Errorf("field width %v outside [%v, %v]", c.X, float32(constant.FieldMin), float32(constant.FieldMax))
	}
	if c.Y < constant.FieldMin || c.Y > constant.FieldMax {
		return fmt.Errorf("field height %v outside [%v, %v]", c.Y, float32(constant.FieldMin), float32(constant.FieldMax))
	}
	if c.N < constant.AgentCountMin || c.N > constant.AgentCountMax {
		return fmt.Errorf("agent count %d outside [%d, %d]", c.N, constant.AgentCountMin, constant.AgentCountMax)
	}
	if c.R0 <= 0 {
		return fmt.Errorf("intersection radius %v must be positive", c.R0)
	}
	if c.R0 > c.R1 {
		return fmt.Errorf("intersection radius %v exceeds interact radius %v", c.R0, c.R1)
	}
	if c.R1 > constant.RadiusMax {
		return fmt.Errorf("interact radius %v exceeds %v", c.R1, float32(constant.RadiusMax))
	}
	return nil
}

// TickInput carries everything a single tick consumes. Borders and scalars
// are snapshotted on entry; the caller may mutate its own copies afterwards
type TickInput struct {
	Dt        float32
	Pattern   physics.Pattern
	Norm      vmath.Norm
	SpeedMult float32

	CursorEnabled bool
	Cursor        vmath.Vec2

	// Borders holds consecutive endpoint pairs in world coordinates.
	// Everything past constant.MaxBorders segments is ignored
	Borders []vmath.Vec2

	// ObservedID selects the agent whose transitions are logged;
	// constant.NoAgent disables capture
	ObservedID int32

	// UpdateIntersections populates the per-agent neighbor rows consumed by
	// the colliding pattern on the next tick. When unset the classifier
	// leaves the rows alone and exits neighborhood scans on the first
	// intersection hit
	UpdateIntersections bool

	// TestingMode replaces the stochastic interact draw with certainty,
	// making classification deterministic
	TestingMode bool
}

// sanitize clamps per-tick inputs into their documented ranges
func (in *TickInput) sanitize(n int) {
	if in.Dt < 0 {
		in.Dt = 0
	}
	if in.SpeedMult < 0 {
		in.SpeedMult = 0
	} else if in.SpeedMult > constant.SpeedMultMax {
		in.SpeedMult = constant.SpeedMultMax
	}
	if len(in.Borders) > 2*constant.MaxBorders {
		in.Borders = in.Borders[:2*constant.MaxBorders]
	}
	if in.ObservedID < 0 || in.ObservedID >= int32(n) {
		in.ObservedID = constant.NoAgent
	}
}
