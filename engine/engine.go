package engine

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/catradar/constant"
	"github.com/lixenwraith/catradar/event"
	"github.com/lixenwraith/catradar/physics"
	"github.com/lixenwraith/catradar/status"
	"github.com/lixenwraith/catradar/vmath"
)

// Engine owns every simulation buffer. There is no package-level state:
// resetting builds a fresh set of arrays and the old ones are dropped.
//
// A tick is an ordered pipeline of data-parallel kernels:
// movement -> integrate+walls -> border reflect -> grid rebuild ->
// classify -> observer log. Each kernel completes before the next starts;
// the snapshots returned by the accessors are stable between ticks
type Engine struct {
	cfg Config

	pos     []vmath.Vec2
	vel     []vmath.Vec2
	lastPos []vmath.Vec2
	state   []int32

	// Carousel auxiliaries, drawn once at reset
	angles []float32
	speeds []float32

	// Bounded neighbor rows, stride IntersectionCap+1, header in column 0.
	// Written by classify, consumed by the colliding pattern one tick later
	intersections []int32

	grid   *grid
	runner kernelRunner
	rngs   []*vmath.FastRand

	log     *event.Log
	metrics *status.Registry
}

// New creates an engine for cfg. The configuration is validated the same way
// Reset validates it
func New(cfg Config) (*Engine, error) {
	e := &Engine{
		runner:  newKernelRunner(),
		log:     event.NewLog(),
		metrics: status.NewRegistry(),
	}

	e.rngs = make([]*vmath.FastRand, e.runner.workers)
	seed := uint32(time.Now().UnixNano())
	for lane := range e.rngs {
		e.rngs[lane] = vmath.NewFastRand(seed + uint32(lane)*0x9e3779b9)
	}

	if err := e.Reset(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset discards every per-agent and grid buffer, reallocates for cfg, and
// seeds positions by the configured preset. A validation failure refuses the
// reset and preserves the previous state
func (e *Engine) Reset(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	n := cfg.N
	e.cfg = cfg
	e.pos = make([]vmath.Vec2, n)
	e.vel = make([]vmath.Vec2, n)
	e.lastPos = make([]vmath.Vec2, n)
	e.state = make([]int32, n)
	e.angles = make([]float32, n)
	e.speeds = make([]float32, n)
	e.intersections = make([]int32, n*(constant.IntersectionCap+1))
	e.grid = newGrid(cfg.X, cfg.Y, cfg.R1, n)

	e.initAgents()
	return nil
}

// initAgents seeds positions, velocities, and the carousel auxiliaries
func (e *Engine) initAgents() {
	cfg := e.cfg

	e.runner.run(len(e.pos), func(lane, lo, hi int) {
		rng := e.rngs[lane]
		for i := lo; i < hi; i++ {
			if cfg.InitPreset == InitClustered {
				e.pos[i] = vmath.Vec2{X: 50 + rng.Float32()*10, Y: 50 + rng.Float32()}
				e.vel[i] = vmath.Vec2{X: 10 + rng.Float32(), Y: 10 + rng.Float32()}.Scale(0.5)
			} else {
				e.pos[i] = vmath.Vec2{X: rng.Float32() * cfg.X, Y: rng.Float32() * cfg.Y}
				e.vel[i] = vmath.Vec2{X: rng.Float32()*100 - 50, Y: rng.Float32()*100 - 50}.Scale(0.01)
			}
			e.speeds[i] = constant.CarouselSpeedBase + (rng.Float32()*2-1)*constant.CarouselSpeedSpread
			e.angles[i] = rng.Float32() * 2 * math.Pi
		}
	})
}

// Tick runs one full pipeline pass over the snapshot of in
func (e *Engine) Tick(in TickInput) {
	start := time.Now()
	in.sanitize(len(e.pos))

	switch in.Pattern {
	case physics.PatternCarousel:
		e.runner.run(len(e.pos), func(_, lo, hi int) {
			physics.Carousel(e.vel, e.angles, e.speeds, lo, hi)
		})
	case physics.PatternColliding:
		e.runner.run(len(e.pos), func(_, lo, hi int) {
			physics.Colliding(e.pos, e.vel, e.intersections, lo, hi)
		})
	}

	if in.CursorEnabled {
		e.runner.run(len(e.pos), func(_, lo, hi int) {
			physics.CursorPush(e.pos, e.vel, in.Cursor, lo, hi)
		})
	}

	e.runner.run(len(e.pos), func(_, lo, hi int) {
		physics.IntegrateWalls(e.pos, e.vel, e.lastPos, e.cfg.X, e.cfg.Y, in.SpeedMult, in.Dt, lo, hi)
	})

	if len(in.Borders) >= 2 {
		var reflected atomic.Int64
		e.runner.run(len(e.pos), func(_, lo, hi int) {
			if n := physics.ReflectBorders(e.pos, e.vel, e.lastPos, in.Borders, lo, hi); n > 0 {
				reflected.Add(int64(n))
			}
		})
		e.metrics.BorderReflections.Add(reflected.Load())
	}

	e.metrics.CellOverflow.Add(e.grid.rebuild(e.pos, e.runner, constant.LimitPerCell))

	capture := e.classify(&in)

	if in.ObservedID != constant.NoAgent && capture.prev != capture.next {
		e.log.Push(event.Record{
			Timestamp: time.Now(),
			AgentID:   in.ObservedID,
			PrevState: capture.prev,
			NewState:  capture.next,
			ChangerID: capture.changer,
		})
	}

	e.metrics.Ticks.Add(1)
	e.metrics.SetTickSeconds(time.Since(start).Seconds())
}

// Config returns the active configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// N returns the live agent count
func (e *Engine) N() int {
	return len(e.pos)
}

// Positions returns the position array. Read-only view; valid until the next
// Tick or Reset
func (e *Engine) Positions() []vmath.Vec2 {
	return e.pos
}

// Velocities returns the velocity array. Read-only view
func (e *Engine) Velocities() []vmath.Vec2 {
	return e.vel
}

// States returns the state array. Read-only view
func (e *Engine) States() []int32 {
	return e.state
}

// Intersections returns the flat neighbor rows, stride IntersectionCap+1
// with the row length in column 0. Read-only view
func (e *Engine) Intersections() []int32 {
	return e.intersections
}

// Logs drains the observer records appended since the previous call
func (e *Engine) Logs() []event.Record {
	return e.log.Drain()
}

// LogsDropped reports how many observer records were lost to ring wrap
func (e *Engine) LogsDropped() uint64 {
	return e.log.Dropped()
}

// Metrics exposes the introspection counters
func (e *Engine) Metrics() *status.Registry {
	return e.metrics
}
