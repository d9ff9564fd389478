package status

import (
	"math"
	"sync/atomic"
)

// Registry carries the simulation's introspection counters. Saturation on the
// tick path is silent; these counters are the only way it surfaces.
//
// The counter set is fixed: kernels write the fields directly, there is no
// per-tick key lookup. All fields are safe for concurrent writers
type Registry struct {
	// Ticks is the number of completed pipeline passes
	Ticks atomic.Int64

	// CellOverflow counts cells whose population exceeded the per-cell
	// candidate cap during an index rebuild
	CellOverflow atomic.Int64

	// CandidatesTruncated counts neighborhood cell visits that were clipped
	// to the candidate cap during classification
	CandidatesTruncated atomic.Int64

	// IntersectionsSaturated counts agents whose neighbor row reached the cap.
	// The scan stops there, so further intersecting neighbors go unrecorded
	IntersectionsSaturated atomic.Int64

	// BorderReflections counts border rewind/reflect events
	BorderReflections atomic.Int64

	// tickSeconds holds the float64 bits of the last tick's wall duration
	tickSeconds atomic.Uint64
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// SetTickSeconds records the wall duration of the last tick
func (r *Registry) SetTickSeconds(s float64) {
	r.tickSeconds.Store(math.Float64bits(s))
}

// TickSeconds returns the wall duration of the last tick
func (r *Registry) TickSeconds() float64 {
	return math.Float64frombits(r.tickSeconds.Load())
}

// Snapshot keys, stable for display and logging
const (
	MetricTicks                  = "engine.ticks"
	MetricCellOverflow           = "grid.cell_overflow"
	MetricCandidatesTruncated    = "classify.candidates_truncated"
	MetricIntersectionsSaturated = "classify.intersections_saturated"
	MetricBorderReflections      = "physics.border_reflections"
)

// IntSnapshot returns the current counter values keyed by name
func (r *Registry) IntSnapshot() map[string]int64 {
	return map[string]int64{
		MetricTicks:                  r.Ticks.Load(),
		MetricCellOverflow:           r.CellOverflow.Load(),
		MetricCandidatesTruncated:    r.CandidatesTruncated.Load(),
		MetricIntersectionsSaturated: r.IntersectionsSaturated.Load(),
		MetricBorderReflections:      r.BorderReflections.Load(),
	}
}
