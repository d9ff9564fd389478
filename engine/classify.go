package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/catradar/constant"
	"github.com/lixenwraith/catradar/vmath"
)

// observerCapture is the per-tick result of observing one agent: its state
// before and after classification and the neighbor that established the new
// state (last writer wins). Returned by value; never shared between lanes
type observerCapture struct {
	prev    int32
	next    int32
	changer int32
}

// classify recomputes every agent's state from the freshly rebuilt grid and,
// when requested, rewrites the bounded intersection rows.
//
// Per agent the 3x3 cell neighborhood is scanned, each cell contributing at
// most LimitPerCell candidate ids. A neighbor within R0 forces INTERSECTION;
// one within R1 upgrades IDLE to INTERACT with probability
// 1/(d - 0.75*R0 + eps)^2 (certainty in testing mode). INTERACT never
// downgrades and is overridden by any later INTERSECTION finding.
//
// Early exit: with intersection rows disabled the scan stops at the first
// INTERSECTION hit; with rows enabled it keeps scanning until the row holds
// IntersectionCap ids. Truncation in either direction is silent on this path
// and only surfaces through the status counters.
//
// Never allocates, never signals
func (e *Engine) classify(in *TickInput) observerCapture {
	const stride = constant.IntersectionCap + 1

	capture := observerCapture{changer: constant.NoAgent}
	observed := in.ObservedID

	g := e.grid
	pos := e.pos
	r0, r1 := e.cfg.R0, e.cfg.R1

	var truncated, saturated atomic.Int64

	e.runner.run(len(pos), func(lane, lo, hi int) {
		rng := e.rngs[lane]
		var localTrunc, localSat int64

		for i := lo; i < hi; i++ {
			p := pos[i]
			cx, cy := g.cellCoords(p)

			state := int32(constant.StateIdle)
			changer := int32(constant.NoAgent)
			listLen := int32(0)
			var row []int32
			if in.UpdateIntersections {
				row = e.intersections[i*stride : i*stride+stride]
			}

		scan:
			for ox := cx - 1; ox <= cx+1; ox++ {
				if ox < 0 || ox >= g.gx {
					continue
				}
				for oy := cy - 1; oy <= cy+1; oy++ {
					if oy < 0 || oy >= g.gy {
						continue
					}
					l := ox*g.gy + oy
					n := g.counts[l]
					if n > constant.LimitPerCell {
						n = constant.LimitPerCell
						localTrunc++
					}
					base := g.listHead[l]
					for k := int32(0); k < n; k++ {
						j := g.ids[base+k]
						if j == int32(i) {
							continue
						}
						d := vmath.Dist(p, pos[j], in.Norm)
						if d <= r0 {
							state = constant.StateIntersection
							changer = j
							if row == nil {
								break scan
							}
							if listLen < constant.IntersectionCap {
								listLen++
								row[listLen] = j
								if listLen == constant.IntersectionCap {
									localSat++
									break scan
								}
							}
						} else if d <= r1 && state != constant.StateIntersection {
							prob := float32(1)
							if !in.TestingMode {
								den := d - 0.75*r0 + constant.InteractProbEps
								prob = 1 / (den * den)
							}
							if rng.Float32() <= prob {
								state = constant.StateInteract
								changer = j
							}
						}
					}
				}
			}

			if row != nil {
				row[0] = listLen
			}

			if int32(i) == observed {
				capture.prev = e.state[i]
				capture.next = state
				capture.changer = changer
			}
			e.state[i] = state
		}

		if localTrunc > 0 {
			truncated.Add(localTrunc)
		}
		if localSat > 0 {
			saturated.Add(localSat)
		}
	})

	e.metrics.CandidatesTruncated.Add(truncated.Load())
	e.metrics.IntersectionsSaturated.Add(saturated.Load())

	return capture
}
