package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/catradar/vmath"
)

// grid is the uniform cell index over the field. cellSize equals R1 so any
// two agents within R1 share a cell or sit in adjacent cells. The index is
// rebuilt from scratch every tick; nothing in it survives a position update
//
// After rebuild, the agents of cell L occupy the contiguous range
// ids[listHead[L] : listTail[L]). Order within a cell is unspecified
type grid struct {
	cellSize float32
	gx, gy   int

	counts    []int32 // population per cell, linear index L = cx*gy + cy
	columnSum []int32 // population per column of cells
	prefix    []int32 // inclusive running total; cell L owns [prefix[L]-counts[L], prefix[L])
	listHead  []int32
	listCur   []int32
	listTail  []int32
	ids       []int32 // flat agent ids, len N, cell-contiguous
}

func newGrid(fieldX, fieldY, cellSize float32, n int) *grid {
	gx := int(fieldX/cellSize) + 1
	gy := int(fieldY/cellSize) + 1
	cells := gx * gy

	return &grid{
		cellSize:  cellSize,
		gx:        gx,
		gy:        gy,
		counts:    make([]int32, cells),
		columnSum: make([]int32, gx),
		prefix:    make([]int32, cells),
		listHead:  make([]int32, cells),
		listCur:   make([]int32, cells),
		listTail:  make([]int32, cells),
		ids:       make([]int32, n),
	}
}

// cellCoords maps a position to its cell. Positions sit in [0, X]x[0, Y]
// after integration; the +1 pad in gx/gy keeps the far walls in range
func (g *grid) cellCoords(p vmath.Vec2) (int, int) {
	cx := int(p.X / g.cellSize)
	cy := int(p.Y / g.cellSize)
	if cx < 0 {
		cx = 0
	} else if cx >= g.gx {
		cx = g.gx - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.gy {
		cy = g.gy - 1
	}
	return cx, cy
}

func (g *grid) cellIndex(p vmath.Vec2) int {
	cx, cy := g.cellCoords(p)
	return cx*g.gy + cy
}

// rebuild buckets every agent into its cell using two atomic passes around a
// deterministic serial prefix scan:
//
//  1. count populations (atomic per-cell increment)
//  2. sum each column
//  3. serial two-level prefix scan (column starts, then rolling down columns)
//  4. derive per-cell [head, cur, tail) triples
//  5. claim slots (atomic cursor fetch-add) and store ids
//
// Returns the number of cells whose population exceeds limitPerCell; the
// index itself always holds the full population
func (g *grid) rebuild(pos []vmath.Vec2, run kernelRunner, limitPerCell int32) int64 {
	n := len(pos)

	run.run(len(g.counts), func(_, lo, hi int) {
		clear(g.counts[lo:hi])
	})

	run.run(n, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&g.counts[g.cellIndex(pos[i])], 1)
		}
	})

	run.run(g.gx, func(_, lo, hi int) {
		for cx := lo; cx < hi; cx++ {
			var sum int32
			col := g.counts[cx*g.gy : (cx+1)*g.gy]
			for _, c := range col {
				sum += c
			}
			g.columnSum[cx] = sum
		}
	})

	// Serial scan: column starts from columnSum, then a rolling total down
	// each column so that prefix[L] is the end of cell L's id range
	var colStart int32
	for cx := 0; cx < g.gx; cx++ {
		running := colStart
		base := cx * g.gy
		for cy := 0; cy < g.gy; cy++ {
			running += g.counts[base+cy]
			g.prefix[base+cy] = running
		}
		colStart += g.columnSum[cx]
	}

	var overflow atomic.Int64
	run.run(len(g.counts), func(_, lo, hi int) {
		var local int64
		for l := lo; l < hi; l++ {
			end := g.prefix[l]
			count := g.counts[l]
			g.listHead[l] = end - count
			g.listCur[l] = end - count
			g.listTail[l] = end
			if count > limitPerCell {
				local++
			}
		}
		if local > 0 {
			overflow.Add(local)
		}
	})

	run.run(n, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			l := g.cellIndex(pos[i])
			slot := atomic.AddInt32(&g.listCur[l], 1) - 1
			g.ids[slot] = int32(i)
		}
	})

	return overflow.Load()
}
