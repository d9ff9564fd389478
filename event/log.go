package event

import (
	"sync/atomic"

	"github.com/lixenwraith/catradar/constant"
)

// Log is a lock-free bounded ring of observer records
// Thread-Safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Drain: single consumer (UI poll)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest records overwritten when full
type Log struct {
	records   [constant.LogRingSize]Record
	published [constant.LogRingSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                     // Read index
	tail      atomic.Uint64                     // Write index
	dropped   atomic.Uint64                     // Records lost to wrap since creation
}

func NewLog() *Log {
	return &Log{}
}

// Push appends a record using lock-free CAS with published flags
// Safe for concurrent producers. O(1) amortized
func (l *Log) Push(r Record) {
	for {
		currentTail := l.tail.Load()
		nextTail := currentTail + 1

		if l.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constant.LogRingMask

			l.records[idx] = r
			l.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread records
			currentHead := l.head.Load()
			if nextTail-currentHead > constant.LogRingSize {
				if l.head.CompareAndSwap(currentHead, nextTail-constant.LogRingSize) {
					l.dropped.Add(1)
				}
			}
			return
		}
	}
}

// Drain returns all pending records in FIFO order and advances head
// Single-consumer design. Checks published flags for safety
func (l *Log) Drain() []Record {
	for {
		currentHead := l.head.Load()
		currentTail := l.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > constant.LogRingSize {
			maxAvailable = constant.LogRingSize
			currentHead = currentTail - constant.LogRingSize
		}

		result := make([]Record, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & constant.LogRingMask

			if !l.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, l.records[idx])
			l.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if l.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns the approximate pending record count
func (l *Log) Len() int {
	head := l.head.Load()
	tail := l.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > constant.LogRingSize {
		return constant.LogRingSize
	}
	return diff
}

// Dropped returns how many records were lost to ring wrap since creation
func (l *Log) Dropped() uint64 {
	return l.dropped.Load()
}
