package constant

// Agent interaction states
const (
	StateIdle         = 0
	StateInteract     = 1
	StateIntersection = 2
)

// StateCount is the number of distinct interaction states
const StateCount = 3

// Neighbor search limits
const (
	// LimitPerCell caps how many ids a single cell contributes as candidate
	// neighbors during classification. The grid index itself holds the full
	// physical population; the cap is applied only while scanning
	LimitPerCell = 100

	// IntersectionCap is the maximum recorded intersecting neighbors per agent.
	// Row layout is [len, id0 .. id9], so a row spans IntersectionCap+1 ints
	IntersectionCap = 10
)

// Log ring sizing
const (
	// LogRingSize is the fixed capacity of the observer record ring
	LogRingSize = 16384

	// LogRingMask is the bitmask for fast modulo operations (16384 - 1)
	LogRingMask = LogRingSize - 1
)

// NoAgent marks an absent agent id (observer disabled, no changer)
const NoAgent = -1
