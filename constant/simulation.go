package constant

// Field and population bounds enforced at reset
const (
	FieldMin = 1000.0
	FieldMax = 25000.0

	AgentCountMin = 500
	AgentCountMax = 5_000_000

	// RadiusMax bounds both R0 and R1; R0 <= R1 is checked separately
	RadiusMax = 50.0
)

// MaxBorders caps the number of user-placed border segments per tick
const MaxBorders = 50

// Movement tuning
const (
	// CarouselAngleStep is the per-tick heading advance in radians
	CarouselAngleStep = 0.05

	// CarouselSpeedBase and CarouselSpeedSpread give base speeds uniform in [2, 4]
	CarouselSpeedBase   = 3.0
	CarouselSpeedSpread = 1.0

	// CollidingDamping is the linear velocity resistance applied above unit speed
	CollidingDamping = 0.05

	// CollidingRepulsion scales the inverse-cube neighbor repulsion
	CollidingRepulsion = 10.0

	// CursorPushRadius and CursorPushStrength shape the inverse-square cursor kick
	CursorPushRadius   = 100.0
	CursorPushStrength = 100.0

	// TickRateNorm rescales velocities that were tuned against a 60 Hz tick
	TickRateNorm = 60.0

	// SpeedMultMax bounds the per-tick speed multiplier input
	SpeedMultMax = 5.0
)

// InteractProbEps keeps the stochastic interact denominator strictly positive
const InteractProbEps = 1e-6
