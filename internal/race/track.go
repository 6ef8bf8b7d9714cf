package race

import "time"

// Track layout (in track pixels).
const (
	TrackWidth  = 900
	TrackHeight = 600
	Grass       = 80
	Kerb        = 60
	LaneLeft    = Grass + Kerb
	LaneRight   = TrackWidth - Grass - Kerb
)

// Entity extents.
const (
	CarWidth    = 46
	CarHeight   = 90
	PowerUpSize = 40
)

// Speeds in pixels per tick.
const (
	DefaultMoveSpeed  = 6
	DefaultBaseSpeed  = 5
	BoostMoveSpeed    = 12
	RushBaseSpeed     = 20
	PunctureMoveSpeed = 2
)

// Tick timing.
const (
	TicksPerSecond = 60
	TickInterval   = 16 * time.Millisecond
)

const (
	startSpawnDelay     = 50 // ticks before the first spawn check after Start
	bootstrapSpawnDelay = 40 // re-armed when the reaction test ends
	spawnIntervalMax    = 48
	spawnIntervalMin    = 20
	spawnMargin         = 8
	obstacleDrop        = 180
	powerUpDrop         = 250
	speedJitter         = 4
	maxSpeedBonus       = 6
	powerUpOdds         = 5

	playerStartOffset = 180
	verticalMargin    = 10
)

// Reaction test timing.
const (
	minGoDelay   = 1000 * time.Millisecond
	goDelayRange = 3000 // ms
)
