package constants

import "time"

// System priorities, lower runs first
// Spawn before cull before collision: pruning first avoids colliding with entities about to go,
// collision before the next prune keeps a collected coin alive for exactly one tick
const (
	PriorityPlayer    = 10
	PriorityPhysics   = 20
	PriorityRival     = 30
	PrioritySpawn     = 40
	PriorityCull      = 50
	PriorityCollision = 60
	PriorityCoinSpin  = 70
)

// Frame timing
const (
	// FrameUpdateInterval is the simulation tick and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)
