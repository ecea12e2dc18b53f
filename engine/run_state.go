package engine

import "math"

// Phase is the run lifecycle
type Phase uint8

const (
	PhaseRunning Phase = iota
	// PhaseDying is the death transition between the lethal hit and game over
	PhaseDying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseDying:
		return "dying"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// RunState holds the player-facing counters and terminal status
// Mutated only by the CollisionResolver and the tick driver
type RunState struct {
	DistanceTraveled float64
	CoinsCollected   int
	IsGameOver       bool
	// DeathSide is -1 or +1 once IsGameOver is set, 0 before
	DeathSide int
	Phase     Phase

	startZ float64

	pendingDeath bool
	pendingSide  int
}

func NewRunState(startZ float64) *RunState {
	return &RunState{startZ: startZ}
}

// Reset starts a fresh run from startZ
func (s *RunState) Reset(startZ float64) {
	*s = RunState{startZ: startZ}
}

// RecordPickup counts one collected coin
func (s *RunState) RecordPickup() {
	s.CoinsCollected++
}

// SignalDeath records a lethal hit to be consumed at the start of the next tick
// Only the first signal of a run is kept
func (s *RunState) SignalDeath(side int) {
	if s.pendingDeath || s.IsGameOver {
		return
	}
	if side >= 0 {
		side = 1
	} else {
		side = -1
	}
	s.pendingDeath = true
	s.pendingSide = side
}

// DeathPending reports whether a lethal hit awaits the next tick
func (s *RunState) DeathPending() bool {
	return s.pendingDeath
}

// consumeDeath moves a pending death into the terminal status
func (s *RunState) consumeDeath() (int, bool) {
	if !s.pendingDeath {
		return 0, false
	}
	s.pendingDeath = false
	s.IsGameOver = true
	s.DeathSide = s.pendingSide
	return s.DeathSide, true
}

// UpdateDistance sets the distance from the run start to z
func (s *RunState) UpdateDistance(z float64) {
	s.DistanceTraveled = math.Abs(s.startZ - z)
}
