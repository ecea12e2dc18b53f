package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/vmath"
)

// Oscillation drives the lateral sway of a rival skier
// X is a pure function of elapsed simulation time, nothing accumulates between ticks
type Oscillation struct {
	BaseX     float64
	Amplitude float64
	// Frequency is in Hz of simulation time
	Frequency float64
}

// XAt returns the lateral position after elapsed simulation time
func (o Oscillation) XAt(elapsed time.Duration) float64 {
	return o.BaseX + math.Sin(2*math.Pi*o.Frequency*elapsed.Seconds())*o.Amplitude
}

// Entity is one live spawned object
// Handles are owned exclusively by the entity and released once, by the Ledger
type Entity struct {
	ID   core.Entity
	Kind core.Kind

	// Position is the collision anchor: ground anchor lifted by AnchorOffset
	Position     vmath.Vec3F
	Rotation     vmath.Vec3F
	AnchorOffset vmath.Vec3F
	Shape        Shape

	CollisionRadius float64

	// Collected is only ever set on a Coin
	Collected bool

	// Oscillation is non-nil only for a RivalSkier
	Oscillation *Oscillation

	Visual VisualHandle
	Body   BodyHandle

	seq       uint64
	segment   int64
	destroyed bool
}

// IsHazard reports whether the entity lives in the hazard collection
func (e *Entity) IsHazard() bool {
	return e.Kind.IsHazard()
}

// Alive reports whether the Ledger has not yet destroyed the entity
func (e *Entity) Alive() bool {
	return !e.destroyed
}

// Seq is the insertion order assigned by the Ledger, zero before insert
func (e *Entity) Seq() uint64 {
	return e.seq
}
