package system

import (
	"time"

	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/engine"
	"github.com/lixenwraith/vi-skier/vmath"
)

// PlayerSystem turns lateral intent into body velocity and ramps forward speed
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

func (s *PlayerSystem) Update(g *engine.Game, dt time.Duration) {
	p := g.Player
	cfg := p.Config()

	intent := vmath.Sign(float64(p.Intent))
	p.ForwardSpeed += cfg.Acceleration * dt.Seconds()

	v := g.Physics.BodyVelocity(p.Body)
	v.X = float64(intent) * cfg.LateralSpeed
	v.Z = -p.ForwardSpeed
	g.Physics.SetBodyVelocity(p.Body, v)
	p.Velocity = v

	// Lean into the turn
	p.Rotation = vmath.V3F(0, 0, -float64(intent)*cfg.Tilt)
}
