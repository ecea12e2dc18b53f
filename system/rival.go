package system

import (
	"time"

	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/engine"
)

// RivalSystem places every rival skier on its oscillation curve for the current simulation time
// Runs after the physics step so the stored anchor is fresh for collision
type RivalSystem struct{}

func NewRivalSystem() *RivalSystem {
	return &RivalSystem{}
}

func (s *RivalSystem) Priority() int {
	return constants.PriorityRival
}

func (s *RivalSystem) Update(g *engine.Game, dt time.Duration) {
	elapsed := g.Elapsed()
	for _, e := range g.Ledger.Hazards() {
		if e.Oscillation == nil {
			continue
		}
		pos := g.Physics.BodyPosition(e.Body)
		pos.X = e.Oscillation.XAt(elapsed)
		g.Physics.SetBodyPosition(e.Body, pos)
		e.Position = pos
		g.Scene.SetTransform(e.Visual, e.Position, e.Rotation)
	}
}
