package system

import (
	"time"

	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/engine"
)

// PhysicsSystem steps the physics collaborator and mirrors the player body into the scene
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Priority() int {
	return constants.PriorityPhysics
}

func (s *PhysicsSystem) Update(g *engine.Game, dt time.Duration) {
	g.Physics.Step(dt)

	p := g.Player
	p.Sync()
	g.Scene.SetTransform(p.Visual, p.Position, p.Rotation)
}
