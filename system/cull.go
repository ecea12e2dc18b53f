package system

import (
	"time"

	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/engine"
)

// CullSystem retires stale entities and enforces the live caps
// Runs after spawning and before collision so nothing about to go is tested
type CullSystem struct{}

func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

func (s *CullSystem) Priority() int {
	return constants.PriorityCull
}

func (s *CullSystem) Update(g *engine.Game, dt time.Duration) {
	g.Ledger.Prune(g.Player.Position.Z)
	g.Ledger.EnforceCaps()
}
