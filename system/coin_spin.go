package system

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/engine"
)

// CoinSpinSystem turns uncollected coins about Y, visual only
type CoinSpinSystem struct {
	rate float64
}

func NewCoinSpinSystem(rate float64) *CoinSpinSystem {
	return &CoinSpinSystem{rate: rate}
}

func (s *CoinSpinSystem) Priority() int {
	return constants.PriorityCoinSpin
}

func (s *CoinSpinSystem) Update(g *engine.Game, dt time.Duration) {
	step := s.rate * dt.Seconds()
	for _, e := range g.Ledger.Collectibles() {
		if e.Collected {
			continue
		}
		e.Rotation.Y = math.Mod(e.Rotation.Y+step, 2*math.Pi)
		g.Scene.SetTransform(e.Visual, e.Position, e.Rotation)
	}
}
