package system

import "github.com/lixenwraith/vi-skier/engine"

// Install registers the full tick pipeline on g
func Install(g *engine.Game) *SpawnScheduler {
	cfg := g.Config
	spawn := NewSpawnScheduler(g.Grid, g.Factory, g.Ledger, g.Rand, g.HazardKinds, cfg.Spawn)

	g.AddSystem(NewPlayerSystem())
	g.AddSystem(NewPhysicsSystem())
	g.AddSystem(NewRivalSystem())
	g.AddSystem(spawn)
	g.AddSystem(NewCullSystem())
	g.AddSystem(NewCollisionResolver(cfg.Collision))
	g.AddSystem(NewCoinSpinSystem(cfg.Hazard.CoinSpinRate))
	return spawn
}
