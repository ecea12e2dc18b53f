package engine

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/vmath"
)

// Game owns one run: collaborators, registry, counters and the ordered system pipeline
// All methods run on the game loop goroutine
type Game struct {
	Config  *config.Config
	Scene   Scene
	Physics Physics
	Rand    vmath.Rand

	Grid    *SlotGrid
	Factory *EntityFactory
	Ledger  *Ledger
	State   *RunState
	Clock   *SimClock
	Death   *DeathSequence
	Player  *Player
	Events  EventQueue

	// HazardKinds is the resolved spawn pool
	HazardKinds []core.Kind

	systems []System
	startZ  float64
	closed  bool
	log     *logrus.Entry
}

// NewGame builds a run from a validated config
func NewGame(cfg *config.Config, scene Scene, physics Physics, rng vmath.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kinds, err := cfg.HazardKinds()
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config:      cfg,
		Scene:       scene,
		Physics:     physics,
		Rand:        rng,
		Grid:        NewSlotGrid(cfg.Lane.Width, cfg.Lane.Slots, rng),
		Factory:     NewEntityFactory(scene, physics, rng, cfg.Hazard),
		State:       NewRunState(0),
		Clock:       NewSimClock(),
		Death:       NewDeathSequence(cfg.DeathTransition.Duration),
		HazardKinds: kinds,
		log:         logrus.WithField("component", "game"),
	}
	g.Ledger = NewLedger(scene, physics, LedgerLimits{
		MaxHazards:      cfg.Ledger.MaxHazards,
		MaxCollectibles: cfg.Ledger.MaxCollectibles,
		BehindMargin:    cfg.Ledger.BehindMargin,
		SegmentSpacing:  cfg.Spawn.Spacing,
	})
	g.Player = SpawnPlayer(scene, physics, cfg.Player, vmath.V3F(0, 0, g.startZ))
	return g, nil
}

// AddSystem inserts a system keeping the pipeline sorted by priority
// Equal priorities keep registration order
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// Systems returns the pipeline in run order
func (g *Game) Systems() []System {
	return g.systems
}

// Tick advances the run by one frame
// A death signalled on the previous tick is consumed first, and a running tick runs every system in order
func (g *Game) Tick(dt time.Duration) {
	if g.closed {
		return
	}
	step := g.Clock.Advance(dt)
	if step == 0 {
		return
	}

	switch g.State.Phase {
	case PhaseRunning:
		if side, ok := g.State.consumeDeath(); ok {
			g.beginDeath(side)
			return
		}
		for _, s := range g.systems {
			s.Update(g, step)
		}
		g.State.UpdateDistance(g.Player.Position.Z)

	case PhaseDying:
		if g.Death.Advance(step) {
			g.finishDeath()
		}

	case PhaseOver:
	}
}

// Elapsed is the simulation time of the current run
func (g *Game) Elapsed() time.Duration {
	return g.Clock.Elapsed()
}

// Emit queues an event stamped with the current tick
func (g *Game) Emit(e Event) {
	e.Tick = g.Clock.Ticks()
	g.Events.Push(e)
}

// TogglePause stops or resumes simulation time while running
func (g *Game) TogglePause() bool {
	if g.State.Phase != PhaseRunning {
		return g.Clock.IsPaused()
	}
	if g.Clock.IsPaused() {
		g.Clock.Resume()
	} else {
		g.Clock.Pause()
	}
	g.log.WithField("paused", g.Clock.IsPaused()).Debug("pause toggled")
	return g.Clock.IsPaused()
}

// SkipDeath cancels the death transition straight to game over
// A death still pending from the last tick is consumed first
func (g *Game) SkipDeath() {
	if side, ok := g.State.consumeDeath(); ok {
		g.beginDeath(side)
	}
	if g.State.Phase == PhaseDying && g.Death.Cancel() {
		g.finishDeath()
	}
}

// Close ends the run and releases every handle
// Safe to call in any phase and more than once
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.SkipDeath()
	g.Ledger.Clear()
	g.Player.Release(g.Scene)
	g.closed = true
	g.log.Info("run closed")
}

// Closed reports whether Close has released the run
func (g *Game) Closed() bool {
	return g.closed
}

// Reset tears down the current run and starts a new one with the same systems
func (g *Game) Reset() {
	g.Ledger.Clear()
	g.Player.Release(g.Scene)

	g.State.Reset(g.startZ)
	g.Clock.Reset()
	g.Death.Reset()
	g.Events.Drain()
	g.Player = SpawnPlayer(g.Scene, g.Physics, g.Config.Player, vmath.V3F(0, 0, g.startZ))
	g.closed = false

	g.Emit(Event{Type: EventReset})
	g.log.Info("run reset")
}

func (g *Game) beginDeath(side int) {
	g.State.Phase = PhaseDying
	g.Death.Start(side)
	g.Emit(Event{Type: EventDeath, Side: side})

	g.log.WithFields(logrus.Fields{
		"side":     side,
		"distance": int(g.State.DistanceTraveled),
		"coins":    g.State.CoinsCollected,
	}).Info("skier down")

	if g.Death.Finished() {
		g.finishDeath()
	}
}

func (g *Game) finishDeath() {
	g.State.Phase = PhaseOver
	g.Emit(Event{Type: EventGameOver, Side: g.State.DeathSide})
}
