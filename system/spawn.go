package system

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/engine"
	"github.com/lixenwraith/vi-skier/vmath"
)

// SpawnScheduler keeps the forward window populated
// Each segment bucket holds at most MaxPerGroup hazards and one coin, never two in one slot
// The coin roll only runs while a bucket still lacks hazards, so it happens once per bucket
// on the refresh that fills it, not on every tick
type SpawnScheduler struct {
	grid    *engine.SlotGrid
	factory *engine.EntityFactory
	ledger  *engine.Ledger
	rng     vmath.Rand
	kinds   []core.Kind
	cfg     config.SpawnConfig

	log *logrus.Entry
}

// SpawnStats summarizes one refresh
type SpawnStats struct {
	Buckets int
	Hazards int
	Coins   int
	// Skipped counts attempts dropped for lack of a free slot
	Skipped int
}

func NewSpawnScheduler(grid *engine.SlotGrid, factory *engine.EntityFactory, ledger *engine.Ledger,
	rng vmath.Rand, kinds []core.Kind, cfg config.SpawnConfig) *SpawnScheduler {
	if len(kinds) == 0 {
		panic("spawn scheduler: empty hazard kind pool")
	}
	return &SpawnScheduler{
		grid:    grid,
		factory: factory,
		ledger:  ledger,
		rng:     rng,
		kinds:   kinds,
		cfg:     cfg,
		log:     logrus.WithField("component", "spawn"),
	}
}

func (s *SpawnScheduler) Priority() int {
	return constants.PrioritySpawn
}

func (s *SpawnScheduler) Update(g *engine.Game, dt time.Duration) {
	s.Refresh(g.Player.Position.Z)
}

// Buckets returns the segment bucket Zs of the window ahead of playerZ, nearest first
func (s *SpawnScheduler) Buckets(playerZ float64) []float64 {
	start := math.Floor(playerZ/s.cfg.Spacing)*s.cfg.Spacing - s.cfg.NearLimit
	n := int(math.Round((s.cfg.FarLimit - s.cfg.NearLimit) / s.cfg.Spacing))
	buckets := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		buckets = append(buckets, start-float64(i)*s.cfg.Spacing)
	}
	return buckets
}

// Refresh tops up every under-populated bucket in the window
func (s *SpawnScheduler) Refresh(playerZ float64) SpawnStats {
	var stats SpawnStats
	for _, z := range s.Buckets(playerZ) {
		stats.Buckets++
		s.fillBucket(z, &stats)
	}

	if stats.Hazards > 0 || stats.Coins > 0 {
		s.log.WithFields(logrus.Fields{
			"player_z": playerZ,
			"hazards":  stats.Hazards,
			"coins":    stats.Coins,
			"skipped":  stats.Skipped,
		}).Debug("window refreshed")
	}
	return stats
}

func (s *SpawnScheduler) fillBucket(z float64, stats *SpawnStats) {
	occupied := engine.SlotSet{}
	hazards := 0
	hasCoin := false

	s.ledger.InSegment(z, func(e *engine.Entity) {
		if slot := s.grid.SlotOf(e.Position.X); s.grid.InRange(slot) {
			occupied.Add(slot)
		}
		if e.IsHazard() {
			hazards++
		} else {
			hasCoin = true
		}
	})

	if hazards >= s.cfg.MaxPerGroup {
		return
	}

	for i := hazards; i < s.cfg.MaxPerGroup; i++ {
		kind := s.kinds[s.rng.Intn(len(s.kinds))]
		slot, ok := s.grid.FreeSlot(occupied)
		if !ok {
			stats.Skipped++
			break
		}
		s.place(kind, slot, z)
		stats.Hazards++
	}

	if hasCoin || s.rng.Float64() >= s.cfg.CoinChance {
		return
	}
	slot, ok := s.grid.FreeSlot(occupied)
	if !ok {
		stats.Skipped++
		return
	}
	s.place(core.KindCoin, slot, z)
	stats.Coins++
}

func (s *SpawnScheduler) place(kind core.Kind, slot int, z float64) {
	e := s.factory.Build(kind, vmath.V3F(s.grid.CenterX(slot), 0, z))
	s.ledger.Insert(e)
}
