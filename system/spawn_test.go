package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/engine"
	"github.com/lixenwraith/vi-skier/vmath"
)

// TestCoinRollOncePerBucket verifies refreshing a filled window never rolls new coins
func TestCoinRollOncePerBucket(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		s, ledger, _ := newTestScheduler(config.Default(), seed)
		first := s.Refresh(0)
		if first.Hazards == 0 {
			t.Fatalf("Seed %d: expected first refresh to fill the window", seed)
		}
		coins := len(ledger.Collectibles())
		for i := 0; i < 50; i++ {
			if stats := s.Refresh(0); stats.Coins != 0 || stats.Hazards != 0 {
				t.Fatalf("Seed %d refresh %d: expected no new spawns, got %+v", seed, i, stats)
			}
		}
		if len(ledger.Collectibles()) != coins {
			t.Errorf("Seed %d: coin count changed from %d to %d", seed, coins, len(ledger.Collectibles()))
		}
	}
}

func newTestScheduler(cfg *config.Config, seed uint64) (*SpawnScheduler, *engine.Ledger, *engine.SlotGrid) {
	scene := engine.NewRecordingScene()
	physics := engine.NewRecordingPhysics()
	rng := vmath.NewFastRand(seed)
	grid := engine.NewSlotGrid(cfg.Lane.Width, cfg.Lane.Slots, rng)
	ledger := engine.NewLedger(scene, physics, engine.LedgerLimits{
		MaxHazards:      cfg.Ledger.MaxHazards,
		MaxCollectibles: cfg.Ledger.MaxCollectibles,
		BehindMargin:    cfg.Ledger.BehindMargin,
		SegmentSpacing:  cfg.Spawn.Spacing,
	})
	factory := engine.NewEntityFactory(scene, physics, rng, cfg.Hazard)
	kinds, err := cfg.HazardKinds()
	if err != nil {
		panic(err)
	}
	return NewSpawnScheduler(grid, factory, ledger, rng, kinds, cfg.Spawn), ledger, grid
}

type bucketCount struct {
	hazards int
	coins   int
	slots   map[int]int
}

// census groups live entities by nearest bucket
func census(ledger *engine.Ledger, grid *engine.SlotGrid, spacing float64) map[int64]*bucketCount {
	out := make(map[int64]*bucketCount)
	add := func(e *engine.Entity) {
		key := int64(math.Round(e.Position.Z / spacing))
		b, ok := out[key]
		if !ok {
			b = &bucketCount{slots: make(map[int]int)}
			out[key] = b
		}
		if e.IsHazard() {
			b.hazards++
		} else {
			b.coins++
		}
		b.slots[grid.SlotOf(e.Position.X)]++
	}
	for _, e := range ledger.Hazards() {
		add(e)
	}
	for _, e := range ledger.Collectibles() {
		add(e)
	}
	return out
}

// TestBucketsWindow verifies the window spans near to far in spacing steps
func TestBucketsWindow(t *testing.T) {
	s, _, _ := newTestScheduler(config.Default(), 1)

	b := s.Buckets(0)
	if len(b) != 11 || b[0] != -100 || b[len(b)-1] != -300 {
		t.Errorf("Expected 11 buckets -100..-300, got %v", b)
	}

	b = s.Buckets(-5)
	if b[0] != -120 || b[len(b)-1] != -320 {
		t.Errorf("Expected -120..-320 for z=-5, got %v", b)
	}
}

// TestRefreshFillsWindow verifies every bucket reaches the group cap and a second pass adds nothing
func TestRefreshFillsWindow(t *testing.T) {
	cfg := config.Default()
	s, ledger, _ := newTestScheduler(cfg, 11)

	stats := s.Refresh(0)
	if stats.Hazards != 11*cfg.Spawn.MaxPerGroup {
		t.Errorf("Expected %d hazards, got %d", 11*cfg.Spawn.MaxPerGroup, stats.Hazards)
	}
	if len(ledger.Hazards()) != stats.Hazards || len(ledger.Collectibles()) != stats.Coins {
		t.Error("Expected ledger to hold exactly what was spawned")
	}

	again := s.Refresh(0)
	if again.Hazards != 0 || again.Coins != 0 {
		t.Errorf("Expected no spawns on a full window, got %+v", again)
	}
}

// TestScenarioNoSharedSlot runs five refreshes at constant speed and checks slot exclusivity per bucket
func TestScenarioNoSharedSlot(t *testing.T) {
	cfg := config.Default()
	for seed := uint64(1); seed <= 20; seed++ {
		s, ledger, grid := newTestScheduler(cfg, seed)

		z := 0.0
		for step := 0; step < 5; step++ {
			s.Refresh(z)
			ledger.Prune(z)
			ledger.EnforceCaps()

			for key, b := range census(ledger, grid, cfg.Spawn.Spacing) {
				for slot, n := range b.slots {
					if n > 1 {
						t.Fatalf("seed %d step %d: bucket %d slot %d shared by %d entities", seed, step, key, slot, n)
					}
				}
				if b.hazards > cfg.Spawn.MaxPerGroup {
					t.Fatalf("seed %d: bucket %d holds %d hazards", seed, key, b.hazards)
				}
				if b.coins > 1 {
					t.Fatalf("seed %d: bucket %d holds %d coins", seed, key, b.coins)
				}
			}
			z -= 7
		}
	}
}

// TestSpawnDistribution checks kind and coin rates statistically
func TestSpawnDistribution(t *testing.T) {
	cfg := config.Default()
	kindCounts := make(map[core.Kind]int)
	coins, buckets, hazards := 0, 0, 0

	for seed := uint64(1); seed <= 200; seed++ {
		s, ledger, _ := newTestScheduler(cfg, seed)
		stats := s.Refresh(0)
		buckets += stats.Buckets
		coins += stats.Coins
		hazards += stats.Hazards
		for _, e := range ledger.Hazards() {
			kindCounts[e.Kind]++
		}
	}

	expectedPerKind := float64(hazards) / float64(len(core.HazardKinds))
	for _, k := range core.HazardKinds {
		if got := float64(kindCounts[k]); math.Abs(got-expectedPerKind) > expectedPerKind*0.15 {
			t.Errorf("Kind %s drawn %v times, expected about %v", k, got, expectedPerKind)
		}
	}

	rate := float64(coins) / float64(buckets)
	if math.Abs(rate-cfg.Spawn.CoinChance) > 0.06 {
		t.Errorf("Coin rate %.3f, expected about %.2f", rate, cfg.Spawn.CoinChance)
	}
}

// TestSpawnRestrictedKinds verifies only configured kinds are drawn
func TestSpawnRestrictedKinds(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Kinds = []string{"tree", "rock"}
	s, ledger, _ := newTestScheduler(cfg, 3)
	s.Refresh(0)

	for _, e := range ledger.Hazards() {
		if e.Kind != core.KindTree && e.Kind != core.KindRock {
			t.Fatalf("Unexpected kind %s", e.Kind)
		}
	}
}

// TestSpawnCapacityExhaustion verifies a full segment silently skips the rest
func TestSpawnCapacityExhaustion(t *testing.T) {
	cfg := config.Default()
	cfg.Lane.Slots = 2
	cfg.Spawn.CoinChance = 1
	s, ledger, grid := newTestScheduler(cfg, 9)

	stats := s.Refresh(0)
	if stats.Hazards != 22 {
		t.Errorf("Expected 2 hazards per bucket, got %d total", stats.Hazards)
	}
	if stats.Coins != 0 {
		t.Errorf("Expected no room for coins, got %d", stats.Coins)
	}
	if stats.Skipped == 0 {
		t.Error("Expected skipped attempts to be counted")
	}

	s.Refresh(0)
	for key, b := range census(ledger, grid, cfg.Spawn.Spacing) {
		if b.hazards != 2 {
			t.Errorf("Bucket %d: expected 2 hazards, got %d", key, b.hazards)
		}
	}
}

// TestSpawnCountsExistingEntities verifies pre-placed hazards and coins are respected
func TestSpawnCountsExistingEntities(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.CoinChance = 1
	s, ledger, grid := newTestScheduler(cfg, 4)

	f := s.factory
	ledger.Insert(f.Tree(vmath.V3F(grid.CenterX(0), 0, -100)))
	ledger.Insert(f.Tree(vmath.V3F(grid.CenterX(1), 0, -100)))
	ledger.Insert(f.Tree(vmath.V3F(grid.CenterX(2), 0, -100)))

	s.Refresh(0)

	b := census(ledger, grid, cfg.Spawn.Spacing)[-5]
	if b.hazards != 3 {
		t.Errorf("Expected full bucket untouched, got %d hazards", b.hazards)
	}
	if b.coins != 0 {
		t.Errorf("Expected no coin in a bucket that needed no hazards, got %d", b.coins)
	}
}
