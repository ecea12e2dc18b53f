package engine

import (
	"testing"

	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/vmath"
)

func newTestLedger(maxHazards, maxCollectibles int) (*Ledger, *EntityFactory, *RecordingScene, *RecordingPhysics) {
	f, scene, physics := newTestFactory(3)
	l := NewLedger(scene, physics, LedgerLimits{
		MaxHazards:      maxHazards,
		MaxCollectibles: maxCollectibles,
		BehindMargin:    50,
		SegmentSpacing:  20,
	})
	return l, f, scene, physics
}

// TestLedgerCapEvictsOldest inserts 105 hazards over a cap of 100
func TestLedgerCapEvictsOldest(t *testing.T) {
	l, f, scene, physics := newTestLedger(100, 200)

	var all []*Entity
	for i := 0; i < 105; i++ {
		e := f.Rock(vmath.V3F(0, 0, float64(-20*i)))
		l.Insert(e)
		all = append(all, e)
	}

	if evicted := l.EnforceCaps(); evicted != 5 {
		t.Fatalf("Expected 5 evictions, got %d", evicted)
	}
	if len(l.Hazards()) != 100 {
		t.Fatalf("Expected 100 hazards, got %d", len(l.Hazards()))
	}

	for i, e := range all {
		if i < 5 && e.Alive() {
			t.Errorf("Expected oldest hazard %d destroyed", i)
		}
		if i >= 5 && !e.Alive() {
			t.Errorf("Expected hazard %d alive", i)
		}
	}
	if l.Hazards()[0] != all[5] {
		t.Error("Expected the sixth inserted hazard to be the oldest survivor")
	}
	if scene.Removed != 5 || physics.Removed != 5 {
		t.Errorf("Expected 5 visual and 5 body releases, got %d/%d", scene.Removed, physics.Removed)
	}
}

// TestLedgerCapCollectibles verifies the coin cap is independent of the hazard cap
func TestLedgerCapCollectibles(t *testing.T) {
	l, f, _, _ := newTestLedger(10, 3)
	for i := 0; i < 5; i++ {
		l.Insert(f.Coin(vmath.V3F(0, 0, float64(-i))))
		l.Insert(f.Tree(vmath.V3F(0, 0, float64(-i))))
	}
	l.EnforceCaps()
	if len(l.Collectibles()) != 3 || len(l.Hazards()) != 5 {
		t.Errorf("Expected 3 coins and 5 hazards, got %d/%d", len(l.Collectibles()), len(l.Hazards()))
	}
}

// TestLedgerPrune verifies everything past the behind margin goes, nothing else does
func TestLedgerPrune(t *testing.T) {
	l, f, scene, physics := newTestLedger(100, 200)

	playerZ := -200.0
	behind := f.Tree(vmath.V3F(0, 0, playerZ+60))
	edge := f.Rock(vmath.V3F(0, 0, playerZ+49))
	ahead := f.Jump(vmath.V3F(0, 0, playerZ-100))
	coinBehind := f.Coin(vmath.V3F(0, 0, playerZ+51))
	coinAhead := f.Coin(vmath.V3F(0, 0, playerZ-20))
	for _, e := range []*Entity{behind, edge, ahead, coinBehind, coinAhead} {
		l.Insert(e)
	}

	removed := l.Prune(playerZ)
	if removed != 2 {
		t.Errorf("Expected 2 pruned, got %d", removed)
	}
	if behind.Alive() || coinBehind.Alive() {
		t.Error("Expected entities past the margin destroyed")
	}
	if !edge.Alive() || !ahead.Alive() || !coinAhead.Alive() {
		t.Error("Expected entities within the margin kept")
	}
	live := append([]*Entity{}, l.Hazards()...)
	live = append(live, l.Collectibles()...)
	for _, e := range live {
		if e.Position.Z > playerZ+50 {
			t.Errorf("Entity %d at z=%v survived prune", e.ID, e.Position.Z)
		}
	}
	if scene.Live() != 3 || physics.Live() != 3 {
		t.Errorf("Expected 3 live handles each, got %d/%d", scene.Live(), physics.Live())
	}
}

// TestLedgerCollect verifies a collected coin drops its body at once and its visual on the next prune
func TestLedgerCollect(t *testing.T) {
	l, f, scene, physics := newTestLedger(100, 200)
	coin := f.Coin(vmath.V3F(0, 0, -10))
	l.Insert(coin)

	if !l.Collect(coin) {
		t.Fatal("Expected first collect to succeed")
	}
	if l.Collect(coin) {
		t.Error("Expected second collect to report already collected")
	}
	if coin.Body != 0 || physics.Live() != 0 {
		t.Error("Expected coin body released on collect")
	}
	if scene.Live() != 1 {
		t.Error("Expected coin visual kept until prune")
	}

	l.Prune(0)
	if coin.Alive() || len(l.Collectibles()) != 0 {
		t.Error("Expected collected coin pruned regardless of position")
	}
	if scene.Live() != 0 || physics.Removed != 1 {
		t.Errorf("Expected every handle released once, scene live=%d body removes=%d", scene.Live(), physics.Removed)
	}
}

// TestLedgerDoubleDestroyPanics verifies a dangling entity is a programming error
func TestLedgerDoubleDestroyPanics(t *testing.T) {
	l, f, _, _ := newTestLedger(100, 200)
	e := f.Tree(vmath.V3F(0, 0, 0))
	l.Insert(e)
	l.destroy(e)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on double destroy")
		}
	}()
	l.destroy(e)
}

// TestLedgerCollectHazardPanics verifies only coins can be collected
func TestLedgerCollectHazardPanics(t *testing.T) {
	l, f, _, _ := newTestLedger(100, 200)
	e := f.Jump(vmath.V3F(0, 0, 0))
	l.Insert(e)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic collecting a hazard")
		}
	}()
	l.Collect(e)
}

// TestLedgerInSegment verifies the bucket query sees only entities within half a spacing
func TestLedgerInSegment(t *testing.T) {
	l, f, _, _ := newTestLedger(100, 200)
	l.Insert(f.Tree(vmath.V3F(0, 0, -100)))
	l.Insert(f.Coin(vmath.V3F(4, 0, -100)))
	l.Insert(f.Rock(vmath.V3F(0, 0, -109)))
	l.Insert(f.Rock(vmath.V3F(0, 0, -111)))
	l.Insert(f.Rock(vmath.V3F(0, 0, -120)))

	kinds := make(map[core.Kind]int)
	count := 0
	l.InSegment(-100, func(e *Entity) {
		kinds[e.Kind]++
		count++
	})
	if count != 3 {
		t.Errorf("Expected 3 entities in bucket -100, got %d", count)
	}
	if kinds[core.KindCoin] != 1 {
		t.Errorf("Expected the coin in the bucket, got %v", kinds)
	}

	l.Prune(-300)
	count = 0
	l.InSegment(-100, func(*Entity) { count++ })
	if count != 0 {
		t.Errorf("Expected pruned entities gone from the index, got %d", count)
	}
}

// TestLedgerClear verifies every handle is released
func TestLedgerClear(t *testing.T) {
	l, f, scene, physics := newTestLedger(100, 200)
	for i := 0; i < 10; i++ {
		l.Insert(f.Build(core.HazardKinds[i%len(core.HazardKinds)], vmath.V3F(0, 0, float64(-i))))
		l.Insert(f.Coin(vmath.V3F(0, 0, float64(-i))))
	}
	l.Collect(l.Collectibles()[0])

	l.Clear()
	if l.Len() != 0 || scene.Live() != 0 || physics.Live() != 0 {
		t.Errorf("Expected empty ledger and collaborators, got %d/%d/%d", l.Len(), scene.Live(), physics.Live())
	}
}
