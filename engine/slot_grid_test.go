package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-skier/vmath"
)

// TestSlotCenters verifies the lane-to-slot mapping and its inverse
func TestSlotCenters(t *testing.T) {
	g := NewSlotGrid(16, 4, vmath.NewFastRand(1))

	expected := []float64{-6, -2, 2, 6}
	for i, want := range expected {
		if got := g.CenterX(i); math.Abs(got-want) > 1e-9 {
			t.Errorf("CenterX(%d): expected %v, got %v", i, want, got)
		}
		if got := g.SlotOf(want); got != i {
			t.Errorf("SlotOf(%v): expected %d, got %d", want, i, got)
		}
	}
}

// TestSlotOfOutOfRange verifies drift past the lane edge yields an untracked index, not a panic
func TestSlotOfOutOfRange(t *testing.T) {
	g := NewSlotGrid(16.67, 4, vmath.NewFastRand(1))

	for _, x := range []float64{-8.5, 8.4, -20, 20} {
		if s := g.SlotOf(x); g.InRange(s) {
			t.Errorf("SlotOf(%v) = %d, expected out of range", x, s)
		}
	}
	if s := g.SlotOf(0); !g.InRange(s) {
		t.Errorf("SlotOf(0) = %d, expected in range", s)
	}
}

// TestFreeSlotExclusivity verifies picks sharing one set are injective and the N+1th fails
func TestFreeSlotExclusivity(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		g := NewSlotGrid(16.67, 4, vmath.NewFastRand(seed))
		occupied := SlotSet{}
		seen := make(map[int]bool)

		for i := 0; i < 4; i++ {
			slot, ok := g.FreeSlot(occupied)
			if !ok {
				t.Fatalf("seed %d: expected free slot on pick %d", seed, i)
			}
			if seen[slot] {
				t.Fatalf("seed %d: slot %d chosen twice", seed, slot)
			}
			if !g.InRange(slot) {
				t.Fatalf("seed %d: slot %d out of range", seed, slot)
			}
			seen[slot] = true
		}

		if _, ok := g.FreeSlot(occupied); ok {
			t.Errorf("seed %d: expected no slot after all 4 taken", seed)
		}
	}
}

// TestFreeSlotRespectsOccupied verifies pre-occupied slots are never chosen
func TestFreeSlotRespectsOccupied(t *testing.T) {
	g := NewSlotGrid(16.67, 4, vmath.NewFastRand(7))
	for i := 0; i < 200; i++ {
		occupied := SlotSet{}
		occupied.Add(0)
		occupied.Add(2)
		occupied.Add(-1) // drifted entity, ignored
		slot, ok := g.FreeSlot(occupied)
		if !ok {
			t.Fatal("Expected a free slot")
		}
		if slot != 1 && slot != 3 {
			t.Fatalf("Expected slot 1 or 3, got %d", slot)
		}
	}
}

// TestFreeSlotUniform checks the pick distribution loosely
func TestFreeSlotUniform(t *testing.T) {
	g := NewSlotGrid(16.67, 4, vmath.NewFastRand(99))
	counts := make([]int, 4)
	const trials = 8000
	for i := 0; i < trials; i++ {
		slot, _ := g.FreeSlot(SlotSet{})
		counts[slot]++
	}
	for i, c := range counts {
		if c < trials/4*8/10 || c > trials/4*12/10 {
			t.Errorf("Slot %d picked %d times, expected about %d", i, c, trials/4)
		}
	}
}

// TestNewSlotGridPanics verifies invalid lanes are programming errors
func TestNewSlotGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero slots")
		}
	}()
	NewSlotGrid(10, 0, vmath.NewFastRand(1))
}
