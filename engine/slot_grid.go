package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-skier/vmath"
)

// SlotSet is the caller-owned set of occupied slot indices for one segment
type SlotSet map[int]struct{}

// Add marks a slot occupied, out-of-range indices are accepted and simply never chosen
func (s SlotSet) Add(slot int) {
	s[slot] = struct{}{}
}

func (s SlotSet) Has(slot int) bool {
	_, ok := s[slot]
	return ok
}

// SlotGrid maps discrete lateral slots to lane X coordinates
// It holds no per-segment state, occupancy is passed in by the caller
type SlotGrid struct {
	width float64
	slots int
	pitch float64
	rng   vmath.Rand
}

// NewSlotGrid creates a grid of slots across a lane of the given width
// Non-positive width or slot count is a programming error
func NewSlotGrid(width float64, slots int, rng vmath.Rand) *SlotGrid {
	if width <= 0 || slots <= 0 {
		panic(fmt.Sprintf("slot grid: invalid lane %v x %d", width, slots))
	}
	return &SlotGrid{
		width: width,
		slots: slots,
		pitch: width / float64(slots),
		rng:   rng,
	}
}

func (g *SlotGrid) Width() float64 { return g.width }
func (g *SlotGrid) Slots() int     { return g.slots }

// CenterX returns the world X of a slot center
func (g *SlotGrid) CenterX(slot int) float64 {
	return -g.width/2 + g.pitch/2 + float64(slot)*g.pitch
}

// SlotOf returns the raw slot index for an X coordinate
// The result may be out of range for positions past the lane edge, check with InRange
func (g *SlotGrid) SlotOf(x float64) int {
	return int(math.Floor((x + g.width/2) / g.pitch))
}

// InRange reports whether a slot index is tracked by the grid
func (g *SlotGrid) InRange(slot int) bool {
	return slot >= 0 && slot < g.slots
}

// FreeSlot picks a uniformly random unoccupied slot and marks it in occupied
// Returns false when every slot is taken
func (g *SlotGrid) FreeSlot(occupied SlotSet) (int, bool) {
	free := make([]int, 0, g.slots)
	for i := 0; i < g.slots; i++ {
		if !occupied.Has(i) {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return 0, false
	}

	slot := free[g.rng.Intn(len(free))]
	occupied.Add(slot)
	return slot, true
}
