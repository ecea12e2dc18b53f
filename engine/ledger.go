package engine

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Ledger is the authoritative registry of live entities
// Hazards and collectibles are kept in insertion order so caps evict oldest first
// It is the only place entities are destroyed
type Ledger struct {
	scene   Scene
	physics Physics

	maxHazards      int
	maxCollectibles int
	behindMargin    float64
	spacing         float64

	hazards      []*Entity
	collectibles []*Entity

	// segments buckets live entities by nearest segment index for spawn scans
	segments map[int64][]*Entity

	nextSeq uint64
	log     *logrus.Entry
}

// LedgerLimits bounds the live population
type LedgerLimits struct {
	MaxHazards      int
	MaxCollectibles int
	BehindMargin    float64
	SegmentSpacing  float64
}

func NewLedger(scene Scene, physics Physics, limits LedgerLimits) *Ledger {
	if limits.SegmentSpacing <= 0 {
		panic(fmt.Sprintf("ledger: segment spacing must be positive, got %v", limits.SegmentSpacing))
	}
	return &Ledger{
		scene:           scene,
		physics:         physics,
		maxHazards:      limits.MaxHazards,
		maxCollectibles: limits.MaxCollectibles,
		behindMargin:    limits.BehindMargin,
		spacing:         limits.SegmentSpacing,
		segments:        make(map[int64][]*Entity),
		log:             logrus.WithField("component", "ledger"),
	}
}

// Insert registers a freshly built entity
func (l *Ledger) Insert(e *Entity) {
	if e.destroyed {
		panic(fmt.Sprintf("ledger: insert of destroyed entity %d", e.ID))
	}
	l.nextSeq++
	e.seq = l.nextSeq

	if e.IsHazard() {
		l.hazards = append(l.hazards, e)
	} else {
		l.collectibles = append(l.collectibles, e)
	}

	e.segment = l.segmentKey(e.Position.Z)
	l.segments[e.segment] = append(l.segments[e.segment], e)
}

// Hazards returns the live hazards, oldest first
// The slice is owned by the Ledger and valid until the next mutation
func (l *Ledger) Hazards() []*Entity {
	return l.hazards
}

// Collectibles returns the live coins, oldest first, including collected ones not yet pruned
func (l *Ledger) Collectibles() []*Entity {
	return l.collectibles
}

// Len returns the total live count
func (l *Ledger) Len() int {
	return len(l.hazards) + len(l.collectibles)
}

// InSegment calls fn for every live entity within half a spacing of bucketZ
// Only the bucket and its neighbours are scanned
func (l *Ledger) InSegment(bucketZ float64, fn func(e *Entity)) {
	key := l.segmentKey(bucketZ)
	half := l.spacing / 2
	for k := key - 1; k <= key+1; k++ {
		for _, e := range l.segments[k] {
			if math.Abs(e.Position.Z-bucketZ) < half {
				fn(e)
			}
		}
	}
}

// Collect marks a coin picked up and releases its body immediately
// The visual stays until the next Prune so the pickup tick still renders it
// Returns false if the coin was already collected
func (l *Ledger) Collect(e *Entity) bool {
	if e.IsHazard() {
		panic(fmt.Sprintf("ledger: collect on hazard %d (%s)", e.ID, e.Kind))
	}
	if e.destroyed {
		panic(fmt.Sprintf("ledger: collect on destroyed coin %d", e.ID))
	}
	if e.Collected {
		return false
	}
	e.Collected = true
	if e.Body != 0 {
		l.physics.RemoveBody(e.Body)
		e.Body = 0
	}
	return true
}

// Prune destroys every entity more than the behind margin past playerZ and every collected coin
// Forward is -Z, so "behind" means a larger Z
func (l *Ledger) Prune(playerZ float64) int {
	limit := playerZ + l.behindMargin
	removed := 0

	l.hazards = l.filter(l.hazards, func(e *Entity) bool {
		return e.Position.Z > limit
	}, &removed)
	l.collectibles = l.filter(l.collectibles, func(e *Entity) bool {
		return e.Collected || e.Position.Z > limit
	}, &removed)

	if removed > 0 {
		l.log.WithFields(logrus.Fields{
			"player_z": playerZ,
			"removed":  removed,
		}).Debug("pruned")
	}
	return removed
}

// EnforceCaps evicts the oldest entries of each collection until it fits its cap
func (l *Ledger) EnforceCaps() int {
	evicted := 0
	l.hazards = l.enforceCap(l.hazards, l.maxHazards, &evicted)
	l.collectibles = l.enforceCap(l.collectibles, l.maxCollectibles, &evicted)

	if evicted > 0 {
		l.log.WithField("evicted", evicted).Debug("cap enforced")
	}
	return evicted
}

// Clear destroys every live entity
func (l *Ledger) Clear() {
	for _, e := range l.hazards {
		l.destroy(e)
	}
	for _, e := range l.collectibles {
		l.destroy(e)
	}
	l.hazards = l.hazards[:0]
	l.collectibles = l.collectibles[:0]
	clear(l.segments)
}

func (l *Ledger) enforceCap(list []*Entity, limit int, evicted *int) []*Entity {
	if len(list) <= limit {
		return list
	}
	excess := len(list) - limit
	for _, e := range list[:excess] {
		l.destroy(e)
		l.unindex(e)
	}
	*evicted += excess

	kept := list[excess:]
	out := list[:len(kept)]
	copy(out, kept)
	clearTail(list, len(kept))
	return out
}

func (l *Ledger) filter(list []*Entity, stale func(e *Entity) bool, removed *int) []*Entity {
	out := list[:0]
	for _, e := range list {
		if stale(e) {
			l.destroy(e)
			l.unindex(e)
			*removed++
			continue
		}
		out = append(out, e)
	}
	clearTail(list, len(out))
	return out
}

// destroy releases the body then the visual, exactly once
func (l *Ledger) destroy(e *Entity) {
	if e.destroyed {
		panic(fmt.Sprintf("ledger: double destroy of entity %d (%s)", e.ID, e.Kind))
	}
	e.destroyed = true

	if e.Body != 0 {
		l.physics.RemoveBody(e.Body)
		e.Body = 0
	}
	l.scene.RemoveVisual(e.Visual)
	e.Visual = 0
}

// unindex removes e from the bucket it was filed under at insert
func (l *Ledger) unindex(e *Entity) {
	bucket := l.segments[e.segment]
	for i, s := range bucket {
		if s != e {
			continue
		}
		last := len(bucket) - 1
		bucket[i] = bucket[last]
		bucket[last] = nil
		if last == 0 {
			delete(l.segments, e.segment)
		} else {
			l.segments[e.segment] = bucket[:last]
		}
		return
	}
}

func (l *Ledger) segmentKey(z float64) int64 {
	return int64(math.Round(z / l.spacing))
}

// clearTail drops references past n so destroyed entities can be collected
func clearTail(list []*Entity, n int) {
	for i := n; i < len(list); i++ {
		list[i] = nil
	}
}
