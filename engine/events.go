package engine

import "github.com/lixenwraith/vi-skier/core"

// EventType identifies a gameplay event pushed by systems during a tick
type EventType int

const (
	// EventPickup is pushed when a coin is collected
	EventPickup EventType = iota
	// EventBounce is pushed every tick the player is within range of a jump
	EventBounce
	// EventLethal is pushed on the tick a lethal hit is detected
	EventLethal
	// EventDeath is pushed when the pending death is consumed at the start of a tick
	EventDeath
	// EventGameOver is pushed when the death transition ends or is cancelled
	EventGameOver
	// EventReset is pushed when a new run starts
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventPickup:
		return "pickup"
	case EventBounce:
		return "bounce"
	case EventLethal:
		return "lethal"
	case EventDeath:
		return "death"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event carries the entity involved, if any, and the death side for death events
type Event struct {
	Type   EventType
	Entity core.Entity
	Kind   core.Kind
	Side   int
	Tick   uint64
}

// EventQueue collects events during a tick for the driver to drain after it
// Single producer and consumer, both on the game loop
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns and clears the queued events
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

func (q *EventQueue) Len() int {
	return len(q.events)
}
