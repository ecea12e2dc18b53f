package core

// Interaction is the classification of a player-to-entity proximity test
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionBounce
	InteractionLethal
	InteractionPickup
)

func (i Interaction) String() string {
	switch i {
	case InteractionBounce:
		return "bounce"
	case InteractionLethal:
		return "lethal"
	case InteractionPickup:
		return "pickup"
	default:
		return "none"
	}
}
