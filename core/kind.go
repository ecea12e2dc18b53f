package core

import "fmt"

// Kind is the closed set of spawnable entity variants
type Kind uint8

const (
	KindTree Kind = iota
	KindJump
	KindRock
	KindRivalSkier
	KindCoin

	kindCount
)

// HazardKinds lists every kind that lives in the hazard collection
var HazardKinds = []Kind{KindTree, KindJump, KindRock, KindRivalSkier}

// IsHazard reports whether the kind is a hazard (as opposed to a collectible)
func (k Kind) IsHazard() bool {
	switch k {
	case KindTree, KindJump, KindRock, KindRivalSkier:
		return true
	case KindCoin:
		return false
	default:
		panic(fmt.Sprintf("core: unknown entity kind %d", k))
	}
}

// Valid reports whether k is a member of the closed variant set
func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindJump:
		return "jump"
	case KindRock:
		return "rock"
	case KindRivalSkier:
		return "rival"
	case KindCoin:
		return "coin"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a config name back to its Kind
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown entity kind %q", name)
}
