package system

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/engine"
	"github.com/lixenwraith/vi-skier/vmath"
)

// Actor is what the resolver needs from the player
type Actor interface {
	Anchor() vmath.Vec3F
	LateralSign() int
	Bounce(impulse float64)
}

// Contact is one classified proximity hit
type Contact struct {
	Entity      *engine.Entity
	Interaction core.Interaction
	Distance    float64
}

// Classify applies the interaction table to one entity at a given distance
func Classify(kind core.Kind, distance float64, collected bool, cfg config.CollisionConfig) core.Interaction {
	switch kind {
	case core.KindJump:
		if distance < cfg.HazardThreshold {
			return core.InteractionBounce
		}
	case core.KindTree, core.KindRock, core.KindRivalSkier:
		if distance < cfg.HazardThreshold {
			return core.InteractionLethal
		}
	case core.KindCoin:
		if !collected && distance < cfg.CoinThreshold {
			return core.InteractionPickup
		}
	default:
		panic(fmt.Sprintf("collision: unknown kind %d", kind))
	}
	return core.InteractionNone
}

// CollisionResolver tests the player against every live entity once per tick
// Both scans always complete; a lethal hit does not stop later pickups
type CollisionResolver struct {
	cfg config.CollisionConfig
	log *logrus.Entry
}

func NewCollisionResolver(cfg config.CollisionConfig) *CollisionResolver {
	return &CollisionResolver{
		cfg: cfg,
		log: logrus.WithField("component", "collision"),
	}
}

func (r *CollisionResolver) Priority() int {
	return constants.PriorityCollision
}

func (r *CollisionResolver) Update(g *engine.Game, dt time.Duration) {
	for _, c := range r.Check(g.Player, g.Ledger, g.State) {
		ev := engine.Event{Entity: c.Entity.ID, Kind: c.Entity.Kind}
		switch c.Interaction {
		case core.InteractionBounce:
			ev.Type = engine.EventBounce
		case core.InteractionLethal:
			ev.Type = engine.EventLethal
			ev.Side = g.Player.LateralSign()
		case core.InteractionPickup:
			ev.Type = engine.EventPickup
		default:
			continue
		}
		g.Emit(ev)
	}
}

// Check runs the hazard scan then the coin scan and applies each effect
// Returns every non-none contact in scan order
func (r *CollisionResolver) Check(actor Actor, ledger *engine.Ledger, state *engine.RunState) []Contact {
	var contacts []Contact
	anchor := actor.Anchor()

	for _, e := range ledger.Hazards() {
		dist := vmath.V3FDist(anchor, e.Position)
		switch Classify(e.Kind, dist, false, r.cfg) {
		case core.InteractionBounce:
			actor.Bounce(r.cfg.BounceImpulse)
			contacts = append(contacts, Contact{Entity: e, Interaction: core.InteractionBounce, Distance: dist})
		case core.InteractionLethal:
			side := actor.LateralSign()
			state.SignalDeath(side)
			contacts = append(contacts, Contact{Entity: e, Interaction: core.InteractionLethal, Distance: dist})
			r.log.WithFields(logrus.Fields{
				"kind":     e.Kind.String(),
				"distance": dist,
				"side":     side,
			}).Debug("lethal contact")
		}
	}

	for _, e := range ledger.Collectibles() {
		if e.Collected {
			continue
		}
		dist := vmath.V3FDist(anchor, e.Position)
		if Classify(e.Kind, dist, e.Collected, r.cfg) != core.InteractionPickup {
			continue
		}
		if ledger.Collect(e) {
			state.RecordPickup()
			contacts = append(contacts, Contact{Entity: e, Interaction: core.InteractionPickup, Distance: dist})
		}
	}

	return contacts
}
