package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/vmath"
)

// Per-kind geometry, sized after the slope props
var (
	treeShape = Shape{
		Type: ShapeCompound,
		Parts: []Shape{
			{Type: ShapeCylinder, Radius: 0.25, Height: 1, Offset: vmath.V3F(0, -0.5, 0)},
			{Type: ShapeCone, Radius: 1, Height: 2, Offset: vmath.V3F(0, 1, 0)},
		},
	}
	jumpShape  = Shape{Type: ShapeBox, Size: vmath.V3F(6, 1, 4)}
	rockShape  = Shape{Type: ShapeSphere, Radius: 0.6}
	rivalShape = Shape{Type: ShapeBox, Size: vmath.V3F(1, 2, 1)}
	coinShape  = Shape{Type: ShapeCylinder, Radius: 0.5, Height: 0.1}
)

// Anchor heights above the ground contact point
const (
	treeAnchorHeight  = 1.0
	jumpAnchorHeight  = 0.5
	rockAnchorHeight  = 0.6
	rivalAnchorHeight = 1.0
	coinAnchorHeight  = 0.5

	// rivalForwardDrift is the slow downhill creep of a rival skier in units/s
	rivalForwardDrift = -0.05
)

// EntityFactory builds entities and registers their visuals and bodies
// It never removes anything, removal belongs to the Ledger
type EntityFactory struct {
	scene   Scene
	physics Physics
	rng     vmath.Rand
	hazard  config.HazardConfig

	nextID core.Entity
}

func NewEntityFactory(scene Scene, physics Physics, rng vmath.Rand, hazard config.HazardConfig) *EntityFactory {
	return &EntityFactory{
		scene:   scene,
		physics: physics,
		rng:     rng,
		hazard:  hazard,
		nextID:  1,
	}
}

// Build dispatches to the constructor for kind
// An unknown kind is a programming error
func (f *EntityFactory) Build(kind core.Kind, anchor vmath.Vec3F) *Entity {
	switch kind {
	case core.KindTree:
		return f.Tree(anchor)
	case core.KindJump:
		return f.Jump(anchor)
	case core.KindRock:
		return f.Rock(anchor)
	case core.KindRivalSkier:
		return f.RivalSkier(anchor)
	case core.KindCoin:
		return f.Coin(anchor)
	default:
		panic(fmt.Sprintf("entity factory: unknown kind %d", kind))
	}
}

// Tree is a trunk and crown compound on a static body
func (f *EntityFactory) Tree(anchor vmath.Vec3F) *Entity {
	e := f.newEntity(core.KindTree, anchor, treeAnchorHeight, treeShape, vmath.Vec3F{}, 1.0)
	f.attach(e, BodyStatic, 0, vmath.Vec3F{})
	return e
}

// Jump is a ramp box pitched about X
func (f *EntityFactory) Jump(anchor vmath.Vec3F) *Entity {
	rot := vmath.V3F(f.hazard.JumpPitch, 0, 0)
	e := f.newEntity(core.KindJump, anchor, jumpAnchorHeight, jumpShape, rot, 1.5)
	f.attach(e, BodyStatic, 0, vmath.Vec3F{})
	return e
}

func (f *EntityFactory) Rock(anchor vmath.Vec3F) *Entity {
	e := f.newEntity(core.KindRock, anchor, rockAnchorHeight, rockShape, vmath.Vec3F{}, rockShape.Radius)
	f.attach(e, BodyStatic, 0, vmath.Vec3F{})
	return e
}

// RivalSkier sways around its anchor X on a kinematic body
// Frequency and the initial lateral drift are drawn once, at creation
func (f *EntityFactory) RivalSkier(anchor vmath.Vec3F) *Entity {
	e := f.newEntity(core.KindRivalSkier, anchor, rivalAnchorHeight, rivalShape, vmath.Vec3F{}, 0.5)

	freq := f.hazard.RivalFreqMin + f.rng.Float64()*(f.hazard.RivalFreqMax-f.hazard.RivalFreqMin)
	e.Oscillation = &Oscillation{
		BaseX:     anchor.X,
		Amplitude: f.hazard.RivalAmplitude,
		Frequency: freq,
	}

	// Drift only seeds the body velocity; RivalSystem sets X from the oscillation each tick
	drift := (f.rng.Float64() - 0.5) * f.hazard.RivalDrift
	f.attach(e, BodyKinematic, 0, vmath.V3F(drift, 0, rivalForwardDrift))
	return e
}

// Coin stands upright and spins about Y, its body is released on pickup
func (f *EntityFactory) Coin(anchor vmath.Vec3F) *Entity {
	e := f.newEntity(core.KindCoin, anchor, coinAnchorHeight, coinShape, vmath.V3F(math.Pi/2, 0, 0), coinShape.Radius)
	f.attach(e, BodyStatic, 0, vmath.Vec3F{})
	return e
}

func (f *EntityFactory) newEntity(kind core.Kind, anchor vmath.Vec3F, height float64, shape Shape, rot vmath.Vec3F, radius float64) *Entity {
	offset := vmath.V3F(0, height, 0)
	e := &Entity{
		ID:              f.nextID,
		Kind:            kind,
		Position:        vmath.V3FAdd(anchor, offset),
		Rotation:        rot,
		AnchorOffset:    offset,
		Shape:           shape,
		CollisionRadius: radius,
	}
	f.nextID++
	return e
}

func (f *EntityFactory) attach(e *Entity, bodyType BodyType, mass float64, velocity vmath.Vec3F) {
	e.Body = f.physics.AddBody(BodySpec{
		Shape:    e.Shape,
		Type:     bodyType,
		Mass:     mass,
		Position: e.Position,
		Rotation: e.Rotation,
		Velocity: velocity,
	})
	e.Visual = f.scene.AddVisual(VisualDescriptor{
		Kind:     e.Kind,
		Shape:    e.Shape,
		Position: e.Position,
		Rotation: e.Rotation,
	})
}
