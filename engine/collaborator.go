package engine

import (
	"time"

	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/vmath"
)

// VisualHandle references a visual owned by the Scene, zero is never issued
type VisualHandle uint64

// BodyHandle references a body owned by Physics, zero is never issued
type BodyHandle uint64

// ShapeType selects the primitive a visual or body is built from
type ShapeType uint8

const (
	ShapeCylinder ShapeType = iota
	ShapeCone
	ShapeBox
	ShapeSphere
	// ShapeCompound combines Parts, each offset from the body anchor
	ShapeCompound
)

func (s ShapeType) String() string {
	switch s {
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// Shape describes collision and visual geometry in world units
// Size is the full box extent; Radius and Height apply to round shapes
type Shape struct {
	Type   ShapeType
	Size   vmath.Vec3F
	Radius float64
	Height float64
	Offset vmath.Vec3F
	Parts  []Shape
}

// Extent returns the axis-aligned half extents of the shape around its anchor
func (s Shape) Extent() vmath.Vec3F {
	switch s.Type {
	case ShapeBox:
		return vmath.V3FScale(s.Size, 0.5)
	case ShapeSphere:
		return vmath.V3F(s.Radius, s.Radius, s.Radius)
	case ShapeCylinder, ShapeCone:
		return vmath.V3F(s.Radius, s.Height/2, s.Radius)
	case ShapeCompound:
		var ext vmath.Vec3F
		for _, p := range s.Parts {
			pe := p.Extent()
			ext.X = max(ext.X, pe.X+abs(p.Offset.X))
			ext.Y = max(ext.Y, pe.Y+abs(p.Offset.Y))
			ext.Z = max(ext.Z, pe.Z+abs(p.Offset.Z))
		}
		return ext
	default:
		return vmath.Vec3F{}
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// BodyType controls how Physics integrates a body
type BodyType uint8

const (
	// BodyStatic never moves
	BodyStatic BodyType = iota
	// BodyKinematic moves only by its velocity or explicit placement, ignores gravity
	BodyKinematic
	// BodyDynamic is integrated under gravity and constrained to the ground and lane walls
	BodyDynamic
)

// BodySpec is the addBody request: shape, mass, placement
type BodySpec struct {
	Shape    Shape
	Type     BodyType
	Mass     float64
	Position vmath.Vec3F
	// Rotation is Euler angles in radians (pitch about X, yaw about Y, roll about Z)
	Rotation vmath.Vec3F
	Velocity vmath.Vec3F
}

// VisualDescriptor is the addVisual request
type VisualDescriptor struct {
	Kind     core.Kind
	Shape    Shape
	Position vmath.Vec3F
	Rotation vmath.Vec3F
	// Player marks the player avatar, which is not a spawnable Kind
	Player bool
}

// Scene is the rendering collaborator
// RemoveVisual on an unknown handle is a dangling-handle bug and panics
type Scene interface {
	AddVisual(desc VisualDescriptor) VisualHandle
	RemoveVisual(h VisualHandle)
	SetTransform(h VisualHandle, position, rotation vmath.Vec3F)
}

// Physics is the rigid-body collaborator
// RemoveBody on an unknown handle panics
type Physics interface {
	AddBody(spec BodySpec) BodyHandle
	RemoveBody(h BodyHandle)
	Step(dt time.Duration)
	BodyPosition(h BodyHandle) vmath.Vec3F
	SetBodyPosition(h BodyHandle, p vmath.Vec3F)
	BodyVelocity(h BodyHandle) vmath.Vec3F
	SetBodyVelocity(h BodyHandle, v vmath.Vec3F)
}
