package physics

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"

	"github.com/lixenwraith/vi-skier/engine"
	"github.com/lixenwraith/vi-skier/vmath"
)

const (
	tagBorder = "border"
	tagBody   = "body"

	// Lane-local resolv frame: one cell per world unit
	wallThickness = 2
	frameMargin   = 2
	frameDepth    = 16
)

type body struct {
	spec engine.BodySpec
	half vmath.Vec3F
	// obj is the lane-local collider, dynamic bodies only
	obj *resolv.Object
}

// World is the physics collaborator
// Static bodies never move, kinematic bodies follow their velocity, dynamic bodies fall under gravity,
// rest on the ground plane and are held inside the lane walls
type World struct {
	gravity  float64
	laneHalf float64

	bodies map[engine.BodyHandle]*body
	next   engine.BodyHandle

	// space is a lane-wide slab centred on each dynamic body; walls are fixed in it,
	// so they follow the skier down the slope
	space   *resolv.Space
	originX float64
	walls   [2]*resolv.Object

	log *logrus.Entry
}

// NewWorld creates a world for a lane of the given width
func NewWorld(gravity, laneWidth float64) *World {
	if laneWidth <= 0 {
		panic(fmt.Sprintf("physics: lane width must be positive, got %v", laneWidth))
	}
	laneCells := int(math.Ceil(laneWidth))
	spaceW := laneCells + 2*(wallThickness+frameMargin)

	w := &World{
		gravity:  gravity,
		laneHalf: laneWidth / 2,
		bodies:   make(map[engine.BodyHandle]*body),
		space:    resolv.NewSpace(spaceW, frameDepth, 1, 1),
		originX:  float64(spaceW) / 2,
		log:      logrus.WithField("component", "physics"),
	}

	w.walls[0] = resolv.NewObject(w.originX-w.laneHalf-wallThickness, 0, wallThickness, frameDepth, tagBorder)
	w.walls[1] = resolv.NewObject(w.originX+w.laneHalf, 0, wallThickness, frameDepth, tagBorder)
	w.space.Add(w.walls[0], w.walls[1])
	return w
}

// LaneBounds returns the inner wall faces in world X
func (w *World) LaneBounds() (float64, float64) {
	return -w.laneHalf, w.laneHalf
}

func (w *World) AddBody(spec engine.BodySpec) engine.BodyHandle {
	w.next++
	b := &body{spec: spec, half: spec.Shape.Extent()}

	if spec.Type == engine.BodyDynamic {
		b.obj = resolv.NewObject(w.localX(spec.Position.X)-b.half.X, frameDepth/2-b.half.Z,
			2*b.half.X, 2*b.half.Z, tagBody)
		w.space.Add(b.obj)
	}

	w.bodies[w.next] = b
	return w.next
}

func (w *World) RemoveBody(h engine.BodyHandle) {
	b := w.body(h)
	if b.obj != nil {
		w.space.Remove(b.obj)
	}
	delete(w.bodies, h)
}

// Step integrates every non-static body by dt
func (w *World) Step(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}

	for _, b := range w.bodies {
		switch b.spec.Type {
		case engine.BodyStatic:
		case engine.BodyKinematic:
			b.spec.Position = vmath.V3FAdd(b.spec.Position, vmath.V3FScale(b.spec.Velocity, sec))
		case engine.BodyDynamic:
			w.stepDynamic(b, sec)
		}
	}
}

func (w *World) stepDynamic(b *body, sec float64) {
	pos, vel := b.spec.Position, b.spec.Velocity

	vel.Y += w.gravity * sec
	pos.Y += vel.Y * sec
	if ground := b.half.Y; pos.Y < ground {
		pos.Y = ground
		if vel.Y < 0 {
			vel.Y = 0
		}
	}

	pos.Z += vel.Z * sec
	pos.X += w.lateralMove(b, vel.X*sec)

	b.spec.Position, b.spec.Velocity = pos, vel
}

// lateralMove returns dx shortened so the body stops flush against a lane wall
// Velocity is left alone so steering intent survives wall contact
func (w *World) lateralMove(b *body, dx float64) float64 {
	obj := b.obj
	obj.X = w.localX(b.spec.Position.X) - b.half.X
	obj.Update()

	if dx != 0 {
		if c := obj.Check(dx, 0, tagBorder); c != nil {
			for _, wall := range c.Objects {
				if dx > 0 && wall.X >= obj.X+obj.W {
					dx = math.Min(dx, wall.X-(obj.X+obj.W))
				} else if dx < 0 && wall.X+wall.W <= obj.X {
					dx = math.Max(dx, wall.X+wall.W-obj.X)
				}
			}
		}
	}

	// Guard against tunnelling on long steps
	lo, hi := -w.laneHalf+b.half.X, w.laneHalf-b.half.X
	x := vmath.Clamp(b.spec.Position.X+dx, lo, hi)
	dx = x - b.spec.Position.X

	obj.X += dx
	obj.Update()
	return dx
}

func (w *World) BodyPosition(h engine.BodyHandle) vmath.Vec3F {
	return w.body(h).spec.Position
}

func (w *World) SetBodyPosition(h engine.BodyHandle, p vmath.Vec3F) {
	b := w.body(h)
	b.spec.Position = p
	if b.obj != nil {
		b.obj.X = w.localX(p.X) - b.half.X
		b.obj.Update()
	}
}

func (w *World) BodyVelocity(h engine.BodyHandle) vmath.Vec3F {
	return w.body(h).spec.Velocity
}

func (w *World) SetBodyVelocity(h engine.BodyHandle, v vmath.Vec3F) {
	w.body(h).spec.Velocity = v
}

// Len returns the number of live bodies
func (w *World) Len() int {
	return len(w.bodies)
}

func (w *World) localX(x float64) float64 {
	return x + w.originX
}

func (w *World) body(h engine.BodyHandle) *body {
	b, ok := w.bodies[h]
	if !ok {
		panic(fmt.Sprintf("physics: unknown body %d", h))
	}
	return b
}
