package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/vmath"
)

// RecordingScene is an in-memory Scene for tests
// It counts every add and remove and panics on dangling handles like a real scene
type RecordingScene struct {
	Visuals map[VisualHandle]VisualDescriptor
	Added   int
	Removed int
	next    VisualHandle
}

func NewRecordingScene() *RecordingScene {
	return &RecordingScene{Visuals: make(map[VisualHandle]VisualDescriptor)}
}

func (s *RecordingScene) AddVisual(desc VisualDescriptor) VisualHandle {
	s.next++
	s.Visuals[s.next] = desc
	s.Added++
	return s.next
}

func (s *RecordingScene) RemoveVisual(h VisualHandle) {
	if _, ok := s.Visuals[h]; !ok {
		panic(fmt.Sprintf("recording scene: remove of unknown visual %d", h))
	}
	delete(s.Visuals, h)
	s.Removed++
}

func (s *RecordingScene) SetTransform(h VisualHandle, position, rotation vmath.Vec3F) {
	desc, ok := s.Visuals[h]
	if !ok {
		panic(fmt.Sprintf("recording scene: transform of unknown visual %d", h))
	}
	desc.Position = position
	desc.Rotation = rotation
	s.Visuals[h] = desc
}

// Live returns the number of visuals not yet removed
func (s *RecordingScene) Live() int {
	return len(s.Visuals)
}

// RecordingPhysics is an in-memory Physics for tests
// Step moves non-static bodies by their velocity; there is no gravity or contact
type RecordingPhysics struct {
	Bodies  map[BodyHandle]*BodySpec
	Added   int
	Removed int
	Steps   int
	next    BodyHandle
}

func NewRecordingPhysics() *RecordingPhysics {
	return &RecordingPhysics{Bodies: make(map[BodyHandle]*BodySpec)}
}

func (p *RecordingPhysics) AddBody(spec BodySpec) BodyHandle {
	p.next++
	b := spec
	p.Bodies[p.next] = &b
	p.Added++
	return p.next
}

func (p *RecordingPhysics) RemoveBody(h BodyHandle) {
	p.body(h)
	delete(p.Bodies, h)
	p.Removed++
}

func (p *RecordingPhysics) Step(dt time.Duration) {
	p.Steps++
	sec := dt.Seconds()
	for _, b := range p.Bodies {
		if b.Type == BodyStatic {
			continue
		}
		b.Position = vmath.V3FAdd(b.Position, vmath.V3FScale(b.Velocity, sec))
	}
}

func (p *RecordingPhysics) BodyPosition(h BodyHandle) vmath.Vec3F {
	return p.body(h).Position
}

func (p *RecordingPhysics) SetBodyPosition(h BodyHandle, pos vmath.Vec3F) {
	p.body(h).Position = pos
}

func (p *RecordingPhysics) BodyVelocity(h BodyHandle) vmath.Vec3F {
	return p.body(h).Velocity
}

func (p *RecordingPhysics) SetBodyVelocity(h BodyHandle, v vmath.Vec3F) {
	p.body(h).Velocity = v
}

// Live returns the number of bodies not yet removed
func (p *RecordingPhysics) Live() int {
	return len(p.Bodies)
}

func (p *RecordingPhysics) body(h BodyHandle) *BodySpec {
	b, ok := p.Bodies[h]
	if !ok {
		panic(fmt.Sprintf("recording physics: unknown body %d", h))
	}
	return b
}

// NewTestGame creates a game over recording collaborators with a fixed seed
func NewTestGame(cfg *config.Config) (*Game, *RecordingScene, *RecordingPhysics) {
	if cfg == nil {
		cfg = config.Default()
	}
	scene := NewRecordingScene()
	physics := NewRecordingPhysics()
	g, err := NewGame(cfg, scene, physics, vmath.NewFastRand(42))
	if err != nil {
		panic(fmt.Sprintf("test game: %v", err))
	}
	return g, scene, physics
}
