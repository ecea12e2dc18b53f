package render

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/engine"
	"github.com/lixenwraith/vi-skier/vmath"
)

// Visual is one drawable registered with the Scene
type Visual struct {
	Handle   engine.VisualHandle
	Kind     core.Kind
	Player   bool
	Shape    engine.Shape
	Position vmath.Vec3F
	Rotation vmath.Vec3F
}

// Scene is the rendering collaborator: a flat registry of visuals the terminal renderer draws
type Scene struct {
	visuals map[engine.VisualHandle]*Visual
	next    engine.VisualHandle
}

func NewScene() *Scene {
	return &Scene{visuals: make(map[engine.VisualHandle]*Visual)}
}

func (s *Scene) AddVisual(desc engine.VisualDescriptor) engine.VisualHandle {
	s.next++
	s.visuals[s.next] = &Visual{
		Handle:   s.next,
		Kind:     desc.Kind,
		Player:   desc.Player,
		Shape:    desc.Shape,
		Position: desc.Position,
		Rotation: desc.Rotation,
	}
	return s.next
}

func (s *Scene) RemoveVisual(h engine.VisualHandle) {
	if _, ok := s.visuals[h]; !ok {
		panic(fmt.Sprintf("scene: remove of unknown visual %d", h))
	}
	delete(s.visuals, h)
}

func (s *Scene) SetTransform(h engine.VisualHandle, position, rotation vmath.Vec3F) {
	v, ok := s.visuals[h]
	if !ok {
		panic(fmt.Sprintf("scene: transform of unknown visual %d", h))
	}
	v.Position = position
	v.Rotation = rotation
}

// Visual returns a registered visual
func (s *Scene) Visual(h engine.VisualHandle) (*Visual, bool) {
	v, ok := s.visuals[h]
	return v, ok
}

// Visuals returns every visual in creation order
func (s *Scene) Visuals() []*Visual {
	out := make([]*Visual, 0, len(s.visuals))
	for _, v := range s.visuals {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

func (s *Scene) Len() int {
	return len(s.visuals)
}
