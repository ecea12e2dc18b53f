package engine

import (
	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/vmath"
)

var playerShape = Shape{Type: ShapeBox, Size: vmath.V3F(1, 2, 1)}

const playerMass = 5.0

// Player is the skier actor: a dynamic body steered laterally and pushed downhill
type Player struct {
	Visual VisualHandle
	Body   BodyHandle

	// Position and Velocity mirror the body after each physics step
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Rotation vmath.Vec3F

	// Intent is the lateral steering input in {-1, 0, +1}
	Intent int
	// ForwardSpeed grows by the configured acceleration every second of simulation
	ForwardSpeed float64

	physics Physics
	cfg     config.PlayerConfig
}

// SpawnPlayer registers the player visual and body at start
func SpawnPlayer(scene Scene, physics Physics, cfg config.PlayerConfig, start vmath.Vec3F) *Player {
	pos := vmath.V3F(start.X, cfg.Height, start.Z)
	p := &Player{
		Position:     pos,
		ForwardSpeed: cfg.InitialSpeed,
		physics:      physics,
		cfg:          cfg,
	}
	p.Body = physics.AddBody(BodySpec{
		Shape:    playerShape,
		Type:     BodyDynamic,
		Mass:     playerMass,
		Position: pos,
		Velocity: vmath.V3F(0, 0, -cfg.InitialSpeed),
	})
	p.Visual = scene.AddVisual(VisualDescriptor{
		Shape:    playerShape,
		Position: pos,
		Player:   true,
	})
	p.Velocity = vmath.V3F(0, 0, -cfg.InitialSpeed)
	return p
}

// Config returns the tuning the player was spawned with
func (p *Player) Config() config.PlayerConfig {
	return p.cfg
}

// LateralSign is the sign of the current lateral velocity, +1 when still
func (p *Player) LateralSign() int {
	if p.Velocity.X < 0 {
		return -1
	}
	return 1
}

// Bounce sets the vertical velocity to impulse, keeping lateral and forward motion
func (p *Player) Bounce(impulse float64) {
	v := p.physics.BodyVelocity(p.Body)
	v.Y = impulse
	p.physics.SetBodyVelocity(p.Body, v)
	p.Velocity = v
}

// Sync copies the body state into the actor
func (p *Player) Sync() {
	p.Position = p.physics.BodyPosition(p.Body)
	p.Velocity = p.physics.BodyVelocity(p.Body)
}

// Release frees the player's handles
func (p *Player) Release(scene Scene) {
	if p.Body != 0 {
		p.physics.RemoveBody(p.Body)
		p.Body = 0
	}
	if p.Visual != 0 {
		scene.RemoveVisual(p.Visual)
		p.Visual = 0
	}
}

// Anchor is the collision anchor of the player
func (p *Player) Anchor() vmath.Vec3F {
	return p.Position
}
