package constants

import (
	"math"
	"time"
)

// Lane
const (
	// LaneWidth is the playable width in world units, borders sit at ±LaneWidth/2
	LaneWidth = 16.67

	// LaneSlots is the number of discrete lateral spawn positions
	LaneSlots = 4
)

// Spawn Window
const (
	// SegmentSpacing is the Z distance between spawn groups
	SegmentSpacing = 20.0

	// SpawnNearLimit is how far ahead of the player the window starts
	SpawnNearLimit = 100.0

	// SpawnFarLimit is how far ahead of the player the window ends
	SpawnFarLimit = 300.0

	// MaxHazardsPerGroup is the hazard density cap for one segment
	MaxHazardsPerGroup = 3

	// CoinChance is the probability a refreshed segment also receives a coin
	CoinChance = 0.3
)

// Ledger
const (
	// MaxHazards is the hard cap on live hazards
	MaxHazards = 100

	// MaxCollectibles is the hard cap on live coins
	MaxCollectibles = 200

	// BehindMargin is how far behind the player an entity survives
	BehindMargin = 50.0
)

// Collision
const (
	// HazardThreshold is the lethal/bounce proximity radius
	HazardThreshold = 1.5

	// CoinThreshold is the pickup proximity radius
	CoinThreshold = 1.0

	// BounceImpulse is the vertical velocity set on the player by a jump ramp (units/s)
	BounceImpulse = 5.0
)

// Player
const (
	// PlayerLateralSpeed is the steering speed in units/s
	PlayerLateralSpeed = 6.0

	// PlayerInitialSpeed is the forward speed at run start in units/s
	PlayerInitialSpeed = 6.0

	// PlayerAcceleration is the constant forward speed ramp in units/s²
	PlayerAcceleration = 0.36

	// PlayerHeight is the anchor height of the player body above the ground
	PlayerHeight = 1.0

	// PlayerTilt is the roll applied while steering
	PlayerTilt = math.Pi / 8

	// SteerHoldWindow is how long one key press keeps steering active
	// Terminals report no key release, repeats refresh the window
	SteerHoldWindow = 150 * time.Millisecond
)

// Hazard Geometry
const (
	// JumpPitch is the ramp tilt about X
	JumpPitch = math.Pi / 8

	// RivalAmplitude is the lateral oscillation half-range of a rival skier
	RivalAmplitude = 2.0

	// RivalFrequencyMin and RivalFrequencyMax bound the oscillation rate in Hz
	RivalFrequencyMin = 0.01
	RivalFrequencyMax = 0.03

	// RivalDrift bounds the initial lateral velocity, drawn from ±RivalDrift/2
	RivalDrift = 0.1

	// CoinSpinRate is the visual coin rotation in rad/s
	CoinSpinRate = 3.0
)

// Physics
const (
	// Gravity is the vertical acceleration applied to dynamic bodies
	Gravity = -9.82
)

// Death Sequence
const (
	// DeathTransitionDuration is the camera transition length after a lethal hit
	DeathTransitionDuration = 2 * time.Second
)
