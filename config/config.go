package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-skier/constants"
	"github.com/lixenwraith/vi-skier/core"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// DefaultPath is the config file looked up when no -config flag is given
const DefaultPath = "vi-skier.toml"

// Duration wraps time.Duration for TOML text decoding ("2s", "150ms")
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type LaneConfig struct {
	Width float64 `toml:"width"`
	Slots int     `toml:"slots"`
}

type SpawnConfig struct {
	Spacing     float64 `toml:"spacing"`
	NearLimit   float64 `toml:"near_limit"`
	FarLimit    float64 `toml:"far_limit"`
	MaxPerGroup int     `toml:"max_per_group"`
	CoinChance  float64 `toml:"coin_chance"`
	// Kinds drawn with equal weight for hazard slots
	Kinds []string `toml:"kinds"`
}

type LedgerConfig struct {
	MaxHazards      int     `toml:"max_hazards"`
	MaxCollectibles int     `toml:"max_collectibles"`
	BehindMargin    float64 `toml:"behind_margin"`
}

type CollisionConfig struct {
	HazardThreshold float64 `toml:"hazard_threshold"`
	CoinThreshold   float64 `toml:"coin_threshold"`
	BounceImpulse   float64 `toml:"bounce_impulse"`
}

type PlayerConfig struct {
	LateralSpeed float64  `toml:"lateral_speed"`
	InitialSpeed float64  `toml:"initial_speed"`
	Acceleration float64  `toml:"acceleration"`
	Height       float64  `toml:"height"`
	Tilt         float64  `toml:"tilt"`
	SteerHold    Duration `toml:"steer_hold"`
}

type HazardConfig struct {
	JumpPitch      float64 `toml:"jump_pitch"`
	RivalAmplitude float64 `toml:"rival_amplitude"`
	RivalFreqMin   float64 `toml:"rival_freq_min"`
	RivalFreqMax   float64 `toml:"rival_freq_max"`
	RivalDrift     float64 `toml:"rival_drift"`
	CoinSpinRate   float64 `toml:"coin_spin_rate"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Config holds every tunable of a run
type Config struct {
	Lane      LaneConfig      `toml:"lane"`
	Spawn     SpawnConfig     `toml:"spawn"`
	Ledger    LedgerConfig    `toml:"ledger"`
	Collision CollisionConfig `toml:"collision"`
	Player    PlayerConfig    `toml:"player"`
	Hazard    HazardConfig    `toml:"hazard"`
	Audio     AudioConfig     `toml:"audio"`

	Gravity         float64  `toml:"gravity"`
	DeathTransition Duration `toml:"death_transition"`
	FrameInterval   Duration `toml:"frame_interval"`

	// Seed fixes the RNG; zero seeds from the clock
	Seed  uint64 `toml:"seed"`
	Debug bool   `toml:"debug"`
}

// Default returns the stock tuning
func Default() *Config {
	kinds := make([]string, 0, len(core.HazardKinds))
	for _, k := range core.HazardKinds {
		kinds = append(kinds, k.String())
	}

	return &Config{
		Lane: LaneConfig{
			Width: constants.LaneWidth,
			Slots: constants.LaneSlots,
		},
		Spawn: SpawnConfig{
			Spacing:     constants.SegmentSpacing,
			NearLimit:   constants.SpawnNearLimit,
			FarLimit:    constants.SpawnFarLimit,
			MaxPerGroup: constants.MaxHazardsPerGroup,
			CoinChance:  constants.CoinChance,
			Kinds:       kinds,
		},
		Ledger: LedgerConfig{
			MaxHazards:      constants.MaxHazards,
			MaxCollectibles: constants.MaxCollectibles,
			BehindMargin:    constants.BehindMargin,
		},
		Collision: CollisionConfig{
			HazardThreshold: constants.HazardThreshold,
			CoinThreshold:   constants.CoinThreshold,
			BounceImpulse:   constants.BounceImpulse,
		},
		Player: PlayerConfig{
			LateralSpeed: constants.PlayerLateralSpeed,
			InitialSpeed: constants.PlayerInitialSpeed,
			Acceleration: constants.PlayerAcceleration,
			Height:       constants.PlayerHeight,
			Tilt:         constants.PlayerTilt,
			SteerHold:    Duration{constants.SteerHoldWindow},
		},
		Hazard: HazardConfig{
			JumpPitch:      constants.JumpPitch,
			RivalAmplitude: constants.RivalAmplitude,
			RivalFreqMin:   constants.RivalFrequencyMin,
			RivalFreqMax:   constants.RivalFrequencyMax,
			RivalDrift:     constants.RivalDrift,
			CoinSpinRate:   constants.CoinSpinRate,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Gravity:         constants.Gravity,
		DeathTransition: Duration{constants.DeathTransitionDuration},
		FrameInterval:   Duration{constants.FrameUpdateInterval},
	}
}

// Load decodes a TOML file over the defaults
// A missing file at DefaultPath is not an error, any other missing path is
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
	}

	return cfg, nil
}

// HazardKinds resolves the configured kind names
func (c *Config) HazardKinds() ([]core.Kind, error) {
	kinds := make([]core.Kind, 0, len(c.Spawn.Kinds))
	for _, name := range c.Spawn.Kinds {
		k, err := core.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("spawn.kinds: %w", err)
		}
		if !k.IsHazard() {
			return nil, fmt.Errorf("spawn.kinds: %s is not a hazard: %w", name, ErrInvalid)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Validate checks ranges and cross-field constraints
func (c *Config) Validate() error {
	check := func(ok bool, format string, args ...any) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
	}

	errs := []error{
		check(c.Lane.Width > 0, "lane.width must be positive, got %v", c.Lane.Width),
		check(c.Lane.Slots > 0, "lane.slots must be positive, got %d", c.Lane.Slots),
		check(c.Spawn.Spacing > 0, "spawn.spacing must be positive, got %v", c.Spawn.Spacing),
		check(c.Spawn.NearLimit >= 0 && c.Spawn.NearLimit < c.Spawn.FarLimit,
			"spawn.near_limit must be in [0, far_limit), got %v/%v", c.Spawn.NearLimit, c.Spawn.FarLimit),
		check(c.Spawn.MaxPerGroup > 0, "spawn.max_per_group must be positive, got %d", c.Spawn.MaxPerGroup),
		check(c.Spawn.CoinChance >= 0 && c.Spawn.CoinChance <= 1, "spawn.coin_chance must be in [0,1], got %v", c.Spawn.CoinChance),
		check(len(c.Spawn.Kinds) > 0, "spawn.kinds must not be empty"),
		check(c.Ledger.MaxHazards >= 1, "ledger.max_hazards must be at least 1, got %d", c.Ledger.MaxHazards),
		check(c.Ledger.MaxCollectibles >= 1, "ledger.max_collectibles must be at least 1, got %d", c.Ledger.MaxCollectibles),
		check(c.Ledger.BehindMargin >= 0, "ledger.behind_margin must not be negative, got %v", c.Ledger.BehindMargin),
		check(c.Collision.HazardThreshold > 0, "collision.hazard_threshold must be positive"),
		check(c.Collision.CoinThreshold > 0, "collision.coin_threshold must be positive"),
		check(c.Hazard.RivalFreqMin <= c.Hazard.RivalFreqMax,
			"hazard.rival_freq_min must not exceed rival_freq_max, got %v > %v", c.Hazard.RivalFreqMin, c.Hazard.RivalFreqMax),
		check(c.Player.LateralSpeed >= 0 && c.Player.InitialSpeed >= 0, "player speeds must not be negative"),
		check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0,1], got %v", c.Audio.Volume),
		check(c.FrameInterval.Duration > 0, "frame_interval must be positive"),
		check(c.DeathTransition.Duration >= 0, "death_transition must not be negative"),
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	_, err := c.HazardKinds()
	return err
}
