package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "VI_SKIER_"

// LoadDotEnv reads KEY=VALUE pairs from files into the process environment
// Existing variables win; a missing file is not an error
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays VI_SKIER_* variables on the config
// Unparseable values are reported, not silently dropped
func (c *Config) ApplyEnv() error {
	var errs []error

	floatVar := func(name string, dst *float64) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = f
		}
	}
	intVar := func(name string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			i, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = i
		}
	}
	boolVar := func(name string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	durationVar := func(name string, dst *Duration) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			dst.Duration = d
		}
	}

	floatVar("LANE_WIDTH", &c.Lane.Width)
	intVar("LANE_SLOTS", &c.Lane.Slots)
	floatVar("SPAWN_SPACING", &c.Spawn.Spacing)
	floatVar("SPAWN_NEAR", &c.Spawn.NearLimit)
	floatVar("SPAWN_FAR", &c.Spawn.FarLimit)
	intVar("SPAWN_MAX_PER_GROUP", &c.Spawn.MaxPerGroup)
	floatVar("COIN_CHANCE", &c.Spawn.CoinChance)
	intVar("MAX_HAZARDS", &c.Ledger.MaxHazards)
	intVar("MAX_COLLECTIBLES", &c.Ledger.MaxCollectibles)
	floatVar("BEHIND_MARGIN", &c.Ledger.BehindMargin)
	floatVar("HAZARD_THRESHOLD", &c.Collision.HazardThreshold)
	floatVar("COIN_THRESHOLD", &c.Collision.CoinThreshold)
	floatVar("BOUNCE_IMPULSE", &c.Collision.BounceImpulse)
	floatVar("PLAYER_ACCELERATION", &c.Player.Acceleration)
	durationVar("DEATH_TRANSITION", &c.DeathTransition)
	boolVar("AUDIO_ENABLED", &c.Audio.Enabled)
	boolVar("DEBUG", &c.Debug)

	// Volume as 0-100, matching the other games' audio knobs
	if v, ok := os.LookupEnv(EnvPrefix + "MASTER_VOLUME"); ok {
		if vol, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.Audio.Volume = min(max(float64(vol)/100.0, 0), 1)
		} else {
			errs = append(errs, fmt.Errorf("%sMASTER_VOLUME: %w", EnvPrefix, err))
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Seed = seed
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "SPAWN_KINDS"); ok {
		var kinds []string
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				kinds = append(kinds, name)
			}
		}
		c.Spawn.Kinds = kinds
	}

	return errors.Join(errs...)
}
