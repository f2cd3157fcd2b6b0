// Package config provides YAML-based game configuration loading,
// difficulty presets and the difficulty progression model.
package config

import (
	"errors"
	"fmt"
)

// FallConfig contains all configuration for Fall Down.
type FallConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// ScreenConfig defines the world dimensions in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick physics constants.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	MoveSpeed        float64 `yaml:"move_speed"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// PlayerConfig defines the player hitbox.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformConfig defines platform size and generation parameters.
type PlatformConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Reach         float64 `yaml:"reach"`
	MinGap        float64 `yaml:"min_gap"`
	InitialMaxGap float64 `yaml:"initial_max_gap"`
	HazardChance  float64 `yaml:"hazard_chance"`
	SeedOffset    float64 `yaml:"seed_offset"`
}

// DifficultyConfig defines the stepwise difficulty progression.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Interval       int     `yaml:"interval"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	GapIncrement   float64 `yaml:"gap_increment"`
}

// InputConfig tunes how the host turns device events into input snapshots.
type InputConfig struct {
	KeyHoldTicks    int     `yaml:"key_hold_ticks"`
	PointerDeadZone float64 `yaml:"pointer_dead_zone"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate rejects configurations the simulation cannot run with.
// The game itself treats these as preconditions and does not re-check them.
func (c FallConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"platforms.width", c.Platforms.Width},
		{"platforms.height", c.Platforms.Height},
		{"platforms.min_gap", c.Platforms.MinGap},
		{"difficulty.initial_speed", c.Difficulty.InitialSpeed},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Platforms.Width > c.Screen.Width {
		return fmt.Errorf("%w: platforms.width %v exceeds screen.width %v", ErrInvalidConfig, c.Platforms.Width, c.Screen.Width)
	}
	if c.Player.Width > c.Screen.Width {
		return fmt.Errorf("%w: player.width %v exceeds screen.width %v", ErrInvalidConfig, c.Player.Width, c.Screen.Width)
	}
	if c.Platforms.MinGap > c.Platforms.InitialMaxGap {
		return fmt.Errorf("%w: platforms.min_gap %v exceeds initial_max_gap %v", ErrInvalidConfig, c.Platforms.MinGap, c.Platforms.InitialMaxGap)
	}
	if c.Platforms.HazardChance < 0 || c.Platforms.HazardChance >= 1 {
		return fmt.Errorf("%w: platforms.hazard_chance must be in [0, 1), got %v", ErrInvalidConfig, c.Platforms.HazardChance)
	}
	if c.Platforms.Reach < 0 {
		return fmt.Errorf("%w: platforms.reach must not be negative, got %v", ErrInvalidConfig, c.Platforms.Reach)
	}
	if c.Platforms.SeedOffset < 0 || c.Platforms.SeedOffset > c.Screen.Height {
		return fmt.Errorf("%w: platforms.seed_offset must be in [0, screen.height], got %v", ErrInvalidConfig, c.Platforms.SeedOffset)
	}
	if c.Physics.Gravity < 0 || c.Physics.MoveSpeed < 0 || c.Physics.LandingTolerance < 0 {
		return fmt.Errorf("%w: physics values must not be negative", ErrInvalidConfig)
	}
	if c.Difficulty.Interval < 0 {
		return fmt.Errorf("%w: difficulty.interval must not be negative, got %d", ErrInvalidConfig, c.Difficulty.Interval)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialSpeed = 1.0
		cfg.Platforms.HazardChance = 0.02
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialSpeed = 2.25
		cfg.Platforms.HazardChance = 0.10
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
