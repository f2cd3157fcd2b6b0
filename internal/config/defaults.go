package config

import (
	_ "embed"
)

//go:embed defaults/falldown.yaml
var defaultFallYAML []byte

// DefaultFallConfig returns the built-in configuration.
// It mirrors defaults/falldown.yaml.
func DefaultFallConfig() FallConfig {
	return FallConfig{
		Screen: ScreenConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:          0.4,
			MoveSpeed:        5,
			LandingTolerance: 10,
		},
		Player: PlayerConfig{
			Width:  20,
			Height: 20,
		},
		Platforms: PlatformConfig{
			Width:         100,
			Height:        15,
			Reach:         150,
			MinGap:        80,
			InitialMaxGap: 140,
			HazardChance:  0.05,
			SeedOffset:    100,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			Interval:       10,
			InitialSpeed:   1.5,
			SpeedIncrement: 0.25,
			GapIncrement:   10,
		},
		Input: InputConfig{
			KeyHoldTicks:    30,
			PointerDeadZone: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFallYAML
}
