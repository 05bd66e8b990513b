package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/astrobounce.yaml
var defaultAstroYAML []byte

// DefaultAstroConfig returns the built-in tuning.
func DefaultAstroConfig() AstroConfig {
	return AstroConfig{
		World: WorldConfig{
			Width:  1200,
			Height: 900,
		},
		Player: PlayerConfig{
			Width:       45,
			Height:      45,
			Speed:       5.25,
			Gravity:     0.45,
			BounceForce: -14,
		},
		Collision: CollisionConfig{
			LandingTolerance: 1,
		},
		Timing: TimingConfig{
			TargetFPS:         60,
			LevelAdvanceDelay: time.Second,
		},
		Spawn: SpawnConfig{
			VortexScale:     1.5,
			VortexGrowStep:  2,
			VortexSpinSpeed: 0.1,
			ProgressStep:    0.02,
			GrowThreshold:   0.5,
			PlayerGrowStep:  1.5,
		},
		Goal: GoalConfig{
			SpinMultiplier: 2,
			ShrinkStep:     0.5,
			EaseFactor:     0.1,
			CompleteWidth:  1,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultAstroYAML
}
