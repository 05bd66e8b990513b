// Package config provides YAML-based tuning for the Astro Bounce engine:
// world size, player physics, collision tolerance and animation timing.
package config

import (
	"fmt"
	"time"
)

// AstroConfig contains all tunable constants of the simulation.
type AstroConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Collision CollisionConfig `yaml:"collision"`
	Timing    TimingConfig    `yaml:"timing"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Goal      GoalConfig      `yaml:"goal"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player body and its physics constants.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`        // Horizontal units per tick
	Gravity     float64 `yaml:"gravity"`      // Added to dy every tick
	BounceForce float64 `yaml:"bounce_force"` // Negative = upward
}

// CollisionConfig defines collision resolution parameters.
type CollisionConfig struct {
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// TimingConfig defines the clock normalization and real-time delays.
type TimingConfig struct {
	TargetFPS         float64       `yaml:"target_fps"`          // dt == 1 at this frame rate
	LevelAdvanceDelay time.Duration `yaml:"level_advance_delay"` // levelComplete -> next level
}

// Frame returns the duration of one normalized frame.
func (t TimingConfig) Frame() time.Duration {
	return time.Duration(float64(time.Second) / t.TargetFPS)
}

// SpawnConfig defines the spawn vortex animation, in per-tick steps.
type SpawnConfig struct {
	VortexScale     float64 `yaml:"vortex_scale"`      // Vortex size relative to the player
	VortexGrowStep  float64 `yaml:"vortex_grow_step"`  // Units added to the vortex per tick
	VortexSpinSpeed float64 `yaml:"vortex_spin_speed"` // Radians per tick
	ProgressStep    float64 `yaml:"progress_step"`     // Animation progress per tick
	GrowThreshold   float64 `yaml:"grow_threshold"`    // Progress after which the player grows
	PlayerGrowStep  float64 `yaml:"player_grow_step"`  // Units added to the player per tick
}

// GoalConfig defines the goal-entry animation, in per-tick steps.
type GoalConfig struct {
	SpinMultiplier float64 `yaml:"spin_multiplier"` // Spin speed factor while entering
	ShrinkStep     float64 `yaml:"shrink_step"`     // Units removed from the player per tick
	EaseFactor     float64 `yaml:"ease_factor"`     // Fraction of remaining distance per tick
	CompleteWidth  float64 `yaml:"complete_width"`  // Width at or below which entry ends
}

// Validate checks that the config describes a playable world.
func (c AstroConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Player.Width > c.World.Width:
		return fmt.Errorf("config: player width %v exceeds world width %v", c.Player.Width, c.World.Width)
	case c.Player.Speed < 0:
		return fmt.Errorf("config: player speed must not be negative, got %v", c.Player.Speed)
	case c.Player.BounceForce >= 0:
		return fmt.Errorf("config: bounce_force must be negative (upward), got %v", c.Player.BounceForce)
	case c.Collision.LandingTolerance < 0:
		return fmt.Errorf("config: landing_tolerance must not be negative, got %v", c.Collision.LandingTolerance)
	case c.Timing.TargetFPS <= 0:
		return fmt.Errorf("config: target_fps must be positive, got %v", c.Timing.TargetFPS)
	case c.Timing.LevelAdvanceDelay < 0:
		return fmt.Errorf("config: level_advance_delay must not be negative, got %v", c.Timing.LevelAdvanceDelay)
	case c.Spawn.ProgressStep <= 0 || c.Spawn.PlayerGrowStep <= 0:
		return fmt.Errorf("config: spawn steps must be positive")
	case c.Spawn.VortexScale <= 0:
		return fmt.Errorf("config: spawn vortex_scale must be positive, got %v", c.Spawn.VortexScale)
	case c.Goal.ShrinkStep <= 0:
		return fmt.Errorf("config: goal shrink_step must be positive, got %v", c.Goal.ShrinkStep)
	case c.Goal.EaseFactor < 0 || c.Goal.EaseFactor > 1:
		return fmt.Errorf("config: goal ease_factor must be within [0, 1], got %v", c.Goal.EaseFactor)
	case c.Goal.CompleteWidth < 0:
		return fmt.Errorf("config: goal complete_width must not be negative, got %v", c.Goal.CompleteWidth)
	}
	return nil
}
