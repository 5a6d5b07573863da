// Package config provides YAML-based round configuration loading and
// difficulty management for Skyfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SkyfallConfig contains every tunable of a Skyfall round.
type SkyfallConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Batches    BatchesConfig    `yaml:"batches"`
	PowerUp    PowerUpConfig    `yaml:"powerup"`
	Bullets    BulletsConfig    `yaml:"bullets"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Sprites    SpritesConfig    `yaml:"sprites"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the world bounds in world units (pixels).
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the player's motion parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Player gravity, units/s²
	Speed       float64 `yaml:"speed"`        // Base horizontal speed, units/s
	JumpDivisor float64 `yaml:"jump_divisor"` // Jump impulse = gravity / jump_divisor
}

// SpawnConfig defines the terrain spawn timer.
type SpawnConfig struct {
	PeriodMS       int     `yaml:"period_ms"`
	InitialGround  int     `yaml:"initial_ground"`
	GroundDivisor  float64 `yaml:"ground_divisor"`   // Ground drift = speed / ground_divisor
	StarRollMax    int     `yaml:"star_roll_max"`    // Star spawns when Between(0, max) != 0
	StarSpeedRatio float64 `yaml:"star_speed_ratio"` // Star drift = speed * ratio
}

// Batch places Count bodies in a row starting at (X, Y), StepX apart.
type Batch struct {
	Count int     `yaml:"count"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	StepX float64 `yaml:"step_x"`
}

// BatchesConfig defines the entities created at round start.
type BatchesConfig struct {
	Enemies      Batch   `yaml:"enemies"`
	Coins        Batch   `yaml:"coins"`
	PowerUps     Batch   `yaml:"powerups"`
	DriftDivisor float64 `yaml:"drift_divisor"` // Batch drift = speed / drift_divisor
	EnemyBounce  float64 `yaml:"enemy_bounce"`
}

// PowerUpConfig defines the speed boost.
type PowerUpConfig struct {
	Multiplier float64 `yaml:"multiplier"`
	DurationMS int     `yaml:"duration_ms"`
}

// BulletsConfig defines the bullet pool.
type BulletsConfig struct {
	PoolSize int     `yaml:"pool_size"`
	Speed    float64 `yaml:"speed"`
}

// ScoringConfig defines score deltas.
type ScoringConfig struct {
	Star  int `yaml:"star"`
	Coin  int `yaml:"coin"`
	Enemy int `yaml:"enemy"`
}

// Sprite is the hitbox size of one entity kind and its terminal colour.
type Sprite struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// SpritesConfig defines every entity's sprite.
type SpritesConfig struct {
	Dude    Sprite `yaml:"dude"`
	Ground  Sprite `yaml:"ground"`
	Star    Sprite `yaml:"star"`
	Enemy   Sprite `yaml:"enemy"`
	Coin    Sprite `yaml:"coin"`
	PowerUp Sprite `yaml:"powerup"`
	Bullet  Sprite `yaml:"bullet"`
}

// DifficultyConfig defines the optional terrain speed-up over a round.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to terrain speed at max difficulty
}

// SpawnPeriod returns the spawn timer period.
func (c SkyfallConfig) SpawnPeriod() time.Duration {
	return time.Duration(c.Spawn.PeriodMS) * time.Millisecond
}

// PowerUpDuration returns how long a speed boost lasts.
func (c SkyfallConfig) PowerUpDuration() time.Duration {
	return time.Duration(c.PowerUp.DurationMS) * time.Millisecond
}

// JumpVelocity returns the upward impulse applied on jump (negative = up).
func (c SkyfallConfig) JumpVelocity() float64 {
	return -c.Physics.Gravity / c.Physics.JumpDivisor
}

// DriftVelocity returns the downward speed of round-start batches.
func (c SkyfallConfig) DriftVelocity() float64 {
	return c.Physics.Speed / c.Batches.DriftDivisor
}

// Validate reports every invalid field at once.
func (c SkyfallConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.speed", c.Physics.Speed)
	positive("physics.jump_divisor", c.Physics.JumpDivisor)
	positive("spawn.period_ms", float64(c.Spawn.PeriodMS))
	positive("spawn.ground_divisor", c.Spawn.GroundDivisor)
	nonNegative("spawn.initial_ground", c.Spawn.InitialGround)
	nonNegative("spawn.star_roll_max", c.Spawn.StarRollMax)
	nonNegative("batches.enemies.count", c.Batches.Enemies.Count)
	nonNegative("batches.coins.count", c.Batches.Coins.Count)
	nonNegative("batches.powerups.count", c.Batches.PowerUps.Count)
	positive("batches.drift_divisor", c.Batches.DriftDivisor)
	positive("powerup.multiplier", c.PowerUp.Multiplier)
	positive("powerup.duration_ms", float64(c.PowerUp.DurationMS))
	positive("bullets.pool_size", float64(c.Bullets.PoolSize))
	positive("bullets.speed", c.Bullets.Speed)
	nonNegative("scoring.star", c.Scoring.Star)
	nonNegative("scoring.coin", c.Scoring.Coin)
	nonNegative("scoring.enemy", c.Scoring.Enemy)

	sprites := []struct {
		name string
		s    Sprite
	}{
		{"dude", c.Sprites.Dude},
		{"ground", c.Sprites.Ground},
		{"star", c.Sprites.Star},
		{"enemy", c.Sprites.Enemy},
		{"coin", c.Sprites.Coin},
		{"powerup", c.Sprites.PowerUp},
		{"bullet", c.Sprites.Bullet},
	}
	for _, sp := range sprites {
		positive("sprites."+sp.name+".width", sp.s.Width)
		positive("sprites."+sp.name+".height", sp.s.Height)
	}

	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be within [0, 1], got %v", c.Difficulty.InitialLevel))
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid skyfall config: %w", errors.Join(errs...))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.3
	default:
		return 0.0
	}
}
