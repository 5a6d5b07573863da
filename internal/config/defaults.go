package config

import (
	_ "embed"
)

//go:embed defaults/skyfall.yaml
var defaultSkyfallYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSkyfallYAML
}

// DefaultSkyfallConfig returns the default Skyfall configuration.
func DefaultSkyfallConfig() SkyfallConfig {
	return SkyfallConfig{
		World: WorldConfig{
			Width:  800,
			Height: 1000,
		},
		Physics: PhysicsConfig{
			Gravity:     800,
			Speed:       300,
			JumpDivisor: 1.6,
		},
		Spawn: SpawnConfig{
			PeriodMS:       700,
			InitialGround:  20,
			GroundDivisor:  6,
			StarRollMax:    1,
			StarSpeedRatio: 1,
		},
		Batches: BatchesConfig{
			Enemies:      Batch{Count: 5, X: 12, Y: 0, StepX: 150},
			Coins:        Batch{Count: 3, X: 100, Y: 0, StepX: 200},
			PowerUps:     Batch{Count: 2, X: 150, Y: 0, StepX: 300},
			DriftDivisor: 2,
			EnemyBounce:  1,
		},
		PowerUp: PowerUpConfig{
			Multiplier: 1.5,
			DurationMS: 5000,
		},
		Bullets: BulletsConfig{
			PoolSize: 10,
			Speed:    400,
		},
		Scoring: ScoringConfig{
			Star:  1,
			Coin:  10,
			Enemy: 20,
		},
		Sprites: SpritesConfig{
			Dude:    Sprite{Width: 32, Height: 48, Color: "bright_cyan"},
			Ground:  Sprite{Width: 400, Height: 32, Color: "green"},
			Star:    Sprite{Width: 24, Height: 22, Color: "bright_yellow"},
			Enemy:   Sprite{Width: 14, Height: 14, Color: "bright_red"},
			Coin:    Sprite{Width: 24, Height: 24, Color: "yellow"},
			PowerUp: Sprite{Width: 24, Height: 24, Color: "bright_magenta"},
			Bullet:  Sprite{Width: 8, Height: 16, Color: "white"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
