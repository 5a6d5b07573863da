package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/games/skyfall"
	"github.com/vovakirdan/skyfall/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round straight away in the terminal.

Controls:
  A/D, Left/Right  - Run (keep pressed)
  W/Up             - Jump while standing on ground
  Space            - Shoot
  P                - Pause
  R                - Start a new round
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.skyfall/screenshots

Difficulty options:
  easy   - Slower terrain and more stars
  normal - The configured values, unchanged
  hard   - Faster terrain that speeds up as you score
  fixed  - No difficulty progression

Examples:
  skyfall play
  skyfall play --difficulty hard
  skyfall play --config ./my-skyfall.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := parsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := skyfall.New(cfg, skyfall.WithLogger(logger.WithPrefix("skyfall")))
	logger.Info("starting", "difficulty", preset, "fps", flagFPS, "seed", flagSeed)
	return tui.Run(game, store, runtimeConfig(), string(preset), logger)
}
