package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/games/skyfall"
	"github.com/vovakirdan/skyfall/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. The window sees real key releases,
so running and jumping follow the keys exactly.

Controls:
  A/D, Left/Right  - Run
  W/Up             - Jump while standing on ground
  Space            - Shoot
  P                - Pause
  R                - Start a new round
  Q/Esc            - Quit

Examples:
  skyfall window
  skyfall window --difficulty easy --scale 0.8`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0.6, "Window size relative to the world size")
}

func runWindow(_ *cobra.Command, _ []string) error {
	preset, err := parsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := skyfall.New(cfg, skyfall.WithLogger(logger.WithPrefix("skyfall")))
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed})

	w, err := gui.New(game, store, string(preset), logger)
	if err != nil {
		return err
	}
	return gui.Run(w, flagFPS, flagScale)
}
