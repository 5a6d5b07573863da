// skyfall is a falling-terrain platformer for the terminal, a desktop window
// or remote play over SSH.
//
// Usage:
//
//	skyfall                  - Start the difficulty menu
//	skyfall play             - Play a round straight away
//	skyfall window           - Play in a desktop window
//	skyfall serve            - Start SSH server for remote play
//	skyfall scores           - Show high scores
//	skyfall config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skyfall/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file instead of discarding them
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/games/skyfall"
	"github.com/vovakirdan/skyfall/internal/platform/tui"
	"github.com/vovakirdan/skyfall/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "Skyfall - climb the falling terrain, collect stars, shoot enemies",
	Long: `Skyfall is a small platformer. Ground tiles fall from the top of the
world; stay on them, collect stars and coins, and shoot the enemies that
bounce around. Touching an enemy or leaving the world starts a new round.

Without a subcommand the difficulty menu opens.

Examples:
  skyfall
  skyfall play --difficulty hard
  skyfall window
  skyfall serve --ssh :2222
  skyfall scores --interactive`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom skyfall.yaml")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Full-screen commands pass
// stderr=false: without --log-file their logs are discarded so the
// terminal stays clean.
func newLogger(stderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case stderr:
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyfall",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the score database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// loadConfig reads the game config and applies a difficulty preset.
func loadConfig(preset config.DifficultyPreset) (config.SkyfallConfig, error) {
	cfg, err := config.LoadSkyfall(flagConfig)
	if err != nil {
		return config.SkyfallConfig{}, err
	}
	config.ApplySkyfallPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SkyfallConfig{}, err
	}
	return cfg, nil
}

// gameFactory builds games for the menu and SSH sessions.
func gameFactory(logger *log.Logger) tui.GameFactory {
	return func(preset config.DifficultyPreset) (core.Game, error) {
		cfg, err := loadConfig(preset)
		if err != nil {
			return nil, err
		}
		return skyfall.New(cfg, skyfall.WithLogger(logger.WithPrefix("skyfall/"+string(preset)))), nil
	}
}

func parsePreset(name string) (config.DifficultyPreset, error) {
	if name == "" {
		return config.DifficultyNormal, nil
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	return preset, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(gameFactory(logger), store, runtimeConfig(), logger)
}
