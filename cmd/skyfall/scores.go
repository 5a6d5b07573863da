package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfall/internal/platform/tui"
	"github.com/vovakirdan/skyfall/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the best rounds for a difficulty preset (normal by default).

Examples:
  skyfall scores
  skyfall scores hard --limit 20
  skyfall scores --interactive
  skyfall scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all difficulties in a scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every round of the difficulty")
}

func runScores(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	preset, err := parsePreset(name)
	if err != nil {
		return err
	}
	variant := string(preset)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	if flagClear {
		if err := store.ClearRounds(variant); err != nil {
			return err
		}
		fmt.Printf("Cleared %s rounds.\n", variant)
		return nil
	}

	rounds, err := store.TopRounds(variant, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - Skyfall (%s)\n\n", variant)
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyfall play --difficulty %s' to set the first high score!\n", variant)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Stars", "Coins", "Kills", "Ended by", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "-----", "--------", "----")
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-6d  %-5d  %-5d  %-5d  %-12s  %s\n",
			i+1, r.Score, r.Stars, r.Coins, r.Enemies, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(variant)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Rounds: %d   Average: %.1f\n", stats.HighScore, stats.Rounds, stats.AvgScore)

	causes := make([]string, 0, len(stats.Causes))
	for c := range stats.Causes {
		causes = append(causes, c)
	}
	sort.Strings(causes)
	for _, c := range causes {
		fmt.Printf("  %-12s %d\n", c, stats.Causes[c])
	}
	return nil
}
