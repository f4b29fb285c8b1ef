// kitchen is a terminal cooking game: chop, cook, plate and serve orders
// against the clock.
//
// Usage:
//
//	kitchen list              - List available games
//	kitchen play [game]       - Start a shift (default: kitchen)
//	kitchen menu              - Pick shifts and recipe packs interactively
//	kitchen recipes [pack]    - Print the dishes of a recipe pack
//	kitchen serve             - Start SSH server for remote play
//	kitchen scores [game]     - Show high scores and recent shifts
//	kitchen config            - Print the default kitchen.yaml
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible shifts
//	--db <path>         - Set database path (default: ~/.kitchen/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kitchen-rush/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/kitchen-rush/internal/games/kitchen"
	"github.com/vovakirdan/kitchen-rush/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kitchen",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kitchen",
	Short: "Kitchen Rush - Cook and serve orders in your terminal",
	Long: `Kitchen Rush is a terminal cooking game. Grab ingredients, chop them,
cook soup in the pot, assemble dishes on plates and serve them at the pass
before the shift ends.

Available commands:
  list     - Show all available games
  play     - Start a shift directly
  menu     - Interactive shift and recipe pack picker
  recipes  - Print the dishes of a recipe pack
  serve    - Start SSH server for remote play
  scores   - View high scores and recent shifts
  config   - Print the default configuration

Examples:
  kitchen play
  kitchen play kitchen_practice --menu salad_bar
  kitchen menu
  kitchen serve --ssh :2222
  kitchen scores`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kitchen/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game works without it, so a
// failure only warns.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
