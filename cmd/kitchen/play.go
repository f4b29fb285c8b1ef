package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitchen-rush/internal/config"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/menus"
	"github.com/vovakirdan/kitchen-rush/internal/platform/tui"
	"github.com/vovakirdan/kitchen-rush/internal/registry"
	"github.com/vovakirdan/kitchen-rush/internal/telemetry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMenu       string
	flagRecord     string
	flagPractice   bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a shift",
	Long: `Start a kitchen shift. The game defaults to "kitchen", the timed shift.

Controls:
  WASD/Arrows  - Walk
  F/E          - Interact (pick up, put down, serve)
  Space        - Chop at the board
  G            - Drop what you hold
  P/Esc        - Pause
  R            - Restart (after time's up)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer shift, faster chopping and cooking, small penalty
  normal - Config values as written
  hard   - Shorter shift, slower stations, bigger penalty
  fixed  - Config values as written, no preset applied

Examples:
  kitchen play
  kitchen play --practice
  kitchen play --menu salad_bar --difficulty hard
  kitchen play --config ./my-kitchen.yaml
  kitchen play --record ./runs --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMenu, "menu", "", "Recipe pack id (see 'kitchen recipes --list')")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Directory to write events.csv and runs.csv to")
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Play without the shift clock")
}

// applyKitchenFlags validates the kitchen flags and hands them to the game
// package before any game is created.
func applyKitchenFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagMenu != "" {
		if _, err := menus.Find(flagMenu); err != nil {
			return fmt.Errorf("unknown recipe pack %q, run 'kitchen recipes --list'", flagMenu)
		}
	}

	kitchen.SetConfigPath(flagConfig)
	kitchen.SetDifficultyPreset(flagDifficulty)
	kitchen.SetMenu(flagMenu)
	return nil
}

// openRecorder starts CSV recording when --record is set.
func openRecorder() (*telemetry.OutputManager, error) {
	om, err := telemetry.NewOutputManager(flagRecord)
	if err != nil {
		return nil, err
	}
	kitchen.SetOutput(om)
	kitchen.SetLogger(logger.WithPrefix("kitchen-rec"))
	if om != nil {
		logger.Info("recording shifts", "dir", om.Dir())
	}
	return om, nil
}

func runPlay(_ *cobra.Command, args []string) (err error) {
	gameID := kitchen.IDShift
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagPractice {
		gameID = kitchen.IDPractice
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'kitchen list' to see available games", gameID)
	}

	if err := applyKitchenFlags(); err != nil {
		return err
	}

	om, err := openRecorder()
	if err != nil {
		return err
	}
	defer func() {
		if om != nil {
			err = errors.Join(err, om.Close())
		}
	}()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	// Continue without storage - game still works
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting shift", "game", gameID, "menu", flagMenu, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
