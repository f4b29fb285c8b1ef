package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen"
	"github.com/vovakirdan/kitchen-rush/internal/platform/tui"
	"github.com/vovakirdan/kitchen-rush/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a shift and recipe pack picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a shift, left/right to pick a recipe pack
and Enter to start. After a shift you return to the menu.

Controls:
  Up/Down/j/k     - Pick shift
  Left/Right/h/l  - Pick recipe pack
  Enter/Space     - Start
  ?               - Recipe book
  Tab             - Scores
  Q               - Quit

Examples:
  kitchen menu
  kitchen menu --fps 30
  kitchen menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	// Shares the play flags except the game choice
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagMenu, "menu", "", "Recipe pack to preselect")
	menuCmd.Flags().StringVar(&flagRecord, "record", "", "Directory to write events.csv and runs.csv to")
}

func runMenu(_ *cobra.Command, _ []string) (err error) {
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

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	pack := flagMenu

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, pack)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config
		pack = menuResult.RecipePack

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.WantsRecipes {
			goBack, rbErr := tui.RunRecipeBook(pack, cfg.ScreenW, cfg.ScreenH)
			if rbErr != nil {
				logger.Error("recipe book failed", "error", rbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		kitchen.SetMenu(pack)
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed for each shift unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("game stopped", "game", menuResult.GameID, "error", err)
		}
	}
}
