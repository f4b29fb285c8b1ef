package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen"
	"github.com/vovakirdan/kitchen-rush/internal/registry"
	"github.com/vovakirdan/kitchen-rush/internal/storage"
	"github.com/vovakirdan/kitchen-rush/internal/telemetry"
)

var (
	flagRuns    int
	flagRunID   string
	flagFromDir string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent shifts",
	Long: `Display the top 10 high scores for a game, the totals of every
recorded shift and the latest shifts.

Examples:
  kitchen scores
  kitchen scores kitchen_practice --runs 20
  kitchen scores --run 0b9f4c1e-...      # One shift by its run id
  kitchen scores --from ./runs           # Shifts recorded with play --record`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "How many recent shifts to list")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single shift by run id")
	scoresCmd.Flags().StringVar(&flagFromDir, "from", "", "Read shifts from a --record directory instead of the database")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagFromDir != "" {
		return printRecorded(flagFromDir)
	}

	gameID := kitchen.IDShift
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'kitchen list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagRunID != "" {
		return printRun(store, flagRunID)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'kitchen play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Played: %d  Best: %d  Average: %.1f  Last: %s\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	if totals, err := store.GetRunTotals(gameID); err == nil && totals.Runs > 0 {
		fmt.Printf("Shifts: %d  Served: %d  Wrong order: %d  Unmatched: %d  Trashed: %d\n",
			totals.Runs, totals.Served, totals.WrongOrder, totals.Unmatched, totals.Trashed)
	}

	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return fmt.Errorf("error retrieving shifts: %w", err)
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent shifts:")
		fmt.Printf("  %-16s  %-12s  %-6s  %-6s  %-5s  %s\n", "Date", "Recipes", "Score", "Served", "Wrong", "Run")
		for _, r := range runs {
			fmt.Printf("  %-16s  %-12s  %-6d  %-6d  %-5d  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Menu, r.Score, r.Served, r.WrongOrder, r.RunID)
		}
	}
	return nil
}

func printRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no shift with run id %q", runID)
	}

	fmt.Printf("Shift %s\n\n", r.RunID)
	fmt.Printf("  Game:        %s\n", r.GameID)
	fmt.Printf("  Recipes:     %s\n", r.Menu)
	fmt.Printf("  Seed:        %d\n", r.Seed)
	fmt.Printf("  Score:       %d\n", r.Score)
	fmt.Printf("  Served:      %d\n", r.Served)
	fmt.Printf("  Wrong order: %d\n", r.WrongOrder)
	fmt.Printf("  Unmatched:   %d\n", r.Unmatched)
	fmt.Printf("  Trashed:     %d\n", r.Trashed)
	fmt.Printf("  Duration:    %ds\n", r.DurationSecs)
	fmt.Printf("  Finished:    %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// printRecorded lists the shifts of a --record directory with a count of
// their events by kind.
func printRecorded(dir string) error {
	runs, err := telemetry.ReadRuns(dir)
	if err != nil {
		return err
	}
	events, err := telemetry.ReadEvents(dir)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No shifts recorded yet.")
		return nil
	}

	byRun := make(map[string]map[string]int)
	for _, e := range events {
		if byRun[e.RunID] == nil {
			byRun[e.RunID] = make(map[string]int)
		}
		byRun[e.RunID][e.Kind]++
	}

	for _, r := range runs {
		fmt.Printf("%s  %s  %s  score %d  served %d  seed %d\n",
			r.StartedAt, r.Game, r.Menu, r.Score, r.Served, r.Seed)
		fmt.Printf("  run %s, %d chopped, %d cooked, %d trashed, %ds\n",
			r.RunID, r.Chopped, r.Cooked, r.Trashed, r.DurationSecs)
		if kinds := byRun[r.RunID]; len(kinds) > 0 {
			fmt.Printf("  events: %v\n", kinds)
		}
	}
	return nil
}
