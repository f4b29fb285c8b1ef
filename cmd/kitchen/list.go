package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitchen-rush/internal/registry"
	"github.com/vovakirdan/kitchen-rush/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the kitchen.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Played counts are a bonus, the list works without the database
	var stats map[string]*storage.GameStats
	if store := openStore(); store != nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Played")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "------")
	for _, g := range games {
		played := "-"
		if st, ok := stats[g.ID]; ok {
			played = fmt.Sprintf("%d (best %d)", st.GamesCount, st.HighScore)
		}
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, g.ID, g.Title, played)
	}

	fmt.Println()
	fmt.Println("Run 'kitchen play <id>' to start a shift.")
}
