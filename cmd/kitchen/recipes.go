package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/menus"
	"github.com/vovakirdan/kitchen-rush/internal/platform/tui"
)

var (
	flagListPacks bool
	flagBook      bool
)

var recipesCmd = &cobra.Command{
	Use:   "recipes [pack]",
	Short: "Print the dishes of a recipe pack",
	Long: `Print what every dish of a recipe pack is made of and what it scores.

Built-in packs are always available. Packs dropped into ~/.kitchen/menus as
.yaml, .yml or .json files are picked up as well.

Examples:
  kitchen recipes
  kitchen recipes salad_bar
  kitchen recipes --list
  kitchen recipes --book      # Browse all packs interactively`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecipes,
}

func init() {
	recipesCmd.Flags().BoolVar(&flagListPacks, "list", false, "List recipe pack ids")
	recipesCmd.Flags().BoolVar(&flagBook, "book", false, "Open the interactive recipe book")
}

func runRecipes(_ *cobra.Command, args []string) error {
	packID := menus.DefaultID
	if len(args) == 1 {
		packID = args[0]
	}

	if flagListPacks {
		for _, id := range menus.Available() {
			m, err := menus.Find(id)
			if err != nil {
				logger.Warn("skipping broken recipe pack", "id", id, "error", err)
				continue
			}
			fmt.Printf("  %-14s  %s\n", m.ID, m.Name)
		}
		return nil
	}

	if flagBook {
		cfg := runtimeConfig()
		_, err := tui.RunRecipeBook(packID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	m, err := menus.Find(packID)
	if err != nil {
		return err
	}
	cat, err := m.Catalog()
	if err != nil {
		return fmt.Errorf("recipe pack %s: %w", packID, err)
	}

	fmt.Printf("%s\n", m.Name)
	if m.Description != "" {
		fmt.Printf("%s\n", m.Description)
	}
	fmt.Println()

	rows := tui.RecipeRows(cat)
	dishWidth := len("Dish")
	for _, r := range rows {
		dishWidth = max(dishWidth, len(r.Dish))
	}
	fmt.Printf("  %-*s  %-6s  %s\n", dishWidth, "Dish", "Points", "Ingredients")
	fmt.Printf("  %-*s  %-6s  %s\n", dishWidth, strings.Repeat("-", 4), "------", "-----------")
	for _, r := range rows {
		fmt.Printf("  %-*s  %-6d  %s\n", dishWidth, r.Dish, r.Points, r.Ingredients)
	}

	fmt.Println()
	for _, note := range tui.PotNotes(cat) {
		fmt.Printf("  %s\n", note)
	}
	return nil
}
