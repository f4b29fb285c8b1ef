package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitchen-rush/internal/config"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default kitchen.yaml",
	Long: `Print the built-in kitchen configuration. Save it to
~/.kitchen/configs/kitchen.yaml or pass it with --config to tweak timings,
reach, layout and orders.

Examples:
  kitchen config > ~/.kitchen/configs/kitchen.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML(kitchen.IDShift))
		return err
	},
}
