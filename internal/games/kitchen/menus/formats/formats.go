// Package formats provides pluggable menu file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
)

// Menu represents a parsed menu ready for use.
type Menu struct {
	ID          string
	Name        string
	Description string
	Recipes     []core.Recipe
	Cook        map[string]string // base ingredient -> pot dish
	Fallback    string
	HasFallback bool // false keeps the catalog default
	Threshold   int
}

// Options turns the menu's pot settings into catalog options.
func (m Menu) Options() []core.CatalogOption {
	opts := []core.CatalogOption{core.WithCatalogName(m.ID)}
	for base, dish := range m.Cook {
		opts = append(opts, core.WithCookMapping(base, dish))
	}
	if m.HasFallback {
		opts = append(opts, core.WithFallbackDish(m.Fallback))
	}
	if m.Threshold > 0 {
		opts = append(opts, core.WithCookThreshold(m.Threshold))
	}
	return opts
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Menu, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return Menu{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func validate(m Menu) (Menu, error) {
	if m.ID == "" {
		return Menu{}, fmt.Errorf("menu has no id")
	}
	if m.Name == "" {
		m.Name = m.ID
	}
	if len(m.Recipes) == 0 {
		return Menu{}, fmt.Errorf("menu %s: %w", m.ID, core.ErrEmptyCatalog)
	}
	return m, nil
}
