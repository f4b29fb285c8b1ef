package formats

import (
	"fmt"

	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
	"gopkg.in/yaml.v3"
)

// YAMLMenu represents the YAML structure for a menu file.
type YAMLMenu struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description,omitempty"`
	CookThreshold int               `yaml:"cook_threshold,omitempty"`
	FallbackDish  *string           `yaml:"fallback_dish,omitempty"`
	Cook          map[string]string `yaml:"cook,omitempty"`
	Recipes       []YAMLRecipe      `yaml:"recipes"`
}

// YAMLRecipe represents a single recipe in YAML format.
type YAMLRecipe struct {
	Dish        string   `yaml:"dish"`
	Ingredients []string `yaml:"ingredients"`
	Points      int      `yaml:"points"`
}

// ParseYAML parses a YAML menu file.
func ParseYAML(data []byte) (Menu, error) {
	var ym YAMLMenu
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Menu{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	m := Menu{
		ID:          ym.ID,
		Name:        ym.Name,
		Description: ym.Description,
		Cook:        ym.Cook,
		Threshold:   ym.CookThreshold,
	}
	if ym.FallbackDish != nil {
		m.Fallback = *ym.FallbackDish
		m.HasFallback = true
	}
	for _, r := range ym.Recipes {
		m.Recipes = append(m.Recipes, core.Recipe{
			Dish:        r.Dish,
			Ingredients: r.Ingredients,
			Points:      r.Points,
		})
	}

	return validate(m)
}
