package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKitchen loads the kitchen configuration.
// Search order: customPath -> ~/.kitchen/configs/kitchen.yaml -> ./configs/kitchen.yaml -> embedded default
// Files are read over the defaults, so a partial file only overrides what it names.
func LoadKitchen(customPath string) (KitchenConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultKitchenConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kitchen.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "kitchen.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultKitchenConfig()
	if err := yaml.Unmarshal(defaultKitchenYAML, &cfg); err != nil {
		return DefaultKitchenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads a config file over the defaults. Any failure means "not here".
func tryLoad(path string) (KitchenConfig, bool) {
	cfg := DefaultKitchenConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// ParsePreset converts a flag value to a DifficultyPreset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kitchen", "configs", filename)
}
