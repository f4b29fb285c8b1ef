// Package config provides YAML-based configuration loading and difficulty
// presets for the kitchen.
package config

// KitchenConfig contains all configuration for a kitchen shift.
type KitchenConfig struct {
	Session SessionConfig `yaml:"session"`
	Timings TimingsConfig `yaml:"timings"`
	Reach   ReachConfig   `yaml:"reach"`
	Chef    ChefConfig    `yaml:"chef"`
	Layout  LayoutConfig  `yaml:"layout"`
	Orders  OrdersConfig  `yaml:"orders"`
	Menu    string        `yaml:"menu"` // Recipe pack id
	Assets  AssetsConfig  `yaml:"assets"`
}

// SessionConfig defines the shift length and simulation rate.
type SessionConfig struct {
	DurationSecs   int `yaml:"duration_secs"` // 0 = untimed practice
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// TimingsConfig defines how long processing takes.
type TimingsConfig struct {
	ChopSecs float64 `yaml:"chop_secs"`
	CookSecs float64 `yaml:"cook_secs"`
	ToastMs  int     `yaml:"toast_ms"`
}

// ReachConfig defines one proximity threshold and metric per interaction.
// Metrics are "center" or "bounds".
type ReachConfig struct {
	Pickup      float64 `yaml:"pickup"`
	PickupMode  string  `yaml:"pickup_mode"`
	Station     float64 `yaml:"station"`
	StationMode string  `yaml:"station_mode"`
	Process     float64 `yaml:"process"`
	ProcessMode string  `yaml:"process_mode"`
	Trash       float64 `yaml:"trash"`
	TrashMode   string  `yaml:"trash_mode"`
	Serve       float64 `yaml:"serve"`
	ServeMode   string  `yaml:"serve_mode"`
	Plate       float64 `yaml:"plate"`
	PlateMode   string  `yaml:"plate_mode"`
	Floor       float64 `yaml:"floor"`
	FloorMode   string  `yaml:"floor_mode"`
}

// ChefConfig defines the player character.
type ChefConfig struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	W     int `yaml:"w"`
	H     int `yaml:"h"`
	Speed int `yaml:"speed"` // Units per tick along each axis
}

// RectConfig is an axis-aligned box in world units.
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// SpawnConfig is an ingredient crate.
type SpawnConfig struct {
	Name       string `yaml:"name"`
	RectConfig `yaml:",inline"`
}

// LayoutConfig defines the room.
type LayoutConfig struct {
	Arena    RectConfig            `yaml:"arena"`
	Stations map[string]RectConfig `yaml:"stations"` // chopping, vessel, plates, trash, serve
	Spawns   []SpawnConfig         `yaml:"spawns"`
	Walls    []RectConfig          `yaml:"walls"`
}

// OrdersConfig defines the order queue and scoring.
type OrdersConfig struct {
	Size              int `yaml:"size"`
	WrongOrderPenalty int `yaml:"wrong_order_penalty"`
}

// AssetsConfig says which images exist. Dir is scanned for .png files;
// Manifest lists names directly. With neither, a complete set is assumed.
type AssetsConfig struct {
	Dir      string   `yaml:"dir,omitempty"`
	Manifest []string `yaml:"manifest,omitempty"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset leaves the config untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyKitchenPreset modifies the config based on a difficulty preset.
func ApplyKitchenPreset(cfg *KitchenConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.DurationSecs = 420
		cfg.Timings.ChopSecs = 2
	case DifficultyHard:
		cfg.Session.DurationSecs = 200
		cfg.Timings.CookSecs = 5
		cfg.Orders.WrongOrderPenalty = 10
	}
}
