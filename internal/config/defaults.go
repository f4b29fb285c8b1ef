package config

import (
	_ "embed"
)

//go:embed defaults/kitchen.yaml
var defaultKitchenYAML []byte

// DefaultKitchenConfig returns the default kitchen configuration.
func DefaultKitchenConfig() KitchenConfig {
	return KitchenConfig{
		Session: SessionConfig{
			DurationSecs:   300,
			TicksPerSecond: 60,
		},
		Timings: TimingsConfig{
			ChopSecs: 3,
			CookSecs: 4,
			ToastMs:  1500,
		},
		Reach: ReachConfig{
			Pickup:      50,
			PickupMode:  "center",
			Station:     50,
			StationMode: "center",
			Process:     80,
			ProcessMode: "center",
			Trash:       80,
			TrashMode:   "center",
			Serve:       80,
			ServeMode:   "center",
			Plate:       80,
			PlateMode:   "bounds",
			Floor:       80,
			FloorMode:   "center",
		},
		Chef: ChefConfig{
			X:     200,
			Y:     200,
			W:     112,
			H:     133,
			Speed: 10,
		},
		Layout: LayoutConfig{
			Arena: RectConfig{X: 0, Y: 0, W: 1200, H: 675},
			Stations: map[string]RectConfig{
				"vessel":   {X: 280, Y: 145, W: 90, H: 106},
				"chopping": {X: 427, Y: 180, W: 70, H: 50},
				"serve":    {X: 1060, Y: 158, W: 130, H: 229},
				"plates":   {X: 1065, Y: 400, W: 100, H: 85},
				"trash":    {X: 60, Y: 120, W: 85, H: 85},
			},
			Spawns: []SpawnConfig{
				{Name: "tomato", RectConfig: RectConfig{X: 845, Y: 463, W: 77, H: 77}},
				{Name: "lettuce", RectConfig: RectConfig{X: 740, Y: 448, W: 85, H: 125}},
				{Name: "cucamber", RectConfig: RectConfig{X: 940, Y: 462, W: 85, H: 75}},
			},
			Walls: []RectConfig{
				{X: 0, Y: 0, W: 1200, H: 110},
				{X: 0, Y: 590, W: 1200, H: 85},
				{X: 560, Y: 300, W: 140, H: 50},
			},
		},
		Orders: OrdersConfig{
			Size:              3,
			WrongOrderPenalty: 5,
		},
		Menu: "classic",
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "kitchen", "kitchen_practice":
		return defaultKitchenYAML
	default:
		return nil
	}
}
