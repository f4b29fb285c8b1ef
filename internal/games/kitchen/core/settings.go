package core

import (
	"math"
	"time"

	platformcore "github.com/vovakirdan/kitchen-rush/internal/core"
)

// Settings is everything the kitchen needs besides the recipes: timings,
// reach rules, and the world layout.
type Settings struct {
	TicksPerSecond int
	SessionSeconds int // 0 plays without a clock

	ChopTime      time.Duration
	CookTime      time.Duration
	ToastDuration time.Duration

	OrderCount        int
	WrongOrderPenalty int

	Arena     platformcore.Rect
	ChefStart platformcore.Rect
	Speed     int
	Walls     []platformcore.Rect
	Stations  []Station
	Spawns    []Spawn

	Reach ReachTable
}

// DefaultSettings returns the standard kitchen: a five-minute shift in a
// 1200x675 room.
func DefaultSettings() Settings {
	return Settings{
		TicksPerSecond: 60,
		SessionSeconds: 300,

		ChopTime:      3 * time.Second,
		CookTime:      4 * time.Second,
		ToastDuration: 1500 * time.Millisecond,

		OrderCount:        DefaultOrderCount,
		WrongOrderPenalty: 5,

		Arena:     platformcore.NewRect(0, 0, 1200, 675),
		ChefStart: platformcore.NewRect(200, 200, 112, 133),
		Speed:     10,
		Walls: []platformcore.Rect{
			platformcore.NewRect(0, 0, 1200, 110),   // back counter
			platformcore.NewRect(0, 590, 1200, 85),  // front counter
			platformcore.NewRect(560, 300, 140, 50), // island
		},
		Stations: []Station{
			{Kind: StationVessel, Box: platformcore.NewRect(280, 145, 90, 106)},
			{Kind: StationChopping, Box: platformcore.NewRect(427, 180, 70, 50)},
			{Kind: StationServe, Box: platformcore.NewRect(1060, 158, 130, 229)},
			{Kind: StationPlateSource, Box: platformcore.NewRect(1065, 400, 100, 85)},
			{Kind: StationTrash, Box: platformcore.NewRect(60, 120, 85, 85)},
		},
		Spawns: []Spawn{
			{Name: "tomato", Box: platformcore.NewRect(845, 463, 77, 77)},
			{Name: "lettuce", Box: platformcore.NewRect(740, 448, 85, 125)},
			{Name: "cucamber", Box: platformcore.NewRect(940, 462, 85, 75)},
		},

		Reach: DefaultReach(),
	}
}

// Ticks converts a duration to whole ticks, never less than one.
func (s Settings) Ticks(d time.Duration) int {
	tps := max(s.TicksPerSecond, 1)
	return max(int(math.Round(d.Seconds()*float64(tps))), 1)
}

func (s Settings) normalized() Settings {
	if s.TicksPerSecond <= 0 {
		s.TicksPerSecond = 60
	}
	if s.OrderCount <= 0 {
		s.OrderCount = DefaultOrderCount
	}
	if s.Speed <= 0 {
		s.Speed = 10
	}
	if s.Reach == (ReachTable{}) {
		s.Reach = DefaultReach()
	}
	return s
}
