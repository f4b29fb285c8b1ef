package kitchen

import (
	kcore "github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
)

// Snapshot captures the game and the kitchen under it, for determinism
// tests.
type Snapshot struct {
	Tick     uint64
	Mode     string // "kitchen" or "kitchen_practice"
	Menu     string
	Seed     int64
	Toast    string
	Trophies []Trophy
	Kitchen  kcore.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Mode:     g.ID(),
		Menu:     g.menuID,
		Seed:     g.seed,
		Toast:    g.toast,
		Trophies: g.Trophies(),
	}
	if g.kitchen != nil {
		s.Kitchen = g.kitchen.Snapshot()
	}
	return s
}
