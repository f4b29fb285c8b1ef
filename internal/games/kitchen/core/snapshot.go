package core

import (
	"slices"

	platformcore "github.com/vovakirdan/kitchen-rush/internal/core"
)

// Snapshot is a detached copy of the kitchen state, for tests and
// replays.
type Snapshot struct {
	Tick     uint64
	Score    int
	TimeLeft int
	Paused   bool
	Terminal bool

	Chef      platformcore.Rect
	Held      HeldKind
	HeldItem  string
	HeldPlate []string

	Orders []string

	Board         string
	BoardChopping bool
	Pot           []string
	PotDish       string
	PotCooking    bool
	Counter       []string

	FloorItems  []string
	FloorPlates [][]string

	Stats Stats
}

// Snapshot captures the current state.
func (k *Kitchen) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     k.tick,
		Score:    k.ledger.Score(),
		TimeLeft: k.clock.Remaining(),
		Paused:   k.paused,
		Terminal: k.terminal,
		Chef:     k.chef.Body,
		Held:     k.chef.Held.Kind(),
		Orders:   k.orders.Orders(),
		Stats:    k.stats,
	}

	if item, ok := k.chef.Held.Ingredient(); ok {
		s.HeldItem = item.Ingredient.Key()
	}
	if p, ok := k.chef.Held.Plate(); ok {
		s.HeldPlate = p.Contents()
	}
	if c := k.stations.Chopping; c != nil && c.Occupant != nil {
		s.Board = c.Occupant.Ingredient.Key()
		s.BoardChopping = c.chopping
	}
	if v := k.stations.Vessel; v != nil {
		s.Pot = slices.Clone(v.Contents)
		s.PotCooking = v.cooking
		if v.Dish != nil {
			s.PotDish = v.Dish.Ingredient.Key()
		}
	}
	if k.stations.Counter != nil {
		s.Counter = k.stations.Counter.Contents()
	}
	for _, it := range k.floor.Items {
		s.FloorItems = append(s.FloorItems, it.Ingredient.Key())
	}
	for _, p := range k.floor.Plates {
		s.FloorPlates = append(s.FloorPlates, p.Contents())
	}

	return s
}
