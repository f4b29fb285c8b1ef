package core

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/kitchen-rush/internal/core"
)

// StationKind identifies one of the fixed interaction points.
type StationKind int

const (
	StationChopping StationKind = iota
	StationVessel
	StationPlateSource
	StationTrash
	StationServe
)

var stationNames = map[StationKind]string{
	StationChopping:    "chopping",
	StationVessel:      "vessel",
	StationPlateSource: "plates",
	StationTrash:       "trash",
	StationServe:       "serve",
}

// String returns the station name used in config files.
func (k StationKind) String() string {
	if name, ok := stationNames[k]; ok {
		return name
	}
	return "unknown"
}

// StationKinds lists every kind in a stable order.
func StationKinds() []StationKind {
	return []StationKind{StationChopping, StationVessel, StationPlateSource, StationTrash, StationServe}
}

// ParseStationKind converts a config name to a StationKind.
func ParseStationKind(s string) (StationKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pot" {
		return StationVessel, nil
	}
	for k, name := range stationNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("kitchen: unknown station %q", s)
}

// Station is a fixed interaction point.
type Station struct {
	Kind StationKind
	Box  platformcore.Rect
}

// Item is an ingredient resting somewhere in the kitchen or in the chef's
// hand. Serial stays the same for the item's whole life.
type Item struct {
	Serial     uint64
	Ingredient Ingredient
	Box        platformcore.Rect
}

// Spawn is an ingredient crate. Crates never run out.
type Spawn struct {
	Name string
	Box  platformcore.Rect
}

// ChoppingSurface holds at most one item. An item being chopped is locked
// until the chop completes.
type ChoppingSurface struct {
	Station
	Occupant *Item

	chopping bool
	task     TaskID
}

// Chopping reports whether a chop is in progress.
func (c *ChoppingSurface) Chopping() bool {
	return c.chopping
}

// Vessel is the pot. It collects ingredient keys in the order they were
// added, cooks them once the catalog says so, and then holds the single
// finished dish until it is collected onto a plate.
type Vessel struct {
	Station
	Contents []string
	Dish     *Item

	cooking     bool
	pendingDish string
	batch       uint64
	task        TaskID
}

// Cooking reports whether a dish is on the way.
func (v *Vessel) Cooking() bool {
	return v.cooking
}

// PendingDish returns the dish being cooked.
func (v *Vessel) PendingDish() string {
	return v.pendingDish
}

// Locked reports whether the pot refuses new ingredients.
func (v *Vessel) Locked() bool {
	return v.cooking || v.Dish != nil
}

// Floor holds whatever has been put down outside a station.
type Floor struct {
	Items  []*Item
	Plates []*Plate
}

func (f *Floor) removeItem(i int) *Item {
	it := f.Items[i]
	f.Items = append(f.Items[:i], f.Items[i+1:]...)
	return it
}

func (f *Floor) removePlate(i int) *Plate {
	p := f.Plates[i]
	f.Plates = append(f.Plates[:i], f.Plates[i+1:]...)
	return p
}

func (f *Floor) itemBoxes() []platformcore.Rect {
	boxes := make([]platformcore.Rect, len(f.Items))
	for i, it := range f.Items {
		boxes[i] = it.Box
	}
	return boxes
}

func (f *Floor) plateBoxes() []platformcore.Rect {
	boxes := make([]platformcore.Rect, len(f.Plates))
	for i, p := range f.Plates {
		boxes[i] = p.Box
	}
	return boxes
}

// Stations is the kitchen's station registry, keyed by kind. Kinds missing
// from the layout are simply absent and never match an interaction.
type Stations struct {
	byKind   map[StationKind]Station
	Chopping *ChoppingSurface
	Vessel   *Vessel
	Counter  *Plate // the plate waiting on the dispenser
}

// NewStations builds the registry from a layout.
func NewStations(layout []Station) *Stations {
	s := &Stations{byKind: make(map[StationKind]Station, len(layout))}
	for _, st := range layout {
		s.byKind[st.Kind] = st
		switch st.Kind {
		case StationChopping:
			s.Chopping = &ChoppingSurface{Station: st}
		case StationVessel:
			s.Vessel = &Vessel{Station: st}
		}
	}
	return s
}

// Get returns the station of the given kind.
func (s *Stations) Get(kind StationKind) (Station, bool) {
	st, ok := s.byKind[kind]
	return st, ok
}

// Has reports whether the layout has a station of the given kind.
func (s *Stations) Has(kind StationKind) bool {
	_, ok := s.byKind[kind]
	return ok
}

// All returns the stations in StationKinds order.
func (s *Stations) All() []Station {
	out := make([]Station, 0, len(s.byKind))
	for _, k := range StationKinds() {
		if st, ok := s.byKind[k]; ok {
			out = append(out, st)
		}
	}
	return out
}
