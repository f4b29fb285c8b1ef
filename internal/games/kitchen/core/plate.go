package core

import (
	"slices"

	platformcore "github.com/vovakirdan/kitchen-rush/internal/core"
)

// PlateMode is where a plate currently is.
type PlateMode int

const (
	PlateAtStation PlateMode = iota
	PlateHeld
	PlateOnFloor
)

// String returns the mode name.
func (m PlateMode) String() string {
	switch m {
	case PlateAtStation:
		return "at-station"
	case PlateHeld:
		return "held"
	case PlateOnFloor:
		return "on-floor"
	default:
		return "unknown"
	}
}

// PlateVisual is how a plate should be drawn.
type PlateVisual struct {
	Image    string   // Composite image, or FallbackPlateImage
	Icons    []string // Ingredient icons stacked above a fallback plate, in addition order
	Dish     string   // Matched dish, if the contents form a recipe
	Finished bool     // The composite image resolved; no icons are drawn
}

// Plate is a multiset of ingredient keys. Items keeps the order they were
// added for display; matching ignores it.
type Plate struct {
	ID     uint64
	Items  []string
	Mode   PlateMode
	Box    platformcore.Rect
	Visual PlateVisual
}

// Add puts ing on the plate. A raw ingredient that recipes only ever use
// chopped is refused with ErrNeedsChopping and the plate is left untouched.
func (p *Plate) Add(ing Ingredient, cat *Catalog, assets Assets) error {
	key := ing.Key()
	if cat.RequiresChopped(key) {
		return ErrNeedsChopping
	}
	p.Items = append(p.Items, key)
	p.Visual = ComposeVisual(p.Items, cat, assets)
	return nil
}

// Empty reports whether nothing is on the plate.
func (p *Plate) Empty() bool {
	return len(p.Items) == 0
}

// Contents returns a copy of the plate's keys in addition order.
func (p *Plate) Contents() []string {
	return slices.Clone(p.Items)
}

// ComposeVisual works out how a plate holding items is drawn. A plate that
// matches a recipe shows the composite image when the art exists. Anything
// else is the bare plate with one icon per item whose icon exists.
func ComposeVisual(items []string, cat *Catalog, assets Assets) PlateVisual {
	v := PlateVisual{Image: FallbackPlateImage}
	if dish, ok := cat.Match(items); ok {
		v.Dish = dish
		if composite := PlateImage(items); assets != nil && assets.Has(composite) {
			v.Image = composite
			v.Finished = true
			return v
		}
	}
	for _, key := range items {
		icon := IconImage(key)
		if assets != nil && assets.Has(icon) {
			v.Icons = append(v.Icons, icon)
		}
	}
	return v
}
