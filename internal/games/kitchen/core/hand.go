package core

import platformcore "github.com/vovakirdan/kitchen-rush/internal/core"

// HeldKind tags what the chef is carrying.
type HeldKind int

const (
	HeldNothing HeldKind = iota
	HeldIngredient
	HeldPlate
)

// String returns the kind name.
func (k HeldKind) String() string {
	switch k {
	case HeldNothing:
		return "nothing"
	case HeldIngredient:
		return "ingredient"
	case HeldPlate:
		return "plate"
	default:
		return "unknown"
	}
}

// Held is the chef's hand: nothing, one ingredient, or one plate.
// Ingredients go onto a carried plate, never next to it.
type Held struct {
	kind  HeldKind
	item  *Item
	plate *Plate
}

// HoldIngredient returns a hand carrying item.
func HoldIngredient(item *Item) Held {
	return Held{kind: HeldIngredient, item: item}
}

// HoldPlate returns a hand carrying p.
func HoldPlate(p *Plate) Held {
	p.Mode = PlateHeld
	return Held{kind: HeldPlate, plate: p}
}

// Kind returns what is being held.
func (h Held) Kind() HeldKind {
	return h.kind
}

// Empty reports whether the hand is free.
func (h Held) Empty() bool {
	return h.kind == HeldNothing
}

// Ingredient returns the carried item, if any.
func (h Held) Ingredient() (*Item, bool) {
	return h.item, h.kind == HeldIngredient
}

// Plate returns the carried plate, if any.
func (h Held) Plate() (*Plate, bool) {
	return h.plate, h.kind == HeldPlate
}

// Character is the chef: a box in the arena and a hand.
type Character struct {
	Body platformcore.Rect
	Held Held
}

// HeldAnchor is where a carried item is drawn, just above the chef's head.
func (c *Character) HeldAnchor(w, h int) platformcore.Rect {
	return platformcore.NewRect(c.Body.X+(c.Body.W-w)/2, c.Body.Y-h+10, w, h)
}

// FloorDropBox is where an ingredient lands when put down: in front of the
// chef's feet.
func (c *Character) FloorDropBox(arena platformcore.Rect) platformcore.Rect {
	const size = 40
	r := platformcore.NewRect(c.Body.X+(c.Body.W-size)/2, c.Body.Y+c.Body.H-10, size, size)
	return r.ClampInside(arena)
}

// PlateDropBox is where a plate lands when put down.
func (c *Character) PlateDropBox(arena platformcore.Rect) platformcore.Rect {
	const size = 60
	r := platformcore.NewRect(c.Body.X+40, c.Body.Y+40, size, size)
	return r.ClampInside(arena)
}
