package core

import platformcore "github.com/vovakirdan/kitchen-rush/internal/core"

// Rule is one row of the interaction table. Guard looks at the kitchen
// without changing it; Act performs the interaction and returns a refusal
// sentinel when it cannot go ahead.
type Rule struct {
	Name  string
	Guard func(k *Kitchen) bool
	Act   func(k *Kitchen) error
}

// interactionRules is evaluated top to bottom on every interact press. The
// first rule whose guard holds handles the press, refusal or not.
var interactionRules = []Rule{
	// Holding an ingredient.
	{Name: "trash-ingredient", Guard: holdingIngredientNear(StationTrash, trashReach), Act: (*Kitchen).trashHeld},
	{Name: "ingredient-to-dispenser-plate", Guard: holdingIngredientAndCounterPlate, Act: (*Kitchen).addToCounterPlate},
	{Name: "ingredient-to-floor-plate", Guard: holdingIngredientNearFloorPlate, Act: (*Kitchen).addToFloorPlate},
	{Name: "ingredient-to-chopping", Guard: holdingIngredientNear(StationChopping, stationReach), Act: (*Kitchen).placeOnChopping},
	{Name: "ingredient-to-vessel", Guard: holdingIngredientNear(StationVessel, stationReach), Act: (*Kitchen).placeInVessel},
	{Name: "ingredient-to-floor", Guard: holdingIngredient, Act: (*Kitchen).dropIngredient},

	// Holding a plate.
	{Name: "trash-plate", Guard: holdingPlateNear(StationTrash, trashReach), Act: (*Kitchen).trashHeld},
	{Name: "serve-plate", Guard: holdingPlateNear(StationServe, serveReach), Act: (*Kitchen).servePlate},
	{Name: "collect-dish", Guard: holdingPlateNearPot, Act: (*Kitchen).collectDish},
	{Name: "plate-idle", Guard: holdingPlate, Act: func(*Kitchen) error { return ErrPlateInHand }},

	// Empty hands.
	{Name: "take-dispenser-plate", Guard: emptyNearCounterPlate, Act: (*Kitchen).takeCounterPlate},
	{Name: "take-floor-plate", Guard: emptyNearFloorPlate, Act: (*Kitchen).takeFloorPlate},
	{Name: "take-spawn", Guard: emptyNearSpawn, Act: (*Kitchen).takeFromSpawn},
	{Name: "take-floor-item", Guard: emptyNearFloorItem, Act: (*Kitchen).takeFloorItem},
	{Name: "take-from-chopping", Guard: emptyNearBoardItem, Act: (*Kitchen).takeFromChopping},
	{Name: "take-from-vessel", Guard: emptyNearFilledPot, Act: (*Kitchen).takeFromVessel},
	{Name: "sweep-near-trash", Guard: emptyNearLitteredTrash, Act: (*Kitchen).sweepTrash},
}

// RuleNames lists the interaction rules in evaluation order.
func RuleNames() []string {
	names := make([]string, len(interactionRules))
	for i, r := range interactionRules {
		names[i] = r.Name
	}
	return names
}

// resolve finds the first applicable rule and runs it.
func (k *Kitchen) resolve() (string, error) {
	for _, r := range interactionRules {
		if r.Guard(k) {
			return r.Name, r.Act(k)
		}
	}
	return "", ErrOutOfReach
}

// Interact handles one press of the interact button. A refusal becomes a
// transient message and leaves the kitchen as it was. Returns the rule that
// handled the press and its refusal, if any.
func (k *Kitchen) Interact() (string, error) {
	if k.terminal || k.paused {
		return "", nil
	}
	name, err := k.resolve()
	k.lastRule = name
	if err != nil {
		k.refuse(err)
	}
	return name, err
}

func (k *Kitchen) refuse(err error) {
	text := refusalText(err)
	k.emit(EventRefused, text, 0)
	k.notify(text)
}

type reachOf func(ReachTable) Reach

func trashReach(r ReachTable) Reach   { return r.Trash }
func serveReach(r ReachTable) Reach   { return r.Serve }
func stationReach(r ReachTable) Reach { return r.Station }

// nearStation reports whether the chef is within reach of the station.
// Stations missing from the layout are never near.
func (k *Kitchen) nearStation(kind StationKind, reach Reach) bool {
	st, ok := k.stations.Get(kind)
	return ok && reach.Near(k.chef.Body, st.Box)
}

func holdingIngredient(k *Kitchen) bool {
	return k.chef.Held.Kind() == HeldIngredient
}

func holdingPlate(k *Kitchen) bool {
	return k.chef.Held.Kind() == HeldPlate
}

func holdingIngredientNear(kind StationKind, reach reachOf) func(*Kitchen) bool {
	return func(k *Kitchen) bool {
		return holdingIngredient(k) && k.nearStation(kind, reach(k.settings.Reach))
	}
}

func holdingPlateNear(kind StationKind, reach reachOf) func(*Kitchen) bool {
	return func(k *Kitchen) bool {
		return holdingPlate(k) && k.nearStation(kind, reach(k.settings.Reach))
	}
}

func holdingIngredientAndCounterPlate(k *Kitchen) bool {
	return holdingIngredient(k) && k.stations.Counter != nil &&
		k.nearStation(StationPlateSource, k.settings.Reach.Plate)
}

func holdingIngredientNearFloorPlate(k *Kitchen) bool {
	return holdingIngredient(k) && k.nearestFloorPlate() >= 0
}

func holdingPlateNearPot(k *Kitchen) bool {
	v := k.stations.Vessel
	return holdingPlate(k) && v != nil && (v.Dish != nil || v.cooking) &&
		k.settings.Reach.Station.Near(k.chef.Body, v.Box)
}

func emptyNearCounterPlate(k *Kitchen) bool {
	return k.chef.Held.Empty() && k.stations.Counter != nil &&
		k.nearStation(StationPlateSource, k.settings.Reach.Plate)
}

func emptyNearFloorPlate(k *Kitchen) bool {
	return k.chef.Held.Empty() && k.nearestFloorPlate() >= 0
}

func emptyNearSpawn(k *Kitchen) bool {
	return k.chef.Held.Empty() && k.nearestSpawn() >= 0
}

func emptyNearFloorItem(k *Kitchen) bool {
	return k.chef.Held.Empty() && k.nearestFloorItem() >= 0
}

func emptyNearBoardItem(k *Kitchen) bool {
	c := k.stations.Chopping
	return k.chef.Held.Empty() && c != nil && c.Occupant != nil &&
		k.settings.Reach.Station.Near(k.chef.Body, c.Box)
}

func emptyNearFilledPot(k *Kitchen) bool {
	v := k.stations.Vessel
	return k.chef.Held.Empty() && v != nil &&
		(len(v.Contents) > 0 || v.Dish != nil || v.cooking) &&
		k.settings.Reach.Station.Near(k.chef.Body, v.Box)
}

func emptyNearLitteredTrash(k *Kitchen) bool {
	return k.chef.Held.Empty() && k.nearStation(StationTrash, k.settings.Reach.Trash) && k.litterCount() > 0
}

func (k *Kitchen) nearestFloorPlate() int {
	return k.settings.Reach.Floor.nearest(k.chef.Body, k.floor.plateBoxes())
}

func (k *Kitchen) nearestFloorItem() int {
	return k.settings.Reach.Floor.nearest(k.chef.Body, k.floor.itemBoxes())
}

func (k *Kitchen) nearestSpawn() int {
	boxes := make([]platformcore.Rect, len(k.spawns))
	for i, s := range k.spawns {
		boxes[i] = s.Box
	}
	return k.settings.Reach.Pickup.nearest(k.chef.Body, boxes)
}

// litterCount counts floor items and plates within trash reach of the bin.
func (k *Kitchen) litterCount() int {
	bin, ok := k.stations.Get(StationTrash)
	if !ok {
		return 0
	}
	n := 0
	for _, it := range k.floor.Items {
		if k.settings.Reach.Trash.Near(it.Box, bin.Box) {
			n++
		}
	}
	for _, p := range k.floor.Plates {
		if k.settings.Reach.Trash.Near(p.Box, bin.Box) {
			n++
		}
	}
	return n
}
