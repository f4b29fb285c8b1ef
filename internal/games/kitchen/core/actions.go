package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/kitchen-rush/internal/core"
)

// ServeResult classifies a serve.
type ServeResult int

const (
	ServeNone ServeResult = iota
	ServeOrderHit
	ServeWrongOrder
	ServeUnmatched
)

// String returns the result name.
func (r ServeResult) String() string {
	switch r {
	case ServeOrderHit:
		return "order"
	case ServeWrongOrder:
		return "wrong_order"
	case ServeUnmatched:
		return "unmatched"
	default:
		return "none"
	}
}

// ServeOutcome is what happened to a served plate.
type ServeOutcome struct {
	Result ServeResult
	Dish   string
	Delta  int
}

func (k *Kitchen) release() {
	k.chef.Held = Held{}
}

func centeredIn(box platformcore.Rect, w, h int) platformcore.Rect {
	return platformcore.NewRect(box.X+(box.W-w)/2, box.Y+(box.H-h)/2, w, h)
}

// trashHeld throws away whatever is held.
func (k *Kitchen) trashHeld() error {
	switch k.chef.Held.Kind() {
	case HeldIngredient:
		item, _ := k.chef.Held.Ingredient()
		k.release()
		k.stats.Trashed++
		k.emit(EventTrash, item.Ingredient.Key(), 0)
		k.notify(fmt.Sprintf("Binned the %s", item.Ingredient))
	case HeldPlate:
		k.release()
		k.stats.Trashed++
		k.emit(EventTrash, "plate", 0)
		k.notify("Binned the plate")
	default:
		return ErrNothingHeld
	}
	return nil
}

func (k *Kitchen) addToPlate(p *Plate) error {
	item, ok := k.chef.Held.Ingredient()
	if !ok {
		return ErrNothingHeld
	}
	if err := p.Add(item.Ingredient, k.catalog, k.assets); err != nil {
		return err
	}
	k.release()
	k.emit(EventPlace, item.Ingredient.Key(), 0)
	return nil
}

func (k *Kitchen) addToCounterPlate() error {
	return k.addToPlate(k.stations.Counter)
}

func (k *Kitchen) addToFloorPlate() error {
	i := k.nearestFloorPlate()
	if i < 0 {
		return ErrOutOfReach
	}
	return k.addToPlate(k.floor.Plates[i])
}

func (k *Kitchen) placeOnChopping() error {
	c := k.stations.Chopping
	item, ok := k.chef.Held.Ingredient()
	if !ok {
		return ErrNothingHeld
	}
	if c.Occupant != nil {
		return ErrStationBusy
	}
	item.Box = centeredIn(c.Box, itemSize, itemSize)
	c.Occupant = item
	k.release()
	k.emit(EventPlace, item.Ingredient.Key(), 0)
	return nil
}

func (k *Kitchen) placeInVessel() error {
	v := k.stations.Vessel
	item, ok := k.chef.Held.Ingredient()
	if !ok {
		return ErrNothingHeld
	}
	switch {
	case v.Locked():
		return ErrStationBusy
	case item.Ingredient.Stage == StageCooked:
		return ErrAlreadyCooked
	case len(v.Contents) >= k.catalog.CookThreshold() && k.catalog.FallbackDish() == "":
		return ErrVesselFull
	}

	key := item.Ingredient.Key()
	v.Contents = append(v.Contents, key)
	k.release()
	k.emit(EventPlace, key, 0)
	k.tryCook()
	return nil
}

// tryCook starts cooking if the pot contents make a dish.
func (k *Kitchen) tryCook() {
	v := k.stations.Vessel
	if v.cooking {
		return
	}
	dish, ok := k.catalog.CookResult(v.Contents)
	if !ok {
		return
	}
	v.cooking = true
	v.pendingDish = dish
	v.batch = k.nextSerial()
	v.task = k.sched.After(k.settings.Ticks(k.settings.CookTime), Token{Kind: StationVessel, Serial: v.batch}, k.finishCook)
	k.emit(EventCook, dish, 0)
	k.notify("Cooking...")
}

func (k *Kitchen) finishCook(tok Token) {
	v := k.stations.Vessel
	if k.terminal || v == nil || !v.cooking || tok.Serial != v.batch {
		return
	}
	v.cooking = false
	v.Contents = nil
	v.Dish = &Item{
		Serial:     k.nextSerial(),
		Ingredient: Cooked(v.pendingDish),
		Box:        centeredIn(v.Box, itemSize, itemSize),
	}
	v.pendingDish = ""
	k.stats.Cooked++
	k.emit(EventCooked, v.Dish.Ingredient.Key(), 0)
	k.notify(fmt.Sprintf("The %s is ready", v.Dish.Ingredient))
}

func (k *Kitchen) dropIngredient() error {
	item, ok := k.chef.Held.Ingredient()
	if !ok {
		return ErrNothingHeld
	}
	item.Box = k.chef.FloorDropBox(k.settings.Arena)
	k.floor.Items = append(k.floor.Items, item)
	k.release()
	k.emit(EventDrop, item.Ingredient.Key(), 0)
	return nil
}

// DropToFloor puts whatever is held on the floor in front of the chef,
// ignoring any station nearby.
func (k *Kitchen) DropToFloor() error {
	if k.terminal || k.paused {
		return nil
	}
	var err error
	switch k.chef.Held.Kind() {
	case HeldIngredient:
		err = k.dropIngredient()
	case HeldPlate:
		p, _ := k.chef.Held.Plate()
		p.Mode = PlateOnFloor
		p.Box = k.chef.PlateDropBox(k.settings.Arena)
		k.floor.Plates = append(k.floor.Plates, p)
		k.release()
		k.emit(EventDrop, "plate", 0)
	default:
		err = ErrNothingHeld
	}
	if err != nil {
		k.refuse(err)
	}
	return err
}

// servePlate hands the held plate over the pass. The plate is gone whatever
// the outcome.
func (k *Kitchen) servePlate() error {
	p, ok := k.chef.Held.Plate()
	if !ok {
		return ErrNothingHeld
	}
	k.release()
	k.lastServe = k.judge(p)
	return nil
}

func (k *Kitchen) judge(p *Plate) ServeOutcome {
	dish, ok := k.catalog.Match(p.Items)
	if !ok {
		k.stats.Unmatched++
		k.emit(EventUnmatched, PlateImage(p.Items), 0)
		k.notify("Nobody ordered that")
		return ServeOutcome{Result: ServeUnmatched}
	}

	if !k.orders.Contains(dish) {
		delta := -k.settings.WrongOrderPenalty
		k.ledger.Apply(delta)
		k.stats.WrongOrder++
		k.emit(EventWrong, dish, delta)
		k.notify(fmt.Sprintf("Wrong order! %d", delta))
		return ServeOutcome{Result: ServeWrongOrder, Dish: dish, Delta: delta}
	}

	points := k.catalog.Points(dish)
	k.ledger.Apply(points)
	k.orders.Consume(dish)
	k.stats.Served++
	k.emit(EventServe, dish, points)
	k.dishServed(dish)
	k.notify(fmt.Sprintf("Served! +%d", points))
	return ServeOutcome{Result: ServeOrderHit, Dish: dish, Delta: points}
}

// collectDish scoops the finished pot dish onto the held plate.
func (k *Kitchen) collectDish() error {
	v := k.stations.Vessel
	p, ok := k.chef.Held.Plate()
	if !ok {
		return ErrNeedPlate
	}
	if v.cooking {
		return ErrStillCooking
	}
	if err := p.Add(v.Dish.Ingredient, k.catalog, k.assets); err != nil {
		return err
	}
	key := v.Dish.Ingredient.Key()
	v.Dish = nil
	k.emit(EventPickup, key, 0)
	return nil
}

func (k *Kitchen) holdPlate(p *Plate) {
	k.chef.Held = HoldPlate(p)
	k.followChef()
	k.emit(EventPlate, PlateImage(p.Items), 0)
}

func (k *Kitchen) holdItem(item *Item) {
	k.chef.Held = HoldIngredient(item)
	k.followChef()
	k.emit(EventPickup, item.Ingredient.Key(), 0)
}

// takeCounterPlate takes the dispenser's plate, contents and all. A fresh
// empty plate takes its place.
func (k *Kitchen) takeCounterPlate() error {
	p := k.stations.Counter
	k.stations.Counter = k.newCounterPlate()
	k.holdPlate(p)
	return nil
}

func (k *Kitchen) takeFloorPlate() error {
	i := k.nearestFloorPlate()
	if i < 0 {
		return ErrOutOfReach
	}
	k.holdPlate(k.floor.removePlate(i))
	return nil
}

func (k *Kitchen) takeFromSpawn() error {
	i := k.nearestSpawn()
	if i < 0 {
		return ErrOutOfReach
	}
	k.holdItem(k.newItem(Raw(k.spawns[i].Name)))
	return nil
}

func (k *Kitchen) takeFloorItem() error {
	i := k.nearestFloorItem()
	if i < 0 {
		return ErrOutOfReach
	}
	k.holdItem(k.floor.removeItem(i))
	return nil
}

func (k *Kitchen) takeFromChopping() error {
	c := k.stations.Chopping
	if c.chopping {
		return ErrStillChopping
	}
	item := c.Occupant
	c.Occupant = nil
	k.holdItem(item)
	return nil
}

// takeFromVessel pops the last thing put in the pot. A finished dish needs a
// plate.
func (k *Kitchen) takeFromVessel() error {
	v := k.stations.Vessel
	switch {
	case v.cooking:
		return ErrStillCooking
	case v.Dish != nil:
		return ErrNeedPlate
	case len(v.Contents) == 0:
		return ErrOutOfReach
	}
	last := len(v.Contents) - 1
	key := v.Contents[last]
	v.Contents = v.Contents[:last]
	k.holdItem(k.newItem(ParseKey(key)))
	return nil
}

// sweepTrash bins everything lying on the floor around the bin.
func (k *Kitchen) sweepTrash() error {
	bin, _ := k.stations.Get(StationTrash)
	reach := k.settings.Reach.Trash
	swept := 0

	items := k.floor.Items[:0]
	for _, it := range k.floor.Items {
		if reach.Near(it.Box, bin.Box) {
			k.emit(EventTrash, it.Ingredient.Key(), 0)
			swept++
			continue
		}
		items = append(items, it)
	}
	k.floor.Items = items

	plates := k.floor.Plates[:0]
	for _, p := range k.floor.Plates {
		if reach.Near(p.Box, bin.Box) {
			k.emit(EventTrash, "plate", 0)
			swept++
			continue
		}
		plates = append(plates, p)
	}
	k.floor.Plates = plates

	k.stats.Trashed += swept
	k.notify(fmt.Sprintf("Swept %d into the bin", swept))
	return nil
}

// Process starts chopping whatever is on the board. Pressing it again while
// the chop is running, or on an item that is already chopped, changes
// nothing.
func (k *Kitchen) Process() error {
	if k.terminal || k.paused {
		return nil
	}
	err := k.startChop()
	if err != nil {
		k.refuse(err)
	}
	return err
}

func (k *Kitchen) startChop() error {
	c := k.stations.Chopping
	if c == nil || !k.settings.Reach.Process.Near(k.chef.Body, c.Box) {
		return ErrOutOfReach
	}
	switch {
	case c.Occupant == nil:
		return ErrNothingToChop
	case c.chopping:
		return nil
	case c.Occupant.Ingredient.Stage != StageRaw:
		return ErrAlreadyChopped
	}

	c.chopping = true
	c.task = k.sched.After(k.settings.Ticks(k.settings.ChopTime), Token{Kind: StationChopping, Serial: c.Occupant.Serial}, k.finishChop)
	k.emit(EventChop, c.Occupant.Ingredient.Key(), 0)
	k.notify("Chopping...")
	return nil
}

func (k *Kitchen) finishChop(tok Token) {
	c := k.stations.Chopping
	if k.terminal || c == nil || !c.chopping || c.Occupant == nil || c.Occupant.Serial != tok.Serial {
		return
	}
	c.chopping = false
	chopped, ok := c.Occupant.Ingredient.Chopped()
	if !ok {
		return
	}
	c.Occupant.Ingredient = chopped
	k.stats.Chopped++
	k.emit(EventChopped, chopped.Key(), 0)
	k.notify(fmt.Sprintf("%s ready", chopped))
}
