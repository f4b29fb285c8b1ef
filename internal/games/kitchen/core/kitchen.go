package core

import (
	"math/rand"
	"slices"

	platformcore "github.com/vovakirdan/kitchen-rush/internal/core"
)

const (
	itemSize  = 40
	plateSize = 60
)

// Command is one tick of player input.
type Command struct {
	DX, DY   int  // Movement direction, each in -1..1
	Interact bool // Context-sensitive pick up / put down / serve
	Drop     bool // Put whatever is held on the floor
	Process  bool // Start chopping
}

// Stats counts what happened over a session.
type Stats struct {
	Served     int
	WrongOrder int
	Unmatched  int
	Trashed    int
	Chopped    int
	Cooked     int
}

// Kitchen is the whole simulation: the chef, the stations, the floor, the
// order queue, the score and the clock. It is driven one tick at a time and
// is not safe for concurrent use.
type Kitchen struct {
	settings Settings
	catalog  *Catalog
	rng      *rand.Rand
	assets   Assets

	notifier        Notifier
	scoreStore      ScoreStore
	orderStore      OrderStore
	serveListener   ServeListener
	sessionListener SessionListener

	chef     Character
	mover    Mover
	stations *Stations
	spawns   []Spawn
	floor    Floor
	orders   *OrderQueue
	ledger   *Ledger
	clock    *Clock
	sched    *Scheduler

	tick     uint64
	serial   uint64
	paused   bool
	terminal bool

	lastMessage string
	lastRule    string
	lastServe   ServeOutcome
	events      []Event
	stats       Stats
}

// New creates a kitchen ready for its first tick. A nil catalog means the
// classic menu; a nil rng is seeded with 1.
func New(settings Settings, catalog *Catalog, rng *rand.Rand, opts ...Option) *Kitchen {
	settings = settings.normalized()
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	k := &Kitchen{
		settings: settings,
		catalog:  catalog,
		rng:      rng,
		chef:     Character{Body: settings.ChefStart},
		mover: Mover{
			Arena: settings.Arena,
			Walls: slices.Clone(settings.Walls),
			Speed: settings.Speed,
		},
		stations: NewStations(settings.Stations),
		spawns:   slices.Clone(settings.Spawns),
		clock:    NewClock(settings.SessionSeconds),
		sched:    NewScheduler(),
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.assets == nil {
		k.assets = ManifestFor(catalog)
	}

	k.ledger = NewLedger(k.scoreStore)
	k.ledger.Reset()
	k.orders = NewOrderQueue(k.orderStore, rng, catalog.Dishes(), settings.OrderCount)
	k.orders.Reset()

	if k.stations.Has(StationPlateSource) {
		k.stations.Counter = k.newCounterPlate()
	}
	if !k.clock.Untimed() {
		k.sched.Every(settings.TicksPerSecond, k.secondElapsed)
	}

	return k
}

// Tick advances the kitchen by one step: movement, then the interact, drop
// and process buttons in that order, then the timers. Nothing happens while
// paused or after time is up.
func (k *Kitchen) Tick(cmd Command) {
	if k.terminal || k.paused {
		return
	}
	k.tick++

	k.move(cmd.DX, cmd.DY)
	if cmd.Interact {
		k.Interact()
	}
	if cmd.Drop {
		k.DropToFloor()
	}
	if cmd.Process {
		k.Process()
	}

	k.sched.Advance()
}

func (k *Kitchen) move(dx, dy int) {
	next, ok := k.mover.Step(k.chef.Body, dx, dy)
	if !ok {
		return
	}
	k.chef.Body = next
	k.followChef()
}

// followChef keeps whatever is carried above the chef's head.
func (k *Kitchen) followChef() {
	if item, ok := k.chef.Held.Ingredient(); ok {
		item.Box = k.chef.HeldAnchor(itemSize, itemSize)
	}
	if p, ok := k.chef.Held.Plate(); ok {
		p.Box = k.chef.HeldAnchor(plateSize, plateSize)
	}
}

// Pause freezes the kitchen, keeping every timer's remaining time.
func (k *Kitchen) Pause() {
	if k.terminal || k.paused {
		return
	}
	k.paused = true
	k.sched.Pause()
	k.emit(EventPaused, "", 0)
}

// Resume continues a paused kitchen.
func (k *Kitchen) Resume() {
	if k.terminal || !k.paused {
		return
	}
	k.paused = false
	k.sched.Resume()
	k.emit(EventResumed, "", 0)
}

// TogglePause pauses a running kitchen and resumes a paused one.
func (k *Kitchen) TogglePause() {
	if k.paused {
		k.Resume()
	} else {
		k.Pause()
	}
}

func (k *Kitchen) secondElapsed() {
	if k.clock.Tick() {
		k.finish()
	}
}

// finish ends the session. Nothing moves, chops, cooks or scores afterwards.
func (k *Kitchen) finish() {
	if k.terminal {
		return
	}
	k.terminal = true
	k.sched.StopAll()
	if c := k.stations.Chopping; c != nil {
		c.chopping = false
	}
	if v := k.stations.Vessel; v != nil {
		v.cooking = false
	}

	score := k.ledger.Score()
	k.emit(EventTimeUp, "", 0)
	k.sessionEnded(score)
	k.notify("Time's up!")
}

func (k *Kitchen) nextSerial() uint64 {
	k.serial++
	return k.serial
}

func (k *Kitchen) newItem(ing Ingredient) *Item {
	return &Item{
		Serial:     k.nextSerial(),
		Ingredient: ing,
		Box:        k.chef.HeldAnchor(itemSize, itemSize),
	}
}

func (k *Kitchen) newCounterPlate() *Plate {
	st, _ := k.stations.Get(StationPlateSource)
	p := &Plate{
		ID:   k.nextSerial(),
		Mode: PlateAtStation,
		Box: platformcore.NewRect(
			st.Box.X+(st.Box.W-plateSize)/2,
			st.Box.Y+(st.Box.H-plateSize)/2,
			plateSize, plateSize,
		),
	}
	p.Visual = ComposeVisual(nil, k.catalog, k.assets)
	return p
}

// Score returns the current score.
func (k *Kitchen) Score() int {
	return k.ledger.Score()
}

// Orders returns the open orders.
func (k *Kitchen) Orders() []string {
	return k.orders.Orders()
}

// TimeLeft returns the seconds left, or -1 without a clock.
func (k *Kitchen) TimeLeft() int {
	return k.clock.Remaining()
}

// Paused reports whether the kitchen is paused.
func (k *Kitchen) Paused() bool {
	return k.paused
}

// Terminal reports whether time is up.
func (k *Kitchen) Terminal() bool {
	return k.terminal
}

// Chef returns the chef.
func (k *Kitchen) Chef() Character {
	return k.chef
}

// Stations returns the station registry.
func (k *Kitchen) Stations() *Stations {
	return k.stations
}

// Spawns returns the ingredient crates.
func (k *Kitchen) Spawns() []Spawn {
	return slices.Clone(k.spawns)
}

// Floor returns what lies on the floor.
func (k *Kitchen) Floor() Floor {
	return Floor{
		Items:  slices.Clone(k.floor.Items),
		Plates: slices.Clone(k.floor.Plates),
	}
}

// Walls returns the invisible obstacles.
func (k *Kitchen) Walls() []platformcore.Rect {
	return slices.Clone(k.mover.Walls)
}

// Catalog returns the recipe table in use.
func (k *Kitchen) Catalog() *Catalog {
	return k.catalog
}

// Assets returns the image manifest in use.
func (k *Kitchen) Assets() Assets {
	return k.assets
}

// Settings returns the settings the kitchen was built with.
func (k *Kitchen) Settings() Settings {
	return k.settings
}

// Stats returns the session counters.
func (k *Kitchen) Stats() Stats {
	return k.stats
}

// Ticks returns how many unpaused ticks have run.
func (k *Kitchen) Ticks() uint64 {
	return k.tick
}

// LastMessage returns the most recent transient message.
func (k *Kitchen) LastMessage() string {
	return k.lastMessage
}

// LastRule returns the name of the interaction rule that handled the most
// recent interact press, or "" if none applied.
func (k *Kitchen) LastRule() string {
	return k.lastRule
}

// LastServe returns the outcome of the most recent serve.
func (k *Kitchen) LastServe() ServeOutcome {
	return k.lastServe
}
