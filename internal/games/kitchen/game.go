// Package kitchen adapts the kitchen simulation to the game platform: it
// loads config and recipes, turns input frames into kitchen commands, plays
// the host for the simulation and draws it into a cell screen.
package kitchen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kitchen-rush/internal/config"
	"github.com/vovakirdan/kitchen-rush/internal/core"
	kcore "github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/menus"
	"github.com/vovakirdan/kitchen-rush/internal/registry"
	"github.com/vovakirdan/kitchen-rush/internal/telemetry"
)

// Game IDs.
const (
	IDShift    = "kitchen"
	IDPractice = "kitchen_practice"
)

// Game implements registry.Game for a kitchen shift.
type Game struct {
	practice bool

	kitchen  *kcore.Kitchen
	catalog  *kcore.Catalog
	pack     string // Recipe pack chosen for this game only
	menuID   string
	menuName string
	rng      *rand.Rand
	seed     int64
	tickRate int
	tick     uint64

	// Screen dimensions
	screenW int
	screenH int

	// Host side: the kitchen keeps its score and orders here and reports
	// messages, serves and the end of the shift.
	score      int
	orders     []string
	toast      string
	toastTicks int
	trophies   []Trophy
	ended      bool

	// Records
	runID     string
	startedAt time.Time
	loadErr   error
}

// Package-level settings, set by the CLI before games are created
var (
	configPath       string
	difficultyPreset string
	selectedMenu     string
	output           *telemetry.OutputManager
)

var logger = log.WithPrefix("kitchen")

// SetLogger sets where recording failures are reported.
func SetLogger(l *log.Logger) {
	logger = l
}

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetMenu selects the recipe pack. Empty means the one named in the config.
func SetMenu(id string) {
	selectedMenu = id
}

// SetOutput sends the event feed and run summaries of every shift to om.
// nil disables recording.
func SetOutput(om *telemetry.OutputManager) {
	output = om
}

// New creates a timed shift.
func New() *Game {
	return &Game{}
}

// NewPractice creates a shift without a clock.
func NewPractice() *Game {
	return &Game{practice: true}
}

func init() {
	registry.Register(IDShift, func() registry.Game {
		return New()
	})
	registry.Register(IDPractice, func() registry.Game {
		return NewPractice()
	})
}

// UseMenu picks the recipe pack for this game, taking precedence over SetMenu.
// Takes effect on the next Reset.
func (g *Game) UseMenu(id string) {
	g.pack = id
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.practice {
		return IDPractice
	}
	return IDShift
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.practice {
		return "Kitchen Rush (Practice)"
	}
	return "Kitchen Rush"
}

// Reset loads config and recipes and opens a new shift.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.seed = cfg.Seed
	g.tickRate = cfg.TickRate
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.score = 0
	g.orders = nil
	g.toast = ""
	g.toastTicks = 0
	g.trophies = nil
	g.ended = false
	g.loadErr = nil

	kcfg := g.loadConfig()
	settings, err := SettingsFromConfig(kcfg)
	if err != nil {
		g.loadErr = err
		settings = kcore.DefaultSettings()
		if g.practice {
			settings.SessionSeconds = 0
		}
	}
	if cfg.TickRate > 0 {
		settings.TicksPerSecond = cfg.TickRate
	}

	g.loadMenu(kcfg.Menu)

	assets, err := AssetsFromConfig(kcfg.Assets, g.catalog)
	if err != nil {
		g.loadErr = err
		assets = kcore.ManifestFor(g.catalog)
	}

	g.runID = telemetry.NewRunID()
	g.startedAt = time.Now()
	g.kitchen = kcore.New(settings, g.catalog, g.rng,
		kcore.WithHost(g),
		kcore.WithAssets(assets),
	)

	if g.loadErr != nil {
		g.showToast("Config problem, using defaults", 3*time.Second)
	}
}

// loadConfig reads the config file and applies the difficulty preset.
// A broken file falls back to the defaults.
func (g *Game) loadConfig() config.KitchenConfig {
	kcfg, err := config.LoadKitchen(configPath)
	if err != nil {
		g.loadErr = err
		kcfg = config.DefaultKitchenConfig()
	}
	if preset, err := config.ParsePreset(difficultyPreset); err == nil && !config.IsFixedPreset(preset) {
		config.ApplyKitchenPreset(&kcfg, preset)
	}
	if g.practice {
		kcfg.Session.DurationSecs = 0
	}
	return kcfg
}

// loadMenu resolves the recipe pack. An unknown or broken pack falls back
// to the classic recipes.
func (g *Game) loadMenu(fromConfig string) {
	id := g.pack
	if id == "" {
		id = selectedMenu
	}
	if id == "" {
		id = fromConfig
	}

	m, err := menus.Find(id)
	if err == nil {
		var cat *kcore.Catalog
		if cat, err = m.Catalog(); err == nil {
			g.catalog = cat
			g.menuID = m.ID
			g.menuName = m.Name
			return
		}
	}

	g.loadErr = err
	g.catalog = kcore.DefaultCatalog()
	g.menuID = menus.DefaultID
	g.menuName = "Classic"
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.kitchen.Terminal() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.kitchen.Terminal() {
		g.kitchen.TogglePause()
	}

	// A toast posted during this tick lasts its full duration.
	if g.toastTicks > 0 {
		g.toastTicks--
		if g.toastTicks == 0 {
			g.toast = ""
		}
	}

	dx, dy := input.Direction()
	g.kitchen.Tick(kcore.Command{
		DX:       dx,
		DY:       dy,
		Interact: input.Has(core.ActionInteract),
		Drop:     input.Has(core.ActionDrop),
		Process:  input.Has(core.ActionProcess),
	})

	g.flushEvents()

	return core.StepResult{State: g.State()}
}

// flushEvents hands the kitchen's event feed to the recorder.
func (g *Game) flushEvents() {
	events := g.kitchen.DrainEvents()
	if output == nil || len(events) == 0 {
		return
	}

	records := make([]telemetry.EventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, telemetry.EventRecord{
			RunID:   g.runID,
			Tick:    e.Tick,
			Kind:    string(e.Kind),
			Subject: e.Subject,
			Delta:   e.Delta,
			Score:   e.Score,
		})
	}
	// Recording is best effort; a full disk must not stop the shift.
	if err := output.WriteEvents(records); err != nil {
		logger.Warn("recording events failed", "run", g.runID, "err", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.kitchen == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.kitchen.Score(),
		GameOver: g.kitchen.Terminal(),
		Paused:   g.kitchen.Paused(),
		TimeLeft: g.kitchen.TimeLeft(),
	}
}

// Report summarises the shift for the run history.
func (g *Game) Report() core.RunReport {
	if g.kitchen == nil {
		return core.RunReport{GameID: g.ID()}
	}
	stats := g.kitchen.Stats()
	tps := max(g.kitchen.Settings().TicksPerSecond, 1)
	return core.RunReport{
		RunID:        g.runID,
		GameID:       g.ID(),
		Variant:      g.menuID,
		Seed:         g.seed,
		Score:        g.kitchen.Score(),
		Served:       stats.Served,
		WrongOrder:   stats.WrongOrder,
		Unmatched:    stats.Unmatched,
		Trashed:      stats.Trashed,
		DurationSecs: int(g.kitchen.Ticks()) / tps,
	}
}

// Kitchen exposes the running simulation.
func (g *Game) Kitchen() *kcore.Kitchen {
	return g.kitchen
}

// MenuName returns the display name of the recipe pack in play.
func (g *Game) MenuName() string {
	return g.menuName
}

// Toast returns the message currently on screen.
func (g *Game) Toast() string {
	return g.toast
}

// Trophies returns the dishes served so far, laid out for the pass shelf.
func (g *Game) Trophies() []Trophy {
	return append([]Trophy(nil), g.trophies...)
}

// dishTitle turns "tomato_lettuce_salad" into "Tomato lettuce salad".
func dishTitle(dish string) string {
	s := strings.ReplaceAll(dish, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatClock renders seconds as m:ss.
func formatClock(secs int) string {
	if secs < 0 {
		return "--:--"
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
