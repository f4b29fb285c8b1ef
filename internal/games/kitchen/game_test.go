package kitchen

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kitchen-rush/internal/config"
	"github.com/vovakirdan/kitchen-rush/internal/core"
	kcore "github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
	"github.com/vovakirdan/kitchen-rush/internal/registry"
	"github.com/vovakirdan/kitchen-rush/internal/telemetry"
)

// useConfig points the package at a config file holding yaml and restores
// the package settings afterwards.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetMenu("")
		SetOutput(nil)
	})
}

func newGame(t *testing.T, g *Game, tickRate int) *Game {
	t.Helper()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{IDShift, "Kitchen Rush"},
		{IDPractice, "Kitchen Rush (Practice)"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if !registry.Exists(tt.id) {
				t.Fatalf("%s not registered", tt.id)
			}
			g, err := registry.Create(tt.id)
			if err != nil {
				t.Fatal(err)
			}
			if g.ID() != tt.id {
				t.Errorf("ID() = %q, want %q", g.ID(), tt.id)
			}
			if g.Title() != tt.title {
				t.Errorf("Title() = %q, want %q", g.Title(), tt.title)
			}
		})
	}
}

func TestResetOpensShift(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	g := newGame(t, New(), 60)

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v, want a fresh shift", st)
	}
	if st.TimeLeft != 300 {
		t.Errorf("TimeLeft = %d, want 300", st.TimeLeft)
	}
	if got := len(g.Orders()); got != kcore.DefaultOrderCount {
		t.Errorf("host holds %d orders, want %d", got, kcore.DefaultOrderCount)
	}
	if g.MenuName() == "" {
		t.Error("menu name not set")
	}
	if g.Toast() != "" {
		t.Errorf("unexpected toast %q", g.Toast())
	}
}

func TestPracticeIsUntimed(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDPractice)))
	g := newGame(t, NewPractice(), 60)

	if got := g.State().TimeLeft; got != -1 {
		t.Errorf("TimeLeft = %d, want -1", got)
	}
	for range 200 {
		g.Step(frame())
	}
	if g.State().GameOver {
		t.Error("practice shift ended")
	}
}

func TestDifficultyPreset(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	SetDifficultyPreset("hard")
	g := newGame(t, New(), 60)

	if got := g.State().TimeLeft; got != 200 {
		t.Errorf("TimeLeft = %d, want 200", got)
	}
	if got := g.Kitchen().Settings().WrongOrderPenalty; got != 10 {
		t.Errorf("penalty = %d, want 10", got)
	}
}

func TestSelectedMenu(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	SetMenu("salad_bar")
	g := newGame(t, New(), 60)

	if !g.Kitchen().Catalog().IsDish("green_salad") {
		t.Error("salad_bar recipes not loaded")
	}
	if s := g.Snapshot(); s.Menu != "salad_bar" {
		t.Errorf("Snapshot().Menu = %q", s.Menu)
	}
}

func TestUseMenuOverridesPackage(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	SetMenu("soup_kitchen")

	g := New()
	g.UseMenu("salad_bar")
	newGame(t, g, 60)
	if s := g.Snapshot(); s.Menu != "salad_bar" {
		t.Errorf("Snapshot().Menu = %q, want salad_bar", s.Menu)
	}

	other := newGame(t, New(), 60)
	if s := other.Snapshot(); s.Menu != "soup_kitchen" {
		t.Errorf("Snapshot().Menu = %q, want soup_kitchen", s.Menu)
	}
}

func TestUnknownMenuFallsBack(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	SetMenu("no_such_menu")
	g := newGame(t, New(), 60)

	if !g.Kitchen().Catalog().IsDish("tomato_soup") {
		t.Error("classic recipes not used")
	}
	if g.Toast() == "" {
		t.Error("expected a config problem toast")
	}
}

func TestMovementFromInput(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	g := newGame(t, New(), 60)

	start := g.Kitchen().Chef().Body
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionDown))

	got := g.Kitchen().Chef().Body
	if got.X != start.X+10 || got.Y != start.Y+10 {
		t.Errorf("chef at (%d,%d), want (%d,%d)", got.X, got.Y, start.X+10, start.Y+10)
	}
}

func TestPauseToggle(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	g := newGame(t, New(), 60)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("not paused")
	}

	start := g.Kitchen().Chef().Body
	for range 120 {
		g.Step(frame(core.ActionRight))
	}
	if g.Kitchen().Chef().Body != start {
		t.Error("chef moved while paused")
	}
	if got := g.State().TimeLeft; got != 300 {
		t.Errorf("clock ran while paused: %d", got)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("still paused")
	}
}

func TestRefusalBecomesToast(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	g := newGame(t, New(), 10)

	g.Step(frame(core.ActionInteract))
	if g.Toast() != "Nothing within reach" {
		t.Fatalf("Toast() = %q", g.Toast())
	}

	// 1.5 s at 10 ticks per second, counted from the tick that posted it.
	for range 14 {
		g.Step(frame())
	}
	if g.Toast() != "Nothing within reach" {
		t.Fatalf("toast cut short after 15 ticks: %q", g.Toast())
	}
	g.Step(frame())
	if g.Toast() != "" {
		t.Errorf("toast still showing: %q", g.Toast())
	}
}

func TestShiftEndsAndRestarts(t *testing.T) {
	useConfig(t, "session:\n  duration_secs: 1\n")
	g := newGame(t, New(), 2)

	g.Step(frame())
	g.Step(frame())
	st := g.State()
	if !st.GameOver || st.TimeLeft != 0 {
		t.Fatalf("State() = %+v, want time up", st)
	}
	if g.Toast() != "Time's up!" {
		t.Errorf("Toast() = %q", g.Toast())
	}
	firstRun := g.Report().RunID

	// Ordinary input does nothing after time is up.
	g.Step(frame(core.ActionRight, core.ActionInteract))
	if !g.State().GameOver {
		t.Fatal("shift resumed without restart")
	}

	g.Step(frame(core.ActionRestart))
	st = g.State()
	if st.GameOver || st.TimeLeft != 1 || st.Score != 0 {
		t.Errorf("after restart State() = %+v", st)
	}
	if g.Report().RunID == firstRun {
		t.Error("restart kept the run id")
	}
}

func TestHostCallbacks(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	g := newGame(t, New(), 60)

	g.SetScore(7)
	if g.Score() != 7 {
		t.Errorf("Score() = %d", g.Score())
	}

	g.ReplaceOrders([]string{"tomato_soup"})
	orders := g.Orders()
	orders[0] = "changed"
	if g.Orders()[0] != "tomato_soup" {
		t.Error("Orders() exposes internal slice")
	}

	g.OnDishServed("tomato_soup")
	g.OnDishServed("lettuce_salad")
	g.OnDishServed("tomato_soup")
	want := []Trophy{
		{Dish: "tomato_soup", Row: 3, Col: 0},
		{Dish: "lettuce_salad", Row: 1, Col: 0},
		{Dish: "tomato_soup", Row: 3, Col: 1},
	}
	if got := g.Trophies(); !reflect.DeepEqual(got, want) {
		t.Errorf("Trophies() = %+v, want %+v", got, want)
	}

	if err := g.NotifyTransientMessage("hello", time.Second); err != nil {
		t.Fatal(err)
	}
	if g.Toast() != "hello" {
		t.Errorf("Toast() = %q", g.Toast())
	}
}

func TestRecordsRun(t *testing.T) {
	useConfig(t, "session:\n  duration_secs: 1\n")
	dir := t.TempDir()
	om, err := telemetry.NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	SetOutput(om)

	g := newGame(t, New(), 2)
	g.Step(frame(core.ActionInteract))
	g.Step(frame())
	if !g.State().GameOver {
		t.Fatal("shift did not end")
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	runs, err := telemetry.ReadRuns(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(runs))
	}
	if runs[0].RunID != g.Report().RunID || runs[0].Game != IDShift || runs[0].Menu != "classic" {
		t.Errorf("run = %+v", runs[0])
	}

	events, err := telemetry.ReadEvents(dir)
	if err != nil {
		t.Fatal(err)
	}
	kinds := make([]string, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
		if e.RunID != runs[0].RunID {
			t.Errorf("event %s has run id %q", e.Kind, e.RunID)
		}
	}
	want := []string{string(kcore.EventRefused), string(kcore.EventTimeUp)}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("event kinds = %v, want %v", kinds, want)
	}
}

func TestRecordingFailureIsLogged(t *testing.T) {
	useConfig(t, "session:\n  duration_secs: 1\n")
	om, err := telemetry.NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// Closed files make every write fail.
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}
	SetOutput(om)

	var buf bytes.Buffer
	prev := logger
	SetLogger(log.New(&buf))
	t.Cleanup(func() { SetLogger(prev) })

	g := newGame(t, New(), 2)
	g.Step(frame(core.ActionInteract))
	g.Step(frame())
	if !g.State().GameOver {
		t.Fatal("recording failure stopped the shift")
	}

	for _, want := range []string{"recording events failed", "recording shift failed"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log %q lacks %q", buf.String(), want)
		}
	}
}

func TestRender(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))
	g := newGame(t, New(), 60)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Kitchen Rush", "Score: 0", "5:00"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(screen.Row(1), "Orders:") {
		t.Errorf("orders line = %q", screen.Row(1))
	}
	out := screen.String()
	for _, want := range []string{"@", "PASS", "BIN"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	useConfig(t, "session:\n  duration_secs: 1\n")

	small := core.NewScreen(40, 10)
	g := newGame(t, New(), 2)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("missing too-small overlay")
	}

	screen := core.NewScreen(80, 24)
	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("missing pause overlay")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame())
	g.Step(frame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "Press R to restart") {
		t.Errorf("missing time-up overlay:\n%s", screen.String())
	}
}

func TestDeterminism(t *testing.T) {
	useConfig(t, string(config.GetDefaultYAML(IDShift)))

	inputs := []core.InputFrame{
		frame(core.ActionRight),
		frame(core.ActionRight, core.ActionDown),
		frame(core.ActionInteract),
		frame(core.ActionProcess),
		frame(core.ActionDrop),
		frame(core.ActionLeft),
	}

	run := func() Snapshot {
		g := newGame(t, New(), 60)
		for i := range 300 {
			g.Step(inputs[i%len(inputs)])
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed, different result:\n%+v\n%+v", a, b)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	s, err := SettingsFromConfig(config.DefaultKitchenConfig())
	if err != nil {
		t.Fatal(err)
	}
	def := kcore.DefaultSettings()

	if s.ChopTime != def.ChopTime || s.CookTime != def.CookTime || s.ToastDuration != def.ToastDuration {
		t.Errorf("timings = %v/%v/%v", s.ChopTime, s.CookTime, s.ToastDuration)
	}
	if s.Arena != def.Arena || s.ChefStart != def.ChefStart || s.Speed != def.Speed {
		t.Errorf("layout = %+v %+v %d", s.Arena, s.ChefStart, s.Speed)
	}
	if !reflect.DeepEqual(s.Walls, def.Walls) || !reflect.DeepEqual(s.Spawns, def.Spawns) {
		t.Error("walls or spawns differ from defaults")
	}
	if s.Reach != def.Reach {
		t.Errorf("reach = %+v, want %+v", s.Reach, def.Reach)
	}
	if len(s.Stations) != len(def.Stations) {
		t.Fatalf("%d stations, want %d", len(s.Stations), len(def.Stations))
	}
	for _, want := range def.Stations {
		found := false
		for _, got := range s.Stations {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("station %s missing", want.Kind)
		}
	}
}

func TestSettingsFromConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.KitchenConfig)
	}{
		{"unknown station", func(c *config.KitchenConfig) {
			c.Layout.Stations["oven"] = config.RectConfig{W: 10, H: 10}
		}},
		{"unknown metric", func(c *config.KitchenConfig) {
			c.Reach.ServeMode = "manhattan"
		}},
		{"unnamed spawn", func(c *config.KitchenConfig) {
			c.Layout.Spawns = append(c.Layout.Spawns, config.SpawnConfig{})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultKitchenConfig()
			tt.mutate(&cfg)
			if _, err := SettingsFromConfig(cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAssetsFromConfig(t *testing.T) {
	cat := kcore.DefaultCatalog()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plate.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	fromDir, err := AssetsFromConfig(config.AssetsConfig{Dir: dir}, cat)
	if err != nil {
		t.Fatal(err)
	}
	if !fromDir.Has(kcore.FallbackPlateImage) {
		t.Error("directory scan missed plate.png")
	}

	if _, err := AssetsFromConfig(config.AssetsConfig{Dir: t.TempDir()}, cat); err == nil {
		t.Error("an empty asset dir should be an error")
	}

	fromList, err := AssetsFromConfig(config.AssetsConfig{Manifest: []string{"tomato.png"}}, cat)
	if err != nil {
		t.Fatal(err)
	}
	if !fromList.Has("tomato.png") || fromList.Has(kcore.FallbackPlateImage) {
		t.Error("manifest not used as given")
	}

	full, err := AssetsFromConfig(config.AssetsConfig{}, cat)
	if err != nil {
		t.Fatal(err)
	}
	if !full.Has(kcore.FallbackPlateImage) {
		t.Error("default manifest lacks the plate")
	}
}

func TestLabels(t *testing.T) {
	if got := dishLabel("tomato_lettuce_salad"); got != "TLS" {
		t.Errorf("dishLabel = %q", got)
	}
	if got := ingredientGlyph("tomato"); got != 't' {
		t.Errorf("raw glyph = %q", got)
	}
	if got := ingredientGlyph("lettuce_chopped"); got != 'L' {
		t.Errorf("chopped glyph = %q", got)
	}
	if got := formatClock(65); got != "1:05" {
		t.Errorf("formatClock = %q", got)
	}
	if got := formatClock(-1); got != "--:--" {
		t.Errorf("untimed clock = %q", got)
	}
	if got := dishTitle("tomato_soup"); got != "Tomato soup" {
		t.Errorf("dishTitle = %q", got)
	}
}
