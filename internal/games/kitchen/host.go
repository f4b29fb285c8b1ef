package kitchen

import (
	"slices"
	"time"

	"github.com/vovakirdan/kitchen-rush/internal/telemetry"
)

// Trophy is one served dish on the pass shelf. Each dish of the menu has
// its own row; repeats of a dish fill the row left to right.
type Trophy struct {
	Dish string
	Row  int
	Col  int
}

// NotifyTransientMessage shows text on the toast line for d.
func (g *Game) NotifyTransientMessage(text string, d time.Duration) error {
	g.showToast(text, d)
	return nil
}

func (g *Game) showToast(text string, d time.Duration) {
	tps := g.tickRate
	if g.kitchen != nil {
		tps = g.kitchen.Settings().TicksPerSecond
	}
	g.toast = text
	g.toastTicks = max(int(d.Seconds()*float64(max(tps, 1))), 1)
}

// Score implements the kitchen's score storage.
func (g *Game) Score() int {
	return g.score
}

// SetScore implements the kitchen's score storage.
func (g *Game) SetScore(n int) {
	g.score = n
}

// Orders implements the kitchen's order storage.
func (g *Game) Orders() []string {
	return slices.Clone(g.orders)
}

// ReplaceOrders implements the kitchen's order storage.
func (g *Game) ReplaceOrders(orders []string) {
	g.orders = slices.Clone(orders)
}

// OnDishServed puts the dish on the pass shelf.
func (g *Game) OnDishServed(dish string) {
	row := 0
	if g.catalog != nil {
		row = max(slices.Index(g.catalog.Dishes(), dish), 0)
	}
	col := 0
	for _, t := range g.trophies {
		if t.Dish == dish {
			col++
		}
	}
	g.trophies = append(g.trophies, Trophy{Dish: dish, Row: row, Col: col})
}

// OnSessionEnd records the finished shift.
func (g *Game) OnSessionEnd(finalScore int) {
	if g.ended {
		return
	}
	g.ended = true
	g.score = finalScore

	if output == nil {
		return
	}
	report := g.Report()
	stats := g.kitchen.Stats()
	err := output.WriteRun(telemetry.RunRecord{
		RunID:        report.RunID,
		Game:         report.GameID,
		Menu:         report.Variant,
		Seed:         report.Seed,
		Score:        finalScore,
		Served:       stats.Served,
		WrongOrder:   stats.WrongOrder,
		Unmatched:    stats.Unmatched,
		Trashed:      stats.Trashed,
		Chopped:      stats.Chopped,
		Cooked:       stats.Cooked,
		DurationSecs: report.DurationSecs,
		StartedAt:    g.startedAt.UTC().Format(time.RFC3339),
		EndedAt:      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Warn("recording shift failed", "run", report.RunID, "err", err)
	}
}
