package kitchen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/kitchen-rush/internal/core"
	kcore "github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
)

const (
	hudHeight = 2
	minWidth  = 60
	minHeight = 16
)

// viewport scales world units into the screen area below the HUD.
type viewport struct {
	world  core.Rect
	screen core.Rect
}

func (v viewport) project(r core.Rect) core.Rect {
	if v.world.W <= 0 || v.world.H <= 0 {
		return core.Rect{}
	}
	x0 := v.screen.X + (r.X-v.world.X)*v.screen.W/v.world.W
	y0 := v.screen.Y + (r.Y-v.world.Y)*v.screen.H/v.world.H
	x1 := v.screen.X + ceilDiv((r.Right()-v.world.X)*v.screen.W, v.world.W)
	y1 := v.screen.Y + ceilDiv((r.Bottom()-v.world.Y)*v.screen.H, v.world.H)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.kitchen == nil {
		return
	}
	if dst.Width() < minWidth || dst.Height() < minHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minWidth, minHeight))
		return
	}

	g.renderHUD(dst)

	view := viewport{
		world:  g.kitchen.Settings().Arena,
		screen: core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1),
	}
	g.renderWalls(dst, view)
	g.renderSpawns(dst, view)
	g.renderStations(dst, view)
	g.renderFloor(dst, view)
	g.renderChef(dst, view)
	g.renderFooter(dst)

	switch {
	case g.kitchen.Terminal():
		g.renderOverlay(dst, fmt.Sprintf("Time's up! Final score: %d", g.kitchen.Score()), "Press R to restart")
	case g.kitchen.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title, score, clock and open orders.
func (g *Game) renderHUD(dst *core.Screen) {
	title := g.Title()
	if g.menuName != "" {
		title += " | " + g.menuName
	}
	hud := fmt.Sprintf(" %s | Score: %d | Time: %s", title, g.kitchen.Score(), formatClock(g.kitchen.TimeLeft()))
	dst.DrawTextColor(0, 0, hud, core.ColorBrightYellow)

	x := 1
	dst.DrawText(x, 1, "Orders:")
	x += len("Orders:") + 1
	for i, dish := range g.kitchen.Orders() {
		ticket := fmt.Sprintf("%d) %s", i+1, dishTitle(dish))
		dst.DrawTextColor(x, 1, ticket, core.ColorYellow)
		x += len([]rune(ticket)) + 2
	}
}

func (g *Game) renderWalls(dst *core.Screen, v viewport) {
	for _, w := range g.kitchen.Walls() {
		dst.DrawRect(v.project(w), '░', core.ColorGray)
	}
}

func (g *Game) renderSpawns(dst *core.Screen, v viewport) {
	for _, sp := range g.kitchen.Spawns() {
		box := v.project(sp.Box)
		c := ingredientColor(sp.Name)
		dst.DrawBox(box, c)
		drawLabel(dst, box, sp.Name, c)
	}
}

var stationLabels = map[kcore.StationKind]string{
	kcore.StationChopping:    "BOARD",
	kcore.StationVessel:      "POT",
	kcore.StationPlateSource: "PLATES",
	kcore.StationTrash:       "BIN",
	kcore.StationServe:       "PASS",
}

var stationColors = map[kcore.StationKind]core.Color{
	kcore.StationChopping:    core.ColorBrown,
	kcore.StationVessel:      core.ColorOrange,
	kcore.StationPlateSource: core.ColorWhite,
	kcore.StationTrash:       core.ColorGray,
	kcore.StationServe:       core.ColorBrightCyan,
}

func (g *Game) renderStations(dst *core.Screen, v viewport) {
	stations := g.kitchen.Stations()
	for _, st := range stations.All() {
		box := v.project(st.Box)
		dst.DrawBox(box, stationColors[st.Kind])
		drawLabel(dst, box, stationLabels[st.Kind], stationColors[st.Kind])
	}

	if c := stations.Chopping; c != nil && c.Occupant != nil {
		box := v.project(c.Box)
		g.drawIngredient(dst, box, c.Occupant.Ingredient.Key())
		if c.Chopping() {
			knife := '/'
			if (g.tick/8)%2 == 1 {
				knife = '\\'
			}
			cx, cy := box.Center()
			dst.SetColor(cx+1, cy, knife, core.ColorWhite)
		}
	}

	if pot := stations.Vessel; pot != nil {
		box := v.project(pot.Box)
		cx, cy := box.Center()
		switch {
		case pot.Dish != nil:
			text := dishLabel(pot.Dish.Ingredient.Name)
			dst.DrawTextColor(cx-len(text)/2, cy, text, core.ColorGreen)
		case pot.Cooking():
			steam := "~~~"
			if (g.tick/10)%2 == 1 {
				steam = " ~ "
			}
			dst.DrawTextColor(cx-1, cy, steam, core.ColorWhite)
		case len(pot.Contents) > 0:
			x := cx - len(pot.Contents)/2
			for i, key := range pot.Contents {
				dst.SetColor(x+i, cy, ingredientGlyph(key), ingredientColor(key))
			}
		}
	}

	if p := stations.Counter; p != nil {
		g.drawPlate(dst, v.project(p.Box), p)
	}
}

func (g *Game) renderFloor(dst *core.Screen, v viewport) {
	floor := g.kitchen.Floor()
	for _, p := range floor.Plates {
		g.drawPlate(dst, v.project(p.Box), p)
	}
	for _, item := range floor.Items {
		g.drawIngredient(dst, v.project(item.Box), item.Ingredient.Key())
	}
}

func (g *Game) renderChef(dst *core.Screen, v viewport) {
	chef := g.kitchen.Chef()
	box := v.project(chef.Body)
	dst.DrawBox(box, core.ColorCyan)
	cx, cy := box.Center()
	dst.SetColor(cx, cy, '@', core.ColorBrightCyan)

	// Carried things float just above the chef's head.
	if item, ok := chef.Held.Ingredient(); ok {
		anchor := v.project(chef.HeldAnchor(40, 40))
		g.drawIngredient(dst, anchor, item.Ingredient.Key())
	}
	if p, ok := chef.Held.Plate(); ok {
		anchor := v.project(chef.HeldAnchor(60, 60))
		g.drawPlate(dst, anchor, p)
	}
}

// renderFooter draws the toast line and the pass shelf.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1

	shelf := g.shelfText()
	if shelf != "" {
		dst.DrawTextColor(dst.Width()-len([]rune(shelf))-1, y, shelf, core.ColorGreen)
	}
	if g.toast != "" {
		dst.DrawTextColor(1, y, g.toast, core.ColorBrightYellow)
	}
}

// shelfText summarises the trophies, one entry per dish row.
func (g *Game) shelfText() string {
	if len(g.trophies) == 0 {
		return ""
	}
	counts := make(map[int]int)
	dishes := make(map[int]string)
	rows := make([]int, 0)
	for _, t := range g.trophies {
		if _, seen := counts[t.Row]; !seen {
			rows = append(rows, t.Row)
		}
		counts[t.Row] = max(counts[t.Row], t.Col+1)
		dishes[t.Row] = t.Dish
	}
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		parts = append(parts, fmt.Sprintf("%s×%d", dishLabel(dishes[r]), counts[r]))
	}
	return "Served " + strings.Join(parts, " ")
}

func (g *Game) drawIngredient(dst *core.Screen, box core.Rect, key string) {
	cx, cy := box.Center()
	if g.kitchen.Catalog().IsDish(key) {
		text := dishLabel(key)
		dst.DrawTextColor(cx-len(text)/2, cy, text, core.ColorGreen)
		return
	}
	dst.SetColor(cx, cy, ingredientGlyph(key), ingredientColor(key))
}

// drawPlate shows a finished plate as its dish, and anything else as a bare
// plate with one initial per ingredient icon.
func (g *Game) drawPlate(dst *core.Screen, box core.Rect, p *kcore.Plate) {
	cx, cy := box.Center()
	if p.Visual.Finished {
		text := "(" + dishLabel(p.Visual.Dish) + ")"
		dst.DrawTextColor(cx-len(text)/2, cy, text, core.ColorGreen)
		return
	}

	x := cx - len(p.Visual.Icons)/2
	dst.SetColor(x-1, cy, 'o', core.ColorWhite)
	for i, icon := range p.Visual.Icons {
		key := strings.TrimSuffix(icon, "_icon.png")
		dst.SetColor(x+i, cy, ingredientGlyph(key), ingredientColor(key))
	}
}

// drawLabel writes text inside the box when it fits, else just above it.
func drawLabel(dst *core.Screen, box core.Rect, text string, c core.Color) {
	if box.W-2 < len(text) {
		text = text[:min(len(text), max(box.W, 3))]
		dst.DrawTextColor(box.X, box.Y-1, text, c)
		return
	}
	y := box.Y + 1
	if box.H < 3 {
		y = box.Y - 1
	}
	dst.DrawTextColor(box.X+(box.W-len(text))/2, y, text, c)
}

// ingredientGlyph is the initial of an ingredient: lower case raw, upper
// case chopped.
func ingredientGlyph(key string) rune {
	ing := kcore.ParseKey(key)
	if ing.Name == "" {
		return '?'
	}
	r := rune(ing.Name[0])
	if ing.Stage == kcore.StageChopped {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

// dishLabel abbreviates a dish to its word initials: tomato_soup is "TS".
func dishLabel(dish string) string {
	var b strings.Builder
	for _, word := range strings.Split(dish, "_") {
		if word != "" {
			b.WriteRune(unicode.ToUpper(rune(word[0])))
		}
	}
	return b.String()
}

var ingredientColors = map[string]core.Color{
	"tomato":   core.ColorRed,
	"lettuce":  core.ColorGreen,
	"cucamber": core.ColorBrightGreen,
	"onion":    core.ColorMagenta,
	"carrot":   core.ColorOrange,
	"mushroom": core.ColorBrown,
}

func ingredientColor(key string) core.Color {
	if c, ok := ingredientColors[kcore.BaseName(key)]; ok {
		return c
	}
	return core.ColorYellow
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCenteredColor(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}
