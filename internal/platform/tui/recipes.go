package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	kcore "github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/menus"
)

// RecipeRow is one dish of a recipe pack, ready for display.
type RecipeRow struct {
	Dish        string
	Ingredients string
	Points      int
}

// RecipeRows lists the dishes of cat in dish order.
func RecipeRows(cat *kcore.Catalog) []RecipeRow {
	recipes := cat.Recipes()
	rows := make([]RecipeRow, 0, len(recipes))
	for _, r := range recipes {
		parts := make([]string, 0, len(r.Ingredients))
		for _, k := range r.Ingredients {
			parts = append(parts, kcore.ParseKey(k).String())
		}
		rows = append(rows, RecipeRow{
			Dish:        strings.ReplaceAll(r.Dish, "_", " "),
			Ingredients: strings.Join(parts, " + "),
			Points:      r.Points,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Dish < rows[j].Dish })
	return rows
}

// PotNotes describes what the pot turns ingredients into.
func PotNotes(cat *kcore.Catalog) []string {
	mappings := cat.CookMappings()
	bases := make([]string, 0, len(mappings))
	for base := range mappings {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	notes := make([]string, 0, len(bases)+1)
	for _, base := range bases {
		notes = append(notes, fmt.Sprintf("%d %s in the pot -> %s",
			cat.CookThreshold(), base, strings.ReplaceAll(mappings[base], "_", " ")))
	}
	if fb := cat.FallbackDish(); fb != "" {
		notes = append(notes, fmt.Sprintf("any other full pot -> %s", strings.ReplaceAll(fb, "_", " ")))
	} else {
		notes = append(notes, "a full pot of anything else is refused")
	}
	return notes
}

// RecipeBookKeyMap defines the key bindings for the recipe book.
type RecipeBookKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecipeBookKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RecipeBookKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Back, k.Quit},
	}
}

// DefaultRecipeBookKeyMap returns default key bindings.
func DefaultRecipeBookKeyMap() RecipeBookKeyMap {
	return RecipeBookKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "prev pack"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecipeBookModel browses the dishes of every recipe pack.
type RecipeBookModel struct {
	packs     []menus.Menu
	cursor    int
	table     table.Model
	help      help.Model
	keys      RecipeBookKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRecipeBookModel loads every available pack and opens on packID.
func NewRecipeBookModel(packID string, width, height int) RecipeBookModel {
	var packs []menus.Menu
	for _, id := range menus.Available() {
		if m, err := menus.Find(id); err == nil {
			packs = append(packs, m)
		}
	}

	m := RecipeBookModel{
		packs:  packs,
		keys:   DefaultRecipeBookKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, p := range packs {
		if p.ID == packID {
			m.cursor = i
		}
	}
	m.table = m.createTable()
	m.updateRows()
	return m
}

func (m *RecipeBookModel) createTable() table.Model {
	ingredientsWidth := max(m.width-4-24-8-6, 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Dish", Width: 24},
			{Title: "Ingredients", Width: ingredientsWidth},
			{Title: "Points", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 5)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("130")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *RecipeBookModel) current() (*kcore.Catalog, bool) {
	if len(m.packs) == 0 {
		return nil, false
	}
	cat, err := m.packs[m.cursor].Catalog()
	return cat, err == nil
}

func (m *RecipeBookModel) updateRows() {
	cat, ok := m.current()
	if !ok {
		m.table.SetRows(nil)
		return
	}
	rows := RecipeRows(cat)
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{r.Dish, r.Ingredients, fmt.Sprintf("%d", r.Points)}
	}
	m.table.SetRows(tableRows)
	m.table.GotoTop()
}

// Init initializes the recipe book.
func (m RecipeBookModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the recipe book.
func (m RecipeBookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextPack):
			if len(m.packs) > 0 {
				m.cursor = (m.cursor + 1) % len(m.packs)
				m.updateRows()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevPack):
			if len(m.packs) > 0 {
				m.cursor = (m.cursor - 1 + len(m.packs)) % len(m.packs)
				m.updateRows()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the recipe book.
func (m RecipeBookModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	if len(m.packs) == 0 {
		b.WriteString(titleStyle.Render("RECIPE BOOK"))
		b.WriteString("\n\nNo recipe packs found.\n")
		return b.String()
	}

	pack := m.packs[m.cursor]
	b.WriteString(centerStyled(titleStyle.Render(fmt.Sprintf("RECIPE BOOK - < %s >", pack.Name)), m.width))
	b.WriteString("\n")
	if pack.Description != "" {
		b.WriteString(centerText(pack.Description, m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(m.table.View()))
	b.WriteString("\n")

	if cat, ok := m.current(); ok {
		for _, note := range PotNotes(cat) {
			b.WriteString(noteStyle.Render("  " + note))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RecipeBookModel) IsGoingBack() bool {
	return m.goingBack
}

// RunRecipeBook shows the recipe book.
// Returns true if user wants to go back to menu, false if quitting.
func RunRecipeBook(packID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewRecipeBookModel(packID, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecipeBookModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
