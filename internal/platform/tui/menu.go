package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kitchen-rush/internal/core"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/menus"
	"github.com/vovakirdan/kitchen-rush/internal/registry"
	"github.com/vovakirdan/kitchen-rush/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the shift picker.
type MenuModel struct {
	items        []MenuItem
	cursor       int
	recipePacks  []string // Recipe pack ids, cycled with left/right
	packCursor   int
	width        int
	height       int
	store        *storage.Store
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	quitting     bool
	selected     *MenuItem // Set when user selects a game
	openScores   bool      // True if user pressed Tab for scoreboard
	openRecipes  bool      // True if user pressed ? for the recipe book
	highScoreFor map[string]int
}

// NewMenuModel creates a new menu model. packID preselects a recipe pack.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, packID string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	packs := menus.Available()
	if len(packs) == 0 {
		packs = []string{menus.DefaultID}
	}
	if packID == "" {
		packID = menus.DefaultID
	}
	packCursor := max(slices.Index(packs, packID), 0)

	highScores := make(map[string]int)
	if store != nil {
		for _, it := range items {
			if hs, err := store.HighScore(it.GameID); err == nil {
				highScores[it.GameID] = hs
			}
		}
	}

	return MenuModel{
		items:        items,
		recipePacks:  packs,
		packCursor:   packCursor,
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		store:        store,
		config:       cfg,
		keyMapper:    NewKeyMapper(),
		highScoreFor: highScores,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.packCursor = (m.packCursor - 1 + len(m.recipePacks)) % len(m.recipePacks)

	case MenuActionRight:
		m.packCursor = (m.packCursor + 1) % len(m.recipePacks)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScores = true
		return m, tea.Quit

	case MenuActionRecipes:
		m.openRecipes = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle.Render("K I T C H E N   R U S H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a shift", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + item.Title
		if hs := m.highScoreFor[item.GameID]; hs > 0 {
			line += fmt.Sprintf("  (best %d)", hs)
		}
		if i == m.cursor {
			b.WriteString(centerStyled(activeStyle.Render(line), m.width))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Recipes: < %s >", m.RecipePack()), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Shift  |  Left/Right: Recipes  |  Enter: Start  |  ?: Recipe book  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// RecipePack returns the recipe pack currently shown.
func (m MenuModel) RecipePack() string {
	return m.recipePacks[m.packCursor]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScores
}

// WantsRecipes returns true if user asked for the recipe book.
func (m MenuModel) WantsRecipes() bool {
	return m.openRecipes
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text that already carries ANSI styling.
func centerStyled(styled string, width int) string {
	w := lipgloss.Width(styled)
	if w >= width {
		return styled
	}
	return strings.Repeat(" ", (width-w)/2) + styled
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	RecipePack      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	WantsRecipes    bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, packID string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, packID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		RecipePack: m.RecipePack(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.WantsRecipes():
		result.WantsRecipes = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result, nil
}
