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

	"github.com/vovakirdan/kitchen-rush/internal/registry"
	"github.com/vovakirdan/kitchen-rush/internal/storage"
)

const maxRuns = 100

// runOrder is how the shift log is sorted.
type runOrder int

const (
	byDate runOrder = iota
	byScore
)

func (o runOrder) String() string {
	if o == byScore {
		return "best first"
	}
	return "newest first"
}

// ScoreboardKeyMap defines the key bindings for the shift log.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextShift key.Binding
	PrevShift key.Binding
	Sort      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextShift, k.Sort, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextShift, k.PrevShift},
		{k.Sort, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextShift: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next shift"),
		),
		PrevShift: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "prev shift"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
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

// ScoreboardModel is the shift log: every recorded shift of a game with
// its served, wrong, unmatched and binned plates.
type ScoreboardModel struct {
	shifts    []registry.GameInfo
	cursor    int
	store     *storage.Store
	runs      []storage.RunEntry
	totals    storage.RunTotals
	best      int
	order     runOrder
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the shift log on the first registered shift.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return newScoreboard(store, registry.Shifts(), width, height)
}

func newScoreboard(store *storage.Store, shifts []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		shifts: shifts,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 13},
			{Title: "Recipes", Width: max(m.width-4-13-7*4-6-8-18, 10)},
			{Title: "Score", Width: 7},
			{Title: "Served", Width: 7},
			{Title: "Wrong", Width: 7},
			{Title: "Unmatch", Width: 7},
			{Title: "Binned", Width: 6},
			{Title: "Time", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 5)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the runs, totals and best score of the selected shift.
func (m *ScoreboardModel) load() {
	m.runs, m.totals, m.best = nil, storage.RunTotals{}, 0
	if m.store != nil && len(m.shifts) > 0 {
		id := m.shifts[m.cursor].ID
		if runs, err := m.store.RecentRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if totals, err := m.store.GetRunTotals(id); err == nil {
			m.totals = totals
		}
		if best, err := m.store.HighScore(id); err == nil {
			m.best = best
		}
	}
	m.updateRows()
}

func (m *ScoreboardModel) updateRows() {
	sortRuns(m.runs, m.order)
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// sortRuns orders runs in place. Ties keep the newest first.
func sortRuns(runs []storage.RunEntry, order runOrder) {
	sort.SliceStable(runs, func(i, j int) bool {
		if order == byScore && runs[i].Score != runs[j].Score {
			return runs[i].Score > runs[j].Score
		}
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.After(runs[j].CreatedAt)
		}
		return runs[i].ID > runs[j].ID
	})
}

func runRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			strings.ReplaceAll(r.Menu, "_", " "),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Served),
			fmt.Sprintf("%d", r.WrongOrder),
			fmt.Sprintf("%d", r.Unmatched),
			fmt.Sprintf("%d", r.Trashed),
			shiftClock(r.DurationSecs),
		}
	}
	return rows
}

// shiftClock formats seconds as m:ss.
func shiftClock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// summaryLine describes every recorded shift at once.
func summaryLine(t storage.RunTotals, best int) string {
	if t.Runs == 0 {
		return "No shifts recorded"
	}
	plates := t.Served + t.WrongOrder + t.Unmatched
	hitRate := 0
	if plates > 0 {
		hitRate = t.Served * 100 / plates
	}
	return fmt.Sprintf("Best %d  |  %d shifts  |  %d served, %d wrong, %d unmatched, %d binned  |  %d%% on order",
		best, t.Runs, t.Served, t.WrongOrder, t.Unmatched, t.Trashed, hitRate)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextShift):
			if len(m.shifts) > 0 {
				m.cursor = (m.cursor + 1) % len(m.shifts)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevShift):
			if len(m.shifts) > 0 {
				m.cursor = (m.cursor - 1 + len(m.shifts)) % len(m.shifts)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Sort):
			if m.order == byDate {
				m.order = byScore
			} else {
				m.order = byDate
			}
			m.updateRows()
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

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := "SHIFT LOG"
	if len(m.shifts) > 0 {
		title = fmt.Sprintf("SHIFT LOG - < %s >", m.shifts[m.cursor].Title)
	}

	var b strings.Builder
	b.WriteString(centerStyled(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(summaryLine(m.totals, m.best), m.width))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(boxStyle.Render(dimStyle.Italic(true).Padding(1, 4).
			Render("No shifts recorded yet.\nServe a few plates and they will show up here.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  sorted " + m.order.String()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the shift log screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
