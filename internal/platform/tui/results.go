package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilematch/internal/storage"
)

// Results board layout constants
const (
	maxRecentResults = 100
	tableChrome      = 9 // Title, tabs, borders and help
)

// ResultsView selects which history the results board shows.
type ResultsView int

const (
	ViewBest ResultsView = iota
	ViewRecent
)

// String returns the tab label.
func (v ResultsView) String() string {
	if v == ViewRecent {
		return "Recent"
	}
	return "Best"
}

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchView},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "best/recent"),
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

// ResultsModel is the Bubble Tea model for the results board.
type ResultsModel struct {
	store     *storage.Store
	view      ResultsView
	results   []storage.LevelResult
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ResultsKeyMap
	theme     Theme
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewResultsModel creates a results board. store may be nil.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ResultsModel{
		store:  store,
		keys:   DefaultResultsKeyMap(),
		help:   h,
		theme:  GetTheme(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()

	return m
}

// columns returns the table columns for the current view.
func (m ResultsModel) columns() []table.Column {
	cols := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Shuffles", Width: 8},
		{Title: "Peeks", Width: 6},
		{Title: "Theme", Width: 8},
		{Title: "Date", Width: 13},
	}
	if m.view == ViewRecent {
		cols = slices.Insert(cols, 1, table.Column{Title: "Result", Width: 6})
	}
	return cols
}

// createTable creates a new table with appropriate columns.
func (m ResultsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-tableChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.BoardBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.theme.BoardSelected
	t.SetStyles(s)

	return t
}

// load reads the current view from the store.
func (m *ResultsModel) load() {
	m.results = nil
	m.loadErr = nil

	if m.store != nil {
		if m.view == ViewRecent {
			m.results, m.loadErr = m.store.RecentResults(maxRecentResults)
		} else {
			m.results, m.loadErr = m.store.BestResults()
		}
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		row := table.Row{
			fmt.Sprintf("%d", r.LevelID),
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.ShufflesUsed),
			fmt.Sprintf("%d", r.PeeksUsed),
			r.Theme,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
		if m.view == ViewRecent {
			row = slices.Insert(row, 1, r.Status)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.SwitchView):
			m.view = 1 - m.view
			// Column count changes between views; rows must be cleared
			// before the columns shrink.
			m.table.SetRows(nil)
			m.table.SetColumns(m.columns())
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := m.theme.BoardTitle.Render("RESULTS")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	tabs := make([]string, 0, 2)
	for _, v := range []ResultsView{ViewBest, ViewRecent} {
		if v == m.view {
			tabs = append(tabs, m.theme.TabActive.Render(v.String()))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(v.String()))
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BoardBorder).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.renderTableContent())))
	b.WriteString("\n")

	b.WriteString(m.theme.Controls.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ResultsModel) renderTableContent() string {
	switch {
	case m.store == nil:
		return m.theme.BoardEmpty.Render("Results are not being recorded.\nStart with a writable --db path.")
	case m.loadErr != nil:
		return m.theme.BoardEmpty.Render("Could not load results:\n" + m.loadErr.Error())
	case len(m.results) == 0 && m.view == ViewBest:
		return m.theme.BoardEmpty.Render("No level cleared yet.\nWin a level to set a record!")
	case len(m.results) == 0:
		return m.theme.BoardEmpty.Render("No attempts recorded yet.")
	}
	return m.table.View()
}

// Results returns the rows currently shown.
func (m ResultsModel) Results() []storage.LevelResult {
	return m.results
}

// CurrentView returns which history is shown.
func (m ResultsModel) CurrentView() ResultsView {
	return m.view
}

// IsGoingBack returns true if user wants to go back to the level picker.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}
