package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilematch/internal/games/tilematch/engine"
	"github.com/vovakirdan/tilematch/internal/storage"
)

// menuPage is how far PageUp/PageDown move the cursor.
const menuPage = 10

// LevelMenuModel is the level picker shown before a game starts.
type LevelMenuModel struct {
	levels       []engine.Level
	best         map[int]storage.LevelResult // Fewest-moves win per level
	cursor       int
	scrollOffset int
	width        int
	height       int
	keyMapper    *KeyMapper
	theme        Theme
	selected     int // 0 while choosing
	quitting     bool
	wantsResults bool
}

// NewLevelMenuModel creates a level picker. store may be nil.
// The cursor starts on the first level without a recorded win.
func NewLevelMenuModel(store *storage.Store, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		levels:    engine.LevelDefinitions(),
		best:      make(map[int]storage.LevelResult),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
	}

	if store != nil {
		if results, err := store.BestResults(); err == nil {
			for _, r := range results {
				m.best[r.LevelID] = r
			}
		}
	}

	for i, l := range m.levels {
		if _, won := m.best[l.ID]; !won {
			m.cursor = i
			break
		}
	}
	m.updateScroll()

	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(m.levels) - 1

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(0, m.cursor-1)
	case MenuActionDown:
		m.cursor = min(last, m.cursor+1)
	case MenuActionPageUp:
		m.cursor = max(0, m.cursor-menuPage)
	case MenuActionPageDown:
		m.cursor = min(last, m.cursor+menuPage)
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = m.levels[m.cursor].ID
			return m, tea.Quit
		}
	case MenuActionResults:
		m.wantsResults = true
		return m, tea.Quit
	}

	m.updateScroll()
	return m, nil
}

// visibleItems is the number of level rows that fit between header and footer.
func (m LevelMenuModel) visibleItems() int {
	return max(3, m.height-10)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("T I L E   M A T C H"), m.width))
	b.WriteString("\n\n")

	cleared := len(m.best)
	subtitle := fmt.Sprintf("Select a level  (%d/%d cleared)", cleared, len(m.levels))
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	endIdx := min(len(m.levels), m.scrollOffset+m.visibleItems())
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	for i := m.scrollOffset; i < endIdx; i++ {
		b.WriteString(centerText(m.renderItem(i), m.width))
		b.WriteString("\n")
	}

	if endIdx < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Left/Right: Page  |  Enter: Play  |  Tab: Results  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// renderItem formats one level row.
func (m LevelMenuModel) renderItem(i int) string {
	l := m.levels[i]

	cursor := "  "
	style := m.theme.MenuItemNormal
	best, won := m.best[l.ID]
	if won {
		style = m.theme.MenuItemCleared
	}
	if i == m.cursor {
		cursor = "> "
		style = m.theme.MenuItemActive
	}

	record := ""
	if won {
		record = fmt.Sprintf("  best %d", best.Moves)
	}
	line := fmt.Sprintf("%s%-9s %-9s %dx%d  %d layer%s  %2d tiles%s",
		cursor, l.Name, l.Pattern, l.GridSize, l.GridSize,
		l.Layers, plural(l.Layers), l.TotalTiles, record)
	return style.Render(line)
}

func plural(n int) string {
	if n == 1 {
		return " "
	}
	return "s"
}

// Selected returns the chosen level id, or 0 while still choosing.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user asked for the results board.
func (m LevelMenuModel) WantsResults() bool {
	return m.wantsResults
}

// centerText centers text within given width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
