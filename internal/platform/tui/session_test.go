package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/storage"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm
}

func TestLevelMenuNavigation(t *testing.T) {
	m := NewLevelMenuModel(nil, 80, 24)
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, expected 0 without records", m.cursor)
	}

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(LevelMenuModel)
	}

	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != 11 {
		t.Errorf("cursor = %d, expected 11 after down and page down", m.cursor)
	}

	for i := 0; i < 10; i++ {
		press(tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.cursor != len(m.levels)-1 {
		t.Errorf("cursor = %d, expected clamp to last level", m.cursor)
	}
	if m.scrollOffset == 0 {
		t.Error("scroll offset did not follow the cursor")
	}

	press(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != len(m.levels) {
		t.Errorf("Selected() = %d, expected %d", m.Selected(), len(m.levels))
	}
}

func TestLevelMenuStartsAtFirstUnclearedLevel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, level := range []int{1, 2, 4} {
		if _, err := store.SaveResult(storage.LevelResult{LevelID: level, Theme: "mixed", Status: storage.StatusWon, Moves: 12}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewLevelMenuModel(store, 80, 24)
	if got := m.levels[m.cursor].ID; got != 3 {
		t.Errorf("cursor on level %d, expected 3", got)
	}

	view := m.View()
	if !strings.Contains(view, "3/50 cleared") {
		t.Errorf("view missing cleared count:\n%s", view)
	}
	if !strings.Contains(view, "best 12") {
		t.Errorf("view missing best record:\n%s", view)
	}
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, "tester")

	// Pick level 2
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("enter on the picker did not start a game")
	}
	if got := m.game.State().Level; got != 2 {
		t.Errorf("game started on level %d, expected 2", got)
	}

	m = sessionUpdate(t, m, TickMsg{})
	if m.game.State().Status != "playing" {
		t.Errorf("status = %q, expected playing", m.game.State().Status)
	}

	// Back to the picker
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.InGame() || m.screen != screenMenu {
		t.Fatal("esc did not return to the picker")
	}

	// Results board and back
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenResults {
		t.Fatal("tab did not open the results board")
	}
	if !strings.Contains(m.View(), "not being recorded") {
		t.Error("results board should explain that nothing is stored without a database")
	}
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Fatal("esc did not leave the results board")
	}

	m = sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q on the picker should quit the session")
	}
}

func TestResultsViewSwitch(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(storage.LevelResult{LevelID: 1, Theme: "mixed", Status: storage.StatusWon, Moves: 14})
	store.SaveResult(storage.LevelResult{LevelID: 1, Theme: "mixed", Status: storage.StatusLost, Moves: 6})

	m := NewResultsModel(store, 80, 24)
	if m.CurrentView() != ViewBest || len(m.Results()) != 1 {
		t.Fatalf("best view has %d results, expected 1", len(m.Results()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	if m.CurrentView() != ViewRecent {
		t.Fatalf("view = %v, expected Recent", m.CurrentView())
	}
	if len(m.Results()) != 2 {
		t.Errorf("recent view has %d results, expected 2", len(m.Results()))
	}
	if !strings.Contains(m.View(), "lost") {
		t.Error("recent view should show the attempt outcome")
	}
}
