package engine

import (
	"errors"
	"testing"
)

func TestControllerLevelNavigation(t *testing.T) {
	c := NewController(DefaultOptions(), ThemeMixed, 1)
	if c.Session() != nil || c.LevelID() != 1 {
		t.Fatalf("got session %v level %d before dealing", c.Session(), c.LevelID())
	}

	if err := c.NewLevel(50, ThemeMixed); err != nil {
		t.Fatal(err)
	}
	if err := c.NextLevel(); err != nil {
		t.Fatal(err)
	}
	if c.LevelID() != 1 {
		t.Errorf("got level %d, expected the last level to wrap to 1", c.LevelID())
	}

	if err := c.PrevLevel(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got %v, expected invalid state on the first level", err)
	}

	if err := c.SelectLevel(20); err != nil {
		t.Fatal(err)
	}
	if err := c.PrevLevel(); err != nil {
		t.Fatal(err)
	}
	if c.LevelID() != 19 {
		t.Errorf("got level %d, expected 19", c.LevelID())
	}
	if c.Attempt() != 4 {
		t.Errorf("got attempt %d, expected 4", c.Attempt())
	}
}

func TestControllerRejectsBadInput(t *testing.T) {
	c := NewController(DefaultOptions(), ThemeMixed, 1)

	if err := c.NewLevel(0, ThemeMixed); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("got %v, expected an illegal move for level 0", err)
	}
	if err := c.NewLevel(51, ThemeMixed); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("got %v, expected an illegal move for level 51", err)
	}
	if err := c.NewLevel(1, Theme("neon")); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("got %v, expected an illegal move for an unknown theme", err)
	}
	if c.Session() != nil {
		t.Error("rejected transitions must not deal a session")
	}
}

func TestControllerChangeThemeResets(t *testing.T) {
	c := NewController(DefaultOptions(), ThemeMixed, 3)
	if err := c.NewLevel(2, ThemeMixed); err != nil {
		t.Fatal(err)
	}
	s := c.Session()
	if _, err := s.MoveToSlot(openTiles(s, 1)[0]); err != nil {
		t.Fatal(err)
	}

	if err := c.ChangeTheme(ThemeFood); err != nil {
		t.Fatal(err)
	}
	s = c.Session()
	if s.Moves() != 0 || len(s.Slot()) != 0 || c.Theme() != ThemeFood || c.LevelID() != 2 {
		t.Errorf("got moves %d slot %d theme %s level %d", s.Moves(), len(s.Slot()), c.Theme(), c.LevelID())
	}

	food := make(map[string]bool)
	for _, sym := range ThemeFood.Palette() {
		food[sym] = true
	}
	for _, tile := range s.Tiles() {
		if !food[tile.Symbol] {
			t.Errorf("tile %d has symbol %q outside the food palette", tile.ID, tile.Symbol)
		}
	}
}

func TestControllerRestart(t *testing.T) {
	c := NewController(DefaultOptions(), ThemeAnimals, 3)
	if err := c.NewLevel(7, ThemeAnimals); err != nil {
		t.Fatal(err)
	}
	s := c.Session()
	s.Shuffle()

	if err := c.Restart(); err != nil {
		t.Fatal(err)
	}
	if c.Session() == s {
		t.Error("restart should deal a new session")
	}
	if c.Session().ShufflesLeft() != 3 || c.LevelID() != 7 {
		t.Errorf("got %d shuffles on level %d", c.Session().ShufflesLeft(), c.LevelID())
	}
}

func TestControllerDeterministic(t *testing.T) {
	play := func() uint64 {
		c := NewController(DefaultOptions(), ThemeMixed, 2024)
		if err := c.NewLevel(12, ThemeMixed); err != nil {
			t.Fatal(err)
		}
		s := c.Session()
		for _, id := range openTiles(s, 2) {
			if _, err := s.MoveToSlot(id); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := s.Shuffle(); err != nil {
			t.Fatal(err)
		}
		return s.Snapshot().Hash()
	}

	if a, b := play(), play(); a != b {
		t.Errorf("same seed gave hashes %x and %x", a, b)
	}
}

func TestNewControllerFallsBackToDefaultTheme(t *testing.T) {
	c := NewController(DefaultOptions(), Theme("neon"), 1)
	if c.Theme() != DefaultTheme {
		t.Errorf("got theme %s, expected %s", c.Theme(), DefaultTheme)
	}
}
