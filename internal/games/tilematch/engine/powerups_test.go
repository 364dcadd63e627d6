package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func peekSession(t *testing.T, opts Options) *Session {
	return newTestSession(t, 3, opts,
		tileAt(0, "X", 0, 0, 0),
		tileAt(1, "Y", 0, 0, 1),
		tileAt(2, "Z", 0, 0, 2),
		tileAt(3, "W", 1, 1, 0),
	)
}

func TestPeekRevealsDeepestTile(t *testing.T) {
	s := peekSession(t, DefaultOptions())
	before := s.Tiles()

	if _, err := s.ActivatePeek(); err != nil {
		t.Fatal(err)
	}
	if !s.PeekArmed() {
		t.Fatal("peek should be armed")
	}

	res, err := s.ClickBoardTile(2)
	if err != nil {
		t.Fatal(err)
	}
	reveal, ok := s.Reveal()
	if !ok {
		t.Fatal("expected an active reveal")
	}
	expected := Reveal{TileID: 0, DisplayID: 2, Symbol: "X"}
	if reveal != expected {
		t.Errorf("got %+v, expected %+v", reveal, expected)
	}
	if s.PeeksLeft() != 2 || s.PeekArmed() {
		t.Errorf("got %d peeks left armed=%v, expected 2 and disarmed", s.PeeksLeft(), s.PeekArmed())
	}
	if len(res.Effects) != 1 || res.Effects[0].Kind != EffectEndReveal || res.Effects[0].Delay != 1500*time.Millisecond {
		t.Fatalf("got %+v, expected end_reveal after 1500ms", res.Effects)
	}
	if !reflect.DeepEqual(s.Tiles(), before) {
		t.Error("peek must not move any tile")
	}
	if s.Moves() != 0 {
		t.Errorf("peek is not a move, got %d", s.Moves())
	}
	if s.Processing() {
		t.Error("a reveal does not lock the board")
	}

	s.Resolve(res.Effects[0].ID)
	if _, ok := s.Reveal(); ok {
		t.Error("reveal should end once its effect resolves")
	}
}

func TestMoveEndsReveal(t *testing.T) {
	s := peekSession(t, DefaultOptions())
	s.ActivatePeek()
	res, err := s.ClickBoardTile(2)
	if err != nil {
		t.Fatal(err)
	}

	mustMove(t, s, 2)
	if _, ok := s.Reveal(); ok {
		t.Error("a move should end the reveal")
	}
	if s.Resolve(res.Effects[0].ID) {
		t.Error("the superseded reveal effect should be ignored")
	}
}

func TestActivatePeekRejections(t *testing.T) {
	t.Run("single layer", func(t *testing.T) {
		s := newTestSession(t, 1, DefaultOptions(), row("A", "B", "C")...)
		if _, err := s.ActivatePeek(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("got %v, expected invalid state", err)
		}
	})

	t.Run("no peeks left", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Peeks = 0
		s := peekSession(t, opts)
		_, err := s.ActivatePeek()
		if !errors.Is(err, ErrResourceExhausted) {
			t.Fatalf("got %v, expected resource exhausted", err)
		}
		var rej *RejectError
		if errors.As(err, &rej) && rej.Message != "No peeks left!" {
			t.Errorf("got message %q", rej.Message)
		}
	})

	t.Run("nothing stacked", func(t *testing.T) {
		s := newTestSession(t, 2, DefaultOptions(), row("A", "B", "C")...)
		if _, err := s.ActivatePeek(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("got %v, expected invalid state", err)
		}
		if s.CanPeek() {
			t.Error("CanPeek should be false without stacks")
		}
	})
}

func TestActivatePeekToggles(t *testing.T) {
	s := peekSession(t, DefaultOptions())

	s.ActivatePeek()
	res, err := s.ActivatePeek()
	if err != nil {
		t.Fatal(err)
	}
	if s.PeekArmed() || s.PeeksLeft() != 3 {
		t.Errorf("got armed=%v peeks=%d, expected disarmed with 3 left", s.PeekArmed(), s.PeeksLeft())
	}
	if res.Notice != "Peek cancelled" {
		t.Errorf("got notice %q", res.Notice)
	}
}

func TestPeekOnBottomTile(t *testing.T) {
	tests := []struct {
		name     string
		refund   bool
		expected int
	}{
		{"refunded", true, 3},
		{"charged", false, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.RefundEmptyPeek = tc.refund
			s := peekSession(t, opts)

			s.ActivatePeek()
			res, err := s.ClickBoardTile(3)
			if err != nil {
				t.Fatal(err)
			}
			if res.Notice != "Nothing hidden there" || len(res.Effects) != 0 {
				t.Errorf("got %+v", res)
			}
			if s.PeeksLeft() != tc.expected {
				t.Errorf("got %d peeks left, expected %d", s.PeeksLeft(), tc.expected)
			}
			if s.PeekArmed() {
				t.Error("peek should disarm after a click")
			}
		})
	}
}

// openTiles returns up to n uncovered board tiles with distinct symbols.
func openTiles(s *Session, n int) []int {
	var ids []int
	seen := make(map[string]bool)
	for _, tile := range s.Tiles() {
		if len(ids) == n {
			break
		}
		if tile.OnBoard() && !s.Blocked(tile.ID) && !seen[tile.Symbol] {
			seen[tile.Symbol] = true
			ids = append(ids, tile.ID)
		}
	}
	return ids
}

func TestShuffle(t *testing.T) {
	lvl, _ := LevelByID(12)
	s, err := NewSession(lvl, ThemeMixed, DefaultOptions(), NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range openTiles(s, 2) {
		mustMove(t, s, id)
	}

	symbols := make(map[int]string)
	for _, tile := range s.Tiles() {
		symbols[tile.ID] = tile.Symbol
	}

	res, err := s.Shuffle()
	if err != nil {
		t.Fatal(err)
	}
	if res.Notice != "Shuffled! 2 left" {
		t.Errorf("got notice %q", res.Notice)
	}
	if s.Moves() != 3 || s.ShufflesLeft() != 2 || s.ShufflesUsed() != 1 {
		t.Errorf("got moves %d shuffles left %d", s.Moves(), s.ShufflesLeft())
	}
	if len(s.Slot()) != 0 {
		t.Errorf("shuffle should empty the slot, got %d", len(s.Slot()))
	}

	inPattern := make(map[Coord]bool)
	for _, c := range s.Coords() {
		inPattern[c] = true
	}
	occupied := make(map[Spot]bool)
	layersAt := make(map[Coord]map[int]bool)
	for _, tile := range s.Tiles() {
		if tile.Symbol != symbols[tile.ID] {
			t.Errorf("tile %d changed symbol", tile.ID)
		}
		if !tile.OnBoard() {
			t.Errorf("tile %d is not on the board", tile.ID)
			continue
		}
		if !inPattern[tile.Pos] || tile.Layer < 0 || tile.Layer >= lvl.Layers {
			t.Errorf("tile %d at %v layer %d is out of the level", tile.ID, tile.Pos, tile.Layer)
		}
		spot := Spot{Coord: tile.Pos, Layer: tile.Layer}
		if occupied[spot] {
			t.Errorf("two tiles at %v layer %d", tile.Pos, tile.Layer)
		}
		occupied[spot] = true
		if layersAt[tile.Pos] == nil {
			layersAt[tile.Pos] = make(map[int]bool)
		}
		layersAt[tile.Pos][tile.Layer] = true
	}
	for c, layers := range layersAt {
		for l := range layers {
			if l > 0 && !layers[l-1] {
				t.Errorf("stack at %v has a gap below layer %d", c, l)
			}
		}
	}
}

func TestShuffleBoardOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.ShuffleIncludesSlot = false
	lvl, _ := LevelByID(12)
	s, err := NewSession(lvl, ThemeMixed, opts, NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range openTiles(s, 2) {
		mustMove(t, s, id)
	}

	if _, err := s.Shuffle(); err != nil {
		t.Fatal(err)
	}
	if len(s.Slot()) != 2 {
		t.Errorf("got %d slot tiles, expected the slot kept", len(s.Slot()))
	}

	onBoard := 0
	occupied := make(map[Spot]bool)
	layersAt := make(map[Coord]map[int]bool)
	for _, tile := range s.Tiles() {
		if !tile.OnBoard() {
			continue
		}
		onBoard++
		spot := Spot{Coord: tile.Pos, Layer: tile.Layer}
		if occupied[spot] {
			t.Errorf("two tiles at %v layer %d", tile.Pos, tile.Layer)
		}
		occupied[spot] = true
		if layersAt[tile.Pos] == nil {
			layersAt[tile.Pos] = make(map[int]bool)
		}
		layersAt[tile.Pos][tile.Layer] = true
	}
	if onBoard != lvl.TotalTiles-2 {
		t.Errorf("got %d board tiles, expected %d", onBoard, lvl.TotalTiles-2)
	}
	// Slot tiles no longer hold a board spot, so every stack is grounded.
	for c, layers := range layersAt {
		for l := range layers {
			if l > 0 && !layers[l-1] {
				t.Errorf("stack at %v has a gap below layer %d", c, l)
			}
		}
	}
}

func TestShuffleExhausted(t *testing.T) {
	lvl, _ := LevelByID(6)
	s, err := NewSession(lvl, ThemeMixed, DefaultOptions(), NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if _, err := s.Shuffle(); err != nil {
			t.Fatalf("shuffle %d: %v", i+1, err)
		}
	}

	before := s.Snapshot().Hash()
	_, err = s.Shuffle()
	var rej *RejectError
	if !errors.As(err, &rej) || rej.Kind != KindResourceExhausted || rej.Message != "No shuffles left!" {
		t.Errorf("got %v, expected no shuffles left", err)
	}
	if s.Snapshot().Hash() != before {
		t.Error("a refused shuffle must not change the state")
	}
}

func TestShuffleEndsReveal(t *testing.T) {
	s := peekSession(t, DefaultOptions())
	s.ActivatePeek()
	s.ClickBoardTile(2)

	if _, err := s.Shuffle(); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Reveal(); ok {
		t.Error("a shuffle should end the reveal")
	}
}

func TestCommandsDisarmPeek(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Session) (Result, error)
	}{
		{"move", func(s *Session) (Result, error) { return s.MoveToSlot(3) }},
		{"shuffle", func(s *Session) (Result, error) { return s.Shuffle() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := peekSession(t, DefaultOptions())
			if _, err := s.ActivatePeek(); err != nil {
				t.Fatal(err)
			}
			if _, err := tc.run(s); err != nil {
				t.Fatal(err)
			}
			if s.PeekArmed() {
				t.Error("peek should be disarmed")
			}
			if s.PeeksLeft() != 3 {
				t.Errorf("got %d peeks left, expected 3", s.PeeksLeft())
			}
		})
	}
}
