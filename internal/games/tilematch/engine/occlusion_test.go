package engine

import (
	"reflect"
	"testing"
)

func stack(symbols ...string) []Tile {
	tiles := make([]Tile, len(symbols))
	for i, s := range symbols {
		tiles[i] = Tile{ID: i, Symbol: s, Layer: i, Pos: Coord{2, 2}}
	}
	return tiles
}

func TestComputeBlocked(t *testing.T) {
	tiles := append(stack("A", "B"), Tile{ID: 2, Symbol: "C", Pos: Coord{0, 0}})

	blocked := ComputeBlocked(tiles)
	expected := map[int]bool{0: true, 1: false, 2: false}
	if !reflect.DeepEqual(blocked, expected) {
		t.Errorf("got %v, expected %v", blocked, expected)
	}
}

func TestComputeBlockedIgnoresTilesOutOfPlay(t *testing.T) {
	tests := []struct {
		name  string
		mutate func(*Tile)
	}{
		{"slotted", func(t *Tile) { t.InSlot = true }},
		{"matched", func(t *Tile) { t.Matched = true }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tiles := stack("A", "B")
			tc.mutate(&tiles[1])
			blocked := ComputeBlocked(tiles)
			if blocked[0] || blocked[1] {
				t.Errorf("got %v, expected nothing blocked", blocked)
			}
		})
	}
}

func TestTopTileAt(t *testing.T) {
	tiles := stack("A", "B", "C")

	top, ok := TopTileAt(tiles, Coord{2, 2})
	if !ok || top.ID != 2 {
		t.Errorf("got %v %v, expected tile 2", top, ok)
	}

	tiles[2].InSlot = true
	top, ok = TopTileAt(tiles, Coord{2, 2})
	if !ok || top.ID != 1 {
		t.Errorf("got %v %v, expected tile 1 after the top left the board", top, ok)
	}

	if _, ok := TopTileAt(tiles, Coord{0, 0}); ok {
		t.Error("empty coordinate should have no top tile")
	}
}

func TestBlockingTiles(t *testing.T) {
	tiles := stack("A", "B", "C")

	if got := BlockingTiles(tiles, tiles[0]); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("got %v, expected [1 2]", got)
	}
	if got := BlockingTiles(tiles, tiles[2]); len(got) != 0 {
		t.Errorf("got %v, expected none", got)
	}
}

func TestDeepestBelow(t *testing.T) {
	tiles := stack("A", "B", "C")

	deep, ok := DeepestBelow(tiles, tiles[2])
	if !ok || deep.ID != 0 {
		t.Errorf("got %v %v, expected tile 0", deep, ok)
	}
	if _, ok := DeepestBelow(tiles, tiles[0]); ok {
		t.Error("bottom tile has nothing below it")
	}

	tiles[0].Matched = true
	deep, ok = DeepestBelow(tiles, tiles[2])
	if !ok || deep.ID != 1 {
		t.Errorf("got %v %v, expected tile 1 once tile 0 is matched", deep, ok)
	}
}

func TestHasPeekable(t *testing.T) {
	tiles := stack("A", "B")
	if !HasPeekable(tiles) {
		t.Error("a two-tile stack is peekable")
	}

	tiles[0].Matched = true
	if HasPeekable(tiles) {
		t.Error("a lone tile is not peekable")
	}

	flat := []Tile{{ID: 0, Pos: Coord{0, 0}}, {ID: 1, Pos: Coord{0, 1}}}
	if HasPeekable(flat) {
		t.Error("a flat board is not peekable")
	}
}
