package engine

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildBoardAllLevels(t *testing.T) {
	for _, lvl := range LevelDefinitions() {
		board, err := BuildBoard(lvl, ThemeMixed, NewRNG(uint64(lvl.ID)))
		if err != nil {
			t.Fatalf("level %d: %v", lvl.ID, err)
		}
		if len(board.Tiles) != lvl.TotalTiles {
			t.Errorf("level %d: dealt %d tiles, expected %d", lvl.ID, len(board.Tiles), lvl.TotalTiles)
		}

		inPattern := make(map[Coord]bool)
		for _, c := range board.Coords {
			inPattern[c] = true
		}

		occupied := make(map[Spot]bool)
		symbols := make(map[string]int)
		layersAt := make(map[Coord][]bool)
		for i, tile := range board.Tiles {
			if tile.ID != i {
				t.Fatalf("level %d: tile at %d has id %d", lvl.ID, i, tile.ID)
			}
			if !inPattern[tile.Pos] {
				t.Errorf("level %d: tile %d at %v is off the pattern", lvl.ID, tile.ID, tile.Pos)
			}
			if tile.Layer < 0 || tile.Layer >= lvl.Layers {
				t.Errorf("level %d: tile %d on layer %d", lvl.ID, tile.ID, tile.Layer)
			}
			spot := Spot{Coord: tile.Pos, Layer: tile.Layer}
			if occupied[spot] {
				t.Errorf("level %d: two tiles at %v layer %d", lvl.ID, tile.Pos, tile.Layer)
			}
			occupied[spot] = true
			symbols[tile.Symbol]++

			if layersAt[tile.Pos] == nil {
				layersAt[tile.Pos] = make([]bool, lvl.Layers)
			}
			layersAt[tile.Pos][tile.Layer] = true
		}

		for sym, n := range symbols {
			if n%3 != 0 {
				t.Errorf("level %d: symbol %s dealt %d times", lvl.ID, sym, n)
			}
		}
		for c, layers := range layersAt {
			for l := 1; l < len(layers); l++ {
				if layers[l] && !layers[l-1] {
					t.Errorf("level %d: stack at %v has a gap below layer %d", lvl.ID, c, l)
				}
			}
		}
	}
}

func TestBuildBoardDeterministic(t *testing.T) {
	lvl, _ := LevelByID(27)
	a, err := BuildBoard(lvl, ThemeFood, NewRNG(123))
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildBoard(lvl, ThemeFood, NewRNG(123))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should deal the same board")
	}
}

func TestBuildBoardLayeredHasCoveredTiles(t *testing.T) {
	lvl, _ := LevelByID(15)
	board, err := BuildBoard(lvl, ThemeMixed, NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}

	covered := 0
	for _, b := range ComputeBlocked(board.Tiles) {
		if b {
			covered++
		}
	}
	if covered == 0 {
		t.Error("a layered level should start with covered tiles")
	}
}

func TestBuildBoardUsesThemePalette(t *testing.T) {
	lvl, _ := LevelByID(1)
	board, err := BuildBoard(lvl, ThemeGlyphs, NewRNG(3))
	if err != nil {
		t.Fatal(err)
	}

	palette := make(map[string]bool)
	for _, s := range ThemeGlyphs.Palette() {
		palette[s] = true
	}
	for _, tile := range board.Tiles {
		if !palette[tile.Symbol] {
			t.Errorf("tile %d has symbol %q outside the glyphs palette", tile.ID, tile.Symbol)
		}
	}
}

func TestBuildBoardConfigurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		level Level
	}{
		{"no layers", Level{ID: 90, GridSize: 6, Layers: 0, Pattern: PatternSquare, TotalTiles: 12}},
		{"empty grid", Level{ID: 91, GridSize: 0, Layers: 1, Pattern: PatternSquare, TotalTiles: 12}},
		{"unknown pattern", Level{ID: 92, GridSize: 6, Layers: 1, Pattern: Pattern("zigzag"), TotalTiles: 12}},
		{"too few spots", Level{ID: 93, GridSize: 1, Layers: 1, Pattern: PatternSquare, TotalTiles: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildBoard(tc.level, ThemeMixed, NewRNG(1))
			if !errors.Is(err, ErrConfigurationError) {
				t.Errorf("got %v, expected a configuration error", err)
			}
		})
	}
}
