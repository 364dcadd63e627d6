package engine

import "testing"

func TestLevelCatalog(t *testing.T) {
	if got := LevelCount(); got != 50 {
		t.Fatalf("LevelCount() = %d, expected 50", got)
	}

	tests := []struct {
		id       int
		gridSize int
		layers   int
	}{
		{1, 6, 1},
		{4, 6, 1},
		{5, 7, 2},
		{10, 7, 2},
		{11, 8, 2},
		{21, 9, 3},
		{31, 10, 3},
		{36, 10, 4},
		{41, 11, 4},
		{50, 11, 4},
	}
	for _, tc := range tests {
		lvl, ok := LevelByID(tc.id)
		if !ok {
			t.Fatalf("LevelByID(%d) not found", tc.id)
		}
		if lvl.GridSize != tc.gridSize || lvl.Layers != tc.layers {
			t.Errorf("level %d: got %dx%d with %d layers, expected %dx%d with %d layers",
				tc.id, lvl.GridSize, lvl.GridSize, lvl.Layers, tc.gridSize, tc.gridSize, tc.layers)
		}
	}
}

func TestLevelCatalogProgression(t *testing.T) {
	prev := Level{GridSize: 0, Layers: 0}
	for i, lvl := range LevelDefinitions() {
		if lvl.ID != i+1 {
			t.Errorf("level at index %d has id %d", i, lvl.ID)
		}
		if lvl.GridSize < prev.GridSize || lvl.Layers < prev.Layers {
			t.Errorf("level %d shrinks: %d/%d after %d/%d", lvl.ID, lvl.GridSize, lvl.Layers, prev.GridSize, prev.Layers)
		}
		if lvl.TotalTiles <= 0 || lvl.TotalTiles%3 != 0 {
			t.Errorf("level %d: TotalTiles = %d, expected a positive multiple of 3", lvl.ID, lvl.TotalTiles)
		}
		if lvl.TotalTiles > lvl.Coords*lvl.Layers {
			t.Errorf("level %d: %d tiles do not fit %d coords x %d layers", lvl.ID, lvl.TotalTiles, lvl.Coords, lvl.Layers)
		}
		if lvl.SlotCapacity != DefaultSlotCapacity {
			t.Errorf("level %d: SlotCapacity = %d, expected %d", lvl.ID, lvl.SlotCapacity, DefaultSlotCapacity)
		}
		if lvl.SymbolCount()*3 != lvl.TotalTiles {
			t.Errorf("level %d: SymbolCount = %d for %d tiles", lvl.ID, lvl.SymbolCount(), lvl.TotalTiles)
		}
		prev = lvl
	}
}

func TestLevelPatterns(t *testing.T) {
	expected := map[int]Pattern{
		1: PatternX,
		2: PatternSquare,
		3: PatternDiamond,
		4: PatternPlus,
		5: PatternX,
		6: PatternSquare,
		13: PatternScattered,
		14: PatternX,
	}
	for id, p := range expected {
		lvl, _ := LevelByID(id)
		if lvl.Pattern != p {
			t.Errorf("level %d: pattern %s, expected %s", id, lvl.Pattern, p)
		}
	}
}

func TestLevelFilled(t *testing.T) {
	one, _ := LevelByID(1)
	if one.Filled() {
		t.Error("single-layer level should use the sparse outline")
	}
	twenty, _ := LevelByID(20)
	if !twenty.Filled() {
		t.Error("layered level should use the filled silhouette")
	}
}

func TestLevelByIDOutOfRange(t *testing.T) {
	for _, id := range []int{-1, 0, 51} {
		if _, ok := LevelByID(id); ok {
			t.Errorf("LevelByID(%d) should not be found", id)
		}
	}
}

func TestLevelDefinitionsIsCopy(t *testing.T) {
	defs := LevelDefinitions()
	defs[0].GridSize = 99
	if lvl, _ := LevelByID(1); lvl.GridSize == 99 {
		t.Error("LevelDefinitions should return a copy")
	}
}
