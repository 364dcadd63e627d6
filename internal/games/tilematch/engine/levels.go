package engine

import "fmt"

// DefaultSlotCapacity is the number of tiles the slot can hold before the
// level is lost.
const DefaultSlotCapacity = 7

// Level is an immutable level definition.
type Level struct {
	ID           int
	Name         string
	GridSize     int
	Layers       int
	Pattern      Pattern
	SlotCapacity int
	TotalTiles   int
	Coords       int // Number of pattern coordinates
}

// SymbolCount returns how many symbol triples the level deals.
func (l Level) SymbolCount() int {
	return l.TotalTiles / 3
}

// Filled reports whether the level lays tiles on the filled silhouette of its
// pattern. Layered levels need the extra coordinates to stack on.
func (l Level) Filled() bool {
	return l.Layers > 1
}

// levelBlock describes a run of levels sharing grid size and layer count.
type levelBlock struct {
	last     int // Last level ID in the block
	gridSize int
	layers   int
}

var levelBlocks = []levelBlock{
	{last: 4, gridSize: 6, layers: 1},
	{last: 10, gridSize: 7, layers: 2},
	{last: 20, gridSize: 8, layers: 2},
	{last: 30, gridSize: 9, layers: 3},
	{last: 35, gridSize: 10, layers: 3},
	{last: 40, gridSize: 10, layers: 4},
	{last: 50, gridSize: 11, layers: 4},
}

// introLevels use the first patterns in order; later levels cycle all patterns.
const introLevels = 4

// minSymbolsByLayers is the least number of distinct triples a level deals.
var minSymbolsByLayers = map[int]int{1: 4, 2: 8, 3: 12, 4: 15}

// Levels is the fixed campaign, ids 1..50.
var Levels = generateLevels()

func generateLevels() []Level {
	last := levelBlocks[len(levelBlocks)-1].last
	levels := make([]Level, 0, last)
	cycle := 0

	for id := 1; id <= last; id++ {
		var block levelBlock
		for _, b := range levelBlocks {
			if id <= b.last {
				block = b
				break
			}
		}

		var pattern Pattern
		if id <= introLevels {
			pattern = allPatterns[id-1]
		} else {
			pattern = allPatterns[cycle%len(allPatterns)]
			cycle++
		}

		lvl := Level{
			ID:           id,
			Name:         fmt.Sprintf("Level %d", id),
			GridSize:     block.gridSize,
			Layers:       block.layers,
			Pattern:      pattern,
			SlotCapacity: DefaultSlotCapacity,
		}
		lvl.Coords = len(GeneratePattern(pattern, lvl.GridSize, lvl.Filled(), NewRNG(uint64(id))))
		lvl.TotalTiles = totalTiles(lvl.Coords, lvl.Layers)
		levels = append(levels, lvl)
	}
	return levels
}

// totalTiles sizes a level: every coordinate gets a ground tile and roughly half
// of them carry a full stack. The result is raised to the layer minimum, capped
// by the available spots and rounded down to whole triples.
func totalTiles(coords, layers int) int {
	stacked := (coords + 1) / 2
	pool := coords + stacked*(layers-1)

	total := max(minSymbolsByLayers[layers]*3, pool/3*3)
	total = min(total, coords*layers)
	return total / 3 * 3
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// LevelByID returns the level with the given 1-based id.
func LevelByID(id int) (Level, bool) {
	if id < 1 || id > len(Levels) {
		return Level{}, false
	}
	return Levels[id-1], true
}

// LevelDefinitions returns a copy of the whole catalog.
func LevelDefinitions() []Level {
	out := make([]Level, len(Levels))
	copy(out, Levels)
	return out
}
