package engine

import "sort"

// Board is a freshly dealt tile set together with the pattern coordinates it
// was laid out on. Shuffles redraw spots from the same coordinates.
type Board struct {
	Tiles  []Tile
	Coords []Coord
}

// BuildBoard deals the tiles for a level. Tiles are ordered bottom layer first,
// then row-major, and ids are their indexes in that order.
//
// A level whose pattern yields no coordinates, or fewer spots than one triple,
// is a catalog defect and is reported as a ConfigurationError.
func BuildBoard(level Level, theme Theme, rng *SimpleRNG) (Board, error) {
	if rng == nil {
		rng = NewRNG(uint64(level.ID))
	}
	if level.Layers < 1 {
		return Board{}, reject(KindConfigurationError, "level %d has no layers", level.ID)
	}

	coords := GeneratePattern(level.Pattern, level.GridSize, level.Filled(), rng)
	if len(coords) == 0 {
		return Board{}, reject(KindConfigurationError,
			"level %d: pattern %s yields no coordinates on a %dx%d grid",
			level.ID, level.Pattern, level.GridSize, level.GridSize)
	}

	spots := spotPool(coords, level.Layers, level.TotalTiles, rng)
	spots = spots[:len(spots)/3*3]
	if len(spots) < 3 {
		return Board{}, reject(KindConfigurationError,
			"level %d: only %d tile spots available", level.ID, len(spots))
	}

	symbols := dealSymbols(theme.Palette(), len(spots)/3, rng)
	rng.Shuffle(len(spots), func(i, j int) { spots[i], spots[j] = spots[j], spots[i] })

	tiles := make([]Tile, len(spots))
	for i, spot := range spots {
		tiles[i] = Tile{Symbol: symbols[i], Layer: spot.Layer, Pos: spot.Coord}
	}
	sortTiles(tiles)
	for i := range tiles {
		tiles[i].ID = i
	}

	return Board{Tiles: tiles, Coords: coords}, nil
}

// spotPool picks want spots. Every coordinate gets a ground tile; a random half
// of the coordinates are stacked through every layer so that real occlusion
// exists, and the other half stay single. If that is not enough the single
// coordinates are stacked too, lowest layer first, so stacks never have gaps.
// Trimming drops the highest spots first for the same reason.
func spotPool(coords []Coord, layers, want int, rng *SimpleRNG) []Spot {
	order := make([]Coord, len(coords))
	copy(order, coords)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	stacked, single := order[:(len(order)+1)/2], order[(len(order)+1)/2:]
	if layers == 1 {
		stacked, single = nil, nil
	}

	spots := make([]Spot, 0, len(coords)*layers)
	for _, c := range order {
		spots = append(spots, Spot{Coord: c})
	}
	for layer := 1; layer < layers; layer++ {
		for _, c := range stacked {
			spots = append(spots, Spot{Coord: c, Layer: layer})
		}
	}
	for layer := 1; layer < layers && len(spots) < want; layer++ {
		for _, c := range single {
			if len(spots) >= want {
				break
			}
			spots = append(spots, Spot{Coord: c, Layer: layer})
		}
	}

	if want > 0 && len(spots) > want {
		spots = spots[:want]
	}
	return spots
}

// dealSymbols emits triples of the first count palette symbols, cycling the
// palette when the level needs more symbols than it has, in shuffled order.
func dealSymbols(palette []string, count int, rng *SimpleRNG) []string {
	out := make([]string, 0, count*3)
	for i := 0; i < count; i++ {
		sym := palette[i%len(palette)]
		out = append(out, sym, sym, sym)
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// sortTiles orders tiles by layer, then row, then column.
func sortTiles(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		a, b := tiles[i], tiles[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if a.Pos.Row != b.Pos.Row {
			return a.Pos.Row < b.Pos.Row
		}
		return a.Pos.Col < b.Pos.Col
	})
}
