package engine

import "sort"

// ComputeBlocked reports, for every tile, whether it is covered. A board tile
// is blocked when another board tile at the same coordinate sits on a higher
// layer. Matched and slotted tiles are out of the board: they never block and
// are never blocked.
func ComputeBlocked(tiles []Tile) map[int]bool {
	top := topLayers(tiles)

	blocked := make(map[int]bool, len(tiles))
	for _, t := range tiles {
		blocked[t.ID] = t.OnBoard() && t.Layer < top[t.Pos]
	}
	return blocked
}

// topLayers returns the highest occupied board layer per coordinate.
func topLayers(tiles []Tile) map[Coord]int {
	top := make(map[Coord]int)
	for _, t := range tiles {
		if !t.OnBoard() {
			continue
		}
		if l, ok := top[t.Pos]; !ok || t.Layer > l {
			top[t.Pos] = t.Layer
		}
	}
	return top
}

// TopTileAt returns the uppermost board tile at c.
func TopTileAt(tiles []Tile, c Coord) (Tile, bool) {
	var best Tile
	found := false
	for _, t := range tiles {
		if t.OnBoard() && t.Pos == c && (!found || t.Layer > best.Layer) {
			best = t
			found = true
		}
	}
	return best, found
}

// stackAt returns the board tiles at c ordered bottom to top.
func stackAt(tiles []Tile, c Coord) []Tile {
	var stack []Tile
	for _, t := range tiles {
		if t.OnBoard() && t.Pos == c {
			stack = append(stack, t)
		}
	}
	sort.Slice(stack, func(i, j int) bool { return stack[i].Layer < stack[j].Layer })
	return stack
}

// BlockingTiles lists the ids of board tiles stacked above t, lowest first.
func BlockingTiles(tiles []Tile, t Tile) []int {
	var ids []int
	for _, s := range stackAt(tiles, t.Pos) {
		if s.Layer > t.Layer {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// DeepestBelow returns the lowest board tile under t at the same coordinate.
func DeepestBelow(tiles []Tile, t Tile) (Tile, bool) {
	stack := stackAt(tiles, t.Pos)
	if len(stack) == 0 || stack[0].Layer >= t.Layer {
		return Tile{}, false
	}
	return stack[0], true
}

// HasPeekable reports whether any board tile has another board tile beneath it.
func HasPeekable(tiles []Tile) bool {
	bottom := make(map[Coord]int)
	for _, t := range tiles {
		if !t.OnBoard() {
			continue
		}
		if l, ok := bottom[t.Pos]; !ok || t.Layer < l {
			bottom[t.Pos] = t.Layer
		}
	}
	for _, t := range tiles {
		if t.OnBoard() && t.Layer > bottom[t.Pos] {
			return true
		}
	}
	return false
}
