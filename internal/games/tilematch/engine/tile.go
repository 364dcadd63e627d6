package engine

// Tile is a single symbol-bearing piece. A tile is on the board, in the slot,
// or matched; matched tiles are out of play for good.
type Tile struct {
	ID      int
	Symbol  string
	Layer   int // 0 is the bottom of a stack
	Pos     Coord
	InSlot  bool
	Matched bool
}

// OnBoard reports whether the tile is still on the board.
func (t Tile) OnBoard() bool {
	return !t.InSlot && !t.Matched
}

// Spot is a (row, col, layer) position a tile can occupy.
type Spot struct {
	Coord
	Layer int
}
