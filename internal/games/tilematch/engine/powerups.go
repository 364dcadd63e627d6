package engine

import "fmt"

// ActivatePeek arms a one-shot reveal for the next board click. Calling it
// again while armed disarms it at no cost. The allowance is spent by the
// reveal itself, see ClickBoardTile.
func (s *Session) ActivatePeek() (Result, error) {
	if err := s.guard(); err != nil {
		return Result{}, err
	}
	if s.peekArmed {
		s.peekArmed = false
		return Result{Notice: "Peek cancelled"}, nil
	}
	if s.peeksLeft <= 0 {
		return Result{}, reject(KindResourceExhausted, "No peeks left!")
	}
	if s.level.Layers <= 1 {
		return Result{}, reject(KindInvalidState, "Nothing is stacked on this level")
	}
	if !HasPeekable(s.tiles) {
		return Result{}, reject(KindInvalidState, "No covered tiles to peek at")
	}

	s.peekArmed = true
	return Result{Notice: "Peek: pick a stack"}, nil
}

// ClickBoardTile is the board click entry point: it reveals beneath the tile
// when peek is armed and moves the tile to the slot otherwise.
func (s *Session) ClickBoardTile(id int) (Result, error) {
	if s.peekArmed {
		return s.peek(id)
	}
	return s.MoveToSlot(id)
}

// peek shows the symbol of the deepest tile below the clicked one. No tile
// changes layer, position or slot membership.
func (s *Session) peek(id int) (Result, error) {
	if err := s.guard(); err != nil {
		return Result{}, err
	}
	t, ok := s.tile(id)
	if !ok || !t.OnBoard() {
		return Result{}, reject(KindIllegalMove, "tile %d is not on the board", id)
	}

	s.peekArmed = false
	s.clearReveal()

	deep, ok := DeepestBelow(s.tiles, *t)
	if !ok {
		if !s.opts.RefundEmptyPeek {
			s.peeksLeft--
		}
		return Result{Notice: "Nothing hidden there"}, nil
	}

	s.peeksLeft--
	s.reveal = &Reveal{TileID: deep.ID, DisplayID: t.ID, Symbol: deep.Symbol}
	eff := s.schedule(EffectEndReveal, s.opts.RevealDuration)
	s.revealEffect = eff.ID
	return Result{Effects: []Effect{eff}}, nil
}

// Shuffle redeals positions and layers of the tiles in play, keeping every
// tile's symbol. With ShuffleIncludesSlot the slot is emptied back onto the
// board. Costs a move and one shuffle.
func (s *Session) Shuffle() (Result, error) {
	if err := s.guard(); err != nil {
		return Result{}, err
	}
	if s.shufflesLeft <= 0 {
		return Result{}, reject(KindResourceExhausted, "No shuffles left!")
	}

	var movers []int
	for i, t := range s.tiles {
		if t.OnBoard() || t.InSlot && s.opts.ShuffleIncludesSlot {
			movers = append(movers, i)
		}
	}
	if len(movers) == 0 {
		return Result{}, reject(KindInvalidState, "Nothing on the board to shuffle")
	}

	spots := s.shuffleSpots(len(movers))
	if len(spots) < len(movers) {
		return Result{}, reject(KindConfigurationError,
			"level %d has %d free spots for %d tiles", s.level.ID, len(spots), len(movers))
	}

	for k, i := range movers {
		s.tiles[i].Pos = spots[k].Coord
		s.tiles[i].Layer = spots[k].Layer
		s.tiles[i].InSlot = false
	}
	if s.opts.ShuffleIncludesSlot {
		s.slot = nil
		s.selected = nil
	}

	s.shufflesLeft--
	s.moves++
	s.peekArmed = false
	s.clearReveal()
	s.refresh()
	return Result{Notice: fmt.Sprintf("Shuffled! %d left", s.shufflesLeft)}, nil
}

// shuffleSpots draws n distinct spots from the level's coordinate x layer
// space. Each coordinate's stack is then settled onto its lowest layers and
// the result is shuffled again.
func (s *Session) shuffleSpots(n int) []Spot {
	free := make([]Spot, 0, len(s.coords)*s.level.Layers)
	for layer := 0; layer < s.level.Layers; layer++ {
		for _, c := range s.coords {
			free = append(free, Spot{Coord: c, Layer: layer})
		}
	}
	s.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	if n > len(free) {
		return free
	}

	perCoord := make(map[Coord]int)
	var order []Coord
	for _, sp := range free[:n] {
		if perCoord[sp.Coord] == 0 {
			order = append(order, sp.Coord)
		}
		perCoord[sp.Coord]++
	}

	spots := make([]Spot, 0, n)
	for _, c := range order {
		left := perCoord[c]
		for layer := 0; layer < s.level.Layers && left > 0; layer++ {
			spots = append(spots, Spot{Coord: c, Layer: layer})
			left--
		}
	}
	s.rng.Shuffle(len(spots), func(i, j int) { spots[i], spots[j] = spots[j], spots[i] })
	return spots
}
