package engine

import "slices"

// MoveToSlot moves an uncovered board tile into the slot and counts a move.
// A full slot loses the level at once. Otherwise, when a symbol reaches three
// copies in the slot, those three are announced and a removal effect is
// returned; the slot is locked until it resolves.
func (s *Session) MoveToSlot(id int) (Result, error) {
	if err := s.guard(); err != nil {
		return Result{}, err
	}

	t, ok := s.tile(id)
	switch {
	case !ok:
		return Result{}, reject(KindIllegalMove, "no tile %d", id)
	case t.Matched:
		return Result{}, reject(KindIllegalMove, "tile %d is already matched", id)
	case t.InSlot:
		return Result{}, reject(KindIllegalMove, "tile %d is already in the slot", id)
	case s.blocked[id]:
		err := reject(KindIllegalMove, "tile %d is covered", id)
		err.Blocking = BlockingTiles(s.tiles, *t)
		return Result{}, err
	}

	t.InSlot = true
	s.slot = append(s.slot, id)
	s.moves++
	s.peekArmed = false
	s.clearReveal()
	s.refresh()

	if len(s.slot) >= s.capacity {
		s.status = StatusLost
		return Result{Notice: "Slot is full!"}, nil
	}

	ids, symbol := s.findTriple()
	if ids == nil {
		return Result{}, nil
	}
	s.pendingMatch = ids
	s.combo = symbol
	eff := s.schedule(EffectRemoveMatch, s.opts.MatchDelay+s.opts.RemoveDelay)
	return Result{Effects: []Effect{eff}, Notice: "Match! " + symbol}, nil
}

// findTriple returns the first three slot tiles of the first symbol, in order
// of first appearance in the slot, that has at least three copies.
func (s *Session) findTriple() ([]int, string) {
	counts := make(map[string]int)
	var order []string
	for _, id := range s.slot {
		sym := s.tiles[s.index[id]].Symbol
		if counts[sym] == 0 {
			order = append(order, sym)
		}
		counts[sym]++
	}

	for _, sym := range order {
		if counts[sym] < 3 {
			continue
		}
		ids := make([]int, 0, 3)
		for _, id := range s.slot {
			if s.tiles[s.index[id]].Symbol == sym {
				ids = append(ids, id)
				if len(ids) == 3 {
					return ids, sym
				}
			}
		}
	}
	return nil, ""
}

// ClickSlotTile toggles a slot tile in the hand-picked selection. The third
// pick costs a move and is checked: three equal symbols are removed after the
// remove delay, anything else is dropped after the mismatch delay.
func (s *Session) ClickSlotTile(id int) (Result, error) {
	if err := s.guard(); err != nil {
		return Result{}, err
	}

	t, ok := s.tile(id)
	if !ok || !t.InSlot {
		return Result{}, reject(KindIllegalMove, "tile %d is not in the slot", id)
	}

	if i := slices.Index(s.selected, id); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
		return Result{}, nil
	}

	s.selected = append(s.selected, id)
	if len(s.selected) < 3 {
		return Result{}, nil
	}

	s.moves++
	first := s.tiles[s.index[s.selected[0]]].Symbol
	for _, sid := range s.selected[1:] {
		if s.tiles[s.index[sid]].Symbol != first {
			eff := s.schedule(EffectClearSelection, s.opts.MismatchDelay)
			return Result{Effects: []Effect{eff}, Notice: "Not a match"}, nil
		}
	}
	eff := s.schedule(EffectRemoveSelection, s.opts.RemoveDelay)
	return Result{Effects: []Effect{eff}, Notice: "Match! " + first}, nil
}

// removeFromSlot marks the given slot tiles matched and drops them from the
// slot and the selection.
func (s *Session) removeFromSlot(ids []int) {
	ids = slices.Clone(ids)
	for _, id := range ids {
		if t, ok := s.tile(id); ok && t.InSlot {
			t.InSlot = false
			t.Matched = true
		}
	}
	gone := func(id int) bool { return slices.Contains(ids, id) }
	s.slot = slices.DeleteFunc(s.slot, gone)
	s.selected = slices.DeleteFunc(s.selected, gone)
}
