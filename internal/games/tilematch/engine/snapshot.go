package engine

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Snapshot is a copy of everything the presentation layer renders.
type Snapshot struct {
	Level        Level
	Theme        Theme
	Status       Status
	Moves        int
	Tiles        []Tile
	Blocked      map[int]bool
	Slot         []Tile
	SlotCapacity int
	Selected     []int
	ShufflesLeft int
	PeeksLeft    int
	PeekArmed    bool
	CanPeek      bool
	Reveal       *Reveal
	PendingMatch []int
	Combo        string
	Processing   bool
}

// Snapshot captures the current read model.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Level:        s.level,
		Theme:        s.theme,
		Status:       s.status,
		Moves:        s.moves,
		Tiles:        s.Tiles(),
		Blocked:      s.BlockedMap(),
		Slot:         s.Slot(),
		SlotCapacity: s.capacity,
		Selected:     s.Selected(),
		ShufflesLeft: s.shufflesLeft,
		PeeksLeft:    s.peeksLeft,
		PeekArmed:    s.peekArmed,
		CanPeek:      s.CanPeek(),
		PendingMatch: s.PendingMatch(),
		Combo:        s.combo,
		Processing:   s.Processing(),
	}
	if r, ok := s.Reveal(); ok {
		snap.Reveal = &r
	}
	return snap
}

// Hash fingerprints the logical game state for determinism checks. Transient
// display fields (reveal, combo, selection) are left out.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s|%d|%d|%d|", s.Level.ID, s.Theme, s.Status, s.Moves, s.ShufflesLeft, s.PeeksLeft)

	tiles := append([]Tile(nil), s.Tiles...)
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].ID < tiles[j].ID })
	for _, t := range tiles {
		fmt.Fprintf(h, "%d:%s:%d:%d:%d:%t:%t;", t.ID, t.Symbol, t.Layer, t.Pos.Row, t.Pos.Col, t.InSlot, t.Matched)
	}
	for _, t := range s.Slot {
		fmt.Fprintf(h, "s%d;", t.ID)
	}
	return h.Sum64()
}
