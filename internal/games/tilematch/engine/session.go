// Package engine is the game-state core of Tile Match: level catalog, board
// dealing, occlusion, the slot and its matching rules, and the peek and shuffle
// power-ups. It is pure and deterministic for a given seed; time only enters
// as effect delays that the caller schedules.
package engine

import (
	"sort"
	"time"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// EffectKind names a deferred follow-up step.
type EffectKind string

const (
	EffectRemoveMatch     EffectKind = "remove_match"     // Auto-matched triple leaves the slot
	EffectRemoveSelection EffectKind = "remove_selection" // Hand-picked triple leaves the slot
	EffectClearSelection  EffectKind = "clear_selection"  // Mismatched pick is dropped
	EffectEndReveal       EffectKind = "end_reveal"       // Peek reveal expires
)

// Effect is a follow-up the presentation layer must hand back to Resolve after
// Delay has passed. Until then the session keeps its logical state unchanged.
type Effect struct {
	ID    uint64
	Kind  EffectKind
	Delay time.Duration
}

// Result is the outcome of an accepted command.
type Result struct {
	Effects []Effect
	Notice  string // Advisory text for the player, may be empty
}

// Reveal is a transient peek: DisplayID is the clicked tile whose face shows
// the symbol of TileID, the deepest tile beneath it.
type Reveal struct {
	TileID    int
	DisplayID int
	Symbol    string
}

// Options tunes the rules of a session.
type Options struct {
	SlotCapacity        int // 0 uses the level's capacity
	Shuffles            int
	Peeks               int
	ShuffleIncludesSlot bool // Shuffle pulls slot tiles back onto the board
	RefundEmptyPeek     bool // A peek that finds nothing below costs nothing

	MatchDelay     time.Duration // Auto-match announcement before removal starts
	RemoveDelay    time.Duration // Removal of a matched triple
	MismatchDelay  time.Duration // How long a wrong hand-picked triple stays selected
	RevealDuration time.Duration
}

// DefaultOptions returns the standard rules.
func DefaultOptions() Options {
	return Options{
		SlotCapacity:        DefaultSlotCapacity,
		Shuffles:            3,
		Peeks:               3,
		ShuffleIncludesSlot: true,
		RefundEmptyPeek:     true,
		MatchDelay:          300 * time.Millisecond,
		RemoveDelay:         150 * time.Millisecond,
		MismatchDelay:       300 * time.Millisecond,
		RevealDuration:      1500 * time.Millisecond,
	}
}

// Session is one attempt at one level. It is not safe for concurrent use;
// every command runs to completion synchronously and delayed follow-ups are
// returned as effects.
type Session struct {
	level    Level
	theme    Theme
	opts     Options
	capacity int
	rng      *SimpleRNG

	coords  []Coord
	tiles   []Tile
	index   map[int]int // tile id -> position in tiles
	blocked map[int]bool

	slot     []int // Tile ids in insertion order
	selected []int // Hand-picked slot tiles

	moves        int
	status       Status
	shufflesLeft int
	peeksLeft    int
	peekArmed    bool

	reveal       *Reveal
	revealEffect uint64
	pendingMatch []int
	combo        string

	pending    map[uint64]EffectKind
	nextEffect uint64
}

// NewSession deals a fresh board for level and starts playing it.
func NewSession(level Level, theme Theme, opts Options, rng *SimpleRNG) (*Session, error) {
	if rng == nil {
		rng = NewRNG(uint64(level.ID))
	}
	board, err := BuildBoard(level, theme, rng)
	if err != nil {
		return nil, err
	}
	return newSession(level, theme, opts, rng, board), nil
}

func newSession(level Level, theme Theme, opts Options, rng *SimpleRNG, board Board) *Session {
	capacity := opts.SlotCapacity
	if capacity <= 0 {
		capacity = level.SlotCapacity
	}
	if capacity <= 0 {
		capacity = DefaultSlotCapacity
	}

	s := &Session{
		level:        level,
		theme:        theme,
		opts:         opts,
		capacity:     capacity,
		rng:          rng,
		coords:       board.Coords,
		tiles:        board.Tiles,
		index:        make(map[int]int, len(board.Tiles)),
		status:       StatusPlaying,
		shufflesLeft: opts.Shuffles,
		peeksLeft:    opts.Peeks,
		pending:      make(map[uint64]EffectKind),
	}
	for i, t := range s.tiles {
		s.index[t.ID] = i
		if t.InSlot && !t.Matched {
			s.slot = append(s.slot, t.ID)
		}
	}
	s.refresh()
	return s
}

func (s *Session) tile(id int) (*Tile, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.tiles[i], true
}

// refresh recomputes occlusion and the win condition after any mutation.
func (s *Session) refresh() {
	s.blocked = ComputeBlocked(s.tiles)
	if s.status != StatusPlaying {
		return
	}
	for _, t := range s.tiles {
		if !t.Matched {
			return
		}
	}
	s.status = StatusWon
}

// guard rejects commands outside of play or while a follow-up is pending.
func (s *Session) guard() error {
	if s.status != StatusPlaying {
		return reject(KindInvalidState, "level is %s", s.status)
	}
	if s.Processing() {
		return reject(KindInvalidState, "still resolving the last move")
	}
	return nil
}

func (s *Session) schedule(kind EffectKind, delay time.Duration) Effect {
	s.nextEffect++
	s.pending[s.nextEffect] = kind
	return Effect{ID: s.nextEffect, Kind: kind, Delay: delay}
}

func (s *Session) clearReveal() {
	if s.reveal != nil {
		delete(s.pending, s.revealEffect)
		s.reveal = nil
	}
}

// Resolve applies a deferred effect. Unknown or superseded effects are ignored
// and reported as false.
func (s *Session) Resolve(id uint64) bool {
	kind, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)

	switch kind {
	case EffectRemoveMatch:
		s.removeFromSlot(s.pendingMatch)
		s.pendingMatch = nil
		s.combo = ""
	case EffectRemoveSelection:
		s.removeFromSlot(s.selected)
		s.selected = nil
	case EffectClearSelection:
		s.selected = nil
	case EffectEndReveal:
		s.reveal = nil
	}
	s.refresh()
	return true
}

// Settle resolves every pending effect in scheduling order and returns how
// many were applied.
func (s *Session) Settle() int {
	ids := make([]uint64, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	applied := 0
	for _, id := range ids {
		if s.Resolve(id) {
			applied++
		}
	}
	return applied
}

// Processing reports whether a slot follow-up is pending. New moves, slot
// picks, shuffles and peeks are refused until it resolves.
func (s *Session) Processing() bool {
	for _, kind := range s.pending {
		if kind != EffectEndReveal {
			return true
		}
	}
	return false
}

// Read-model accessors.
func (s *Session) Level() Level { return s.level }
func (s *Session) Theme() Theme { return s.theme }
func (s *Session) Status() Status { return s.status }
func (s *Session) Moves() int { return s.moves }
func (s *Session) SlotCapacity() int { return s.capacity }
func (s *Session) ShufflesLeft() int { return s.shufflesLeft }
func (s *Session) PeeksLeft() int { return s.peeksLeft }
func (s *Session) PeekArmed() bool { return s.peekArmed }
func (s *Session) Combo() string { return s.combo }
func (s *Session) ShufflesUsed() int { return s.opts.Shuffles - s.shufflesLeft }
func (s *Session) PeeksUsed() int { return s.opts.Peeks - s.peeksLeft }
func (s *Session) Blocked(id int) bool { return s.blocked[id] }
func (s *Session) Selected() []int { return append([]int(nil), s.selected...) }
func (s *Session) PendingMatch() []int { return append([]int(nil), s.pendingMatch...) }
func (s *Session) Coords() []Coord { return append([]Coord(nil), s.coords...) }
func (s *Session) Tiles() []Tile { return append([]Tile(nil), s.tiles...) }
func (s *Session) TopTileAt(c Coord) (Tile, bool) { return TopTileAt(s.tiles, c) }

// Tile returns the tile with the given id.
func (s *Session) Tile(id int) (Tile, bool) {
	t, ok := s.tile(id)
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// BlockedMap returns a copy of the current occlusion map.
func (s *Session) BlockedMap() map[int]bool {
	out := make(map[int]bool, len(s.blocked))
	for id, b := range s.blocked {
		out[id] = b
	}
	return out
}

// Slot returns the slotted tiles in insertion order.
func (s *Session) Slot() []Tile {
	out := make([]Tile, 0, len(s.slot))
	for _, id := range s.slot {
		if t, ok := s.tile(id); ok {
			out = append(out, *t)
		}
	}
	return out
}

// Reveal returns the active peek reveal, if any.
func (s *Session) Reveal() (Reveal, bool) {
	if s.reveal == nil {
		return Reveal{}, false
	}
	return *s.reveal, true
}

// CanPeek reports whether ActivatePeek would currently be accepted.
func (s *Session) CanPeek() bool {
	return s.status == StatusPlaying && !s.Processing() && s.peeksLeft > 0 &&
		s.level.Layers > 1 && HasPeekable(s.tiles)
}
