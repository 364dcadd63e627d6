package tilematch

import "github.com/vovakirdan/tilematch/internal/games/tilematch/engine"

// Snapshot captures the adapter state around the engine snapshot, for
// determinism tests.
type Snapshot struct {
	Tick       uint64
	Focus      FocusArea
	Cursor     engine.Coord
	SlotCursor int
	Timers     int // Effects waiting for their delay
	Notice     string
	Engine     engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Focus:      g.focus,
		Cursor:     g.cursor,
		SlotCursor: g.slotCursor,
		Timers:     len(g.timers),
		Notice:     g.notice,
	}
	if s := g.session(); s != nil {
		snap.Engine = s.Snapshot()
	}
	return snap
}
