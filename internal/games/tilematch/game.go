// Package tilematch provides the Tile Match stacked-tile puzzle for the
// terminal. The rules live in the engine subpackage; this package maps
// cursor and mouse input onto engine commands, turns deferred effects into
// tick timers and draws the board.
package tilematch

import (
	"errors"
	"time"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/engine"
	"github.com/vovakirdan/tilematch/internal/registry"
)

// GameID is the registry id of Tile Match.
const GameID = "tilematch"

// FocusArea indicates which area the cursor is in.
type FocusArea int

const (
	FocusBoard FocusArea = iota
	FocusSlot
)

// timer resolves an engine effect once the tick counter reaches due.
type timer struct {
	effect uint64
	due    uint64
}

// Game implements the Tile Match puzzle.
type Game struct {
	cfg      config.TileMatchConfig
	ctrl     *engine.Controller
	tickRate int
	tick     uint64

	// Screen dimensions
	screenW int
	screenH int

	// Cursor
	focus      FocusArea
	cursor     engine.Coord
	slotCursor int

	timers      []timer
	notice      string
	noticeUntil uint64
	blocking    []int // Tiles to clear before the last refused pick
	fatal       error // Level could not be dealt

	startLevel int // 0 deals level 1
	layout     layout
}

// Package-level variables for configuration
var (
	selectedTheme      string
	configPath         string
	difficultyPreset   = config.DifficultyFixed
)

// SetTheme overrides the configured symbol theme. Empty keeps the config value.
func SetTheme(theme string) {
	selectedTheme = theme
}

// SetConfigPath sets a custom YAML config path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new Tile Match game.
func New() *Game {
	return &Game{tickRate: 60}
}

// StartAt makes Reset deal the given level instead of level 1.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// Resize adapts the layout to a new terminal size without redealing.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if s := g.session(); s != nil {
		g.layout = computeLayout(s.Level(), s.SlotCapacity(), w, h)
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tile Match"
}

// Reset loads the configuration and deals the start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.fatal = nil

	g.cfg = loadConfig()

	theme, err := engine.ParseTheme(g.cfg.Rules.Theme)
	if selectedTheme != "" {
		theme, err = engine.ParseTheme(selectedTheme)
	}
	if err != nil {
		theme = engine.DefaultTheme
	}

	g.ctrl = engine.NewController(optionsFromConfig(g.cfg), theme, uint64(cfg.Seed))

	level := 1
	if g.startLevel > 0 && g.startLevel <= engine.LevelCount() {
		level = g.startLevel
	}
	g.transition(func() error { return g.ctrl.NewLevel(level, theme) })
}

// loadConfig reads the YAML config and applies the difficulty preset.
// Errors fall back to the built-in defaults; the CLI validates --config
// before a session starts.
func loadConfig() config.TileMatchConfig {
	cfg, err := config.LoadTileMatch(configPath)
	if err != nil {
		cfg = config.DefaultTileMatchConfig()
	}
	config.ApplyTileMatchPreset(&cfg, difficultyPreset)
	return cfg
}

// optionsFromConfig maps the YAML rules onto engine options.
func optionsFromConfig(cfg config.TileMatchConfig) engine.Options {
	return engine.Options{
		SlotCapacity:        cfg.Rules.SlotCapacity,
		Shuffles:            cfg.Rules.Shuffles,
		Peeks:               cfg.Rules.Peeks,
		ShuffleIncludesSlot: cfg.Rules.ShuffleIncludesSlot,
		RefundEmptyPeek:     cfg.Rules.RefundEmptyPeek,
		MatchDelay:          cfg.Timing.MatchDelay(),
		RemoveDelay:         cfg.Timing.RemoveDelay(),
		MismatchDelay:       cfg.Timing.MismatchDelay(),
		RevealDuration:      cfg.Timing.RevealDuration(),
	}
}

// transition runs a level change and resets everything tied to the old board.
func (g *Game) transition(change func() error) {
	if err := change(); err != nil {
		var rej *engine.RejectError
		if errors.As(err, &rej) && rej.Kind != engine.KindConfigurationError {
			g.showNotice(rej.Message)
			return
		}
		g.fatal = err
		return
	}

	g.fatal = nil
	g.timers = nil
	g.blocking = nil
	g.focus = FocusBoard
	g.slotCursor = 0
	g.notice = ""

	s := g.ctrl.Session()
	g.cursor = engine.Coord{Row: 0, Col: 0}
	if coords := s.Coords(); len(coords) > 0 {
		g.cursor = coords[0]
	}
	g.layout = computeLayout(s.Level(), s.SlotCapacity(), g.screenW, g.screenH)
}

// session returns the active session or nil.
func (g *Game) session() *engine.Session {
	if g.ctrl == nil || g.fatal != nil {
		return nil
	}
	return g.ctrl.Session()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.runTimers()
	if g.notice != "" && g.tick >= g.noticeUntil {
		g.notice = ""
	}

	s := g.session()
	if s == nil {
		if in.Has(core.ActionRestart) && g.ctrl != nil {
			g.transition(g.ctrl.Restart)
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.transition(g.ctrl.Restart)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionNextLevel):
		g.transition(g.ctrl.NextLevel)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionPrevLevel):
		g.transition(g.ctrl.PrevLevel)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionCycleTheme):
		g.transition(func() error { return g.ctrl.ChangeTheme(g.ctrl.Theme().Next()) })
		if g.session() != nil {
			g.showNotice("Theme: " + string(g.ctrl.Theme()))
		}
		return core.StepResult{State: g.State()}
	}

	switch s.Status() {
	case engine.StatusWon:
		if in.Has(core.ActionConfirm) || len(in.Clicks) > 0 {
			g.transition(g.ctrl.NextLevel)
		}
		return core.StepResult{State: g.State()}
	case engine.StatusLost:
		if in.Has(core.ActionConfirm) || len(in.Clicks) > 0 {
			g.transition(g.ctrl.Restart)
		}
		return core.StepResult{State: g.State()}
	}

	g.handleNavigation(in, s)

	if in.Has(core.ActionPeek) {
		g.apply(s.ActivatePeek())
	}
	if in.Has(core.ActionShuffle) {
		g.apply(s.Shuffle())
	}
	if in.Has(core.ActionConfirm) {
		g.confirm(s)
	}
	for _, c := range in.Clicks {
		g.click(s, c.X, c.Y)
	}

	return core.StepResult{State: g.State()}
}

// handleNavigation moves the board or slot cursor.
func (g *Game) handleNavigation(in core.InputFrame, s *engine.Session) {
	if in.Has(core.ActionFocusSlot) {
		if g.focus == FocusBoard && len(s.Slot()) > 0 {
			g.focus = FocusSlot
			g.slotCursor = core.Clamp(g.slotCursor, 0, len(s.Slot())-1)
		} else {
			g.focus = FocusBoard
		}
	}

	if g.focus == FocusSlot {
		if len(s.Slot()) == 0 {
			g.focus = FocusBoard
			return
		}
		if in.Has(core.ActionLeft) {
			g.slotCursor--
		}
		if in.Has(core.ActionRight) {
			g.slotCursor++
		}
		if in.Has(core.ActionUp) {
			g.focus = FocusBoard
		}
		g.slotCursor = core.Clamp(g.slotCursor, 0, len(s.Slot())-1)
		return
	}

	size := s.Level().GridSize
	if in.Has(core.ActionUp) {
		g.cursor.Row--
	}
	if in.Has(core.ActionDown) {
		g.cursor.Row++
	}
	if in.Has(core.ActionLeft) {
		g.cursor.Col--
	}
	if in.Has(core.ActionRight) {
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, size-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, size-1)
}

// confirm picks the tile under the cursor.
func (g *Game) confirm(s *engine.Session) {
	if g.focus == FocusSlot {
		slot := s.Slot()
		if g.slotCursor < len(slot) {
			g.apply(s.ClickSlotTile(slot[g.slotCursor].ID))
		}
		return
	}
	if t, ok := s.TopTileAt(g.cursor); ok {
		g.apply(s.ClickBoardTile(t.ID))
	}
}

// click hit-tests a mouse press against the board and the slot.
func (g *Game) click(s *engine.Session, x, y int) {
	if c, ok := g.layout.boardCellAt(x, y, s.Level().GridSize); ok {
		g.focus = FocusBoard
		g.cursor = c
		if t, ok := s.TopTileAt(c); ok {
			g.apply(s.ClickBoardTile(t.ID))
		}
		return
	}
	if i, ok := g.layout.slotIndexAt(x, y, s.SlotCapacity()); ok {
		slot := s.Slot()
		if i < len(slot) {
			g.focus = FocusSlot
			g.slotCursor = i
			g.apply(s.ClickSlotTile(slot[i].ID))
		}
	}
}

// apply records the outcome of an engine command: refusals become notices,
// effects become timers.
func (g *Game) apply(res engine.Result, err error) {
	if err != nil {
		var rej *engine.RejectError
		if errors.As(err, &rej) {
			g.showNotice(rej.Message)
			g.blocking = rej.Blocking
		} else {
			g.showNotice(err.Error())
		}
		return
	}

	g.blocking = nil
	for _, eff := range res.Effects {
		g.timers = append(g.timers, timer{effect: eff.ID, due: g.tick + g.ticksFor(eff.Delay)})
	}
	if res.Notice != "" {
		g.showNotice(res.Notice)
	}
	if s := g.session(); s != nil && len(s.Slot()) == 0 && g.focus == FocusSlot {
		g.focus = FocusBoard
	}
}

// runTimers resolves every effect that is due, in scheduling order.
func (g *Game) runTimers() {
	s := g.session()
	if s == nil || len(g.timers) == 0 {
		return
	}

	kept := g.timers[:0]
	for _, t := range g.timers {
		if t.due <= g.tick {
			s.Resolve(t.effect)
			continue
		}
		kept = append(kept, t)
	}
	g.timers = kept

	if n := len(s.Slot()); n == 0 {
		g.focus = FocusBoard
	} else {
		g.slotCursor = core.Clamp(g.slotCursor, 0, n-1)
	}
}

// ticksFor converts a delay to whole ticks, at least one.
func (g *Game) ticksFor(d time.Duration) uint64 {
	ticks := (d*time.Duration(g.tickRate) + time.Second - 1) / time.Second
	if ticks < 1 {
		ticks = 1
	}
	return uint64(ticks)
}

func (g *Game) showNotice(msg string) {
	g.notice = msg
	g.noticeUntil = g.tick + g.ticksFor(g.cfg.Timing.NoticeDuration())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session()
	if s == nil {
		return core.GameState{GameOver: g.fatal != nil}
	}
	return core.GameState{
		Level:        s.Level().ID,
		Theme:        string(s.Theme()),
		Status:       string(s.Status()),
		Moves:        s.Moves(),
		ShufflesUsed: s.ShufflesUsed(),
		PeeksUsed:    s.PeeksUsed(),
		Attempt:      g.ctrl.Attempt(),
		GameOver:     s.Status() != engine.StatusPlaying,
		Won:          s.Status() == engine.StatusWon,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Pick | Tab: Slot | E: Peek | F: Shuffle | R: Restart | N/P: Level | T: Theme"
}
