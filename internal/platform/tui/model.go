package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/registry"
	"github.com/vovakirdan/tilematch/internal/storage"
)

// resizer is implemented by games that can adapt to a new terminal size
// without dealing a new board.
type resizer interface {
	Resize(w, h int)
}

// GameModel runs a single game inside a Bubble Tea program.
type GameModel struct {
	game         registry.Game
	screen       *core.Screen
	store        *storage.Store
	logger       *log.Logger
	config       core.RuntimeConfig
	inputFrame   core.InputFrame
	gameState    core.GameState
	keyMapper    *KeyMapper
	started      bool
	standalone   bool // No level picker to return to; Back quits
	quitting     bool
	backToMenu   bool
	savedAttempt int // Attempt whose result is already stored
}

// NewGameModel creates a new game model. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Start resets the game and captures its initial state.
// Init calls it too; callers that hold the model by value call it first so
// the reset is not lost on a copy.
func (m *GameModel) Start() {
	if m.started {
		return
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.started = true
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize adapts the screen buffer; games that support it keep their board.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.saveResult()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult stores a finished attempt once.
func (m *GameModel) saveResult() {
	st := m.gameState
	if !st.GameOver || st.Level == 0 || st.Attempt == m.savedAttempt {
		return
	}
	m.savedAttempt = st.Attempt

	if m.logger != nil {
		m.logger.Debug("attempt finished",
			"level", st.Level,
			"status", st.Status,
			"moves", st.Moves,
		)
	}
	if m.store == nil {
		return
	}

	_, err := m.store.SaveResult(storage.LevelResult{
		LevelID:      st.Level,
		Theme:        st.Theme,
		Status:       st.Status,
		Moves:        st.Moves,
		ShufflesUsed: st.ShufflesUsed,
		PeeksUsed:    st.PeeksUsed,
		Seed:         m.config.Seed,
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game without the level picker.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.standalone = true
	model.Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
