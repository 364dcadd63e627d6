package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/tilematch"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/engine"
	"github.com/vovakirdan/tilematch/internal/platform/tui"
	"github.com/vovakirdan/tilematch/internal/registry"
	"github.com/vovakirdan/tilematch/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play Tile Match",
	Long: `Without a level, opens the level picker. With a level (1-50), deals it
directly; N/P move between levels from there.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Pick the tile under the cursor
  Mouse click  - Pick a tile
  Tab          - Switch between board and slot
  E            - Peek under a stack
  F            - Shuffle
  R            - Deal the level again
  N/P or ]/[   - Next / previous level
  T            - Next symbol theme
  Esc/B        - Back to the level picker
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 shuffles and 5 peeks
  normal - the built-in allowances
  hard   - 1 shuffle, 1 peek, empty peeks are not refunded
  fixed  - exactly what the config file says (default)

Examples:
  tilematch play
  tilematch play 7
  tilematch play 31 --difficulty easy --theme food
  tilematch play --config ./my-rules.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	level, err := levelArg(args)
	if err != nil {
		exitf("Error: %v\n", err)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var runErr error
	if level == 0 {
		runErr = tui.RunSession(store, logger, cfg)
	} else {
		game, err := registry.Create(tilematch.GameID)
		if err != nil {
			exitf("Error creating game: %v\n", err)
		}
		if g, ok := game.(*tilematch.Game); ok {
			g.StartAt(level)
		}
		runErr = tui.Run(game, store, logger, cfg)
	}

	if runErr != nil {
		if store != nil {
			store.Close()
			store = nil
		}
		exitf("Error running game: %v\n", runErr)
	}
}

// openStore opens the results database. Play continues without recording
// when it cannot be opened.
func openStore() *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database, attempts will not be recorded", "error", err)
		return nil
	}
	return store
}

// levelArg parses an optional level argument; 0 means none was given.
func levelArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("level must be a number, got %q", args[0])
	}
	if _, ok := engine.LevelByID(n); !ok {
		return 0, fmt.Errorf("level must be between 1 and %d", engine.LevelCount())
	}
	return n, nil
}
