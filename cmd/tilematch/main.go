// tilematch is a stacked-tile matching puzzle for the terminal.
//
// Usage:
//
//	tilematch play [level]       - Pick a level interactively, or play one directly
//	tilematch levels             - List the level catalog
//	tilematch results [level]    - Show recorded attempts
//	tilematch pattern <name>     - Print a board pattern mask
//	tilematch config             - Print the effective configuration
//	tilematch serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible deals
//	--db <path>           - Set results database path (default: ~/.tilematch/results.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <name>   - Apply a preset: easy, normal, hard, fixed
//	--theme <name>        - Override the symbol theme
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/games/tilematch"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/engine"
	"github.com/vovakirdan/tilematch/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagVerbose    bool
	flagMono       bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilematch",
	Short: "Tile Match - a stacked-tile matching puzzle for your terminal",
	Long: `Tile Match deals 50 levels of stacked symbol tiles. Move uncovered
tiles into the slot; three equal symbols clear. Empty the board to win,
fill the slot and you lose.

Available commands:
  play     - Level picker, or play a level directly
  levels   - Show the level catalog
  results  - View recorded attempts
  pattern  - Preview a board pattern
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  tilematch play
  tilematch play 12 --theme glyphs
  tilematch play --difficulty hard
  tilematch levels --format yaml
  tilematch serve --ssh :2222`,
	PersistentPreRun: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilematch/results.db", "Path to results database (empty disables recording)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (default: as configured)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Symbol theme: animals, food, faces, mixed, glyphs")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use the grayscale menu theme")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(patternCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup validates the global flags and hands them to the game before any
// subcommand runs. A bad --config fails here instead of silently falling
// back to defaults inside the game.
func setup(cmd *cobra.Command, _ []string) {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilematch",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		exitf("Error: %v\n", err)
	}

	if flagTheme != "" {
		if _, err := engine.ParseTheme(flagTheme); err != nil {
			exitf("Error: %v\n", err)
		}
	}

	if flagConfig != "" {
		if _, err := config.LoadTileMatch(flagConfig); err != nil {
			exitf("Error: %v\n", err)
		}
	}

	if flagMono {
		tui.SetTheme(tui.MonochromeTheme())
	}

	tilematch.SetConfigPath(flagConfig)
	tilematch.SetDifficultyPreset(preset)
	tilematch.SetTheme(flagTheme)

	logger.Debug("configured",
		"command", cmd.Name(),
		"config", flagConfig,
		"difficulty", preset,
		"theme", flagTheme,
		"seed", flagSeed,
	)
}

// effectiveConfig loads the configuration the game will use.
func effectiveConfig() (config.TileMatchConfig, error) {
	cfg, err := config.LoadTileMatch(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyTileMatchPreset(&cfg, preset)
	if flagTheme != "" {
		cfg.Rules.Theme = flagTheme
	}
	return cfg, nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
