package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilematch/internal/games/tilematch/engine"
)

var flagLevelsFormat string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level with its grid, layers, pattern and tile count.

Examples:
  tilematch levels
  tilematch levels --format yaml > levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsFormat, "format", "text", "Output format: text or yaml")
}

// levelEntry is the exported shape of one catalog level.
type levelEntry struct {
	ID           int    `yaml:"id"`
	Name         string `yaml:"name"`
	GridSize     int    `yaml:"grid_size"`
	Layers       int    `yaml:"layers"`
	Pattern      string `yaml:"pattern"`
	Filled       bool   `yaml:"filled"`
	SlotCapacity int    `yaml:"slot_capacity"`
	TotalTiles   int    `yaml:"total_tiles"`
	Symbols      int    `yaml:"symbols"`
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := engine.LevelDefinitions()

	switch flagLevelsFormat {
	case "yaml":
		entries := make([]levelEntry, len(levels))
		for i, l := range levels {
			entries[i] = levelEntry{
				ID:           l.ID,
				Name:         l.Name,
				GridSize:     l.GridSize,
				Layers:       l.Layers,
				Pattern:      string(l.Pattern),
				Filled:       l.Filled(),
				SlotCapacity: l.SlotCapacity,
				TotalTiles:   l.TotalTiles,
				Symbols:      l.SymbolCount(),
			}
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][]levelEntry{"levels": entries}); err != nil {
			exitf("Error encoding levels: %v\n", err)
		}
		enc.Close()

	case "text":
		fmt.Printf("  %-5s  %-6s  %-6s  %-10s  %-5s  %s\n", "Level", "Grid", "Layers", "Pattern", "Tiles", "Symbols")
		fmt.Printf("  %-5s  %-6s  %-6s  %-10s  %-5s  %s\n", "-----", "----", "------", "-------", "-----", "-------")
		for _, l := range levels {
			grid := fmt.Sprintf("%dx%d", l.GridSize, l.GridSize)
			fmt.Printf("  %-5d  %-6s  %-6d  %-10s  %-5d  %d\n", l.ID, grid, l.Layers, l.Pattern, l.TotalTiles, l.SymbolCount())
		}
		fmt.Println()
		fmt.Println("Run 'tilematch play <level>' to play one.")

	default:
		exitf("Error: unknown format %q (use text or yaml)\n", flagLevelsFormat)
	}
}
