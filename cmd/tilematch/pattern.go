package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/games/tilematch/engine"
)

var (
	flagPatternSize   int
	flagPatternFilled bool
)

var patternCmd = &cobra.Command{
	Use:   "pattern [name]",
	Short: "Print a board pattern mask",
	Long: `Prints the coordinates a pattern selects on a square grid. '#' marks a
cell tiles may be placed on. Without a name, lists the known patterns.
The scattered pattern depends on --seed.

Examples:
  tilematch pattern
  tilematch pattern diamond --size 9
  tilematch pattern spiral --size 11 --filled`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPattern,
}

func init() {
	patternCmd.Flags().IntVar(&flagPatternSize, "size", 7, "Grid size (cells per side)")
	patternCmd.Flags().BoolVar(&flagPatternFilled, "filled", false, "Use the filled silhouette (layered levels)")
}

func runPattern(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		fmt.Println("Patterns:")
		for _, p := range engine.Patterns() {
			fmt.Printf("  %s\n", p)
		}
		return
	}

	p, err := engine.ParsePattern(args[0])
	if err != nil {
		exitf("Error: %v\n", err)
	}
	if flagPatternSize < 1 {
		exitf("Error: --size must be at least 1\n")
	}

	coords := engine.GeneratePattern(p, flagPatternSize, flagPatternFilled, engine.NewRNG(uint64(flagSeed)))
	fmt.Print(renderMask(coords, flagPatternSize))
	fmt.Printf("%s %dx%d: %d cells\n", p, flagPatternSize, flagPatternSize, len(coords))
}

// renderMask draws the selected coordinates as a character grid.
func renderMask(coords []engine.Coord, size int) string {
	grid := make([][]byte, size)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(".", size))
	}
	for _, c := range coords {
		if c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size {
			grid[c.Row][c.Col] = '#'
		}
	}

	var b strings.Builder
	for _, row := range grid {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
