package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/storage"
)

var (
	flagResultsRecent int
	flagResultsClear  bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [level]",
	Short: "Show recorded attempts",
	Long: `Without a level, shows the best (fewest-moves) win for every level.
With a level, shows every attempt at it and a summary.

Examples:
  tilematch results
  tilematch results 12
  tilematch results --recent 20
  tilematch results 12 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsRecent, "recent", 0, "Show the N most recent attempts instead")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete the recorded attempts (of one level, or all)")
}

func runResults(_ *cobra.Command, args []string) {
	level, err := levelArg(args)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	if flagDBPath == "" {
		exitf("Error: no results database (--db is empty)\n")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("Error opening results database: %v\n", err)
	}
	defer store.Close()

	switch {
	case flagResultsClear:
		err = store.ClearResults(level)
		if err == nil {
			if level == 0 {
				fmt.Println("Cleared all results.")
			} else {
				fmt.Printf("Cleared results for level %d.\n", level)
			}
		}
	case flagResultsRecent > 0:
		err = printRecent(store, flagResultsRecent)
	case level > 0:
		err = printLevel(store, level)
	default:
		err = printBest(store)
	}

	if err != nil {
		store.Close()
		exitf("Error retrieving results: %v\n", err)
	}
}

func printResultHeader() {
	fmt.Printf("  %-5s  %-6s  %-5s  %-8s  %-5s  %-7s  %s\n", "Level", "Result", "Moves", "Shuffles", "Peeks", "Theme", "Date")
	fmt.Printf("  %-5s  %-6s  %-5s  %-8s  %-5s  %-7s  %s\n", "-----", "------", "-----", "--------", "-----", "-----", "----")
}

func printResult(r storage.LevelResult) {
	fmt.Printf("  %-5d  %-6s  %-5d  %-8d  %-5d  %-7s  %s\n",
		r.LevelID, r.Status, r.Moves, r.ShufflesUsed, r.PeeksUsed, r.Theme,
		r.CreatedAt.Format("2006-01-02 15:04"))
}

func printBest(store *storage.Store) error {
	best, err := store.BestResults()
	if err != nil {
		return err
	}

	fmt.Println("Best results")
	fmt.Println()
	if len(best) == 0 {
		fmt.Println("No level cleared yet.")
		fmt.Println()
		fmt.Println("Run 'tilematch play' to set the first record!")
		return nil
	}

	printResultHeader()
	for _, r := range best {
		printResult(r)
	}
	fmt.Println()
	fmt.Printf("Cleared: %d levels\n", len(best))
	return nil
}

func printRecent(store *storage.Store, limit int) error {
	recent, err := store.RecentResults(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent attempts")
	fmt.Println()
	if len(recent) == 0 {
		fmt.Println("No attempts recorded yet.")
		return nil
	}

	printResultHeader()
	for _, r := range recent {
		printResult(r)
	}
	return nil
}

func printLevel(store *storage.Store, level int) error {
	results, err := store.ResultsForLevel(level)
	if err != nil {
		return err
	}
	summary, err := store.Summary(level)
	if err != nil {
		return err
	}

	fmt.Printf("Level %d\n", level)
	fmt.Println()
	if len(results) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'tilematch play %d' to try it.\n", level)
		return nil
	}

	printResultHeader()
	for _, r := range results {
		printResult(r)
	}

	fmt.Println()
	fmt.Printf("Attempts: %d  Wins: %d", summary.Attempts, summary.Wins)
	if summary.Wins > 0 {
		fmt.Printf("  Best: %d moves", summary.BestMoves)
	}
	fmt.Println()
	return nil
}
