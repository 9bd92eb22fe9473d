package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prince-of-oliver/internal/levels"
	"github.com/vovakirdan/prince-of-oliver/internal/registry"
	"github.com/vovakirdan/prince-of-oliver/internal/storage"
)

var (
	flagRunsLimit int
	flagRecent    bool
	flagClear     bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show best runs for a level",
	Long: `Display the fastest clears of a level with its play statistics.
Without an argument the keep is shown.

Examples:
  oliver runs
  oliver runs tower --limit 20
  oliver runs --recent
  oliver runs tower --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs of every level instead")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs of the level")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	levelID := levels.DefaultLevelID
	if len(args) == 1 {
		levelID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagRecent {
		return printRecent(store)
	}

	// Runs of levels whose file was removed are still shown under their ID.
	title := levelID
	if lvl, err := registry.Create(levelID); err == nil {
		title = lvl.Name
	}

	if flagClear {
		if err := store.ClearRuns(levelID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Printf("Cleared all runs of %s.\n", title)
		return nil
	}

	runs, err := store.BestRuns(levelID, flagRunsLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'oliver play %s' to set the first time!\n", levelID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-9s  %-6s  %s\n", "Rank", "Player", "Time", "Deaths", "Date")
	fmt.Printf("  %-4s  %-12s  %-9s  %-6s  %s\n", "----", "------", "----", "------", "----")

	// Print runs
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-9s  %-6d  %s\n", i+1, r.Player, fmt.Sprintf("%.2fs", r.Duration), r.Deaths, dateStr)
	}

	// Show totals
	fmt.Println()
	if st, err := store.Stats(levelID); err == nil {
		fmt.Printf("Runs: %d  Clears: %d  Deaths: %d  Best: %.2fs\n", st.Runs, st.Clears, st.Deaths, st.BestTime)
	}
	return nil
}

func printRecent(store *storage.Store) error {
	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Println("Recent Runs")
	fmt.Println()
	fmt.Printf("  %-12s  %-12s  %-6s  %-9s  %-6s  %s\n", "Level", "Player", "Result", "Time", "Deaths", "Date")
	fmt.Printf("  %-12s  %-12s  %-6s  %-9s  %-6s  %s\n", "-----", "------", "------", "----", "------", "----")
	for _, r := range runs {
		result := "quit"
		if r.Won {
			result = "clear"
		}
		fmt.Printf("  %-12s  %-12s  %-6s  %-9s  %-6d  %s\n",
			r.LevelID, r.Player, result, fmt.Sprintf("%.2fs", r.Duration), r.Deaths, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
