package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rounds",
	Long: `Display the most recent rounds from the round journal, newest first,
followed by win and loss totals.

Examples:
  breakout history
  breakout history --limit 50`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.RecentRounds(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	fmt.Println("Recent Rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' to record the first one!")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-7s  %-7s  %-14s  %s\n", "Date", "Result", "Bricks", "Ticks", "Source", "State")
	fmt.Printf("  %-16s  %-6s  %-7s  %-7s  %-14s  %s\n", "----", "------", "------", "-----", "------", "-----")

	for _, r := range rounds {
		fmt.Printf("  %-16s  %-6s  %-7s  %-7d  %-14s  %016x\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Outcome,
			fmt.Sprintf("%d/%d", r.Score, r.Total),
			r.Ticks,
			r.Source,
			r.StateHash,
		)
	}

	stats, err := store.RoundStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("Rounds: %d  Won: %d  Lost: %d  Bricks destroyed: %d\n",
		stats.Rounds, stats.Wins, stats.Losses, stats.Destroyed)
}
