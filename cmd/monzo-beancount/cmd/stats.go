package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarryforge/monzo-beancount/pkg/db"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display generation-run statistics",
	Long: `Display statistics about past generation runs.

Shows:
- Total number of runs
- Total transactions written
- Total rows skipped
- Last run timestamp

Example:
  monzo-beancount stats`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	_, paths, _, err := loadEnvironment()
	if err != nil {
		return err
	}

	conn, err := db.Open(paths.HistoryDBPath())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer conn.Close()

	stats, err := db.NewHistory(conn).Stats()
	if err != nil {
		return err
	}

	fmt.Println("\n=== Generation Statistics ===")
	fmt.Printf("Total runs:         %d\n", stats.TotalRuns)
	fmt.Printf("Total transactions: %d\n", stats.TotalTransactions)
	fmt.Printf("Total skipped rows: %d\n", stats.TotalSkipped)
	if stats.LastRun.Valid {
		fmt.Printf("Last run:           %s\n", stats.LastRun.String)
	} else {
		fmt.Printf("Last run:           (never)\n")
	}
	fmt.Printf("History database:   %s\n", conn.GetPath())
	fmt.Println()

	return nil
}
