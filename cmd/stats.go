package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lokeshkumar99/ai-competition-scout/internal/api"
	"github.com/lokeshkumar99/ai-competition-scout/internal/config"
	"github.com/lokeshkumar99/ai-competition-scout/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show local snapshot statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.SnapshotPath()
		snap, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening snapshot: %w", err)
		}
		defer snap.Close()

		count, size, err := snap.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("Snapshot: %s\n", dbPath)
		fmt.Printf("Briefings: %d\n", count)
		fmt.Printf("Size: %s\n", formatBytes(size))

		if last, ok := snap.Last(); ok {
			competitor := last.Competitor
			if competitor == "" {
				competitor = api.AllCompetitors
			}
			productLine := last.ProductLine
			if productLine == "" {
				productLine = "(any)"
			}
			fmt.Printf("Last search: competitor=%s product_line=%s at %s\n",
				competitor, productLine, last.FetchedAt.Local().Format(time.RFC1123))
		}
		return nil
	},
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
