package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lokeshkumar99/ai-competition-scout/internal/api"
	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
	"github.com/lokeshkumar99/ai-competition-scout/internal/config"
	"github.com/lokeshkumar99/ai-competition-scout/internal/store"
)

var (
	flagExportOutput  string
	flagExportOffline bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export briefings to a CSV file",
	Long: `Run a search with the given filters and write the results as CSV.

With --offline the last fetched snapshot is exported instead of querying the API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		var briefings []briefing.Briefing
		if flagExportOffline {
			snap, err := store.Open(config.SnapshotPath())
			if err != nil {
				return fmt.Errorf("opening snapshot: %w", err)
			}
			defer snap.Close()
			briefings, err = snap.Load()
			if err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}
		} else {
			client := api.New(cfg.BaseURL())
			briefings, err = client.Search(context.Background(), flagCompetitor, flagProductLine)
			if err != nil {
				return err
			}
			if snap, err := store.Open(config.SnapshotPath()); err == nil {
				snap.Replace(briefings, store.LastSearch{
					Competitor:  flagCompetitor,
					ProductLine: flagProductLine,
					FetchedAt:   time.Now(),
				})
				snap.Close()
			}
		}

		// Warn and write nothing when there is no data to export.
		if len(briefings) == 0 {
			return briefing.ErrNoBriefings
		}

		out := flagExportOutput
		if out == "" {
			out = cfg.ExportFilename()
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()

		if err := briefing.WriteCSV(f, briefings); err != nil {
			return err
		}

		fmt.Printf("Exported %d briefing(s) to %s\n", len(briefings), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "output file (default from config)")
	exportCmd.Flags().BoolVar(&flagExportOffline, "offline", false, "export the last fetched snapshot instead of searching")
}
