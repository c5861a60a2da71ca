package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/lokeshkumar99/ai-competition-scout/internal/api"
	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
	"github.com/lokeshkumar99/ai-competition-scout/internal/config"
	"github.com/lokeshkumar99/ai-competition-scout/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one search and print the results",
	Long:  "Query the briefings API with the given filters and print the result set as a table, newest first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client := api.New(cfg.BaseURL())
		briefings, err := client.Search(context.Background(), flagCompetitor, flagProductLine)
		if err != nil {
			return err
		}

		// Keep the local snapshot in sync so export --offline and stats
		// see the latest result set.
		if snap, err := store.Open(config.SnapshotPath()); err == nil {
			snap.Replace(briefings, store.LastSearch{
				Competitor:  flagCompetitor,
				ProductLine: flagProductLine,
				FetchedAt:   time.Now(),
			})
			snap.Close()
		}

		if len(briefings) == 0 {
			fmt.Println("No briefings found" + filterSuffix(flagCompetitor, flagProductLine) + ".")
			return nil
		}

		fmt.Printf("%d briefing(s)%s · most recent: %s\n\n", len(briefings), filterSuffix(flagCompetitor, flagProductLine), briefing.FreshnessLabel(briefings))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COMPETITOR\tPRODUCT LINE\tFEATURE/UPDATE\tPROCESSED AT")
		for _, b := range briefings {
			d := b.Display()
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Competitor, d.ProductLine, d.FeatureUpdate, d.ProcessedAt)
		}
		return w.Flush()
	},
}

// filterSuffix describes active filters for one-shot command output.
func filterSuffix(competitor, productLine string) string {
	var parts []string
	if competitor != "" && competitor != api.AllCompetitors {
		parts = append(parts, "competitor "+competitor)
	}
	if productLine != "" {
		parts = append(parts, "product line "+productLine)
	}
	if len(parts) == 0 {
		return ""
	}
	return " for " + strings.Join(parts, ", ")
}
