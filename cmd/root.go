package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lokeshkumar99/ai-competition-scout/internal/api"
	"github.com/lokeshkumar99/ai-competition-scout/internal/config"
	"github.com/lokeshkumar99/ai-competition-scout/internal/store"
	"github.com/lokeshkumar99/ai-competition-scout/internal/tui"
	"github.com/lokeshkumar99/ai-competition-scout/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig      string
	flagCompetitor  string
	flagProductLine string
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Competitive-intelligence briefing dashboard",
	Long:  "scout queries the briefings API for competitor feature updates and renders them as cards or a table in the terminal, with CSV export.",
	RunE:  runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagCompetitor, "competitor", "", `competitor filter ("All" or empty means no filter)`)
	rootCmd.PersistentFlags().StringVar(&flagProductLine, "product-line", "", "product line filter (free text)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	snap, err := store.Open(config.SnapshotPath())
	if err != nil {
		// Non-fatal: the dashboard works without the local snapshot
		fmt.Fprintf(os.Stderr, "[warn] snapshot unavailable: %v\n", err)
		snap = nil
	}
	if snap != nil {
		defer snap.Close()
	}

	return tui.Run(tui.RunOpts{
		Cfg:           cfg,
		Client:        api.New(cfg.BaseURL()),
		Snapshot:      snap,
		Competitor:    flagCompetitor,
		ProductLine:   flagProductLine,
		SearchOnStart: flagCompetitor != "" || flagProductLine != "",
	})
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scout %s (commit: %s, built: %s)\n", version, commit, date)
		if r := update.Check(context.Background(), version); r != nil {
			fmt.Printf("A newer release is available: %s\n", r.LatestVersion)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
