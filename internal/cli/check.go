// ABOUTME: Check subcommand verifying config and Intervals.icu access
// ABOUTME: Loads config and probes the activities endpoint with the key
package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mvilanova/intervals-mcp/internal/config"
	"github.com/mvilanova/intervals-mcp/internal/icu"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration and API connectivity",
	Long: `Load the configuration, then make a single authenticated request to
Intervals.icu to confirm the API key and athlete ID work.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := config.Load()
		if err != nil {
			color.New(color.FgRed).Fprintf(out, "✗ config: %v\n", err)
			return fmt.Errorf("configuration invalid")
		}
		color.New(color.FgGreen).Fprintln(out, "✓ config loaded")
		fmt.Fprintf(out, "  athlete:   %s\n", cfg.AthleteID)
		fmt.Fprintf(out, "  base URL:  %s\n", cfg.BaseURL)
		fmt.Fprintf(out, "  transport: %s\n", cfg.Transport)

		client := icu.NewClient(icu.Options{
			BaseURL:   cfg.BaseURL,
			APIKey:    cfg.APIKey,
			AthleteID: cfg.AthleteID,
			Timeout:   cfg.HTTPTimeout,
			Logger:    newLogger(cfg.LogLevel),
		})

		today := time.Now().Format("2006-01-02")
		weekAgo := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
		activities, err := client.Activities(cmd.Context(), cfg.AthleteID, icu.ActivityFilter{
			Oldest: weekAgo,
			Newest: today,
			Limit:  1,
		})
		if err != nil {
			color.New(color.FgRed).Fprintf(out, "✗ API: %v\n", err)
			return fmt.Errorf("API check failed")
		}
		color.New(color.FgGreen).Fprintf(out, "✓ API reachable (%d activities in the last week)\n", len(activities))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
