// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles global flags and command initialization
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intervals-mcp",
	Short: "MCP server for the Intervals.icu API",
	Long: `intervals-mcp exposes Intervals.icu training data (activities, intervals,
wellness, calendar events) as Model Context Protocol tools for AI assistants.

Run 'intervals-mcp serve' to start the server over stdio, HTTP, or SSE.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags can go here
}

// newLogger builds the process logger from LOG_LEVEL. Unknown levels
// fall back to info rather than failing startup.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "intervals-mcp",
	})
	if level == "" {
		return logger
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		return logger
	}
	logger.SetLevel(parsed)
	return logger
}
