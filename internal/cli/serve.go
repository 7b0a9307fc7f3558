// ABOUTME: Serve subcommand for running the Intervals.icu MCP server
// ABOUTME: Loads config, builds the client, and runs the chosen transport
package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvilanova/intervals-mcp/internal/config"
	"github.com/mvilanova/intervals-mcp/internal/icu"
	"github.com/mvilanova/intervals-mcp/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Intervals.icu MCP server",
	Long: `Start the Model Context Protocol server.

The transport is selected with MCP_TRANSPORT (stdio, http, or sse).
Networked transports require MCP_SERVER_API_KEY; clients must send it
as a bearer token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger := newLogger(cfg.LogLevel)

		client := icu.NewClient(icu.Options{
			BaseURL:   cfg.BaseURL,
			APIKey:    cfg.APIKey,
			AthleteID: cfg.AthleteID,
			Timeout:   cfg.HTTPTimeout,
			Logger:    logger,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server := mcp.NewServer(cfg, client, logger)
		if err := server.Run(ctx); err != nil {
			return fmt.Errorf("server: %w", err)
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
