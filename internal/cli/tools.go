// ABOUTME: Tools subcommand listing the registered MCP tool surface
// ABOUTME: Prints names and descriptions without starting a server
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mvilanova/intervals-mcp/internal/mcp"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		bold := color.New(color.Bold)
		for _, name := range mcp.ToolNames {
			bold.Fprintln(cmd.OutOrStdout(), name)
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", mcp.ToolDescriptions[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
