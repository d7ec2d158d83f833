// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/balance/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log food and exercise and read
your energy balance through a standardized protocol. The server
communicates via stdin/stdout and operates on the active user.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "balance": {
        "command": "balance",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_food        Log a food entry with calories and macros
  log_exercise    Log an exercise session
  log_weight      Log a body-weight measurement
  daily_summary   Energy balance for a day
  weekly_stats    Trailing 7-day averages
  delete_entry    Delete a food, exercise, or weight entry

AVAILABLE RESOURCES:

  balance://today     Today's energy balance
  balance://recent    Recent daily summaries
  balance://trend     Weight trend with NET-based estimate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
