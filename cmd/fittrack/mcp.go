// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fittrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fittrack": {
        "command": "fittrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  start_session     Start a workout session
  add_exercise      Add an exercise to the active session
  log_set           Update a set (reps, weight, completed, ...)
  finish_session    Commit completed sets to history
  list_exercises    Browse the exercise catalog
  list_history      List recent committed workouts
  get_prs           Personal records per exercise
  weekly_volume     Trailing-7-day volume by muscle group
  add_measurement   Record a body measurement

AVAILABLE RESOURCES:

  fittrack://summary   Weekly volume, recent workouts, latest weight
  fittrack://active    The in-progress session
  fittrack://prs       Personal records`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(appState, gateway)
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
