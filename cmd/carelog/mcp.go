// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the carelog store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/avakker/carelog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "carelog": {
        "command": "carelog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_medication       Schedule a medication dose
  mark_taken           Mark a medication as taken
  reset_taken          Reset a person's taken flags
  list_medications     List medications
  add_metric           Record daily steps and calories
  list_metrics         List metric records
  add_person           Register a family profile
  list_people          List all profiles
  get_goals            Read the goal targets
  set_goals            Update the goal targets
  get_adherence        Medication adherence for a scope
  get_recommendations  Rule-based health advice

AVAILABLE RESOURCES:

  carelog://dashboard  Adherence, averages, and goal progress per person`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
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
