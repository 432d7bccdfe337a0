// ABOUTME: Root Cobra command for carelog CLI.
// ABOUTME: Handles config loading and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"strings"

	"github.com/avakker/carelog/internal/config"
	"github.com/avakker/carelog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository

	flagDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "carelog",
	Short: "Family health and medication tracker",
	Long: `Carelog tracks medications, daily activity metrics, and wellness goals
for you and your family members, in a local SQLite database.

WHAT IT TRACKS:

  Medications    scheduled doses per person, with a taken flag
  Metrics        daily steps and calories per person
  Goals          one global weekly-steps and daily-calories target

QUICK START:

  $ carelog med add Aspirin --time 08:30        # Schedule a dose for Self
  $ carelog med taken 1                         # Mark dose 1 as taken
  $ carelog metric add 7500 2100                # Log today's steps/calories
  $ carelog dashboard                           # Adherence + 7-day averages
  $ carelog insights                            # Rule-based advice
  $ carelog report -o health_report.pdf         # Printable PDF report

FAMILY PROFILES:

  Every record belongs to a person; the default profile is "Self".

  $ carelog person add Mom
  $ carelog metric add 4200 1800 --person Mom
  $ carelog dashboard --person Mom

IMPORT / EXPORT:

  $ carelog import fitness.csv                  # Also .json and .xml
  $ carelog export metrics -o metrics.csv       # Full-table CSV dump
  $ carelog backup json -o backup.json          # Snapshot of everything

MCP INTEGRATION:

  Run 'carelog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "carelog": { "command": "carelog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in a SQLite file at ~/.local/share/carelog/carelog.db
  (override with --db or the data_dir config setting).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the store
		switch cmd.Name() {
		case "version", "help", "completion", "__complete":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if flagDBPath != "" {
			repo, err = storage.Open(flagDBPath)
		} else {
			repo, err = cfg.OpenStorage()
		}
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// activePerson resolves the person a command operates on: the --person
// flag when given, otherwise the configured default profile.
func activePerson(flag string) string {
	if strings.TrimSpace(flag) != "" {
		return strings.TrimSpace(flag)
	}
	if cfg != nil {
		return cfg.GetDefaultPerson()
	}
	return "Self"
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "database file (default: XDG data dir)")
}
