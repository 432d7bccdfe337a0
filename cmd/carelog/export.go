// ABOUTME: CLI commands for exporting, backing up, and restoring data.
// ABOUTME: CSV table dumps plus JSON/YAML snapshot backup and restore.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	backupOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <table>",
	Short: "Export a table as CSV",
	Long: `Dump a full table as CSV, all columns, no filtering.

TABLES:

  medications   id, person, name, date, time, taken, caregiver_contact
  metrics       id, person, date, steps, calories

The metrics dump round-trips through 'carelog import': re-importing it
appends every row again (imports never deduplicate).

Examples:
  carelog export metrics                  # To stdout
  carelog export medications -o meds.csv  # To file`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"medications", "metrics"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error

		switch args[0] {
		case "medications":
			data, err = repo.ExportMedicationsCSV()
		case "metrics":
			data, err = repo.ExportMetricsCSV()
		default:
			return fmt.Errorf("unknown table: %s (use medications or metrics)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		return writeOrPrint(data, exportOutput)
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup <format>",
	Short: "Export a full snapshot",
	Long: `Export everything in the store as one snapshot document.

FORMATS:

  json   full snapshot (suitable for restore)
  yaml   human-readable snapshot

Examples:
  carelog backup json -o backup.json
  carelog backup yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error

		switch args[0] {
		case "json":
			data, err = repo.ExportJSON()
		case "yaml":
			data, err = repo.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}

		return writeOrPrint(data, backupOutput)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore a JSON snapshot",
	Long: `Restore data from a JSON snapshot produced by 'carelog backup json'.

Medication and metric rows are appended with fresh ids; the goals
singleton is overwritten with the snapshot's targets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := repo.ImportJSON(data); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		color.Green("✓ Restored from %s", args[0])
		return nil
	},
}

func writeOrPrint(data []byte, output string) error {
	if output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	color.Green("✓ Exported to %s", output)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	backupCmd.Flags().StringVarP(&backupOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
