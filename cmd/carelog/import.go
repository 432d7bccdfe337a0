// ABOUTME: CLI command for importing external metric data.
// ABOUTME: CSV, JSON, and XML files under one strict validation policy.
package main

import (
	"fmt"
	"os"

	"github.com/avakker/carelog/internal/importer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	importFormat string
	importPerson string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import metric data from a file",
	Long: `Import step/calorie rows from an external file into the metrics table.

FORMATS:

  csv    header row with date, steps, calories columns (any order)
  json   top-level array of {date, steps, calories} objects
  xml    repeated <row> elements with <date>, <steps>, <calories> children

The format is inferred from the file extension unless --format is given.
Every row must validate before anything is written: a missing field or a
malformed date anywhere rejects the whole file with zero rows imported.
Rows are always appended; importing the same file twice doubles them.

Examples:
  carelog import fitness.csv
  carelog import watch_export.json --person Mom
  carelog import rows.txt --format xml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		format := importFormat
		if format == "" {
			var err error
			format, err = importer.DetectFormat(filename)
			if err != nil {
				return err
			}
		}

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		rows, err := importer.Parse(format, data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		person := activePerson(importPerson)
		n, err := importer.Import(repo, person, rows)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d metric rows for %s from %s", n, person, filename)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "file format: csv, json, or xml (default: by extension)")
	importCmd.Flags().StringVarP(&importPerson, "person", "p", "", "person to attribute rows to (default: configured profile)")
	rootCmd.AddCommand(importCmd)
}
