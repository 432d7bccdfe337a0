// ABOUTME: CLI command for generating the PDF health report.
// ABOUTME: Assembles goals, adherence, recent metrics, and recommendations.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/avakker/carelog/internal/insights"
	"github.com/avakker/carelog/internal/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	reportPerson string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a PDF health report",
	Long: `Generate a printable PDF report for one person: goal targets,
medication adherence, the last 20 metric records, and the full
recommendation list.

Examples:
  carelog report
  carelog report --person Mom -o mom_report.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		person := activePerson(reportPerson)

		goals, err := repo.Goals()
		if err != nil {
			return fmt.Errorf("failed to read goals: %w", err)
		}
		meds, err := repo.ListMedications(person)
		if err != nil {
			return fmt.Errorf("failed to list medications: %w", err)
		}
		metrics, err := repo.ListMetrics(person)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}

		now := time.Now()
		adh := insights.ComputeAdherence(meds)
		recs := insights.Recommendations(person, metrics, meds, goals, now)

		pdfBytes, err := report.Build(person, goals, adh, metrics, recs, now)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}

		if err := os.WriteFile(reportOutput, pdfBytes, 0600); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		color.Green("✓ Wrote report for %s to %s", person, reportOutput)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportPerson, "person", "p", "", "person (default: configured profile)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "health_report.pdf", "output file")
	rootCmd.AddCommand(reportCmd)
}
