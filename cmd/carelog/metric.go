// ABOUTME: CLI commands for daily health metrics.
// ABOUTME: Manual entry and scoped listing of step/calorie records.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avakker/carelog/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	metricDate   string
	metricPerson string
)

var metricCmd = &cobra.Command{
	Use:     "metric",
	Aliases: []string{"metrics"},
	Short:   "Manage daily health metrics",
}

var metricAddCmd = &cobra.Command{
	Use:   "add <steps> <calories>",
	Short: "Record steps and calories for a day",
	Long: `Record a day's step and calorie counts.

Several records for the same date are allowed; aggregation sums and
averages over all of them.

Examples:
  carelog metric add 7500 2100
  carelog metric add 4200 1800 --date 2025-03-01 --person Mom`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid steps: %s", args[0])
		}
		calories, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[1])
		}

		date := metricDate
		if date == "" {
			date = time.Now().Format(models.DateLayout)
		}

		m := models.NewMetric(activePerson(metricPerson), date, steps, calories)
		if err := repo.CreateMetric(m); err != nil {
			return fmt.Errorf("failed to add metric: %w", err)
		}

		color.Green("✓ Saved metrics for %s on %s", m.Person, m.Date)
		fmt.Printf("  id %d: %d steps, %d calories\n", m.ID, m.Steps, m.Calories)
		return nil
	},
}

var metricListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List metric records",
	RunE: func(cmd *cobra.Command, args []string) error {
		person := activePerson(metricPerson)
		if all, _ := cmd.Flags().GetBool("all"); all {
			person = ""
		}

		metrics, err := repo.ListMetrics(person)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}
		if len(metrics) == 0 {
			fmt.Println("No metrics found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range metrics {
			fmt.Printf("%s %s  %-10s steps=%-7d calories=%d\n",
				faint.Sprintf("%4d", m.ID),
				m.Date, m.Person, m.Steps, m.Calories)
		}
		return nil
	},
}

func init() {
	metricAddCmd.Flags().StringVar(&metricDate, "date", "", "date (YYYY-MM-DD, default: today)")
	metricCmd.PersistentFlags().StringVarP(&metricPerson, "person", "p", "", "person (default: configured profile)")
	metricListCmd.Flags().Bool("all", false, "list every profile's metrics")

	metricCmd.AddCommand(metricAddCmd)
	metricCmd.AddCommand(metricListCmd)
	rootCmd.AddCommand(metricCmd)
}
