// ABOUTME: CLI command for the overview dashboard.
// ABOUTME: Adherence, 7-day averages, and weekly goal progress for one person.
package main

import (
	"fmt"
	"time"

	"github.com/avakker/carelog/internal/insights"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dashboardPerson string

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show the overview dashboard",
	Long: `Show medication adherence, trailing 7-day activity averages, and
weekly goal progress for one person. Everything is recomputed from the
store on each run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		person := activePerson(dashboardPerson)

		meds, err := repo.ListMedications(person)
		if err != nil {
			return fmt.Errorf("failed to list medications: %w", err)
		}
		metrics, err := repo.ListMetrics(person)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}
		goals, err := repo.Goals()
		if err != nil {
			return fmt.Errorf("failed to read goals: %w", err)
		}

		now := time.Now()
		adh := insights.ComputeAdherence(meds)
		avg := insights.Rolling7Day(metrics, now)
		weekly := insights.WeeklySteps(metrics)
		progress := insights.GoalProgress(weekly, goals.WeeklyStepsTarget)

		bold := color.New(color.Bold)
		bold.Printf("Dashboard - %s\n\n", person)

		fmt.Printf("Medication adherence:  %.1f%% (%d/%d)\n", adh.Percent, adh.Taken, adh.Total)
		fmt.Printf("Avg daily steps (7d):  %.0f\n", avg.Steps)
		fmt.Printf("Avg daily cals (7d):   %.0f\n", avg.Calories)
		fmt.Printf("Steps this week:       %d / %d (%.0f%%)\n",
			weekly, goals.WeeklyStepsTarget, progress*100)

		if len(metrics) == 0 {
			fmt.Println("\nNo metrics yet for this person.")
		}
		if len(meds) == 0 {
			fmt.Println("No medications recorded yet.")
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardPerson, "person", "p", "", "person (default: configured profile)")
	rootCmd.AddCommand(dashboardCmd)
}
