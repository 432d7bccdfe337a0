// ABOUTME: CLI commands for the global wellness goals.
// ABOUTME: Show targets with weekly progress, and update them in place.
package main

import (
	"fmt"

	"github.com/avakker/carelog/internal/insights"
	"github.com/avakker/carelog/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	goalsWeeklySteps   int
	goalsDailyCalories int
	goalsPerson        string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show wellness goals and weekly progress",
	Long: `Show the global goal targets and the active person's progress
against the weekly step target.

Goals are global: there are no per-person targets, and updating them
keeps no history of the previous values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := repo.Goals()
		if err != nil {
			return fmt.Errorf("failed to read goals: %w", err)
		}

		fmt.Printf("Weekly steps target:   %d\n", goals.WeeklyStepsTarget)
		fmt.Printf("Daily calories target: %d\n", goals.DailyCaloriesTarget)

		person := activePerson(goalsPerson)
		metrics, err := repo.ListMetrics(person)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}
		if len(metrics) == 0 {
			fmt.Printf("\nNo metrics yet for %s; add some to see progress.\n", person)
			return nil
		}

		weekly := insights.WeeklySteps(metrics)
		progress := insights.GoalProgress(weekly, goals.WeeklyStepsTarget)
		fmt.Printf("\nSteps this week for %s: %d / %d (%.0f%%)\n",
			person, weekly, goals.WeeklyStepsTarget, progress*100)
		return nil
	},
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the goal targets",
	Long: `Update the global goal targets.

Examples:
  carelog goals set --weekly-steps 20000 --daily-calories 1800`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := repo.Goals()
		if err != nil {
			return fmt.Errorf("failed to read goals: %w", err)
		}

		if cmd.Flags().Changed("weekly-steps") {
			goals.WeeklyStepsTarget = goalsWeeklySteps
		}
		if cmd.Flags().Changed("daily-calories") {
			goals.DailyCaloriesTarget = goalsDailyCalories
		}

		if err := repo.SaveGoals(goals); err != nil {
			return fmt.Errorf("failed to save goals: %w", err)
		}

		color.Green("✓ Goals updated")
		fmt.Printf("  weekly steps %d, daily calories %d\n",
			goals.WeeklyStepsTarget, goals.DailyCaloriesTarget)
		return nil
	},
}

func init() {
	goalsSetCmd.Flags().IntVar(&goalsWeeklySteps, "weekly-steps", models.DefaultWeeklyStepsTarget, "weekly steps target")
	goalsSetCmd.Flags().IntVar(&goalsDailyCalories, "daily-calories", models.DefaultDailyCaloriesTarget, "daily calories target")
	goalsCmd.Flags().StringVarP(&goalsPerson, "person", "p", "", "person for progress (default: configured profile)")

	goalsCmd.AddCommand(goalsSetCmd)
	rootCmd.AddCommand(goalsCmd)
}
