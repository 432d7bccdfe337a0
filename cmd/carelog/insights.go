// ABOUTME: CLI command for rule-based health recommendations.
// ABOUTME: Prints the ordered advice list for one person.
package main

import (
	"fmt"
	"time"

	"github.com/avakker/carelog/internal/insights"
	"github.com/spf13/cobra"
)

var insightsPerson string

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show rule-based health recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		person := activePerson(insightsPerson)

		metrics, err := repo.ListMetrics(person)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}
		meds, err := repo.ListMedications(person)
		if err != nil {
			return fmt.Errorf("failed to list medications: %w", err)
		}
		goals, err := repo.Goals()
		if err != nil {
			return fmt.Errorf("failed to read goals: %w", err)
		}

		recs := insights.Recommendations(person, metrics, meds, goals, time.Now())
		for _, r := range recs {
			fmt.Println("• " + r)
		}
		return nil
	},
}

func init() {
	insightsCmd.Flags().StringVarP(&insightsPerson, "person", "p", "", "person (default: configured profile)")
	rootCmd.AddCommand(insightsCmd)
}
