// ABOUTME: CLI commands for medication management.
// ABOUTME: Add, mark taken, bulk reset, and list scheduled doses.
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
	medDate      string
	medTime      string
	medPerson    string
	medCaregiver string
)

var medCmd = &cobra.Command{
	Use:     "med",
	Aliases: []string{"medication"},
	Short:   "Manage medications",
}

var medAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Schedule a medication dose",
	Long: `Schedule a medication dose for a person.

Examples:
  carelog med add Aspirin --time 08:30
  carelog med add Vitamin --date 2025-03-01 --time 20:00 --person Mom
  carelog med add Insulin --time 07:00 --caregiver nurse@example.org

The caregiver contact is stored for reference only; carelog never sends
anything to it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := medDate
		if date == "" {
			date = time.Now().Format(models.DateLayout)
		}

		m := models.NewMedication(activePerson(medPerson), args[0], date, medTime).
			WithCaregiver(medCaregiver)
		if err := repo.CreateMedication(m); err != nil {
			return fmt.Errorf("failed to add medication: %w", err)
		}

		color.Green("✓ Added %s for %s at %s on %s", m.Name, m.Person, m.Time, m.Date)
		fmt.Printf("  id %d\n", m.ID)
		return nil
	},
}

var medTakenCmd = &cobra.Command{
	Use:   "taken <id>",
	Short: "Mark a medication as taken",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		updated, err := repo.MarkMedicationTaken(id)
		if err != nil {
			return fmt.Errorf("failed to mark taken: %w", err)
		}
		if !updated {
			color.Yellow("No medication with id %d; nothing changed.", id)
			return nil
		}

		color.Green("✓ Marked medication %d as taken", id)
		return nil
	},
}

var medResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all taken flags for a person",
	RunE: func(cmd *cobra.Command, args []string) error {
		person := activePerson(medPerson)
		n, err := repo.ResetTaken(person)
		if err != nil {
			return fmt.Errorf("failed to reset taken flags: %w", err)
		}

		color.Green("✓ Reset %d medications to not taken for %s", n, person)
		return nil
	},
}

var medListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List medications",
	Long: `List scheduled medications ordered by date and time.

Use --person to scope to one profile, or --all for every profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		person := activePerson(medPerson)
		if all, _ := cmd.Flags().GetBool("all"); all {
			person = ""
		}

		meds, err := repo.ListMedications(person)
		if err != nil {
			return fmt.Errorf("failed to list medications: %w", err)
		}
		if len(meds) == 0 {
			fmt.Println("No medications found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range meds {
			status := "pending"
			if m.Taken {
				status = "taken"
			}
			caregiver := ""
			if m.CaregiverContact != nil {
				caregiver = faint.Sprintf(" (caregiver: %s)", *m.CaregiverContact)
			}
			fmt.Printf("%s %s %s  %-20s %-10s %s%s\n",
				faint.Sprintf("%4d", m.ID),
				m.Date, m.Time, m.Name, m.Person, status, caregiver)
		}
		return nil
	},
}

func init() {
	medAddCmd.Flags().StringVar(&medDate, "date", "", "scheduled date (YYYY-MM-DD, default: today)")
	medAddCmd.Flags().StringVar(&medTime, "time", "08:00", "scheduled time (HH:MM)")
	medAddCmd.Flags().StringVar(&medCaregiver, "caregiver", "", "caregiver contact (stored for reference)")
	medCmd.PersistentFlags().StringVarP(&medPerson, "person", "p", "", "person (default: configured profile)")
	medListCmd.Flags().Bool("all", false, "list every profile's medications")

	medCmd.AddCommand(medAddCmd)
	medCmd.AddCommand(medTakenCmd)
	medCmd.AddCommand(medResetCmd)
	medCmd.AddCommand(medListCmd)
	rootCmd.AddCommand(medCmd)
}
