// ABOUTME: CLI commands for the family profile registry.
// ABOUTME: Explicit person records; Self always exists.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Manage family profiles",
}

var personAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a family member profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.CreatePerson(args[0]); err != nil {
			return fmt.Errorf("failed to add person: %w", err)
		}
		color.Green("✓ Added profile for %s", args[0])
		return nil
	},
}

var personListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all known profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		people, err := repo.ListPeople()
		if err != nil {
			return fmt.Errorf("failed to list people: %w", err)
		}
		for _, name := range people {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	personCmd.AddCommand(personAddCmd)
	personCmd.AddCommand(personListCmd)
	rootCmd.AddCommand(personCmd)
}
