// ABOUTME: CLI commands for managing user profiles sharing one database.
// ABOUTME: Covers add, list, switch, and cascade delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long: `Manage the users sharing this database.

Each user's food, exercise, weight, and profile records live in an
isolated namespace. The built-in "default" user always exists and
cannot be deleted.

EXAMPLES:

  balance user add "Alex"        # Create a user
  balance user list              # Show all users (* marks active)
  balance user switch 3f2a...    # Make a user active
  balance user delete 3f2a...    # Delete a user and ALL their data`,
}

var userAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := users.Create(args[0])
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		color.Green("✓ Created user %s", user.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(user.ID))
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := users.List()
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		activeID, err := users.ActiveID()
		if err != nil {
			return fmt.Errorf("failed to resolve active user: %w", err)
		}

		faint := color.New(color.Faint)
		for _, u := range all {
			marker := " "
			if u.ID == activeID {
				marker = color.GreenString("*")
			}
			fmt.Printf("%s %s %s\n", marker, faint.Sprint(u.ID), u.Name)
		}
		return nil
	},
}

var userSwitchCmd = &cobra.Command{
	Use:   "switch <id>",
	Short: "Switch the active user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := users.SetActive(args[0]); err != nil {
			return fmt.Errorf("failed to switch user: %w", err)
		}

		color.Green("✓ Switched to user %s", args[0])
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user and all their data",
	Long: `Delete a user and every record in their namespace.

This is irreversible. The built-in "default" user cannot be deleted.
If the deleted user was active, the active user resets to "default".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := users.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		color.Green("✓ Deleted user %s and all their data", args[0])
		return nil
	},
}

func init() {
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userSwitchCmd)
	userCmd.AddCommand(userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}
