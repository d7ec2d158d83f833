// ABOUTME: Root Cobra command for balance CLI.
// ABOUTME: Opens the storage gateway and active-user store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/balance/internal/config"
	"github.com/harperreed/balance/internal/repo"
	"github.com/harperreed/balance/internal/storage"
	"github.com/harperreed/balance/internal/summary"
	"github.com/spf13/cobra"
)

var (
	gateway storage.Gateway
	users   *repo.Users
	store   *repo.Store
	engine  *summary.Engine
)

var rootCmd = &cobra.Command{
	Use:     "balance",
	Version: "1.0.0",
	Short:   "Personal energy-balance tracker",
	Long: `Balance is a CLI tool for tracking food, exercise, and body weight,
and deriving your daily energy balance from what you log.

QUICK START:

  $ balance profile set --age 34 --sex male --height 180 --weight 82 \
      --activity moderate --goal fatLoss     # One-time setup
  $ balance food add "oatmeal" 320 --protein 12 --carbs 55 --fat 6
  $ balance exercise add "run" 300 --duration 30
  $ balance today                            # Today's NET calories
  $ balance history                          # Day-by-day summaries
  $ balance stats                            # Trailing 7-day averages
  $ balance trend                            # Weight trend vs estimate

HOW NET WORKS:

  NET = calories eaten - (resting burn + exercise burn)

  Resting burn is your profile's baseline TDEE (Mifflin-St Jeor BMR x
  activity multiplier) and stays constant per day; exercise you log is
  added on top. Negative NET is a deficit, positive is a surplus.

PROFILES:

  Multiple people can share one database. Each user's data lives in an
  isolated namespace.

  $ balance user add "Alex"       # Create a user
  $ balance user switch <id>      # Make them active
  $ balance user delete <id>      # Remove them and all their data

BACKUP:

  $ balance export json -o backup.json
  $ balance import backup.json

DATA STORAGE:

  Records are stored locally (badger by default, sqlite optional) under
  ~/.local/share/balance. Nothing ever leaves your machine.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		gateway, err = cfg.OpenGateway()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		users = repo.NewUsers(gateway)
		if err := users.EnsureDefault(); err != nil {
			return fmt.Errorf("failed to initialize user directory: %w", err)
		}

		activeID, err := users.ActiveID()
		if err != nil {
			return fmt.Errorf("failed to resolve active user: %w", err)
		}

		store = repo.NewStore(gateway, activeID)
		engine = summary.NewEngine(store)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if gateway != nil {
			return gateway.Close()
		}
		return nil
	},
}
