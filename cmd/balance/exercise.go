// ABOUTME: CLI commands for logging exercise sessions.
// ABOUTME: Strength sessions take sets/reps/weight; cardio takes a duration.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseSets     int
	exerciseReps     int
	exerciseWeight   float64
	exerciseDuration int
	exerciseDate     string
	exerciseLimit    int
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log and manage exercise entries",
	Long: `Log exercise sessions with calories burned.

Exercise calories are added to your resting burn per day; they are
never folded into the activity multiplier, so rest days are not
penalized.

EXAMPLES:

  balance exercise add "run" 300 --duration 30
  balance exercise add "squats" 180 --sets 5 --reps 5 --weight 100
  balance exercise list
  balance exercise delete 1756712345678`,
}

var exerciseAddCmd = &cobra.Command{
	Use:     "add <name> <calories-burned>",
	Aliases: []string{"a"},
	Short:   "Log an exercise session",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		burned, err := strconv.ParseFloat(args[1], 64)
		if err != nil || burned < 0 {
			return fmt.Errorf("invalid calories burned: %s", args[1])
		}

		entry := models.NewExerciseEntry(args[0], burned)
		if exerciseDuration > 0 {
			entry.WithDuration(exerciseDuration)
		}
		if exerciseSets > 0 {
			entry.WithStrength(exerciseSets, exerciseReps, exerciseWeight)
		}
		if exerciseDate != "" {
			ts, err := timestampForDate(exerciseDate)
			if err != nil {
				return err
			}
			entry.WithTimestamp(ts)
		}

		if err := store.AddExercise(entry); err != nil {
			return fmt.Errorf("failed to log exercise: %w", err)
		}

		color.Green("✓ Logged %s", entry.Name)
		fmt.Printf("  %s %.0f kcal burned on %s\n",
			color.New(color.Faint).Sprint(entry.Timestamp),
			entry.CaloriesBurned, entry.Date)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent exercise entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.ListExercise()
		if err != nil {
			return fmt.Errorf("failed to list exercise: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No exercise logged yet.")
			return nil
		}

		if exerciseLimit > 0 && len(entries) > exerciseLimit {
			entries = entries[len(entries)-exerciseLimit:]
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			detail := ""
			if e.Sets > 0 {
				detail = faint.Sprintf(" %dx%d @ %.0fkg", e.Sets, e.Reps, e.Weight)
			} else if e.DurationMinutes > 0 {
				detail = faint.Sprintf(" %d min", e.DurationMinutes)
			}
			fmt.Printf("%s %s %-24s %6.0f kcal%s\n",
				faint.Sprint(e.Timestamp), e.Date, e.Name, e.CaloriesBurned, detail)
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <timestamp>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise entry by timestamp id",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp: %s", args[0])
		}
		if err := store.DeleteExerciseByTimestamp(ts); err != nil {
			return fmt.Errorf("failed to delete exercise entry: %w", err)
		}

		color.Green("✓ Deleted exercise entry %d (if it existed)", ts)
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().IntVar(&exerciseSets, "sets", 0, "sets (strength training)")
	exerciseAddCmd.Flags().IntVar(&exerciseReps, "reps", 0, "reps (strength training)")
	exerciseAddCmd.Flags().Float64Var(&exerciseWeight, "weight", 0, "weight in kg (strength training)")
	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "duration in minutes (cardio)")
	exerciseAddCmd.Flags().StringVar(&exerciseDate, "date", "", "log date (YYYY-MM-DD, default today)")

	exerciseListCmd.Flags().IntVarP(&exerciseLimit, "limit", "n", 20, "max number of results")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
