// ABOUTME: CLI commands for logging body-weight measurements.
// ABOUTME: Accepts pounds with --unit lb; conversion happens before storage.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/formula"
	"github.com/harperreed/balance/internal/models"
	"github.com/spf13/cobra"
)

var (
	weightUnit  string
	weightDate  string
	weightLimit int
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and manage weight entries",
	Long: `Log body-weight measurements.

Weights are stored in kilograms regardless of the unit you enter.

EXAMPLES:

  balance weight add 81.4
  balance weight add 179.5 --unit lb
  balance weight add 81.0 --date 2026-08-25
  balance weight list
  balance weight delete 1756712345678`,
}

var weightAddCmd = &cobra.Command{
	Use:     "add <weight>",
	Aliases: []string{"a"},
	Short:   "Log a weight measurement",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil || value <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		weightKg := value
		switch weightUnit {
		case "kg", "":
		case "lb", "lbs":
			if weightKg, err = formula.ToMetric(value, formula.Mass); err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid unit %q (use kg or lb)", weightUnit)
		}

		entry := models.NewWeightEntry(weightKg)
		if weightDate != "" {
			ts, err := timestampForDate(weightDate)
			if err != nil {
				return err
			}
			entry.WithTimestamp(ts)
		}

		if err := store.AddWeight(entry); err != nil {
			return fmt.Errorf("failed to log weight: %w", err)
		}

		color.Green("✓ Logged %.1f kg", entry.WeightKg)
		fmt.Printf("  %s on %s\n",
			color.New(color.Faint).Sprint(entry.Timestamp), entry.Date)
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List weight entries, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.ListWeightsByDate()
		if err != nil {
			return fmt.Errorf("failed to list weights: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No weights logged yet.")
			return nil
		}

		if weightLimit > 0 && len(entries) > weightLimit {
			entries = entries[len(entries)-weightLimit:]
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s %6.1f kg\n",
				faint.Sprint(e.Timestamp), e.Date, e.WeightKg)
		}
		return nil
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:     "delete <timestamp>",
	Aliases: []string{"rm"},
	Short:   "Delete a weight entry by timestamp id",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp: %s", args[0])
		}
		if err := store.DeleteWeightByTimestamp(ts); err != nil {
			return fmt.Errorf("failed to delete weight entry: %w", err)
		}

		color.Green("✓ Deleted weight entry %d (if it existed)", ts)
		return nil
	},
}

func init() {
	weightAddCmd.Flags().StringVar(&weightUnit, "unit", "kg", "unit: kg or lb")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "log date (YYYY-MM-DD, default today)")

	weightListCmd.Flags().IntVarP(&weightLimit, "limit", "n", 20, "max number of results")

	weightCmd.AddCommand(weightAddCmd)
	weightCmd.AddCommand(weightListCmd)
	weightCmd.AddCommand(weightDeleteCmd)
	rootCmd.AddCommand(weightCmd)
}
