// ABOUTME: CLI command showing today's (or any date's) energy-balance summary.
// ABOUTME: NET is colored by sign: green deficit, red surplus.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/summary"
	"github.com/spf13/cobra"
)

var todayDateFlag string

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show the daily energy-balance summary",
	Long: `Show the derived energy balance for a day.

  NET = calories eaten - (resting burn + exercise burn)

Negative NET is a deficit, positive a surplus, zero maintenance.

EXAMPLES:

  balance today                    # Today's summary
  balance today --date 2026-08-30  # A specific day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var sum *summary.DailySummary
		var err error
		if todayDateFlag == "" {
			sum, err = engine.Today()
		} else {
			if _, perr := time.Parse(models.DateLayout, todayDateFlag); perr != nil {
				return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", todayDateFlag)
			}
			sum, err = engine.DailySummary(todayDateFlag)
		}
		if err != nil {
			return fmt.Errorf("failed to compute summary: %w", err)
		}

		printDailySummary(sum)
		return nil
	},
}

func printDailySummary(s *summary.DailySummary) {
	faint := color.New(color.Faint)
	fmt.Printf("%s\n", color.New(color.Bold).Sprint(s.Date))
	fmt.Printf("  %s %8.0f kcal  (%d entries)\n", faint.Sprint("eaten   "), s.CaloriesEaten, s.FoodCount)
	fmt.Printf("  %s %8.0f kcal  (resting %.0f + exercise %.0f)\n",
		faint.Sprint("burned  "), s.TotalBurned, s.RestingBurned, s.ExerciseBurned)
	fmt.Printf("  %s %8s kcal\n", faint.Sprint("NET     "), formatNet(s.NetCalories))
	fmt.Printf("  %s %.0fg protein / %.0fg carbs / %.0fg fat\n",
		faint.Sprint("macros  "), s.ProteinG, s.CarbsG, s.FatG)
}

func init() {
	todayCmd.Flags().StringVar(&todayDateFlag, "date", "", "date to summarize (YYYY-MM-DD)")
	rootCmd.AddCommand(todayCmd)
}
