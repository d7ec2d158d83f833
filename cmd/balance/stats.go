// ABOUTME: CLI command for windowed statistics over the energy-balance history.
// ABOUTME: Weekly/monthly averages count tracked days only; rolling trend smooths NET.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/summary"
	"github.com/spf13/cobra"
)

var (
	statsMonthly bool
	statsRolling int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show averaged statistics over a trailing window",
	Long: `Show averaged daily statistics over a trailing window.

Only days with at least one food entry are counted. A day with
nothing logged is untracked, not a zero, so sparse logging does not
drag the averages down.

EXAMPLES:

  balance stats              # Trailing 7 days
  balance stats --monthly    # Trailing 30 days
  balance stats --rolling 7  # Per-day rolling NET trend`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if statsRolling > 0 {
			return printRollingTrend(statsRolling)
		}

		var avg *summary.WindowAverage
		var err error
		label := "Last 7 days"
		if statsMonthly {
			avg, err = engine.MonthlyAverage()
			label = "Last 30 days"
		} else {
			avg, err = engine.WeeklyAverage()
		}
		if err != nil {
			return fmt.Errorf("failed to compute averages: %w", err)
		}

		fmt.Printf("%s  %s\n", color.New(color.Bold).Sprint(label),
			color.New(color.Faint).Sprintf("(%s to %s)", avg.FromDate, avg.ToDate))
		if avg.TrackedDays == 0 {
			fmt.Println("No tracked days in this window.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("  %s %d of %d days\n", faint.Sprint("tracked "), avg.TrackedDays, windowSize(statsMonthly))
		fmt.Printf("  %s %8.0f kcal/day\n", faint.Sprint("eaten   "), avg.AvgCaloriesEaten)
		fmt.Printf("  %s %8.0f kcal/day\n", faint.Sprint("exercise"), avg.AvgExerciseBurned)
		fmt.Printf("  %s %8s kcal/day\n", faint.Sprint("NET     "), formatNet(avg.AvgNetCalories))
		fmt.Printf("  %s %.0fg protein / %.0fg carbs / %.0fg fat\n",
			faint.Sprint("macros  "), avg.AvgProteinG, avg.AvgCarbsG, avg.AvgFatG)
		return nil
	},
}

func windowSize(monthly bool) int {
	if monthly {
		return 30
	}
	return 7
}

func printRollingTrend(windowDays int) error {
	points, err := engine.RollingAverage(windowDays)
	if err != nil {
		return fmt.Errorf("failed to compute rolling trend: %w", err)
	}
	if len(points) == 0 {
		fmt.Println("Nothing logged yet.")
		return nil
	}

	faint := color.New(color.Faint)
	for _, p := range points {
		fmt.Printf("%s  NET %8s  %s\n",
			p.Date, formatNet(p.NetCalories),
			faint.Sprintf("%d-day avg %.0f", windowDays, p.RollingNet))
	}
	return nil
}

func init() {
	statsCmd.Flags().BoolVar(&statsMonthly, "monthly", false, "average over the trailing 30 days")
	statsCmd.Flags().IntVar(&statsRolling, "rolling", 0, "show a per-day rolling NET trend over this many tracked days")
	rootCmd.AddCommand(statsCmd)
}
