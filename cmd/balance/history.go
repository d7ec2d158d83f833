// ABOUTME: CLI command listing daily summaries, most recent first.
// ABOUTME: Every date with a food or exercise entry gets a row.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "List daily summaries, most recent first",
	Long: `List a daily energy-balance summary for every day with at least
one food or exercise entry.

EXAMPLES:

  balance history          # Last 14 tracked days
  balance history -n 60    # Go further back`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := engine.History()
		if err != nil {
			return fmt.Errorf("failed to compute history: %w", err)
		}
		if len(days) == 0 {
			fmt.Println("Nothing logged yet.")
			return nil
		}

		if historyLimit > 0 && len(days) > historyLimit {
			days = days[:historyLimit]
		}

		faint := color.New(color.Faint)
		for _, d := range days {
			fmt.Printf("%s  eaten %6.0f  burned %6.0f  NET %8s  %s\n",
				d.Date, d.CaloriesEaten, d.TotalBurned, formatNet(d.NetCalories),
				faint.Sprintf("%.0fp/%.0fc/%.0ff", d.ProteinG, d.CarbsG, d.FatG))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 14, "max number of days")
	rootCmd.AddCommand(historyCmd)
}
