// ABOUTME: CLI command pairing actual logged weights with the estimated trend.
// ABOUTME: The estimate is a model from cumulative NET, shown as an estimate.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the weight trend: logged weights and the NET-based estimate",
	Long: `Show the weight trend.

Actual logged weights are printed alongside an estimated trend line
derived from cumulative NET calories (3500 kcal per pound). The
estimate anchors at your first logged weight; it is a model, not a
measurement.

EXAMPLES:

  balance trend`,
	RunE: func(cmd *cobra.Command, args []string) error {
		trend, err := engine.WeightProjection()
		if err != nil {
			return fmt.Errorf("failed to compute weight trend: %w", err)
		}
		if len(trend.Actual) == 0 {
			fmt.Println("No weights logged yet. Log one with: balance weight add <kg>")
			return nil
		}

		actualByDate := make(map[string]float64, len(trend.Actual))
		for _, w := range trend.Actual {
			actualByDate[w.Date] = w.WeightKg
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  (anchored at %.1f kg on %s)\n",
			color.New(color.Bold).Sprint("Weight trend"),
			trend.Actual[0].WeightKg, trend.Actual[0].Date)
		for _, p := range trend.Estimated {
			actual := "      -"
			if kg, ok := actualByDate[p.Date]; ok {
				actual = fmt.Sprintf("%7.1f", kg)
			}
			fmt.Printf("%s  logged %s kg  %s\n",
				p.Date, actual, faint.Sprintf("est %.1f kg", p.EstimatedKg))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
}
