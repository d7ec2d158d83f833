// ABOUTME: CLI commands for logging food and managing saved food templates.
// ABOUTME: Supports quick logging from templates via --from.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/models"
	"github.com/spf13/cobra"
)

var (
	foodProtein float64
	foodCarbs   float64
	foodFat     float64
	foodServing string
	foodDate    string
	foodFrom    string
	foodLimit   int
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and manage food entries",
	Long: `Log food entries with calories and optional macros.

Save foods you eat often as templates, then log them by name.

EXAMPLES:

  balance food add "oatmeal" 320 --protein 12 --carbs 55 --fat 6
  balance food add --from "oatmeal"          # Log a saved template
  balance food add "snack" 150 --date 2026-08-30
  balance food list                          # Recent entries
  balance food delete 1756712345678          # Delete by timestamp id
  balance food save "oatmeal" 320 --protein 12 --carbs 55 --fat 6
  balance food templates                     # List saved templates`,
}

var foodAddCmd = &cobra.Command{
	Use:     "add [name] [calories]",
	Aliases: []string{"a"},
	Short:   "Log a food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		var entry *models.FoodEntry

		if foodFrom != "" {
			template, err := store.FindCustomFood(foodFrom)
			if err != nil {
				return fmt.Errorf("failed to look up template: %w", err)
			}
			if template == nil {
				return fmt.Errorf("no saved food named %q (see 'balance food templates')", foodFrom)
			}
			entry = template.Entry()
		} else {
			if len(args) < 2 {
				return fmt.Errorf("usage: balance food add <name> <calories> (or --from <template>)")
			}
			calories, err := strconv.ParseFloat(args[1], 64)
			if err != nil || calories < 0 {
				return fmt.Errorf("invalid calories: %s", args[1])
			}
			entry = models.NewFoodEntry(args[0], calories).
				WithMacros(foodProtein, foodCarbs, foodFat)
			if foodServing != "" {
				entry.WithServingSize(foodServing)
			}
		}

		if foodDate != "" {
			ts, err := timestampForDate(foodDate)
			if err != nil {
				return err
			}
			entry.WithTimestamp(ts)
		}

		if err := store.AddFood(entry); err != nil {
			return fmt.Errorf("failed to log food: %w", err)
		}

		color.Green("✓ Logged %s", entry.Name)
		fmt.Printf("  %s %.0f kcal on %s\n",
			color.New(color.Faint).Sprint(entry.Timestamp),
			entry.Calories, entry.Date)
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent food entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.ListFood()
		if err != nil {
			return fmt.Errorf("failed to list food: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No food logged yet.")
			return nil
		}

		if foodLimit > 0 && len(entries) > foodLimit {
			entries = entries[len(entries)-foodLimit:]
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			macros := ""
			if e.Protein > 0 || e.Carbs > 0 || e.Fat > 0 {
				macros = faint.Sprintf(" (%.0fp/%.0fc/%.0ff)", e.Protein, e.Carbs, e.Fat)
			}
			fmt.Printf("%s %s %-24s %6.0f kcal%s\n",
				faint.Sprint(e.Timestamp), e.Date, e.Name, e.Calories, macros)
		}
		return nil
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:     "delete <timestamp>",
	Aliases: []string{"rm"},
	Short:   "Delete a food entry by timestamp id",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp: %s", args[0])
		}
		if err := store.DeleteFoodByTimestamp(ts); err != nil {
			return fmt.Errorf("failed to delete food entry: %w", err)
		}

		color.Green("✓ Deleted food entry %d (if it existed)", ts)
		return nil
	},
}

var foodSaveCmd = &cobra.Command{
	Use:   "save <name> <calories>",
	Short: "Save a food template for quick logging",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := strconv.ParseFloat(args[1], 64)
		if err != nil || calories < 0 {
			return fmt.Errorf("invalid calories: %s", args[1])
		}

		food := models.NewCustomFood(args[0], calories)
		food.Protein = foodProtein
		food.Carbs = foodCarbs
		food.Fat = foodFat
		food.ServingSize = foodServing

		if err := store.SaveCustomFood(food); err != nil {
			return fmt.Errorf("failed to save template: %w", err)
		}

		color.Green("✓ Saved template %s", food.Name)
		return nil
	},
}

var foodTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List saved food templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.ListCustomFoods()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		if len(foods) == 0 {
			fmt.Println("No saved templates. Use 'balance food save' to create one.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, f := range foods {
			serving := ""
			if f.ServingSize != "" {
				serving = faint.Sprintf(" per %s", f.ServingSize)
			}
			fmt.Printf("%-24s %6.0f kcal %s%s\n",
				f.Name, f.Calories,
				faint.Sprintf("(%.0fp/%.0fc/%.0ff)", f.Protein, f.Carbs, f.Fat),
				serving)
		}
		return nil
	},
}

func init() {
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "protein in grams")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "carbs in grams")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "fat in grams")
	foodAddCmd.Flags().StringVar(&foodServing, "serving", "", "serving description")
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "log date (YYYY-MM-DD, default today)")
	foodAddCmd.Flags().StringVar(&foodFrom, "from", "", "log from a saved template by name")

	foodListCmd.Flags().IntVarP(&foodLimit, "limit", "n", 20, "max number of results")

	foodSaveCmd.Flags().Float64Var(&foodProtein, "protein", 0, "protein in grams")
	foodSaveCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "carbs in grams")
	foodSaveCmd.Flags().Float64Var(&foodFat, "fat", 0, "fat in grams")
	foodSaveCmd.Flags().StringVar(&foodServing, "serving", "", "serving description")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	foodCmd.AddCommand(foodSaveCmd)
	foodCmd.AddCommand(foodTemplatesCmd)
	rootCmd.AddCommand(foodCmd)
}
