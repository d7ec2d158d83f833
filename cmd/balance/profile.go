// ABOUTME: CLI commands for profile setup and display.
// ABOUTME: Imperial input is converted at this boundary; storage is always metric.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/balance/internal/formula"
	"github.com/harperreed/balance/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileAge      int
	profileSex      string
	profileHeight   float64
	profileWeight   float64
	profileActivity string
	profileGoal     string
	profileUnits    string
	profileCalGoal  float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long: `Manage the profile used to compute your resting calorie burn.

The profile feeds the Mifflin-St Jeor BMR equation and the activity
multiplier that together produce your baseline TDEE. It is stored in
metric units; pass --units imperial to enter height in inches and
weight in pounds instead.

ACTIVITY LEVELS:

  sedentary (1.2), light (1.375), moderate (1.55),
  active (1.725), veryActive (1.9)

GOALS:

  fatLoss, maintenance, muscleGain, athletic

EXAMPLES:

  balance profile set --age 34 --sex male --height 180 --weight 82 \
      --activity moderate --goal fatLoss
  balance profile set --age 29 --sex female --height 66 --weight 150 \
      --activity light --goal maintenance --units imperial
  balance profile show`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidSex(profileSex) {
			return fmt.Errorf("invalid sex: %s (use male or female)", profileSex)
		}
		if !models.IsValidActivityLevel(profileActivity) {
			return fmt.Errorf("invalid activity level: %s (use sedentary, light, moderate, active, or veryActive)", profileActivity)
		}
		if !models.IsValidGoal(profileGoal) {
			return fmt.Errorf("invalid goal: %s (use fatLoss, maintenance, muscleGain, or athletic)", profileGoal)
		}
		if profileUnits != string(models.UnitsMetric) && profileUnits != string(models.UnitsImperial) {
			return fmt.Errorf("invalid units: %s (use metric or imperial)", profileUnits)
		}

		heightCm := profileHeight
		weightKg := profileWeight
		if profileUnits == string(models.UnitsImperial) {
			var err error
			if heightCm, err = formula.ToMetric(profileHeight, formula.Length); err != nil {
				return err
			}
			if weightKg, err = formula.ToMetric(profileWeight, formula.Mass); err != nil {
				return err
			}
		}

		p := &models.Profile{
			Age:            profileAge,
			Sex:            models.Sex(profileSex),
			HeightCm:       heightCm,
			WeightKg:       weightKg,
			ActivityLevel:  models.ActivityLevel(profileActivity),
			Goal:           models.Goal(profileGoal),
			UnitPreference: models.UnitPreference(profileUnits),
		}
		if profileCalGoal > 0 {
			p.WithCalorieGoal(profileCalGoal)
		}

		// Validate before persisting so a bad profile never reaches storage.
		if _, err := formula.BaselineTDEE(p); err != nil {
			return err
		}

		existing, err := store.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		if existing != nil {
			// Keep overrides the user set previously unless replaced.
			if p.CalorieGoalOverride == nil {
				p.CalorieGoalOverride = existing.CalorieGoalOverride
			}
			p.MacroGoalOverride = existing.MacroGoalOverride
		}

		if err := store.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile saved")
		return printProfileSummary(p)
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile and derived targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile set. Run 'balance profile set' first.")
			return nil
		}
		return printProfileSummary(p)
	},
}

func printProfileSummary(p *models.Profile) error {
	bmr, err := formula.CalculateBMR(p)
	if err != nil {
		return err
	}
	tdee, err := formula.CalculateTDEE(bmr, p.ActivityLevel)
	if err != nil {
		return err
	}
	calGoal, err := formula.CalorieGoal(p, tdee)
	if err != nil {
		return err
	}
	macros, err := formula.MacroGoals(p, calGoal)
	if err != nil {
		return err
	}

	height := p.HeightCm
	weight := p.WeightKg
	heightUnit, weightUnit := "cm", "kg"
	if p.UnitPreference == models.UnitsImperial {
		if height, err = formula.ToImperial(p.HeightCm, formula.Length); err != nil {
			return err
		}
		if weight, err = formula.ToImperial(p.WeightKg, formula.Mass); err != nil {
			return err
		}
		heightUnit, weightUnit = "in", "lb"
	}

	faint := color.New(color.Faint)
	fmt.Printf("  %s %d  %s %s  %s %.1f %s  %s %.1f %s\n",
		faint.Sprint("age"), p.Age,
		faint.Sprint("sex"), p.Sex,
		faint.Sprint("height"), height, heightUnit,
		faint.Sprint("weight"), weight, weightUnit)
	fmt.Printf("  %s %s  %s %s\n",
		faint.Sprint("activity"), p.ActivityLevel,
		faint.Sprint("goal"), p.Goal)
	fmt.Printf("  %s %.0f kcal  %s %.0f kcal  %s %.0f kcal\n",
		faint.Sprint("BMR"), bmr,
		faint.Sprint("TDEE"), tdee,
		faint.Sprint("daily goal"), calGoal)
	fmt.Printf("  %s %dg protein / %dg carbs / %dg fat\n",
		faint.Sprint("macro goal"), macros.ProteinG, macros.CarbsG, macros.FatG)
	return nil
}

func init() {
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "male or female")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height (cm, or in with --units imperial)")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight (kg, or lb with --units imperial)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", string(models.GoalMaintenance), "goal")
	profileSetCmd.Flags().StringVar(&profileUnits, "units", string(models.UnitsMetric), "display units: metric or imperial")
	profileSetCmd.Flags().Float64Var(&profileCalGoal, "calorie-goal", 0, "explicit daily calorie goal override")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
