// ABOUTME: BMR, TDEE, macro, and calorie-goal arithmetic.
// ABOUTME: BMR uses Mifflin-St Jeor; exercise is never folded into the activity multiplier.
package formula

import (
	"math"

	"github.com/harperreed/balance/internal/models"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// This is the single source of truth for valid levels.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// goalCalorieAdjustments maps goals to a daily calorie offset from TDEE.
var goalCalorieAdjustments = map[models.Goal]float64{
	models.GoalFatLoss:     -500,
	models.GoalMaintenance: 0,
	models.GoalMuscleGain:  300,
	models.GoalAthletic:    250,
}

// goalMacroRatios maps goals to protein/carbs/fat percentage splits.
var goalMacroRatios = map[models.Goal]MacroRatios{
	models.GoalFatLoss:     {Protein: 40, Carbs: 30, Fat: 30},
	models.GoalMaintenance: {Protein: 30, Carbs: 40, Fat: 30},
	models.GoalMuscleGain:  {Protein: 30, Carbs: 45, Fat: 25},
	models.GoalAthletic:    {Protein: 25, Carbs: 50, Fat: 25},
}

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor:
// 10*weightKg + 6.25*heightCm - 5*age + (5 if male, -161 if female).
func CalculateBMR(p *models.Profile) (float64, error) {
	if p == nil {
		return 0, &InvalidProfileError{Field: "profile", Reason: "is missing"}
	}
	if err := requirePositive("age", float64(p.Age)); err != nil {
		return 0, err
	}
	if err := requirePositive("heightCm", p.HeightCm); err != nil {
		return 0, err
	}
	if err := requirePositive("weightKg", p.WeightKg); err != nil {
		return 0, err
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	switch p.Sex {
	case models.SexMale:
		bmr += 5
	case models.SexFemale:
		bmr -= 161
	default:
		return 0, &InvalidEnumError{Kind: "sex", Value: string(p.Sex)}
	}
	return bmr, nil
}

// ActivityMultiplier returns the TDEE multiplier for an activity level.
func ActivityMultiplier(level models.ActivityLevel) (float64, error) {
	mult, ok := activityMultipliers[level]
	if !ok {
		return 0, &InvalidEnumError{Kind: "activity level", Value: string(level)}
	}
	return mult, nil
}

// CalculateTDEE computes total daily energy expenditure from BMR and
// activity level.
func CalculateTDEE(bmr float64, level models.ActivityLevel) (float64, error) {
	mult, err := ActivityMultiplier(level)
	if err != nil {
		return 0, err
	}
	return bmr * mult, nil
}

// BaselineTDEE computes the profile's resting daily burn: TDEE at the
// profile's activity level with logged exercise excluded. Exercise
// calories are added per day as a separate term, so untracked days are
// neither penalized nor inflated.
func BaselineTDEE(p *models.Profile) (float64, error) {
	bmr, err := CalculateBMR(p)
	if err != nil {
		return 0, err
	}
	return CalculateTDEE(bmr, p.ActivityLevel)
}

// MacroRatios is a protein/carbs/fat percentage split. Callers are
// responsible for supplying percentages that sum to 100.
type MacroRatios struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// MacroGrams is a daily macro target in integer grams.
type MacroGrams struct {
	ProteinG int
	CarbsG   int
	FatG     int
}

// MacroGramsFromCalories splits a calorie total into integer gram
// targets: protein and carbs at 4 kcal/g, fat at 9 kcal/g, each rounded
// half-up independently.
func MacroGramsFromCalories(totalCalories float64, ratios MacroRatios) MacroGrams {
	return MacroGrams{
		ProteinG: roundHalfUp(totalCalories * ratios.Protein / 100 / 4),
		CarbsG:   roundHalfUp(totalCalories * ratios.Carbs / 100 / 4),
		FatG:     roundHalfUp(totalCalories * ratios.Fat / 100 / 9),
	}
}

// CalorieGoal computes the daily calorie target: TDEE adjusted by the
// profile's goal, unless an explicit override is set.
func CalorieGoal(p *models.Profile, tdee float64) (float64, error) {
	if p.CalorieGoalOverride != nil {
		return *p.CalorieGoalOverride, nil
	}
	adj, ok := goalCalorieAdjustments[p.Goal]
	if !ok {
		return 0, &InvalidEnumError{Kind: "goal", Value: string(p.Goal)}
	}
	return tdee + adj, nil
}

// MacroGoals computes daily macro targets from the calorie goal using
// the profile's goal ratios, unless an explicit override is set.
func MacroGoals(p *models.Profile, calorieGoal float64) (MacroGrams, error) {
	if p.MacroGoalOverride != nil {
		o := p.MacroGoalOverride
		return MacroGrams{ProteinG: o.ProteinG, CarbsG: o.CarbsG, FatG: o.FatG}, nil
	}
	ratios, ok := goalMacroRatios[p.Goal]
	if !ok {
		return MacroGrams{}, &InvalidEnumError{Kind: "goal", Value: string(p.Goal)}
	}
	return MacroGramsFromCalories(calorieGoal, ratios), nil
}

func requirePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidProfileError{Field: field, Reason: "is not finite"}
	}
	if v <= 0 {
		return &InvalidProfileError{Field: field, Reason: "must be > 0"}
	}
	return nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
