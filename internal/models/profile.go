// ABOUTME: Profile model with sex, activity level, goal, and unit enums.
// ABOUTME: Profiles are always stored in metric units regardless of display preference.
package models

// Sex is the biological sex used by the BMR equation.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel describes habitual (non-exercise) activity.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// AllActivityLevels lists valid activity levels in ascending order.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate,
	ActivityActive, ActivityVeryActive,
}

// Goal describes what the user is optimizing for.
type Goal string

const (
	GoalFatLoss     Goal = "fatLoss"
	GoalMaintenance Goal = "maintenance"
	GoalMuscleGain  Goal = "muscleGain"
	GoalAthletic    Goal = "athletic"
)

// AllGoals lists valid goals.
var AllGoals = []Goal{GoalFatLoss, GoalMaintenance, GoalMuscleGain, GoalAthletic}

// UnitPreference selects the display unit system. Storage is always metric.
type UnitPreference string

const (
	UnitsMetric   UnitPreference = "metric"
	UnitsImperial UnitPreference = "imperial"
)

// IsValidSex checks if a string is a valid sex value.
func IsValidSex(s string) bool {
	return s == string(SexMale) || s == string(SexFemale)
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, l := range AllActivityLevels {
		if string(l) == s {
			return true
		}
	}
	return false
}

// IsValidGoal checks if a string is a valid goal.
func IsValidGoal(s string) bool {
	for _, g := range AllGoals {
		if string(g) == s {
			return true
		}
	}
	return false
}

// MacroGoal holds explicit daily macro targets in grams.
type MacroGoal struct {
	ProteinG int `json:"proteinG"`
	CarbsG   int `json:"carbsG"`
	FatG     int `json:"fatG"`
}

// Profile is the singleton per-user profile. Height and weight are metric.
type Profile struct {
	Age                 int            `json:"age"`
	Sex                 Sex            `json:"sex"`
	HeightCm            float64        `json:"heightCm"`
	WeightKg            float64        `json:"weightKg"`
	ActivityLevel       ActivityLevel  `json:"activityLevel"`
	Goal                Goal           `json:"goal"`
	UnitPreference      UnitPreference `json:"unitPreference"`
	CalorieGoalOverride *float64       `json:"calorieGoalOverride,omitempty"`
	MacroGoalOverride   *MacroGoal     `json:"macroGoalOverride,omitempty"`
}

// WithCalorieGoal sets an explicit daily calorie target.
func (p *Profile) WithCalorieGoal(calories float64) *Profile {
	p.CalorieGoalOverride = &calories
	return p
}

// WithMacroGoal sets explicit daily macro targets.
func (p *Profile) WithMacroGoal(proteinG, carbsG, fatG int) *Profile {
	p.MacroGoalOverride = &MacroGoal{ProteinG: proteinG, CarbsG: carbsG, FatG: fatG}
	return p
}
