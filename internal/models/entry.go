// ABOUTME: Food, exercise, and weight entry models keyed by millisecond timestamps.
// ABOUTME: The date field is denormalized from the timestamp for fast day bucketing.
package models

import "time"

// DateLayout is the zero-padded ISO date format used for day bucketing.
// String comparison on this layout matches chronological order.
const DateLayout = "2006-01-02"

// DateOf returns the ISO date for a millisecond timestamp in local time.
func DateOf(timestampMs int64) string {
	return time.UnixMilli(timestampMs).Format(DateLayout)
}

// FoodEntry is a single logged food item. Macro fields default to zero
// when the user logs calories only.
type FoodEntry struct {
	Timestamp   int64   `json:"timestamp"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein,omitempty"`
	Carbs       float64 `json:"carbs,omitempty"`
	Fat         float64 `json:"fat,omitempty"`
	ServingSize string  `json:"servingSize,omitempty"`
}

// NewFoodEntry creates a food entry stamped with the current time.
func NewFoodEntry(name string, calories float64) *FoodEntry {
	ts := time.Now().UnixMilli()
	return &FoodEntry{
		Timestamp: ts,
		Date:      DateOf(ts),
		Name:      name,
		Calories:  calories,
	}
}

// WithMacros sets the macro breakdown in grams.
func (f *FoodEntry) WithMacros(protein, carbs, fat float64) *FoodEntry {
	f.Protein = protein
	f.Carbs = carbs
	f.Fat = fat
	return f
}

// WithServingSize sets a free-form serving description.
func (f *FoodEntry) WithServingSize(serving string) *FoodEntry {
	f.ServingSize = serving
	return f
}

// WithTimestamp sets a custom timestamp and rederives the date.
func (f *FoodEntry) WithTimestamp(ts int64) *FoodEntry {
	f.Timestamp = ts
	f.Date = DateOf(ts)
	return f
}

// ExerciseEntry is a single logged exercise session. Strength sessions
// carry sets/reps/weight; cardio sessions carry a duration.
type ExerciseEntry struct {
	Timestamp       int64   `json:"timestamp"`
	Date            string  `json:"date"`
	Name            string  `json:"name"`
	CaloriesBurned  float64 `json:"caloriesBurned"`
	Sets            int     `json:"sets,omitempty"`
	Reps            int     `json:"reps,omitempty"`
	Weight          float64 `json:"weight,omitempty"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
}

// NewExerciseEntry creates an exercise entry stamped with the current time.
func NewExerciseEntry(name string, caloriesBurned float64) *ExerciseEntry {
	ts := time.Now().UnixMilli()
	return &ExerciseEntry{
		Timestamp:      ts,
		Date:           DateOf(ts),
		Name:           name,
		CaloriesBurned: caloriesBurned,
	}
}

// WithStrength sets strength-training fields.
func (e *ExerciseEntry) WithStrength(sets, reps int, weight float64) *ExerciseEntry {
	e.Sets = sets
	e.Reps = reps
	e.Weight = weight
	return e
}

// WithDuration sets the session duration in minutes.
func (e *ExerciseEntry) WithDuration(minutes int) *ExerciseEntry {
	e.DurationMinutes = minutes
	return e
}

// WithTimestamp sets a custom timestamp and rederives the date.
func (e *ExerciseEntry) WithTimestamp(ts int64) *ExerciseEntry {
	e.Timestamp = ts
	e.Date = DateOf(ts)
	return e
}

// WeightEntry is a single body-weight measurement, always in kilograms.
type WeightEntry struct {
	Timestamp int64   `json:"timestamp"`
	Date      string  `json:"date"`
	WeightKg  float64 `json:"weightKg"`
}

// NewWeightEntry creates a weight entry stamped with the current time.
func NewWeightEntry(weightKg float64) *WeightEntry {
	ts := time.Now().UnixMilli()
	return &WeightEntry{
		Timestamp: ts,
		Date:      DateOf(ts),
		WeightKg:  weightKg,
	}
}

// WithTimestamp sets a custom timestamp and rederives the date.
func (w *WeightEntry) WithTimestamp(ts int64) *WeightEntry {
	w.Timestamp = ts
	w.Date = DateOf(ts)
	return w
}
