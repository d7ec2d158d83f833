// ABOUTME: CustomFood template model for foods the user logs repeatedly.
// ABOUTME: Templates are copied into FoodEntry records at logging time.
package models

import "time"

// CustomFood is a saved food template. Logging from a template copies
// its nutrition into a fresh FoodEntry; later template edits do not
// rewrite history.
type CustomFood struct {
	Timestamp   int64   `json:"timestamp"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein,omitempty"`
	Carbs       float64 `json:"carbs,omitempty"`
	Fat         float64 `json:"fat,omitempty"`
	ServingSize string  `json:"servingSize,omitempty"`
}

// NewCustomFood creates a template stamped with the current time.
func NewCustomFood(name string, calories float64) *CustomFood {
	return &CustomFood{
		Timestamp: time.Now().UnixMilli(),
		Name:      name,
		Calories:  calories,
	}
}

// Entry materializes a food entry from this template.
func (c *CustomFood) Entry() *FoodEntry {
	e := NewFoodEntry(c.Name, c.Calories)
	e.Protein = c.Protein
	e.Carbs = c.Carbs
	e.Fat = c.Fat
	e.ServingSize = c.ServingSize
	return e
}
