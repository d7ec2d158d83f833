// ABOUTME: MCP tool implementations for logging and energy-balance queries.
// ABOUTME: Provides food/exercise/weight logging plus summary and stats tools.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/balance/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a food item with calories and optional macros",
	}, s.handleLogFood)

	// log_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_exercise",
		Description: "Log an exercise session with calories burned",
	}, s.handleLogExercise)

	// log_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Log a body-weight measurement in kilograms",
	}, s.handleLogWeight)

	// daily_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_summary",
		Description: "Get the energy-balance summary for a date (default today)",
	}, s.handleDailySummary)

	// weekly_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_stats",
		Description: "Get average NET calories and macros over the trailing 7 days",
	}, s.handleWeeklyStats)

	// delete_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a food, exercise, or weight entry by timestamp",
	}, s.handleDeleteEntry)
}

// Tool input/output types

type logFoodInput struct {
	Name        string  `json:"name" jsonschema:"Name of the food"`
	Calories    float64 `json:"calories" jsonschema:"Calories (kcal)"`
	Protein     float64 `json:"protein,omitempty" jsonschema:"Protein in grams"`
	Carbs       float64 `json:"carbs,omitempty" jsonschema:"Carbs in grams"`
	Fat         float64 `json:"fat,omitempty" jsonschema:"Fat in grams"`
	ServingSize string  `json:"serving_size,omitempty" jsonschema:"Serving description"`
	Date        string  `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type entryOutput struct {
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}

type logExerciseInput struct {
	Name            string  `json:"name" jsonschema:"Name of the exercise"`
	CaloriesBurned  float64 `json:"calories_burned" jsonschema:"Calories burned (kcal)"`
	Sets            int     `json:"sets,omitempty" jsonschema:"Sets (strength training)"`
	Reps            int     `json:"reps,omitempty" jsonschema:"Reps (strength training)"`
	Weight          float64 `json:"weight,omitempty" jsonschema:"Weight in kg (strength training)"`
	DurationMinutes int     `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes (cardio)"`
	Date            string  `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type logWeightInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"Body weight in kilograms"`
	Date     string  `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type dailySummaryInput struct {
	Date string `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type weeklyStatsInput struct {
	Monthly bool `json:"monthly,omitempty" jsonschema:"Use a trailing 30-day window instead of 7"`
}

type deleteEntryInput struct {
	Kind      string `json:"kind" jsonschema:"Entry kind: food, exercise, or weight"`
	Timestamp int64  `json:"timestamp" jsonschema:"Timestamp id of the entry"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// timestampForDate maps an optional ISO date onto a timestamp at noon
// local time, keeping the derived date stable across timezones.
func timestampForDate(date string) (int64, error) {
	if date == "" {
		return 0, nil
	}
	t, err := time.ParseInLocation(models.DateLayout, date, time.Local)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
	}
	return t.Add(12 * time.Hour).UnixMilli(), nil
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, entryOutput, error) {
	if input.Calories < 0 {
		return nil, entryOutput{}, fmt.Errorf("calories must be >= 0")
	}

	e := models.NewFoodEntry(input.Name, input.Calories).
		WithMacros(input.Protein, input.Carbs, input.Fat)
	if input.ServingSize != "" {
		e.WithServingSize(input.ServingSize)
	}
	if ts, err := timestampForDate(input.Date); err != nil {
		return nil, entryOutput{}, err
	} else if ts != 0 {
		e.WithTimestamp(ts)
	}

	if err := s.store.AddFood(e); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	return nil, entryOutput{
		Timestamp: e.Timestamp,
		Date:      e.Date,
		Message:   fmt.Sprintf("Logged %s: %.0f kcal on %s", e.Name, e.Calories, e.Date),
	}, nil
}

func (s *Server) handleLogExercise(ctx context.Context, req *mcp.CallToolRequest, input logExerciseInput) (*mcp.CallToolResult, entryOutput, error) {
	if input.CaloriesBurned < 0 {
		return nil, entryOutput{}, fmt.Errorf("calories_burned must be >= 0")
	}

	e := models.NewExerciseEntry(input.Name, input.CaloriesBurned)
	if input.DurationMinutes > 0 {
		e.WithDuration(input.DurationMinutes)
	}
	if input.Sets > 0 {
		e.WithStrength(input.Sets, input.Reps, input.Weight)
	}
	if ts, err := timestampForDate(input.Date); err != nil {
		return nil, entryOutput{}, err
	} else if ts != 0 {
		e.WithTimestamp(ts)
	}

	if err := s.store.AddExercise(e); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log exercise: %w", err)
	}

	return nil, entryOutput{
		Timestamp: e.Timestamp,
		Date:      e.Date,
		Message:   fmt.Sprintf("Logged %s: %.0f kcal burned on %s", e.Name, e.CaloriesBurned, e.Date),
	}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, entryOutput, error) {
	if input.WeightKg <= 0 {
		return nil, entryOutput{}, fmt.Errorf("weight_kg must be > 0")
	}

	e := models.NewWeightEntry(input.WeightKg)
	if ts, err := timestampForDate(input.Date); err != nil {
		return nil, entryOutput{}, err
	} else if ts != 0 {
		e.WithTimestamp(ts)
	}

	if err := s.store.AddWeight(e); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log weight: %w", err)
	}

	return nil, entryOutput{
		Timestamp: e.Timestamp,
		Date:      e.Date,
		Message:   fmt.Sprintf("Logged weight %.1f kg on %s", e.WeightKg, e.Date),
	}, nil
}

func (s *Server) handleDailySummary(ctx context.Context, req *mcp.CallToolRequest, input dailySummaryInput) (*mcp.CallToolResult, any, error) {
	if input.Date == "" {
		sum, err := s.engine.Today()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute summary: %w", err)
		}
		return nil, sum, nil
	}

	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return nil, nil, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", input.Date)
	}
	sum, err := s.engine.DailySummary(input.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute summary: %w", err)
	}
	return nil, sum, nil
}

func (s *Server) handleWeeklyStats(ctx context.Context, req *mcp.CallToolRequest, input weeklyStatsInput) (*mcp.CallToolResult, any, error) {
	var err error
	var avg any
	if input.Monthly {
		avg, err = s.engine.MonthlyAverage()
	} else {
		avg, err = s.engine.WeeklyAverage()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute averages: %w", err)
	}
	return nil, avg, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	var err error
	switch input.Kind {
	case "food":
		err = s.store.DeleteFoodByTimestamp(input.Timestamp)
	case "exercise":
		err = s.store.DeleteExerciseByTimestamp(input.Timestamp)
	case "weight":
		err = s.store.DeleteWeightByTimestamp(input.Timestamp)
	default:
		return nil, simpleOutput{}, fmt.Errorf("unknown entry kind: %s (use food, exercise, or weight)", input.Kind)
	}
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s entry %d (if it existed)", input.Kind, input.Timestamp),
	}, nil
}
