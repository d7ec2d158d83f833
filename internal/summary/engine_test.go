// ABOUTME: Tests for daily summaries and history derivation.
// ABOUTME: NET arithmetic, missing-profile behavior, and ordering.
package summary

import (
	"math"
	"testing"
	"time"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/repo"
	"github.com/harperreed/balance/internal/storage"
)

func testEngine(t *testing.T) (*Engine, *repo.Store) {
	t.Helper()
	store := repo.NewStore(storage.NewMemoryGateway(), "default")
	return NewEngine(store), store
}

func tsAt(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local).UnixMilli()
}

// sedentaryProfile has BMR 1780 (Mifflin-St Jeor), so a resting burn of
// 1780 * 1.2 = 2136.
func sedentaryProfile() *models.Profile {
	return &models.Profile{
		Age:           34,
		Sex:           models.SexMale,
		HeightCm:      180,
		WeightKg:      82,
		ActivityLevel: models.ActivitySedentary,
		Goal:          models.GoalMaintenance,
	}
}

func TestDailySummaryNet(t *testing.T) {
	e, store := testEngine(t)
	if err := store.SaveProfile(sedentaryProfile()); err != nil {
		t.Fatal(err)
	}

	ts := tsAt(2026, time.August, 30)
	date := models.DateOf(ts)
	if err := store.AddFood(models.NewFoodEntry("lunch", 1800).WithMacros(90, 200, 50).WithTimestamp(ts)); err != nil {
		t.Fatal(err)
	}
	if err := store.AddExercise(models.NewExerciseEntry("run", 300).WithTimestamp(ts + 1)); err != nil {
		t.Fatal(err)
	}

	s, err := e.DailySummary(date)
	if err != nil {
		t.Fatalf("DailySummary() error = %v", err)
	}
	if s.CaloriesEaten != 1800 {
		t.Errorf("CaloriesEaten = %f, want 1800", s.CaloriesEaten)
	}
	if math.Abs(s.RestingBurned-2136) > 1e-9 {
		t.Errorf("RestingBurned = %f, want 2136", s.RestingBurned)
	}
	if s.ExerciseBurned != 300 {
		t.Errorf("ExerciseBurned = %f, want 300", s.ExerciseBurned)
	}
	if math.Abs(s.TotalBurned-2436) > 1e-9 {
		t.Errorf("TotalBurned = %f, want 2436", s.TotalBurned)
	}
	// 1800 - 2436: a deficit is negative
	if math.Abs(s.NetCalories-(-636)) > 1e-9 {
		t.Errorf("NetCalories = %f, want -636", s.NetCalories)
	}
	if s.ProteinG != 90 || s.CarbsG != 200 || s.FatG != 50 {
		t.Errorf("macros = %f/%f/%f", s.ProteinG, s.CarbsG, s.FatG)
	}
	if s.FoodCount != 1 || s.ExerciseCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", s.FoodCount, s.ExerciseCount)
	}
}

func TestDailySummaryNoProfile(t *testing.T) {
	e, store := testEngine(t)

	ts := tsAt(2026, time.August, 30)
	if err := store.AddFood(models.NewFoodEntry("lunch", 500).WithTimestamp(ts)); err != nil {
		t.Fatal(err)
	}

	s, err := e.DailySummary(models.DateOf(ts))
	if err != nil {
		t.Fatalf("DailySummary() error = %v", err)
	}
	if s.RestingBurned != 0 {
		t.Errorf("RestingBurned = %f, want 0 without a profile", s.RestingBurned)
	}
	if s.NetCalories != 500 {
		t.Errorf("NetCalories = %f, want 500", s.NetCalories)
	}
}

func TestDailySummaryEmptyDate(t *testing.T) {
	e, store := testEngine(t)
	if err := store.SaveProfile(sedentaryProfile()); err != nil {
		t.Fatal(err)
	}

	s, err := e.DailySummary("2026-01-01")
	if err != nil {
		t.Fatalf("DailySummary() error = %v", err)
	}
	if s.FoodCount != 0 || s.ExerciseCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", s.FoodCount, s.ExerciseCount)
	}
	if math.Abs(s.NetCalories-(-2136)) > 1e-9 {
		t.Errorf("NetCalories = %f, want -2136 with nothing eaten", s.NetCalories)
	}
}

func TestHistoryOrderingAndIdempotence(t *testing.T) {
	e, store := testEngine(t)

	for day := 10; day <= 12; day++ {
		ts := tsAt(2026, time.August, day)
		if err := store.AddFood(models.NewFoodEntry("meal", 2000).WithTimestamp(ts)); err != nil {
			t.Fatal(err)
		}
	}

	first, err := e.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("len = %d, want 3", len(first))
	}
	for i := 1; i < len(first); i++ {
		if first[i].Date >= first[i-1].Date {
			t.Errorf("history not in reverse order: %s before %s", first[i-1].Date, first[i].Date)
		}
	}

	second, err := e.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("recomputed history differs at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
