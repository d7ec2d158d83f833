// ABOUTME: Tests for windowed averages and the rolling NET trend.
// ABOUTME: Untracked days must leave the denominator; windows clip at history start.
package summary

import (
	"math"
	"testing"
	"time"

	"github.com/harperreed/balance/internal/models"
)

func pinNow(t *testing.T, year int, month time.Month, day int) {
	t.Helper()
	prev := nowMs
	nowMs = func() int64 { return tsAt(year, month, day) }
	t.Cleanup(func() { nowMs = prev })
}

func TestWeeklyAverageCountsTrackedDaysOnly(t *testing.T) {
	pinNow(t, 2026, time.August, 31)
	e, store := testEngine(t)

	// Food on 3 of the trailing 7 days.
	for _, day := range []int{26, 28, 31} {
		ts := tsAt(2026, time.August, day)
		if err := store.AddFood(models.NewFoodEntry("meal", 2100).WithTimestamp(ts)); err != nil {
			t.Fatal(err)
		}
	}
	// Exercise alone does not make a day tracked for averages.
	if err := store.AddExercise(models.NewExerciseEntry("walk", 200).WithTimestamp(tsAt(2026, time.August, 27))); err != nil {
		t.Fatal(err)
	}

	avg, err := e.WeeklyAverage()
	if err != nil {
		t.Fatalf("WeeklyAverage() error = %v", err)
	}
	if avg.FromDate != "2026-08-25" || avg.ToDate != "2026-08-31" {
		t.Errorf("window = %s..%s", avg.FromDate, avg.ToDate)
	}
	if avg.TrackedDays != 3 {
		t.Errorf("TrackedDays = %d, want 3", avg.TrackedDays)
	}
	// 3 days at 2100 each, divided by 3 tracked days, not 7.
	if math.Abs(avg.AvgCaloriesEaten-2100) > 1e-9 {
		t.Errorf("AvgCaloriesEaten = %f, want 2100", avg.AvgCaloriesEaten)
	}
	// No profile, no exercise on tracked days: NET is just eaten.
	if math.Abs(avg.AvgNetCalories-2100) > 1e-9 {
		t.Errorf("AvgNetCalories = %f, want 2100", avg.AvgNetCalories)
	}
}

func TestWeeklyAverageEmptyWindow(t *testing.T) {
	pinNow(t, 2026, time.August, 31)
	e, _ := testEngine(t)

	avg, err := e.WeeklyAverage()
	if err != nil {
		t.Fatalf("WeeklyAverage() error = %v", err)
	}
	if avg.TrackedDays != 0 {
		t.Errorf("TrackedDays = %d, want 0", avg.TrackedDays)
	}
	if avg.AvgNetCalories != 0 {
		t.Errorf("AvgNetCalories = %f, want 0 for empty window", avg.AvgNetCalories)
	}
}

func TestWindowAverageExcludesDaysOutsideWindow(t *testing.T) {
	e, store := testEngine(t)

	if err := store.AddFood(models.NewFoodEntry("old", 3000).WithTimestamp(tsAt(2026, time.July, 1))); err != nil {
		t.Fatal(err)
	}
	if err := store.AddFood(models.NewFoodEntry("recent", 2000).WithTimestamp(tsAt(2026, time.August, 30))); err != nil {
		t.Fatal(err)
	}

	avg, err := e.WindowAverageEnding("2026-08-31", 7)
	if err != nil {
		t.Fatalf("WindowAverageEnding() error = %v", err)
	}
	if avg.TrackedDays != 1 {
		t.Errorf("TrackedDays = %d, want 1", avg.TrackedDays)
	}
	if avg.AvgCaloriesEaten != 2000 {
		t.Errorf("AvgCaloriesEaten = %f, want 2000", avg.AvgCaloriesEaten)
	}
}

func TestWindowAverageBadInput(t *testing.T) {
	e, _ := testEngine(t)
	if _, err := e.WindowAverageEnding("not-a-date", 7); err == nil {
		t.Error("expected error for invalid end date")
	}
	if _, err := e.WindowAverageEnding("2026-08-31", 0); err == nil {
		t.Error("expected error for zero-day window")
	}
}

func TestRollingAverageClipsAtHistoryStart(t *testing.T) {
	e, store := testEngine(t)

	// NET values 1000, 2000, 3000 on consecutive tracked days.
	for i, cal := range []float64{1000, 2000, 3000} {
		ts := tsAt(2026, time.August, 10+i)
		if err := store.AddFood(models.NewFoodEntry("meal", cal).WithTimestamp(ts)); err != nil {
			t.Fatal(err)
		}
	}

	points, err := e.RollingAverage(7)
	if err != nil {
		t.Fatalf("RollingAverage() error = %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("len = %d, want 3", len(points))
	}

	want := []float64{1000, 1500, 2000}
	for i, p := range points {
		if math.Abs(p.RollingNet-want[i]) > 1e-9 {
			t.Errorf("point %d RollingNet = %f, want %f", i, p.RollingNet, want[i])
		}
	}
}

func TestRollingAverageWindowLimits(t *testing.T) {
	e, store := testEngine(t)

	for i, cal := range []float64{1000, 2000, 3000} {
		ts := tsAt(2026, time.August, 10+i)
		if err := store.AddFood(models.NewFoodEntry("meal", cal).WithTimestamp(ts)); err != nil {
			t.Fatal(err)
		}
	}

	points, err := e.RollingAverage(2)
	if err != nil {
		t.Fatalf("RollingAverage() error = %v", err)
	}
	// Third point averages only the last two tracked days.
	if math.Abs(points[2].RollingNet-2500) > 1e-9 {
		t.Errorf("RollingNet = %f, want 2500", points[2].RollingNet)
	}
}
