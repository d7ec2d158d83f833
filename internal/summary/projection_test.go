// ABOUTME: Tests for the estimated weight trend.
// ABOUTME: Anchors at the first logged weight; 3500 kcal moves one pound.
package summary

import (
	"math"
	"testing"
	"time"

	"github.com/harperreed/balance/internal/formula"
	"github.com/harperreed/balance/internal/models"
)

func TestWeightProjectionNoWeights(t *testing.T) {
	e, store := testEngine(t)
	if err := store.AddFood(models.NewFoodEntry("meal", 2000).WithTimestamp(tsAt(2026, time.August, 10))); err != nil {
		t.Fatal(err)
	}

	trend, err := e.WeightProjection()
	if err != nil {
		t.Fatalf("WeightProjection() error = %v", err)
	}
	if len(trend.Actual) != 0 {
		t.Errorf("Actual = %+v, want empty", trend.Actual)
	}
	if len(trend.Estimated) != 0 {
		t.Errorf("Estimated = %+v, want empty with no anchor weight", trend.Estimated)
	}
}

func TestWeightProjectionArithmetic(t *testing.T) {
	e, store := testEngine(t)

	if err := store.AddWeight(models.NewWeightEntry(80).WithTimestamp(tsAt(2026, time.August, 9))); err != nil {
		t.Fatal(err)
	}
	// No profile: NET on this day is -3500, exactly one pound down.
	if err := store.AddExercise(models.NewExerciseEntry("ultra", 3500).WithTimestamp(tsAt(2026, time.August, 10))); err != nil {
		t.Fatal(err)
	}

	trend, err := e.WeightProjection()
	if err != nil {
		t.Fatalf("WeightProjection() error = %v", err)
	}
	if len(trend.Estimated) != 1 {
		t.Fatalf("len(Estimated) = %d, want 1", len(trend.Estimated))
	}
	want := 80 - formula.KgPerLb
	if math.Abs(trend.Estimated[0].EstimatedKg-want) > 1e-9 {
		t.Errorf("EstimatedKg = %f, want %f", trend.Estimated[0].EstimatedKg, want)
	}
}

func TestWeightProjectionCumulative(t *testing.T) {
	e, store := testEngine(t)

	if err := store.AddWeight(models.NewWeightEntry(80).WithTimestamp(tsAt(2026, time.August, 9))); err != nil {
		t.Fatal(err)
	}
	// Two tracked days, each NET +1750: cumulative +3500 by day two.
	for _, day := range []int{10, 11} {
		if err := store.AddFood(models.NewFoodEntry("meal", 1750).WithTimestamp(tsAt(2026, time.August, day))); err != nil {
			t.Fatal(err)
		}
	}

	trend, err := e.WeightProjection()
	if err != nil {
		t.Fatalf("WeightProjection() error = %v", err)
	}
	if len(trend.Estimated) != 2 {
		t.Fatalf("len(Estimated) = %d, want 2", len(trend.Estimated))
	}
	wantDay2 := 80 + formula.KgPerLb
	if math.Abs(trend.Estimated[1].EstimatedKg-wantDay2) > 1e-9 {
		t.Errorf("day 2 EstimatedKg = %f, want %f", trend.Estimated[1].EstimatedKg, wantDay2)
	}
	if trend.Estimated[0].Date >= trend.Estimated[1].Date {
		t.Errorf("estimated series must be chronological")
	}
}
