// ABOUTME: Tests for backup export and import.
// ABOUTME: Round trips must reproduce the namespace; import is a full overwrite.
package repo

import (
	"testing"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/storage"
)

func seedStore(t *testing.T) *Store {
	t.Helper()
	s := testStore()
	if err := s.SaveProfile(sampleProfile()); err != nil {
		t.Fatal(err)
	}
	if err := s.AddFood(models.NewFoodEntry("oatmeal", 320).WithTimestamp(1000)); err != nil {
		t.Fatal(err)
	}
	if err := s.AddExercise(models.NewExerciseEntry("run", 300).WithTimestamp(2000)); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveCustomFood(models.NewCustomFood("toast", 150)); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	src := seedStore(t)

	raw, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	dst := NewStore(storage.NewMemoryGateway(), "default")
	if err := dst.ImportJSON(raw); err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}

	food, _ := dst.ListFood()
	if len(food) != 1 || food[0].Name != "oatmeal" {
		t.Errorf("food = %+v", food)
	}
	exercise, _ := dst.ListExercise()
	if len(exercise) != 1 || exercise[0].CaloriesBurned != 300 {
		t.Errorf("exercise = %+v", exercise)
	}
	weights, _ := dst.ListWeights()
	if len(weights) != 1 {
		t.Errorf("weights = %+v, want the synthesized initial weight", weights)
	}
	customs, _ := dst.ListCustomFoods()
	if len(customs) != 1 {
		t.Errorf("customs = %+v", customs)
	}
	p, _ := dst.GetProfile()
	if p == nil || p.Age != 34 {
		t.Errorf("profile = %+v", p)
	}
}

func TestExportImportYAMLRoundTrip(t *testing.T) {
	src := seedStore(t)

	raw, err := src.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML() error = %v", err)
	}

	dst := NewStore(storage.NewMemoryGateway(), "default")
	if err := dst.ImportYAML(raw); err != nil {
		t.Fatalf("ImportYAML() error = %v", err)
	}

	food, _ := dst.ListFood()
	if len(food) != 1 || food[0].Calories != 320 {
		t.Errorf("food = %+v", food)
	}
}

func TestImportIsFullOverwrite(t *testing.T) {
	src := seedStore(t)
	backup, err := src.Export()
	if err != nil {
		t.Fatal(err)
	}

	dst := testStore()
	if err := dst.AddFood(models.NewFoodEntry("leftover", 999)); err != nil {
		t.Fatal(err)
	}

	if err := dst.Import(backup); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	food, _ := dst.ListFood()
	if len(food) != 1 || food[0].Name != "oatmeal" {
		t.Errorf("food = %+v, want backup contents only", food)
	}
}

func TestImportNilProfileClearsProfile(t *testing.T) {
	dst := seedStore(t)

	if err := dst.Import(&ExportData{}); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	p, err := dst.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if p != nil {
		t.Errorf("profile = %+v, want cleared", p)
	}
	food, _ := dst.ListFood()
	if len(food) != 0 {
		t.Errorf("food = %+v, want empty", food)
	}
}

func TestImportMalformedJSONLeavesDataIntact(t *testing.T) {
	dst := seedStore(t)

	if err := dst.ImportJSON([]byte("{broken")); err == nil {
		t.Fatal("expected error for malformed backup")
	}

	food, _ := dst.ListFood()
	if len(food) != 1 {
		t.Errorf("food = %+v, want untouched after failed import", food)
	}
}
