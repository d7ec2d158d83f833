// ABOUTME: Backup export and import for one user's namespace.
// ABOUTME: Import is full-overwrite: validate and marshal everything, then write.
package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/storage"
	"gopkg.in/yaml.v3"
)

// ExportData is the backup document. Collections mirror the in-storage
// shapes exactly so a backup can be restored byte-for-byte.
type ExportData struct {
	Version     string                 `json:"version" yaml:"version"`
	ExportedAt  time.Time              `json:"exportedAt" yaml:"exported_at"`
	Tool        string                 `json:"tool" yaml:"tool"`
	Profile     *models.Profile        `json:"profile" yaml:"profile"`
	FoodLog     []models.FoodEntry     `json:"foodLog" yaml:"food_log"`
	ExerciseLog []models.ExerciseEntry `json:"exerciseLog" yaml:"exercise_log"`
	WeightLog   []models.WeightEntry   `json:"weightLog" yaml:"weight_log"`
	CustomFoods []models.CustomFood    `json:"customFoods" yaml:"custom_foods"`
}

// Export gathers all collections for the store's user.
func (s *Store) Export() (*ExportData, error) {
	profile, err := s.GetProfile()
	if err != nil {
		return nil, err
	}
	food, err := s.ListFood()
	if err != nil {
		return nil, err
	}
	exercise, err := s.ListExercise()
	if err != nil {
		return nil, err
	}
	weights, err := s.ListWeights()
	if err != nil {
		return nil, err
	}
	customs, err := s.ListCustomFoods()
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Version:     "1.0",
		ExportedAt:  time.Now(),
		Tool:        "balance",
		Profile:     profile,
		FoodLog:     food,
		ExerciseLog: exercise,
		WeightLog:   weights,
		CustomFoods: customs,
	}, nil
}

// ExportJSON exports the user's data as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := s.Export()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports the user's data as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := s.Export()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// Import overwrites the user's collections with the backup contents.
// Every payload is marshaled up front; only then are keys written, so
// a malformed backup never leaves the namespace half-updated. Safe to
// apply to an empty namespace; always a full overwrite, never a merge.
func (s *Store) Import(data *ExportData) error {
	type pending struct {
		key   string
		value string
	}
	writes := make([]pending, 0, 5)

	stage := func(baseKey string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", baseKey, err)
		}
		writes = append(writes, pending{
			key:   storage.NamespacedKey(s.userID, baseKey),
			value: string(raw),
		})
		return nil
	}

	if err := stage(storage.BaseFoodLog, emptyIfNil(data.FoodLog)); err != nil {
		return err
	}
	if err := stage(storage.BaseExerciseLog, emptyIfNil(data.ExerciseLog)); err != nil {
		return err
	}
	if err := stage(storage.BaseWeightLog, emptyIfNil(data.WeightLog)); err != nil {
		return err
	}
	if err := stage(storage.BaseCustomFoods, emptyIfNil(data.CustomFoods)); err != nil {
		return err
	}
	if data.Profile != nil {
		if err := stage(storage.BaseProfile, data.Profile); err != nil {
			return err
		}
	}

	for _, w := range writes {
		if err := s.gw.Set(w.key, w.value); err != nil {
			return fmt.Errorf("import write %s: %w", w.key, err)
		}
	}
	if data.Profile == nil {
		if err := s.gw.Remove(storage.NamespacedKey(s.userID, storage.BaseProfile)); err != nil {
			return fmt.Errorf("import clear profile: %w", err)
		}
	}
	return nil
}

// ImportJSON imports a backup from JSON bytes.
func (s *Store) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal backup: %w", err)
	}
	return s.Import(&data)
}

// ImportYAML imports a backup from YAML bytes.
func (s *Store) ImportYAML(raw []byte) error {
	var data ExportData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal backup: %w", err)
	}
	return s.Import(&data)
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
