// ABOUTME: Exercise log repository: list, add, and delete exercise entries.
// ABOUTME: Mirrors the food log's whole-collection read-modify-write semantics.
package repo

import (
	"fmt"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/storage"
)

// ListExercise returns all exercise entries in insertion order.
func (s *Store) ListExercise() ([]models.ExerciseEntry, error) {
	entries, err := readCollection[models.ExerciseEntry](s, storage.BaseExerciseLog)
	if err != nil {
		return nil, fmt.Errorf("list exercise: %w", err)
	}
	return entries, nil
}

// AddExercise appends an exercise entry with a unique timestamp id.
func (s *Store) AddExercise(entry *models.ExerciseEntry) error {
	entries, err := s.ListExercise()
	if err != nil {
		return err
	}

	taken := make(map[int64]bool, len(entries))
	for _, e := range entries {
		taken[e.Timestamp] = true
	}
	entry.WithTimestamp(uniqueTimestamp(entry.Timestamp, taken))

	entries = append(entries, *entry)
	if err := writeCollection(s, storage.BaseExerciseLog, entries); err != nil {
		return fmt.Errorf("save exercise log: %w", err)
	}
	return nil
}

// DeleteExerciseByTimestamp removes the matching entry; no-op on miss.
func (s *Store) DeleteExerciseByTimestamp(ts int64) error {
	entries, err := s.ListExercise()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.Timestamp != ts {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}

	if err := writeCollection(s, storage.BaseExerciseLog, kept); err != nil {
		return fmt.Errorf("save exercise log: %w", err)
	}
	return nil
}
