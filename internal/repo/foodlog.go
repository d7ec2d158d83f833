// ABOUTME: Food log repository: list, add, and delete food entries.
// ABOUTME: Entries keep insertion order; callers sort by date when needed.
package repo

import (
	"fmt"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/storage"
)

// ListFood returns all food entries in insertion order.
func (s *Store) ListFood() ([]models.FoodEntry, error) {
	entries, err := readCollection[models.FoodEntry](s, storage.BaseFoodLog)
	if err != nil {
		return nil, fmt.Errorf("list food: %w", err)
	}
	return entries, nil
}

// AddFood appends a food entry, assigning a unique timestamp id when
// absent and rederiving the date from the final timestamp.
func (s *Store) AddFood(entry *models.FoodEntry) error {
	entries, err := s.ListFood()
	if err != nil {
		return err
	}

	taken := make(map[int64]bool, len(entries))
	for _, e := range entries {
		taken[e.Timestamp] = true
	}
	entry.WithTimestamp(uniqueTimestamp(entry.Timestamp, taken))

	entries = append(entries, *entry)
	if err := writeCollection(s, storage.BaseFoodLog, entries); err != nil {
		return fmt.Errorf("save food log: %w", err)
	}
	return nil
}

// DeleteFoodByTimestamp removes the matching entry. Deleting a missing
// timestamp is a no-op.
func (s *Store) DeleteFoodByTimestamp(ts int64) error {
	entries, err := s.ListFood()
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

	if err := writeCollection(s, storage.BaseFoodLog, kept); err != nil {
		return fmt.Errorf("save food log: %w", err)
	}
	return nil
}
