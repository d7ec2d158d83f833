// ABOUTME: Weight log repository: list, add, and delete weight entries.
// ABOUTME: Weights are always kilograms; conversion happens at the CLI boundary.
package repo

import (
	"fmt"
	"sort"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/storage"
)

// ListWeights returns all weight entries in insertion order.
func (s *Store) ListWeights() ([]models.WeightEntry, error) {
	entries, err := readCollection[models.WeightEntry](s, storage.BaseWeightLog)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	return entries, nil
}

// ListWeightsByDate returns weight entries sorted oldest first.
func (s *Store) ListWeightsByDate() ([]models.WeightEntry, error) {
	entries, err := s.ListWeights()
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp < entries[j].Timestamp
	})
	return entries, nil
}

// AddWeight appends a weight entry with a unique timestamp id.
func (s *Store) AddWeight(entry *models.WeightEntry) error {
	entries, err := s.ListWeights()
	if err != nil {
		return err
	}

	taken := make(map[int64]bool, len(entries))
	for _, e := range entries {
		taken[e.Timestamp] = true
	}
	entry.WithTimestamp(uniqueTimestamp(entry.Timestamp, taken))

	entries = append(entries, *entry)
	if err := writeCollection(s, storage.BaseWeightLog, entries); err != nil {
		return fmt.Errorf("save weight log: %w", err)
	}
	return nil
}

// DeleteWeightByTimestamp removes the matching entry; no-op on miss.
func (s *Store) DeleteWeightByTimestamp(ts int64) error {
	entries, err := s.ListWeights()
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

	if err := writeCollection(s, storage.BaseWeightLog, kept); err != nil {
		return fmt.Errorf("save weight log: %w", err)
	}
	return nil
}
