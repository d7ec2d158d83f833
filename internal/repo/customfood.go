// ABOUTME: Custom food template repository: saved foods for quick logging.
// ABOUTME: Templates are matched case-insensitively by name.
package repo

import (
	"fmt"
	"strings"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/storage"
)

// ListCustomFoods returns all saved food templates in insertion order.
func (s *Store) ListCustomFoods() ([]models.CustomFood, error) {
	foods, err := readCollection[models.CustomFood](s, storage.BaseCustomFoods)
	if err != nil {
		return nil, fmt.Errorf("list custom foods: %w", err)
	}
	return foods, nil
}

// SaveCustomFood adds or replaces a template by name.
func (s *Store) SaveCustomFood(food *models.CustomFood) error {
	foods, err := s.ListCustomFoods()
	if err != nil {
		return err
	}

	taken := make(map[int64]bool, len(foods))
	replaced := false
	for i, f := range foods {
		if strings.EqualFold(f.Name, food.Name) {
			food.Timestamp = f.Timestamp
			foods[i] = *food
			replaced = true
		}
		taken[f.Timestamp] = true
	}
	if !replaced {
		food.Timestamp = uniqueTimestamp(food.Timestamp, taken)
		foods = append(foods, *food)
	}

	if err := writeCollection(s, storage.BaseCustomFoods, foods); err != nil {
		return fmt.Errorf("save custom foods: %w", err)
	}
	return nil
}

// FindCustomFood returns the template matching name, or nil.
func (s *Store) FindCustomFood(name string) (*models.CustomFood, error) {
	foods, err := s.ListCustomFoods()
	if err != nil {
		return nil, err
	}
	for i := range foods {
		if strings.EqualFold(foods[i].Name, name) {
			return &foods[i], nil
		}
	}
	return nil, nil
}

// DeleteCustomFood removes the template matching name; no-op on miss.
func (s *Store) DeleteCustomFood(name string) error {
	foods, err := s.ListCustomFoods()
	if err != nil {
		return err
	}

	kept := foods[:0]
	for _, f := range foods {
		if !strings.EqualFold(f.Name, name) {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(foods) {
		return nil
	}

	if err := writeCollection(s, storage.BaseCustomFoods, kept); err != nil {
		return fmt.Errorf("save custom foods: %w", err)
	}
	return nil
}
