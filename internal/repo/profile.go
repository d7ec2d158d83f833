// ABOUTME: Profile repository: singleton get/set under the user's namespace.
// ABOUTME: First save synthesizes a weight entry from the profile's initial weight.
package repo

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/storage"
)

// GetProfile returns the user's profile, or nil when never set. A
// stored value that fails to parse is treated as absent, which signals
// the onboarding flow to run setup again.
func (s *Store) GetProfile() (*models.Profile, error) {
	raw, ok, err := s.gw.Get(storage.NamespacedKey(s.userID, storage.BaseProfile))
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

// SaveProfile persists the profile. When no profile existed before,
// the initial weight is also logged as the first weight entry so trend
// views have a starting point.
func (s *Store) SaveProfile(p *models.Profile) error {
	existing, err := s.GetProfile()
	if err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.gw.Set(storage.NamespacedKey(s.userID, storage.BaseProfile), string(data)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	if existing == nil && p.WeightKg > 0 {
		if err := s.AddWeight(models.NewWeightEntry(p.WeightKg)); err != nil {
			return fmt.Errorf("log initial weight: %w", err)
		}
	}
	return nil
}
