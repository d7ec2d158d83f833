// ABOUTME: Store binds a Gateway to one user's namespace and handles JSON codec.
// ABOUTME: Unparsable stored values are masked as absent, never surfaced as errors.
package repo

import (
	"encoding/json"
	"time"

	"github.com/harperreed/balance/internal/storage"
)

// Store provides typed record access for a single user's namespace.
// All mutations are whole-collection read-modify-write through the
// Gateway; last write wins.
type Store struct {
	gw     storage.Gateway
	userID string
}

// NewStore creates a store scoped to the given user.
func NewStore(gw storage.Gateway, userID string) *Store {
	return &Store{gw: gw, userID: userID}
}

// UserID returns the namespace this store operates on.
func (s *Store) UserID() string {
	return s.userID
}

// readCollection loads a JSON array collection. A missing key or a
// value that fails to parse yields the empty collection: availability
// over surfacing corruption.
func readCollection[T any](s *Store, baseKey string) ([]T, error) {
	raw, ok, err := s.gw.Get(storage.NamespacedKey(s.userID, baseKey))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// writeCollection persists a full collection back through the gateway.
func writeCollection[T any](s *Store, baseKey string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.gw.Set(storage.NamespacedKey(s.userID, baseKey), string(data))
}

// uniqueTimestamp returns ts, bumped forward until it collides with no
// entry in taken. A zero ts is replaced with the current time. Bumping
// instead of overwriting keeps timestamp ids unique within a namespace.
func uniqueTimestamp(ts int64, taken map[int64]bool) int64 {
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	for taken[ts] {
		ts++
	}
	return ts
}
