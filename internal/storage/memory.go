// ABOUTME: In-memory Gateway backend used as the test double.
// ABOUTME: Behaves identically to the persistent backends minus durability.
package storage

import "sort"

// MemoryGateway is a map-backed Gateway. It is not safe for concurrent
// use; the core assumes a single active execution context.
type MemoryGateway struct {
	data map[string]string
}

// NewMemoryGateway creates an empty in-memory store.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{data: make(map[string]string)}
}

func (m *MemoryGateway) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryGateway) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemoryGateway) Remove(key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryGateway) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryGateway) Close() error {
	return nil
}
