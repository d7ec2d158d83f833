// ABOUTME: Gateway interface for the flat key-value storage contract.
// ABOUTME: Allows swapping badger, sqlite, and in-memory backends.
package storage

// Gateway is the flat string-to-string storage contract the rest of the
// system is built on. Writes are immediately durable; there is no
// buffering or batching. Implementations: badger (default), sqlite,
// and an in-memory map for tests.
type Gateway interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
	// Keys returns every key in the store.
	Keys() ([]string, error)
	// Close releases the underlying medium.
	Close() error
}
