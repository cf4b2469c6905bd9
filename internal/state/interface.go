// internal/state/interface.go
package state

// Store is a string key/value store that survives process restarts.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set overwrites the value for key.
	Set(key, value string) error
}

// Verify Manager implements Store at compile time.
var _ Store = (*Manager)(nil)
