// internal/state/mock.go
package state

import (
	"sync"
)

// Mock is an in-memory Store for tests.
type Mock struct {
	mu       sync.Mutex
	values   map[string]string
	getErr   error
	setErr   error
	setCalls []string
}

// NewMock creates an empty mock store.
func NewMock() *Mock {
	return &Mock{values: make(map[string]string)}
}

func (m *Mock) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Mock) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls = append(m.setCalls, key)
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

// Test helpers

// Put stores a value without recording a Set call.
func (m *Mock) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Value returns the stored value for key.
func (m *Mock) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Mock) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

func (m *Mock) SetSetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}

// SetCalls returns the keys passed to Set, in order.
func (m *Mock) SetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.setCalls))
	copy(out, m.setCalls)
	return out
}

// Verify Mock implements Store at compile time.
var _ Store = (*Mock)(nil)
