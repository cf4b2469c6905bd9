// internal/nowplaying/mock.go
package nowplaying

import (
	"sync"
	"time"
)

// Push is one recorded UpdateNowPlaying call.
type Push struct {
	Meta      Metadata
	Transport TransportInfo
}

// Mock is a recording Sink for tests.
type Mock struct {
	mu         sync.Mutex
	initCalls  int
	initErr    error
	pushes     []Push
	positions  []time.Duration
	posErr     error
	pushErr    error
	clearCalls int
}

// NewMock creates a new recording sink.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Initialize(string, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initCalls++
	return m.initErr
}

func (m *Mock) UpdateNowPlaying(meta Metadata, transport TransportInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushes = append(m.pushes, Push{Meta: meta, Transport: transport})
	return m.pushErr
}

func (m *Mock) UpdatePosition(pos time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions = append(m.positions, pos)
	return m.posErr
}

func (m *Mock) ClearNowPlaying() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearCalls++
	return nil
}

// Test helpers

func (m *Mock) SetInitError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initErr = err
}

func (m *Mock) SetPushError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushErr = err
}

func (m *Mock) SetPositionError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posErr = err
}

func (m *Mock) InitCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initCalls
}

func (m *Mock) Pushes() []Push {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Push(nil), m.pushes...)
}

func (m *Mock) Positions() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.positions...)
}

func (m *Mock) ClearCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearCalls
}

// Verify Mock implements Sink at compile time.
var _ Sink = (*Mock)(nil)
