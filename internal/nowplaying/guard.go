package nowplaying

import (
	"sync"
)

// Guard wraps a Sink so initialization happens once. After a success,
// EnsureInitialized is a cheap flag check; after a failure the next call
// tries again.
type Guard struct {
	Sink

	appID       string
	displayName string

	mu          sync.Mutex
	initialized bool
}

// NewGuard returns a Guard that initializes sink with appID and displayName.
func NewGuard(sink Sink, appID, displayName string) *Guard {
	return &Guard{Sink: sink, appID: appID, displayName: displayName}
}

// EnsureInitialized initializes the sink unless that already succeeded.
func (g *Guard) EnsureInitialized() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized {
		return nil
	}
	if err := g.Sink.Initialize(g.appID, g.displayName); err != nil {
		return err
	}
	g.initialized = true
	return nil
}

// Initialized reports whether initialization has succeeded.
func (g *Guard) Initialized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.initialized
}
