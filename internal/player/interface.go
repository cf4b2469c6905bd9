// internal/player/interface.go
package player

import (
	"time"
)

// Interface is the playback engine contract used by the controller.
// Implementations never start playback from Load; only Play does.
type Interface interface {
	Load(path string) error
	Play() error
	Pause()
	SeekTo(pos time.Duration)
	Seek(delta time.Duration)
	SetVolume(level int)
	SetLoop(loop bool)
	Events() <-chan Event
	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
