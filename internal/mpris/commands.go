// Package mpris exposes the player on the session bus as an MPRIS media player.
package mpris

import (
	"time"
)

// Commands receives transport requests coming from the OS.
type Commands interface {
	TogglePlayPause()
	Resume()
	Pause()
	Next()
	Previous()
	Seek(pos time.Duration)
	SkipRelative(delta time.Duration)
	SetLoop(loop bool)
	SetVolume(level int) error
	Volume() int
}
