package player

import (
	"time"
)

// EventKind identifies an engine notification.
type EventKind int

const (
	// TimeUpdate carries the current position while playing.
	TimeUpdate EventKind = iota
	// MetadataLoaded carries the duration of the freshly loaded track.
	MetadataLoaded
	// Ended fires when the track reaches its natural end. Never sent while looping.
	Ended
	// ExternalPlay reports playback started outside a Play call. Player never
	// sends it since it only resumes on Play; Mock emits it for tests.
	ExternalPlay
	// ExternalPause fires when the engine stops playing on its own,
	// for example after a decode error.
	ExternalPause
)

// String returns the kind name for logging.
func (k EventKind) String() string {
	switch k {
	case TimeUpdate:
		return "TimeUpdate"
	case MetadataLoaded:
		return "MetadataLoaded"
	case Ended:
		return "Ended"
	case ExternalPlay:
		return "ExternalPlay"
	case ExternalPause:
		return "ExternalPause"
	default:
		return "Unknown"
	}
}

// Event is a notification emitted by the engine.
type Event struct {
	Kind     EventKind
	Path     string        // track the event refers to, empty when unknown
	Position time.Duration // TimeUpdate
	Duration time.Duration // MetadataLoaded
	Err      error         // ExternalPause caused by a stream failure
}
