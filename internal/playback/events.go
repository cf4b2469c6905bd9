package playback

import (
	"github.com/llehouerou/imusic/internal/catalog"
)

// SessionChange carries a snapshot taken after any state mutation.
type SessionChange struct {
	Session Session
}

// TrackChange is emitted each time Play starts a track, including
// next/previous resolution and automatic advance at track end.
//
// The app handles track-related side effects (notifications) in response
// to this event.
type TrackChange struct {
	Previous *catalog.Song
	Current  catalog.Song
	Cover    *string
}

// ErrorEvent is emitted when a user-initiated action fails in the engine.
type ErrorEvent struct {
	Operation string // e.g., "load", "play"
	Path      string // track path if applicable
	Err       error
}
