// Package app wires the services together and hosts the root TUI model.
package app

import (
	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/errmsg"
	"github.com/llehouerou/imusic/internal/playback"
)

// SessionMsg carries a controller session snapshot.
type SessionMsg struct {
	Session playback.Session
}

// TrackMsg is sent when a track starts.
type TrackMsg struct {
	Change playback.TrackChange
}

// PlaybackErrorMsg is sent when the engine refuses a load or play.
type PlaybackErrorMsg struct {
	Event playback.ErrorEvent
}

// ControllerClosedMsg is sent when the controller shuts down.
type ControllerClosedMsg struct{}

// PlaylistsLoadedMsg carries the playlist overview.
type PlaylistsLoadedMsg struct {
	Playlists []catalog.Playlist
	Err       error
}

// PlaylistLoadedMsg carries one playlist with its items.
type PlaylistLoadedMsg struct {
	Playlist *catalog.Playlist
	Err      error
}

// OpDoneMsg reports a finished catalog mutation.
type OpDoneMsg struct {
	Op      errmsg.Op
	Context string
	Err     error
	// Reload tells which views must refresh.
	ReloadLibrary   bool
	ReloadPlaylists bool
	PlaylistID      string
}
