package app

import (
	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/playback"
)

// PlaybackController is the part of the controller the TUI drives.
type PlaybackController interface {
	Session() playback.Session
	Catalog() []catalog.Song
	Subscribe() *playback.Subscription
	LoadCatalog() error

	Play(song catalog.Song, queue []catalog.Song, cover *string)
	TogglePlayPause()
	Next()
	Previous()
	SkipForward()
	SkipBack()
	SetVolume(level int) error
	ToggleLoop()
}

// Library is the catalog surface the TUI needs, including cover lookup.
type Library interface {
	catalog.Accessor
	CoverFile(pl catalog.Playlist) string
}

// Verify implementations at compile time.
var (
	_ PlaybackController = (*playback.Controller)(nil)
	_ Library            = (*catalog.Catalog)(nil)
)
