// Package catalog stores the song library and playlists.
package catalog

import (
	"github.com/cockroachdb/errors"
)

// Song is a library entry. Path is its stable key.
type Song struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	Index    *int   `json:"index,omitempty"`
}

// PlaylistItem is one ordered entry of a playlist.
type PlaylistItem struct {
	Position int    `json:"position"`
	SongPath string `json:"songPath"`
}

// Playlist is a named, ordered list of song paths.
type Playlist struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CoverImagePath *string        `json:"coverImagePath,omitempty"`
	Songs          []PlaylistItem `json:"songs"`
}

// Paths returns the song paths in play order.
func (p Playlist) Paths() []string {
	paths := make([]string, len(p.Songs))
	for i, item := range sortedItems(p.Songs) {
		paths[i] = item.SongPath
	}
	return paths
}

var (
	// ErrPlaylistNotFound is returned when no playlist has the given id.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrSongNotFound is returned when no library song has the given path.
	ErrSongNotFound = errors.New("song not found")
	// ErrNoMusicFolder is returned when a file operation needs the music folder
	// and none is configured.
	ErrNoMusicFolder = errors.New("music folder not configured")
	// ErrSongExists is returned when the target path is already in the library.
	ErrSongExists = errors.New("song already in library")
)
