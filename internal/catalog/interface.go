// internal/catalog/interface.go
package catalog

// Accessor is the catalog contract used by the controller and front ends.
type Accessor interface {
	LoadLibrary() ([]Song, error)
	SavePlaylist(name string, cover *string, songPaths []string) (*Playlist, error)
	LoadPlaylists() ([]Playlist, error)
	GetPlaylistDetails(id string) (*Playlist, error)
	UpdatePlaylistSongOrder(id string, songPaths []string) error
	AddSongsToPlaylist(id string, songPaths []string) error
	DeletePlaylist(id string) error
	DeleteSong(path string) error
	SaveNewSong(title, artist, sourceFilePath string) (*Song, error)

	MusicFolder() string
	SetMusicFolder(path string) error
	FolderSize() (string, error)
}

// Verify Catalog implements Accessor at compile time.
var _ Accessor = (*Catalog)(nil)
