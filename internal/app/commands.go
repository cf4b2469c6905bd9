package app

import (
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/errmsg"
	"github.com/llehouerou/imusic/internal/playback"
)

// WatchController waits for the next controller event and converts it to
// a tea.Msg. The model re-arms it after each message.
func WatchController(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.SessionChanged:
			return SessionMsg{Session: e.Session}
		case e := <-sub.TrackChanged:
			return TrackMsg{Change: e}
		case e := <-sub.Error:
			return PlaybackErrorMsg{Event: e}
		case <-sub.Done:
			return ControllerClosedMsg{}
		}
	}
}

// LoadPlaylistsCmd fetches the playlist overview.
func LoadPlaylistsCmd(lib Library) tea.Cmd {
	return func() tea.Msg {
		pls, err := lib.LoadPlaylists()
		return PlaylistsLoadedMsg{Playlists: pls, Err: err}
	}
}

// LoadPlaylistCmd fetches one playlist.
func LoadPlaylistCmd(lib Library, id string) tea.Cmd {
	return func() tea.Msg {
		pl, err := lib.GetPlaylistDetails(id)
		return PlaylistLoadedMsg{Playlist: pl, Err: err}
	}
}

// AddSongCmd copies a file into the music folder and refreshes the library.
// Empty title or artist are filled from the file tags.
func AddSongCmd(lib Library, ctrl PlaybackController, path, title, artist string) tea.Cmd {
	return func() tea.Msg {
		_, err := lib.SaveNewSong(title, artist, path)
		if err == nil {
			err = ctrl.LoadCatalog()
		}
		return OpDoneMsg{
			Op:            errmsg.OpSongImport,
			Context:       filepath.Base(path),
			Err:           err,
			ReloadLibrary: true,
		}
	}
}

// CreatePlaylistCmd creates an empty playlist. An empty cover means none.
func CreatePlaylistCmd(lib Library, name, cover string) tea.Cmd {
	var coverPath *string
	if cover != "" {
		coverPath = &cover
	}
	return func() tea.Msg {
		_, err := lib.SavePlaylist(name, coverPath, nil)
		return OpDoneMsg{
			Op:              errmsg.OpPlaylistCreate,
			Context:         name,
			Err:             err,
			ReloadPlaylists: true,
		}
	}
}

// DeleteSongCmd removes a song and refreshes the library.
func DeleteSongCmd(lib Library, ctrl PlaybackController, song catalog.Song) tea.Cmd {
	return func() tea.Msg {
		err := lib.DeleteSong(song.Path)
		if err == nil {
			err = ctrl.LoadCatalog()
		}
		return OpDoneMsg{
			Op:              errmsg.OpSongDelete,
			Context:         song.Title,
			Err:             err,
			ReloadLibrary:   true,
			ReloadPlaylists: true,
		}
	}
}

// DeletePlaylistCmd removes a playlist.
func DeletePlaylistCmd(lib Library, pl catalog.Playlist) tea.Cmd {
	return func() tea.Msg {
		return OpDoneMsg{
			Op:              errmsg.OpPlaylistDelete,
			Context:         pl.Name,
			Err:             lib.DeletePlaylist(pl.ID),
			ReloadPlaylists: true,
		}
	}
}

// MovePlaylistItemCmd moves the item at from to to.
func MovePlaylistItemCmd(lib Library, pl catalog.Playlist, from, to int) tea.Cmd {
	return func() tea.Msg {
		order := catalog.Reorder(pl.Paths(), from, to)
		return OpDoneMsg{
			Op:         errmsg.OpPlaylistMove,
			Context:    pl.Name,
			Err:        lib.UpdatePlaylistSongOrder(pl.ID, order),
			PlaylistID: pl.ID,
		}
	}
}

// RemovePlaylistItemCmd drops the item at index from the playlist.
func RemovePlaylistItemCmd(lib Library, pl catalog.Playlist, index int) tea.Cmd {
	return func() tea.Msg {
		paths := pl.Paths()
		if index >= 0 && index < len(paths) {
			paths = slices.Delete(paths, index, index+1)
		}
		return OpDoneMsg{
			Op:              errmsg.OpPlaylistMove,
			Context:         pl.Name,
			Err:             lib.UpdatePlaylistSongOrder(pl.ID, paths),
			PlaylistID:      pl.ID,
			ReloadPlaylists: true,
		}
	}
}
