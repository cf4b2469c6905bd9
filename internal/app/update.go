package app

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/errmsg"
	"github.com/llehouerou/imusic/internal/ui/confirm"
	"github.com/llehouerou/imusic/internal/ui/form"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SessionMsg:
		m.Session = msg.Session
		return m, WatchController(m.sub)

	case TrackMsg:
		if m.StatusErr {
			m.setInfo("")
		}
		return m, WatchController(m.sub)

	case PlaybackErrorMsg:
		e := msg.Event
		m.setError(errmsg.FormatWith(errmsg.ForPlayback(e.Operation), filepath.Base(e.Path), e.Err))
		return m, WatchController(m.sub)

	case ControllerClosedMsg:
		return m, tea.Quit

	case PlaylistsLoadedMsg:
		if msg.Err != nil {
			m.setError(errmsg.Format(errmsg.OpPlaylistLoad, msg.Err))
			return m, nil
		}
		m.Playlists.SetItems(msg.Playlists)
		return m, nil

	case PlaylistLoadedMsg:
		if msg.Err != nil {
			m.setError(errmsg.Format(errmsg.OpPlaylistLoad, msg.Err))
			return m, nil
		}
		if m.Open == nil || m.Open.ID != msg.Playlist.ID {
			m.Rows.Select(0)
		}
		m.setPlaylist(msg.Playlist)
		m.setMode(ViewPlaylist)
		return m, nil

	case OpDoneMsg:
		return m.handleOpDone(msg)

	case confirm.Result:
		if !msg.Confirmed {
			return m, nil
		}
		switch target := msg.Context.(type) {
		case catalog.Song:
			return m, DeleteSongCmd(m.lib, m.ctrl, target)
		case catalog.Playlist:
			return m, DeletePlaylistCmd(m.lib, target)
		}

	case form.Result:
		return m.handleFormResult(msg)

	default:
		if m.Form.Active() {
			return m, m.Form.Update(msg)
		}
	}
	return m, nil
}

func (m Model) handleOpDone(msg OpDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.setError(errmsg.FormatWith(msg.Op, msg.Context, msg.Err))
	}

	var cmds []tea.Cmd
	if msg.ReloadLibrary {
		m.Songs.SetItems(m.ctrl.Catalog())
	}
	if msg.ReloadPlaylists {
		cmds = append(cmds, LoadPlaylistsCmd(m.lib))
	}
	if m.Open != nil && m.Mode == ViewPlaylist && (msg.PlaylistID == m.Open.ID || msg.ReloadLibrary) {
		cmds = append(cmds, LoadPlaylistCmd(m.lib, m.Open.ID))
	}
	return m, tea.Batch(cmds...)
}
