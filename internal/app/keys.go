package app

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/errmsg"
	"github.com/llehouerou/imusic/internal/keymap"
	"github.com/llehouerou/imusic/internal/ui/form"
	"github.com/llehouerou/imusic/internal/ui/list"
)

const volumeStep = 5

var keys = keymap.NewResolver(keymap.All)

// handleGlobalKey handles keys that work in every view.
func (m Model) handleGlobalKey(key string) (Model, tea.Cmd, bool) {
	switch keys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit, true
	case keymap.ActionPlayPause:
		m.ctrl.TogglePlayPause()
	case keymap.ActionNext:
		m.ctrl.Next()
	case keymap.ActionPrevious:
		m.ctrl.Previous()
	case keymap.ActionSkipForward:
		m.ctrl.SkipForward()
	case keymap.ActionSkipBack:
		m.ctrl.SkipBack()
	case keymap.ActionVolumeUp:
		m.changeVolume(volumeStep)
	case keymap.ActionVolumeDown:
		m.changeVolume(-volumeStep)
	case keymap.ActionToggleLoop:
		m.ctrl.ToggleLoop()
	case keymap.ActionSwitchView:
		if m.Mode == ViewLibrary {
			m.setMode(ViewPlaylists)
		} else {
			m.setMode(ViewLibrary)
		}
	case keymap.ActionBack:
		if m.Mode != ViewPlaylist {
			return m, nil, false
		}
		m.setMode(ViewPlaylists)
	case keymap.ActionAdd:
		return m.openForm()
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m *Model) changeVolume(delta int) {
	level := min(max(m.ctrl.Session().Volume+delta, 0), 100)
	if err := m.ctrl.SetVolume(level); err != nil {
		m.setError(errmsg.Format(errmsg.OpVolumeSet, err))
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Confirm.Active() {
		cmd := m.Confirm.Update(msg)
		return m, cmd
	}
	if m.Form.Active() {
		cmd := m.Form.Update(msg)
		return m, cmd
	}
	if next, cmd, ok := m.handleGlobalKey(msg.String()); ok {
		return next, cmd
	}

	switch m.Mode {
	case ViewLibrary:
		return m.handleLibraryResult(m.Songs.Update(msg))
	case ViewPlaylists:
		return m.handlePlaylistsResult(m.Playlists.Update(msg))
	case ViewPlaylist:
		return m.handlePlaylistResult(m.Rows.Update(msg))
	}
	return m, nil
}

func (m Model) handleLibraryResult(res list.Result) (tea.Model, tea.Cmd) {
	song, ok := m.Songs.Selected()
	if !ok {
		return m, nil
	}
	switch res.Action {
	case list.ActionEnter:
		m.setInfo("")
		m.ctrl.Play(song, nil, nil)
	case list.ActionDelete:
		m.Confirm.Show("Delete song?", song.Title+" will be removed from the library and every playlist.", song)
	case list.ActionNone, list.ActionMoveUp, list.ActionMoveDown:
	}
	return m, nil
}

func (m Model) handlePlaylistsResult(res list.Result) (tea.Model, tea.Cmd) {
	pl, ok := m.Playlists.Selected()
	if !ok {
		return m, nil
	}
	switch res.Action {
	case list.ActionEnter:
		return m, LoadPlaylistCmd(m.lib, pl.ID)
	case list.ActionDelete:
		m.Confirm.Show("Delete playlist?", pl.Name+" will be deleted. Its songs stay in the library.", pl)
	case list.ActionNone, list.ActionMoveUp, list.ActionMoveDown:
	}
	return m, nil
}

func (m Model) handlePlaylistResult(res list.Result) (tea.Model, tea.Cmd) {
	if m.Open == nil || res.Index < 0 {
		return m, nil
	}
	pl := *m.Open
	switch res.Action {
	case list.ActionEnter:
		row, _ := m.Rows.Selected()
		if row.Song == nil {
			m.setError("Missing file: " + filepath.Base(row.Item.SongPath))
			return m, nil
		}
		m.setInfo("")
		var cover *string
		if c := m.lib.CoverFile(pl); c != "" {
			cover = &c
		}
		m.ctrl.Play(*row.Song, catalog.Resolve(pl, m.ctrl.Catalog()), cover)
	case list.ActionDelete:
		return m, RemovePlaylistItemCmd(m.lib, pl, res.Index)
	case list.ActionMoveUp:
		if res.Index == 0 {
			return m, nil
		}
		m.Rows.Select(res.Index - 1)
		return m, MovePlaylistItemCmd(m.lib, pl, res.Index, res.Index-1)
	case list.ActionMoveDown:
		if res.Index >= m.Rows.Len()-1 {
			return m, nil
		}
		m.Rows.Select(res.Index + 1)
		return m, MovePlaylistItemCmd(m.lib, pl, res.Index, res.Index+1)
	case list.ActionNone:
	}
	return m, nil
}

// addSongForm and newPlaylistForm tag form results.
type (
	addSongForm     struct{}
	newPlaylistForm struct{}
)

func (m Model) openForm() (Model, tea.Cmd, bool) {
	switch m.Mode {
	case ViewLibrary:
		cmd := m.Form.Show("Add song", addSongForm{},
			form.Field{Label: "File", Placeholder: "/path/to/song.mp3"},
			form.Field{Label: "Title", Placeholder: "from tags"},
			form.Field{Label: "Artist", Placeholder: "from tags"},
		)
		return m, cmd, true
	case ViewPlaylists:
		cmd := m.Form.Show("New playlist", newPlaylistForm{},
			form.Field{Label: "Name"},
			form.Field{Label: "Cover image", Placeholder: "optional"},
		)
		return m, cmd, true
	case ViewPlaylist:
	}
	return m, nil, false
}

// handleFormResult starts the catalog change a submitted form asks for.
func (m Model) handleFormResult(res form.Result) (tea.Model, tea.Cmd) {
	if res.Canceled {
		return m, nil
	}
	v := make([]string, len(res.Values))
	for i, s := range res.Values {
		v[i] = strings.TrimSpace(s)
	}

	switch res.Context.(type) {
	case addSongForm:
		if len(v) != 3 || v[0] == "" {
			m.setError("A file is required to add a song")
			return m, nil
		}
		return m, AddSongCmd(m.lib, m.ctrl, v[0], v[1], v[2])
	case newPlaylistForm:
		if len(v) != 2 || v[0] == "" {
			m.setError("A playlist needs a name")
			return m, nil
		}
		return m, CreatePlaylistCmd(m.lib, v[0], v[1])
	}
	return m, nil
}
