package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/playback"
	"github.com/llehouerou/imusic/internal/ui"
	"github.com/llehouerou/imusic/internal/ui/confirm"
	"github.com/llehouerou/imusic/internal/ui/form"
	"github.com/llehouerou/imusic/internal/ui/headerbar"
	"github.com/llehouerou/imusic/internal/ui/list"
	"github.com/llehouerou/imusic/internal/ui/playerbar"
)

// ViewMode selects the main panel.
type ViewMode string

const (
	ViewLibrary   ViewMode = "library"
	ViewPlaylists ViewMode = "playlists"
	ViewPlaylist  ViewMode = "playlist"
)

const statusHeight = 1

// playlistRow is a playlist entry joined with its library song. Song is nil
// when the file was removed from the library.
type playlistRow struct {
	Item catalog.PlaylistItem
	Song *catalog.Song
}

// Model is the root TUI model.
type Model struct {
	ctrl PlaybackController
	lib  Library
	sub  *playback.Subscription

	Session playback.Session
	Mode    ViewMode

	Songs     list.Model[catalog.Song]
	Playlists list.Model[catalog.Playlist]
	Rows      list.Model[playlistRow]
	Open      *catalog.Playlist
	Confirm   confirm.Model
	Form      form.Model

	Status    string
	StatusErr bool

	Width  int
	Height int
}

// NewModel builds the TUI on top of a started controller.
func NewModel(ctrl PlaybackController, lib Library) Model {
	m := Model{
		ctrl:      ctrl,
		lib:       lib,
		sub:       ctrl.Subscribe(),
		Session:   ctrl.Session(),
		Songs:     list.New[catalog.Song](ui.ScrollMargin),
		Playlists: list.New[catalog.Playlist](ui.ScrollMargin),
		Rows:      list.New[playlistRow](ui.ScrollMargin),
		Confirm:   confirm.New(),
		Form:      form.New(),
	}
	m.Songs.SetItems(ctrl.Catalog())
	if i := catalog.IndexOf(m.Songs.Items(), m.Session.SongPath()); i >= 0 {
		m.Songs.Select(i)
	}
	m.setMode(ViewLibrary)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(WatchController(m.sub), LoadPlaylistsCmd(m.lib))
}

func (m *Model) setMode(mode ViewMode) {
	m.Mode = mode
	m.Songs.SetFocused(mode == ViewLibrary)
	m.Playlists.SetFocused(mode == ViewPlaylists)
	m.Rows.SetFocused(mode == ViewPlaylist)
}

// panelHeight is whatever the bars leave.
func (m Model) panelHeight() int {
	return max(m.Height-headerbar.Height-statusHeight-playerbar.Height, 0)
}

func (m *Model) resize() {
	h := m.panelHeight()
	m.Confirm.SetSize(m.Width, h)
	m.Form.SetSize(m.Width, h)
	m.Songs.SetSize(m.Width, h)
	m.Playlists.SetSize(m.Width, h)
	m.Rows.SetSize(m.Width, h)
}

func (m *Model) setPlaylist(pl *catalog.Playlist) {
	m.Open = pl
	byPath := lo.KeyBy(m.ctrl.Catalog(), func(s catalog.Song) string { return s.Path })
	items := slices.Clone(pl.Songs)
	slices.SortStableFunc(items, func(a, b catalog.PlaylistItem) int { return a.Position - b.Position })

	rows := make([]playlistRow, 0, len(items))
	for _, item := range items {
		row := playlistRow{Item: item}
		if s, ok := byPath[item.SongPath]; ok {
			row.Song = &s
		}
		rows = append(rows, row)
	}
	m.Rows.SetItems(rows)
}

func (m *Model) setError(msg string) {
	m.Status = msg
	m.StatusErr = msg != ""
}

func (m *Model) setInfo(msg string) {
	m.Status = msg
	m.StatusErr = false
}
