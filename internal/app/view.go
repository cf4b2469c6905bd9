package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/keymap"
	"github.com/llehouerou/imusic/internal/ui"
	"github.com/llehouerou/imusic/internal/ui/headerbar"
	"github.com/llehouerou/imusic/internal/ui/list"
	"github.com/llehouerou/imusic/internal/ui/playerbar"
	"github.com/llehouerou/imusic/internal/ui/render"
	"github.com/llehouerou/imusic/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderPanel(),
		m.renderStatus(),
		playerbar.Render(playerbar.NewState(m.Session), m.Width),
	)
}

func (m Model) renderHeader() string {
	name := ""
	if m.Open != nil {
		name = m.Open.Name
	}
	return headerbar.Render(string(m.Mode), name, m.Width)
}

func (m Model) renderPanel() string {
	if m.Confirm.Active() {
		return m.Confirm.View()
	}
	if m.Form.Active() {
		return m.Form.View()
	}
	var title string
	var lines []string
	inner := max(m.Width-2, 0)

	switch m.Mode {
	case ViewLibrary:
		title = render.Columns(inner, songColumns(inner), "Title", "Artist", "Time")
		lines = renderRows(m.Songs, inner, func(s catalog.Song) (string, bool) {
			return render.Columns(inner, songColumns(inner), s.Title, s.Artist, s.Duration),
				s.Path == m.Session.SongPath()
		})
	case ViewPlaylists:
		title = render.Columns(inner, []int{inner * 2 / 3}, "Playlist", "Songs")
		lines = renderRows(m.Playlists, inner, func(pl catalog.Playlist) (string, bool) {
			return render.Columns(inner, []int{inner * 2 / 3}, pl.Name, strconv.Itoa(len(pl.Songs))), false
		})
	case ViewPlaylist:
		name := ""
		if m.Open != nil {
			name = m.Open.Name
		}
		title = render.Fit(name, inner)
		lines = renderRows(m.Rows, inner, func(r playlistRow) (string, bool) {
			if r.Song == nil {
				return styles.T().S().Subtle.Render(render.Fit("(missing) "+r.Item.SongPath, inner)), false
			}
			return render.Columns(inner, songColumns(inner), r.Song.Title, r.Song.Artist, r.Song.Duration),
				r.Song.Path == m.Session.SongPath()
		})
	}

	h := max(m.panelHeight(), ui.BorderHeight)
	body := []string{
		styles.T().S().Title.Render(title),
		styles.T().S().Subtle.Render(strings.Repeat("─", inner)),
	}
	body = append(body, lines...)
	content := strings.Join(body, "\n")

	return styles.PanelStyle(true).
		Width(inner).
		Height(max(h-ui.BorderHeight, 0)).
		MaxHeight(h).
		Render(content)
}

func songColumns(width int) []int {
	return []int{width / 2, width * 3 / 10}
}

// renderRows renders the visible part of l; line reports whether an item is
// the playing song.
func renderRows[T any](l list.Model[T], width int, line func(T) (string, bool)) []string {
	s := styles.T().S()
	start, end := l.VisibleRange()
	items := l.Items()
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		text, playing := line(items[i])
		switch {
		case i == l.SelectedIndex():
			text = s.Cursor.Width(width).Render(text)
		case playing:
			text = s.Playing.Render(text)
		}
		out = append(out, text)
	}
	return out
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.Status != "" {
		style := s.Muted
		if m.StatusErr {
			style = s.Error
		}
		return style.Render(render.Truncate(m.Status, m.Width))
	}
	return s.Subtle.Render(render.Truncate(m.hints(), m.Width))
}

// hints lists the bindings of the current view, then the playback ones.
func (m Model) hints() string {
	var parts []string
	for _, ctx := range []string{string(m.Mode), keymap.ContextPlayback, keymap.ContextGlobal} {
		for _, b := range keymap.ByContext(ctx) {
			parts = append(parts, keymap.Label(b.Keys[0])+" "+b.Description)
		}
	}
	return strings.Join(parts, "  ")
}
