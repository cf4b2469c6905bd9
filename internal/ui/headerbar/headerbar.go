// Package headerbar renders the title and view tabs on the first line.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/imusic/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const title = " iMusic "

// tab represents a header bar tab.
type tab struct {
	name  string
	modes []string
}

var tabs = []tab{
	{"Library", []string{"library"}},
	{"Playlists", []string{"playlists", "playlist"}},
}

// Render returns the header bar for the given width. currentMode is
// "library", "playlists" or "playlist"; the last two share a tab.
// playlist names the open playlist, if any.
func Render(currentMode, playlist string, width int) string {
	t := styles.T()
	s := t.S()

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		style := s.Muted
		for _, m := range tb.modes {
			if m == currentMode {
				style = s.Playing
			}
		}
		parts = append(parts, style.Render(tb.name))
	}
	content := styles.Gradient(title, t.Primary, t.Secondary) + " " +
		strings.Join(parts, s.Subtle.Render(" │ "))

	if playlist != "" && currentMode == "playlist" {
		content += s.Subtle.Render(" › ") + s.Base.Render(playlist)
	}

	if lipgloss.Width(content) > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(content)
	}
	return content
}
