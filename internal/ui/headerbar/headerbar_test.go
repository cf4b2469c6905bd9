package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender_ShowsTabs(t *testing.T) {
	out := Render("library", "", 80)

	for _, want := range []string{"iMusic", "Library", "Playlists"} {
		if !strings.Contains(out, want) {
			t.Errorf("header %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "\n") {
		t.Error("header spans more than one line")
	}
}

func TestRender_PlaylistName(t *testing.T) {
	if out := Render("playlist", "Mixtape", 80); !strings.Contains(out, "Mixtape") {
		t.Errorf("header %q missing playlist name", out)
	}
	if out := Render("playlists", "Mixtape", 80); strings.Contains(out, "Mixtape") {
		t.Errorf("header %q shows playlist name outside the playlist view", out)
	}
}

func TestRender_FitsWidth(t *testing.T) {
	out := Render("playlist", "A very long playlist name that overflows", 30)
	if w := lipgloss.Width(out); w > 30 {
		t.Errorf("width = %d, want <= 30", w)
	}
}
