package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/playback"
)

func TestNewState(t *testing.T) {
	s := NewState(playback.Session{
		CurrentSong: &catalog.Song{Path: "/m/a.mp3", Title: "Alpha", Artist: "Ann"},
		IsPlaying:   true,
		CurrentTime: 30 * time.Second,
		Duration:    3 * time.Minute,
		Volume:      55,
		IsLooping:   true,
	})

	assert.Equal(t, State{
		HasSong:  true,
		Playing:  true,
		Title:    "Alpha",
		Artist:   "Ann",
		Position: 30 * time.Second,
		Duration: 3 * time.Minute,
		Volume:   55,
		Looping:  true,
	}, s)
}

func TestRender_NoSong(t *testing.T) {
	out := Render(State{Volume: 40}, 80)
	assert.Contains(t, out, "No song selected")
	assert.Contains(t, out, "vol  40%")
	assert.Len(t, strings.Split(out, "\n"), Height)
}

func TestRender_Playing(t *testing.T) {
	out := Render(State{
		HasSong:  true,
		Playing:  true,
		Title:    "Alpha",
		Position: 83 * time.Second,
		Duration: 238 * time.Second,
		Volume:   100,
	}, 100)

	assert.Contains(t, out, playSymbol)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Unknown Artist")
	assert.Contains(t, out, "1:23 / 3:58")
	assert.Contains(t, out, "vol 100%")
}

func TestProgressBar_Clamps(t *testing.T) {
	assert.Equal(t, 10, lipgloss.Width(progressBar(5*time.Minute, time.Minute, 10)))
	assert.Equal(t, 10, lipgloss.Width(progressBar(0, 0, 10)))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", formatDuration(0))
	assert.Equal(t, "3:58", formatDuration(238*time.Second))
	assert.Equal(t, "61:01", formatDuration(time.Hour+61*time.Second))
}
