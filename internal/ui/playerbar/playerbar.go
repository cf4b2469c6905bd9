// Package playerbar renders the one-line transport bar at the bottom of the
// screen.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/imusic/internal/playback"
	"github.com/llehouerou/imusic/internal/ui/render"
)

// Height is the total height of the bar: border, content, border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	HasSong  bool
	Playing  bool
	Title    string
	Artist   string
	Position time.Duration
	Duration time.Duration
	Volume   int
	Looping  bool
}

// NewState builds a State from a session snapshot.
func NewState(s playback.Session) State {
	st := State{
		Playing:  s.IsPlaying,
		Position: s.CurrentTime,
		Duration: s.Duration,
		Volume:   s.Volume,
		Looping:  s.IsLooping,
	}
	if s.CurrentSong != nil {
		st.HasSong = true
		st.Title = s.CurrentSong.Title
		st.Artist = s.CurrentSong.Artist
	}
	return st
}

// Render returns the player bar for the given total width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0)

	right := fmt.Sprintf("%s  vol %3d%%", loopStyle(s.Looping).Render(loopSymbol), s.Volume)
	rightWidth := lipgloss.Width(right)

	if !s.HasSong {
		left := artistStyle().Render("No song selected")
		return barStyle().Padding(0, 2).Width(width - 2).Render(render.Row(left, right, innerWidth))
	}

	status := pauseSymbol
	if s.Playing {
		status = playSymbol
	}

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}
	artist := s.Artist
	if artist == "" {
		artist = "Unknown Artist"
	}

	timeStr := formatDuration(s.Position) + " / " + formatDuration(s.Duration)
	const sep = "   "

	// title + artist get at most half of the line
	infoMax := max(innerWidth/2, 10)
	titleText := render.Truncate(title, infoMax)
	artistText := render.Truncate(artist, max(infoMax-lipgloss.Width(titleText)-3, 0))
	info := titleStyle().Render(titleText)
	if artistText != "" {
		info += " · " + artistStyle().Render(artistText)
	}

	fixed := lipgloss.Width(info) + len(sep)*3 + lipgloss.Width(status) + 1 +
		lipgloss.Width(timeStr) + rightWidth
	barWidth := max(innerWidth-fixed, 5)

	var b strings.Builder
	b.WriteString(info)
	b.WriteString(sep)
	b.WriteString(status)
	b.WriteString(" ")
	b.WriteString(progressBar(s.Position, s.Duration, barWidth))
	b.WriteString(sep)
	b.WriteString(timeStr)
	b.WriteString(sep)
	b.WriteString(right)

	return barStyle().Padding(0, 2).Width(width - 2).Render(b.String())
}

func progressBar(pos, dur time.Duration, width int) string {
	var ratio float64
	if dur > 0 {
		ratio = min(float64(pos)/float64(dur), 1)
	}
	filled := min(int(float64(width)*ratio), width)
	return progressBarFilled().Render(strings.Repeat("━", filled)) +
		progressBarEmpty().Render(strings.Repeat("─", width-filled))
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
