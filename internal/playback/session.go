package playback

import (
	"time"

	"github.com/llehouerou/imusic/internal/catalog"
)

// Session is the authoritative playback state. Values returned by the
// Controller are copies.
type Session struct {
	CurrentSong      *catalog.Song
	IsPlaying        bool
	CurrentTime      time.Duration
	Duration         time.Duration // 0 while unknown
	Volume           int           // 0..100
	IsLooping        bool
	ActiveQueueCover *string
}

// HasSong reports whether a song is selected.
func (s Session) HasSong() bool {
	return s.CurrentSong != nil
}

// SongPath returns the current song path, or "".
func (s Session) SongPath() string {
	if s.CurrentSong == nil {
		return ""
	}
	return s.CurrentSong.Path
}

func (s Session) clone() Session {
	out := s
	if s.CurrentSong != nil {
		song := *s.CurrentSong
		out.CurrentSong = &song
	}
	if s.ActiveQueueCover != nil {
		cover := *s.ActiveQueueCover
		out.ActiveQueueCover = &cover
	}
	return out
}
