package notify

import (
	"sync"

	"github.com/llehouerou/imusic/internal/nowplaying"
)

// TrackAnnouncer shows one notification per track change, replacing the
// previous one so they never stack up.
type TrackAnnouncer struct {
	notifier Notifier
	timeout  int32

	mu     sync.Mutex
	lastID uint32
}

// NewTrackAnnouncer returns an announcer sending through n. timeout is in
// milliseconds.
func NewTrackAnnouncer(n Notifier, timeout int32) *TrackAnnouncer {
	return &TrackAnnouncer{notifier: n, timeout: timeout}
}

// Announce notifies that trackPath started. The icon is the queue cover
// when set, otherwise folder art next to the track.
func (a *TrackAnnouncer) Announce(title, artist, trackPath, queueCover string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	body := artist
	if body == "" {
		body = "Unknown Artist"
	}

	id, err := a.notifier.Notify(Notification{
		Title:      title,
		Body:       body,
		Icon:       nowplaying.Artwork(queueCover, trackPath),
		Timeout:    a.timeout,
		ReplacesID: a.lastID,
		Urgency:    UrgencyLow,
		Category:   CategoryTrack,
		Transient:  true,
	})
	if err != nil {
		return err
	}
	if id != 0 {
		a.lastID = id
	}
	return nil
}

// Dismiss closes the last notification, if any.
func (a *TrackAnnouncer) Dismiss() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.lastID == 0 {
		return nil
	}
	id := a.lastID
	a.lastID = 0
	return a.notifier.Close(id)
}
