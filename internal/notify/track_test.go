package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type recordingNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	r.nextID++
	return r.nextID, nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestTrackAnnouncer_ReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	a := NewTrackAnnouncer(rec, 3000)

	if err := a.Announce("Alpha", "Ann", "/music/a.mp3", ""); err != nil {
		t.Fatalf("Announce() error: %v", err)
	}
	if err := a.Announce("Bravo", "", "/music/b.mp3", ""); err != nil {
		t.Fatalf("Announce() error: %v", err)
	}

	if len(rec.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(rec.sent))
	}
	if rec.sent[0].ReplacesID != 0 {
		t.Errorf("first ReplacesID = %d, want 0", rec.sent[0].ReplacesID)
	}
	if rec.sent[1].ReplacesID != 1 {
		t.Errorf("second ReplacesID = %d, want 1", rec.sent[1].ReplacesID)
	}
	if rec.sent[1].Body != "Unknown Artist" {
		t.Errorf("Body = %q, want Unknown Artist", rec.sent[1].Body)
	}
	if rec.sent[0].Timeout != 3000 {
		t.Errorf("Timeout = %d, want 3000", rec.sent[0].Timeout)
	}
	if n := rec.sent[0]; n.Category != CategoryTrack || !n.Transient || n.Urgency != UrgencyLow {
		t.Errorf("announcement = %+v, want low urgency transient track", n)
	}
}

func TestTrackAnnouncer_Icon(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "01-song.mp3")
	folderArt := filepath.Join(dir, "cover.jpg")
	queueCover := filepath.Join(dir, "cover_pl.jpg")
	for _, p := range []string{track, folderArt, queueCover} {
		if err := os.WriteFile(p, []byte{0xFF, 0xD8, 0xFF}, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	rec := &recordingNotifier{}
	a := NewTrackAnnouncer(rec, 1000)

	_ = a.Announce("Song", "Artist", track, "")
	_ = a.Announce("Song", "Artist", track, queueCover)

	if rec.sent[0].Icon != folderArt {
		t.Errorf("Icon = %q, want folder art %q", rec.sent[0].Icon, folderArt)
	}
	if rec.sent[1].Icon != queueCover {
		t.Errorf("Icon = %q, want queue cover %q", rec.sent[1].Icon, queueCover)
	}
}

func TestTrackAnnouncer_ErrorKeepsLastID(t *testing.T) {
	rec := &recordingNotifier{}
	a := NewTrackAnnouncer(rec, 1000)
	_ = a.Announce("A", "X", "/music/a.mp3", "")

	rec.err = errors.New("bus gone")
	if err := a.Announce("B", "X", "/music/b.mp3", ""); err == nil {
		t.Fatal("Announce() should return the notifier error")
	}

	if err := a.Dismiss(); err != nil {
		t.Fatalf("Dismiss() error: %v", err)
	}
	if len(rec.closed) != 1 || rec.closed[0] != 1 {
		t.Errorf("closed = %v, want [1]", rec.closed)
	}
	if err := a.Dismiss(); err != nil || len(rec.closed) != 1 {
		t.Errorf("second Dismiss() should be a no-op, closed = %v", rec.closed)
	}
}
