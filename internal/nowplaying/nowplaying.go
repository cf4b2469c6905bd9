// Package nowplaying describes the one-way channel to the OS media integration.
package nowplaying

import (
	"time"
)

// Status is the transport state shown by the OS.
type Status int

const (
	Stopped Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// Repeat is the loop mode shown by the OS.
type Repeat int

const (
	RepeatNone Repeat = iota
	RepeatTrack
)

// Metadata describes the current track.
type Metadata struct {
	ID         string // stable track key, the song path
	Title      string
	Artist     string
	Duration   time.Duration
	ArtworkURL string
}

// TransportInfo is the transport state pushed alongside Metadata.
type TransportInfo struct {
	Status Status
	Repeat Repeat
}

// Sink receives now-playing updates. Callers treat every error as
// best-effort and never surface it to the user.
type Sink interface {
	// Initialize registers the application. Repeated calls are safe.
	Initialize(appID, displayName string) error
	UpdateNowPlaying(meta Metadata, transport TransportInfo) error
	UpdatePosition(pos time.Duration) error
	ClearNowPlaying() error
}

// Nop is a Sink that does nothing.
type Nop struct{}

func (Nop) Initialize(string, string) error                { return nil }
func (Nop) UpdateNowPlaying(Metadata, TransportInfo) error { return nil }
func (Nop) UpdatePosition(time.Duration) error             { return nil }
func (Nop) ClearNowPlaying() error                         { return nil }

var _ Sink = Nop{}
