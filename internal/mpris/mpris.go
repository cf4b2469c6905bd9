//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/imusic/internal/nowplaying"
)

// Server is the MPRIS now-playing sink. Properties are served from the
// last values pushed by the controller; transport calls go to Commands.
type Server struct {
	commands Commands

	mu        sync.Mutex
	meta      nowplaying.Metadata
	transport nowplaying.TransportInfo
	position  time.Duration
	hasTrack  bool
	identity  string

	server *server.Server
	events *events.EventHandler
}

// New creates an MPRIS sink forwarding OS commands to commands.
// Nothing is exported on the bus until Initialize.
func New(commands Commands) *Server {
	return &Server{commands: commands}
}

// Initialize claims org.mpris.MediaPlayer2.<appID> on the session bus.
// Calling it again after a success is a no-op.
func (s *Server) Initialize(appID, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return nil
	}

	// Listen runs in the background and cannot report a missing bus.
	probe, err := dbus.ConnectSessionBus()
	if err != nil {
		return errors.Wrap(err, "connect session bus")
	}
	probe.Close()

	s.identity = displayName
	s.server = server.NewServer(appID, &rootAdapter{s: s}, &playerAdapter{s: s})
	s.events = events.NewEventHandler(s.server)

	srv := s.server
	go func() {
		if err := srv.Listen(); err != nil {
			log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()
	return nil
}

// UpdateNowPlaying stores the track and transport state and announces the change.
func (s *Server) UpdateNowPlaying(meta nowplaying.Metadata, transport nowplaying.TransportInfo) error {
	s.mu.Lock()
	s.meta = meta
	s.transport = transport
	s.hasTrack = true
	ev := s.events
	s.mu.Unlock()

	return emitAll(ev)
}

// UpdatePosition stores the position. Clients poll Position, so no signal is sent.
func (s *Server) UpdatePosition(pos time.Duration) error {
	s.mu.Lock()
	s.position = pos
	s.mu.Unlock()
	return nil
}

// ClearNowPlaying forgets the track and reports Stopped.
func (s *Server) ClearNowPlaying() error {
	s.mu.Lock()
	s.meta = nowplaying.Metadata{}
	s.transport = nowplaying.TransportInfo{Status: nowplaying.Stopped}
	s.position = 0
	s.hasTrack = false
	ev := s.events
	s.mu.Unlock()

	return emitAll(ev)
}

// Close releases the bus name.
func (s *Server) Close() error {
	s.mu.Lock()
	srv := s.server
	s.server = nil
	s.events = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Stop()
}

// emitAll announces Metadata, PlaybackStatus and LoopStatus changes.
// Listen connects asynchronously, so an early emit may find no connection.
func emitAll(ev *events.EventHandler) (err error) {
	if ev == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("mpris emit before connect: %v", r)
		}
	}()
	return errors.CombineErrors(
		ev.Player.OnTitle(),
		errors.CombineErrors(ev.Player.OnPlayPause(), ev.Player.OnOptions()),
	)
}

func (s *Server) snapshot() (nowplaying.Metadata, nowplaying.TransportInfo, time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta, s.transport, s.position, s.hasTrack
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	s *Server
}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.identity, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/x-wav", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the loop extension.
type playerAdapter struct {
	s *Server
}

func (p *playerAdapter) Next() error {
	p.s.commands.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.s.commands.Previous()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.s.commands.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.s.commands.TogglePlayPause()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.s.commands.Pause()
	return nil
}

func (p *playerAdapter) Play() error {
	p.s.commands.Resume()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.s.commands.SkipRelative(time.Duration(offset) * time.Microsecond)
	return nil
}

// SetPosition is ignored when trackID is not the current track.
func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	meta, _, _, ok := p.s.snapshot()
	if !ok || trackID != formatTrackID(meta.ID) {
		return nil
	}
	p.s.commands.Seek(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	_, transport, _, _ := p.s.snapshot()
	return playbackStatus(transport.Status), nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	meta, _, _, ok := p.s.snapshot()
	if !ok {
		return types.Metadata{}, nil
	}
	return toMetadata(meta), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.s.commands.Volume()) / 100, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.s.commands.SetVolume(volumeLevel(v))
}

func (p *playerAdapter) Position() (int64, error) {
	_, _, pos, _ := p.s.snapshot()
	return pos.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) { return p.hasTrack(), nil }

func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.hasTrack(), nil }

func (p *playerAdapter) CanPlay() (bool, error) { return p.hasTrack(), nil }

func (p *playerAdapter) CanPause() (bool, error) { return p.hasTrack(), nil }

func (p *playerAdapter) CanSeek() (bool, error) { return p.hasTrack(), nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

func (p *playerAdapter) hasTrack() bool {
	_, _, _, ok := p.s.snapshot()
	return ok
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	_, transport, _, _ := p.s.snapshot()
	return loopStatus(transport.Repeat), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Playlist looping is not supported and maps to track looping.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	p.s.commands.SetLoop(status != types.LoopStatusNone)
	return nil
}

func playbackStatus(s nowplaying.Status) types.PlaybackStatus {
	switch s {
	case nowplaying.Playing:
		return types.PlaybackStatusPlaying
	case nowplaying.Paused:
		return types.PlaybackStatusPaused
	default:
		return types.PlaybackStatusStopped
	}
}

func loopStatus(r nowplaying.Repeat) types.LoopStatus {
	if r == nowplaying.RepeatTrack {
		return types.LoopStatusTrack
	}
	return types.LoopStatusNone
}

func toMetadata(meta nowplaying.Metadata) types.Metadata {
	m := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(meta.ID)),
		Length:  types.Microseconds(meta.Duration.Microseconds()),
		Title:   meta.Title,
		Artist:  []string{meta.Artist},
		ArtUrl:  meta.ArtworkURL,
	}
	return m
}

func volumeLevel(v float64) int {
	return min(max(int(v*100+0.5), 0), 100)
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

// Verify Server implements nowplaying.Sink at compile time.
var _ nowplaying.Sink = (*Server)(nil)
