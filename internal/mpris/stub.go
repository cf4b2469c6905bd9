//go:build !linux

package mpris

import (
	"time"

	"github.com/llehouerou/imusic/internal/nowplaying"
)

// Server is a no-op sink on non-Linux platforms.
type Server struct{}

// New returns a no-op sink on non-Linux platforms.
func New(_ Commands) *Server {
	return &Server{}
}

func (s *Server) Initialize(string, string) error { return nil }

func (s *Server) UpdateNowPlaying(nowplaying.Metadata, nowplaying.TransportInfo) error {
	return nil
}

func (s *Server) UpdatePosition(time.Duration) error { return nil }

func (s *Server) ClearNowPlaying() error { return nil }

func (s *Server) Close() error { return nil }

var _ nowplaying.Sink = (*Server)(nil)
