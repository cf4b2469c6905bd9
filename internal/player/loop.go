package player

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

var _ beep.Streamer = (*loopStreamer)(nil)

// loopStreamer rewinds its source when it runs out and looping is on,
// so a looping track never reaches its end.
type loopStreamer struct {
	mu   sync.Mutex
	s    beep.StreamSeeker
	loop bool
}

// Stream implements beep.Streamer.
func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, ok = l.s.Stream(samples)

	for l.loop && n < len(samples) && l.atEnd() {
		if err := l.s.Seek(0); err != nil {
			break
		}
		m, _ := l.s.Stream(samples[n:])
		if m == 0 {
			break
		}
		n += m
		ok = true
	}
	return n, ok
}

// atEnd reports whether the source is exhausted. A zero-length source
// never counts as exhausted so it cannot spin.
func (l *loopStreamer) atEnd() bool {
	length := l.s.Len()
	return length > 0 && l.s.Position() >= length && l.s.Err() == nil
}

// Err implements beep.Streamer.
func (l *loopStreamer) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Err()
}

// SetLoop turns looping on or off.
func (l *loopStreamer) SetLoop(loop bool) {
	l.mu.Lock()
	l.loop = loop
	l.mu.Unlock()
}

// Looping returns the current loop flag.
func (l *loopStreamer) Looping() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loop
}
