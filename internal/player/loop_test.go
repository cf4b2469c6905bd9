package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// seekableStreamer produces a fixed number of samples valued by index.
type seekableStreamer struct {
	samples int
	pos     int
}

func (m *seekableStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := m.samples - m.pos
	if remaining <= 0 {
		return 0, false
	}
	toWrite := min(len(samples), remaining)
	for i := range toWrite {
		v := float64(m.pos + i)
		samples[i] = [2]float64{v, v}
	}
	m.pos += toWrite
	return toWrite, true
}

func (m *seekableStreamer) Err() error    { return nil }
func (m *seekableStreamer) Len() int      { return m.samples }
func (m *seekableStreamer) Position() int { return m.pos }

func (m *seekableStreamer) Seek(p int) error {
	m.pos = p
	return nil
}

func TestLoopStreamer_NoLoopEnds(t *testing.T) {
	l := &loopStreamer{s: &seekableStreamer{samples: 5}}

	buf := make([][2]float64, 8)
	n, ok := l.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	n, ok = l.Stream(buf)
	assert.False(t, ok)
	assert.Equal(t, 0, n)
}

func TestLoopStreamer_LoopWrapsWithinBuffer(t *testing.T) {
	l := &loopStreamer{s: &seekableStreamer{samples: 4}, loop: true}

	buf := make([][2]float64, 10)
	n, ok := l.Stream(buf)

	assert.True(t, ok)
	assert.Equal(t, 10, n)
	want := []float64{0, 1, 2, 3, 0, 1, 2, 3, 0, 1}
	for i, v := range want {
		assert.Equal(t, v, buf[i][0], "sample %d", i)
	}
}

func TestLoopStreamer_NeverExhaustsWhileLooping(t *testing.T) {
	l := &loopStreamer{s: &seekableStreamer{samples: 3}, loop: true}

	buf := make([][2]float64, 2)
	for range 20 {
		n, ok := l.Stream(buf)
		assert.True(t, ok)
		assert.Equal(t, 2, n)
	}
}

func TestLoopStreamer_ToggleOffLetsTrackEnd(t *testing.T) {
	src := &seekableStreamer{samples: 4}
	l := &loopStreamer{s: src, loop: true}

	buf := make([][2]float64, 3)
	l.Stream(buf)
	l.SetLoop(false)
	assert.False(t, l.Looping())

	n, ok := l.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = l.Stream(buf)
	assert.False(t, ok)
}

func TestLoopStreamer_EmptySourceDoesNotSpin(t *testing.T) {
	l := &loopStreamer{s: &seekableStreamer{samples: 0}, loop: true}

	n, ok := l.Stream(make([][2]float64, 4))
	assert.False(t, ok)
	assert.Equal(t, 0, n)
}
