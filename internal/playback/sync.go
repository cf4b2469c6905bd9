package playback

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/imusic/internal/nowplaying"
)

// metaPush is one now-playing update. It is comparable so the worker can
// skip pushes identical to the last one that succeeded.
type metaPush struct {
	clear     bool
	meta      nowplaying.Metadata // ArtworkURL left empty
	cover     string
	transport nowplaying.TransportInfo
}

func (c *Controller) describeLocked() metaPush {
	song := c.session.CurrentSong
	if song == nil {
		return metaPush{clear: true}
	}

	p := metaPush{
		meta: nowplaying.Metadata{
			ID:       song.Path,
			Title:    song.Title,
			Artist:   song.Artist,
			Duration: c.session.Duration,
		},
		transport: nowplaying.TransportInfo{
			Status: nowplaying.Paused,
			Repeat: nowplaying.RepeatNone,
		},
	}
	if c.session.ActiveQueueCover != nil {
		p.cover = *c.session.ActiveQueueCover
	}
	if c.session.IsPlaying {
		p.transport.Status = nowplaying.Playing
	}
	if c.session.IsLooping {
		p.transport.Repeat = nowplaying.RepeatTrack
	}
	return p
}

// schedulePushLocked replaces any pending push with the current state and
// wakes the worker. Only the latest state is ever delivered.
func (c *Controller) schedulePushLocked() {
	p := c.describeLocked()

	c.pushMu.Lock()
	c.pending = &p
	c.pushMu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

func (c *Controller) takePending() *metaPush {
	c.pushMu.Lock()
	defer c.pushMu.Unlock()
	p := c.pending
	c.pending = nil
	return p
}

// pushLoop delivers metadata pushes one at a time, off the controller lock.
func (c *Controller) pushLoop() {
	defer c.wg.Done()

	var last *metaPush
	for {
		select {
		case <-c.done:
			return
		case <-c.wake:
		}

		p := c.takePending()
		if p == nil || (last != nil && *last == *p) {
			continue
		}
		if err := c.deliver(*p); err != nil {
			log.Debug().Err(err).Msg("now playing update")
			continue
		}
		last = p
	}
}

func (c *Controller) deliver(p metaPush) error {
	if err := c.sink.EnsureInitialized(); err != nil {
		return err
	}
	if p.clear {
		return c.sink.ClearNowPlaying()
	}
	meta := p.meta
	meta.ArtworkURL = nowplaying.FileURL(nowplaying.Artwork(p.cover, meta.ID))
	return c.sink.UpdateNowPlaying(meta, p.transport)
}

// updatePositionTickerLocked runs the position ticker exactly while a song
// is playing.
func (c *Controller) updatePositionTickerLocked() {
	want := c.session.IsPlaying && c.session.CurrentSong != nil
	switch {
	case want && c.posStop == nil:
		c.posStop = make(chan struct{})
		c.wg.Add(1)
		go c.positionLoop(c.posStop)
	case !want && c.posStop != nil:
		c.stopPositionTickerLocked()
	}
}

func (c *Controller) stopPositionTickerLocked() {
	if c.posStop != nil {
		close(c.posStop)
		c.posStop = nil
	}
}

func (c *Controller) positionLoop(stop <-chan struct{}) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.opts.PositionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			pos := c.session.CurrentTime
			c.mu.Unlock()

			if !c.sink.Initialized() {
				continue
			}
			_ = c.sink.UpdatePosition(pos)
		}
	}
}
