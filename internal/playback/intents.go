package playback

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/imusic/internal/catalog"
)

// ErrVolumeRange is returned by SetVolume for levels outside 0..100.
var ErrVolumeRange = errors.New("volume out of range")

// LoadCatalog fetches the library. A selection that is playing is never
// replaced. Otherwise the current (or persisted) song is kept when its path
// is still in the library, falling back to the first entry.
// On failure the state is left untouched.
func (c *Controller) LoadCatalog() error {
	songs, err := c.catalog.LoadLibrary()
	if err != nil {
		log.Error().Err(err).Msg("load catalog")
		return errors.Wrap(err, "load catalog")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.session.clone()
	c.library = slices.Clone(songs)

	if c.session.IsPlaying && c.session.CurrentSong != nil {
		c.changedLocked(prev)
		return nil
	}

	var next *catalog.Song
	if cur := c.session.CurrentSong; cur != nil {
		if i := catalog.IndexOf(c.library, cur.Path); i >= 0 {
			next = &c.library[i]
		}
	}
	if next == nil && len(c.library) > 0 {
		next = &c.library[0]
	}

	if next == nil {
		c.session.CurrentSong = nil
		c.session.CurrentTime = 0
		c.session.Duration = 0
	} else {
		song := *next
		c.session.CurrentSong = &song
		if song.Path != c.loaded {
			c.session.CurrentTime = 0
			c.session.Duration = 0
			c.loadLocked(song.Path)
		}
	}

	if !sameSong(prev.CurrentSong, c.session.CurrentSong) {
		c.persistSongLocked()
	}
	c.changedLocked(prev)
	return nil
}

// Play makes song current and starts it. A non-nil queue becomes the active
// queue with cover as its artwork; a nil queue reverts to the library and
// clears the cover.
func (c *Controller) Play(song catalog.Song, queue []catalog.Song, cover *string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if queue != nil {
		queue = slices.Clone(queue)
		if queue == nil {
			queue = []catalog.Song{}
		}
	} else {
		cover = nil
	}
	c.playLocked(song, queue, cover)
}

// playLocked is the single path that starts a song in a queue context.
func (c *Controller) playLocked(song catalog.Song, queue []catalog.Song, cover *string) {
	prev := c.session.clone()

	c.queue = queue
	c.session.ActiveQueueCover = nil
	if cover != nil {
		v := *cover
		c.session.ActiveQueueCover = &v
	}
	c.session.CurrentSong = &song
	c.session.IsPlaying = true
	c.session.CurrentTime = 0
	c.session.Duration = 0

	if c.loadLocked(song.Path) {
		c.startEngineLocked()
	}

	c.persistSongLocked()
	c.changedLocked(prev)
	c.publishTrack(TrackChange{
		Previous: prev.CurrentSong,
		Current:  song,
		Cover:    c.session.ActiveQueueCover,
	})
}

// loadLocked hands path to the engine and reports success.
func (c *Controller) loadLocked(path string) bool {
	if err := c.engine.Load(path); err != nil {
		c.loaded = ""
		log.Error().Err(err).Str("path", path).Msg("load track")
		c.publishError(ErrorEvent{Operation: "load", Path: path, Err: err})
		return false
	}
	c.loaded = path
	return true
}

// startEngineLocked asks the engine to play. A refusal is reported but
// IsPlaying stays true: it records intent, not audibility.
func (c *Controller) startEngineLocked() {
	if err := c.engine.Play(); err != nil {
		path := c.session.SongPath()
		log.Error().Err(err).Str("path", path).Msg("start playback")
		c.publishError(ErrorEvent{Operation: "play", Path: path, Err: err})
	}
}

// TogglePlayPause flips IsPlaying. It does nothing without a current song.
func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPlayingLocked(!c.session.IsPlaying)
}

// Resume starts playback if it is paused.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPlayingLocked(true)
}

// Pause pauses playback if it is playing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPlayingLocked(false)
}

func (c *Controller) setPlayingLocked(playing bool) {
	if c.session.CurrentSong == nil || c.session.IsPlaying == playing {
		return
	}
	prev := c.session.clone()
	c.session.IsPlaying = playing

	if playing {
		if c.loaded != c.session.CurrentSong.Path {
			if !c.loadLocked(c.session.CurrentSong.Path) {
				c.changedLocked(prev)
				return
			}
		}
		c.startEngineLocked()
	} else {
		c.engine.Pause()
	}
	c.changedLocked(prev)
}

// Seek moves to an absolute position. The engine reports the resulting
// time back through a TimeUpdate.
func (c *Controller) Seek(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLoadedLocked() {
		return
	}
	c.engine.SeekTo(pos)
}

// SkipRelative moves the position by delta; the engine clamps at the bounds.
func (c *Controller) SkipRelative(delta time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLoadedLocked() {
		return
	}
	c.engine.Seek(delta)
}

// currentLoadedLocked reports whether the engine holds the current song.
func (c *Controller) currentLoadedLocked() bool {
	return c.session.CurrentSong != nil && c.loaded == c.session.CurrentSong.Path
}

// SkipForward jumps ahead by the configured step.
func (c *Controller) SkipForward() { c.SkipRelative(c.opts.SkipStep) }

// SkipBack jumps back by the configured step.
func (c *Controller) SkipBack() { c.SkipRelative(-c.opts.SkipStep) }

// SetVolume sets the volume. Callers clamp; levels outside 0..100 are
// rejected with ErrVolumeRange.
func (c *Controller) SetVolume(level int) error {
	if level < 0 || level > 100 {
		return errors.Wrapf(ErrVolumeRange, "%d", level)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.session.clone()
	c.session.Volume = level
	c.engine.SetVolume(level)
	c.persistVolumeLocked()
	c.changedLocked(prev)
	return nil
}

// ToggleLoop flips the loop flag.
func (c *Controller) ToggleLoop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLoopLocked(!c.session.IsLooping)
}

// SetLoop sets the loop flag.
func (c *Controller) SetLoop(loop bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLoopLocked(loop)
}

func (c *Controller) setLoopLocked(loop bool) {
	if c.session.IsLooping == loop {
		return
	}
	prev := c.session.clone()
	c.session.IsLooping = loop
	c.engine.SetLoop(loop)
	c.persistLoopLocked()
	c.changedLocked(prev)
}

// Next plays the following song of the active queue, wrapping at the end.
// An empty queue is a no-op.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stepLocked(1)
}

// Previous plays the preceding song of the active queue, wrapping at the
// start. An empty queue is a no-op.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stepLocked(-1)
}

// stepLocked resolves the neighbour of the current song in the active queue
// and plays it in the same queue context. A current song missing from the
// queue resolves to the first entry going forward and the last going back.
func (c *Controller) stepLocked(dir int) {
	list := c.activeQueueLocked()
	n := len(list)
	if n == 0 {
		return
	}

	idx := -1
	if c.session.CurrentSong != nil {
		idx = catalog.IndexOf(list, c.session.CurrentSong.Path)
	}

	var target int
	switch {
	case idx < 0 && dir > 0:
		target = 0
	case idx < 0:
		target = n - 1
	default:
		target = ((idx+dir)%n + n) % n
	}

	c.playLocked(list[target], c.queue, c.session.ActiveQueueCover)
}
