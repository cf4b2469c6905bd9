package playback

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/imusic/internal/player"
)

// eventLoop consumes engine events until ctx is canceled, the engine closes
// its channel, or the controller is closed.
func (c *Controller) eventLoop(ctx context.Context) {
	defer c.wg.Done()

	events := c.engine.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.handleEvent(ev)
		}
	}
}

// handleEvent applies one engine event in arrival order. Events tagged with
// a path other than the current song's are stale and dropped.
func (c *Controller) handleEvent(ev player.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.CurrentSong == nil {
		return
	}
	if ev.Path != "" && ev.Path != c.session.CurrentSong.Path {
		log.Debug().
			Str("event", ev.Kind.String()).
			Str("path", ev.Path).
			Msg("dropping stale engine event")
		return
	}

	prev := c.session.clone()

	switch ev.Kind {
	case player.TimeUpdate:
		pos := max(ev.Position, 0)
		if c.session.Duration > 0 {
			pos = min(pos, c.session.Duration)
		}
		c.session.CurrentTime = pos

	case player.MetadataLoaded:
		c.session.Duration = ev.Duration
		if c.session.CurrentTime > ev.Duration && ev.Duration > 0 {
			c.session.CurrentTime = ev.Duration
		}

	case player.Ended:
		if c.session.IsLooping {
			// The engine rewinds looping tracks itself.
			break
		}
		c.stepLocked(1)
		return

	case player.ExternalPlay:
		c.session.IsPlaying = true

	case player.ExternalPause:
		c.session.IsPlaying = false
		if ev.Err != nil {
			log.Error().Err(ev.Err).Str("path", c.session.SongPath()).Msg("playback stopped")
			c.publishError(ErrorEvent{
				Operation: "stream",
				Path:      c.session.SongPath(),
				Err:       ev.Err,
			})
		}
	}

	c.changedLocked(prev)
}
