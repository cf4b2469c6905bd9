package playback

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/state"
)

// decodeSong parses the persisted last-played song. Empty input yields nil.
func decodeSong(raw string) *catalog.Song {
	if raw == "" {
		return nil
	}
	var s catalog.Song
	if err := json.Unmarshal([]byte(raw), &s); err != nil || s.Path == "" {
		log.Warn().Err(err).Msg("discarding persisted song")
		return nil
	}
	return &s
}

// Preference writes happen synchronously under the controller lock.
// Failures are logged and otherwise ignored.

func (c *Controller) persistSongLocked() {
	if c.session.CurrentSong == nil {
		if err := c.prefs.Set(state.KeyCurrentSong, ""); err != nil {
			log.Warn().Err(err).Msg("persist current song")
		}
		return
	}
	data, err := json.Marshal(c.session.CurrentSong)
	if err != nil {
		log.Warn().Err(err).Msg("encode current song")
		return
	}
	if err := c.prefs.Set(state.KeyCurrentSong, string(data)); err != nil {
		log.Warn().Err(err).Msg("persist current song")
	}
}

func (c *Controller) persistVolumeLocked() {
	if err := state.SetInt(c.prefs, state.KeyVolume, c.session.Volume); err != nil {
		log.Warn().Err(err).Msg("persist volume")
	}
}

func (c *Controller) persistLoopLocked() {
	if err := state.SetBool(c.prefs, state.KeyIsLooping, c.session.IsLooping); err != nil {
		log.Warn().Err(err).Msg("persist loop flag")
	}
}
