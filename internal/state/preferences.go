package state

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

// Preference keys.
const (
	KeyCurrentSong = "player_currentSong"
	KeyVolume      = "player_volume"
	KeyIsLooping   = "player_isLooping"
	KeyMusicFolder = "music_folder"
)

// GetInt reads key as an integer. A missing or unparsable value yields def.
func GetInt(s Store, key string, def int) (int, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return def, err
	}
	v, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return def, nil
	}
	return v, nil
}

// GetBool reads key as a boolean. A missing or unparsable value yields def.
func GetBool(s Store, key string, def bool) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return def, err
	}
	v, convErr := strconv.ParseBool(raw)
	if convErr != nil {
		return def, nil
	}
	return v, nil
}

// SetInt stores v under key.
func SetInt(s Store, key string, v int) error {
	return s.Set(key, strconv.Itoa(v))
}

// SeedInt stores v under key unless a value is already present.
func SeedInt(s Store, key string, v int) error {
	_, ok, err := s.Get(key)
	if err != nil || ok {
		return err
	}
	return SetInt(s, key, v)
}

// SetBool stores v under key.
func SetBool(s Store, key string, v bool) error {
	return s.Set(key, strconv.FormatBool(v))
}

// DefaultVolume is used when no volume has been persisted.
const DefaultVolume = 40

// Preferences is the startup seed read from a Store.
type Preferences struct {
	// CurrentSong is the serialized last-played song, empty when absent.
	CurrentSong string
	Volume      int
	IsLooping   bool
}

// LoadPreferences reads the persisted playback preferences.
// Read failures are logged and the defaults used instead.
func LoadPreferences(s Store) Preferences {
	p := Preferences{Volume: DefaultVolume}

	if raw, ok, err := s.Get(KeyCurrentSong); err != nil {
		log.Warn().Err(err).Str("key", KeyCurrentSong).Msg("read preference")
	} else if ok {
		p.CurrentSong = raw
	}

	vol, err := GetInt(s, KeyVolume, DefaultVolume)
	if err != nil {
		log.Warn().Err(err).Str("key", KeyVolume).Msg("read preference")
	}
	if vol < 0 || vol > 100 {
		log.Warn().Int("volume", vol).Msg("persisted volume out of range, using default")
		vol = DefaultVolume
	}
	p.Volume = vol

	loop, err := GetBool(s, KeyIsLooping, false)
	if err != nil {
		log.Warn().Err(err).Str("key", KeyIsLooping).Msg("read preference")
	}
	p.IsLooping = loop

	return p
}
