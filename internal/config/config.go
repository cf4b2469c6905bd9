package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "imusic"

type Config struct {
	MusicFolder string `koanf:"music_folder"` // where imported songs are copied
	Database    string `koanf:"database"`     // sqlite file, default under the XDG data dir

	Log           LogConfig           `koanf:"log"`
	Player        PlayerConfig        `koanf:"player"`
	NowPlaying    NowPlayingConfig    `koanf:"now_playing"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error"
	File  string `koanf:"file"`  // log file; "stdout"/"stderr" log to the terminal
}

// PlayerConfig holds playback tuning.
type PlayerConfig struct {
	DefaultVolume      int `koanf:"default_volume"`       // used until a volume is persisted (default: 40)
	SkipSeconds        int `koanf:"skip_seconds"`         // skip forward/back step (default: 10)
	PositionIntervalMs int `koanf:"position_interval_ms"` // now-playing position cadence (default: 1000)
}

// NowPlayingConfig holds the OS media integration settings.
type NowPlayingConfig struct {
	Enabled     *bool  `koanf:"enabled"` // default: true
	AppID       string `koanf:"app_id"`
	DisplayName string `koanf:"display_name"`
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled   *bool `koanf:"enabled"`    // default: true
	TimeoutMs int   `koanf:"timeout_ms"` // default: 5000
}

// Load reads the user config, then ./config.toml. Later files win.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MusicFolder = expandPath(cfg.MusicFolder)
	cfg.Database = expandPath(cfg.Database)
	if cfg.Log.File != "stdout" && cfg.Log.File != "stderr" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/imusic/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DatabasePath returns the configured database file or the XDG default.
func (c *Config) DatabasePath() (string, error) {
	if c.Database != "" {
		return c.Database, nil
	}
	return xdg.DataFile(filepath.Join(appName, appName+".db"))
}

// DefaultMusicFolder returns the configured music folder or
// $XDG_MUSIC_DIR/imusic. The folder stored in the database takes precedence.
func (c *Config) DefaultMusicFolder() string {
	if c.MusicFolder != "" {
		return c.MusicFolder
	}
	return filepath.Join(xdg.UserDirs.Music, appName)
}

// LogFile returns where the logger writes. An empty setting resolves to a
// file under the XDG state dir so the TUI screen stays clean.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player

	if cfg.DefaultVolume <= 0 || cfg.DefaultVolume > 100 {
		cfg.DefaultVolume = 40
	}
	if cfg.SkipSeconds <= 0 {
		cfg.SkipSeconds = 10
	}
	if cfg.PositionIntervalMs <= 0 {
		cfg.PositionIntervalMs = 1000
	}

	return cfg
}

// SkipStep is the skip forward/back offset.
func (p PlayerConfig) SkipStep() time.Duration {
	return time.Duration(p.SkipSeconds) * time.Second
}

// PositionInterval is the now-playing position push cadence.
func (p PlayerConfig) PositionInterval() time.Duration {
	return time.Duration(p.PositionIntervalMs) * time.Millisecond
}

// NowPlayingEnabled reports whether the MPRIS integration should start.
func (c *Config) NowPlayingEnabled() bool {
	return c.NowPlaying.Enabled == nil || *c.NowPlaying.Enabled
}

// GetNowPlayingConfig returns the now-playing identity with defaults applied.
func (c *Config) GetNowPlayingConfig() NowPlayingConfig {
	cfg := c.NowPlaying
	if cfg.AppID == "" {
		cfg.AppID = appName
	}
	if cfg.DisplayName == "" {
		cfg.DisplayName = "iMusic"
	}
	return cfg
}

// NotificationsEnabled reports whether track-change notifications are sent.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// NotificationTimeout returns the notification expiry in milliseconds.
func (c *Config) NotificationTimeout() int32 {
	if c.Notifications.TimeoutMs <= 0 {
		return 5000
	}
	return int32(min(c.Notifications.TimeoutMs, 60_000))
}
