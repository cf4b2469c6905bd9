//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "imusic", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	user := writeConfig(t, dir, "user.toml", `
music_folder = "/srv/music"

[player]
default_volume = 55
skip_seconds = 5

[log]
level = "debug"
`)
	local := writeConfig(t, dir, "local.toml", `
[player]
skip_seconds = 30

[now_playing]
enabled = false
display_name = "Desk Player"
`)

	cfg, err := LoadFrom(user, local, filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.MusicFolder != "/srv/music" {
		t.Errorf("MusicFolder = %q, want /srv/music", cfg.MusicFolder)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}

	p := cfg.GetPlayerConfig()
	if p.DefaultVolume != 55 {
		t.Errorf("DefaultVolume = %d, want 55", p.DefaultVolume)
	}
	if p.SkipStep() != 30*time.Second {
		t.Errorf("SkipStep() = %v, want 30s", p.SkipStep())
	}

	if cfg.NowPlayingEnabled() {
		t.Error("NowPlayingEnabled() = true, want false")
	}
	np := cfg.GetNowPlayingConfig()
	if np.DisplayName != "Desk Player" || np.AppID != "imusic" {
		t.Errorf("GetNowPlayingConfig() = %+v", np)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.toml", "music_folder = [")
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail on invalid TOML")
	}
}

func TestLoadFrom_ExpandsPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}
	path := writeConfig(t, t.TempDir(), "c.toml", `
music_folder = "~/Music/imusic"
database = "~/imusic.db"

[log]
file = "stderr"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.MusicFolder != filepath.Join(home, "Music", "imusic") {
		t.Errorf("MusicFolder = %q", cfg.MusicFolder)
	}
	got, err := cfg.DatabasePath()
	if err != nil || got != filepath.Join(home, "imusic.db") {
		t.Errorf("DatabasePath() = %q, %v", got, err)
	}
	if f, _ := cfg.LogFile(); f != "stderr" {
		t.Errorf("LogFile() = %q, want stderr", f)
	}
}

func TestGetPlayerConfig_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		player PlayerConfig
		want   PlayerConfig
	}{
		{
			name:   "zero values",
			player: PlayerConfig{},
			want:   PlayerConfig{DefaultVolume: 40, SkipSeconds: 10, PositionIntervalMs: 1000},
		},
		{
			name:   "volume above range",
			player: PlayerConfig{DefaultVolume: 150, SkipSeconds: 3, PositionIntervalMs: 250},
			want:   PlayerConfig{DefaultVolume: 40, SkipSeconds: 3, PositionIntervalMs: 250},
		},
		{
			name:   "negative values",
			player: PlayerConfig{DefaultVolume: -1, SkipSeconds: -5, PositionIntervalMs: -1},
			want:   PlayerConfig{DefaultVolume: 40, SkipSeconds: 10, PositionIntervalMs: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Player: tt.player}
			if got := cfg.GetPlayerConfig(); got != tt.want {
				t.Errorf("GetPlayerConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNotifications(t *testing.T) {
	off := false
	tests := []struct {
		name        string
		config      Config
		wantEnabled bool
		wantTimeout int32
	}{
		{"defaults", Config{}, true, 5000},
		{"disabled", Config{Notifications: NotificationsConfig{Enabled: &off}}, false, 5000},
		{"custom timeout", Config{Notifications: NotificationsConfig{TimeoutMs: 2500}}, true, 2500},
		{"timeout capped", Config{Notifications: NotificationsConfig{TimeoutMs: 600_000}}, true, 60_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.NotificationsEnabled(); got != tt.wantEnabled {
				t.Errorf("NotificationsEnabled() = %v, want %v", got, tt.wantEnabled)
			}
			if got := tt.config.NotificationTimeout(); got != tt.wantTimeout {
				t.Errorf("NotificationTimeout() = %d, want %d", got, tt.wantTimeout)
			}
		})
	}
}
