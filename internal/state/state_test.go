package state

import (
	"errors"
	"path/filepath"
	"testing"

	dbutil "github.com/llehouerou/imusic/internal/db"
)

// setupTestManager creates a Manager over an in-memory database.
func setupTestManager(t *testing.T) *Manager {
	t.Helper()

	conn, err := dbutil.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	m, err := New(conn)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestGet_Missing(t *testing.T) {
	m := setupTestManager(t)

	v, ok, err := m.Get(KeyVolume)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Errorf("expected missing key, got %q", v)
	}
}

func TestSetAndGet(t *testing.T) {
	m := setupTestManager(t)

	if err := m.Set(KeyVolume, "55"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := m.Get(KeyVolume)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || v != "55" {
		t.Errorf("Get = %q, %v; want \"55\", true", v, ok)
	}
}

func TestSet_Overwrites(t *testing.T) {
	m := setupTestManager(t)

	for _, v := range []string{"true", "false"} {
		if err := m.Set(KeyIsLooping, v); err != nil {
			t.Fatalf("Set(%q) failed: %v", v, err)
		}
	}

	v, _, _ := m.Get(KeyIsLooping)
	if v != "false" {
		t.Errorf("Get = %q, want false", v)
	}

	var count int
	if err := m.DB().QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imusic.db")

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m.Set(KeyMusicFolder, "/music"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	v, ok, err := m.Get(KeyMusicFolder)
	if err != nil || !ok || v != "/music" {
		t.Errorf("Get = %q, %v, %v; want /music", v, ok, err)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	m := setupTestManager(t)
	if err := InitSchema(m.DB()); err != nil {
		t.Errorf("second InitSchema failed: %v", err)
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{"missing uses default", nil, 40},
		{"stored value", strPtr("72"), 72},
		{"garbage uses default", strPtr("loud"), 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMock()
			if tt.value != nil {
				s.Put(KeyVolume, *tt.value)
			}
			got, err := GetInt(s, KeyVolume, 40)
			if err != nil {
				t.Fatalf("GetInt failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetBool(t *testing.T) {
	s := NewMock()

	got, _ := GetBool(s, KeyIsLooping, false)
	if got {
		t.Error("missing key should use default false")
	}

	if err := SetBool(s, KeyIsLooping, true); err != nil {
		t.Fatalf("SetBool failed: %v", err)
	}
	got, _ = GetBool(s, KeyIsLooping, false)
	if !got {
		t.Error("expected true after SetBool")
	}
}

func TestGetInt_PropagatesStoreError(t *testing.T) {
	s := NewMock()
	boom := errors.New("disk gone")
	s.SetGetError(boom)

	got, err := GetInt(s, KeyVolume, 40)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if got != 40 {
		t.Errorf("GetInt = %d, want default 40", got)
	}
}

func strPtr(s string) *string { return &s }

func TestLoadPreferences_Defaults(t *testing.T) {
	p := LoadPreferences(NewMock())

	if p.Volume != DefaultVolume || p.IsLooping || p.CurrentSong != "" {
		t.Errorf("LoadPreferences = %+v, want defaults", p)
	}
}

func TestLoadPreferences_Stored(t *testing.T) {
	s := NewMock()
	s.Put(KeyCurrentSong, `{"path":"b"}`)
	s.Put(KeyVolume, "70")
	s.Put(KeyIsLooping, "true")

	p := LoadPreferences(s)
	if p.CurrentSong != `{"path":"b"}` {
		t.Errorf("CurrentSong = %q", p.CurrentSong)
	}
	if p.Volume != 70 {
		t.Errorf("Volume = %d, want 70", p.Volume)
	}
	if !p.IsLooping {
		t.Error("IsLooping = false, want true")
	}
}

func TestLoadPreferences_OutOfRangeVolume(t *testing.T) {
	s := NewMock()
	s.Put(KeyVolume, "250")

	if p := LoadPreferences(s); p.Volume != DefaultVolume {
		t.Errorf("Volume = %d, want %d", p.Volume, DefaultVolume)
	}
}

func TestLoadPreferences_StoreFailure(t *testing.T) {
	s := NewMock()
	s.Put(KeyVolume, "70")
	s.SetGetError(errors.New("locked"))

	p := LoadPreferences(s)
	if p.Volume != DefaultVolume || p.IsLooping {
		t.Errorf("LoadPreferences = %+v, want defaults on failure", p)
	}
}

func TestSeedInt_OnlyWhenMissing(t *testing.T) {
	m := NewMock()

	if err := SeedInt(m, KeyVolume, 65); err != nil {
		t.Fatalf("SeedInt() error = %v", err)
	}
	if v, _ := m.Value(KeyVolume); v != "65" {
		t.Errorf("seeded volume = %q, want 65", v)
	}

	if err := SeedInt(m, KeyVolume, 10); err != nil {
		t.Fatalf("SeedInt() error = %v", err)
	}
	if v, _ := m.Value(KeyVolume); v != "65" {
		t.Errorf("volume after second seed = %q, want 65", v)
	}
}
