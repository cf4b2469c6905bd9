package app

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/config"
	"github.com/llehouerou/imusic/internal/notify"
	"github.com/llehouerou/imusic/internal/player"
	"github.com/llehouerou/imusic/internal/state"
)

type recordingNotifier struct {
	mu     sync.Mutex
	sent   []notify.Notification
	closed []uint32
}

func (r *recordingNotifier) Notify(n notify.Notification) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = append(r.closed, id)
	return nil
}

func (r *recordingNotifier) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.sent))
	for i, n := range r.sent {
		out[i] = n.Title
	}
	return out
}

func testConfig() *config.Config {
	off := false
	cfg := &config.Config{}
	cfg.NowPlaying.Enabled = &off
	cfg.Player.DefaultVolume = 65
	return cfg
}

func openTestStore(t *testing.T, songs ...catalog.Song) (*state.Manager, *catalog.Catalog) {
	t.Helper()
	store, err := state.Open(":memory:")
	require.NoError(t, err)
	for _, s := range songs {
		_, err := store.DB().Exec(
			`INSERT INTO songs (path, title, artist, duration, added_at) VALUES (?, ?, ?, ?, ?)`,
			s.Path, s.Title, s.Artist, s.Duration, time.Now().UnixMilli(),
		)
		require.NoError(t, err)
	}
	return store, catalog.New(store.DB(), store, t.TempDir())
}

func TestBuild_SeedsDefaultVolume(t *testing.T) {
	store, cat := openTestStore(t)
	engine := player.NewMock()

	a := build(testConfig(), store, cat, engine, nil)
	require.NoError(t, a.Start(t.Context()))
	defer a.Close()

	assert.Equal(t, 65, a.Controller.Session().Volume)
	assert.Equal(t, 65, engine.Volume())
}

func TestBuild_PersistedVolumeWins(t *testing.T) {
	store, cat := openTestStore(t)
	require.NoError(t, store.Set(state.KeyVolume, "12"))

	a := build(testConfig(), store, cat, player.NewMock(), nil)
	require.NoError(t, a.Start(t.Context()))
	defer a.Close()

	assert.Equal(t, 12, a.Controller.Session().Volume)
}

func TestStart_LoadsLibrary(t *testing.T) {
	song := catalog.Song{Path: "/music/a.mp3", Title: "Alpha", Artist: "Ann", Duration: "03:00"}
	store, cat := openTestStore(t, song)

	a := build(testConfig(), store, cat, player.NewMock(), nil)
	require.NoError(t, a.Start(t.Context()))
	defer a.Close()

	lib := a.Controller.Catalog()
	require.Len(t, lib, 1)
	assert.Equal(t, "Alpha", lib[0].Title)

	s := a.Controller.Session()
	require.True(t, s.HasSong())
	assert.Equal(t, song.Path, s.SongPath())
	assert.False(t, s.IsPlaying)
}

func TestStart_AnnouncesTracks(t *testing.T) {
	a1 := catalog.Song{Path: "/music/a.mp3", Title: "Alpha", Artist: "Ann", Duration: "03:00"}
	b1 := catalog.Song{Path: "/music/b.mp3", Title: "Bravo", Artist: "", Duration: "02:00"}
	store, cat := openTestStore(t, a1, b1)
	rec := &recordingNotifier{}

	a := build(testConfig(), store, cat, player.NewMock(), rec)
	require.NoError(t, a.Start(t.Context()))

	a.Controller.Play(a1, nil, nil)
	a.Controller.Next()

	require.Eventually(t, func() bool { return len(rec.titles()) == 2 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"Alpha", "Bravo"}, rec.titles())

	rec.mu.Lock()
	assert.Equal(t, "Unknown Artist", rec.sent[1].Body)
	assert.Equal(t, uint32(1), rec.sent[1].ReplacesID)
	rec.mu.Unlock()

	require.NoError(t, a.Close())
	rec.mu.Lock()
	assert.Equal(t, []uint32{2}, rec.closed)
	rec.mu.Unlock()
}

func TestClose_ReleasesEngine(t *testing.T) {
	store, cat := openTestStore(t)
	engine := player.NewMock()

	a := build(testConfig(), store, cat, engine, nil)
	require.NoError(t, a.Start(t.Context()))
	require.NoError(t, a.Close())

	assert.True(t, engine.IsClosed())
}
