package nowplaying

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_InitializesOnce(t *testing.T) {
	sink := NewMock()
	g := NewGuard(sink, "imusic", "iMusic")

	for range 5 {
		require.NoError(t, g.EnsureInitialized())
	}
	assert.Equal(t, 1, sink.InitCalls())
	assert.True(t, g.Initialized())
}

func TestGuard_RetriesAfterFailure(t *testing.T) {
	sink := NewMock()
	sink.SetInitError(errors.New("no session bus"))
	g := NewGuard(sink, "imusic", "iMusic")

	assert.Error(t, g.EnsureInitialized())
	assert.Error(t, g.EnsureInitialized())
	assert.False(t, g.Initialized())

	sink.SetInitError(nil)
	require.NoError(t, g.EnsureInitialized())
	require.NoError(t, g.EnsureInitialized())
	assert.Equal(t, 3, sink.InitCalls())
}

func TestGuard_ConcurrentCallers(t *testing.T) {
	sink := NewMock()
	g := NewGuard(sink, "imusic", "iMusic")

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() { _ = g.EnsureInitialized() })
	}
	wg.Wait()
	assert.Equal(t, 1, sink.InitCalls())
}

func TestGuard_ForwardsSinkCalls(t *testing.T) {
	sink := NewMock()
	g := NewGuard(sink, "imusic", "iMusic")

	require.NoError(t, g.UpdateNowPlaying(Metadata{Title: "A"}, TransportInfo{Status: Playing}))
	require.NoError(t, g.ClearNowPlaying())

	require.Len(t, sink.Pushes(), 1)
	assert.Equal(t, "A", sink.Pushes()[0].Meta.Title)
	assert.Equal(t, 1, sink.ClearCalls())
}

func TestFindAlbumArt_Priority(t *testing.T) {
	dir := t.TempDir()
	trackPath := filepath.Join(dir, "track.mp3")
	assert.Empty(t, FindAlbumArt(trackPath))

	folderPath := filepath.Join(dir, "folder.jpg")
	require.NoError(t, os.WriteFile(folderPath, []byte("fake"), 0o600))
	assert.Equal(t, folderPath, FindAlbumArt(trackPath))

	coverPath := filepath.Join(dir, "cover.jpg")
	require.NoError(t, os.WriteFile(coverPath, []byte("fake"), 0o600))
	assert.Equal(t, coverPath, FindAlbumArt(trackPath))
}

func TestArtwork_PrefersQueueCover(t *testing.T) {
	dir := t.TempDir()
	trackPath := filepath.Join(dir, "track.mp3")
	folderArt := filepath.Join(dir, "cover.jpg")
	require.NoError(t, os.WriteFile(folderArt, []byte("fake"), 0o600))
	queueCover := filepath.Join(t.TempDir(), "cover_1.jpg")
	require.NoError(t, os.WriteFile(queueCover, []byte("fake"), 0o600))

	assert.Equal(t, queueCover, Artwork(queueCover, trackPath))
	assert.Equal(t, folderArt, Artwork("", trackPath))
	assert.Equal(t, folderArt, Artwork(filepath.Join(dir, "gone.jpg"), trackPath))
}

func TestFileURL(t *testing.T) {
	assert.Empty(t, FileURL(""))
	assert.Equal(t, "file:///music/my%20cover.jpg", FileURL("/music/my cover.jpg"))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Playing", Playing.String())
	assert.Equal(t, "Paused", Paused.String())
	assert.Equal(t, "Stopped", Stopped.String())
}
