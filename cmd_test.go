package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/imusic/internal/catalog"
)

func TestFindSong(t *testing.T) {
	songs := []catalog.Song{
		{Path: "/music/Ann - Alpha.mp3", Title: "Alpha"},
		{Path: "/music/Ben - Bravo.mp3", Title: "Bravo"},
	}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{"by number", "2", "Bravo", nil},
		{"by path", "/music/Ann - Alpha.mp3", "Alpha", nil},
		{"by file name", "Ben - Bravo.mp3", "Bravo", nil},
		{"unknown path", "/elsewhere.mp3", "", catalog.ErrSongNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findSong(songs, tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Title)
		})
	}
}

func TestFindSong_NumberOutOfRange(t *testing.T) {
	_, err := findSong([]catalog.Song{{Path: "/a"}}, "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"serve"},
		{"folder"},
		{"library", "list"},
		{"library", "add"},
		{"library", "rm"},
		{"library", "size"},
		{"playlist", "list"},
		{"playlist", "show"},
		{"playlist", "create"},
		{"playlist", "add"},
		{"playlist", "move"},
		{"playlist", "rm"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
