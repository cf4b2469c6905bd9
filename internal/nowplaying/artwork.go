package nowplaying

import (
	"net/url"
	"os"
	"path/filepath"
)

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindAlbumArt looks for album art in the same directory as the track.
// Returns the path to the art file, or empty string if not found.
func FindAlbumArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Artwork picks the image for a track: the queue cover when one is set,
// otherwise folder art next to the track.
func Artwork(queueCover, trackPath string) string {
	if queueCover != "" {
		if _, err := os.Stat(queueCover); err == nil {
			return queueCover
		}
	}
	return FindAlbumArt(trackPath)
}

// FileURL converts an absolute path into a file:// URL, or "" for "".
func FileURL(path string) string {
	if path == "" {
		return ""
	}
	return (&url.URL{Scheme: "file", Path: path}).String()
}
