package catalog

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dhowden/tag"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/imusic/internal/player"
	"github.com/llehouerou/imusic/internal/state"
)

const (
	unknownDuration = "00:00"
	unknownArtist   = "Unknown Artist"
)

// MusicFolder returns the folder songs are copied into, or "" if none is set.
func (c *Catalog) MusicFolder() string {
	folder, ok, err := c.settings.Get(state.KeyMusicFolder)
	if err != nil {
		log.Warn().Err(err).Msg("read music folder setting")
	}
	if ok && folder != "" {
		return folder
	}
	return c.fallbackFolder
}

// SetMusicFolder stores path as the music folder. The folder must exist.
func (c *Catalog) SetMusicFolder(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "resolve music folder")
	}
	info, err := os.Stat(abs)
	if err != nil {
		return errors.Wrap(err, "stat music folder")
	}
	if !info.IsDir() {
		return errors.Newf("%s is not a directory", abs)
	}
	return c.settings.Set(state.KeyMusicFolder, abs)
}

// FolderSize returns the total size of the music folder, humanized.
func (c *Catalog) FolderSize() (string, error) {
	folder := c.MusicFolder()
	if folder == "" {
		return "", ErrNoMusicFolder
	}

	var total uint64
	err := filepath.WalkDir(folder, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += uint64(info.Size()) //nolint:gosec // file sizes are non-negative
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "walk music folder")
	}
	return humanize.IBytes(total), nil
}

// SaveNewSong copies sourceFilePath into the music folder and adds it to the
// library. Empty title or artist fall back to the file tags, then to the file
// name. A duration that cannot be probed is stored as 00:00.
func (c *Catalog) SaveNewSong(title, artist, sourceFilePath string) (*Song, error) {
	folder := c.MusicFolder()
	if folder == "" {
		return nil, ErrNoMusicFolder
	}

	target, err := filepath.Abs(filepath.Join(folder, filepath.Base(sourceFilePath)))
	if err != nil {
		return nil, errors.Wrap(err, "resolve target")
	}
	if _, err := c.Song(target); err == nil {
		return nil, errors.Wrapf(ErrSongExists, "%s", target)
	}

	copied, err := copyInto(sourceFilePath, target)
	if err != nil {
		return nil, err
	}

	song := Song{
		Path:     target,
		Title:    strings.TrimSpace(title),
		Artist:   strings.TrimSpace(artist),
		Duration: unknownDuration,
	}

	if d, err := player.ProbeDuration(target); err != nil {
		log.Warn().Err(err).Str("path", target).Msg("probe duration")
	} else {
		song.Duration = player.FormatDuration(d)
	}

	if song.Title == "" || song.Artist == "" {
		fillFromTags(&song)
	}

	if err := c.insertSong(song); err != nil {
		if copied {
			_ = os.Remove(target)
		}
		return nil, err
	}
	return &song, nil
}

// fillFromTags completes empty title/artist fields from the file tags.
func fillFromTags(s *Song) {
	if f, err := os.Open(s.Path); err == nil {
		defer f.Close()
		if m, err := tag.ReadFrom(f); err == nil {
			if s.Title == "" {
				s.Title = strings.TrimSpace(m.Title())
			}
			if s.Artist == "" {
				s.Artist = strings.TrimSpace(m.Artist())
			}
			if track, _ := m.Track(); track > 0 && s.Index == nil {
				s.Index = &track
			}
		}
	}
	if s.Title == "" {
		base := filepath.Base(s.Path)
		s.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if s.Artist == "" {
		s.Artist = unknownArtist
	}
}

// copyInto copies src to dst. It reports false when src already is dst.
// An existing dst is never overwritten.
func copyInto(src, dst string) (bool, error) {
	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return false, errors.Wrap(err, "resolve source")
	}
	if srcAbs == dst {
		return false, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return false, errors.Wrap(err, "open source")
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, errors.Wrap(err, "create music folder")
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, errors.Wrapf(ErrSongExists, "%s already in music folder", dst)
	}
	if err != nil {
		return false, errors.Wrap(err, "create target")
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return false, errors.Wrap(err, "copy file")
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return false, errors.Wrap(err, "close target")
	}
	return true, nil
}

func removeFile(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
