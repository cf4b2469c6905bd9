package catalog

import (
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	dbutil "github.com/llehouerou/imusic/internal/db"
	"github.com/llehouerou/imusic/internal/state"
)

// Catalog is the SQLite-backed Accessor. It shares its database with the
// preference store, which also holds the configured music folder.
type Catalog struct {
	db             *sql.DB
	settings       state.Store
	fallbackFolder string
}

// New creates a Catalog. fallbackFolder is used as the music folder until
// one is stored in settings.
func New(db *sql.DB, settings state.Store, fallbackFolder string) *Catalog {
	return &Catalog{db: db, settings: settings, fallbackFolder: fallbackFolder}
}

// LoadLibrary returns every song in insertion order.
func (c *Catalog) LoadLibrary() ([]Song, error) {
	rows, err := c.db.Query(`
		SELECT path, title, artist, duration, track_index
		FROM songs
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query songs")
	}
	defer rows.Close()

	songs := []Song{}
	for rows.Next() {
		var s Song
		var index sql.NullInt64
		if err := rows.Scan(&s.Path, &s.Title, &s.Artist, &s.Duration, &index); err != nil {
			return nil, errors.Wrap(err, "scan song")
		}
		s.Index = dbutil.NullInt64ToIntPtr(index)
		songs = append(songs, s)
	}
	return songs, errors.Wrap(rows.Err(), "iterate songs")
}

// Song returns the library song stored under path.
func (c *Catalog) Song(path string) (*Song, error) {
	var s Song
	var index sql.NullInt64
	err := c.db.QueryRow(`
		SELECT path, title, artist, duration, track_index FROM songs WHERE path = ?
	`, path).Scan(&s.Path, &s.Title, &s.Artist, &s.Duration, &index)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrSongNotFound, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "query song")
	}
	s.Index = dbutil.NullInt64ToIntPtr(index)
	return &s, nil
}

func (c *Catalog) insertSong(s Song) error {
	var index sql.NullInt64
	if s.Index != nil {
		index = sql.NullInt64{Int64: int64(*s.Index), Valid: true}
	}
	_, err := c.db.Exec(`
		INSERT INTO songs (path, title, artist, duration, track_index, added_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.Path, s.Title, s.Artist, s.Duration, index, time.Now().Unix())
	return errors.Wrap(err, "insert song")
}

// DeleteSong removes the song from the library and from every playlist,
// renumbering the remaining entries. The audio file is deleted when it
// lives inside the music folder.
func (c *Catalog) DeleteSong(path string) error {
	err := dbutil.WithTx(c.db, func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM songs WHERE path = ?`, path)
		if err != nil {
			return errors.Wrap(err, "delete song")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errors.Wrapf(ErrSongNotFound, "%s", path)
		}

		ids, err := playlistsContaining(tx, path)
		if err != nil {
			return err
		}
		for _, id := range ids {
			paths, err := playlistPaths(tx, id)
			if err != nil {
				return err
			}
			kept := paths[:0]
			for _, p := range paths {
				if p != path {
					kept = append(kept, p)
				}
			}
			if err := replaceItems(tx, id, kept); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if folder := c.MusicFolder(); folder != "" && isInside(folder, path) {
		if err := removeFile(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("delete audio file")
		}
	}
	return nil
}

// isInside reports whether path is located under dir.
func isInside(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
