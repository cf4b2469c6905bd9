package catalog

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	dbutil "github.com/llehouerou/imusic/internal/db"
)

// SavePlaylist creates a playlist holding songPaths in order. A non-empty
// cover names an image that is resized and stored in the music folder.
func (c *Catalog) SavePlaylist(name string, cover *string, songPaths []string) (*Playlist, error) {
	pl := &Playlist{
		ID:    uuid.NewString(),
		Name:  name,
		Songs: densePositions(songPaths),
	}

	if cover != nil && *cover != "" {
		folder := c.MusicFolder()
		if folder == "" {
			return nil, ErrNoMusicFolder
		}
		fileName, err := processCover(*cover, folder, pl.ID)
		if err != nil {
			return nil, err
		}
		pl.CoverImagePath = &fileName
	}

	err := dbutil.WithTx(c.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO playlists (id, name, cover_image_path, created_at)
			VALUES (?, ?, ?, ?)
		`, pl.ID, pl.Name, dbutil.PtrToNullString(pl.CoverImagePath), time.Now().UnixNano())
		if err != nil {
			return errors.Wrap(err, "insert playlist")
		}
		return insertItems(tx, pl.ID, pl.Songs)
	})
	if err != nil {
		if pl.CoverImagePath != nil {
			_ = os.Remove(c.CoverFile(*pl))
		}
		return nil, err
	}
	return pl, nil
}

// LoadPlaylists returns every playlist with its entries, oldest first.
func (c *Catalog) LoadPlaylists() ([]Playlist, error) {
	rows, err := c.db.Query(`
		SELECT id, name, cover_image_path FROM playlists ORDER BY created_at, id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query playlists")
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		var pl Playlist
		var cover sql.NullString
		if err := rows.Scan(&pl.ID, &pl.Name, &cover); err != nil {
			return nil, errors.Wrap(err, "scan playlist")
		}
		pl.CoverImagePath = dbutil.NullStringToPtr(cover)
		playlists = append(playlists, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate playlists")
	}

	items, err := c.allItems()
	if err != nil {
		return nil, err
	}
	for i := range playlists {
		playlists[i].Songs = lo.Map(items[playlists[i].ID], func(it playlistRow, _ int) PlaylistItem {
			return it.item
		})
		if playlists[i].Songs == nil {
			playlists[i].Songs = []PlaylistItem{}
		}
	}
	return playlists, nil
}

type playlistRow struct {
	playlistID string
	item       PlaylistItem
}

func (c *Catalog) allItems() (map[string][]playlistRow, error) {
	rows, err := c.db.Query(`
		SELECT playlist_id, position, song_path
		FROM playlist_songs
		ORDER BY playlist_id, position
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query playlist songs")
	}
	defer rows.Close()

	var all []playlistRow
	for rows.Next() {
		var r playlistRow
		if err := rows.Scan(&r.playlistID, &r.item.Position, &r.item.SongPath); err != nil {
			return nil, errors.Wrap(err, "scan playlist song")
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate playlist songs")
	}
	return lo.GroupBy(all, func(r playlistRow) string { return r.playlistID }), nil
}

// GetPlaylistDetails returns one playlist with its entries.
func (c *Catalog) GetPlaylistDetails(id string) (*Playlist, error) {
	var pl Playlist
	var cover sql.NullString
	err := c.db.QueryRow(`
		SELECT id, name, cover_image_path FROM playlists WHERE id = ?
	`, id).Scan(&pl.ID, &pl.Name, &cover)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrPlaylistNotFound, "%s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "query playlist")
	}
	pl.CoverImagePath = dbutil.NullStringToPtr(cover)

	rows, err := c.db.Query(`
		SELECT position, song_path FROM playlist_songs
		WHERE playlist_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, errors.Wrap(err, "query playlist songs")
	}
	defer rows.Close()

	pl.Songs = []PlaylistItem{}
	for rows.Next() {
		var it PlaylistItem
		if err := rows.Scan(&it.Position, &it.SongPath); err != nil {
			return nil, errors.Wrap(err, "scan playlist song")
		}
		pl.Songs = append(pl.Songs, it)
	}
	return &pl, errors.Wrap(rows.Err(), "iterate playlist songs")
}

// UpdatePlaylistSongOrder replaces the entries with songPaths, numbered from 0.
func (c *Catalog) UpdatePlaylistSongOrder(id string, songPaths []string) error {
	return dbutil.WithTx(c.db, func(tx *sql.Tx) error {
		if err := requirePlaylist(tx, id); err != nil {
			return err
		}
		return replaceItems(tx, id, songPaths)
	})
}

// AddSongsToPlaylist appends songPaths after the existing entries.
func (c *Catalog) AddSongsToPlaylist(id string, songPaths []string) error {
	if len(songPaths) == 0 {
		return nil
	}
	return dbutil.WithTx(c.db, func(tx *sql.Tx) error {
		if err := requirePlaylist(tx, id); err != nil {
			return err
		}
		var count int
		if err := tx.QueryRow(`
			SELECT COUNT(*) FROM playlist_songs WHERE playlist_id = ?
		`, id).Scan(&count); err != nil {
			return errors.Wrap(err, "count playlist songs")
		}
		items := lo.Map(songPaths, func(p string, i int) PlaylistItem {
			return PlaylistItem{Position: count + i, SongPath: p}
		})
		return insertItems(tx, id, items)
	})
}

// DeletePlaylist removes the playlist and its entries. Failing to remove the
// cover file is logged only.
func (c *Catalog) DeletePlaylist(id string) error {
	pl, err := c.GetPlaylistDetails(id)
	if err != nil {
		return err
	}

	if _, err := c.db.Exec(`DELETE FROM playlists WHERE id = ?`, id); err != nil {
		return errors.Wrap(err, "delete playlist")
	}

	if pl.CoverImagePath != nil {
		if err := removeFile(c.CoverFile(*pl)); err != nil {
			log.Warn().Err(err).Str("playlist", id).Msg("delete cover image")
		}
	}
	return nil
}

// CoverFile returns the absolute cover path of pl, or "" when it has none.
func (c *Catalog) CoverFile(pl Playlist) string {
	if pl.CoverImagePath == nil || *pl.CoverImagePath == "" {
		return ""
	}
	if filepath.IsAbs(*pl.CoverImagePath) {
		return *pl.CoverImagePath
	}
	return filepath.Join(c.MusicFolder(), *pl.CoverImagePath)
}

func requirePlaylist(tx *sql.Tx, id string) error {
	var exists int
	err := tx.QueryRow(`SELECT 1 FROM playlists WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrapf(ErrPlaylistNotFound, "%s", id)
	}
	return errors.Wrap(err, "query playlist")
}

func insertItems(tx *sql.Tx, id string, items []PlaylistItem) error {
	if len(items) == 0 {
		return nil
	}
	stmt, err := tx.Prepare(`
		INSERT INTO playlist_songs (playlist_id, position, song_path) VALUES (?, ?, ?)
	`)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.Exec(id, it.Position, it.SongPath); err != nil {
			return errors.Wrap(err, "insert playlist song")
		}
	}
	return nil
}

func replaceItems(tx *sql.Tx, id string, songPaths []string) error {
	if _, err := tx.Exec(`DELETE FROM playlist_songs WHERE playlist_id = ?`, id); err != nil {
		return errors.Wrap(err, "clear playlist songs")
	}
	return insertItems(tx, id, densePositions(songPaths))
}

func playlistsContaining(tx *sql.Tx, path string) ([]string, error) {
	rows, err := tx.Query(`
		SELECT DISTINCT playlist_id FROM playlist_songs WHERE song_path = ?
	`, path)
	if err != nil {
		return nil, errors.Wrap(err, "query playlists for song")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scan playlist id")
		}
		ids = append(ids, id)
	}
	return ids, errors.Wrap(rows.Err(), "iterate playlist ids")
}

func playlistPaths(tx *sql.Tx, id string) ([]string, error) {
	rows, err := tx.Query(`
		SELECT song_path FROM playlist_songs WHERE playlist_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, errors.Wrap(err, "query playlist songs")
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, errors.Wrap(err, "scan playlist song")
		}
		paths = append(paths, p)
	}
	return paths, errors.Wrap(rows.Err(), "iterate playlist songs")
}
