package state

import (
	"database/sql"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"

	dbutil "github.com/llehouerou/imusic/internal/db"
)

const (
	appName    = "imusic"
	dbFileName = "imusic.db"
)

// Manager is the SQLite-backed preference store.
type Manager struct {
	db    *sql.DB
	owned bool
}

// Open opens (or creates) the database at path and initializes the schema.
// The returned Manager owns the connection and closes it in Close.
func Open(path string) (*Manager, error) {
	conn, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "init schema")
	}
	return &Manager{db: conn, owned: true}, nil
}

// New wraps an already opened database. The caller keeps ownership.
func New(conn *sql.DB) (*Manager, error) {
	if err := InitSchema(conn); err != nil {
		return nil, errors.Wrap(err, "init schema")
	}
	return &Manager{db: conn}, nil
}

// DefaultPath returns the XDG data location of the database file.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// DB exposes the underlying connection so the catalog can share it.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// Get returns the stored value for key.
func (m *Manager) Get(key string) (string, bool, error) {
	var value string
	err := m.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get preference %q", key)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (m *Manager) Set(key, value string) error {
	_, err := m.db.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return errors.Wrapf(err, "set preference %q", key)
}

// Close closes the database if the Manager opened it.
func (m *Manager) Close() error {
	if !m.owned {
		return nil
	}
	return m.db.Close()
}
