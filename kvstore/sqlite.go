package kvstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLite is a Store backed by a single-file SQLite database, the "local
// device storage" of the tracker.
type SQLite struct {
	conn *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the store at the given file path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("cannot create storage directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("cannot open storage %q: %w", path, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("cannot ping storage %q: %w", path, err)
	}
	// Single-user tool, a single connection avoids SQLITE_BUSY entirely.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("cannot initialize storage schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("opened key-value store")
	return &SQLite{conn: conn, path: path}, nil
}

// Get reads a key.
func (s *SQLite) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return value, true, nil
}

// Put overwrites a key.
func (s *SQLite) Put(key string, value []byte) error {
	if _, err := s.conn.Exec(`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	return nil
}

// Delete removes a key.
func (s *SQLite) Delete(key string) error {
	if _, err := s.conn.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("cannot delete key %q: %w", key, err)
	}
	return nil
}

// Close releases the database.
func (s *SQLite) Close() error { return s.conn.Close() }

var _ Store = (*SQLite)(nil)
