// ABOUTME: SQLite-backed gateway using modernc.org/sqlite (pure Go, no CGO).
// ABOUTME: The state lives in a single-row blob table.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS app_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    data BLOB NOT NULL,
    updated_at TEXT NOT NULL
);`

// SQLiteStore persists the state as a blob in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database under dataDir.
func OpenSQLite(dataDir string) (*SQLiteStore, error) {
	if err := ensureDir(dataDir); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "fittrack.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the stored state, or returns (nil, nil) when empty.
func (s *SQLiteStore) Load() (*models.AppState, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM app_state WHERE id = 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	return unmarshalState(data)
}

// Save writes the full state.
func (s *SQLiteStore) Save(state *models.AppState) error {
	data, err := marshalState(state)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO app_state (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
