/*
Package storage implements persistent storage for usage snapshots and
search analytics.

The database lives at ~/.glyphpick/usage.db and uses modernc.org/sqlite
(a pure Go, CGo-free implementation). Storage degrades gracefully: if the
database cannot be opened, operations become warned no-ops and the picker
keeps working from memory.
*/
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/khanglvm/glyphpick/internal/learning"
)

// SQLiteStorage persists usage snapshots and search history.
type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewStorage creates a storage instance at the default path
// (~/.glyphpick/usage.db). The directory is created on Init if needed.
func NewStorage() *SQLiteStorage {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: failed to get home directory: %v", err)
		return &SQLiteStorage{enabled: false}
	}
	return NewStorageAt(filepath.Join(home, ".glyphpick", "usage.db"))
}

// NewStorageAt creates a storage instance at an explicit database path.
func NewStorageAt(dbPath string) *SQLiteStorage {
	return &SQLiteStorage{
		dbPath:  dbPath,
		enabled: true,
	}
}

// Init opens the database and runs migrations. If initialization fails,
// storage is disabled and subsequent operations become no-ops.
func (s *SQLiteStorage) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		dbDir := filepath.Dir(s.dbPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.enabled = false
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			return
		}

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to connect to database: %w", err)
			s.enabled = false
			db.Close()
			return
		}

		s.db = db

		if err := s.migrate(); err != nil {
			initErr = err
			s.enabled = false
			db.Close()
			s.db = nil
		}
	})

	return initErr
}

// migrate creates the schema if it does not exist.
func (s *SQLiteStorage) migrate() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS usage_scores (
			glyph_id TEXT PRIMARY KEY,
			score REAL NOT NULL,
			last_used_at TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create usage_scores table: %w", err)
	}

	if _, err := s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_usage_scores_score
		ON usage_scores(score DESC)
	`); err != nil {
		return fmt.Errorf("failed to create usage_scores score index: %w", err)
	}

	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS search_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			search_id TEXT NOT NULL UNIQUE,
			query_hash TEXT NOT NULL,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			results_count INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create search_history table: %w", err)
	}

	if _, err := s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_search_history_timestamp
		ON search_history(timestamp DESC)
	`); err != nil {
		return fmt.Errorf("failed to create search_history timestamp index: %w", err)
	}

	return nil
}

// SaveSnapshot replaces the persisted usage rows with the contents of a
// snapshot blob (the tracker's JSON map encoding). Implements the picker's
// SnapshotStore interface.
func (s *SQLiteStorage) SaveSnapshot(blob []byte) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	var records map[string]learning.Record
	if err := json.Unmarshal(blob, &records); err != nil {
		return fmt.Errorf("failed to decode usage snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM usage_scores`); err != nil {
		return fmt.Errorf("failed to clear usage rows: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO usage_scores (glyph_id, score, last_used_at)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare usage insert: %w", err)
	}
	defer stmt.Close()

	for id, rec := range records {
		if _, err := stmt.Exec(id, rec.Score, rec.LastUsedAt.Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("failed to insert usage row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the persisted usage rows back into a snapshot blob.
// ok is false when no rows exist.
func (s *SQLiteStorage) LoadSnapshot() ([]byte, bool, error) {
	if !s.enabled || s.db == nil {
		return nil, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT glyph_id, score, last_used_at FROM usage_scores`)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query usage rows: %w", err)
	}
	defer rows.Close()

	records := make(map[string]learning.Record)
	for rows.Next() {
		var id, lastUsed string
		var score float64
		if err := rows.Scan(&id, &score, &lastUsed); err != nil {
			return nil, false, fmt.Errorf("failed to scan usage row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, lastUsed)
		if err != nil {
			log.Printf("Warning: skipping usage row with bad timestamp: %v", err)
			continue
		}
		records[id] = learning.Record{Score: score, LastUsedAt: ts}
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read usage rows: %w", err)
	}

	if len(records) == 0 {
		return nil, false, nil
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode usage snapshot: %w", err)
	}
	return blob, true, nil
}

// RecordSearch records a search query for analytics.
func (s *SQLiteStorage) RecordSearch(record SearchRecord) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO search_history (search_id, query_hash, timestamp, results_count)
		VALUES (?, ?, ?, ?)
	`,
		record.SearchID,
		record.QueryHash,
		record.Timestamp.Format(time.RFC3339),
		record.ResultsCount,
	)
	if err != nil {
		log.Printf("Warning: failed to record search: %v", err)
	}

	return nil
}

// Cleanup removes search history older than the retention period.
func (s *SQLiteStorage) Cleanup(retention time.Duration) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-retention).Format(time.RFC3339)
	if _, err := s.db.Exec(`DELETE FROM search_history WHERE timestamp < ?`, cutoff); err != nil {
		return fmt.Errorf("failed to clean up search history: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
