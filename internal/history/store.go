// Package history records searches, edits and deletes in a local SQLite
// database so they can be listed later with the history command.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded operation
type Entry struct {
	ID         string
	SessionID  string
	Command    string // check, edit, delete
	Action     string // search, keyword, view, replace-line, ...
	Root       string
	Path       string
	Target     string // name or keyword the user typed
	Detail     string
	MatchCount int
	Timestamp  time.Time
}

// Recorder persists entries. Store is the SQLite implementation.
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
}

// NopRecorder discards entries. Used when history is disabled.
type NopRecorder struct{}

// Record does nothing.
func (NopRecorder) Record(ctx context.Context, entry *Entry) error { return nil }

// Store manages the SQLite history database
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a new Store instance and initializes the database
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	// busy_timeout goes first so the remaining pragmas wait on locks
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	store := &Store{db: db, dbPath: dbPath}
	if err := store.ApplyMigrations(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return store, nil
}

// execWithRetry executes a SQL statement with exponential backoff retry on lock errors.
func execWithRetry(db *sql.DB, sql string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(sql)
		if err == nil {
			return nil
		}

		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}

		lastErr = err
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record inserts entry, assigning an ID and timestamp when they are unset.
func (s *Store) Record(ctx context.Context, entry *Entry) error {
	if entry.Command == "" || entry.Action == "" {
		return fmt.Errorf("record history: command and action are required")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	query := `INSERT INTO operations
		(id, session_id, command, action, root, path, target, detail, match_count, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID, entry.SessionID, entry.Command, entry.Action, entry.Root,
		entry.Path, entry.Target, entry.Detail, entry.MatchCount, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	query := `SELECT id, session_id, command, action, COALESCE(root, ''), COALESCE(path, ''),
		COALESCE(target, ''), COALESCE(detail, ''), match_count, timestamp
		FROM operations
		ORDER BY timestamp DESC, rowid DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Command, &e.Action, &e.Root, &e.Path,
			&e.Target, &e.Detail, &e.MatchCount, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM operations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return n, nil
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM operations`)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return n, nil
}
