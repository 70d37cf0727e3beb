package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Migration represents a database schema migration
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// migrations is the ordered list of all database migrations
var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema with operations table",
		SQL: `
CREATE TABLE IF NOT EXISTS operations (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    command TEXT NOT NULL,
    action TEXT NOT NULL,
    path TEXT,
    target TEXT,
    detail TEXT,
    match_count INTEGER DEFAULT 0,
    timestamp TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_operations_timestamp ON operations(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_operations_command ON operations(command);
`,
	},
	{
		Version:     2,
		Description: "Add search root column and session index",
		// root is added through addColumnIfNotExistsTx; only the index is plain SQL
		SQL: `
CREATE INDEX IF NOT EXISTS idx_operations_session ON operations(session_id);
`,
	},
}

// MigrationVersion represents a record of an applied migration
type MigrationVersion struct {
	Version   int
	AppliedAt time.Time
}

// ApplyMigrations applies all pending migrations to the database.
// Runs inside a single transaction so concurrent initializations serialize.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin exclusive transaction: %w", err)
	}
	defer tx.Rollback() // no-op if committed

	if err := ensureSchemaVersionTableTx(tx); err != nil {
		return fmt.Errorf("ensure schema_version table: %w", err)
	}

	appliedVersions, err := getAppliedVersionsTx(tx)
	if err != nil {
		return fmt.Errorf("get applied versions: %w", err)
	}

	applied := make(map[int]bool)
	for _, v := range appliedVersions {
		applied[v.Version] = true
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}

		if migration.Version == 2 {
			if err := addColumnIfNotExistsTx(ctx, tx, "operations", "root", "TEXT"); err != nil {
				return fmt.Errorf("apply migration %d (%s): %w", migration.Version, migration.Description, err)
			}
		}

		if migration.SQL != "" {
			if _, err := tx.ExecContext(ctx, migration.SQL); err != nil {
				return fmt.Errorf("apply migration %d (%s): %w", migration.Version, migration.Description, err)
			}
		}

		if err := recordMigrationTx(ctx, tx, migration.Version); err != nil {
			return fmt.Errorf("record migration %d: %w", migration.Version, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migrations: %w", err)
	}

	return nil
}

// GetLatestVersion returns the latest applied migration version
func (s *Store) GetLatestVersion() (int, error) {
	var version int
	query := `SELECT COALESCE(MAX(version), 0) FROM schema_version`
	if err := s.db.QueryRow(query).Scan(&version); err != nil {
		return 0, fmt.Errorf("query latest version: %w", err)
	}
	return version, nil
}

func ensureSchemaVersionTableTx(tx *sql.Tx) error {
	sqlStr := `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := tx.Exec(sqlStr); err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}
	return nil
}

func getAppliedVersionsTx(tx *sql.Tx) ([]*MigrationVersion, error) {
	query := `SELECT version, applied_at FROM schema_version ORDER BY version ASC`
	rows, err := tx.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query schema versions: %w", err)
	}
	defer rows.Close()

	var versions []*MigrationVersion
	for rows.Next() {
		v := &MigrationVersion{}
		if err := rows.Scan(&v.Version, &v.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate versions: %w", err)
	}

	return versions, nil
}

func recordMigrationTx(ctx context.Context, tx *sql.Tx, version int) error {
	query := `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`
	if _, err := tx.ExecContext(ctx, query, version); err != nil {
		return fmt.Errorf("insert migration version: %w", err)
	}
	return nil
}

// addColumnIfNotExistsTx adds a column unless PRAGMA table_info already lists it.
// SQLite has no ADD COLUMN IF NOT EXISTS.
func addColumnIfNotExistsTx(ctx context.Context, tx *sql.Tx, table, column, definition string) error {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return fmt.Errorf("query table info: %w", err)
	}

	exists := false
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			rows.Close()
			return fmt.Errorf("scan table info: %w", err)
		}
		if name == column {
			exists = true
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate table info: %w", err)
	}
	rows.Close()

	if exists {
		return nil
	}

	alterSQL := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition)
	if _, err := tx.ExecContext(ctx, alterSQL); err != nil {
		if strings.Contains(err.Error(), "duplicate column name") {
			return nil
		}
		return fmt.Errorf("alter table: %w", err)
	}
	return nil
}
