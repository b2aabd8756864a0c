package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS sessions (
					id TEXT PRIMARY KEY,
					country TEXT NOT NULL,
					incoterm TEXT NOT NULL,
					mode TEXT NOT NULL,
					commodity TEXT NOT NULL,
					shipper TEXT NOT NULL DEFAULT '',
					consignee TEXT NOT NULL DEFAULT '',
					reference TEXT NOT NULL DEFAULT '',
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS session_rows (
					session_id TEXT NOT NULL,
					row_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					document TEXT NOT NULL,
					mandatory TEXT NOT NULL,
					responsibility TEXT NOT NULL,
					mode TEXT NOT NULL,
					commodity TEXT NOT NULL,
					incoterm TEXT NOT NULL,
					notes TEXT NOT NULL DEFAULT '',
					legalization TEXT NOT NULL,
					risk_flag TEXT NOT NULL,
					provided INTEGER NOT NULL DEFAULT 0,
					PRIMARY KEY (session_id, row_id),
					FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_session_rows_session ON session_rows(session_id, position)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Index sessions by recency for listing",
		Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`CREATE INDEX idx_sessions_updated ON sessions(updated_at DESC)`); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		slog.Debug("applying migration", "version", m.Version, "description", m.Description)

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
	}

	final, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}
	if final != ExpectedSchemaVersion {
		return fmt.Errorf("schema version %d does not match expected %d", final, ExpectedSchemaVersion)
	}

	return nil
}

func (s *SQLiteStorage) schemaVersion(ctx context.Context) (int, error) {
	var version sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}
