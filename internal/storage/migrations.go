package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
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
				`CREATE TABLE IF NOT EXISTS transactions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					external_reference TEXT NOT NULL DEFAULT '',
					reference_number TEXT NOT NULL DEFAULT '',
					date DATETIME NOT NULL,
					value_date DATETIME,
					booking_text TEXT NOT NULL DEFAULT '',
					payment_purpose TEXT NOT NULL DEFAULT '',
					amount_details TEXT NOT NULL DEFAULT '',
					details TEXT NOT NULL DEFAULT '',
					currency TEXT NOT NULL DEFAULT 'CHF',
					debit_amount REAL NOT NULL DEFAULT 0,
					credit_amount REAL NOT NULL DEFAULT 0,
					balance_after REAL NOT NULL DEFAULT 0,
					type TEXT NOT NULL,
					amount REAL NOT NULL,
					year_key TEXT NOT NULL,
					month_key TEXT NOT NULL,
					day_key TEXT NOT NULL,
					category TEXT NOT NULL DEFAULT 'Uncategorized',
					category_manual INTEGER NOT NULL DEFAULT 0,
					import_batch_id TEXT NOT NULL,
					imported_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_year_key ON transactions(year_key)`,
				`CREATE INDEX idx_transactions_month_key_type ON transactions(month_key, type)`,
				`CREATE INDEX idx_transactions_day_key_type ON transactions(day_key, type)`,
				`CREATE INDEX idx_transactions_category ON transactions(category)`,
				`CREATE INDEX idx_transactions_batch ON transactions(import_batch_id)`,

				`CREATE TABLE IF NOT EXISTS settings (
					key TEXT PRIMARY KEY,
					user_full_name TEXT NOT NULL DEFAULT '',
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
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
		Description: "Enforce uniqueness of non-empty external references",
		Up: func(tx *sql.Tx) error {
			// Deduplication was previously check-then-insert only; the
			// partial index makes it a hard constraint so concurrent
			// imports of overlapping files cannot double-count.
			_, err := tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_external_reference
				ON transactions(external_reference) WHERE external_reference != ''`)
			return err
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
