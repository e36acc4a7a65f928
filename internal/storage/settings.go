package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// settingsKey is the single settings row; the app is single-user.
const settingsKey = "default"

// GetUserFullName returns the configured account holder name, or "" when it
// was never set.
func (s *SQLiteStore) GetUserFullName(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	var name string
	err := s.db.QueryRowContext(ctx,
		"SELECT user_full_name FROM settings WHERE key = ?", settingsKey).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read settings: %w", err)
	}
	return name, nil
}

// SetUserFullName stores the account holder name used for savings-transfer
// detection.
func (s *SQLiteStore) SetUserFullName(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, user_full_name, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET user_full_name = excluded.user_full_name, updated_at = CURRENT_TIMESTAMP`,
		settingsKey, name)
	if err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}
	return nil
}
