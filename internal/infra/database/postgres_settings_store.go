// internal/infra/database/postgres_settings_store.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"casework_notifier/internal/domain/settings"
)

// PostgresSettingsStore is the durable middle tier of the settings chain:
// slower than the in-process cache, faster and more available than
// re-reading the tracker workbook. The snapshot is replaced wholesale in
// a transaction; there is no partial-merge path.
type PostgresSettingsStore struct {
	db *sql.DB
}

func NewPostgresSettingsStore(db *sql.DB) *PostgresSettingsStore {
	return &PostgresSettingsStore{db: db}
}

// Load returns the stored snapshot, or settings.ErrTierMiss when the
// table is empty.
func (s *PostgresSettingsStore) Load(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM casework_settings`)
	if err != nil {
		return nil, fmt.Errorf("error querying casework_settings: %w", err)
	}
	defer rows.Close()

	snapshot := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("error scanning casework_settings row: %w", err)
		}
		snapshot[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating casework_settings rows: %w", err)
	}
	if len(snapshot) == 0 {
		return nil, settings.ErrTierMiss
	}
	return snapshot, nil
}

// Store replaces the whole snapshot atomically.
func (s *PostgresSettingsStore) Store(ctx context.Context, values map[string]string) error {
	txn, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for settings store: %w", err)
	}
	defer txn.Rollback() // Rollback if not committed

	if _, err := txn.ExecContext(ctx, `DELETE FROM casework_settings`); err != nil {
		return fmt.Errorf("failed to clear casework_settings: %w", err)
	}

	stmt, err := txn.PrepareContext(ctx, `INSERT INTO casework_settings (key, value, updated_at) VALUES ($1, $2, NOW())`)
	if err != nil {
		return fmt.Errorf("failed to prepare settings insert: %w", err)
	}
	defer stmt.Close()

	for key, value := range values {
		if _, err := stmt.ExecContext(ctx, key, value); err != nil {
			return fmt.Errorf("error inserting setting %q: %w", key, err)
		}
	}

	return txn.Commit()
}

// Invalidate drops the stored snapshot so the next Load falls through.
func (s *PostgresSettingsStore) Invalidate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM casework_settings`); err != nil {
		return fmt.Errorf("failed to invalidate casework_settings: %w", err)
	}
	return nil
}
