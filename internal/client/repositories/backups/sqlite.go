package backups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns the stored value for key, or common.ErrorNotFound.
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM backups WHERE key = ?`
	var value string
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("query row scan failed: %w", err)
	}
	return value, nil
}

// Set upserts the value for key.
func (r *SQLiteRepository) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO backups (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert backup: %w", err)
	}
	return nil
}

// Remove deletes the value for key. Removing an absent key is not an error.
func (r *SQLiteRepository) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM backups WHERE key = ?`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}
