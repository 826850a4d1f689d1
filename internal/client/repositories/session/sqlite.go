package session

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

// Get returns the stored value for name, or common.ErrorNotFound.
func (r *SQLiteRepository) Get(ctx context.Context, name string) (string, error) {
	query := `SELECT value FROM session WHERE name = ?`
	var value string
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("query row scan failed: %w", err)
	}
	return value, nil
}

// Set upserts the value for name.
func (r *SQLiteRepository) Set(ctx context.Context, name string, value string) error {
	query := `INSERT INTO session (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("failed to upsert session value: %w", err)
	}
	return nil
}

// Clear removes all session values (logout).
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
