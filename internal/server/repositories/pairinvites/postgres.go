// Package pairinvites provides a PostgreSQL-backed repository for partner
// invite codes.
package pairinvites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/dbx"
	"github.com/daybookapp/daybook/internal/server/models"
)

// PostgresRepository implements invite code storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new invite code for userID expiring at now+validity.
func (r *PostgresRepository) Create(ctx context.Context, userID string, code string, validity time.Duration) error {
	query := `
		INSERT INTO pair_invites (user_id, code, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, code, time.Now().Add(validity)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindByCode returns the invite with the given code or common.ErrorNotFound.
func (r *PostgresRepository) FindByCode(ctx context.Context, code string) (*models.PairInvite, error) {
	query := `
		SELECT id, user_id, code, expires_at
		FROM pair_invites
		WHERE code = $1
	`
	invite := &models.PairInvite{}
	err := r.db.QueryRowContext(ctx, query, code).
		Scan(&invite.ID, &invite.UserID, &invite.Code, &invite.Expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return invite, nil
}

// DeleteForUser removes all invites issued by a user. Used once an invite is
// redeemed or the user unpairs.
func (r *PostgresRepository) DeleteForUser(ctx context.Context, userID string) error {
	query := `
		DELETE FROM pair_invites
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
