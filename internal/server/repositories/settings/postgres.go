// Package settings provides a PostgreSQL-backed repository for per-user
// appearance settings.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/dbx"
	"github.com/daybookapp/daybook/internal/server/models"
)

// PostgresRepository implements the single-row-per-user settings storage over
// a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get returns the user's settings row or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Settings, error) {
	query := `
		SELECT user_id, theme, primary_color, accent_color, background_color,
		       font_family, font_size, background_type, background_value, background_blur, updated_at
		FROM settings
		WHERE user_id = $1
	`
	s := &models.Settings{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.Theme, &s.PrimaryColor, &s.AccentColor, &s.BackgroundColor,
		&s.FontFamily, &s.FontSize, &s.BackgroundType, &s.BackgroundValue, &s.BackgroundBlur, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// Upsert writes the user's settings row, replacing all fields.
func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Settings) error {
	query := `
		INSERT INTO settings (user_id, theme, primary_color, accent_color, background_color,
		                      font_family, font_size, background_type, background_value, background_blur)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id)
		DO UPDATE SET
			theme = EXCLUDED.theme,
			primary_color = EXCLUDED.primary_color,
			accent_color = EXCLUDED.accent_color,
			background_color = EXCLUDED.background_color,
			font_family = EXCLUDED.font_family,
			font_size = EXCLUDED.font_size,
			background_type = EXCLUDED.background_type,
			background_value = EXCLUDED.background_value,
			background_blur = EXCLUDED.background_blur,
			updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query,
		s.UserID, s.Theme, s.PrimaryColor, s.AccentColor, s.BackgroundColor,
		s.FontFamily, s.FontSize, s.BackgroundType, s.BackgroundValue, s.BackgroundBlur); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
