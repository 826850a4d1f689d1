// Package entries provides a PostgreSQL-backed repository for journal entries.
package entries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/dbx"
	"github.com/daybookapp/daybook/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
// Images and audio note keys live in jsonb columns.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func marshalKeys(keys []string) ([]byte, error) {
	if keys == nil {
		keys = []string{}
	}
	return json.Marshal(keys)
}

func unmarshalKeys(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// Upsert inserts an entry or, if the user already has an entry for that date,
// overwrites its content fields. The returned entry has ID and timestamps set.
func (r *PostgresRepository) Upsert(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	images, err := marshalKeys(entry.Images)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	audio, err := marshalKeys(entry.AudioNotes)
	if err != nil {
		return nil, fmt.Errorf("marshal audio notes: %w", err)
	}

	query := `
		INSERT INTO entries (user_id, entry_date, content, mood, weather, images, audio_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, entry_date)
		DO UPDATE SET
			content = EXCLUDED.content,
			mood = EXCLUDED.mood,
			weather = EXCLUDED.weather,
			images = EXCLUDED.images,
			audio_notes = EXCLUDED.audio_notes,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Date, entry.Content, entry.Mood, entry.Weather, images, audio).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// GetByDate returns the user's entry for a date or common.ErrorNotFound.
func (r *PostgresRepository) GetByDate(ctx context.Context, userID string, date string) (*models.Entry, error) {
	query := `
		SELECT id, user_id, to_char(entry_date, 'YYYY-MM-DD'), content, mood, weather, images, audio_notes, created_at, updated_at
		FROM entries
		WHERE user_id = $1 AND entry_date = $2
	`
	entry := &models.Entry{}
	var images, audio []byte
	err := r.db.QueryRowContext(ctx, query, userID, date).Scan(
		&entry.ID, &entry.UserID, &entry.Date, &entry.Content, &entry.Mood, &entry.Weather,
		&images, &audio, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := unmarshalKeys(images, &entry.Images); err != nil {
		return nil, fmt.Errorf("unmarshal images: %w", err)
	}
	if err := unmarshalKeys(audio, &entry.AudioNotes); err != nil {
		return nil, fmt.Errorf("unmarshal audio notes: %w", err)
	}
	return entry, nil
}

// List returns a user's entries, newest first, narrowed by the filter.
func (r *PostgresRepository) List(ctx context.Context, userID string, f Filter) ([]*models.Entry, error) {
	query := `
		SELECT id, user_id, to_char(entry_date, 'YYYY-MM-DD'), content, mood, weather, images, audio_notes, created_at, updated_at
		FROM entries
		WHERE user_id = $1
	`
	args := []any{userID}

	if f.StartDate != "" {
		args = append(args, f.StartDate)
		query += " AND entry_date >= $" + strconv.Itoa(len(args))
	}
	if f.EndDate != "" {
		args = append(args, f.EndDate)
		query += " AND entry_date <= $" + strconv.Itoa(len(args))
	}
	if f.SearchQuery != "" {
		args = append(args, "%"+f.SearchQuery+"%")
		query += " AND content ILIKE $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY entry_date DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		var item models.Entry
		var images, audio []byte
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Date, &item.Content, &item.Mood, &item.Weather,
			&images, &audio, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := unmarshalKeys(images, &item.Images); err != nil {
			return nil, fmt.Errorf("unmarshal images: %w", err)
		}
		if err := unmarshalKeys(audio, &item.AudioNotes); err != nil {
			return nil, fmt.Errorf("unmarshal audio notes: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByDate removes the user's entry for a date. Missing rows yield
// common.ErrorNotFound.
func (r *PostgresRepository) DeleteByDate(ctx context.Context, userID string, date string) error {
	query := `
		DELETE FROM entries
		WHERE user_id = $1 AND entry_date = $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, date)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
