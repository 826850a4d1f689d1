// Package localdb opens the client's local SQLite database, applies embedded
// migrations, and vends the repositories built on top of it.
package localdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/daybookapp/daybook/internal/client/migrations"
	"github.com/daybookapp/daybook/internal/client/repositories/backups"
	"github.com/daybookapp/daybook/internal/client/repositories/session"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local stores the client works with.
type Repositories struct {
	Backups backups.Repository
	Session session.Repository
	DB      *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn,
// migrates it, and returns the repositories bound to it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		Backups: backups.NewSQLiteRepository(db),
		Session: session.NewSQLiteRepository(db),
		DB:      db,
	}, nil
}
