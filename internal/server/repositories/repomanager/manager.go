package repomanager

import (
	"context"
	"database/sql"

	"github.com/daybookapp/daybook/internal/dbx"
	"github.com/daybookapp/daybook/internal/server/repositories/entries"
	"github.com/daybookapp/daybook/internal/server/repositories/pairinvites"
	"github.com/daybookapp/daybook/internal/server/repositories/refreshtokens"
	"github.com/daybookapp/daybook/internal/server/repositories/settings"
	"github.com/daybookapp/daybook/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Entries(db dbx.DBTX) entries.Repository
	Settings(db dbx.DBTX) settings.Repository
	PairInvites(db dbx.DBTX) pairinvites.Repository
}
