// Package api implements the HTTP client for the Daybook server. It owns the
// access/refresh token pair and transparently refreshes an expired access
// token once per call before failing over to the caller.
package api

import (
	"context"

	"github.com/daybookapp/daybook/internal/client/models"
)

// ListOptions narrows an entry listing. Zero fields are omitted from the query.
type ListOptions struct {
	StartDate   string
	EndDate     string
	SearchQuery string
	Limit       int
	// Partner switches the listing to the paired partner's entries (read-only).
	Partner bool
}

// Client is the remote surface the CLI and the autosave controller consume.
type Client interface {
	Close() error

	// SetTokens seeds a previously persisted token pair; OnTokens registers
	// a callback invoked whenever the pair changes (login, refresh).
	SetTokens(access, refresh string)
	OnTokens(fn func(access, refresh string))

	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*models.SessionInfo, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error

	SaveEntry(ctx context.Context, draft *models.Draft) (*models.Entry, error)
	ListEntries(ctx context.Context, opts ListOptions) ([]models.Entry, error)
	DeleteEntry(ctx context.Context, date string) error

	GetSettings(ctx context.Context) (*models.Settings, error)
	PutSettings(ctx context.Context, s *models.Settings) error

	PresignPut(ctx context.Context, contentType string) (key string, url string, err error)
	PresignGet(ctx context.Context, key string) (url string, err error)

	CreatePairInvite(ctx context.Context) (code string, err error)
	AcceptPairInvite(ctx context.Context, code string) error
	RemovePartner(ctx context.Context) error
}
