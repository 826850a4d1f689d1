// Package cli implements the interactive Daybook client: a REPL over the
// remote API, the local backup store and the personalization state.
package cli

import (
	"bufio"
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/daybookapp/daybook/internal/client/api"
	"github.com/daybookapp/daybook/internal/client/config"
	"github.com/daybookapp/daybook/internal/client/localdb"
	"github.com/daybookapp/daybook/internal/client/personalization"
	"github.com/daybookapp/daybook/internal/client/repositories/session"
	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	client   api.Client
	repos    *localdb.Repositories
	logger   logging.Logger
	personal *personalization.Manager
	userID   string
	userName string
	Mode     Mode
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	repos, err := localdb.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient := api.NewHTTPClient(c.ServerBaseURL)

	a := &App{
		config: c,
		client: apiClient,
		repos:  repos,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
	}

	// Persist every rotated token pair so a refresh mid-session survives a
	// restart just like a fresh login does.
	apiClient.OnTokens(func(access, refresh string) {
		if err := repos.Session.Set(ctx, session.KeyAccessToken, access); err != nil {
			logger.Warn(ctx, "session save failed", "error", err)
			return
		}
		if err := repos.Session.Set(ctx, session.KeyRefreshToken, refresh); err != nil {
			logger.Warn(ctx, "session save failed", "error", err)
		}
	})

	a.personal = personalization.NewManager(personalization.Params{
		Sink:     personalization.NewMapSink(),
		Settings: apiClient,
		Logger:   logger,
		Debounce: c.SettingsDebounce,
	})

	a.restoreSession(ctx)

	return a, nil
}

// restoreSession seeds the API client with a previously persisted token pair,
// if one exists. Missing keys mean no stored session; anything else is logged
// and the client starts logged out.
func (a *App) restoreSession(ctx context.Context) {
	access, err := a.repos.Session.Get(ctx, session.KeyAccessToken)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			a.logger.Warn(ctx, "session restore failed", "error", err)
		}
		return
	}
	refresh, err := a.repos.Session.Get(ctx, session.KeyRefreshToken)
	if err != nil {
		return
	}
	userID, err := a.repos.Session.Get(ctx, session.KeyUserID)
	if err != nil {
		return
	}
	userName, err := a.repos.Session.Get(ctx, session.KeyUsername)
	if err != nil {
		return
	}

	a.client.SetTokens(access, refresh)
	a.userID = userID
	a.userName = userName
	a.logger.Info(ctx, "session restored", "username", userName)

	// A restored session is an authenticated session start like a login, so
	// the stored appearance settings apply right away.
	a.loadSettings(ctx)
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.personal.Close()
	a.Root(ctx)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
