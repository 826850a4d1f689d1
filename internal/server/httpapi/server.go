// Package httpapi provides the HTTP API server and handlers for Daybook.
package httpapi

import (
	"context"
	"net/http"

	"github.com/daybookapp/daybook/internal/logging"
	"github.com/daybookapp/daybook/internal/server/config"
	"github.com/daybookapp/daybook/internal/server/models"
	"github.com/daybookapp/daybook/internal/server/ratelimit"
	"github.com/daybookapp/daybook/internal/server/repositories/entries"
	"github.com/daybookapp/daybook/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
)

// Service surfaces consumed by the handlers. The concrete implementations
// live in internal/server/services; tests substitute fakes.
type (
	UserService interface {
		Register(ctx context.Context, username, password string) (*models.User, error)
		Login(ctx context.Context, username, password string) (*models.User, *services.TokenPair, error)
		RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
		Logout(ctx context.Context, userID string) error
	}

	EntryService interface {
		Save(ctx context.Context, userID string, entry *models.Entry) (*models.Entry, error)
		Get(ctx context.Context, userID string, partner bool, date string) (*models.Entry, error)
		List(ctx context.Context, userID string, partner bool, f entries.Filter) ([]*models.Entry, error)
		Delete(ctx context.Context, userID string, date string) error
	}

	SettingsService interface {
		Get(ctx context.Context, userID string) (*models.Settings, error)
		Put(ctx context.Context, userID string, s *models.Settings) error
	}

	PairingService interface {
		CreateInvite(ctx context.Context, userID string) (string, error)
		AcceptInvite(ctx context.Context, userID string, code string) error
		RemovePartner(ctx context.Context, userID string) error
		Partner(ctx context.Context, userID string) (string, error)
	}

	UploadService interface {
		GetPresignedPutURL(ctx context.Context) (string, string, error)
		GetPresignedGetURL(ctx context.Context, key string) (string, error)
	}
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	cfg      *config.Config
	logger   logging.Logger
	users    UserService
	entries  EntryService
	settings SettingsService
	pairing  PairingService
	uploads  UploadService
	limiter  *ratelimit.KeyedRateLimiter
	validate *validator.Validate
	router   *chi.Mux
}

// NewServer creates an HTTP server with all routes configured.
func NewServer(cfg *config.Config, logger logging.Logger,
	users UserService, entries EntryService, settings SettingsService,
	pairing PairingService, uploads UploadService) *Server {

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		users:    users,
		entries:  entries,
		settings: settings,
		pairing:  pairing,
		uploads:  uploads,
		limiter:  ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst),
		validate: validator.New(),
		router:   chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints. Logout needs a valid access token, the rest are
		// public; all of them sit behind the per-IP rate limit to slow down
		// credential guessing.
		r.Route("/auth", func(r chi.Router) {
			r.Use(s.rateLimit)
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/refresh", s.handleRefresh)
			r.With(s.requireAuth).Post("/logout", s.handleLogout)
		})

		// Entries (require auth).
		r.Route("/entries", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleSaveEntry)
			r.Get("/", s.handleListEntries)
			r.Get("/{date}", s.handleGetEntry)
			r.Delete("/{date}", s.handleDeleteEntry)
		})

		// Appearance settings (require auth).
		r.Route("/settings", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleGetSettings)
			r.Put("/", s.handlePutSettings)
		})

		// Attachment uploads (require auth).
		r.Route("/uploads", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/presign-put", s.handlePresignPut)
			r.Get("/presign-get", s.handlePresignGet)
		})

		// Partner pairing (require auth).
		r.Route("/pairing", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleGetPartner)
			r.Post("/invite", s.handleCreateInvite)
			r.Post("/accept", s.handleAcceptInvite)
			r.Delete("/", s.handleRemovePartner)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
