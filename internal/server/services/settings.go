package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/server/models"
	"github.com/daybookapp/daybook/internal/server/repositories/repomanager"
)

// SettingsService stores per-user appearance settings as a single row.
// Interpretation of the values (themes, fallbacks) is entirely client-side.
type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager) *SettingsService {
	return &SettingsService{db: db, repomanager: m}
}

// Get returns the user's settings. A user who never saved settings gets an
// empty row rather than an error, so clients can fall back to defaults.
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.Settings, error) {
	repo := s.repomanager.Settings(s.db)
	settings, err := repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &models.Settings{UserID: userID}, nil
		}
		return nil, fmt.Errorf("error loading settings: %v", err)
	}
	return settings, nil
}

// Put replaces the user's settings row.
func (s *SettingsService) Put(ctx context.Context, userID string, settings *models.Settings) error {
	settings.UserID = userID
	repo := s.repomanager.Settings(s.db)
	if err := repo.Upsert(ctx, settings); err != nil {
		return fmt.Errorf("error saving settings: %v", err)
	}
	return nil
}
