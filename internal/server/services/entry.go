package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/server/models"
	"github.com/daybookapp/daybook/internal/server/repositories/entries"
	"github.com/daybookapp/daybook/internal/server/repositories/repomanager"
)

// EntryService implements journal entry operations. There is at most one
// entry per user per calendar day, so Save is an upsert keyed by date.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewEntryService constructs an EntryService.
func NewEntryService(db *sql.DB, m repomanager.RepositoryManager) *EntryService {
	return &EntryService{db: db, repomanager: m}
}

func validDate(date string) bool {
	_, err := time.Parse(common.DateLayout, date)
	return err == nil
}

// Save upserts the user's entry for entry.Date. The last write wins; there is
// no merging of concurrent writers.
func (s *EntryService) Save(ctx context.Context, userID string, entry *models.Entry) (*models.Entry, error) {
	if !validDate(entry.Date) {
		return nil, common.ErrorInvalidDate
	}
	entry.UserID = userID

	repo := s.repomanager.Entries(s.db)
	saved, err := repo.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("error saving entry: %v", err)
	}
	return saved, nil
}

// resolveOwner returns whose entries the request reads: the user's own, or
// the linked partner's when partner is true. Requests for an absent partner
// yield common.ErrorNotPaired.
func (s *EntryService) resolveOwner(ctx context.Context, userID string, partner bool) (string, error) {
	if !partner {
		return userID, nil
	}
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if user.PartnerID == nil {
		return "", common.ErrorNotPaired
	}
	return *user.PartnerID, nil
}

// Get returns the entry for a date, the user's own or the partner's.
func (s *EntryService) Get(ctx context.Context, userID string, partner bool, date string) (*models.Entry, error) {
	if !validDate(date) {
		return nil, common.ErrorInvalidDate
	}
	ownerID, err := s.resolveOwner(ctx, userID, partner)
	if err != nil {
		return nil, err
	}
	repo := s.repomanager.Entries(s.db)
	return repo.GetByDate(ctx, ownerID, date)
}

// List returns entries for the requesting user or, when partner is true, for
// the user's linked partner.
func (s *EntryService) List(ctx context.Context, userID string, partner bool, f entries.Filter) ([]*models.Entry, error) {
	ownerID, err := s.resolveOwner(ctx, userID, partner)
	if err != nil {
		return nil, err
	}
	if f.StartDate != "" && !validDate(f.StartDate) {
		return nil, common.ErrorInvalidDate
	}
	if f.EndDate != "" && !validDate(f.EndDate) {
		return nil, common.ErrorInvalidDate
	}

	repo := s.repomanager.Entries(s.db)
	list, err := repo.List(ctx, ownerID, f)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %v", err)
	}
	return list, nil
}

// Delete removes the user's entry for a date.
func (s *EntryService) Delete(ctx context.Context, userID string, date string) error {
	if !validDate(date) {
		return common.ErrorInvalidDate
	}
	repo := s.repomanager.Entries(s.db)
	return repo.DeleteByDate(ctx, userID, date)
}
