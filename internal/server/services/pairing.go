package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/dbx"
	"github.com/daybookapp/daybook/internal/server/config"
	"github.com/daybookapp/daybook/internal/server/repositories/repomanager"
)

const inviteCodeLength = 8

// PairingService links two accounts as partners. A user issues a short-lived
// invite code; the other user redeems it and both accounts point at each
// other. Either side can unlink later.
type PairingService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	inviteValidity time.Duration
}

// NewPairingService constructs a PairingService.
func NewPairingService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *PairingService {
	return &PairingService{
		db:             db,
		repomanager:    m,
		inviteValidity: cfg.PairInviteValidityDuration,
	}
}

// CreateInvite issues a fresh invite code for the user, replacing any codes
// issued earlier. Users who already have a partner get ErrorAlreadyPaired.
func (s *PairingService) CreateInvite(ctx context.Context, userID string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error loading user: %v", err)
	}
	if user.PartnerID != nil {
		return "", common.ErrorAlreadyPaired
	}

	code, err := common.MakeInviteCode(inviteCodeLength)
	if err != nil {
		return "", common.ErrorInternal
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.PairInvites(tx)
		if err := repo.DeleteForUser(ctx, userID); err != nil {
			return err
		}
		return repo.Create(ctx, userID, code, s.inviteValidity)
	}); err != nil {
		return "", fmt.Errorf("error creating invite: %v", err)
	}
	return code, nil
}

// AcceptInvite redeems an invite code and links both accounts. Expired or
// unknown codes yield ErrorNotFound; redeeming your own code or redeeming
// while either side is already paired yields an error without any change.
func (s *PairingService) AcceptInvite(ctx context.Context, userID string, code string) error {
	invite, err := s.repomanager.PairInvites(s.db).FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if invite.Expires.Before(time.Now()) {
		return common.ErrorNotFound
	}
	if invite.UserID == userID {
		return common.ErrorConflict
	}

	usersRepo := s.repomanager.Users(s.db)
	issuer, err := usersRepo.GetByID(ctx, invite.UserID)
	if err != nil {
		return fmt.Errorf("error loading inviter: %v", err)
	}
	me, err := usersRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("error loading user: %v", err)
	}
	if issuer.PartnerID != nil || me.PartnerID != nil {
		return common.ErrorAlreadyPaired
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		usersTx := s.repomanager.Users(tx)
		if err := usersTx.SetPartner(ctx, issuer.ID, &me.ID); err != nil {
			return err
		}
		if err := usersTx.SetPartner(ctx, me.ID, &issuer.ID); err != nil {
			return err
		}
		invitesTx := s.repomanager.PairInvites(tx)
		if err := invitesTx.DeleteForUser(ctx, issuer.ID); err != nil {
			return err
		}
		return invitesTx.DeleteForUser(ctx, me.ID)
	})
}

// RemovePartner unlinks the user and their partner. Unpaired users get
// ErrorNotPaired.
func (s *PairingService) RemovePartner(ctx context.Context, userID string) error {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("error loading user: %v", err)
	}
	if user.PartnerID == nil {
		return common.ErrorNotPaired
	}
	partnerID := *user.PartnerID

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		usersTx := s.repomanager.Users(tx)
		if err := usersTx.SetPartner(ctx, userID, nil); err != nil {
			return err
		}
		return usersTx.SetPartner(ctx, partnerID, nil)
	})
}

// Partner returns the username of the user's partner, or ErrorNotPaired.
func (s *PairingService) Partner(ctx context.Context, userID string) (string, error) {
	usersRepo := s.repomanager.Users(s.db)
	user, err := usersRepo.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error loading user: %v", err)
	}
	if user.PartnerID == nil {
		return "", common.ErrorNotPaired
	}
	partner, err := usersRepo.GetByID(ctx, *user.PartnerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotPaired
		}
		return "", fmt.Errorf("error loading partner: %v", err)
	}
	return partner.UserName, nil
}
