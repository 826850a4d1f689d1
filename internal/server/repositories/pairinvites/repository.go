package pairinvites

import (
	"context"
	"time"

	"github.com/daybookapp/daybook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, code string, validity time.Duration) error
	FindByCode(ctx context.Context, code string) (*models.PairInvite, error)
	DeleteForUser(ctx context.Context, userID string) error
}
