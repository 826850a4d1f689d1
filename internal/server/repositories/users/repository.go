package users

import (
	"context"

	"github.com/daybookapp/daybook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetPartner(ctx context.Context, userID string, partnerID *string) error
}
