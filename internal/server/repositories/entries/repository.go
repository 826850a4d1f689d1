package entries

import (
	"context"

	"github.com/daybookapp/daybook/internal/server/models"
)

// Filter narrows a List query. Zero values mean "no constraint".
type Filter struct {
	StartDate   string
	EndDate     string
	SearchQuery string
	Limit       int
}

type Repository interface {
	Upsert(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	GetByDate(ctx context.Context, userID string, date string) (*models.Entry, error)
	List(ctx context.Context, userID string, f Filter) ([]*models.Entry, error)
	DeleteByDate(ctx context.Context, userID string, date string) error
}
