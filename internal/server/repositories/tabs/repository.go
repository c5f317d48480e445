package tabs

import (
	"context"

	"github.com/dmitrijs2005/tabsense/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tab *models.Tab) (*models.Tab, error)
	SelectByUser(ctx context.Context, userID string) ([]*models.Tab, error)
	GetByID(ctx context.Context, id string) (*models.Tab, error)
	Delete(ctx context.Context, id string) error
}
