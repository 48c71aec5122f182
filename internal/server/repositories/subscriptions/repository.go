package subscriptions

import (
	"context"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, email string) (*models.Subscription, error)
	List(ctx context.Context, page models.Page) ([]*models.Subscription, int, error)
}
