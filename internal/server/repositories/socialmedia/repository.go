package socialmedia

import (
	"context"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, active *bool) ([]*models.SocialMedia, error)
	Get(ctx context.Context, id string) (*models.SocialMedia, error)
	Create(ctx context.Context, link *models.SocialMedia) (*models.SocialMedia, error)
	Update(ctx context.Context, id string, link *models.SocialMedia) (*models.SocialMedia, error)
	Delete(ctx context.Context, id string) error
}
