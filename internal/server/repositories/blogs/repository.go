package blogs

import (
	"context"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, filter models.ListFilter, page models.Page) ([]*models.BlogPost, int, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	SharingCategories(ctx context.Context, excludeID string, categories []string, limit int) ([]*models.BlogPost, error)
	Recent(ctx context.Context, excludeID string, limit int) ([]*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	Update(ctx context.Context, slug string, post *models.BlogPost) (*models.BlogPost, error)
	Delete(ctx context.Context, slug string) error
}
