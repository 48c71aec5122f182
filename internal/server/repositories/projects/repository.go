package projects

import (
	"context"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, filter models.ListFilter, page models.Page) ([]*models.Project, int, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	SharingTechnologies(ctx context.Context, excludeID string, technologies []string, limit int) ([]*models.Project, error)
	Recent(ctx context.Context, excludeID string, limit int) ([]*models.Project, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, slug string, project *models.Project) (*models.Project, error)
	Delete(ctx context.Context, slug string) error
}
