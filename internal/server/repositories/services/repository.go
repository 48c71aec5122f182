package services

import (
	"context"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, active *bool) ([]*models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) (*models.Service, error)
	Update(ctx context.Context, id string, service *models.Service) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}
