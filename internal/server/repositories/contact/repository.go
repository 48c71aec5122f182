package contact

import (
	"context"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

type Repository interface {
	GetOrCreate(ctx context.Context, defaults *models.ContactInfo) (*models.ContactInfo, error)
	Save(ctx context.Context, c *models.ContactInfo) (*models.ContactInfo, error)
}
