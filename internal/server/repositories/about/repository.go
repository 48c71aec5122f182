package about

import (
	"context"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

type Repository interface {
	// GetOrCreate returns the stored document, persisting defaults first
	// when none exists yet.
	GetOrCreate(ctx context.Context, defaults *models.About) (*models.About, error)
	// Save replaces the stored document, creating it if absent.
	Save(ctx context.Context, a *models.About) (*models.About, error)
}
