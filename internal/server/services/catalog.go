package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/server/icons"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/repomanager"
)

// CatalogService manages the agency's service offerings.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

// List returns services ordered by Order. A non-nil active keeps only
// matching records. Stored icons outside the registry are reported as the
// fallback icon.
func (s *CatalogService) List(ctx context.Context, active *bool) ([]*models.Service, error) {
	list, err := s.repomanager.Services(s.db).List(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	for _, svc := range list {
		resolveIcon(svc)
	}
	return list, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.repomanager.Services(s.db).Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service %q: %w", id, err)
	}
	resolveIcon(svc)
	return svc, nil
}

func (s *CatalogService) Create(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if svc.Icon == "" {
		svc.Icon = icons.Fallback
	}
	if err := validateService(svc); err != nil {
		return nil, err
	}

	created, err := s.repomanager.Services(s.db).Create(ctx, svc)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, svc *models.Service) (*models.Service, error) {
	if err := validateService(svc); err != nil {
		return nil, err
	}

	updated, err := s.repomanager.Services(s.db).Update(ctx, id, svc)
	if err != nil {
		return nil, fmt.Errorf("update service %q: %w", id, err)
	}
	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Services(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service %q: %w", id, err)
	}
	return nil
}

// Icons lists the selectable icon identifiers.
func (s *CatalogService) Icons() []icons.Icon {
	return icons.List()
}

func validateService(svc *models.Service) error {
	var m missing
	m.check("title", svc.Title)
	m.check("description", svc.Description)
	m.check("icon", svc.Icon)
	if len(m) > 0 {
		return common.MissingFields(m...)
	}
	if !icons.Valid(svc.Icon) {
		return common.Invalid(fmt.Sprintf("Unknown icon %q", svc.Icon))
	}
	return nil
}

func resolveIcon(svc *models.Service) {
	svc.Icon = icons.Resolve(svc.Icon).ID
}
