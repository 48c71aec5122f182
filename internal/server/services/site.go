package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/repomanager"
)

// SiteService serves the About and ContactInfo singletons. Both are created
// with defaults on first read.
type SiteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSiteService(db *sql.DB, m repomanager.RepositoryManager) *SiteService {
	return &SiteService{db: db, repomanager: m}
}

func (s *SiteService) About(ctx context.Context) (*models.About, error) {
	a, err := s.repomanager.About(s.db).GetOrCreate(ctx, models.DefaultAbout())
	if err != nil {
		return nil, fmt.Errorf("get about: %w", err)
	}
	return a, nil
}

func (s *SiteService) UpdateAbout(ctx context.Context, a *models.About) (*models.About, error) {
	a.Paragraphs = nonNil(a.Paragraphs)
	a.Values = nonNil(a.Values)
	if a.Stats == nil {
		a.Stats = []models.Stat{}
	}

	saved, err := s.repomanager.About(s.db).Save(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("update about: %w", err)
	}
	return saved, nil
}

func (s *SiteService) Contact(ctx context.Context) (*models.ContactInfo, error) {
	c, err := s.repomanager.Contact(s.db).GetOrCreate(ctx, models.DefaultContactInfo())
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (s *SiteService) UpdateContact(ctx context.Context, c *models.ContactInfo) (*models.ContactInfo, error) {
	saved, err := s.repomanager.Contact(s.db).Save(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return saved, nil
}
