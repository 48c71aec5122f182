package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/repomanager"
)

type SocialMediaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSocialMediaService(db *sql.DB, m repomanager.RepositoryManager) *SocialMediaService {
	return &SocialMediaService{db: db, repomanager: m}
}

func (s *SocialMediaService) List(ctx context.Context, active *bool) ([]*models.SocialMedia, error) {
	links, err := s.repomanager.SocialMedia(s.db).List(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("list social media: %w", err)
	}
	return links, nil
}

func (s *SocialMediaService) Get(ctx context.Context, id string) (*models.SocialMedia, error) {
	l, err := s.repomanager.SocialMedia(s.db).Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get social media %q: %w", id, err)
	}
	return l, nil
}

func (s *SocialMediaService) Create(ctx context.Context, l *models.SocialMedia) (*models.SocialMedia, error) {
	if err := validateSocialMedia(l); err != nil {
		return nil, err
	}
	created, err := s.repomanager.SocialMedia(s.db).Create(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("create social media: %w", err)
	}
	return created, nil
}

func (s *SocialMediaService) Update(ctx context.Context, id string, l *models.SocialMedia) (*models.SocialMedia, error) {
	if err := validateSocialMedia(l); err != nil {
		return nil, err
	}
	updated, err := s.repomanager.SocialMedia(s.db).Update(ctx, id, l)
	if err != nil {
		return nil, fmt.Errorf("update social media %q: %w", id, err)
	}
	return updated, nil
}

func (s *SocialMediaService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.SocialMedia(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("delete social media %q: %w", id, err)
	}
	return nil
}

func validateSocialMedia(l *models.SocialMedia) error {
	l.Platform = models.Platform(strings.ToLower(strings.TrimSpace(string(l.Platform))))

	var m missing
	m.check("platform", string(l.Platform))
	m.check("url", l.URL)
	if len(m) > 0 {
		return common.MissingFields(m...)
	}
	if !l.Platform.Valid() {
		return common.Invalid(fmt.Sprintf("Invalid platform %q", l.Platform))
	}
	return nil
}
