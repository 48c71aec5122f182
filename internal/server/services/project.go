package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/dbx"
	"github.com/dmitrijs2005/studiosite/internal/server/config"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/repomanager"
)

// ProjectService is the portfolio counterpart of BlogService. Related
// projects are matched by technology.
type ProjectService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	maxPageLimit int
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ProjectService {
	return &ProjectService{db: db, repomanager: m, maxPageLimit: cfg.MaxPageLimit}
}

func (s *ProjectService) List(ctx context.Context, filter models.ListFilter, page models.Page) ([]*models.Project, models.Pagination, error) {
	page = clampPage(page, s.maxPageLimit)

	projects, total, err := s.repomanager.Projects(s.db).List(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list projects: %w", err)
	}
	return projects, models.NewPagination(page, total), nil
}

func (s *ProjectService) Get(ctx context.Context, slug string) (*models.Project, error) {
	var project *models.Project

	err := dbx.ReadSnapshot(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Projects(tx)

		p, err := repo.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}

		related := []*models.Project{}
		if len(p.Technologies) > 0 {
			related, err = repo.SharingTechnologies(ctx, p.ID, p.Technologies, relatedLimit)
			if err != nil {
				return err
			}
		}
		if len(related) == 0 {
			related, err = repo.Recent(ctx, p.ID, relatedLimit)
			if err != nil {
				return err
			}
		}

		p.RelatedProjects = related
		project = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get project %q: %w", slug, err)
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if err := validateProject(p); err != nil {
		return nil, err
	}
	normalizeProject(p)

	created, err := s.repomanager.Projects(s.db).Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, slug string, p *models.Project) (*models.Project, error) {
	if p.Slug == "" {
		p.Slug = slug
	}
	if err := validateProject(p); err != nil {
		return nil, err
	}
	normalizeProject(p)

	updated, err := s.repomanager.Projects(s.db).Update(ctx, slug, p)
	if err != nil {
		return nil, fmt.Errorf("update project %q: %w", slug, err)
	}
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, slug string) error {
	if err := s.repomanager.Projects(s.db).Delete(ctx, slug); err != nil {
		return fmt.Errorf("delete project %q: %w", slug, err)
	}
	return nil
}

func validateProject(p *models.Project) error {
	var m missing
	m.check("title", p.Title)
	if p.Title != "" {
		// a title made only of punctuation yields no slug
		m.check("slug", p.Slug)
	}
	m.check("description", p.Description)
	m.check("excerpt", p.Excerpt)
	m.check("coverImage", p.CoverImage)
	m.check("client", p.Client)
	m.check("duration", p.Duration)
	m.check("industry", p.Industry)
	m.check("challenge", p.Challenge)
	m.check("solution", p.Solution)
	m.check("implementation", p.Implementation)
	if len(m) > 0 {
		return common.MissingFields(m...)
	}
	return nil
}

func normalizeProject(p *models.Project) {
	p.Gallery = nonNil(p.Gallery)
	p.Technologies = nonNil(p.Technologies)
	p.Features = nonNil(p.Features)
	if p.Process == nil {
		p.Process = []models.ProcessStep{}
	}
	if p.Results == nil {
		p.Results = []models.Result{}
	}
	if p.Team == nil {
		p.Team = []models.TeamMember{}
	}
	if p.Testimonial != nil && p.Testimonial.Quote == "" && p.Testimonial.Author == "" {
		p.Testimonial = nil
	}
}
