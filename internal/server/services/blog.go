package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/dbx"
	"github.com/dmitrijs2005/studiosite/internal/server/config"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/repomanager"
)

// BlogService implements listing, detail views with related posts, and the
// dashboard writes for blog posts.
type BlogService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	maxPageLimit int
	now          func() time.Time
}

func NewBlogService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *BlogService {
	return &BlogService{
		db:           db,
		repomanager:  m,
		maxPageLimit: cfg.MaxPageLimit,
		now:          time.Now,
	}
}

// List returns one page of posts, newest first, with pagination metadata.
func (s *BlogService) List(ctx context.Context, filter models.ListFilter, page models.Page) ([]*models.BlogPost, models.Pagination, error) {
	page = clampPage(page, s.maxPageLimit)

	posts, total, err := s.repomanager.Blogs(s.db).List(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list blogs: %w", err)
	}
	return posts, models.NewPagination(page, total), nil
}

// Get returns the post stored under slug with up to three related posts:
// those sharing a category or, if there are none, the most recent others.
func (s *BlogService) Get(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post *models.BlogPost

	err := dbx.ReadSnapshot(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Blogs(tx)

		p, err := repo.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}

		related := []*models.BlogPost{}
		if len(p.Categories) > 0 {
			related, err = repo.SharingCategories(ctx, p.ID, p.Categories, relatedLimit)
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

		p.RelatedPosts = related
		post = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get blog %q: %w", slug, err)
	}
	return post, nil
}

func (s *BlogService) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if err := validateBlogPost(post); err != nil {
		return nil, err
	}
	normalizeBlogPost(post)
	if post.PublishedAt.IsZero() {
		post.PublishedAt = s.now().UTC()
	}

	created, err := s.repomanager.Blogs(s.db).Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return created, nil
}

// Update overwrites the post stored under slug. The body may carry a new
// slug; an empty one keeps the current slug.
func (s *BlogService) Update(ctx context.Context, slug string, post *models.BlogPost) (*models.BlogPost, error) {
	if post.Slug == "" {
		post.Slug = slug
	}
	if err := validateBlogPost(post); err != nil {
		return nil, err
	}
	normalizeBlogPost(post)

	updated, err := s.repomanager.Blogs(s.db).Update(ctx, slug, post)
	if err != nil {
		return nil, fmt.Errorf("update blog %q: %w", slug, err)
	}
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, slug string) error {
	if err := s.repomanager.Blogs(s.db).Delete(ctx, slug); err != nil {
		return fmt.Errorf("delete blog %q: %w", slug, err)
	}
	return nil
}

func validateBlogPost(p *models.BlogPost) error {
	var m missing
	m.check("title", p.Title)
	if p.Title != "" {
		// a title made only of punctuation yields no slug
		m.check("slug", p.Slug)
	}
	m.check("excerpt", p.Excerpt)
	m.check("content", p.Content)
	m.check("coverImage", p.CoverImage)
	m.check("author.name", p.Author.Name)
	if len(m) > 0 {
		return common.MissingFields(m...)
	}
	return nil
}

func normalizeBlogPost(p *models.BlogPost) {
	p.Categories = nonNil(p.Categories)
	p.Tags = nonNil(p.Tags)
}
