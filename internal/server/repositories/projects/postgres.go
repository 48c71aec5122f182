// Package projects provides the PostgreSQL-backed portfolio project repository.
package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/dbx"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/google/uuid"
)

const columns = `id, title, slug, description, excerpt, cover_image, gallery, client, technologies,
		features, process, results, testimonial, duration, industry, team, challenge, solution,
		implementation, featured, created_at, updated_at`

// PostgresRepository implements project storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	p := &models.Project{}
	err := s.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Excerpt, &p.CoverImage,
		dbx.JSON(&p.Gallery), &p.Client, dbx.JSON(&p.Technologies), dbx.JSON(&p.Features),
		dbx.JSON(&p.Process), dbx.JSON(&p.Results), dbx.JSON(&p.Testimonial), &p.Duration, &p.Industry,
		dbx.JSON(&p.Team), &p.Challenge, &p.Solution, &p.Implementation, &p.Featured,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collect(rows *sql.Rows) ([]*models.Project, error) {
	defer rows.Close()

	result := make([]*models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	projects, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return projects, nil
}

// List returns one page of projects, newest first, and the number of
// projects matching filter.
func (r *PostgresRepository) List(ctx context.Context, filter models.ListFilter, page models.Page) ([]*models.Project, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM projects WHERE ($1::boolean IS NULL OR featured = $1)`,
		filter.Featured).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	projects, err := r.query(ctx, `SELECT `+columns+` FROM projects
		WHERE ($1::boolean IS NULL OR featured = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, filter.Featured, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM projects WHERE slug = $1`, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// SharingTechnologies returns up to limit projects other than excludeID
// that use at least one of technologies, newest first.
func (r *PostgresRepository) SharingTechnologies(ctx context.Context, excludeID string, technologies []string, limit int) ([]*models.Project, error) {
	return r.query(ctx, `SELECT `+columns+` FROM projects
		WHERE id <> $1 AND technologies ?| ARRAY(SELECT jsonb_array_elements_text($2::jsonb))
		ORDER BY created_at DESC
		LIMIT $3`, excludeID, dbx.JSON(technologies), limit)
}

// Recent returns up to limit projects other than excludeID, newest first.
func (r *PostgresRepository) Recent(ctx context.Context, excludeID string, limit int) ([]*models.Project, error) {
	return r.query(ctx, `SELECT `+columns+` FROM projects
		WHERE id <> $1
		ORDER BY created_at DESC
		LIMIT $2`, excludeID, limit)
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	query := `INSERT INTO projects (id, title, slug, description, excerpt, cover_image, gallery, client,
			technologies, features, process, results, testimonial, duration, industry, team,
			challenge, solution, implementation, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING created_at, updated_at`

	id := uuid.NewString()
	err := r.db.QueryRowContext(ctx, query,
		id, p.Title, p.Slug, p.Description, p.Excerpt, p.CoverImage, dbx.JSON(p.Gallery), p.Client,
		dbx.JSON(p.Technologies), dbx.JSON(p.Features), dbx.JSON(p.Process), dbx.JSON(p.Results),
		testimonialArg(p.Testimonial), p.Duration, p.Industry, dbx.JSON(p.Team),
		p.Challenge, p.Solution, p.Implementation, p.Featured,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	p.ID = id
	return p, nil
}

// Update overwrites the mutable fields of the project stored under slug.
// It never inserts.
func (r *PostgresRepository) Update(ctx context.Context, slug string, p *models.Project) (*models.Project, error) {
	query := `UPDATE projects SET
			title = $2, slug = $3, description = $4, excerpt = $5, cover_image = $6, gallery = $7,
			client = $8, technologies = $9, features = $10, process = $11, results = $12,
			testimonial = $13, duration = $14, industry = $15, team = $16, challenge = $17,
			solution = $18, implementation = $19, featured = $20, updated_at = now()
		WHERE slug = $1
		RETURNING ` + columns

	updated, err := scanProject(r.db.QueryRowContext(ctx, query,
		slug, p.Title, p.Slug, p.Description, p.Excerpt, p.CoverImage, dbx.JSON(p.Gallery), p.Client,
		dbx.JSON(p.Technologies), dbx.JSON(p.Features), dbx.JSON(p.Process), dbx.JSON(p.Results),
		testimonialArg(p.Testimonial), p.Duration, p.Industry, dbx.JSON(p.Team),
		p.Challenge, p.Solution, p.Implementation, p.Featured,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// testimonialArg stores a missing testimonial as SQL NULL rather than the
// JSON literal null.
func testimonialArg(t *models.Testimonial) any {
	if t == nil {
		return nil
	}
	return dbx.JSON(t)
}
