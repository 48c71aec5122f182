// Package blogs provides the PostgreSQL-backed blog post repository.
package blogs

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

const columns = `id, title, slug, content, excerpt, cover_image, author, categories, tags,
		featured, published_at, created_at, updated_at`

// PostgresRepository implements blog post storage over a dbx.DBTX (*sql.DB or *sql.Tx).
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

func scanPost(s scanner) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := s.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.CoverImage,
		dbx.JSON(&p.Author), dbx.JSON(&p.Categories), dbx.JSON(&p.Tags),
		&p.Featured, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collect(rows *sql.Rows) ([]*models.BlogPost, error) {
	defer rows.Close()

	result := make([]*models.BlogPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
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

// List returns one page of posts, newest publication first, and the total
// number of posts matching filter.
func (r *PostgresRepository) List(ctx context.Context, filter models.ListFilter, page models.Page) ([]*models.BlogPost, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM blog_posts WHERE ($1::boolean IS NULL OR featured = $1)`,
		filter.Featured).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	query := `SELECT ` + columns + ` FROM blog_posts
		WHERE ($1::boolean IS NULL OR featured = $1)
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, filter.Featured, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	posts, err := collect(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	return posts, total, nil
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `SELECT ` + columns + ` FROM blog_posts WHERE slug = $1`

	p, err := scanPost(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// SharingCategories returns up to limit posts other than excludeID that
// carry at least one of categories, newest first.
func (r *PostgresRepository) SharingCategories(ctx context.Context, excludeID string, categories []string, limit int) ([]*models.BlogPost, error) {
	query := `SELECT ` + columns + ` FROM blog_posts
		WHERE id <> $1 AND categories ?| ARRAY(SELECT jsonb_array_elements_text($2::jsonb))
		ORDER BY published_at DESC
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, excludeID, dbx.JSON(categories), limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	posts, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return posts, nil
}

// Recent returns up to limit posts other than excludeID, newest first.
func (r *PostgresRepository) Recent(ctx context.Context, excludeID string, limit int) ([]*models.BlogPost, error) {
	query := `SELECT ` + columns + ` FROM blog_posts
		WHERE id <> $1
		ORDER BY published_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	posts, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return posts, nil
}

// Create inserts post under a fresh id. A taken slug yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	query := `INSERT INTO blog_posts (id, title, slug, content, excerpt, cover_image, author,
			categories, tags, featured, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	id := uuid.NewString()
	err := r.db.QueryRowContext(ctx, query,
		id, post.Title, post.Slug, post.Content, post.Excerpt, post.CoverImage, dbx.JSON(post.Author),
		dbx.JSON(post.Categories), dbx.JSON(post.Tags), post.Featured, post.PublishedAt,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	post.ID = id
	return post, nil
}

// Update overwrites the mutable fields of the post currently stored under
// slug and refreshes updated_at. It never inserts.
func (r *PostgresRepository) Update(ctx context.Context, slug string, post *models.BlogPost) (*models.BlogPost, error) {
	query := `UPDATE blog_posts SET
			title = $2, slug = $3, content = $4, excerpt = $5, cover_image = $6, author = $7,
			categories = $8, tags = $9, featured = $10, updated_at = now()
		WHERE slug = $1
		RETURNING ` + columns

	updated, err := scanPost(r.db.QueryRowContext(ctx, query,
		slug, post.Title, post.Slug, post.Content, post.Excerpt, post.CoverImage, dbx.JSON(post.Author),
		dbx.JSON(post.Categories), dbx.JSON(post.Tags), post.Featured,
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE slug = $1`, slug)
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
