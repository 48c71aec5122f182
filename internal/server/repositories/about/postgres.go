// Package about stores the single about-page document.
package about

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studiosite/internal/dbx"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/google/uuid"
)

const columns = `id, title, subtitle, paragraphs, stats, mission, vision, core_values, image, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAbout(s scanner) (*models.About, error) {
	a := &models.About{}
	err := s.Scan(&a.ID, &a.Title, &a.Subtitle, dbx.JSON(&a.Paragraphs), dbx.JSON(&a.Stats),
		&a.Mission, &a.Vision, dbx.JSON(&a.Values), &a.Image, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func args(id string, a *models.About) []any {
	return []any{id, a.Title, a.Subtitle, dbx.JSON(a.Paragraphs), dbx.JSON(a.Stats),
		a.Mission, a.Vision, dbx.JSON(a.Values), a.Image}
}

func (r *PostgresRepository) GetOrCreate(ctx context.Context, defaults *models.About) (*models.About, error) {
	insert := `INSERT INTO about (id, title, subtitle, paragraphs, stats, mission, vision, core_values, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (singleton) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, insert, args(uuid.NewString(), defaults)...); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	a, err := scanAbout(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM about`))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Save(ctx context.Context, a *models.About) (*models.About, error) {
	query := `INSERT INTO about (id, title, subtitle, paragraphs, stats, mission, vision, core_values, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (singleton) DO UPDATE SET
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			paragraphs = EXCLUDED.paragraphs,
			stats = EXCLUDED.stats,
			mission = EXCLUDED.mission,
			vision = EXCLUDED.vision,
			core_values = EXCLUDED.core_values,
			image = EXCLUDED.image,
			updated_at = now()
		RETURNING ` + columns

	saved, err := scanAbout(r.db.QueryRowContext(ctx, query, args(uuid.NewString(), a)...))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return saved, nil
}
