// Package socialmedia provides the PostgreSQL-backed repository for the
// footer's social profile links.
package socialmedia

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

const columns = `id, platform, url, is_active, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLink(s scanner) (*models.SocialMedia, error) {
	l := &models.SocialMedia{}
	if err := s.Scan(&l.ID, &l.Platform, &l.URL, &l.IsActive, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *PostgresRepository) List(ctx context.Context, active *bool) ([]*models.SocialMedia, error) {
	query := `SELECT ` + columns + ` FROM social_media
		WHERE ($1::boolean IS NULL OR is_active = $1)
		ORDER BY platform ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, active)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.SocialMedia, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.SocialMedia, error) {
	l, err := scanLink(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM social_media WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.SocialMedia) (*models.SocialMedia, error) {
	query := `INSERT INTO social_media (id, platform, url, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	id := uuid.NewString()
	err := r.db.QueryRowContext(ctx, query, id, string(l.Platform), l.URL, l.IsActive).
		Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	l.ID = id
	return l, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, l *models.SocialMedia) (*models.SocialMedia, error) {
	query := `UPDATE social_media SET platform = $2, url = $3, is_active = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	updated, err := scanLink(r.db.QueryRowContext(ctx, query, id, string(l.Platform), l.URL, l.IsActive))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM social_media WHERE id = $1`, id)
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
