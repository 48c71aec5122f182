// Package services provides the PostgreSQL-backed repository for the
// agency's service offerings.
package services

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

const columns = `id, title, description, icon, sort_order, active, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanService(s scanner) (*models.Service, error) {
	svc := &models.Service{}
	if err := s.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.Icon, &svc.Order, &svc.Active,
		&svc.CreatedAt, &svc.UpdatedAt); err != nil {
		return nil, err
	}
	return svc, nil
}

// List returns services by ascending order key. A non-nil active keeps
// only services with that flag.
func (r *PostgresRepository) List(ctx context.Context, active *bool) ([]*models.Service, error) {
	query := `SELECT ` + columns + ` FROM services
		WHERE ($1::boolean IS NULL OR active = $1)
		ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, active)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Service, error) {
	svc, err := scanService(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM services WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return svc, nil
}

func (r *PostgresRepository) Create(ctx context.Context, svc *models.Service) (*models.Service, error) {
	query := `INSERT INTO services (id, title, description, icon, sort_order, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	id := uuid.NewString()
	err := r.db.QueryRowContext(ctx, query, id, svc.Title, svc.Description, svc.Icon, svc.Order, svc.Active).
		Scan(&svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	svc.ID = id
	return svc, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, svc *models.Service) (*models.Service, error) {
	query := `UPDATE services SET
			title = $2, description = $3, icon = $4, sort_order = $5, active = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	updated, err := scanService(r.db.QueryRowContext(ctx, query,
		id, svc.Title, svc.Description, svc.Icon, svc.Order, svc.Active))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
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
