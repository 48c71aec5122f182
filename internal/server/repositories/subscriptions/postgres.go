// Package subscriptions provides the PostgreSQL-backed newsletter signup
// repository. Subscriptions are insert-only.
package subscriptions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/dbx"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create stores email. An address that is already subscribed yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, email string) (*models.Subscription, error) {
	query := `INSERT INTO subscriptions (id, email)
		VALUES ($1, $2)
		RETURNING created_at`

	s := &models.Subscription{ID: uuid.NewString(), Email: email}
	if err := r.db.QueryRowContext(ctx, query, s.ID, s.Email).Scan(&s.CreatedAt); err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// List returns one page of subscriptions, newest first, and the total count.
func (r *PostgresRepository) List(ctx context.Context, page models.Page) ([]*models.Subscription, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM subscriptions`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, created_at FROM subscriptions ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Subscription, 0)
	for rows.Next() {
		s := &models.Subscription{}
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	return result, total, nil
}
