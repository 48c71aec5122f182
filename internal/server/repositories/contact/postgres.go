// Package contact stores the single contact-info document.
package contact

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studiosite/internal/dbx"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/google/uuid"
)

const columns = `id, email, phone, address, working_hours, map_url, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (*models.ContactInfo, error) {
	c := &models.ContactInfo{}
	if err := s.Scan(&c.ID, &c.Email, &c.Phone, &c.Address, &c.WorkingHours, &c.MapURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// GetOrCreate inserts defaults unless a row already exists, then reads the
// row back. Concurrent first reads all observe the same document.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, defaults *models.ContactInfo) (*models.ContactInfo, error) {
	insert := `INSERT INTO contact_info (id, email, phone, address, working_hours, map_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (singleton) DO NOTHING`

	_, err := r.db.ExecContext(ctx, insert, uuid.NewString(),
		defaults.Email, defaults.Phone, defaults.Address, defaults.WorkingHours, defaults.MapURL)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	c, err := scanContact(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM contact_info`))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Save(ctx context.Context, c *models.ContactInfo) (*models.ContactInfo, error) {
	query := `INSERT INTO contact_info (id, email, phone, address, working_hours, map_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (singleton) DO UPDATE SET
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			working_hours = EXCLUDED.working_hours,
			map_url = EXCLUDED.map_url,
			updated_at = now()
		RETURNING ` + columns

	saved, err := scanContact(r.db.QueryRowContext(ctx, query, uuid.NewString(),
		c.Email, c.Phone, c.Address, c.WorkingHours, c.MapURL))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return saved, nil
}
