package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "title", "description", "icon", "sort_order", "active", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestList_OrdersBySortKey(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	active := true
	mock.ExpectQuery(`(?s)FROM services\s+WHERE \(\$1::boolean IS NULL OR active = \$1\)\s+ORDER BY sort_order ASC, created_at ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("s1", "Web", "Sites", "code", 1, true, now, now).
			AddRow("s2", "Brand", "Logos", "palette", 2, true, now, now))

	got, err := repo.List(context.Background(), &active)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Order)
	assert.Equal(t, "palette", got[1].Icon)
}

func TestList_Error(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM services`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), nil)
	assert.ErrorContains(t, err, "db error: db down")
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`FROM services WHERE id = \$1`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("s1", "Web", "Sites", "code", 0, true, now, now))

	got, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Web", got.Title)

	mock.ExpectQuery(`FROM services WHERE id = \$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)^INSERT INTO services \(id, title, description, icon, sort_order, active\)`).
		WithArgs(sqlmock.AnyArg(), "Web", "Sites", "code", 3, true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	got, err := repo.Create(context.Background(), &models.Service{Title: "Web", Description: "Sites", Icon: "code", Order: 3, Active: true})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, now, got.CreatedAt)
}

func TestUpdate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)^UPDATE services SET .* WHERE id = \$1`).
		WithArgs("s1", "Web", "Sites", "cloud", 1, false).
		WillReturnRows(sqlmock.NewRows(cols).AddRow("s1", "Web", "Sites", "cloud", 1, false, now, now))

	got, err := repo.Update(context.Background(), "s1", &models.Service{Title: "Web", Description: "Sites", Icon: "cloud", Order: 1})
	require.NoError(t, err)
	assert.False(t, got.Active)

	mock.ExpectQuery(`^UPDATE services`).WillReturnError(sql.ErrNoRows)
	_, err = repo.Update(context.Background(), "nope", &models.Service{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM services WHERE id = \$1`).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "s1"))

	mock.ExpectExec(`DELETE FROM services`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "s2"), common.ErrorNotFound)
}
