package blogs

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "title", "slug", "content", "excerpt", "cover_image", "author", "categories", "tags",
	"featured", "published_at", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func addPost(rows *sqlmock.Rows, id, slug string, published time.Time) *sqlmock.Rows {
	return rows.AddRow(id, "Title "+slug, slug, "body", "short", "/img.png",
		[]byte(`{"name":"Ann","image":""}`), []byte(`["design"]`), []byte(`["ux"]`),
		false, published, published, published)
}

func TestList_ReturnsPageAndTotal(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	featured := true

	mock.ExpectQuery(`SELECT count\(\*\) FROM blog_posts WHERE \(\$1::boolean IS NULL OR featured = \$1\)`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	rows := sqlmock.NewRows(cols)
	addPost(rows, "1", "first", now)
	addPost(rows, "2", "second", now.Add(-time.Hour))
	mock.ExpectQuery(`(?s)SELECT .* FROM blog_posts\s+WHERE .* ORDER BY published_at DESC\s+LIMIT \$2 OFFSET \$3`).
		WithArgs(true, 5, 5).
		WillReturnRows(rows)

	posts, total, err := repo.List(context.Background(), models.ListFilter{Featured: &featured}, models.Page{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Slug)
	assert.Equal(t, models.Author{Name: "Ann"}, posts[0].Author)
	assert.Equal(t, []string{"design"}, posts[0].Categories)
	assert.Equal(t, []string{"ux"}, posts[0].Tags)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NoFilterPassesNull(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM blog_posts`).
		WithArgs(nil).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .* FROM blog_posts`).
		WithArgs(nil, 10, 0).
		WillReturnRows(sqlmock.NewRows(cols))

	posts, total, err := repo.List(context.Background(), models.ListFilter{}, models.Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestList_CountError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count`).WillReturnError(errors.New("db down"))

	_, _, err := repo.List(context.Background(), models.ListFilter{}, models.Page{Page: 1, Limit: 10})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetBySlug_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .* FROM blog_posts WHERE slug = \$1`).
		WithArgs("hello").
		WillReturnRows(addPost(sqlmock.NewRows(cols), "p-1", "hello", time.Now()))

	got, err := repo.GetBySlug(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "p-1", got.ID)
	assert.Equal(t, "hello", got.Slug)
}

func TestGetBySlug_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM blog_posts WHERE slug = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBySlug(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSharingCategories_PassesJSONArray(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)WHERE id <> \$1 AND categories \?\| ARRAY\(SELECT jsonb_array_elements_text\(\$2::jsonb\)\).*LIMIT \$3`).
		WithArgs("p-1", `["design","go"]`, 3).
		WillReturnRows(addPost(sqlmock.NewRows(cols), "p-2", "other", time.Now()))

	got, err := repo.SharingCategories(context.Background(), "p-1", []string{"design", "go"}, 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p-2", got[0].ID)
}

func TestRecent_ExcludesCurrent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)WHERE id <> \$1\s+ORDER BY published_at DESC\s+LIMIT \$2`).
		WithArgs("p-1", 3).
		WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.Recent(context.Background(), "p-1", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	published := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)^INSERT INTO blog_posts .* VALUES \(\$1, .*\$11\)\s+RETURNING created_at, updated_at$`).
		WithArgs(sqlmock.AnyArg(), "Hello", "hello", "body", "short", "/c.png",
			`{"name":"Ann","image":""}`, `["news"]`, `[]`, true, published).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	post := &models.BlogPost{
		Title: "Hello", Slug: "hello", Content: "body", Excerpt: "short", CoverImage: "/c.png",
		Author: models.Author{Name: "Ann"}, Categories: []string{"news"}, Tags: []string{},
		Featured: true, PublishedAt: published,
	}
	got, err := repo.Create(context.Background(), post)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "hello", got.Slug)
	assert.Equal(t, created, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO blog_posts`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.BlogPost{Slug: "taken"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^UPDATE blog_posts SET .* updated_at = now\(\)\s+WHERE slug = \$1\s+RETURNING`).
		WithArgs("old", "New", "new", "body", "short", "/c.png", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), false).
		WillReturnRows(addPost(sqlmock.NewRows(cols), "p-1", "new", time.Now()))

	got, err := repo.Update(context.Background(), "old", &models.BlogPost{
		Title: "New", Slug: "new", Content: "body", Excerpt: "short", CoverImage: "/c.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Slug)
}

func TestUpdate_NotFoundDoesNotInsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^UPDATE blog_posts`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "ghost", &models.BlogPost{Slug: "ghost"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_SlugTaken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^UPDATE blog_posts`).WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Update(context.Background(), "a", &models.BlogPost{Slug: "b"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM blog_posts WHERE slug = \$1`).
		WithArgs("hello").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "hello"))

	mock.ExpectExec(`DELETE FROM blog_posts`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "ghost"), common.ErrorNotFound)

	mock.ExpectExec(`DELETE FROM blog_posts`).
		WillReturnError(errors.New("db err"))
	err := repo.Delete(context.Background(), "x")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
