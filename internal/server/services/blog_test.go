package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/server/config"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlogService(t *testing.T, repo *fakeBlogsRepo) *BlogService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewBlogService(db, &fakeRepoMgr{blogs: repo}, &config.Config{MaxPageLimit: 50})
}

func validPost() *models.BlogPost {
	return &models.BlogPost{
		Title:      "Hello World",
		Excerpt:    "short",
		Content:    "long",
		CoverImage: "/img.png",
		Author:     models.Author{Name: "Jane"},
	}
}

func TestBlogService_List_ClampsAndPaginates(t *testing.T) {
	repo := &fakeBlogsRepo{listOut: []*models.BlogPost{{ID: "1"}}, listTotal: 101}
	svc := newBlogService(t, repo)

	posts, p, err := svc.List(context.Background(), models.ListFilter{}, models.Page{Page: 2, Limit: 500})
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, models.Page{Page: 2, Limit: 50}, repo.gotPage)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 50, TotalPages: 3, TotalItems: 101}, p)
}

func TestBlogService_List_Error(t *testing.T) {
	svc := newBlogService(t, &fakeBlogsRepo{listErr: errors.New("db down")})

	_, _, err := svc.List(context.Background(), models.ListFilter{}, models.Page{Page: 1, Limit: 10})
	assert.ErrorContains(t, err, "list blogs: db down")
}

func TestBlogService_Get_RelatedByCategory(t *testing.T) {
	repo := &fakeBlogsRepo{
		getOut:     &models.BlogPost{ID: "p1", Slug: "a", Categories: []string{"design"}},
		sharingOut: []*models.BlogPost{{ID: "p2"}, {ID: "p3"}},
	}
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	svc := NewBlogService(db, &fakeRepoMgr{blogs: repo}, &config.Config{})

	got, err := svc.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, got.RelatedPosts, 2)
	assert.Equal(t, 1, repo.sharingCalls)
	assert.Equal(t, 0, repo.recentCalls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogService_Get_FallsBackToRecent(t *testing.T) {
	repo := &fakeBlogsRepo{
		getOut:     &models.BlogPost{ID: "p1", Slug: "a", Categories: []string{"rare"}},
		sharingOut: []*models.BlogPost{},
		recentOut:  []*models.BlogPost{{ID: "p9"}},
	}
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	svc := NewBlogService(db, &fakeRepoMgr{blogs: repo}, &config.Config{})

	got, err := svc.Get(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, got.RelatedPosts, 1)
	assert.Equal(t, "p9", got.RelatedPosts[0].ID)
	assert.Equal(t, 1, repo.recentCalls)
}

func TestBlogService_Get_NoCategoriesSkipsSharing(t *testing.T) {
	repo := &fakeBlogsRepo{getOut: &models.BlogPost{ID: "p1"}, recentOut: []*models.BlogPost{}}
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	svc := NewBlogService(db, &fakeRepoMgr{blogs: repo}, &config.Config{})

	got, err := svc.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 0, repo.sharingCalls)
	assert.NotNil(t, got.RelatedPosts)
}

func TestBlogService_Get_NotFoundRollsBack(t *testing.T) {
	repo := &fakeBlogsRepo{getErr: common.ErrorNotFound}
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()
	svc := NewBlogService(db, &fakeRepoMgr{blogs: repo}, &config.Config{})

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogService_Create(t *testing.T) {
	t.Run("derives slug and defaults", func(t *testing.T) {
		repo := &fakeBlogsRepo{}
		svc := newBlogService(t, repo)
		fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return fixed }

		got, err := svc.Create(context.Background(), validPost())
		require.NoError(t, err)
		assert.Equal(t, "hello-world", got.Slug)
		assert.Equal(t, fixed, got.PublishedAt)
		assert.Equal(t, []string{}, got.Categories)
		assert.Equal(t, []string{}, got.Tags)
	})

	t.Run("keeps submitted slug", func(t *testing.T) {
		repo := &fakeBlogsRepo{}
		svc := newBlogService(t, repo)
		p := validPost()
		p.Slug = "Custom_Slug"

		got, err := svc.Create(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, "Custom_Slug", got.Slug)
	})

	t.Run("missing fields in order", func(t *testing.T) {
		repo := &fakeBlogsRepo{}
		svc := newBlogService(t, repo)

		_, err := svc.Create(context.Background(), &models.BlogPost{Excerpt: "e", CoverImage: "c", Author: models.Author{Name: "n"}})
		var ve *common.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"title", "content"}, ve.Fields)
		assert.Equal(t, "Missing required fields: title, content", ve.Error())
		assert.Nil(t, repo.created)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		svc := newBlogService(t, &fakeBlogsRepo{saveErr: common.ErrorAlreadyExists})

		_, err := svc.Create(context.Background(), validPost())
		assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	})
}

func TestBlogService_Update(t *testing.T) {
	repo := &fakeBlogsRepo{}
	svc := newBlogService(t, repo)

	got, err := svc.Update(context.Background(), "old-slug", validPost())
	require.NoError(t, err)
	assert.Equal(t, "old-slug", repo.updatedSlug)
	assert.Equal(t, "old-slug", got.Slug)

	svc = newBlogService(t, &fakeBlogsRepo{saveErr: common.ErrorNotFound})
	_, err = svc.Update(context.Background(), "nope", validPost())
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = svc.Update(context.Background(), "x", &models.BlogPost{})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestBlogService_Delete(t *testing.T) {
	svc := newBlogService(t, &fakeBlogsRepo{})
	require.NoError(t, svc.Delete(context.Background(), "a"))

	svc = newBlogService(t, &fakeBlogsRepo{deleteErr: common.ErrorNotFound})
	assert.ErrorIs(t, svc.Delete(context.Background(), "a"), common.ErrorNotFound)
}
