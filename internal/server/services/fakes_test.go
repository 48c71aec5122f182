package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/studiosite/internal/dbx"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/about"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/contact"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/projects"
	svcrepo "github.com/dmitrijs2005/studiosite/internal/server/repositories/services"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/socialmedia"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/subscriptions"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// fakeRepoMgr hands out the same fake repositories regardless of the DBTX.
type fakeRepoMgr struct {
	blogs         *fakeBlogsRepo
	projects      *fakeProjectsRepo
	services      *fakeServicesRepo
	socialMedia   *fakeSocialRepo
	subscriptions *fakeSubsRepo
	about         *fakeAboutRepo
	contact       *fakeContactRepo
}

func (m *fakeRepoMgr) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoMgr) Blogs(dbx.DBTX) blogs.Repository              { return m.blogs }
func (m *fakeRepoMgr) Projects(dbx.DBTX) projects.Repository        { return m.projects }
func (m *fakeRepoMgr) Services(dbx.DBTX) svcrepo.Repository         { return m.services }
func (m *fakeRepoMgr) SocialMedia(dbx.DBTX) socialmedia.Repository  { return m.socialMedia }
func (m *fakeRepoMgr) Subscriptions(dbx.DBTX) subscriptions.Repository {
	return m.subscriptions
}
func (m *fakeRepoMgr) About(dbx.DBTX) about.Repository     { return m.about }
func (m *fakeRepoMgr) Contact(dbx.DBTX) contact.Repository { return m.contact }

type fakeBlogsRepo struct {
	listOut   []*models.BlogPost
	listTotal int
	listErr   error
	gotPage   models.Page

	getOut *models.BlogPost
	getErr error

	sharingOut   []*models.BlogPost
	sharingCalls int
	recentOut    []*models.BlogPost
	recentCalls  int

	created *models.BlogPost
	saveErr error

	updatedSlug string
	deleteErr   error
}

func (f *fakeBlogsRepo) List(_ context.Context, _ models.ListFilter, p models.Page) ([]*models.BlogPost, int, error) {
	f.gotPage = p
	return f.listOut, f.listTotal, f.listErr
}
func (f *fakeBlogsRepo) GetBySlug(context.Context, string) (*models.BlogPost, error) {
	return f.getOut, f.getErr
}
func (f *fakeBlogsRepo) SharingCategories(context.Context, string, []string, int) ([]*models.BlogPost, error) {
	f.sharingCalls++
	return f.sharingOut, nil
}
func (f *fakeBlogsRepo) Recent(context.Context, string, int) ([]*models.BlogPost, error) {
	f.recentCalls++
	return f.recentOut, nil
}
func (f *fakeBlogsRepo) Create(_ context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.created = p
	p.ID = "new-id"
	return p, nil
}
func (f *fakeBlogsRepo) Update(_ context.Context, slug string, p *models.BlogPost) (*models.BlogPost, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.updatedSlug = slug
	return p, nil
}
func (f *fakeBlogsRepo) Delete(context.Context, string) error { return f.deleteErr }

type fakeProjectsRepo struct {
	getOut     *models.Project
	getErr     error
	sharingOut []*models.Project
	recentOut  []*models.Project

	created *models.Project
	saveErr error
}

func (f *fakeProjectsRepo) List(context.Context, models.ListFilter, models.Page) ([]*models.Project, int, error) {
	return []*models.Project{}, 0, nil
}
func (f *fakeProjectsRepo) GetBySlug(context.Context, string) (*models.Project, error) {
	return f.getOut, f.getErr
}
func (f *fakeProjectsRepo) SharingTechnologies(context.Context, string, []string, int) ([]*models.Project, error) {
	return f.sharingOut, nil
}
func (f *fakeProjectsRepo) Recent(context.Context, string, int) ([]*models.Project, error) {
	return f.recentOut, nil
}
func (f *fakeProjectsRepo) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.created = p
	return p, nil
}
func (f *fakeProjectsRepo) Update(_ context.Context, _ string, p *models.Project) (*models.Project, error) {
	return p, f.saveErr
}
func (f *fakeProjectsRepo) Delete(context.Context, string) error { return nil }

type fakeServicesRepo struct {
	listOut []*models.Service
	created *models.Service
	getErr  error
}

func (f *fakeServicesRepo) List(context.Context, *bool) ([]*models.Service, error) {
	return f.listOut, nil
}
func (f *fakeServicesRepo) Get(context.Context, string) (*models.Service, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.Service{ID: "s1", Icon: "code"}, nil
}
func (f *fakeServicesRepo) Create(_ context.Context, s *models.Service) (*models.Service, error) {
	f.created = s
	return s, nil
}
func (f *fakeServicesRepo) Update(_ context.Context, _ string, s *models.Service) (*models.Service, error) {
	return s, nil
}
func (f *fakeServicesRepo) Delete(context.Context, string) error { return nil }

type fakeSocialRepo struct {
	created *models.SocialMedia
}

func (f *fakeSocialRepo) List(context.Context, *bool) ([]*models.SocialMedia, error) {
	return []*models.SocialMedia{}, nil
}
func (f *fakeSocialRepo) Get(context.Context, string) (*models.SocialMedia, error) {
	return &models.SocialMedia{}, nil
}
func (f *fakeSocialRepo) Create(_ context.Context, l *models.SocialMedia) (*models.SocialMedia, error) {
	f.created = l
	return l, nil
}
func (f *fakeSocialRepo) Update(_ context.Context, _ string, l *models.SocialMedia) (*models.SocialMedia, error) {
	return l, nil
}
func (f *fakeSocialRepo) Delete(context.Context, string) error { return nil }

type fakeSubsRepo struct {
	createdEmail string
	createErr    error
	gotPage      models.Page
	total        int
}

func (f *fakeSubsRepo) Create(_ context.Context, email string) (*models.Subscription, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdEmail = email
	return &models.Subscription{ID: "sub1", Email: email}, nil
}
func (f *fakeSubsRepo) List(_ context.Context, p models.Page) ([]*models.Subscription, int, error) {
	f.gotPage = p
	return []*models.Subscription{}, f.total, nil
}

type fakeAboutRepo struct {
	defaults *models.About
	saved    *models.About
}

func (f *fakeAboutRepo) GetOrCreate(_ context.Context, d *models.About) (*models.About, error) {
	f.defaults = d
	return d, nil
}
func (f *fakeAboutRepo) Save(_ context.Context, a *models.About) (*models.About, error) {
	f.saved = a
	return a, nil
}

type fakeContactRepo struct {
	defaults *models.ContactInfo
}

func (f *fakeContactRepo) GetOrCreate(_ context.Context, d *models.ContactInfo) (*models.ContactInfo, error) {
	f.defaults = d
	return d, nil
}
func (f *fakeContactRepo) Save(_ context.Context, c *models.ContactInfo) (*models.ContactInfo, error) {
	return c, nil
}
