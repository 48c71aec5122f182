package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/logging"
	"github.com/dmitrijs2005/studiosite/internal/server/icons"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/dmitrijs2005/studiosite/internal/server/services"
)

const validToken = "valid-token"

type fakeBlogs struct {
	listFilter models.ListFilter
	listPage   models.Page
	getErr     error
	saveErr    error
	saved      *models.BlogPost
	deleteErr  error
	panicOnGet bool

	// started and release, when set, hold Get open until the test lets go.
	started chan struct{}
	release chan struct{}
}

func (f *fakeBlogs) List(_ context.Context, filter models.ListFilter, page models.Page) ([]*models.BlogPost, models.Pagination, error) {
	f.listFilter, f.listPage = filter, page
	return []*models.BlogPost{{ID: "b1", Slug: "hello"}}, models.NewPagination(page, 1), nil
}
func (f *fakeBlogs) Get(ctx context.Context, slug string) (*models.BlogPost, error) {
	if f.panicOnGet {
		panic("boom")
	}
	if f.release != nil {
		close(f.started)
		<-f.release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.BlogPost{ID: "b1", Slug: slug, RelatedPosts: []*models.BlogPost{{ID: "b2"}}}, nil
}
func (f *fakeBlogs) Create(_ context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = p
	p.ID = "new"
	return p, nil
}
func (f *fakeBlogs) Update(_ context.Context, _ string, p *models.BlogPost) (*models.BlogPost, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = p
	return p, nil
}
func (f *fakeBlogs) Delete(context.Context, string) error { return f.deleteErr }

type fakeProjects struct{ getErr error }

func (f *fakeProjects) List(_ context.Context, _ models.ListFilter, page models.Page) ([]*models.Project, models.Pagination, error) {
	return []*models.Project{}, models.NewPagination(page, 0), nil
}
func (f *fakeProjects) Get(_ context.Context, slug string) (*models.Project, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.Project{Slug: slug, RelatedProjects: []*models.Project{}}, nil
}
func (f *fakeProjects) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	return p, nil
}
func (f *fakeProjects) Update(_ context.Context, _ string, p *models.Project) (*models.Project, error) {
	return p, nil
}
func (f *fakeProjects) Delete(context.Context, string) error { return nil }

type fakeCatalog struct {
	active  *bool
	created *models.Service
}

func (f *fakeCatalog) List(_ context.Context, active *bool) ([]*models.Service, error) {
	f.active = active
	return []*models.Service{{ID: "s1", Icon: "code"}}, nil
}
func (f *fakeCatalog) Get(context.Context, string) (*models.Service, error) {
	return nil, common.ErrorNotFound
}
func (f *fakeCatalog) Create(_ context.Context, s *models.Service) (*models.Service, error) {
	f.created = s
	return s, nil
}
func (f *fakeCatalog) Update(_ context.Context, _ string, s *models.Service) (*models.Service, error) {
	return s, nil
}
func (f *fakeCatalog) Delete(context.Context, string) error { return nil }
func (f *fakeCatalog) Icons() []icons.Icon                  { return icons.List() }

type fakeSocial struct{ created *models.SocialMedia }

func (f *fakeSocial) List(context.Context, *bool) ([]*models.SocialMedia, error) {
	return []*models.SocialMedia{}, nil
}
func (f *fakeSocial) Get(context.Context, string) (*models.SocialMedia, error) {
	return &models.SocialMedia{ID: "l1"}, nil
}
func (f *fakeSocial) Create(_ context.Context, l *models.SocialMedia) (*models.SocialMedia, error) {
	f.created = l
	return l, nil
}
func (f *fakeSocial) Update(_ context.Context, _ string, l *models.SocialMedia) (*models.SocialMedia, error) {
	return l, nil
}
func (f *fakeSocial) Delete(context.Context, string) error { return nil }

type fakeSubs struct{ err error }

func (f *fakeSubs) Subscribe(_ context.Context, email string) (*models.Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Subscription{ID: "sub", Email: email}, nil
}
func (f *fakeSubs) List(_ context.Context, page models.Page) ([]*models.Subscription, models.Pagination, error) {
	return []*models.Subscription{}, models.NewPagination(page, 0), nil
}

type fakeSite struct{}

func (fakeSite) About(context.Context) (*models.About, error) {
	return models.DefaultAbout(), nil
}
func (fakeSite) UpdateAbout(_ context.Context, a *models.About) (*models.About, error) {
	return a, nil
}
func (fakeSite) Contact(context.Context) (*models.ContactInfo, error) {
	return models.DefaultContactInfo(), nil
}
func (fakeSite) UpdateContact(_ context.Context, c *models.ContactInfo) (*models.ContactInfo, error) {
	return c, nil
}

type fakeSessions struct{}

func (fakeSessions) Login(_ context.Context, email, password string) (string, error) {
	if email == "admin@site.io" && password == "pw" {
		return validToken, nil
	}
	return "", common.ErrorUnauthorized
}
func (fakeSessions) Verify(token string) error {
	if token == validToken {
		return nil
	}
	return common.ErrorUnauthorized
}
func (fakeSessions) TTL() time.Duration { return 24 * time.Hour }

type fakeChat struct {
	got []services.ChatMessage
	err error
}

func (f *fakeChat) Reply(_ context.Context, msgs []services.ChatMessage) (*services.ChatMessage, error) {
	f.got = msgs
	if f.err != nil {
		return nil, f.err
	}
	return &services.ChatMessage{Role: "assistant", Content: "Hello!"}, nil
}

type fakeMedia struct{}

func (fakeMedia) PresignUpload(_ context.Context, filename, _ string) (*services.Upload, error) {
	if filename == "" {
		return nil, common.MissingFields("filename")
	}
	return &services.Upload{Key: "uploads/x.png", URL: "https://signed", PublicURL: "https://cdn/uploads/x.png"}, nil
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func newDeps() Deps {
	return Deps{
		Blogs:         &fakeBlogs{},
		Projects:      &fakeProjects{},
		Catalog:       &fakeCatalog{},
		SocialMedia:   &fakeSocial{},
		Subscriptions: &fakeSubs{},
		Site:          fakeSite{},
		Sessions:      fakeSessions{},
		Chat:          &fakeChat{},
		Media:         fakeMedia{},
		DB:            fakePinger{},
	}
}

func newTestServer(t *testing.T, d Deps, opts Options) http.Handler {
	t.Helper()
	return NewServer("127.0.0.1:0", d, opts, logging.Nop()).Routes()
}

// do issues a request; admin attaches a valid session cookie.
func do(t *testing.T, h http.Handler, method, target, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if admin {
		req.AddCookie(&http.Cookie{Name: common.SessionCookieName, Value: validToken})
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

var errDB = errors.New("db down")

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
