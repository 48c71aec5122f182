package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/server/icons"
	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/dmitrijs2005/studiosite/internal/server/services"
)

// The interfaces below are the slices of the services package each handler
// group depends on.

type Blogs interface {
	List(ctx context.Context, filter models.ListFilter, page models.Page) ([]*models.BlogPost, models.Pagination, error)
	Get(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	Update(ctx context.Context, slug string, post *models.BlogPost) (*models.BlogPost, error)
	Delete(ctx context.Context, slug string) error
}

type Projects interface {
	List(ctx context.Context, filter models.ListFilter, page models.Page) ([]*models.Project, models.Pagination, error)
	Get(ctx context.Context, slug string) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	Update(ctx context.Context, slug string, p *models.Project) (*models.Project, error)
	Delete(ctx context.Context, slug string) error
}

type Catalog interface {
	List(ctx context.Context, active *bool) ([]*models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, svc *models.Service) (*models.Service, error)
	Update(ctx context.Context, id string, svc *models.Service) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	Icons() []icons.Icon
}

type SocialMedia interface {
	List(ctx context.Context, active *bool) ([]*models.SocialMedia, error)
	Get(ctx context.Context, id string) (*models.SocialMedia, error)
	Create(ctx context.Context, l *models.SocialMedia) (*models.SocialMedia, error)
	Update(ctx context.Context, id string, l *models.SocialMedia) (*models.SocialMedia, error)
	Delete(ctx context.Context, id string) error
}

type Subscriptions interface {
	Subscribe(ctx context.Context, email string) (*models.Subscription, error)
	List(ctx context.Context, page models.Page) ([]*models.Subscription, models.Pagination, error)
}

type Site interface {
	About(ctx context.Context) (*models.About, error)
	UpdateAbout(ctx context.Context, a *models.About) (*models.About, error)
	Contact(ctx context.Context) (*models.ContactInfo, error)
	UpdateContact(ctx context.Context, c *models.ContactInfo) (*models.ContactInfo, error)
}

type Sessions interface {
	Login(ctx context.Context, email, password string) (string, error)
	Verify(token string) error
	TTL() time.Duration
}

type Chat interface {
	Reply(ctx context.Context, messages []services.ChatMessage) (*services.ChatMessage, error)
}

type Media interface {
	PresignUpload(ctx context.Context, filename, contentType string) (*services.Upload, error)
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps bundles everything the router serves.
type Deps struct {
	Blogs         Blogs
	Projects      Projects
	Catalog       Catalog
	SocialMedia   SocialMedia
	Subscriptions Subscriptions
	Site          Site
	Sessions      Sessions
	Chat          Chat
	Media         Media
	DB            Pinger
}

// Options tune transport-level behavior.
type Options struct {
	// StaticDir is served for every non-API path when set.
	StaticDir string
	// SecureCookies marks the session cookie Secure.
	SecureCookies bool
	// RequestTimeout bounds every request's context.
	RequestTimeout time.Duration
}
