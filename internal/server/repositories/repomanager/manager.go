package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studiosite/internal/dbx"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/about"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/contact"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/projects"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/services"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/socialmedia"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/subscriptions"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Blogs(db dbx.DBTX) blogs.Repository
	Projects(db dbx.DBTX) projects.Repository
	Services(db dbx.DBTX) services.Repository
	SocialMedia(db dbx.DBTX) socialmedia.Repository
	Subscriptions(db dbx.DBTX) subscriptions.Repository
	About(db dbx.DBTX) about.Repository
	Contact(db dbx.DBTX) contact.Repository
}
