// Package server wires storage, services and transports together and runs
// the site until it receives a shutdown signal.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/studiosite/internal/logging"
	"github.com/dmitrijs2005/studiosite/internal/server/config"
	"github.com/dmitrijs2005/studiosite/internal/server/httpapi"
	"github.com/dmitrijs2005/studiosite/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studiosite/internal/server/services"

	gs "github.com/dmitrijs2005/studiosite/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	deps   httpapi.Deps
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.Production)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger.Debug(ctx, "connecting to database")
	db, err := repomanager.Open(ctx, c.DatabaseDSN, repomanager.PoolOptions{
		ConnectTimeout:  c.DBConnectTimeout,
		ConnMaxIdleTime: c.DBConnMaxIdleTime,
		MaxOpenConns:    c.DBMaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	logger.Debug(ctx, "connected to database")

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	deps := httpapi.Deps{
		Blogs:         services.NewBlogService(db, rm, c),
		Projects:      services.NewProjectService(db, rm, c),
		Catalog:       services.NewCatalogService(db, rm),
		SocialMedia:   services.NewSocialMediaService(db, rm),
		Subscriptions: services.NewSubscriptionService(db, rm, c),
		Site:          services.NewSiteService(db, rm),
		Sessions:      services.NewSessionService(c),
		Chat:          services.NewChatService(c, logger),
		Media:         services.NewMediaService(c),
		DB:            db,
	}

	if c.AdminEmail == "" || c.AdminPassword == "" {
		logger.Warn(ctx, "admin credentials are not configured, dashboard login is disabled")
	}
	if !c.SessionSecretUsable() {
		logger.Warn(ctx, "session secret is not configured, dashboard login is disabled")
	}
	if c.OpenAIAPIKey == "" {
		logger.Warn(ctx, "chat upstream key is not configured, chat requests will fail")
	}

	return &App{config: c, logger: logger, db: db, deps: deps}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.deps, httpapi.Options{
		StaticDir:     app.config.StaticDir,
		SecureCookies: app.config.Production,
	}, app.logger.With("module", "http"))

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger.With("module", "grpc"), app.db)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts both servers and blocks until they have shut down.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "http", app.config.EndpointAddrHTTP, "grpc", app.config.EndpointAddrGRPC)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
		return
	}
	app.logger.Debug(context.Background(), "database connection closed")
}
