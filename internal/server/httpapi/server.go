// Package httpapi is the HTTP side of the site server: the JSON content API,
// the dashboard session gate, the chat proxy and the static site.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/logging"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address string
	deps    Deps
	opts    Options
	logger  logging.Logger
}

func NewServer(address string, deps Deps, opts Options, l logging.Logger) *Server {
	return &Server{
		address: address,
		deps:    deps,
		opts:    opts,
		logger:  l.With("module", "http_server"),
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on l until ctx is cancelled, then stops
// accepting and gives in-flight requests up to shutdownTimeout to finish.
// Request contexts keep ctx's values but not its cancellation, so a
// shutdown signal does not abort their database or upstream calls.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	base := context.WithoutCancel(ctx)

	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(base, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(base, shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", l.Addr().String())

	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
