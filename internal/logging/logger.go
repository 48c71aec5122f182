// Package logging is the structured-logging seam of the site server. Every
// component receives a Logger and tags it with With("module", ...).
package logging

import "context"

// Logger is a context-aware, structured logger. Args are key/value pairs:
//
//	log.Info(ctx, "blog created", "slug", post.Slug)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)

	// Warn is for rejected logins, failed health probes and similar
	// conditions the server recovers from on its own.
	Warn(ctx context.Context, msg string, args ...any)

	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
