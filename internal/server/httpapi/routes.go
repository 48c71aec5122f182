package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const defaultRequestTimeout = 60 * time.Second

// Routes builds the chi router for the whole site.
func (s *Server) Routes() http.Handler {
	timeout := s.opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Post("/chat", s.handleChat)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", s.handleListBlogs)
			r.Get("/{slug}", s.handleGetBlog)
			r.With(s.requireAdmin).Post("/create", s.handleCreateBlog)
			r.With(s.requireAdmin).Put("/{slug}", s.handleUpdateBlog)
			r.With(s.requireAdmin).Delete("/{slug}", s.handleDeleteBlog)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.handleListProjects)
			r.Get("/{slug}", s.handleGetProject)
			r.With(s.requireAdmin).Post("/create", s.handleCreateProject)
			r.With(s.requireAdmin).Put("/{slug}", s.handleUpdateProject)
			r.With(s.requireAdmin).Delete("/{slug}", s.handleDeleteProject)
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/", s.handleListServices)
			r.Get("/icons", s.handleListIcons)
			r.Get("/{id}", s.handleGetService)
			r.With(s.requireAdmin).Post("/", s.handleCreateService)
			r.With(s.requireAdmin).Put("/{id}", s.handleUpdateService)
			r.With(s.requireAdmin).Delete("/{id}", s.handleDeleteService)
		})

		r.Route("/social-media", func(r chi.Router) {
			r.Get("/", s.handleListSocialMedia)
			r.Get("/{id}", s.handleGetSocialMedia)
			r.With(s.requireAdmin).Post("/", s.handleCreateSocialMedia)
			r.With(s.requireAdmin).Put("/{id}", s.handleUpdateSocialMedia)
			r.With(s.requireAdmin).Delete("/{id}", s.handleDeleteSocialMedia)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Post("/", s.handleSubscribe)
			r.With(s.requireAdmin).Get("/", s.handleListSubscriptions)
		})

		r.Get("/about", s.handleGetAbout)
		r.With(s.requireAdmin).Put("/about", s.handleUpdateAbout)
		r.Get("/contact", s.handleGetContact)
		r.With(s.requireAdmin).Put("/contact", s.handleUpdateContact)

		r.With(s.requireAdmin).Post("/uploads/presign", s.handlePresignUpload)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "Not found")
		})
	})

	if s.opts.StaticDir != "" {
		files := http.FileServer(http.Dir(s.opts.StaticDir))

		r.Group(func(r chi.Router) {
			r.Use(s.sessionGate)
			r.Handle("/dashboard", files)
			r.Handle("/dashboard/*", files)
		})
		r.Handle("/*", files)
	} else {
		r.Group(func(r chi.Router) {
			r.Use(s.sessionGate)
			r.Handle("/dashboard", http.NotFoundHandler())
			r.Handle("/dashboard/*", http.NotFoundHandler())
		})
	}

	return r
}
