package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/go-chi/chi/v5"
)

const blogEntity = "Blog post"

func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		s.fail(w, r, err, blogEntity)
		return
	}
	featured, err := optionalBool(r, "featured")
	if err != nil {
		s.fail(w, r, err, blogEntity)
		return
	}

	posts, pagination, err := s.deps.Blogs.List(r.Context(), models.ListFilter{Featured: featured}, page)
	if err != nil {
		s.fail(w, r, err, blogEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"blogs": posts, "pagination": pagination})
}

func (s *Server) handleGetBlog(w http.ResponseWriter, r *http.Request) {
	post, err := s.deps.Blogs.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.fail(w, r, err, blogEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"blog": post})
}

func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := decodeJSON(w, r, &post); err != nil {
		s.fail(w, r, err, blogEntity)
		return
	}

	created, err := s.deps.Blogs.Create(r.Context(), &post)
	if err != nil {
		s.fail(w, r, err, blogEntity)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, "blog": created})
}

func (s *Server) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := decodeJSON(w, r, &post); err != nil {
		s.fail(w, r, err, blogEntity)
		return
	}

	updated, err := s.deps.Blogs.Update(r.Context(), chi.URLParam(r, "slug"), &post)
	if err != nil {
		s.fail(w, r, err, blogEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "blog": updated})
}

func (s *Server) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Blogs.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		s.fail(w, r, err, blogEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Blog post deleted successfully"})
}
