package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/go-chi/chi/v5"
)

const projectEntity = "Project"

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		s.fail(w, r, err, projectEntity)
		return
	}
	featured, err := optionalBool(r, "featured")
	if err != nil {
		s.fail(w, r, err, projectEntity)
		return
	}

	projects, pagination, err := s.deps.Projects.List(r.Context(), models.ListFilter{Featured: featured}, page)
	if err != nil {
		s.fail(w, r, err, projectEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"projects": projects, "pagination": pagination})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.deps.Projects.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.fail(w, r, err, projectEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"project": project})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := decodeJSON(w, r, &project); err != nil {
		s.fail(w, r, err, projectEntity)
		return
	}

	created, err := s.deps.Projects.Create(r.Context(), &project)
	if err != nil {
		s.fail(w, r, err, projectEntity)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, "project": created})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := decodeJSON(w, r, &project); err != nil {
		s.fail(w, r, err, projectEntity)
		return
	}

	updated, err := s.deps.Projects.Update(r.Context(), chi.URLParam(r, "slug"), &project)
	if err != nil {
		s.fail(w, r, err, projectEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "project": updated})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Projects.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		s.fail(w, r, err, projectEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Project deleted successfully"})
}
