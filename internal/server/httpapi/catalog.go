package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/go-chi/chi/v5"
)

const serviceEntity = "Service"

// serviceInput distinguishes an omitted active flag, which defaults to true,
// from an explicit false.
type serviceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
	Active      *bool  `json:"active"`
}

func (in serviceInput) model() *models.Service {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return &models.Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Order:       in.Order,
		Active:      active,
	}
}

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	active, err := optionalBool(r, "active")
	if err != nil {
		s.fail(w, r, err, serviceEntity)
		return
	}
	list, err := s.deps.Catalog.List(r.Context(), active)
	if err != nil {
		s.fail(w, r, err, serviceEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"services": list})
}

func (s *Server) handleListIcons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"icons": s.deps.Catalog.Icons()})
}

func (s *Server) handleGetService(w http.ResponseWriter, r *http.Request) {
	svc, err := s.deps.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, serviceEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"service": svc})
}

func (s *Server) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var in serviceInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err, serviceEntity)
		return
	}
	created, err := s.deps.Catalog.Create(r.Context(), in.model())
	if err != nil {
		s.fail(w, r, err, serviceEntity)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, "service": created})
}

func (s *Server) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	var in serviceInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err, serviceEntity)
		return
	}
	updated, err := s.deps.Catalog.Update(r.Context(), chi.URLParam(r, "id"), in.model())
	if err != nil {
		s.fail(w, r, err, serviceEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "service": updated})
}

func (s *Server) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err, serviceEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Service deleted successfully"})
}
