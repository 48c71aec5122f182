package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
	"github.com/go-chi/chi/v5"
)

const socialEntity = "Social media link"

type socialMediaInput struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IsActive *bool  `json:"isActive"`
}

func (in socialMediaInput) model() *models.SocialMedia {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &models.SocialMedia{Platform: models.Platform(in.Platform), URL: in.URL, IsActive: active}
}

func (s *Server) handleListSocialMedia(w http.ResponseWriter, r *http.Request) {
	active, err := optionalBool(r, "active")
	if err != nil {
		s.fail(w, r, err, socialEntity)
		return
	}
	links, err := s.deps.SocialMedia.List(r.Context(), active)
	if err != nil {
		s.fail(w, r, err, socialEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"socialMedia": links})
}

func (s *Server) handleGetSocialMedia(w http.ResponseWriter, r *http.Request) {
	l, err := s.deps.SocialMedia.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err, socialEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"socialMedia": l})
}

func (s *Server) handleCreateSocialMedia(w http.ResponseWriter, r *http.Request) {
	var in socialMediaInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err, socialEntity)
		return
	}
	created, err := s.deps.SocialMedia.Create(r.Context(), in.model())
	if err != nil {
		s.fail(w, r, err, socialEntity)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, "socialMedia": created})
}

func (s *Server) handleUpdateSocialMedia(w http.ResponseWriter, r *http.Request) {
	var in socialMediaInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err, socialEntity)
		return
	}
	updated, err := s.deps.SocialMedia.Update(r.Context(), chi.URLParam(r, "id"), in.model())
	if err != nil {
		s.fail(w, r, err, socialEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "socialMedia": updated})
}

func (s *Server) handleDeleteSocialMedia(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.SocialMedia.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err, socialEntity)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Social media link deleted successfully"})
}
