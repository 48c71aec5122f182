package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

func (s *Server) handleGetAbout(w http.ResponseWriter, r *http.Request) {
	a, err := s.deps.Site.About(r.Context())
	if err != nil {
		s.fail(w, r, err, "About")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"about": a})
}

func (s *Server) handleUpdateAbout(w http.ResponseWriter, r *http.Request) {
	var a models.About
	if err := decodeJSON(w, r, &a); err != nil {
		s.fail(w, r, err, "About")
		return
	}
	saved, err := s.deps.Site.UpdateAbout(r.Context(), &a)
	if err != nil {
		s.fail(w, r, err, "About")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "about": saved})
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	c, err := s.deps.Site.Contact(r.Context())
	if err != nil {
		s.fail(w, r, err, "Contact info")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"contact": c})
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var c models.ContactInfo
	if err := decodeJSON(w, r, &c); err != nil {
		s.fail(w, r, err, "Contact info")
		return
	}
	saved, err := s.deps.Site.UpdateContact(r.Context(), &c)
	if err != nil {
		s.fail(w, r, err, "Contact info")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "contact": saved})
}
