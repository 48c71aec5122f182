package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/common"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{"ok": false, "error": "Invalid request body"})
		return
	}

	token, err := s.deps.Sessions.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Warn(r.Context(), "rejected dashboard login", "remote", r.RemoteAddr)
			writeJSON(w, http.StatusUnauthorized, envelope{"ok": false, "error": "Invalid email or password"})
			return
		}
		s.fail(w, r, err, "Session")
		return
	}

	ttl := s.deps.Sessions.TTL()
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, envelope{"ok": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, envelope{"ok": true})
}
