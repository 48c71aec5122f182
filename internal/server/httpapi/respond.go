package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/studiosite/internal/common"
)

const maxBodyBytes = 1 << 20

// envelope is the generic JSON object shape of every response.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{"error": msg})
}

// decodeJSON reads a single JSON document of at most maxBodyBytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.Invalid("Invalid request body")
	}
	return nil
}

// fail maps err onto a status code and body. entity names the resource in
// not-found and conflict messages, e.g. "Blog post".
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, entity string) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		body := envelope{"error": ve.Error()}
		if len(ve.Fields) > 0 {
			body["fields"] = ve.Fields
		}
		writeJSON(w, http.StatusBadRequest, body)
	case errors.Is(err, common.ErrorInvalidEmail):
		writeError(w, http.StatusBadRequest, "Invalid email address")
	case errors.Is(err, common.ErrorAlreadySubscribed):
		writeJSON(w, http.StatusBadRequest, envelope{"error": "Email already subscribed", "alreadySubscribed": true})
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusConflict, entity+" with this slug already exists")
	case errors.Is(err, common.ErrorUpstream):
		s.logger.Error(r.Context(), "upstream failure", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get response")
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
