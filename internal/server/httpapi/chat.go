package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/studiosite/internal/server/services"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Messages []services.ChatMessage `json:"messages"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		s.fail(w, r, err, "Chat")
		return
	}

	msg, err := s.deps.Chat.Reply(r.Context(), body.Messages)
	if err != nil {
		s.fail(w, r, err, "Chat")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": msg})
}
