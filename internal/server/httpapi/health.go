package httpapi

import (
	"context"
	"net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := s.deps.DB.PingContext(ctx); err != nil {
		s.logger.Warn(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, envelope{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, envelope{"status": "ok"})
}
