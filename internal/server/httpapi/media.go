package httpapi

import "net/http"

func (s *Server) handlePresignUpload(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Filename    string `json:"filename"`
		ContentType string `json:"contentType"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		s.fail(w, r, err, "Upload")
		return
	}

	up, err := s.deps.Media.PresignUpload(r.Context(), body.Filename, body.ContentType)
	if err != nil {
		s.fail(w, r, err, "Upload")
		return
	}
	writeJSON(w, http.StatusOK, up)
}
