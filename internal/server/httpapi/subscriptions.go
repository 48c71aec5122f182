package httpapi

import "net/http"

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		s.fail(w, r, err, "Subscription")
		return
	}

	sub, err := s.deps.Subscriptions.Subscribe(r.Context(), body.Email)
	if err != nil {
		s.fail(w, r, err, "Subscription")
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, "subscription": sub})
}

func (s *Server) handleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		s.fail(w, r, err, "Subscription")
		return
	}
	subs, pagination, err := s.deps.Subscriptions.List(r.Context(), page)
	if err != nil {
		s.fail(w, r, err, "Subscription")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"subscriptions": subs, "pagination": pagination})
}
