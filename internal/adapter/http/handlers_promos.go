package adapthttp

import (
	"net/http"

	"promoadmin/internal/domain"
)

func (s *Server) handleListPromos(w http.ResponseWriter, r *http.Request) {
	status := domain.PromoStatus(r.URL.Query().Get("status"))
	promos, err := s.moderation.List(r.Context(), status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"promos": promos})
}

func (s *Server) handleApprovePromo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	promo, err := s.moderation.Approve(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "promo": promo})
}

func (s *Server) handleRejectPromo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	promo, err := s.moderation.Reject(r.Context(), id, body.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "promo": promo})
}

func (s *Server) handleBroadcastPromo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := s.moderation.Broadcast(r.Context(), id, body.Confirm)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	// A failed attempt is data, not an error: the promotion stays
	// approved and the operator may retry.
	writeJSON(w, http.StatusOK, result)
}
