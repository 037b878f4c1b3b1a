package api

import (
	"net/http"
)

// MatchupHandler serves the single-pair interactive evaluation, including
// the per-event breakdown used for spray-chart rendering.
type MatchupHandler struct {
	deps Dependencies
}

// NewMatchupHandler creates a new matchup handler.
func NewMatchupHandler(deps Dependencies) *MatchupHandler {
	return &MatchupHandler{deps: deps}
}

// HandleGetMatchup handles GET /matchup?hitter={id}&stadium={id}.
func (h *MatchupHandler) HandleGetMatchup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	hitterID := r.URL.Query().Get("hitter")
	stadiumID := r.URL.Query().Get("stadium")
	if hitterID == "" || stadiumID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	detail, err := h.deps.Matchup(r.Context(), hitterID, stadiumID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
