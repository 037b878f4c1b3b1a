package api

import (
	"net/http"
)

// StadiumsHandler handles stadium table requests.
type StadiumsHandler struct {
	deps Dependencies
}

// NewStadiumsHandler creates a new stadiums handler.
func NewStadiumsHandler(deps Dependencies) *StadiumsHandler {
	return &StadiumsHandler{deps: deps}
}

// HandleGetStadiums handles GET /stadiums requests.
func (h *StadiumsHandler) HandleGetStadiums(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	table, err := h.deps.Stadiums(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}
