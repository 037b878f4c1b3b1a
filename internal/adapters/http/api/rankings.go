package api

import (
	"net/http"
	"strconv"
	"strings"
)

// RankingsHandler handles both ranking directions: a hitter's best parks
// and a park's best-fitting hitters.
type RankingsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps Dependencies, maxLimit int) *RankingsHandler {
	return &RankingsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleHitterRankings handles GET /rankings/hitters/{hitter_id}?limit=N.
func (h *RankingsHandler) HandleHitterRankings(w http.ResponseWriter, r *http.Request) {
	id, n, ok := h.parse(w, r, "/rankings/hitters/")
	if !ok {
		return
	}
	ranks, err := h.deps.TopStadiums(r.Context(), id, n)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranks)
}

// HandleStadiumRankings handles GET /rankings/stadiums/{stadium_id}?limit=N.
func (h *RankingsHandler) HandleStadiumRankings(w http.ResponseWriter, r *http.Request) {
	id, n, ok := h.parse(w, r, "/rankings/stadiums/")
	if !ok {
		return
	}
	ranks, err := h.deps.TopHitters(r.Context(), id, n)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranks)
}

func (h *RankingsHandler) parse(w http.ResponseWriter, r *http.Request, prefix string) (id string, n int, ok bool) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return "", 0, false
	}
	id = strings.TrimPrefix(r.URL.Path, prefix)
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return "", 0, false
	}

	n = defaultRankingLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return "", 0, false
		}
		n = parsed
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
		return "", 0, false
	}
	return id, n, true
}
