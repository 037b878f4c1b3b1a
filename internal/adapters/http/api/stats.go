package api

import (
	"net/http"
)

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	statsProvider StatsProvider
	deps          Dependencies
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider, deps Dependencies) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider, deps: deps}
}

// HandleStats handles GET /stats requests: service counters, the last run
// summary and per-park aggregates.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	stats := h.statsProvider.GetStats()

	if summary, err := h.deps.Summary(r.Context()); err == nil {
		stats["lastRun"] = summary
	}
	if averages, err := h.deps.StadiumAverages(r.Context()); err == nil {
		stats["stadiumAverages"] = averages
	}

	writeJSON(w, http.StatusOK, stats)
}
