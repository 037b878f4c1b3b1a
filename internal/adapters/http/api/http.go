// Package api declares HTTP contracts and route registration helpers.
// All endpoints are read-only; batches are triggered from the command line.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/parkfit/parkfit/internal/adapters/repository"
	service "github.com/parkfit/parkfit/internal/app"
	"github.com/parkfit/parkfit/internal/domain/match"
	"github.com/parkfit/parkfit/internal/domain/model"
	"github.com/parkfit/parkfit/internal/domain/namematch"
	"github.com/parkfit/parkfit/internal/domain/types"
	"github.com/parkfit/parkfit/internal/stadiums"
)

// Default handler limits.
const (
	defaultRankingLimit = 10
	maxRankingLimit     = 100
	defaultSearchLimit  = 10
)

// Dependencies required by the HTTP handlers. An interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Stadiums(ctx context.Context) ([]model.StadiumModel, error)
	Results(ctx context.Context) ([]model.MatchResult, error)
	TopStadiums(ctx context.Context, hitterID string, n int) ([]types.StadiumRank, error)
	TopHitters(ctx context.Context, stadiumID string, n int) ([]types.HitterRank, error)
	StadiumAverages(ctx context.Context) ([]types.StadiumAverage, error)
	Matchup(ctx context.Context, hitterID, stadiumID string) (match.Detail, error)
	SearchHitters(ctx context.Context, query string, limit int) ([]namematch.Candidate, error)
	Summary(ctx context.Context) (types.RunSummary, error)
}

// Server wires HTTP routes for the read API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	stadiumsHandler *StadiumsHandler
	resultsHandler  *ResultsHandler
	rankingsHandler *RankingsHandler
	matchupHandler  *MatchupHandler
	searchHandler   *SearchHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider, deps),
		stadiumsHandler: NewStadiumsHandler(deps),
		resultsHandler:  NewResultsHandler(deps),
		rankingsHandler: NewRankingsHandler(deps, maxRankingLimit),
		matchupHandler:  NewMatchupHandler(deps),
		searchHandler:   NewSearchHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/stadiums", MetricsMiddleware(s.stadiumsHandler.HandleGetStadiums, "stadiums"))
	mux.HandleFunc("/results", MetricsMiddleware(s.resultsHandler.HandleGetResults, "results"))
	mux.HandleFunc("/rankings/hitters/", MetricsMiddleware(s.rankingsHandler.HandleHitterRankings, "rankings_hitters"))
	mux.HandleFunc("/rankings/stadiums/", MetricsMiddleware(s.rankingsHandler.HandleStadiumRankings, "rankings_stadiums"))
	mux.HandleFunc("/matchup", MetricsMiddleware(s.matchupHandler.HandleGetMatchup, "matchup"))
	mux.HandleFunc("/hitters/search", MetricsMiddleware(s.searchHandler.HandleSearch, "hitters_search"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates service errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrUnknownHitter),
		errors.Is(err, stadiums.ErrUnknownStadium):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrInvalidLimit),
		errors.Is(err, match.ErrEmptyProfile):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
