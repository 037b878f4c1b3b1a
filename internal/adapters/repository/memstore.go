package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/parkfit/parkfit/internal/domain/model"
	"github.com/parkfit/parkfit/internal/domain/types"
	"github.com/parkfit/parkfit/pkg/metrics"
)

// MemStore implements Store with a mutex-guarded map keyed by hitter and
// stadium id. Rankings are materialized on read; the batch sizes here
// (hitters x 30 parks) never justify an incremental index.
type MemStore struct {
	mu      sync.RWMutex
	results map[string]map[string]model.MatchResult // hitterID -> stadiumID -> result
	count   int
}

// NewMemStore creates an empty in-memory result store.
func NewMemStore() *MemStore {
	return &MemStore{
		results: make(map[string]map[string]model.MatchResult),
	}
}

// Add records a finished result, replacing any previous score for the pair.
func (s *MemStore) Add(_ context.Context, result model.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byStadium, ok := s.results[result.HitterID]
	if !ok {
		byStadium = make(map[string]model.MatchResult)
		s.results[result.HitterID] = byStadium
	}
	if _, exists := byStadium[result.StadiumID]; !exists {
		s.count++
	}
	byStadium[result.StadiumID] = result

	metrics.UpdateResultCount(s.count)
	return nil
}

// All returns every stored result ordered by hitter id then stadium id.
func (s *MemStore) All(_ context.Context) ([]model.MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.MatchResult, 0, s.count)
	for _, byStadium := range s.results {
		for _, r := range byStadium {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HitterID != out[j].HitterID {
			return out[i].HitterID < out[j].HitterID
		}
		return out[i].StadiumID < out[j].StadiumID
	})
	return out, nil
}

// Get returns the result for one hitter-stadium pair.
func (s *MemStore) Get(_ context.Context, hitterID, stadiumID string) (model.MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if byStadium, ok := s.results[hitterID]; ok {
		if r, ok := byStadium[stadiumID]; ok {
			return r, nil
		}
	}
	return model.MatchResult{}, ErrNotFound
}

// TopStadiums ranks a hitter's stadiums by overall score desc, ties broken
// by stadium id asc so rankings are stable across runs.
func (s *MemStore) TopStadiums(_ context.Context, hitterID string, n int) ([]types.StadiumRank, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	byStadium, ok := s.results[hitterID]
	if !ok || len(byStadium) == 0 {
		return nil, ErrNotFound
	}

	rows := make([]model.MatchResult, 0, len(byStadium))
	for _, r := range byStadium {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OverallScore != rows[j].OverallScore {
			return rows[i].OverallScore > rows[j].OverallScore
		}
		return rows[i].StadiumID < rows[j].StadiumID
	})
	if len(rows) > n {
		rows = rows[:n]
	}

	out := make([]types.StadiumRank, len(rows))
	for i, r := range rows {
		out[i] = types.StadiumRank{
			Rank:        i + 1,
			StadiumID:   r.StadiumID,
			StadiumName: r.StadiumName,
			Team:        r.Team,
			Score:       r.OverallScore,
		}
	}
	return out, nil
}

// TopHitters ranks a stadium's hitters by overall score desc, ties broken
// by hitter id asc.
func (s *MemStore) TopHitters(_ context.Context, stadiumID string, n int) ([]types.HitterRank, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]model.MatchResult, 0, len(s.results))
	for _, byStadium := range s.results {
		if r, ok := byStadium[stadiumID]; ok {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OverallScore != rows[j].OverallScore {
			return rows[i].OverallScore > rows[j].OverallScore
		}
		return rows[i].HitterID < rows[j].HitterID
	})
	if len(rows) > n {
		rows = rows[:n]
	}

	out := make([]types.HitterRank, len(rows))
	for i, r := range rows {
		out[i] = types.HitterRank{
			Rank:       i + 1,
			HitterID:   r.HitterID,
			HitterName: r.HitterName,
			Score:      r.OverallScore,
		}
	}
	return out, nil
}

// StadiumAverages summarizes each park's mean overall score across hitters.
func (s *MemStore) StadiumAverages(_ context.Context) ([]types.StadiumAverage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type acc struct {
		sample model.MatchResult
		sum    float64
		n      int
	}
	byPark := make(map[string]*acc)
	for _, byStadium := range s.results {
		for stadiumID, r := range byStadium {
			a, ok := byPark[stadiumID]
			if !ok {
				a = &acc{sample: r}
				byPark[stadiumID] = a
			}
			a.sum += r.OverallScore
			a.n++
		}
	}

	out := make([]types.StadiumAverage, 0, len(byPark))
	for stadiumID, a := range byPark {
		out = append(out, types.StadiumAverage{
			StadiumID:   stadiumID,
			StadiumName: a.sample.StadiumName,
			Team:        a.sample.Team,
			ParkFactor:  a.sample.ParkFactor,
			Hitters:     a.n,
			MeanScore:   a.sum / float64(a.n),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanScore != out[j].MeanScore {
			return out[i].MeanScore > out[j].MeanScore
		}
		return out[i].StadiumID < out[j].StadiumID
	})
	return out, nil
}

// Count returns the number of stored results.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Reset drops all stored results.
func (s *MemStore) Reset(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[string]map[string]model.MatchResult)
	s.count = 0
	metrics.UpdateResultCount(0)
}
