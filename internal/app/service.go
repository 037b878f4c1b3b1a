// Package service wires the scoring engine together: profile source,
// stadium table, pair queue, worker pool and result store. It implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	pairqueue "github.com/parkfit/parkfit/internal/adapters/mq/queue"
	workerpool "github.com/parkfit/parkfit/internal/adapters/mq/worker"
	"github.com/parkfit/parkfit/internal/adapters/repository"
	"github.com/parkfit/parkfit/internal/domain/dedupe"
	"github.com/parkfit/parkfit/internal/domain/match"
	"github.com/parkfit/parkfit/internal/domain/model"
	"github.com/parkfit/parkfit/internal/domain/namematch"
	"github.com/parkfit/parkfit/internal/domain/types"
	"github.com/parkfit/parkfit/internal/provider"
	"github.com/parkfit/parkfit/internal/stadiums"
	"github.com/parkfit/parkfit/pkg/logger"
	"github.com/parkfit/parkfit/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultQueueSize  = 100000
	defaultDedupeSize = 50000
)

// runState tracks one in-flight batch run.
type runState struct {
	wg        sync.WaitGroup
	scored    atomic.Int64
	failed    atomic.Int64
	abandoned atomic.Int64
}

// Service coordinates batch scoring and serves the read paths.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	deduper   dedupe.Deduper
	pairQueue pairqueue.Queue
	evaluator *match.Evaluator
	pool      *workerpool.Pool

	source       provider.Source
	stadiumTable []model.StadiumModel
	stadiumByID  map[string]model.StadiumModel

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int
	batchBudget time.Duration
	evalOpts    []match.Option

	// State
	started     bool
	runsMu      sync.RWMutex
	runs        map[string]*runState
	lastSummary types.RunSummary

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of scoring workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the pair queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the pair deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithBatchBudget sets the wall-clock budget for a batch run. Jobs still
// queued past the budget are abandoned rather than scored.
func WithBatchBudget(budget time.Duration) Option {
	return func(s *Service) {
		if budget > 0 {
			s.batchBudget = budget
		}
	}
}

// WithSource sets the hitter profile source.
func WithSource(src provider.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithStadiums replaces the default stadium table.
func WithStadiums(table []model.StadiumModel) Option {
	return func(s *Service) {
		if len(table) > 0 {
			s.stadiumTable = table
		}
	}
}

// WithStore sets a custom result store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithEvaluatorOptions forwards options to the pair evaluator, e.g. custom
// weights or an alternate probability surface.
func WithEvaluatorOptions(opts ...match.Option) Option {
	return func(s *Service) {
		s.evalOpts = append(s.evalOpts, opts...)
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		queueSize:   defaultQueueSize,
		dedupeSize:  defaultDedupeSize,
		runs:        make(map[string]*runState),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components. The weight
// configuration and the stadium table are validated here so a bad setup
// fails before any batch runs.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting match scoring service...")

	evaluator, err := match.NewEvaluator(s.evalOpts...)
	if err != nil {
		return fmt.Errorf("evaluator setup: %w", err)
	}
	s.evaluator = evaluator

	if s.stadiumTable == nil {
		table, err := stadiums.Load()
		if err != nil {
			return err
		}
		s.stadiumTable = table
	}
	s.stadiumByID = make(map[string]model.StadiumModel, len(s.stadiumTable))
	for _, st := range s.stadiumTable {
		if err := st.Validate(); err != nil {
			return err
		}
		s.stadiumByID[st.ID] = st
	}

	if s.source == nil {
		return ErrNoSource
	}
	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	s.deduper = dedupe.NewMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.pairQueue = pairqueue.NewInMemoryQueue(
		pairqueue.WithCapacity(s.queueSize),
		pairqueue.WithBufferSize(s.queueSize),
	)

	s.pool = workerpool.NewPool(s.workerCount, s.pairQueue, s.evaluator, s)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "match scoring service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("stadiums", len(s.stadiumTable)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping match scoring service...")

	if q, ok := s.pairQueue.(*pairqueue.InMemoryQueue); ok {
		_ = q.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}

	s.started = false
	s.logger.Info(ctx, "match scoring service stopped")
}

// Completed receives every finished job from the workers and settles it
// against its run.
func (s *Service) Completed(ctx context.Context, job workerpool.Job, result model.MatchResult, err error) {
	s.runsMu.RLock()
	rs := s.runs[job.RunID]
	s.runsMu.RUnlock()
	if rs == nil {
		s.logger.Warn(ctx, "completion for unknown run", logger.String("runID", job.RunID))
		return
	}
	defer rs.wg.Done()

	switch {
	case err == nil:
		if addErr := s.store.Add(ctx, result); addErr != nil {
			s.logger.Error(ctx, "storing result failed",
				logger.String("hitterID", job.Hitter.ID),
				logger.String("stadiumID", job.Stadium.ID),
				logger.Error(addErr),
			)
			rs.failed.Add(1)
			return
		}
		rs.scored.Add(1)
	case errors.Is(err, workerpool.ErrJobAbandoned):
		rs.abandoned.Add(1)
	default:
		rs.failed.Add(1)
	}
}

// RunBatch scores every provided hitter against every stadium and blocks
// until the batch settles or ctx is cancelled. Hitters with no batted-ball
// events are skipped and counted, never silently dropped.
func (s *Service) RunBatch(ctx context.Context, q provider.Query) (types.RunSummary, error) {
	s.mu.RLock()
	started := s.started
	source := s.source
	table := s.stadiumTable
	budget := s.batchBudget
	s.mu.RUnlock()

	if !started {
		return types.RunSummary{}, ErrNotStarted
	}

	profiles, err := source.Profiles(ctx, q)
	if err != nil {
		return types.RunSummary{}, fmt.Errorf("loading profiles: %w", err)
	}

	runID := uuid.New().String()
	var deadline time.Time
	if budget > 0 {
		deadline = time.Now().Add(budget)
	}

	rs := &runState{}
	s.runsMu.Lock()
	s.runs[runID] = rs
	s.runsMu.Unlock()
	defer func() {
		s.runsMu.Lock()
		delete(s.runs, runID)
		s.runsMu.Unlock()
	}()

	summary := types.RunSummary{
		RunID:    runID,
		Stadiums: len(table),
	}

	for _, hitter := range profiles {
		if len(hitter.Events) == 0 {
			summary.SkippedHitters++
			metrics.RecordHitterSkipped()
			s.logger.Warn(ctx, "skipping hitter with empty profile",
				logger.String("hitterID", hitter.ID),
				logger.String("name", hitter.Name),
			)
			continue
		}
		summary.Hitters++

		profSummary := hitter.Summary()
		excluded := profSummary.Events - profSummary.GeometryEligible
		if excluded > 0 {
			summary.ExcludedEvents += excluded
			metrics.RecordEventsExcluded(excluded)
		}

		for _, stadium := range table {
			key := runID + "|" + dedupe.PairKey(hitter.ID, stadium.ID)
			if s.deduper.SeenAndRecord(ctx, key) {
				continue
			}

			job := workerpool.Job{
				RunID:    runID,
				Hitter:   hitter,
				Stadium:  stadium,
				Deadline: deadline,
			}
			rs.wg.Add(1)
			if !s.pairQueue.Enqueue(ctx, job) {
				rs.wg.Done()
				s.deduper.Unrecord(ctx, key)
				summary.PairsFailed++
				continue
			}
			summary.PairsSubmitted++
		}
	}

	done := make(chan struct{})
	go func() {
		rs.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return summary, fmt.Errorf("batch run cancelled: %w", ctx.Err())
	}

	summary.PairsScored = int(rs.scored.Load())
	summary.PairsFailed += int(rs.failed.Load())
	summary.PairsAbandoned = int(rs.abandoned.Load())

	s.mu.Lock()
	s.lastSummary = summary
	s.mu.Unlock()

	s.logger.Info(ctx, "batch run finished",
		logger.String("runID", runID),
		logger.Int("hitters", summary.Hitters),
		logger.Int("scored", summary.PairsScored),
		logger.Int("failed", summary.PairsFailed),
		logger.Int("abandoned", summary.PairsAbandoned),
		logger.Int("skipped", summary.SkippedHitters),
	)

	return summary, nil
}

// Matchup evaluates a single hitter-stadium pair on demand, returning the
// per-event breakdown alongside the scores.
func (s *Service) Matchup(ctx context.Context, hitterID, stadiumID string) (match.Detail, error) {
	s.mu.RLock()
	started := s.started
	evaluator := s.evaluator
	s.mu.RUnlock()

	if !started {
		return match.Detail{}, ErrNotStarted
	}

	hitter, err := s.hitterByID(ctx, hitterID)
	if err != nil {
		return match.Detail{}, err
	}
	stadium, ok := s.stadiumByID[stadiumID]
	if !ok {
		return match.Detail{}, fmt.Errorf("%w: %s", stadiums.ErrUnknownStadium, stadiumID)
	}

	return evaluator.EvaluateDetailed(ctx, hitter, stadium)
}

// Hitters returns the profiles matching q.
func (s *Service) Hitters(ctx context.Context, q provider.Query) ([]model.HitterProfile, error) {
	s.mu.RLock()
	started := s.started
	source := s.source
	s.mu.RUnlock()

	if !started {
		return nil, ErrNotStarted
	}
	return source.Profiles(ctx, q)
}

// SearchHitters fuzzy-matches hitter names against query.
func (s *Service) SearchHitters(ctx context.Context, query string, limit int) ([]namematch.Candidate, error) {
	profiles, err := s.Hitters(ctx, provider.Query{})
	if err != nil {
		return nil, err
	}
	entries := make([]namematch.Entry, len(profiles))
	for i, p := range profiles {
		entries[i] = namematch.Entry{ID: p.ID, Name: p.Name}
	}
	return namematch.Rank(query, entries, limit), nil
}

// Stadiums returns the stadium table.
func (s *Service) Stadiums(ctx context.Context) ([]model.StadiumModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	out := make([]model.StadiumModel, len(s.stadiumTable))
	copy(out, s.stadiumTable)
	return out, nil
}

// Results returns every stored result.
func (s *Service) Results(ctx context.Context) ([]model.MatchResult, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}
	return s.store.All(ctx)
}

// TopStadiums ranks a hitter's best parks.
func (s *Service) TopStadiums(ctx context.Context, hitterID string, n int) ([]types.StadiumRank, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}
	return s.store.TopStadiums(ctx, hitterID, n)
}

// TopHitters ranks a park's best-fitting hitters.
func (s *Service) TopHitters(ctx context.Context, stadiumID string, n int) ([]types.HitterRank, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}
	return s.store.TopHitters(ctx, stadiumID, n)
}

// StadiumAverages summarizes parks across the whole batch.
func (s *Service) StadiumAverages(ctx context.Context) ([]types.StadiumAverage, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}
	return s.store.StadiumAverages(ctx)
}

// Summary returns the most recent batch run summary.
func (s *Service) Summary(ctx context.Context) (types.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return types.RunSummary{}, ErrNotStarted
	}
	return s.lastSummary, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
	}

	if s.started {
		queueLen := s.pairQueue.Len(ctx)
		stats["queueLength"] = queueLen
		stats["resultCount"] = s.store.Count(ctx)
		stats["stadiums"] = len(s.stadiumTable)
		stats["lastRunID"] = s.lastSummary.RunID

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}

func (s *Service) isStarted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

func (s *Service) hitterByID(ctx context.Context, hitterID string) (model.HitterProfile, error) {
	profiles, err := s.source.Profiles(ctx, provider.Query{})
	if err != nil {
		return model.HitterProfile{}, err
	}
	for _, p := range profiles {
		if p.ID == hitterID {
			return p, nil
		}
	}
	return model.HitterProfile{}, fmt.Errorf("%w: %s", ErrUnknownHitter, hitterID)
}
