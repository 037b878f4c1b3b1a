// Package match evaluates a single hitter against a single stadium,
// producing the MatchResult that the batch and interactive paths share.
package match

import (
	"context"
	"fmt"

	"github.com/parkfit/parkfit/internal/domain/model"
	"github.com/parkfit/parkfit/internal/domain/outcome"
	"github.com/parkfit/parkfit/internal/domain/scoring"
)

// Detail is the single-pair interactive result: the MatchResult plus the
// per-event breakdown the visualization collaborator renders as
// field-relative markers.
type Detail struct {
	Result model.MatchResult      `json:"result"`
	Events []outcome.EventOutcome `json:"events"`
}

// Evaluator computes MatchResults. It is pure and safe for concurrent use:
// identical inputs always produce bit-identical results.
type Evaluator struct {
	weights scoring.Weights
	anchors scoring.Anchors
	calc    *outcome.Calculator
}

// Option applies a configuration option to the Evaluator.
type Option func(*Evaluator)

// WithWeights sets the component score weights.
func WithWeights(w scoring.Weights) Option {
	return func(e *Evaluator) { e.weights = w }
}

// WithAnchors sets the component scale anchors.
func WithAnchors(a scoring.Anchors) Option {
	return func(e *Evaluator) { e.anchors = a }
}

// WithSurface injects an alternate probability surface into the expected
// outcome calculator.
func WithSurface(s outcome.Surface) Option {
	return func(e *Evaluator) { e.calc = outcome.NewCalculator(outcome.WithSurface(s)) }
}

// NewEvaluator constructs an Evaluator. An invalid weight configuration is
// rejected here so a batch never starts with one.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		weights: scoring.DefaultWeights(),
		anchors: scoring.DefaultAnchors(),
		calc:    outcome.NewCalculator(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.weights.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Evaluate scores one hitter against one stadium. Inputs are read-only; the
// result is freshly built. Hitters without events are rejected with
// ErrEmptyProfile so callers can skip and count them.
func (e *Evaluator) Evaluate(ctx context.Context, hitter model.HitterProfile, stadium model.StadiumModel) (model.MatchResult, error) {
	res, _, err := e.evaluate(ctx, hitter, stadium, false)
	return res, err
}

// EvaluateDetailed also returns the per-event outcome list for the
// interactive path.
func (e *Evaluator) EvaluateDetailed(ctx context.Context, hitter model.HitterProfile, stadium model.StadiumModel) (Detail, error) {
	res, events, err := e.evaluate(ctx, hitter, stadium, true)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Result: res, Events: events}, nil
}

func (e *Evaluator) evaluate(ctx context.Context, hitter model.HitterProfile, stadium model.StadiumModel, detailed bool) (model.MatchResult, []outcome.EventOutcome, error) {
	if err := ctx.Err(); err != nil {
		return model.MatchResult{}, nil, fmt.Errorf("evaluation cancelled: %w", err)
	}
	if len(hitter.Events) == 0 {
		return model.MatchResult{}, nil, fmt.Errorf("%w: hitter %s", ErrEmptyProfile, hitter.ID)
	}
	if err := stadium.Validate(); err != nil {
		return model.MatchResult{}, nil, err
	}

	summary := hitter.Summary()

	evScore := scoring.ExitVelocityScore(summary.MeanExitVelocity, stadium.ParkFactor, e.anchors)
	hhScore := scoring.HardHitScore(summary.HardHitRate, e.anchors)
	distScore, _ := scoring.DistanceScore(hitter.Events, stadium)

	overall, err := scoring.Overall(e.weights, evScore, hhScore, distScore)
	if err != nil {
		return model.MatchResult{}, nil, err
	}

	stats, events := e.calc.Evaluate(hitter.Events, stadium)
	if !detailed {
		events = nil
	}

	return model.MatchResult{
		HitterID:   hitter.ID,
		HitterName: hitter.Name,

		StadiumID:   stadium.ID,
		StadiumName: stadium.Name,
		Team:        stadium.Team,
		LeftField:   stadium.LeftField,
		CenterField: stadium.CenterField,
		RightField:  stadium.RightField,
		ParkFactor:  stadium.ParkFactor,

		ExitVelocityScore: evScore,
		HardHitScore:      hhScore,
		DistanceScore:     distScore,
		OverallScore:      overall,

		XBA:         stats.XBA,
		XSLG:        stats.XSLG,
		XOPS:        stats.XOPS,
		HomeRunRate: stats.HomeRunRate,

		EventsUsed:     stats.EventsUsed,
		EventsExcluded: stats.EventsExcluded,
	}, events, nil
}
