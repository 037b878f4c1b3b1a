package outcome

import (
	"github.com/parkfit/parkfit/internal/domain/geometry"
	"github.com/parkfit/parkfit/internal/domain/model"
)

// Expected bases for a batted ball: singles are worth one base and the
// extra-base mass splits 80/20 between doubles and triples, so expected
// bases = P(hit) + 1.2 * P(xbh). Home runs bypass the surface entirely and
// contribute four bases deterministically.
const (
	doubleShare  = 0.8
	tripleShare  = 0.2
	homeRunBases = 4.0
)

// EventOutcome is the per-event breakdown handed to the visualization
// collaborator: the landing classification plus the event's contribution to
// the expected statistics.
type EventOutcome struct {
	Event          model.BattedBallEvent   `json:"event"`
	Classified     bool                    `json:"classified"`
	Classification geometry.Classification `json:"classification,omitempty"`
	HitProbability float64                 `json:"hit_probability"`
	ExpectedBases  float64                 `json:"expected_bases"`
}

// Stats are the aggregate expected statistics for one hitter in one park.
type Stats struct {
	XBA         float64
	XSLG        float64
	XOPS        float64
	HomeRunRate float64

	EventsUsed     int
	EventsExcluded int
	HomeRuns       int
}

// Calculator folds per-event outcome estimates into aggregate expected
// statistics.
type Calculator struct {
	surface Surface
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithSurface injects an alternate probability surface.
func WithSurface(s Surface) Option {
	return func(c *Calculator) {
		if s != nil {
			c.surface = s
		}
	}
}

// NewCalculator creates a Calculator, defaulting to the built-in grid
// surface.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{surface: DefaultSurface()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Evaluate estimates every event independently of its recorded outcome and
// aggregates:
//   - xBA: mean per-event hit probability (home runs count 1.0).
//   - xSLG: mean per-event expected bases (home runs count 4.0).
//   - xOPS: xBA + xSLG, with xBA standing in as the on-base approximation
//     since the profile carries no walk data.
//   - HomeRunRate: home-run share of geometry-eligible events.
//
// Events without landing data still contribute surface probabilities (the
// surface needs only exit velocity and launch angle) but are excluded from
// the home-run rate and counted in EventsExcluded.
func (c *Calculator) Evaluate(events []model.BattedBallEvent, stadium model.StadiumModel) (Stats, []EventOutcome) {
	stats := Stats{EventsUsed: len(events)}
	if len(events) == 0 {
		return stats, nil
	}

	outcomes := make([]EventOutcome, 0, len(events))
	var hitSum, baseSum float64
	var eligible int

	for _, e := range events {
		eo := EventOutcome{Event: e}

		cls, ok := geometry.ResolveEvent(stadium, e)
		if ok {
			eligible++
			eo.Classified = true
			eo.Classification = cls
		} else {
			stats.EventsExcluded++
		}

		switch {
		case ok && cls == geometry.HomeRun:
			stats.HomeRuns++
			eo.HitProbability = 1.0
			eo.ExpectedBases = homeRunBases
		case ok && cls == geometry.Foul:
			// Recorded landing outside fair territory: no hit value.
		default:
			hit := c.surface.HitProbability(e.ExitVelocity, e.LaunchAngle)
			xbh := c.surface.ExtraBaseProbability(e.ExitVelocity, e.LaunchAngle)
			eo.HitProbability = hit
			eo.ExpectedBases = hit + (2*doubleShare+3*tripleShare-1)*xbh
		}

		hitSum += eo.HitProbability
		baseSum += eo.ExpectedBases
		outcomes = append(outcomes, eo)
	}

	n := float64(len(events))
	stats.XBA = hitSum / n
	stats.XSLG = baseSum / n
	stats.XOPS = stats.XBA + stats.XSLG
	if eligible > 0 {
		stats.HomeRunRate = float64(stats.HomeRuns) / float64(eligible)
	}
	return stats, outcomes
}
