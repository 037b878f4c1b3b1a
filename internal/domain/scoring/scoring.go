// Package scoring computes component fit scores and the overall match score
// for a hitter against a stadium. All scorers are pure and deterministic and
// return values clamped to [0, 100].
package scoring

import (
	"fmt"
	"math"

	"github.com/parkfit/parkfit/internal/domain/geometry"
	"github.com/parkfit/parkfit/internal/domain/model"
)

const maxScore = 100.0

// Anchors define the linear scales the component scorers map raw metrics
// through. They are tunable constants, not invariants: the defaults below are
// the documented reference points (85 mph -> 0, 100 mph -> 100 for exit
// velocity; a 50% hard-hit rate maps to 100).
type Anchors struct {
	ExitVelocityLow  float64
	ExitVelocityHigh float64
	HardHitHigh      float64
}

// DefaultAnchors returns the documented default scale anchors.
func DefaultAnchors() Anchors {
	return Anchors{
		ExitVelocityLow:  85.0,
		ExitVelocityHigh: 100.0,
		HardHitHigh:      0.50,
	}
}

// Weights combine the component scores into the overall match score.
type Weights struct {
	ExitVelocity float64 `koanf:"exit_velocity"`
	HardHit      float64 `koanf:"hard_hit"`
	Distance     float64 `koanf:"distance"`
}

// DefaultWeights returns the documented equal-thirds weighting.
func DefaultWeights() Weights {
	return Weights{ExitVelocity: 1.0 / 3.0, HardHit: 1.0 / 3.0, Distance: 1.0 / 3.0}
}

// sum returns the total weight mass.
func (w Weights) sum() float64 {
	return w.ExitVelocity + w.HardHit + w.Distance
}

// Validate rejects weight configurations that cannot produce a meaningful
// overall score. Rejecting here, before any computation, keeps a bad config
// from aborting a batch halfway through.
func (w Weights) Validate() error {
	s := w.sum()
	if math.IsNaN(s) || s <= 0 {
		return fmt.Errorf("%w: weights sum to %.4f, need a positive sum", ErrInvalidWeights, s)
	}
	return nil
}

// ExitVelocityScore maps the hitter's mean exit velocity through the anchor
// scale, boosts it by the stadium's park factor, and clamps to [0, 100].
// Monotone: a higher mean exit velocity never lowers the score.
func ExitVelocityScore(meanExitVelocity, parkFactor float64, a Anchors) float64 {
	base := rescale(meanExitVelocity, a.ExitVelocityLow, a.ExitVelocityHigh)
	return clamp(base * parkFactor)
}

// HardHitScore maps the hard-hit rate (a fraction) linearly onto [0, 100].
func HardHitScore(hardHitRate float64, a Anchors) float64 {
	return rescale(hardHitRate, 0, a.HardHitHigh)
}

// DistanceScore is the share of the hitter's geometry-eligible batted balls
// that would clear this stadium's fences, scaled to [0, 100]. The second
// return is the number of eligible events; with none, the score is zero.
func DistanceScore(events []model.BattedBallEvent, stadium model.StadiumModel) (float64, int) {
	var eligible, homers int
	for _, e := range events {
		c, ok := geometry.ResolveEvent(stadium, e)
		if !ok {
			continue
		}
		eligible++
		if c == geometry.HomeRun {
			homers++
		}
	}
	if eligible == 0 {
		return 0, 0
	}
	return clamp(float64(homers) / float64(eligible) * maxScore), eligible
}

// Overall combines the component scores using the configured weights,
// normalized by the weight sum, clamped to [0, 100].
func Overall(w Weights, exitVelocity, hardHit, distance float64) (float64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}
	weighted := w.ExitVelocity*exitVelocity + w.HardHit*hardHit + w.Distance*distance
	return clamp(weighted / w.sum()), nil
}

// rescale maps v from [lo, hi] onto [0, 100], clamped.
func rescale(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clamp((v - lo) / (hi - lo) * maxScore)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(maxScore, v))
}
