package model

// HardHitThreshold is the exit velocity, in mph, at or above which a batted
// ball counts as hard-hit.
const HardHitThreshold = 95.0

// RecordedOutcome is the outcome attached to an event by the upstream data
// source, when one was recorded. The scoring core never depends on it.
type RecordedOutcome string

const (
	OutcomeUnknown RecordedOutcome = ""
	OutcomeHit     RecordedOutcome = "hit"
	OutcomeOut     RecordedOutcome = "out"
	OutcomeHomeRun RecordedOutcome = "home_run"
)

// BattedBallEvent is a single ball put in play. Spray angle and distance are
// optional: Statcast feeds drop them for some batted balls. Events missing
// either are excluded from geometry-dependent scores but still contribute to
// exit-velocity and hard-hit aggregates. Immutable once recorded.
type BattedBallEvent struct {
	ExitVelocity float64         `json:"exit_velocity"` // mph
	LaunchAngle  float64         `json:"launch_angle"`  // degrees
	SprayAngle   *float64        `json:"spray_angle,omitempty"`
	Distance     *float64        `json:"distance,omitempty"` // feet
	Outcome      RecordedOutcome `json:"outcome,omitempty"`
}

// GeometryEligible reports whether the event carries the landing data the
// geometry model needs.
func (e BattedBallEvent) GeometryEligible() bool {
	return e.SprayAngle != nil && e.Distance != nil
}

// HardHit reports whether the event meets the hard-hit threshold.
func (e BattedBallEvent) HardHit() bool {
	return e.ExitVelocity >= HardHitThreshold
}

// Float returns a pointer to v, for building events with optional fields.
func Float(v float64) *float64 { return &v }
