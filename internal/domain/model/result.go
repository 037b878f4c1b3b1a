package model

import "time"

// MatchResult is the scored comparison of one hitter against one stadium.
// Produced fresh per pair and never mutated after creation. Stadium identity,
// dimensions and park factor are carried along so exported rows are
// self-contained.
type MatchResult struct {
	HitterID   string `json:"hitter_id"`
	HitterName string `json:"hitter_name"`

	StadiumID   string  `json:"stadium_id"`
	StadiumName string  `json:"stadium_name"`
	Team        string  `json:"team"`
	LeftField   float64 `json:"left_field"`
	CenterField float64 `json:"center_field"`
	RightField  float64 `json:"right_field"`
	ParkFactor  float64 `json:"park_factor"`

	// Component and overall scores, all in [0, 100].
	ExitVelocityScore float64 `json:"exit_velocity_score"`
	HardHitScore      float64 `json:"hard_hit_score"`
	DistanceScore     float64 `json:"distance_score"`
	OverallScore      float64 `json:"overall_score"`

	// Expected statistics derived from batted-ball quality.
	XBA         float64 `json:"xba"`
	XSLG        float64 `json:"xslg"`
	XOPS        float64 `json:"xops"`
	HomeRunRate float64 `json:"hr_rate"`

	EventsUsed     int `json:"events_used"`
	EventsExcluded int `json:"events_excluded"`
}

// PairJob is one unit of batch work: score a single hitter against a single
// stadium. Deadline, when set, is the batch time budget; workers abandon
// jobs whose deadline has passed.
type PairJob struct {
	RunID    string
	Hitter   HitterProfile
	Stadium  StadiumModel
	Deadline time.Time
}
